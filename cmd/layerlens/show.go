package layerlens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/dasdy/layerlens/db"
	"github.com/dasdy/layerlens/keylog"
	"github.com/dasdy/layerlens/keylog/ports"
	"github.com/dasdy/layerlens/keymap"
	"github.com/dasdy/layerlens/layout"
	"github.com/dasdy/layerlens/logging"
	"github.com/dasdy/layerlens/model"
	"github.com/dasdy/layerlens/settings"
	"github.com/dasdy/layerlens/via"
	"github.com/dasdy/layerlens/web"
	"github.com/dasdy/layerlens/web/routes"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const overlayRefreshMillis = 250

var (
	saveSettings bool
	devMode      bool
)

var showCmd = &cobra.Command{
	Use:   "show [keyboard.json]",
	Short: "Serve the layer overlay for a connected keyboard",
	Long: `Reads the keymap from the keyboard over VIA and serves an overlay of the
active layer on http://127.0.0.1:<port>/. The keyboard is described by its QMK
info.json file, which may also be set with the 'keyboard' config key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			viper.Set(settings.KeyKeyboard, args[0])
		}

		s, err := settings.Load(viper.GetViper())
		if err != nil {
			return err
		}

		s.Save = saveSettings

		return runShow(cmd.Context(), s)
	},
}

func runShow(parent context.Context, s *settings.Settings) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logging.ComponentCtx(ctx, "show")

	info, err := layout.LoadFile(s.KeyboardConfigPath)
	if err != nil {
		return err
	}

	chosen, err := info.Layout(s.LayoutName)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, info.LayoutNames())
	}

	device, name, err := openDevice(info, s)
	if err != nil {
		return err
	}
	defer closeDevice(device)

	matrix, err := fetchKeymap(ctx, device, info)
	if err != nil {
		return err
	}

	state := keymap.NewSharedState(s.Timeout)

	storage, tracker, err := openHistory(s.HistoryPath)
	if err != nil {
		return err
	}

	handler := &routes.ServerHandler{State: state, Matrix: matrix, Tracker: tracker}
	feedCfg := keylog.FeedConfig{Name: name, Tracker: tracker, Verbose: verbose}

	if storage != nil {
		defer storage.Close()

		handler.Storage = storage
		feedCfg.Storage = storage
	}

	handler.SetLayout(chosen)
	handler.SetDisplay(displayFor(s))

	var latest atomic.Pointer[settings.Settings]
	latest.Store(s)

	watchKeyboardInfo(ctx, s, handler)
	watchSettings(ctx, handler, state, &latest)

	serverErr := make(chan error, 1)

	go func() {
		serverErr <- web.StartServer(ctx, s.Port, web.BuildServer(handler, devMode))
	}()

	feed := keylog.NewFeed(device, state, matrix, feedCfg)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-feed.Updates():
				snap := state.Snapshot()
				slog.DebugContext(ctx, "Layer state changed",
					"default", snap.Layers.Default, "momentary", snap.Layers.Momentary)
			}
		}
	}()

	feedErr := make(chan error, 1)

	go func() {
		feedErr <- feed.Run(ctx)
	}()

	var (
		runErr   error
		feedDone bool
	)

	select {
	case err := <-feedErr:
		feedDone = true

		if !errors.Is(err, context.Canceled) {
			runErr = err
		}
	case err := <-serverErr:
		runErr = err
	case <-ctx.Done():
	}

	stop()

	// The device is closed by a deferred call, which must not race the feed.
	if !feedDone {
		<-feedErr
	}

	if s.Save {
		path, err := defaultConfigPath()
		if err != nil {
			return errors.Join(runErr, err)
		}

		if err := latest.Load().WriteTo(path); err != nil {
			return errors.Join(runErr, err)
		}
	}

	return runErr
}

func openDevice(info *model.KeyboardInfo, s *settings.Settings) (ports.Device, string, error) {
	if s.SerialPort != "" {
		device, err := ports.OpenSerial(s.SerialPort, s.Baud)
		if err != nil {
			return nil, "", err
		}

		return device, s.SerialPort, nil
	}

	if err := ports.Init(); err != nil {
		return nil, "", err
	}

	device, err := ports.OpenHID(info.VendorID, info.ProductID)
	if err != nil {
		if exitErr := ports.Exit(); exitErr != nil {
			slog.Error("could not release HID library", "error", exitErr)
		}

		return nil, "", err
	}

	return device, device.Info().String(), nil
}

func closeDevice(device ports.Device) {
	if err := device.Close(); err != nil {
		slog.Error("could not close device", "error", err)
	}

	if _, ok := device.(*ports.HIDDevice); ok {
		if err := ports.Exit(); err != nil {
			slog.Error("could not release HID library", "error", err)
		}
	}
}

func fetchKeymap(ctx context.Context, device ports.Device, info *model.KeyboardInfo) (*keymap.Matrix, error) {
	client := via.NewClient(device)

	version, err := client.ProtocolVersion()
	if err != nil {
		return nil, err
	}

	layers, err := client.LayerCount()
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Connected to keyboard", "protocol", version, "layers", layers)

	bar := progressbar.DefaultBytes(int64(layers*info.Rows*info.Cols*2), "Reading keymap")

	return client.FetchKeymap(ctx, layers, info.Rows, info.Cols, bar)
}

func openHistory(path string) (*db.SQLiteStorage, *db.LayerTracker, error) {
	if path == "" {
		return nil, db.NewEmptyLayerTracker(), nil
	}

	storage, err := db.NewStorageFromPath(path, verbose)
	if err != nil {
		return nil, nil, err
	}

	tracker, err := db.NewLayerTrackerFromDB(storage, true)
	if err != nil {
		storage.Close()

		return nil, nil, err
	}

	return storage, tracker, nil
}

func displayFor(s *settings.Settings) routes.Display {
	return routes.Display{
		Unit:          float64(s.Size),
		PositionCSS:   s.Position.CSS(s.Margin),
		RefreshMillis: overlayRefreshMillis,
	}
}

func watchKeyboardInfo(ctx context.Context, s *settings.Settings, handler *routes.ServerHandler) {
	updates, err := layout.Watch(ctx, s.KeyboardConfigPath)
	if err != nil {
		slog.WarnContext(ctx, "Keyboard info changes will not be picked up", "error", err)

		return
	}

	go func() {
		for info := range updates {
			chosen, err := info.Layout(s.LayoutName)
			if err != nil {
				slog.ErrorContext(ctx, "Ignoring reloaded keyboard info", "error", err)

				continue
			}

			handler.SetLayout(chosen)
			slog.InfoContext(ctx, "Layout reloaded", "layout", chosen.Name, "keys", len(chosen.Keys))
		}
	}()
}

// watchSettings applies display and timeout edits made to the config file
// while the overlay runs. Other keys need a restart.
func watchSettings(
	ctx context.Context,
	handler *routes.ServerHandler,
	state *keymap.SharedState,
	latest *atomic.Pointer[settings.Settings],
) {
	if viper.ConfigFileUsed() == "" {
		return
	}

	settings.Watch(viper.GetViper(), func(updated *settings.Settings) {
		handler.SetDisplay(displayFor(updated))
		state.SetTimeout(updated.Timeout)

		latest.Store(updated)

		slog.InfoContext(ctx, "Settings reloaded",
			"size", updated.Size, "position", updated.Position, "timeout", updated.Timeout)
	})
}

func init() {
	rootCmd.AddCommand(showCmd)

	flags := showCmd.Flags()
	flags.StringP(settings.KeyLayout, "l", settings.DefaultLayout, "Layout name from the keyboard info file")
	flags.Int(settings.KeySize, settings.DefaultSize, "Size of one key in pixels")
	flags.String(settings.KeyPosition, string(settings.BottomRight),
		"Where the overlay sits: top-left, top-right, bottom-left, bottom-right, top or bottom")
	flags.Duration(settings.KeyTimeout, settings.DefaultTimeout,
		"How long the overlay stays up after returning to the base layer")
	flags.Int(settings.KeyMargin, settings.DefaultMargin, "Distance from the screen edge in pixels")
	flags.IntP(settings.KeyPort, "p", settings.DefaultPort, "Port to serve the overlay on")
	flags.String(settings.KeyHistory, "", "Path to a sqlite file where layer history is kept")
	flags.String(settings.KeySerial, "", "Read reports from this serial port instead of raw HID")
	flags.Int(settings.KeyBaud, settings.DefaultBaud, "Baud rate for --serial")
	flags.BoolVar(&saveSettings, "save-settings", false, "Write the effective settings to the config file on exit")
	flags.BoolVar(&devMode, "dev", false, "Disable browser caching of the overlay")

	for _, key := range []string{
		settings.KeyLayout, settings.KeySize, settings.KeyPosition, settings.KeyTimeout, settings.KeyMargin,
		settings.KeyPort, settings.KeyHistory, settings.KeySerial, settings.KeyBaud,
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}
}
