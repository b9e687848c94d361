// Package settings holds the overlay configuration and its TOML persistence.
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config keys. They double as the show command's flag names.
const (
	KeyKeyboard = "keyboard"
	KeyLayout   = "layout"
	KeySize     = "size"
	KeyPosition = "position"
	KeyTimeout  = "timeout"
	KeyMargin   = "margin"
	KeyPort     = "port"
	KeyHistory  = "history"
	KeySerial   = "serial"
	KeyBaud     = "baud"
)

const (
	DefaultLayout  = "LAYOUT"
	DefaultSize    = 60
	DefaultTimeout = 2000 * time.Millisecond
	DefaultMargin  = 10
	DefaultPort    = 9000
	DefaultBaud    = 115200

	MinSize    = 5
	MaxSize    = 200
	MaxMargin  = 100
	MaxTimeout = 60 * time.Second
)

var ErrInvalidSettings = errors.New("invalid settings")

type Position string

const (
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
	Top         Position = "top"
	Bottom      Position = "bottom"
)

var positions = []Position{TopLeft, TopRight, BottomLeft, BottomRight, Top, Bottom}

func ParsePosition(s string) (Position, error) {
	normalized := Position(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))

	for _, p := range positions {
		if p == normalized {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: unknown position '%s'", ErrInvalidSettings, s)
}

// CSS places a fixed element in the corresponding screen spot.
func (p Position) CSS(margin int) string {
	switch p {
	case TopLeft:
		return fmt.Sprintf("top:%dpx;left:%dpx;", margin, margin)
	case TopRight:
		return fmt.Sprintf("top:%dpx;right:%dpx;", margin, margin)
	case BottomLeft:
		return fmt.Sprintf("bottom:%dpx;left:%dpx;", margin, margin)
	case Top:
		return fmt.Sprintf("top:%dpx;left:50%%;transform:translateX(-50%%);", margin)
	case Bottom:
		return fmt.Sprintf("bottom:%dpx;left:50%%;transform:translateX(-50%%);", margin)
	default:
		return fmt.Sprintf("bottom:%dpx;right:%dpx;", margin, margin)
	}
}

type Settings struct {
	KeyboardConfigPath string        `mapstructure:"keyboard"`
	LayoutName         string        `mapstructure:"layout"`
	Size               int           `mapstructure:"size"`
	Position           Position      `mapstructure:"position"`
	Timeout            time.Duration `mapstructure:"timeout"`
	Margin             int           `mapstructure:"margin"`
	Port               int           `mapstructure:"port"`
	HistoryPath        string        `mapstructure:"history"`
	SerialPort         string        `mapstructure:"serial"`
	Baud               int           `mapstructure:"baud"`
	// Save asks for the settings to be written back to the config file.
	Save bool `mapstructure:"-"`
}

func Default() Settings {
	return Settings{
		LayoutName: DefaultLayout,
		Size:       DefaultSize,
		Position:   BottomRight,
		Timeout:    DefaultTimeout,
		Margin:     DefaultMargin,
		Port:       DefaultPort,
		Baud:       DefaultBaud,
	}
}

func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault(KeyLayout, d.LayoutName)
	v.SetDefault(KeySize, d.Size)
	v.SetDefault(KeyPosition, string(d.Position))
	v.SetDefault(KeyTimeout, d.Timeout)
	v.SetDefault(KeyMargin, d.Margin)
	v.SetDefault(KeyPort, d.Port)
	v.SetDefault(KeyBaud, d.Baud)
}

func (s *Settings) Validate() error {
	var errs []error

	if strings.TrimSpace(s.KeyboardConfigPath) == "" {
		errs = append(errs, errors.New("path to the keyboard info JSON is required"))
	}

	if s.Size < MinSize || s.Size > MaxSize {
		errs = append(errs, fmt.Errorf("size %d is outside %d..%d", s.Size, MinSize, MaxSize))
	}

	if s.Margin < 0 || s.Margin > MaxMargin {
		errs = append(errs, fmt.Errorf("margin %d is outside 0..%d", s.Margin, MaxMargin))
	}

	if s.Timeout < 0 || s.Timeout > MaxTimeout {
		errs = append(errs, fmt.Errorf("timeout %s is outside 0..%s", s.Timeout, MaxTimeout))
	}

	if _, err := ParsePosition(string(s.Position)); err != nil {
		errs = append(errs, err)
	}

	if s.Port < 0 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is not a valid TCP port", s.Port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
	}

	return nil
}

// Load reads settings from v, filling unset keys with defaults.
func Load(v *viper.Viper) (*Settings, error) {
	SetDefaults(v)

	s := Default()
	if err := v.Unmarshal(&s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeoutHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("could not decode settings: %w", err)
	}

	position, err := ParsePosition(string(s.Position))
	if err != nil {
		return nil, err
	}

	s.Position = position

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// ParseTimeout reads a timeout written either as a duration ("2s", "1500ms")
// or as a bare number of milliseconds.
func ParseTimeout(value any) (time.Duration, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case int:
		return time.Duration(v) * time.Millisecond, nil
	case int64:
		return time.Duration(v) * time.Millisecond, nil
	case int32:
		return time.Duration(v) * time.Millisecond, nil
	case uint:
		return time.Duration(v) * time.Millisecond, nil
	case uint64:
		return time.Duration(v) * time.Millisecond, nil
	case float64:
		return time.Duration(v * float64(time.Millisecond)), nil
	case string:
		trimmed := strings.TrimSpace(v)

		if ms, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return time.Duration(ms) * time.Millisecond, nil
		}

		d, err := time.ParseDuration(trimmed)
		if err != nil {
			return 0, fmt.Errorf("%w: could not parse timeout '%s': %w", ErrInvalidSettings, v, err)
		}

		return d, nil
	default:
		return 0, fmt.Errorf("%w: unsupported timeout value %v of type %T", ErrInvalidSettings, value, value)
	}
}

var durationType = reflect.TypeOf(time.Duration(0))

func timeoutHook(from, to reflect.Type, data any) (any, error) {
	if to != durationType || from == durationType {
		return data, nil
	}

	return ParseTimeout(data)
}

// WriteTo stores s in a TOML file at path.
func (s *Settings) WriteTo(path string) error {
	v := viper.New()
	v.SetConfigType("toml")

	v.Set(KeyKeyboard, s.KeyboardConfigPath)
	v.Set(KeyLayout, s.LayoutName)
	v.Set(KeySize, s.Size)
	v.Set(KeyPosition, string(s.Position))
	v.Set(KeyTimeout, s.Timeout.String())
	v.Set(KeyMargin, s.Margin)
	v.Set(KeyPort, s.Port)
	v.Set(KeyBaud, s.Baud)

	if s.HistoryPath != "" {
		v.Set(KeyHistory, s.HistoryPath)
	}

	if s.SerialPort != "" {
		v.Set(KeySerial, s.SerialPort)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("could not write settings to %s: %w", path, err)
	}

	slog.Info("Settings saved", "path", path)

	return nil
}

// Watch calls onChange with the new settings whenever the config file behind
// v changes. Invalid edits are logged and skipped.
func Watch(v *viper.Viper, onChange func(*Settings)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		slog.Info("Config file changed", "path", e.Name, "op", e.Op.String())

		s, err := Load(v)
		if err != nil {
			slog.Error("Ignoring invalid config change", "error", err)

			return
		}

		onChange(s)
	})
	v.WatchConfig()
}
