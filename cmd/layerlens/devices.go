package layerlens

import (
	"fmt"
	"log/slog"

	"github.com/dasdy/layerlens/keylog/ports"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List raw HID interfaces and serial ports a keyboard could be on",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		if err := ports.Init(); err != nil {
			return err
		}

		defer func() {
			if err := ports.Exit(); err != nil {
				slog.Error("could not release HID library", "error", err)
			}
		}()

		interfaces, err := ports.FindDevices(0, 0)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "Raw HID interfaces:")

		for _, i := range interfaces {
			fmt.Fprintf(out, "  %s\n", i)
		}

		serialPorts, err := ports.GetAvailablePorts()
		if err != nil {
			slog.Warn("could not list serial ports", "error", err)

			return nil
		}

		fmt.Fprintln(out, "Serial ports:")

		for _, p := range serialPorts {
			fmt.Fprintf(out, "  %s\n", p)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
