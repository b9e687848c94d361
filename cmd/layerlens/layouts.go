package layerlens

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dasdy/layerlens/layout"
	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts <keyboard.json>",
	Short: "List the layouts a keyboard info file describes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := layout.LoadFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Keyboard %04x:%04x, %dx%d matrix\n", info.VendorID, info.ProductID, info.Rows, info.Cols)

		for _, l := range info.Layouts {
			fmt.Fprintf(out, "  %s (%d keys)\n", l.Name, len(l.Keys))
		}

		for _, alias := range slices.Sorted(maps.Keys(info.Aliases)) {
			fmt.Fprintf(out, "  %s -> %s\n", alias, info.Aliases[alias])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}
