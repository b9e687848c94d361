package layerlens

import (
	"fmt"
	"text/tabwriter"

	"github.com/dasdy/layerlens/keycode"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <keycode>...",
	Short: "Show how keycodes are labelled on the overlay",
	Long: `Keycodes may be written in hex (0x5223), decimal, as a basic key name
(Enter) or as a layer action (MO(3)).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

		fmt.Fprintln(w, "CODE\tLABEL\tSHORT\tKIND")

		for _, arg := range args {
			code, ok := keycode.Parse(arg)
			if !ok {
				return fmt.Errorf("could not parse keycode '%s'", arg)
			}

			label := keycode.Decode(code)
			fmt.Fprintf(w, "0x%04X\t%s\t%s\t%s\n", code, label.Long, label.Short, label.Kind)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
