package layerlens

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dasdy/layerlens/db"
	"github.com/spf13/cobra"
)

var statsHistory string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print how often each layer was active",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if statsHistory == "" {
			return errors.New("--history is required")
		}

		storage, err := db.NewStorageFromPath(statsHistory, verbose)
		if err != nil {
			return err
		}
		defer storage.Close()

		usage, err := storage.GatherLayerUsage()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LAYER\tREPORTS")

		for _, u := range usage {
			fmt.Fprintf(w, "%d\t%d\n", u.Layer, u.Count)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsHistory, "history", "", "Path to the sqlite history file")
}
