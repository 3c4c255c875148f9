package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recall/internal/app"
)

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print a random sample passage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.RandomPassage())
			return err
		},
	}
}
