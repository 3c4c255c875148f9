package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the recall command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "recall",
		Short:         "Memorise text by hiding more and more of its words",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newSampleCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
