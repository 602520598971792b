// Package main is the tripplanner command: the API server plus the
// operational subcommands that share its configuration.
// No business logic belongs here.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the root without a
// subcommand starts the server.
func newRootCmd() *cobra.Command {
	serveCmd := newServeCmd()
	root := &cobra.Command{
		Use:           "tripplanner",
		Short:         "Trip planner API server and tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	root.AddCommand(serveCmd, newMigrateCmd(), newTemplatesCmd(), newTokenCmd())
	return root
}
