package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajwalkiewicz/tcomp/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tcomp",
		Short:   "Compare budgeting-service transactions against a bank statement",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCompareCommand())

	return rootCmd
}
