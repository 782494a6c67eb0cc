// Package commands wires the balancebook CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "balancebook",
		Short:   "Double-entry bookkeeping ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "balancebook.yaml", "path to config file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newServeCommand(&configPath))
	rootCmd.AddCommand(newPostCommand(&configPath))
	rootCmd.AddCommand(newLedgerCommand(&configPath))
	rootCmd.AddCommand(newTrialBalanceCommand(&configPath))

	return rootCmd
}
