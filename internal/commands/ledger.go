package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/ledger"
	"github.com/balancebook-dev/balancebook/internal/model"
)

func newLedgerCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ledger <account>",
		Short: "Show the ledger for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			st, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore() //nolint:errcheck

			account := args[0]
			query := ledger.NewQuery(st)
			entries, err := query.EntriesForAccount(cmd.Context(), account)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDESCRIPTION\tDEBIT\tCREDIT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.DateString(), e.Description, e.Debit.StringFixed(2), e.Credit.StringFixed(2))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			balance := ledger.AccountBalance(entries)
			cmd.Printf("\nNet balance for %s: %s\n", account, model.FormatAmount(balance))
			return nil
		},
	}
}
