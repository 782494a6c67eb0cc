package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/ledger"
)

func newTrialBalanceCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "trial-balance",
		Short: "Show net balances per account and verify the books balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			st, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore() //nolint:errcheck

			query := ledger.NewQuery(st)
			tb, err := query.TrialBalance(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ACCOUNT\tDEBIT\tCREDIT")
			for _, row := range tb.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\n", row.Account, row.FormattedDebit, row.FormattedCredit)
			}
			fmt.Fprintf(w, "TOTALS\t%s\t%s\n", tb.FormattedTotalDebit, tb.FormattedTotalCredit)
			if err := w.Flush(); err != nil {
				return err
			}

			if tb.Balanced {
				cmd.Println("\nBooks are balanced: total debits equal total credits.")
			} else {
				cmd.Println("\nUNBALANCED: there is a discrepancy in the books.")
			}
			return nil
		},
	}
}
