package commands

import (
	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/events"
	"github.com/balancebook-dev/balancebook/internal/ledger"
)

func newPostCommand(configPath *string) *cobra.Command {
	var description string
	var amount string
	var debitAccount string
	var creditAccount string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a transaction as a balanced debit/credit pair",
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

			poster := ledger.NewPoster(st, events.Noop{})
			txID, err := poster.Post(cmd.Context(), description, amount, debitAccount, creditAccount)
			if err != nil {
				return err
			}

			cmd.Printf("Posted transaction %s\n", txID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "transaction description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&amount, "amount", "", "transaction amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&debitAccount, "debit", "", "account to debit (required)")
	_ = cmd.MarkFlagRequired("debit")
	cmd.Flags().StringVar(&creditAccount, "credit", "", "account to credit (required)")
	_ = cmd.MarkFlagRequired("credit")

	return cmd
}
