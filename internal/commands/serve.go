package commands

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/events"
	"github.com/balancebook-dev/balancebook/internal/events/kafka"
	"github.com/balancebook-dev/balancebook/internal/ledger"
	"github.com/balancebook-dev/balancebook/internal/server"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

func runServe(cfg *config.Config) error {
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore() //nolint:errcheck

	var publisher events.Publisher = events.Noop{}
	if cfg.Events.Enabled {
		kp := kafka.NewPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		defer kp.Close() //nolint:errcheck
		publisher = kp
	}

	srv := server.New(
		ledger.NewPoster(st, publisher),
		ledger.NewQuery(st),
		cfg.Accounts,
	)

	log.Printf("listening on %s (store: %s)", cfg.Server.Addr, cfg.Store.Driver)
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Routes()); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
