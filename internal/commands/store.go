package commands

import (
	"fmt"

	"github.com/balancebook-dev/balancebook/internal/config"
	"github.com/balancebook-dev/balancebook/internal/store"
	"github.com/balancebook-dev/balancebook/internal/store/memory"
	"github.com/balancebook-dev/balancebook/internal/store/postgres"
	"github.com/balancebook-dev/balancebook/internal/store/sqlite"
)

// openStore builds the configured store. The returned closer is a no-op
// for the memory driver.
func openStore(cfg *config.Config) (store.Store, func() error, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return memory.New(), func() error { return nil }, nil
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, s.Close, nil
	case config.DriverPostgres:
		s, err := postgres.Open(cfg.Store.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("opening postgres store: %w", err)
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
