// Package config loads balancebook.yaml and .env overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config represents the top-level balancebook.yaml configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Events   EventsConfig   `yaml:"events"`
	Accounts AccountsConfig `yaml:"accounts"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StoreConfig selects the journal backend.
type StoreConfig struct {
	Driver string `yaml:"driver"`         // memory, sqlite, or postgres
	Path   string `yaml:"path,omitempty"` // sqlite database file
	DSN    string `yaml:"dsn,omitempty"`  // postgres connection string
}

// EventsConfig controls Kafka publication of posted transactions.
type EventsConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers,omitempty"`
	Topic   string   `yaml:"topic,omitempty"`
}

// AccountsConfig holds the account names the presentation layer offers
// for each side of a new transaction. Any account name is accepted on
// posting; these are only suggestions.
type AccountsConfig struct {
	Debit  []string `yaml:"debit"`
	Credit []string `yaml:"credit"`
}

// Load reads a balancebook.yaml file, then applies overrides from the
// environment (a .env file in the working directory is honored too).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	_ = godotenv.Load()
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Store: StoreConfig{
			Driver: DriverSQLite,
			Path:   "ledger.db",
		},
		Events: EventsConfig{
			Enabled: false,
			Topic:   "transaction_posted",
		},
		Accounts: AccountsConfig{
			Debit:  []string{"Cash", "Equipment", "Supplies", "COGS Expense", "Rent Expense"},
			Credit: []string{"Sales Revenue", "Accounts Payable", "Owner Equity", "Bank Loan", "Cash"},
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store: sqlite driver requires path")
		}
	case DriverPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("store: postgres driver requires dsn")
		}
	default:
		return fmt.Errorf("store: unknown driver %q", c.Store.Driver)
	}

	if c.Events.Enabled && len(c.Events.Brokers) == 0 {
		return fmt.Errorf("events: enabled but no brokers configured")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BALANCEBOOK_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("BALANCEBOOK_STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("BALANCEBOOK_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("BALANCEBOOK_STORE_DSN"); v != "" {
		cfg.Store.DSN = v
	}
	if v := os.Getenv("BALANCEBOOK_KAFKA_BROKERS"); v != "" {
		cfg.Events.Enabled = true
		cfg.Events.Brokers = strings.Split(v, ",")
	}
}
