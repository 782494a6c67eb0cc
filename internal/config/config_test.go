package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balancebook.yaml")

	cfg := Default()
	cfg.Server.Addr = ":9090"
	cfg.Store.Driver = DriverMemory
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", loaded.Server.Addr)
	assert.Equal(t, DriverMemory, loaded.Store.Driver)
	assert.Equal(t, cfg.Accounts.Debit, loaded.Accounts.Debit)
	assert.False(t, loaded.Events.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balancebook.yaml")

	cfg := Default()
	cfg.Store.Driver = "mongodb"
	require.NoError(t, Save(path, cfg))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults ok", func(*Config) {}, ""},
		{"sqlite needs path", func(c *Config) { c.Store.Path = "" }, "requires path"},
		{"postgres needs dsn", func(c *Config) { c.Store.Driver = DriverPostgres }, "requires dsn"},
		{"events need brokers", func(c *Config) { c.Events.Enabled = true }, "no brokers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balancebook.yaml")
	require.NoError(t, Save(path, Default()))

	t.Setenv("BALANCEBOOK_ADDR", ":7070")
	t.Setenv("BALANCEBOOK_STORE_DRIVER", DriverMemory)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", loaded.Server.Addr)
	assert.Equal(t, DriverMemory, loaded.Store.Driver)
}
