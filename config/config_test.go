package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/tradestats/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "currency", cfg.Display.Unit)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
	assert.Equal(t, "all", cfg.Stats.Period)
	assert.Equal(t, 6, cfg.Stats.RecentMonths)
	assert.Equal(t, journal.Currency, cfg.Unit())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func(mod func(*Config)) *Config {
		c := Default()
		mod(c)
		return c
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  Default(),
			wantErr: false,
		},
		{
			name:    "r unit",
			config:  valid(func(c *Config) { c.Display.Unit = "riskMultiple" }),
			wantErr: false,
		},
		{
			name:    "csv journal",
			config:  valid(func(c *Config) { c.Journal = JournalConfig{Type: "csv", TradesFile: "trades.csv"} }),
			wantErr: false,
		},
		{
			name:    "unknown unit",
			config:  valid(func(c *Config) { c.Display.Unit = "pips" }),
			wantErr: true,
			errMsg:  "display.unit must be 'currency' or 'riskMultiple'",
		},
		{
			name:    "unknown journal type",
			config:  valid(func(c *Config) { c.Journal.Type = "postgres" }),
			wantErr: true,
			errMsg:  "journal.type must be 'csv' or 'sqlite'",
		},
		{
			name:    "csv without file",
			config:  valid(func(c *Config) { c.Journal = JournalConfig{Type: "csv"} }),
			wantErr: true,
			errMsg:  "journal trades_file required for CSV type",
		},
		{
			name:    "sqlite without path",
			config:  valid(func(c *Config) { c.Journal.DBPath = "" }),
			wantErr: true,
			errMsg:  "journal db_path required for SQLite type",
		},
		{
			name:    "unknown period",
			config:  valid(func(c *Config) { c.Stats.Period = "fortnight" }),
			wantErr: true,
			errMsg:  `stats.period: unknown period "fortnight"`,
		},
		{
			name:    "negative recent months",
			config:  valid(func(c *Config) { c.Stats.RecentMonths = -1 }),
			wantErr: true,
			errMsg:  "stats.recent_months must not be negative",
		},
		{
			name:    "bad log level",
			config:  valid(func(c *Config) { c.Log.Level = "verbose" }),
			wantErr: true,
			errMsg:  "log.level must be one of debug|info|warn|error",
		},
		{
			name:    "empty config",
			config:  &Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Display.Unit = "riskMultiple"
			cfg.Stats.Period = "month"
			cfg.Log.Development = true
			path := filepath.Join(tmpDir, "test"+tt.ext)

			// Save
			err := cfg.SaveToFile(path)
			require.NoError(t, err)

			// Verify file exists
			_, err = os.Stat(path)
			require.NoError(t, err)

			// Load
			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			// Compare
			assert.Equal(t, cfg, loaded)
			assert.Equal(t, journal.RiskMultiple, loaded.Unit())
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  unit: R\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, journal.RiskMultiple, cfg.Unit())
	assert.Equal(t, "sqlite", cfg.Journal.Type)
	assert.Equal(t, 6, cfg.Stats.RecentMonths)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journal:\n  type: mongo\n"), 0644))
	_, err = LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
