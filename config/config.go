package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/tradestats/filter"
	"github.com/rustyeddy/tradestats/journal"
	"gopkg.in/yaml.v3"
)

// Config is the complete tradestats configuration.
type Config struct {
	Display DisplayConfig `json:"display" yaml:"display"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Stats   StatsConfig   `json:"stats" yaml:"stats"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// DisplayConfig selects how metrics are rendered.
type DisplayConfig struct {
	Unit string `json:"unit" yaml:"unit"` // "currency" or "riskMultiple"
}

// JournalConfig says where trades and entries are stored.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "sqlite" or "csv"
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
}

// StatsConfig holds defaults for reports.
type StatsConfig struct {
	Period       string `json:"period" yaml:"period"`
	RecentMonths int    `json:"recent_months" yaml:"recent_months"`
}

type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development,omitempty" yaml:"development,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, ok := journal.ParseUnit(c.Display.Unit); !ok {
		return fmt.Errorf("display.unit must be 'currency' or 'riskMultiple'")
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && c.Journal.TradesFile == "" {
		return fmt.Errorf("journal trades_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	if err := (filter.Criteria{Period: filter.Period(c.Stats.Period)}).Validate(); err != nil {
		return fmt.Errorf("stats.period: unknown period %q", c.Stats.Period)
	}
	if c.Stats.RecentMonths < 0 {
		return fmt.Errorf("stats.recent_months must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug|info|warn|error")
	}
	return nil
}

// Unit returns the parsed display unit, currency when unset or invalid.
func (c *Config) Unit() journal.Unit {
	if u, ok := journal.ParseUnit(c.Display.Unit); ok {
		return u
	}
	return journal.Currency
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Unit: string(journal.Currency),
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./tradestats.sqlite",
		},
		Stats: StatsConfig{
			Period:       string(filter.All),
			RecentMonths: 6,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
