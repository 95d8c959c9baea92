package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradestats/config"
	"github.com/rustyeddy/tradestats/format"
	"github.com/rustyeddy/tradestats/internal/logger"
	"github.com/rustyeddy/tradestats/journal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "tradestats",
	Short: "Trade journal analytics",
	Long: `tradestats turns a journal of trades and daily notes into performance statistics.

It provides tools for:
  - Win rate, profit factor, expectancy and drawdown in currency or R
  - Weekday and setup breakdowns, streaks and recovery time
  - Daily and monthly equity curves
  - Recording trades and daily journal entries in SQLite
  - CSV import and export`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

var (
	cfgFile  string
	dbPath   string
	logLevel string
	unitFlag string

	cfg = config.Default()
	log = zap.NewNop()
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVarP(&unitFlag, "unit", "u", "", "display unit: currency|r")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if dbPath != "" {
		cfg.Journal.Type = "sqlite"
		cfg.Journal.DBPath = dbPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if unitFlag != "" {
		u, ok := journal.ParseUnit(unitFlag)
		if !ok {
			return fmt.Errorf("unknown unit %q", unitFlag)
		}
		cfg.Display.Unit = string(u)
	}

	l, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	log = l
	log.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("journal", cfg.Journal.Type),
		zap.String("unit", cfg.Display.Unit),
	)
	return nil
}

func formatter() format.Formatter {
	return format.New(cfg.Unit())
}
