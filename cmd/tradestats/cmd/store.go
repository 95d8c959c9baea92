package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rustyeddy/tradestats/journal"
	"go.uber.org/zap"
)

func openStore() (*journal.SQLite, error) {
	if cfg.Journal.Type != "sqlite" {
		return nil, fmt.Errorf("journal type %q is read-only; use --db or a sqlite config", cfg.Journal.Type)
	}
	j, err := journal.NewSQLite(cfg.Journal.DBPath, log)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

// loadJournal reads every trade and entry from the configured source.
// A CSV journal has no daily entries.
func loadJournal(ctx context.Context) ([]journal.Trade, []journal.Entry, error) {
	if cfg.Journal.Type == "csv" {
		f, err := os.Open(cfg.Journal.TradesFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open trades: %w", err)
		}
		defer f.Close()

		trades, err := journal.ReadTradesCSV(f)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", cfg.Journal.TradesFile, err)
		}
		log.Debug("loaded csv journal", zap.Int("trades", len(trades)))
		return trades, nil, nil
	}

	j, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	defer j.Close()

	trades, err := j.ListTrades(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list trades: %w", err)
	}
	entries, err := j.ListEntries(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list entries: %w", err)
	}
	log.Debug("loaded sqlite journal", zap.Int("trades", len(trades)), zap.Int("entries", len(entries)))
	return trades, entries, nil
}
