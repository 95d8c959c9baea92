package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SQLite stores trades and daily entries in a single database file.
type SQLite struct {
	db  *sql.DB
	log *zap.Logger
}

func NewSQLite(path string, log *zap.Logger) (*SQLite, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	log.Debug("journal opened", zap.String("path", path))
	return &SQLite{db: db, log: log}, nil
}

// SaveTrade inserts t or replaces the stored trade with the same ID.
func (j *SQLite) SaveTrade(ctx context.Context, t Trade) error {
	if t.ID == "" {
		return fmt.Errorf("trade id is required")
	}
	tags, err := json.Marshal(nonNilTags(t.Tags))
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO trades
		(trade_id, date, entry_time, exit_time, symbol, direction, entry_price, exit_price,
		 pnl, rr, status, exit_date, setup, tags, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.EntryTime, t.ExitTime, t.Symbol, string(t.Direction), t.EntryPrice,
		nullFloat(t.ExitPrice), t.PnL, nullFloat(t.RR), string(t.Status), t.ExitDate,
		t.Setup, string(tags), t.Notes,
	)
	if err != nil {
		return err
	}
	j.log.Debug("trade saved", zap.String("id", t.ID), zap.String("symbol", t.Symbol))
	return nil
}

// SaveTrades stores all trades in one transaction.
func (j *SQLite) SaveTrades(ctx context.Context, trades []Trade) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO trades
		(trade_id, date, entry_time, exit_time, symbol, direction, entry_price, exit_price,
		 pnl, rr, status, exit_date, setup, tags, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range trades {
		if t.ID == "" {
			return fmt.Errorf("trade id is required")
		}
		tags, err := json.Marshal(nonNilTags(t.Tags))
		if err != nil {
			return fmt.Errorf("encode tags for %s: %w", t.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			t.ID, t.Date, t.EntryTime, t.ExitTime, t.Symbol, string(t.Direction), t.EntryPrice,
			nullFloat(t.ExitPrice), t.PnL, nullFloat(t.RR), string(t.Status), t.ExitDate,
			t.Setup, string(tags), t.Notes,
		); err != nil {
			return fmt.Errorf("insert %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	j.log.Info("trades saved", zap.Int("count", len(trades)))
	return nil
}

func (j *SQLite) DeleteTrade(ctx context.Context, tradeID string) error {
	res, err := j.db.ExecContext(ctx, `DELETE FROM trades WHERE trade_id = ?`, tradeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q: %w", tradeID, ErrNotFound)
	}
	return nil
}

// SaveEntry inserts or replaces the entry for e.Date.
func (j *SQLite) SaveEntry(ctx context.Context, e Entry) error {
	if _, ok := ParseDay(e.Date); !ok {
		return fmt.Errorf("invalid entry date %q", e.Date)
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO journal_entries
		(date, mood, followed_system, is_news_day, pre_market, review, lessons)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Date, int(e.Mood), e.FollowedSystem, e.IsNewsDay, e.PreMarket, e.Review, e.Lessons,
	)
	if err != nil {
		return err
	}
	j.log.Debug("entry saved", zap.String("date", e.Date))
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
