package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const tradeColumns = `trade_id, date, entry_time, exit_time, symbol, direction, entry_price, exit_price,
	pnl, rr, status, exit_date, setup, tags, notes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (Trade, error) {
	var (
		rec       Trade
		direction string
		status    string
		exitPrice sql.NullFloat64
		rr        sql.NullFloat64
		tags      string
	)

	err := row.Scan(
		&rec.ID,
		&rec.Date,
		&rec.EntryTime,
		&rec.ExitTime,
		&rec.Symbol,
		&direction,
		&rec.EntryPrice,
		&exitPrice,
		&rec.PnL,
		&rr,
		&status,
		&rec.ExitDate,
		&rec.Setup,
		&tags,
		&rec.Notes,
	)
	if err != nil {
		return Trade{}, err
	}

	rec.Direction = Direction(direction)
	rec.Status = Status(status)
	if exitPrice.Valid {
		v := exitPrice.Float64
		rec.ExitPrice = &v
	}
	if rr.Valid {
		v := rr.Float64
		rec.RR = &v
	}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
			return Trade{}, fmt.Errorf("decode tags for %s: %w", rec.ID, err)
		}
	}
	if len(rec.Tags) == 0 {
		rec.Tags = nil
	}
	return rec, nil
}

// GetTrade returns a single trade by ID.
func (j *SQLite) GetTrade(ctx context.Context, tradeID string) (Trade, error) {
	row := j.db.QueryRowContext(ctx, `SELECT `+tradeColumns+` FROM trades WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trade{}, fmt.Errorf("trade %q: %w", tradeID, ErrNotFound)
		}
		return Trade{}, err
	}
	return rec, nil
}

// ListTrades returns every trade ordered by date, then by insertion.
func (j *SQLite) ListTrades(ctx context.Context) ([]Trade, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT `+tradeColumns+` FROM trades ORDER BY date ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

// ListTradesBetween returns trades whose date is within [from, to], both
// YYYY-MM-DD keys.
func (j *SQLite) ListTradesBetween(ctx context.Context, from, to string) ([]Trade, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trades
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, rowid ASC`, from, to)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

func collectTrades(rows *sql.Rows) ([]Trade, error) {
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEntry returns the journal entry for a date.
func (j *SQLite) GetEntry(ctx context.Context, date string) (Entry, error) {
	var (
		e    Entry
		mood int
	)
	err := j.db.QueryRowContext(ctx, `
		SELECT date, mood, followed_system, is_news_day, pre_market, review, lessons
		FROM journal_entries
		WHERE date = ?`, date).Scan(
		&e.Date, &mood, &e.FollowedSystem, &e.IsNewsDay, &e.PreMarket, &e.Review, &e.Lessons,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, fmt.Errorf("entry %q: %w", date, ErrNotFound)
		}
		return Entry{}, err
	}
	e.Mood = Mood(mood)
	return e, nil
}

// ListEntries returns all entries ordered by date.
func (j *SQLite) ListEntries(ctx context.Context) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT date, mood, followed_system, is_news_day, pre_market, review, lessons
		FROM journal_entries
		ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e    Entry
			mood int
		)
		if err := rows.Scan(&e.Date, &mood, &e.FollowedSystem, &e.IsNewsDay, &e.PreMarket, &e.Review, &e.Lessons); err != nil {
			return nil, err
		}
		e.Mood = Mood(mood)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
