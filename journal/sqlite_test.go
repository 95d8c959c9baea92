package journal

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path, nil)
	require.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('trades','journal_entries')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["journal_entries"])
}

func TestSQLiteSaveAndGetTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	ctx := context.Background()

	expected := Trade{
		ID:         "T123",
		Date:       "2025-10-01",
		EntryTime:  "09:35",
		ExitTime:   "10:10",
		Symbol:     "AAPL",
		Direction:  Long,
		EntryPrice: 187.20,
		ExitPrice:  fp(189.88),
		PnL:        268,
		RR:         fp(2.7),
		Status:     StatusClosed,
		ExitDate:   "2025-10-02",
		Setup:      "breakout",
		Tags:       []string{"a+", "trend"},
		Notes:      "clean entry",
	}
	require.NoError(t, j.SaveTrade(ctx, expected))

	actual, err := j.GetTrade(ctx, "T123")
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestSQLiteNullableFields(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	ctx := context.Background()

	require.NoError(t, j.SaveTrade(ctx, Trade{
		ID:         "open-1",
		Date:       "2025-10-01",
		Symbol:     "MSFT",
		Direction:  Short,
		EntryPrice: 410,
		Status:     StatusOpen,
	}))

	rec, err := j.GetTrade(ctx, "open-1")
	require.NoError(t, err)
	assert.Nil(t, rec.ExitPrice)
	assert.Nil(t, rec.RR)
	assert.Nil(t, rec.Tags)
	assert.False(t, rec.IsClosed())
}

func TestSQLiteSaveTradeReplaces(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	ctx := context.Background()

	tr := Trade{ID: "T1", Date: "2025-10-01", Symbol: "AAPL", Direction: Long, Status: StatusOpen}
	require.NoError(t, j.SaveTrade(ctx, tr))

	tr.Status = StatusClosed
	tr.PnL = -101
	require.NoError(t, j.SaveTrade(ctx, tr))

	all, err := j.ListTrades(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, StatusClosed, all[0].Status)
	assert.Equal(t, -101.0, all[0].PnL)
}

func TestSQLiteSaveTradeRequiresID(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	assert.Error(t, j.SaveTrade(context.Background(), Trade{Date: "2025-10-01"}))
}

func TestGetTradeNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetTrade(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestListTradesOrder(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	ctx := context.Background()

	trades := []Trade{
		{ID: "c", Date: "2025-10-03", Symbol: "AAPL", Direction: Long, Status: StatusClosed},
		{ID: "a", Date: "2025-10-01", Symbol: "AAPL", Direction: Long, Status: StatusClosed},
		{ID: "b2", Date: "2025-10-02", Symbol: "TSLA", Direction: Short, Status: StatusClosed},
		{ID: "b1", Date: "2025-10-02", Symbol: "NVDA", Direction: Long, Status: StatusClosed},
	}
	require.NoError(t, j.SaveTrades(ctx, trades))

	all, err := j.ListTrades(ctx)
	require.NoError(t, err)

	var ids []string
	for _, tr := range all {
		ids = append(ids, tr.ID)
	}
	// Same-day trades keep insertion order.
	assert.Equal(t, []string{"a", "b2", "b1", "c"}, ids)
}

func TestListTradesBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	ctx := context.Background()

	for _, tr := range []Trade{
		{ID: "T1", Date: "2025-09-30", Symbol: "AAPL", Direction: Long},
		{ID: "T2", Date: "2025-10-01", Symbol: "AAPL", Direction: Long},
		{ID: "T3", Date: "2025-10-15", Symbol: "AAPL", Direction: Long},
		{ID: "T4", Date: "2025-10-31", Symbol: "AAPL", Direction: Long},
		{ID: "T5", Date: "2025-11-01", Symbol: "AAPL", Direction: Long},
	} {
		require.NoError(t, j.SaveTrade(ctx, tr))
	}

	got, err := j.ListTradesBetween(ctx, "2025-10-01", "2025-10-31")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "T2", got[0].ID)
	assert.Equal(t, "T3", got[1].ID)
	assert.Equal(t, "T4", got[2].ID)

	none, err := j.ListTradesBetween(ctx, "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	ctx := context.Background()

	require.NoError(t, j.SaveTrade(ctx, Trade{ID: "T1", Date: "2025-10-01", Symbol: "AAPL", Direction: Long}))
	require.NoError(t, j.DeleteTrade(ctx, "T1"))

	_, err := j.GetTrade(ctx, "T1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, j.DeleteTrade(ctx, "T1"), ErrNotFound)
}

func TestSQLiteEntries(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	ctx := context.Background()

	e := Entry{
		Date:           "2025-10-02",
		Mood:           MoodGood,
		FollowedSystem: true,
		IsNewsDay:      true,
		PreMarket:      "CPI at 8:30",
		Review:         "sat out the first hour",
		Lessons:        "patience pays",
	}
	require.NoError(t, j.SaveEntry(ctx, e))
	require.NoError(t, j.SaveEntry(ctx, Entry{Date: "2025-10-01", Mood: MoodBad}))

	got, err := j.GetEntry(ctx, "2025-10-02")
	require.NoError(t, err)
	assert.Equal(t, e, got)

	all, err := j.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2025-10-01", all[0].Date)
	assert.False(t, all[0].FollowedSystem)

	_, err = j.GetEntry(ctx, "2025-12-25")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, j.SaveEntry(ctx, Entry{Date: "Oct 3"}))
}
