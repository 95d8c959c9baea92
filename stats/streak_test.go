package stats

import (
	"testing"

	"github.com/rustyeddy/tradestats/journal"
	"github.com/stretchr/testify/assert"
)

func settled(date string, pnl float64) journal.Closed {
	c, _ := journal.Settle(closedOn(date, pnl))
	return c
}

func TestComputeStreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		trades []journal.Closed
		want   Streaks
	}{
		{"empty", nil, Streaks{}},
		{
			"wins then losses",
			[]journal.Closed{
				settled("2025-10-01", 10), settled("2025-10-02", 5), settled("2025-10-03", 1),
				settled("2025-10-06", -3), settled("2025-10-07", -4),
			},
			Streaks{Current: -2, LongestWin: 3, LongestLose: 2},
		},
		{
			"breakeven resets",
			[]journal.Closed{
				settled("2025-10-01", -1), settled("2025-10-02", -1), settled("2025-10-03", 0),
				settled("2025-10-06", -1),
			},
			Streaks{Current: -1, LongestLose: 2},
		},
		{
			"ends on breakeven",
			[]journal.Closed{settled("2025-10-01", 3), settled("2025-10-02", 0)},
			Streaks{LongestWin: 1},
		},
		{
			"sorted by effective date",
			[]journal.Closed{
				settled("2025-10-07", 2), settled("2025-10-01", -1), settled("2025-10-06", 4),
				settled("2025-10-02", 5),
			},
			Streaks{Current: 3, LongestWin: 3, LongestLose: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStreaks(tt.trades))
		})
	}
}

func TestComputeStreaksSameDayKeepsOrder(t *testing.T) {
	t.Parallel()

	trades := []journal.Closed{
		settled("2025-10-02", -5),
		settled("2025-10-01", 1),
		settled("2025-10-02", 6),
	}
	// 10-01 win, then 10-02 in input order: loss, win.
	assert.Equal(t, Streaks{Current: 1, LongestWin: 1, LongestLose: 1}, ComputeStreaks(trades))
	assert.Equal(t, -5.0, trades[0].PnL, "input is not reordered")
}

func TestComputeStreaksUsesExitDate(t *testing.T) {
	t.Parallel()

	late, _ := journal.Settle(journal.Trade{Date: "2025-10-01", ExitDate: "2025-10-08", Status: journal.StatusClosed, PnL: -9})
	trades := []journal.Closed{late, settled("2025-10-03", 4)}

	assert.Equal(t, -1, ComputeStreaks(trades).Current)
}
