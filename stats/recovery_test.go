package stats

import (
	"testing"

	"github.com/rustyeddy/tradestats/journal"
	"github.com/stretchr/testify/assert"
)

func TestRecoveryTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		trades []journal.Closed
		want   float64
	}{
		{"empty", nil, 0},
		{"no losses", []journal.Closed{settled("2025-10-01", 5)}, 0},
		{"never recovered", []journal.Closed{settled("2025-10-01", -5), settled("2025-10-02", 4)}, 0},
		{
			"mean over recovered losses",
			[]journal.Closed{
				settled("2025-10-01", -100),
				settled("2025-10-02", 50),
				settled("2025-10-06", 120),
				settled("2025-10-07", -40),
				settled("2025-10-08", 40),
				settled("2025-10-10", -500),
			},
			3,
		},
		{
			"larger later loss recovers",
			[]journal.Closed{
				settled("2025-10-01", -100),
				settled("2025-10-02", -150),
				settled("2025-10-05", 200),
			},
			2,
		},
		{
			"input order does not matter",
			[]journal.Closed{
				settled("2025-10-04", 150),
				settled("2025-10-01", -100),
			},
			3,
		},
		{
			"same day recovery",
			[]journal.Closed{settled("2025-10-01", -10), settled("2025-10-01", 10)},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecoveryTime(tt.trades))
		})
	}
}

func TestRecoveryTimeUsesTradeDate(t *testing.T) {
	t.Parallel()

	loss, _ := journal.Settle(journal.Trade{Date: "2025-10-01", ExitDate: "2025-10-20", Status: journal.StatusClosed, PnL: -30})
	got := RecoveryTime([]journal.Closed{loss, settled("2025-10-03", 30)})

	assert.Equal(t, 2.0, got)
}

func TestRecoveryTimeSkipsUnparsableDates(t *testing.T) {
	t.Parallel()

	got := RecoveryTime([]journal.Closed{
		settled("2025-10-01", -100),
		settled("someday", 150),
		settled("2025-10-02", -10),
		settled("2025-10-05", 10),
	})

	// The -100 loss is first covered by the undated trade, so it drops out.
	assert.Equal(t, 3.0, got)
}
