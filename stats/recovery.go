package stats

import (
	"math"
	"sort"

	"github.com/rustyeddy/tradestats/journal"
)

// RecoveryTime is the mean number of calendar days between a losing trade
// and the first later trade whose pnl magnitude is at least the loss's,
// a larger loss included. Trades are ordered by their own date, not the
// exit date, and are not grouped by day. Losses with no such later trade
// are left out of the mean.
func RecoveryTime(closed []journal.Closed) float64 {
	ordered := make([]journal.Closed, len(closed))
	copy(ordered, closed)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	var total, recovered int
	for i, loss := range ordered {
		if loss.PnL >= 0 {
			continue
		}
		need := math.Abs(loss.PnL)
		for _, later := range ordered[i+1:] {
			if math.Abs(later.PnL) < need {
				continue
			}
			if days, ok := journal.DaysBetween(loss.Date, later.Date); ok {
				total += days
				recovered++
			}
			break
		}
	}

	if recovered == 0 {
		return 0
	}
	return float64(total) / float64(recovered)
}
