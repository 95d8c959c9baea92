package stats

import (
	"sort"

	"github.com/rustyeddy/tradestats/journal"
)

type Streaks struct {
	Current     int // signed: +n after n wins, -n after n losses
	LongestWin  int
	LongestLose int
}

// ComputeStreaks walks trades in effective-date order. Trades on the same
// day keep their input order. A breakeven trade ends both runs.
func ComputeStreaks(closed []journal.Closed) Streaks {
	ordered := make([]journal.Closed, len(closed))
	copy(ordered, closed)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].EffectiveDate < ordered[j].EffectiveDate
	})

	var s Streaks
	var wins, losses int
	for _, t := range ordered {
		switch {
		case t.PnL > 0:
			wins++
			losses = 0
			s.LongestWin = max(s.LongestWin, wins)
		case t.PnL < 0:
			losses++
			wins = 0
			s.LongestLose = max(s.LongestLose, losses)
		default:
			wins, losses = 0, 0
		}
	}

	switch {
	case wins > 0:
		s.Current = wins
	case losses > 0:
		s.Current = -losses
	}
	return s
}
