package stats

import (
	"github.com/rustyeddy/tradestats/journal"
	"github.com/rustyeddy/tradestats/series"
)

// Episode is one peak-to-trough decline of a cumulative curve. An episode
// ends when the curve climbs back to its peak; RecoveryKey stays empty
// while it has not.
type Episode struct {
	PeakKey     string
	PeakValue   float64
	TroughKey   string
	TroughValue float64
	Depth       float64
	RecoveryKey string
}

func (e Episode) Recovered() bool { return e.RecoveryKey != "" }

// Duration is the number of calendar days from the peak to the trough.
func (e Episode) Duration() int {
	d, ok := journal.DaysBetween(e.PeakKey, e.TroughKey)
	if !ok || d < 0 {
		return 0
	}
	return d
}

// Drawdowns walks a cumulative series and returns each drawdown episode in
// order. The curve starts from zero, so a first period that loses money
// opens an episode whose peak is that first period. A return to exactly the
// peak value counts as recovery: it closes any open episode and moves the
// peak date forward, so later durations are measured from the newer date.
func Drawdowns(s series.Series) []Episode {
	if len(s) == 0 {
		return nil
	}

	var (
		out     []Episode
		cur     *Episode
		peak    float64
		peakKey = s[0].Key
	)

	for _, p := range s {
		if p.Cumulative >= peak {
			if cur != nil {
				cur.RecoveryKey = p.Key
				out = append(out, *cur)
				cur = nil
			}
			peak = p.Cumulative
			peakKey = p.Key
			continue
		}

		dd := peak - p.Cumulative
		if cur == nil {
			cur = &Episode{
				PeakKey:     peakKey,
				PeakValue:   peak,
				TroughKey:   p.Key,
				TroughValue: p.Cumulative,
				Depth:       dd,
			}
			continue
		}
		if dd > cur.Depth {
			cur.TroughKey = p.Key
			cur.TroughValue = p.Cumulative
			cur.Depth = dd
		}
	}

	if cur != nil {
		out = append(out, *cur)
	}
	return out
}

// Deepest returns the episode with the largest depth; the earliest wins a tie.
func Deepest(episodes []Episode) (Episode, bool) {
	if len(episodes) == 0 {
		return Episode{}, false
	}
	best := episodes[0]
	for _, e := range episodes[1:] {
		if e.Depth > best.Depth {
			best = e
		}
	}
	return best, true
}
