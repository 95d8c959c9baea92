// Package series builds cumulative performance curves from closed trades.
package series

import (
	"sort"

	"github.com/rustyeddy/tradestats/journal"
)

// Point is one period of a curve. Key is a YYYY-MM-DD day or a YYYY-MM
// month; Value is the sum for that period and Cumulative the running total
// up to and including it.
type Point struct {
	Key        string  `json:"key"`
	Value      float64 `json:"value"`
	Cumulative float64 `json:"cumulative"`
}

// Series is ordered by Key ascending.
type Series []Point

// Daily groups trades by effective date.
func Daily(trades []journal.Closed, unit journal.Unit) Series {
	return build(trades, unit, func(c journal.Closed) string {
		return c.EffectiveDate
	})
}

// Monthly groups trades by the calendar month of their effective date.
func Monthly(trades []journal.Closed, unit journal.Unit) Series {
	return build(trades, unit, func(c journal.Closed) string {
		return MonthKey(c.EffectiveDate)
	})
}

// MonthKey returns the YYYY-MM prefix of a day key.
func MonthKey(day string) string {
	if len(day) < 7 {
		return day
	}
	return day[:7]
}

// Sums returns the per-period sums keyed like the series it would build.
func Sums(trades []journal.Closed, unit journal.Unit, key func(journal.Closed) string) map[string]float64 {
	sums := make(map[string]float64)
	for _, t := range trades {
		sums[key(t)] += t.Value(unit)
	}
	return sums
}

func build(trades []journal.Closed, unit journal.Unit, key func(journal.Closed) string) Series {
	if len(trades) == 0 {
		return Series{}
	}

	sums := Sums(trades, unit, key)
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Series, 0, len(keys))
	var running float64
	for _, k := range keys {
		running += sums[k]
		out = append(out, Point{Key: k, Value: sums[k], Cumulative: running})
	}
	return out
}

// Tail returns the last n points, or the whole series when it is shorter.
func (s Series) Tail(n int) Series {
	if n <= 0 {
		return Series{}
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Last returns the final cumulative value, zero for an empty series.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Cumulative
}
