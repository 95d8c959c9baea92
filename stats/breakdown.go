package stats

import (
	"time"

	"github.com/rustyeddy/tradestats/journal"
)

// Performance aggregates one bucket of a breakdown.
type Performance struct {
	Trades  int
	PnL     float64
	RR      float64
	Wins    int
	WinRate float64 // percent
}

func (p *Performance) add(t journal.Closed) {
	p.Trades++
	p.PnL += t.PnL
	p.RR += t.RR
	if t.PnL > 0 {
		p.Wins++
	}
	p.WinRate = float64(p.Wins) / float64(p.Trades) * 100
}

// Weekdays are the keys of PerformanceByDay, in calendar order.
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
}

func emptyWeekdays() map[string]Performance {
	m := make(map[string]Performance, len(Weekdays))
	for _, d := range Weekdays {
		m[d] = Performance{}
	}
	return m
}

// ByWeekday buckets trades by the weekday of their effective date. Only
// Monday to Friday are reported and all five are always present.
func ByWeekday(closed []journal.Closed) map[string]Performance {
	out := emptyWeekdays()
	for _, t := range closed {
		day, ok := journal.ParseDay(t.EffectiveDate)
		if !ok {
			continue
		}
		wd := day.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		p := out[wd.String()]
		p.add(t)
		out[wd.String()] = p
	}
	return out
}

// BySetup buckets trades by setup. Trades without a setup are not counted.
func BySetup(closed []journal.Closed) map[string]Performance {
	return groupBy(closed, func(t journal.Closed) string { return t.Setup })
}

// BySymbol buckets trades by symbol.
func BySymbol(closed []journal.Closed) map[string]Performance {
	return groupBy(closed, func(t journal.Closed) string { return t.Symbol })
}

func groupBy(closed []journal.Closed, key func(journal.Closed) string) map[string]Performance {
	out := map[string]Performance{}
	for _, t := range closed {
		k := key(t)
		if k == "" {
			continue
		}
		p := out[k]
		p.add(t)
		out[k] = p
	}
	return out
}

// JournalBreakdown splits performance by what the daily journal recorded
// for each trade's date.
type JournalBreakdown struct {
	Followed    Performance
	NotFollowed Performance
	NewsDay     Performance
	NormalDay   Performance
	ByMood      map[journal.Mood]Performance
	Unjournaled Performance
}

// ByJournal joins closed trades to entries on the trade date. Trades on a
// date without an entry only count toward Unjournaled.
func ByJournal(trades []journal.Trade, entries []journal.Entry) JournalBreakdown {
	byDate := journal.EntriesByDate(entries)
	out := JournalBreakdown{ByMood: map[journal.Mood]Performance{}}

	for _, t := range journal.SettleAll(trades) {
		e, ok := byDate[t.Date]
		if !ok {
			out.Unjournaled.add(t)
			continue
		}
		if e.FollowedSystem {
			out.Followed.add(t)
		} else {
			out.NotFollowed.add(t)
		}
		if e.IsNewsDay {
			out.NewsDay.add(t)
		} else {
			out.NormalDay.add(t)
		}
		p := out.ByMood[e.Mood]
		p.add(t)
		out.ByMood[e.Mood] = p
	}
	return out
}
