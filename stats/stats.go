// Package stats computes trading-performance statistics from a journal.
//
// Every function here is a pure transform of its input. Open trades are
// dropped by the engine itself, whatever filtering the caller has done.
package stats

import (
	"math"

	"github.com/rustyeddy/tradestats/journal"
	"github.com/rustyeddy/tradestats/series"
)

// Statistics is a snapshot valid for exactly the trades it was computed
// from. Any change to those trades needs a new Compute.
type Statistics struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64 // percent

	TotalPnL float64
	TotalRR  float64

	AvgWin    float64
	AvgLoss   float64 // magnitude
	AvgWinRR  float64
	AvgLossRR float64 // magnitude

	ProfitFactor   float64 // +Inf with wins and no losses
	ProfitFactorRR float64

	Expectancy   float64
	ExpectancyRR float64

	BestDay    float64
	WorstDay   float64
	BestDayRR  float64
	WorstDayRR float64

	AvgDailyPnL float64
	AvgDailyRR  float64
	TradingDays int

	CurrentStreak     int // positive for wins, negative for losses
	LongestWinStreak  int
	LongestLoseStreak int

	MaxDrawdown         float64
	MaxDrawdownRR       float64
	MaxDrawdownDuration int // calendar days

	RecoveryTime float64 // mean calendar days, recovered losses only

	PerformanceByDay    map[string]Performance
	PerformanceBySetup  map[string]Performance
	PerformanceBySymbol map[string]Performance
}

// Empty is the result for a journal with no closed trades.
func Empty() Statistics {
	return Statistics{
		PerformanceByDay:    emptyWeekdays(),
		PerformanceBySetup:  map[string]Performance{},
		PerformanceBySymbol: map[string]Performance{},
	}
}

// Compute builds the full statistics snapshot for trades.
func Compute(trades []journal.Trade) Statistics {
	return ComputeClosed(journal.SettleAll(trades))
}

// ComputeClosed is Compute for trades that are already settled.
func ComputeClosed(closed []journal.Closed) Statistics {
	if len(closed) == 0 {
		return Empty()
	}

	s := Statistics{TotalTrades: len(closed)}

	var grossWin, grossLoss, grossWinRR, grossLossRR float64
	for _, t := range closed {
		s.TotalPnL += t.PnL
		s.TotalRR += t.RR

		switch {
		case t.PnL > 0:
			s.WinningTrades++
			grossWin += t.PnL
			grossWinRR += t.RR
		case t.PnL < 0:
			s.LosingTrades++
			grossLoss += t.PnL
			grossLossRR += t.RR
		}
	}

	s.WinRate = ratio(float64(s.WinningTrades), float64(s.TotalTrades)) * 100
	s.AvgWin = ratio(grossWin, float64(s.WinningTrades))
	s.AvgLoss = math.Abs(ratio(grossLoss, float64(s.LosingTrades)))
	s.AvgWinRR = ratio(grossWinRR, float64(s.WinningTrades))
	s.AvgLossRR = math.Abs(ratio(grossLossRR, float64(s.LosingTrades)))
	s.ProfitFactor = ProfitFactor(grossWin, grossLoss)
	s.ProfitFactorRR = ProfitFactor(grossWinRR, grossLossRR)
	s.Expectancy = s.TotalPnL / float64(s.TotalTrades)
	s.ExpectancyRR = s.TotalRR / float64(s.TotalTrades)

	daily := series.Daily(closed, journal.Currency)
	dailyRR := series.Daily(closed, journal.RiskMultiple)

	s.TradingDays = len(daily)
	s.BestDay, s.WorstDay = extremes(daily)
	s.BestDayRR, s.WorstDayRR = extremes(dailyRR)
	s.AvgDailyPnL = ratio(s.TotalPnL, float64(s.TradingDays))
	s.AvgDailyRR = ratio(s.TotalRR, float64(s.TradingDays))

	streaks := ComputeStreaks(closed)
	s.CurrentStreak = streaks.Current
	s.LongestWinStreak = streaks.LongestWin
	s.LongestLoseStreak = streaks.LongestLose

	if ep, ok := Deepest(Drawdowns(daily)); ok {
		s.MaxDrawdown = ep.Depth
		s.MaxDrawdownDuration = ep.Duration()
	}
	if ep, ok := Deepest(Drawdowns(dailyRR)); ok {
		s.MaxDrawdownRR = ep.Depth
	}

	s.RecoveryTime = RecoveryTime(closed)

	s.PerformanceByDay = ByWeekday(closed)
	s.PerformanceBySetup = BySetup(closed)
	s.PerformanceBySymbol = BySymbol(closed)

	return s
}

// ProfitFactor divides gross profit by the magnitude of gross loss. With
// no losses it is +Inf if anything was won and 0 otherwise.
func ProfitFactor(grossWin, grossLoss float64) float64 {
	loss := math.Abs(grossLoss)
	if loss == 0 {
		if grossWin > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return grossWin / loss
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func extremes(s series.Series) (best, worst float64) {
	if len(s) == 0 {
		return 0, 0
	}
	best, worst = s[0].Value, s[0].Value
	for _, p := range s[1:] {
		best = math.Max(best, p.Value)
		worst = math.Min(worst, p.Value)
	}
	return best, worst
}

// Overall condenses s into a single breakdown row.
func (s Statistics) Overall() Performance {
	return Performance{
		Trades:  s.TotalTrades,
		PnL:     s.TotalPnL,
		RR:      s.TotalRR,
		Wins:    s.WinningTrades,
		WinRate: s.WinRate,
	}
}

// Clone returns a copy whose maps are not shared with s.
func (s Statistics) Clone() Statistics {
	s.PerformanceByDay = cloneMap(s.PerformanceByDay)
	s.PerformanceBySetup = cloneMap(s.PerformanceBySetup)
	s.PerformanceBySymbol = cloneMap(s.PerformanceBySymbol)
	return s
}

func cloneMap(m map[string]Performance) map[string]Performance {
	if m == nil {
		return nil
	}
	out := make(map[string]Performance, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
