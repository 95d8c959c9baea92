// Package report renders a Statistics snapshot as text or Org-mode.
package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"text/template"

	"github.com/rustyeddy/tradestats/format"
	"github.com/rustyeddy/tradestats/series"
	"github.com/rustyeddy/tradestats/stats"
)

// Print writes a plain-text summary of s in the formatter's unit.
func Print(w io.Writer, s stats.Statistics, f format.Formatter) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Trading Performance")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Trades:        %d\n", s.TotalTrades)
	fmt.Fprintf(w, "Wins:          %d\n", s.WinningTrades)
	fmt.Fprintf(w, "Losses:        %d\n", s.LosingTrades)
	fmt.Fprintf(w, "Win Rate:      %s\n", format.Percent(s.WinRate))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Results")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Net:           %s\n", f.Signed(f.Pick(s.TotalPnL, s.TotalRR)))
	fmt.Fprintf(w, "Avg Win:       %s\n", f.Unsigned(f.Pick(s.AvgWin, s.AvgWinRR)))
	fmt.Fprintf(w, "Avg Loss:      %s\n", f.Unsigned(f.Pick(s.AvgLoss, s.AvgLossRR)))
	fmt.Fprintf(w, "Profit Factor: %s\n", format.Ratio(f.Pick(s.ProfitFactor, s.ProfitFactorRR)))
	fmt.Fprintf(w, "Expectancy:    %s\n", f.Signed(f.Pick(s.Expectancy, s.ExpectancyRR)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Daily")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trading Days:  %d\n", s.TradingDays)
	fmt.Fprintf(w, "Best Day:      %s\n", f.Signed(f.Pick(s.BestDay, s.BestDayRR)))
	fmt.Fprintf(w, "Worst Day:     %s\n", f.Signed(f.Pick(s.WorstDay, s.WorstDayRR)))
	fmt.Fprintf(w, "Avg Day:       %s\n", f.Signed(f.Pick(s.AvgDailyPnL, s.AvgDailyRR)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Risk")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Max Drawdown:  %s\n", f.Unsigned(f.Pick(s.MaxDrawdown, s.MaxDrawdownRR)))
	fmt.Fprintf(w, "DD Duration:   %s\n", format.Days(float64(s.MaxDrawdownDuration)))
	fmt.Fprintf(w, "Recovery:      %s\n", format.Days(s.RecoveryTime))
	fmt.Fprintf(w, "Streak:        %+d (best %d, worst %d)\n", s.CurrentStreak, s.LongestWinStreak, s.LongestLoseStreak)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "By Weekday")
	fmt.Fprintln(w, "--------------------------------------------------")
	for _, d := range stats.Weekdays {
		p := s.PerformanceByDay[d]
		fmt.Fprintf(w, "%-10s %4d trades %12s %7s\n", d, p.Trades, f.Signed(f.Pick(p.PnL, p.RR)), format.Percent(p.WinRate))
	}

	if len(s.PerformanceBySetup) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "By Setup")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, k := range SortedKeys(s.PerformanceBySetup) {
			p := s.PerformanceBySetup[k]
			fmt.Fprintf(w, "%-16s %4d trades %12s %7s\n", k, p.Trades, f.Signed(f.Pick(p.PnL, p.RR)), format.Percent(p.WinRate))
		}
	}

	fmt.Fprintln(w)
}

// PrintSeries writes one line per period.
func PrintSeries(w io.Writer, s series.Series, f format.Formatter) {
	for _, p := range s {
		fmt.Fprintf(w, "%-10s %12s %12s\n", p.Key, f.Signed(p.Value), f.Signed(p.Cumulative))
	}
}

// SortedKeys returns breakdown keys in lexical order.
func SortedKeys(m map[string]stats.Performance) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type orgView struct {
	Title string
	S     stats.Statistics
	F     format.Formatter
	Setup []string
	Days  []string
}

var orgFuncs = template.FuncMap{
	"signed": func(f format.Formatter, cur, r float64) string { return f.Signed(f.Pick(cur, r)) },
	"mag":    func(f format.Formatter, cur, r float64) string { return f.Unsigned(f.Pick(cur, r)) },
	"ratio":  func(f format.Formatter, cur, r float64) string { return format.Ratio(f.Pick(cur, r)) },
	"pct":    format.Percent,
	"days":   format.Days,
	"itof":   func(i int) float64 { return float64(i) },
	"perfOf": func(m map[string]stats.Performance, k string) stats.Performance { return m[k] },
	"streak": func(n int) string { return fmt.Sprintf("%+d", n) },
}

// Org renders s as an Org-mode section headed by title.
func Org(title string, s stats.Statistics, f format.Formatter) (string, error) {
	t, err := template.New("stats").Funcs(orgFuncs).Parse(OrgTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	err = t.Execute(buf, orgView{
		Title: title,
		S:     s,
		F:     f,
		Setup: SortedKeys(s.PerformanceBySetup),
		Days:  stats.Weekdays,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

const OrgTemplate = `* STATS: {{if .Title}}{{.Title}}{{else}}(all trades){{end}}
:PROPERTIES:
:UNIT:        {{.F.Unit}}
:TRADES:      {{.S.TotalTrades}}
:WINS:        {{.S.WinningTrades}}
:LOSSES:      {{.S.LosingTrades}}
:WIN_RATE:    {{pct .S.WinRate}}
:NET:         {{signed .F .S.TotalPnL .S.TotalRR}}
:PROFIT_FAC:  {{ratio .F .S.ProfitFactor .S.ProfitFactorRR}}
:MAX_DD:      {{mag .F .S.MaxDrawdown .S.MaxDrawdownRR}}
:END:

** Performance Summary
- Expectancy:     *{{signed .F .S.Expectancy .S.ExpectancyRR}}*
- Avg Win:        *{{mag .F .S.AvgWin .S.AvgWinRR}}*
- Avg Loss:       *{{mag .F .S.AvgLoss .S.AvgLossRR}}*
- Best Day:       *{{signed .F .S.BestDay .S.BestDayRR}}*
- Worst Day:      *{{signed .F .S.WorstDay .S.WorstDayRR}}*
- Avg Day:        *{{signed .F .S.AvgDailyPnL .S.AvgDailyRR}}*
- DD Duration:    *{{days (itof .S.MaxDrawdownDuration)}}*
- Recovery:       *{{days .S.RecoveryTime}}*
- Current Streak: *{{streak .S.CurrentStreak}}*

** By Weekday
| Day | Trades | Result | Win Rate |
|-----+--------+--------+----------|
{{- range .Days}}
{{- $p := perfOf $.S.PerformanceByDay .}}
| {{.}} | {{$p.Trades}} | {{signed $.F $p.PnL $p.RR}} | {{pct $p.WinRate}} |
{{- end}}
{{- if .Setup}}

** By Setup
| Setup | Trades | Result | Win Rate |
|-------+--------+--------+----------|
{{- range .Setup}}
{{- $p := perfOf $.S.PerformanceBySetup .}}
| {{.}} | {{$p.Trades}} | {{signed $.F $p.PnL $p.RR}} | {{pct $p.WinRate}} |
{{- end}}
{{- end}}
`
