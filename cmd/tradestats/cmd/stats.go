package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradestats/filter"
	"github.com/rustyeddy/tradestats/format"
	"github.com/rustyeddy/tradestats/journal"
	"github.com/rustyeddy/tradestats/report"
	"github.com/rustyeddy/tradestats/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance statistics",
	Long: `Compute performance statistics over the journal, optionally filtered.

Examples:
  tradestats stats
  tradestats stats --period month --unit r
  tradestats stats --symbol AAPL --setup breakout --org
  tradestats stats --followed no --journal`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsFilter  filterFlags
	statsOrg     bool
	statsJournal bool

	// statsMemo is shared by the summary and the journal baseline, which
	// see the same trades whenever no filter is set.
	statsMemo stats.Memo
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsFilter.register(statsCmd)
	statsCmd.Flags().BoolVar(&statsOrg, "org", false, "render as an Org-mode section")
	statsCmd.Flags().BoolVar(&statsJournal, "journal", false, "add the breakdown by daily journal entry")
}

func runStats(cmd *cobra.Command, args []string) error {
	c, err := statsFilter.criteria(time.Now(), cfg.Stats.Period)
	if err != nil {
		return err
	}

	trades, entries, err := loadJournal(cmd.Context())
	if err != nil {
		return err
	}

	selected := filter.ApplyJournal(trades, entries, c)
	s := statsMemo.Compute(selected)
	log.Info("statistics computed",
		zap.Int("trades", len(trades)),
		zap.Int("selected", len(selected)),
		zap.Int("closed", s.TotalTrades),
	)

	out := cmd.OutOrStdout()
	f := formatter()
	if statsOrg {
		org, err := report.Org(string(c.Period), s, f)
		if err != nil {
			return fmt.Errorf("render org: %w", err)
		}
		fmt.Fprint(out, org)
	} else {
		report.Print(out, s, f)
	}

	if statsJournal {
		all := statsMemo.Compute(trades)
		log.Debug("journal baseline", zap.Int("memo_hits", statsMemo.Hits()))
		printJournalBreakdown(cmd, all.Overall(), stats.ByJournal(selected, entries), f)
	}
	return nil
}

func printJournalBreakdown(cmd *cobra.Command, all stats.Performance, b stats.JournalBreakdown, f format.Formatter) {
	out := cmd.OutOrStdout()
	row := func(label string, p stats.Performance) {
		fmt.Fprintf(out, "%-16s %4d trades %12s %7s\n", label, p.Trades, f.Signed(f.Pick(p.PnL, p.RR)), format.Percent(p.WinRate))
	}

	fmt.Fprintln(out, "By Journal")
	fmt.Fprintln(out, "--------------------------------------------------")
	row("all trades", all)
	row("followed", b.Followed)
	row("not followed", b.NotFollowed)
	row("news day", b.NewsDay)
	row("normal day", b.NormalDay)
	for m := journal.MoodTerrible; m <= journal.MoodGreat; m++ {
		if p, ok := b.ByMood[m]; ok {
			row("mood "+m.String(), p)
		}
	}
	row("no entry", b.Unjournaled)
}
