package cmd

import (
	"time"

	"github.com/rustyeddy/tradestats/filter"
	"github.com/rustyeddy/tradestats/journal"
	"github.com/rustyeddy/tradestats/report"
	"github.com/rustyeddy/tradestats/series"
	"github.com/spf13/cobra"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Print the cumulative equity curve",
	Long: `Print period sums and the running total, by day or by month.

Examples:
  tradestats series --period 30d
  tradestats series --monthly --last 12 --unit r`,
	Args: cobra.NoArgs,
	RunE: runSeries,
}

var (
	seriesFilter  filterFlags
	seriesMonthly bool
	seriesLast    int
)

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesFilter.register(seriesCmd)
	seriesCmd.Flags().BoolVarP(&seriesMonthly, "monthly", "m", false, "group by calendar month")
	seriesCmd.Flags().IntVarP(&seriesLast, "last", "n", 0, "only the most recent N periods (monthly default from config)")
}

func runSeries(cmd *cobra.Command, args []string) error {
	c, err := seriesFilter.criteria(time.Now(), cfg.Stats.Period)
	if err != nil {
		return err
	}

	trades, entries, err := loadJournal(cmd.Context())
	if err != nil {
		return err
	}

	closed := journal.SettleAll(filter.ApplyJournal(trades, entries, c))
	unit := cfg.Unit()

	var s series.Series
	last := seriesLast
	if seriesMonthly {
		s = series.Monthly(closed, unit)
		if last == 0 {
			last = cfg.Stats.RecentMonths
		}
	} else {
		s = series.Daily(closed, unit)
	}
	if last > 0 {
		s = s.Tail(last)
	}

	report.PrintSeries(cmd.OutOrStdout(), s, formatter())
	return nil
}
