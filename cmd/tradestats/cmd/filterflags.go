package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rustyeddy/tradestats/filter"
	"github.com/rustyeddy/tradestats/journal"
	"github.com/spf13/cobra"
)

type filterFlags struct {
	period    string
	from      string
	to        string
	symbol    string
	setup     string
	tag       string
	direction string
	followed  string
	news      string
	closed    bool
	open      bool
	winners   bool
	losers    bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.period, "period", "p", "", "today|week|month|quarter|year|7d|30d|90d|all (default from config)")
	fl.StringVar(&f.from, "from", "", "first trade date, YYYY-MM-DD")
	fl.StringVar(&f.to, "to", "", "last trade date, YYYY-MM-DD")
	fl.StringVarP(&f.symbol, "symbol", "s", "", "only this symbol")
	fl.StringVar(&f.setup, "setup", "", "only this setup")
	fl.StringVarP(&f.tag, "tag", "t", "", "only trades carrying this tag")
	fl.StringVar(&f.direction, "direction", "", "long|short")
	fl.StringVar(&f.followed, "followed", "", "yes|no: days the system was followed")
	fl.StringVar(&f.news, "news", "", "yes|no: news days")
	fl.BoolVar(&f.closed, "closed", false, "closed trades only")
	fl.BoolVar(&f.open, "open", false, "open trades only")
	fl.BoolVar(&f.winners, "winners", false, "winning trades only")
	fl.BoolVar(&f.losers, "losers", false, "losing trades only")
}

func (f *filterFlags) criteria(now time.Time, defaultPeriod string) (filter.Criteria, error) {
	c := filter.Criteria{
		Period:      filter.Period(strings.ToLower(f.period)),
		ClosedOnly:  f.closed,
		OpenOnly:    f.open,
		WinnersOnly: f.winners,
		LosersOnly:  f.losers,
		Now:         now,
	}
	if c.Period == "" {
		c.Period = filter.Period(defaultPeriod)
	}

	if f.from != "" {
		d, ok := journal.ParseDay(f.from)
		if !ok {
			return c, fmt.Errorf("--from: invalid date %q", f.from)
		}
		c.From = optional.Some(d)
	}
	if f.to != "" {
		d, ok := journal.ParseDay(f.to)
		if !ok {
			return c, fmt.Errorf("--to: invalid date %q", f.to)
		}
		c.To = optional.Some(d)
	}
	// Stored symbols are upper case, as on import and add.
	if f.symbol != "" {
		c.Symbol = optional.Some(strings.ToUpper(f.symbol))
	}
	if f.setup != "" {
		c.Setup = optional.Some(f.setup)
	}
	if f.tag != "" {
		c.Tag = optional.Some(f.tag)
	}
	if f.direction != "" {
		c.Direction = optional.Some(journal.Direction(strings.ToLower(f.direction)))
	}
	if f.followed != "" {
		v, err := parseYesNo(f.followed)
		if err != nil {
			return c, fmt.Errorf("--followed: %w", err)
		}
		c.FollowedSystem = optional.Some(v)
	}
	if f.news != "" {
		v, err := parseYesNo(f.news)
		if err != nil {
			return c, fmt.Errorf("--news: %w", err)
		}
		c.NewsDay = optional.Some(v)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected yes or no, got %q", s)
}
