// Package filter narrows a trade list with optional, independent criteria.
package filter

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rustyeddy/tradestats/journal"
)

// Criteria fields are all optional. Every criterion that is set must match;
// one that is not set restricts nothing.
type Criteria struct {
	// Period is a shorthand date window resolved against Now.
	Period Period `validate:"omitempty,oneof=today week month quarter year 7d 30d 90d all"`
	// From and To bound the trade date, inclusive.
	From optional.Option[time.Time]
	To   optional.Option[time.Time]

	// Symbol, Setup and Tag match exactly; callers normalize case.
	Symbol    optional.Option[string]
	Setup     optional.Option[string]
	Tag       optional.Option[string]
	Direction optional.Option[journal.Direction]

	ClosedOnly  bool
	OpenOnly    bool
	WinnersOnly bool
	LosersOnly  bool

	// Journal flags match against the entry recorded for the trade date.
	FollowedSystem optional.Option[bool]
	NewsDay        optional.Option[bool]

	// Now anchors Period; the zero value means time.Now().
	Now time.Time
}

var validate = validator.New()

// Validate rejects criteria that can never be satisfied or are malformed.
func (c Criteria) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid criteria: %w", err)
	}
	if c.ClosedOnly && c.OpenOnly {
		return fmt.Errorf("invalid criteria: closed-only and open-only are exclusive")
	}
	if c.WinnersOnly && c.LosersOnly {
		return fmt.Errorf("invalid criteria: winners-only and losers-only are exclusive")
	}
	if c.From.IsSome() && c.To.IsSome() && c.From.Unwrap().After(c.To.Unwrap()) {
		return fmt.Errorf("invalid criteria: from is after to")
	}
	if c.Direction.IsSome() {
		switch c.Direction.Unwrap() {
		case journal.Long, journal.Short:
		default:
			return fmt.Errorf("invalid criteria: unknown direction %q", c.Direction.Unwrap())
		}
	}
	return nil
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return (c.Period == "" || c.Period == All) &&
		c.From.IsNone() && c.To.IsNone() &&
		c.Symbol.IsNone() && c.Setup.IsNone() && c.Tag.IsNone() && c.Direction.IsNone() &&
		!c.ClosedOnly && !c.OpenOnly && !c.WinnersOnly && !c.LosersOnly &&
		c.FollowedSystem.IsNone() && c.NewsDay.IsNone()
}

// Apply returns the trades matching c, in their original order. Journal
// flags cannot match without entries; use ApplyJournal for those.
func Apply(trades []journal.Trade, c Criteria) []journal.Trade {
	return ApplyJournal(trades, nil, c)
}

// ApplyJournal is Apply with daily entries available for the journal flags.
func ApplyJournal(trades []journal.Trade, entries []journal.Entry, c Criteria) []journal.Trade {
	if c.IsZero() {
		return trades
	}

	m := newMatcher(c, entries)
	out := make([]journal.Trade, 0, len(trades))
	for _, t := range trades {
		if m.match(t) {
			out = append(out, t)
		}
	}
	return out
}

type matcher struct {
	c       Criteria
	from    string
	to      string
	entries map[string]journal.Entry
}

func newMatcher(c Criteria, entries []journal.Entry) matcher {
	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}

	m := matcher{c: c}
	if from, to, ok := c.Period.Range(now); ok {
		m.from, m.to = from, to
	}
	// Keys compare lexically, so the tighter of both bounds wins.
	if c.From.IsSome() {
		if k := c.From.Unwrap().Format(journal.DateLayout); k > m.from {
			m.from = k
		}
	}
	if c.To.IsSome() {
		if k := c.To.Unwrap().Format(journal.DateLayout); m.to == "" || k < m.to {
			m.to = k
		}
	}
	if c.FollowedSystem.IsSome() || c.NewsDay.IsSome() {
		m.entries = journal.EntriesByDate(entries)
	}
	return m
}

func (m matcher) match(t journal.Trade) bool {
	c := m.c

	if m.from != "" || m.to != "" {
		if _, ok := journal.ParseDay(t.Date); !ok {
			return false
		}
		if m.from != "" && t.Date < m.from {
			return false
		}
		if m.to != "" && t.Date > m.to {
			return false
		}
	}

	if c.Symbol.IsSome() && t.Symbol != c.Symbol.Unwrap() {
		return false
	}
	if c.Setup.IsSome() && t.Setup != c.Setup.Unwrap() {
		return false
	}
	if c.Tag.IsSome() && !t.HasTag(c.Tag.Unwrap()) {
		return false
	}
	if c.Direction.IsSome() && t.Direction != c.Direction.Unwrap() {
		return false
	}

	closed := t.IsClosed()
	if c.ClosedOnly && !closed {
		return false
	}
	if c.OpenOnly && closed {
		return false
	}
	if c.WinnersOnly && t.PnL <= 0 {
		return false
	}
	if c.LosersOnly && t.PnL >= 0 {
		return false
	}

	if c.FollowedSystem.IsSome() || c.NewsDay.IsSome() {
		e, ok := m.entries[t.Date]
		if !ok {
			return false
		}
		if c.FollowedSystem.IsSome() && e.FollowedSystem != c.FollowedSystem.Unwrap() {
			return false
		}
		if c.NewsDay.IsSome() && e.IsNewsDay != c.NewsDay.Unwrap() {
			return false
		}
	}
	return true
}
