// journal/journal.go
package journal

import (
	"errors"
	"time"
)

// DateLayout is the calendar-day key used for trade and entry dates.
const DateLayout = "2006-01-02"

var ErrNotFound = errors.New("not found")

type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Trade is a single journaled trade as it was recorded. Older records
// may carry an exit price while still marked open, so use IsClosed or
// Settle rather than reading Status directly.
type Trade struct {
	ID         string    `json:"id" yaml:"id"`
	Date       string    `json:"date" yaml:"date"`
	EntryTime  string    `json:"entryTime,omitempty" yaml:"entry_time,omitempty"`
	ExitTime   string    `json:"exitTime,omitempty" yaml:"exit_time,omitempty"`
	Symbol     string    `json:"symbol" yaml:"symbol"`
	Direction  Direction `json:"direction" yaml:"direction"`
	EntryPrice float64   `json:"entryPrice" yaml:"entry_price"`
	ExitPrice  *float64  `json:"exitPrice,omitempty" yaml:"exit_price,omitempty"`
	PnL        float64   `json:"pnl" yaml:"pnl"`
	RR         *float64  `json:"rr,omitempty" yaml:"rr,omitempty"`
	Status     Status    `json:"status" yaml:"status"`
	ExitDate   string    `json:"exitDate,omitempty" yaml:"exit_date,omitempty"`
	Setup      string    `json:"setup,omitempty" yaml:"setup,omitempty"`
	Tags       []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Notes      string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// IsClosed reports whether the trade counts as closed: either the status
// says so or a non-zero exit price was recorded. A zero exit price is an
// unfilled order, not a close.
func (t Trade) IsClosed() bool {
	if t.Status == StatusClosed {
		return true
	}
	return t.ExitPrice != nil && *t.ExitPrice != 0
}

// EffectiveDate is the exit date when present, otherwise the trade date.
func (t Trade) EffectiveDate() string {
	if t.ExitDate != "" {
		return t.ExitDate
	}
	return t.Date
}

// HasTag reports tag membership.
func (t Trade) HasTag(tag string) bool {
	for _, tt := range t.Tags {
		if tt == tag {
			return true
		}
	}
	return false
}

// ParseDay parses a YYYY-MM-DD key in UTC.
func ParseDay(s string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DaysBetween returns whole calendar days from a to b. ok is false when
// either key does not parse.
func DaysBetween(a, b string) (int, bool) {
	da, ok := ParseDay(a)
	if !ok {
		return 0, false
	}
	db, ok := ParseDay(b)
	if !ok {
		return 0, false
	}
	return int(db.Sub(da).Hours() / 24), true
}

// Unit selects currency or risk-multiple values.
type Unit string

const (
	Currency     Unit = "currency"
	RiskMultiple Unit = "riskMultiple"
)

// ParseUnit accepts the canonical names plus the short forms used on the
// command line.
func ParseUnit(s string) (Unit, bool) {
	switch s {
	case "currency", "cash", "$":
		return Currency, true
	case "riskMultiple", "r", "R", "rr":
		return RiskMultiple, true
	}
	return "", false
}
