// Package format renders metrics for display in currency or R units.
// Rounding happens on a copy of the value; nothing here should be parsed
// back into a number.
package format

import (
	"math"

	"github.com/rustyeddy/tradestats/journal"
	"github.com/shopspring/decimal"
)

const (
	currencyPlaces = 2
	rPlaces        = 1
)

// Formatter carries the display unit explicitly instead of reading a
// global setting.
type Formatter struct {
	Unit journal.Unit
}

func New(unit journal.Unit) Formatter {
	return Formatter{Unit: unit}
}

// Signed renders v with an explicit sign: "+268.00", "-101.00", "+2.7R".
func (f Formatter) Signed(v float64) string {
	if f.Unit == journal.RiskMultiple {
		return SignedR(v)
	}
	return SignedCurrency(v)
}

// Unsigned renders a magnitude such as an average loss or a drawdown.
func (f Formatter) Unsigned(v float64) string {
	if f.Unit == journal.RiskMultiple {
		return fixed(math.Abs(v), rPlaces) + "R"
	}
	return fixed(math.Abs(v), currencyPlaces)
}

// Pick returns the metric matching the formatter unit.
func (f Formatter) Pick(currency, r float64) float64 {
	if f.Unit == journal.RiskMultiple {
		return r
	}
	return currency
}

// RR renders an optional risk multiple; nil shows as zero.
func (f Formatter) RR(rr *float64) string {
	if rr == nil {
		return SignedR(0)
	}
	return SignedR(*rr)
}

func SignedCurrency(v float64) string {
	return signed(v, currencyPlaces)
}

func SignedR(v float64) string {
	return signed(v, rPlaces) + "R"
}

// Ratio renders a profit factor. +Inf has no finite display value.
func Ratio(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsNaN(v):
		return "0.00"
	}
	return fixed(v, 2)
}

// Percent renders a 0-100 rate with one decimal place.
func Percent(v float64) string {
	return fixed(v, 1) + "%"
}

// Days renders a duration in calendar days.
func Days(v float64) string {
	d := fixed(v, 1)
	if d == "1.0" {
		return "1.0 day"
	}
	return d + " days"
}

func signed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	d := decimal.NewFromFloat(v).Round(places)
	if d.IsNegative() {
		return d.StringFixed(places)
	}
	return "+" + d.StringFixed(places)
}

func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
