package journal

// Closed is a trade that has been settled. Settle resolves the legacy
// open/closed ambiguity once so that aggregation code never re-checks it.
type Closed struct {
	ID            string
	Date          string
	EffectiveDate string
	Symbol        string
	Direction     Direction
	Setup         string
	Tags          []string
	ExitPrice     float64
	PnL           float64
	RR            float64 // zero when the trade carried no risk multiple
	HasRR         bool
}

// Settle returns the closed form of t, or false when t is still open.
func Settle(t Trade) (Closed, bool) {
	if !t.IsClosed() {
		return Closed{}, false
	}

	c := Closed{
		ID:            t.ID,
		Date:          t.Date,
		EffectiveDate: t.EffectiveDate(),
		Symbol:        t.Symbol,
		Direction:     t.Direction,
		Setup:         t.Setup,
		Tags:          t.Tags,
		PnL:           t.PnL,
	}
	if t.ExitPrice != nil {
		c.ExitPrice = *t.ExitPrice
	}
	if t.RR != nil {
		c.RR = *t.RR
		c.HasRR = true
	}
	return c, true
}

// SettleAll keeps the closed trades, in input order.
func SettleAll(trades []Trade) []Closed {
	out := make([]Closed, 0, len(trades))
	for _, t := range trades {
		if c, ok := Settle(t); ok {
			out = append(out, c)
		}
	}
	return out
}

// Value returns the trade result in the requested unit.
func (c Closed) Value(u Unit) float64 {
	if u == RiskMultiple {
		return c.RR
	}
	return c.PnL
}
