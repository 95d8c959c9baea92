package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	trade := Trade{
		ID:         "trade-12345678-abcd",
		Date:       "2025-10-01",
		ExitDate:   "2025-10-02",
		Symbol:     "AAPL",
		Direction:  Long,
		EntryPrice: 187.2,
		ExitPrice:  fp(189.88),
		PnL:        268,
		RR:         fp(2.7),
		Setup:      "breakout",
		Tags:       []string{"a+", "gap up"},
		Notes:      "held through the pullback",
	}

	result := FormatTradeOrg(trade)

	assert.Contains(t, result, "** Trade: AAPL LONG (trade-12) :a+:gap_up:")

	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":TRADE_ID: trade-12345678-abcd")
	assert.Contains(t, result, ":DATE: 2025-10-01")
	assert.Contains(t, result, ":EXIT_DATE: 2025-10-02")
	assert.Contains(t, result, ":SYMBOL: AAPL")
	assert.Contains(t, result, ":DIRECTION: long")
	assert.Contains(t, result, ":ENTRY_PRICE: 187.20000")
	assert.Contains(t, result, ":EXIT_PRICE: 189.88000")
	assert.Contains(t, result, ":PNL: 268.00")
	assert.Contains(t, result, ":RR: 2.70")
	// A non-zero exit price closes the trade even without a status.
	assert.Contains(t, result, ":STATUS: closed")
	assert.Contains(t, result, ":SETUP: breakout")
	assert.Contains(t, result, ":END:")

	assert.Contains(t, result, "*** Review\nheld through the pullback\n")
}

func TestFormatTradeOrgShortID(t *testing.T) {
	t.Parallel()

	result := FormatTradeOrg(Trade{ID: "short", Symbol: "MSFT", Direction: Short})
	assert.Contains(t, result, "** Trade: MSFT SHORT (short)\n")
}

func TestFormatTradeOrgOpenTrade(t *testing.T) {
	t.Parallel()

	result := FormatTradeOrg(Trade{
		ID:        "open-trade",
		Date:      "2025-10-03",
		Symbol:    "TSLA",
		Direction: Short,
		ExitPrice: fp(0),
		PnL:       -12.5,
	})

	assert.Contains(t, result, ":PNL: -12.50")
	assert.Contains(t, result, ":STATUS: open")
	assert.NotContains(t, result, ":RR:")
	assert.NotContains(t, result, ":EXIT_DATE:")
	assert.NotContains(t, result, ":SETUP:")
	assert.Contains(t, result, "*** Review\n- \n")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: "trade-1", Symbol: "AAPL", Direction: Long},
		{ID: "trade-2", Symbol: "MSFT", Direction: Short},
	}

	result := FormatTradesOrg(trades)
	assert.Equal(t, 2, strings.Count(result, "** Trade:"))
	assert.Contains(t, result, "\n\n** Trade: MSFT")
	assert.Empty(t, FormatTradesOrg(nil))
}

func TestFormatEntryOrg(t *testing.T) {
	t.Parallel()

	result := FormatEntryOrg(Entry{
		Date:           "2025-10-02",
		Mood:           MoodGood,
		FollowedSystem: true,
		Review:         "waited for the pullback",
	})

	assert.True(t, strings.HasPrefix(result, "* Journal: 2025-10-02\n"))
	assert.Contains(t, result, ":MOOD: good")
	assert.Contains(t, result, ":FOLLOWED_SYSTEM: true")
	assert.Contains(t, result, ":NEWS_DAY: false")
	assert.Contains(t, result, "** Review\nwaited for the pullback\n")
	assert.NotContains(t, result, "** Pre-market")
	assert.NotContains(t, result, "** Lessons")
}
