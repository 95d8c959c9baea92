package cmd

import (
	"testing"
	"time"

	"github.com/rustyeddy/tradestats/filter"
	"github.com/rustyeddy/tradestats/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFlagsCriteria(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 10, 19, 12, 0, 0, 0, time.UTC)
	f := filterFlags{
		period:    "Month",
		from:      "2025-10-02",
		symbol:    "aapl",
		direction: "LONG",
		followed:  "yes",
		news:      "n",
		closed:    true,
		winners:   true,
	}

	c, err := f.criteria(now, "all")
	require.NoError(t, err)

	assert.Equal(t, filter.Month, c.Period)
	assert.Equal(t, now, c.Now)
	assert.Equal(t, "2025-10-02", c.From.Unwrap().Format(journal.DateLayout))
	assert.True(t, c.To.IsNone())
	assert.Equal(t, "AAPL", c.Symbol.Unwrap())
	assert.True(t, c.Setup.IsNone())
	assert.Equal(t, journal.Long, c.Direction.Unwrap())
	assert.True(t, c.FollowedSystem.Unwrap())
	assert.False(t, c.NewsDay.Unwrap())
	assert.True(t, c.ClosedOnly)
	assert.True(t, c.WinnersOnly)
}

func TestFilterFlagsDefaultPeriod(t *testing.T) {
	t.Parallel()

	var f filterFlags
	c, err := f.criteria(time.Now(), "30d")
	require.NoError(t, err)
	assert.Equal(t, filter.Last30, c.Period)

	c, err = f.criteria(time.Now(), "all")
	require.NoError(t, err)
	assert.True(t, c.IsZero())
}

func TestFilterFlagsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags filterFlags
		msg   string
	}{
		{"bad from", filterFlags{from: "yesterday"}, `--from: invalid date "yesterday"`},
		{"bad to", filterFlags{to: "2025-13-01"}, "--to: invalid date"},
		{"bad followed", filterFlags{followed: "sometimes"}, "--followed"},
		{"bad news", filterFlags{news: "maybe"}, "--news"},
		{"bad period", filterFlags{period: "decade"}, "invalid criteria"},
		{"closed and open", filterFlags{closed: true, open: true}, "exclusive"},
		{"bad direction", filterFlags{direction: "up"}, "unknown direction"},
		{"inverted range", filterFlags{from: "2025-10-05", to: "2025-10-01"}, "from is after to"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.flags.criteria(time.Now(), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseYesNo(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"yes", "Y", "true", "1", " YES "} {
		v, err := parseYesNo(s)
		assert.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "N", "false", "0"} {
		v, err := parseYesNo(s)
		assert.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := parseYesNo("")
	assert.Error(t, err)
}
