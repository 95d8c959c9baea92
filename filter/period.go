package filter

import (
	"time"

	"github.com/rustyeddy/tradestats/journal"
)

// Period is a date-window shorthand.
type Period string

const (
	Today   Period = "today"
	Week    Period = "week" // Monday through Sunday
	Month   Period = "month"
	Quarter Period = "quarter"
	Year    Period = "year"
	Last7   Period = "7d" // rolling, including today
	Last30  Period = "30d"
	Last90  Period = "90d"
	All     Period = "all"
)

// Range resolves p against now into inclusive YYYY-MM-DD bounds. ok is
// false for All, the empty period and unknown values.
func (p Period) Range(now time.Time) (from, to string, ok bool) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var start, end time.Time
	switch p {
	case Today:
		start, end = day, day
	case Week:
		offset := (int(day.Weekday()) + 6) % 7
		start = day.AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 6)
	case Month:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		end = start.AddDate(0, 1, -1)
	case Quarter:
		first := time.Month((int(day.Month())-1)/3*3 + 1)
		start = time.Date(day.Year(), first, 1, 0, 0, 0, 0, day.Location())
		end = start.AddDate(0, 3, -1)
	case Year:
		start = time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		end = time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, day.Location())
	case Last7:
		start, end = day.AddDate(0, 0, -6), day
	case Last30:
		start, end = day.AddDate(0, 0, -29), day
	case Last90:
		start, end = day.AddDate(0, 0, -89), day
	default:
		return "", "", false
	}
	return start.Format(journal.DateLayout), end.Format(journal.DateLayout), true
}
