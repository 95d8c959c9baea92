package journal

import (
	"fmt"
	"strings"
)

// Mood is an ordinal self-assessment; higher is better.
type Mood int

const (
	MoodUnset Mood = iota
	MoodTerrible
	MoodBad
	MoodNeutral
	MoodGood
	MoodGreat
)

var moodNames = [...]string{"unset", "terrible", "bad", "neutral", "good", "great"}

func (m Mood) String() string {
	if m < MoodUnset || int(m) >= len(moodNames) {
		return fmt.Sprintf("mood(%d)", int(m))
	}
	return moodNames[m]
}

func ParseMood(s string) (Mood, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range moodNames {
		if name == s {
			return Mood(i), nil
		}
	}
	return MoodUnset, fmt.Errorf("unknown mood %q", s)
}

// Entry is the daily journal entry. There is at most one per date and it
// relates to trades only through that date.
type Entry struct {
	Date           string `json:"date" yaml:"date"`
	Mood           Mood   `json:"mood" yaml:"mood"`
	FollowedSystem bool   `json:"followedSystem" yaml:"followed_system"`
	IsNewsDay      bool   `json:"isNewsDay" yaml:"is_news_day"`
	PreMarket      string `json:"preMarket,omitempty" yaml:"pre_market,omitempty"`
	Review         string `json:"review,omitempty" yaml:"review,omitempty"`
	Lessons        string `json:"lessons,omitempty" yaml:"lessons,omitempty"`
}

// EntriesByDate indexes entries by their date key. Later duplicates win.
func EntriesByDate(entries []Entry) map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Date] = e
	}
	return m
}
