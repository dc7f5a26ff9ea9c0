package relwatch

import (
	"strings"
	"time"
)

// dateLayouts are the calendar formats tried by ParseDate, in order.
// US month/day slash order is tried before day-first, so an ambiguous
// "01/02/2024" always resolves as January 2. The order is part of the
// observable behavior and must not be rearranged.
var dateLayouts = []string{
	"January 2, 2006", // full month name
	"Jan 2, 2006",     // abbreviated month name
	"2006-01-02",      // ISO
	"1/2/2006",        // US slash order
	"2/1/2006",        // day-first slash order
}

// ParseDate parses a date-like substring into a calendar date. The input
// should already be isolated by a profile's date patterns; ParseDate does
// not search. It returns the first layout that parses successfully and
// false if none do. It never panics on malformed input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
