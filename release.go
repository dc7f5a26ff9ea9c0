package relwatch

import (
	"sort"
	"time"
)

// ReleaseItem is one categorized unit of change description. HTML preserves
// the raw markup payload for HTML rendering; Text is the flattened plain
// text used by the other formats. Items with identical HTML payloads are
// considered duplicates.
type ReleaseItem struct {
	HTML     string   `json:"-"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Links    []string `json:"urls"`
}

// ReleaseGroup is the set of all release items attributed to a single date.
// Date drives filtering and sorting; DateStr keeps the date exactly as it
// appeared in the source for display fidelity. A zero Date marks a group
// whose date never parsed; such groups never reach rendered output.
type ReleaseGroup struct {
	Date    time.Time      `json:"date"`
	DateStr string         `json:"date_str"`
	Items   []*ReleaseItem `json:"items"`
	URL     string         `json:"url"`
}

// Validate returns an error if the group violates the model invariants.
func (g *ReleaseGroup) Validate() error {
	if len(g.Items) == 0 {
		return Errorf(EINVALID, "release group requires at least one item")
	}
	if g.URL == "" {
		return Errorf(EINVALID, "release group source URL required")
	}
	return nil
}

// CutoffDate computes the retention window boundary: now minus months of a
// fixed 30 days each. The approximation drifts from true calendar months by
// a few days; it is kept deliberately so the boundary stays constant-time
// and output matches across runs.
func CutoffDate(now time.Time, months int) time.Time {
	return now.Add(-time.Duration(months) * 30 * 24 * time.Hour)
}

// FilterByDate returns the groups whose parsed date is on or after the
// cutoff (inclusive lower bound). Groups without a parsed date are dropped.
func FilterByDate(groups []*ReleaseGroup, cutoff time.Time) []*ReleaseGroup {
	filtered := make([]*ReleaseGroup, 0, len(groups))
	for _, g := range groups {
		if !g.Date.IsZero() && !g.Date.Before(cutoff) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// SortByDateDesc sorts groups newest first. The sort is stable so groups
// sharing a date keep their discovery order.
func SortByDateDesc(groups []*ReleaseGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
}

// Report is the run-scoped collection handed to a renderer, together with
// the metadata each format reproduces.
type Report struct {
	URL       string
	Months    int
	Cutoff    time.Time
	Generated time.Time
	Releases  []*ReleaseGroup
}

// CategoryCount is one entry of a per-category item tally.
type CategoryCount struct {
	Category Category
	Count    int
}

// CountByCategory tallies items per category, ordered by descending count.
// Ties keep the discovery order of each category's first occurrence, so the
// ordering is deterministic for a given collection.
func CountByCategory(groups []*ReleaseGroup) []CategoryCount {
	order := make(map[Category]int)
	counts := make(map[Category]int)
	for _, g := range groups {
		for _, item := range g.Items {
			if _, seen := counts[item.Category]; !seen {
				order[item.Category] = len(order)
			}
			counts[item.Category]++
		}
	}

	result := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		result = append(result, CategoryCount{Category: c, Count: n})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return order[result[i].Category] < order[result[j].Category]
	})
	return result
}

// TotalItems returns the number of items across all groups.
func TotalItems(groups []*ReleaseGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	return total
}

// DateRange returns the oldest and newest parsed dates across groups.
// ok is false when no group carries a date.
func DateRange(groups []*ReleaseGroup) (oldest, newest time.Time, ok bool) {
	for _, g := range groups {
		if g.Date.IsZero() {
			continue
		}
		if !ok {
			oldest, newest = g.Date, g.Date
			ok = true
			continue
		}
		if g.Date.Before(oldest) {
			oldest = g.Date
		}
		if g.Date.After(newest) {
			newest = g.Date
		}
	}
	return oldest, newest, ok
}
