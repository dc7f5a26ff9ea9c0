package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/mjarosz/relwatch"
	"golang.org/x/net/html"
)

// minUnstructuredTextLen is the stricter length threshold for fallback
// items. The fallback scans without header anchoring and risks false
// positives, so it demands more substance than the structured pass.
const minUnstructuredTextLen = 20

// seenPayloads is the run-scoped dedup accumulator. Items are duplicates
// when their raw markup payloads are byte-identical; payloads are compared
// through 64-bit xxhash digests.
type seenPayloads map[uint64]struct{}

// add records a payload and reports whether it was new.
func (s seenPayloads) add(payload string) bool {
	digest := xxhash.Sum64String(payload)
	if _, ok := s[digest]; ok {
		return false
	}
	s[digest] = struct{}{}
	return true
}

// extractUnstructured is the fallback for pages without usable date
// headers. Pass A scans role-marked elements (higher confidence) and pass
// B scans every text node for embedded dates (catch-all). Both passes emit
// single-item groups, gated on the retention window and the shared dedup
// accumulator.
func extractUnstructured(root *goquery.Selection, profile *relwatch.Profile, sourceURL string, cutoff time.Time) []*relwatch.ReleaseGroup {
	seen := make(seenPayloads)
	groups := scanRoleMarked(root, profile, sourceURL, cutoff, seen)
	groups = append(groups, scanTextNodes(root, profile, sourceURL, cutoff, seen)...)
	return groups
}

// roleSelector matches elements carrying a release-role marker class.
func roleSelector() string {
	classes := relwatch.RoleClasses()
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		parts = append(parts, "div."+c)
	}
	return strings.Join(parts, ", ")
}

// scanRoleMarked finds role-marked elements anywhere under root and dates
// them from nearby structure: the previous sibling, the parent, then the
// next sibling, first match wins.
func scanRoleMarked(root *goquery.Selection, profile *relwatch.Profile, sourceURL string, cutoff time.Time, seen seenPayloads) []*relwatch.ReleaseGroup {
	var groups []*relwatch.ReleaseGroup

	root.Find(roleSelector()).Each(func(_ int, div *goquery.Selection) {
		date, dateStr, ok := nearbyDate(div, profile)
		if !ok || date.Before(cutoff) {
			return
		}

		role := relwatch.RoleFromClass(div.AttrOr("class", ""))
		item, ok := newItem(div, role, minUnstructuredTextLen)
		if !ok {
			return
		}
		if !seen.add(item.HTML) {
			return
		}

		groups = append(groups, &relwatch.ReleaseGroup{
			Date:    date,
			DateStr: dateStr,
			Items:   []*relwatch.ReleaseItem{item},
			URL:     sourceURL,
		})
	})

	return groups
}

// nearbyDate looks for a date-pattern match in the element's immediate
// neighborhood. A candidate whose matched substring fails to parse does not
// block later candidates.
func nearbyDate(sel *goquery.Selection, profile *relwatch.Profile) (time.Time, string, bool) {
	for _, cand := range []*goquery.Selection{sel.Prev(), sel.Parent(), sel.Next()} {
		if cand.Length() == 0 {
			continue
		}
		match, ok := profile.MatchDate(flatText(cand))
		if !ok {
			continue
		}
		if date, ok := relwatch.ParseDate(match); ok {
			return date, match, true
		}
	}
	return time.Time{}, "", false
}

// scanTextNodes scans every text node under root for embedded dates and
// uses the node's parent element as the content source.
func scanTextNodes(root *goquery.Selection, profile *relwatch.Profile, sourceURL string, cutoff time.Time, seen seenPayloads) []*relwatch.ReleaseGroup {
	var groups []*relwatch.ReleaseGroup

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if g := groupsFromTextNode(n, profile, sourceURL, cutoff, seen); g != nil {
				groups = append(groups, g...)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range root.Nodes {
		walk(n)
	}

	return groups
}

func groupsFromTextNode(n *html.Node, profile *relwatch.Profile, sourceURL string, cutoff time.Time, seen seenPayloads) []*relwatch.ReleaseGroup {
	text := strings.TrimSpace(n.Data)
	if text == "" {
		return nil
	}

	var groups []*relwatch.ReleaseGroup
	for _, match := range profile.MatchAllDates(text) {
		date, ok := relwatch.ParseDate(match)
		if !ok || date.Before(cutoff) {
			continue
		}

		parent := n.Parent
		if parent == nil || parent.Type != html.ElementNode {
			continue
		}
		if parent.Data == "script" || parent.Data == "style" {
			continue
		}

		content := flatTextNode(parent)
		if content == "" || textLen(content) <= minUnstructuredTextLen {
			continue
		}

		payload := outerHTMLNode(parent)
		if payload == "" || !seen.add(payload) {
			continue
		}

		role := relwatch.RoleFromClass(attrValue(parent, "class"))
		groups = append(groups, &relwatch.ReleaseGroup{
			Date:    date,
			DateStr: match,
			Items: []*relwatch.ReleaseItem{{
				HTML:     payload,
				Text:     content,
				Category: relwatch.Categorize(role, content),
				Links:    extractLinksNode(parent),
			}},
			URL: sourceURL,
		})
	}

	return groups
}
