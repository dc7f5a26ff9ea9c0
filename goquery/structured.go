package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/mjarosz/relwatch"
)

// minStructuredTextLen is the flattened-text length a paragraph-level
// sibling must exceed to become an item. Shorter fragments are stray
// whitespace or empty containers, not release notes.
const minStructuredTextLen = 10

// extractStructured walks the profile's header tags in document order,
// looking for headers whose text carries a parseable date. Content
// following such a header, up to the next header, forms one release group.
func extractStructured(root *goquery.Selection, profile *relwatch.Profile, sourceURL string) []*relwatch.ReleaseGroup {
	var groups []*relwatch.ReleaseGroup

	for _, headerTag := range profile.DateHeaders {
		root.Find(headerTag).Each(func(_ int, header *goquery.Selection) {
			headerText := flatText(header)

			for _, re := range profile.DatePatterns {
				match := re.FindString(headerText)
				if match == "" {
					continue
				}

				date, ok := relwatch.ParseDate(match)
				if !ok {
					// A matching pattern with an unparseable value lets
					// the remaining patterns have a go.
					continue
				}

				if items := collectSiblings(header, profile); len(items) > 0 {
					groups = append(groups, &relwatch.ReleaseGroup{
						Date:    date,
						DateStr: match,
						Items:   items,
						URL:     sourceURL,
					})
				}

				// First pattern that both matches and parses wins for
				// this header.
				break
			}
		})
	}

	return groups
}

// collectSiblings gathers release items from the siblings following a date
// header. The walk stops at the next header tag, which marks the boundary
// of the next date's section.
func collectSiblings(header *goquery.Selection, profile *relwatch.Profile) []*relwatch.ReleaseItem {
	var items []*relwatch.ReleaseItem

	for sibling := header.Next(); sibling.Length() > 0; sibling = sibling.Next() {
		tag := goquery.NodeName(sibling)
		if profile.IsDateHeader(tag) {
			break
		}

		role := relwatch.RoleFromClass(sibling.AttrOr("class", ""))
		switch {
		case role != relwatch.RoleNone:
			if item, ok := newItem(sibling, role, minStructuredTextLen); ok {
				items = append(items, item)
			}

		case profile.IsContent(tag):
			if tag == "ul" || tag == "ol" {
				// Expand lists: one item per entry, so a bulleted list
				// under a date keeps its granularity.
				sibling.Find("li").Each(func(_ int, li *goquery.Selection) {
					role := relwatch.RoleFromClass(li.AttrOr("class", ""))
					if item, ok := newItem(li, role, 0); ok {
						items = append(items, item)
					}
				})
			} else {
				if item, ok := newItem(sibling, role, minStructuredTextLen); ok {
					items = append(items, item)
				}
			}
		}
	}

	return items
}

// newItem builds a release item from an element, discarding it when the
// flattened text does not exceed minLen characters.
func newItem(sel *goquery.Selection, role relwatch.Role, minLen int) (*relwatch.ReleaseItem, bool) {
	text := flatText(sel)
	if text == "" || textLen(text) <= minLen {
		return nil, false
	}

	payload := outerHTML(sel)
	if payload == "" {
		return nil, false
	}

	return &relwatch.ReleaseItem{
		HTML:     payload,
		Text:     text,
		Category: relwatch.Categorize(role, text),
		Links:    extractLinks(sel),
	}, true
}
