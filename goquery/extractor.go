// Package goquery implements release-note extraction over parsed HTML
// using PuerkitoBio/goquery. Two strategies run in sequence: a structured
// pass anchored on date-bearing headers, and an unstructured fallback that
// scans role-marked elements and raw text nodes when the page has no usable
// header structure.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjarosz/relwatch"
	"golang.org/x/net/html"
)

// Ensure Extractor implements relwatch.Extractor at compile time.
var _ relwatch.Extractor = (*Extractor)(nil)

// Extractor is the goquery-backed implementation of relwatch.Extractor.
// It is stateless; all run-scoped state (the dedup accumulator) lives on
// the stack of a single Extract call.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns one release group per discovered
// date. The structured pass runs first; the unstructured fallback runs
// only when the structured pass yields nothing. The cutoff bounds the
// fallback's discovery window. Date filtering of structured results is the
// caller's concern.
func (e *Extractor) Extract(rawHTML string, profile *relwatch.Profile, sourceURL string, cutoff time.Time) ([]*relwatch.ReleaseGroup, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, relwatch.Errorf(relwatch.EINVALID, "failed to parse HTML: %v", err)
	}

	// Script and style text would otherwise pollute flattened text and the
	// text-node scan.
	doc.Find("script, style").Remove()

	root := contentArea(doc, profile)

	groups := extractStructured(root, profile, sourceURL)
	if len(groups) == 0 {
		groups = extractUnstructured(root, profile, sourceURL, cutoff)
	}

	return groups, nil
}

// contentArea returns the main content area: the first matching container
// selector from the profile, falling back to <body> and finally the whole
// document.
func contentArea(doc *goquery.Document, profile *relwatch.Profile) *goquery.Selection {
	for _, selector := range profile.Containers {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// flatText returns the whitespace-normalized text of a selection.
func flatText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// flatTextNode is flatText for a raw html node.
func flatTextNode(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// outerHTML renders a selection back to markup. The raw payload is what
// the HTML renderer emits verbatim and what deduplication compares.
func outerHTML(sel *goquery.Selection) string {
	h, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return h
}

// outerHTMLNode renders a raw node back to markup.
func outerHTMLNode(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

// extractLinks collects every outgoing hyperlink target in the selection's
// subtree. Duplicates are kept and insertion order is preserved.
func extractLinks(sel *goquery.Selection) []string {
	var links []string
	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok && href != "" {
			links = append(links, href)
		}
	})
	return links
}

// extractLinksNode is extractLinks for a raw html node.
func extractLinksNode(n *html.Node) []string {
	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := attrValue(n, "href"); href != "" {
				links = append(links, href)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return links
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textLen counts characters, not bytes, for the minimum-length thresholds.
func textLen(s string) int {
	return len([]rune(s))
}
