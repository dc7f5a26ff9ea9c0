package render

import (
	"fmt"
	"strings"

	"github.com/mjarosz/relwatch"
)

// Markdown renders the report as a Markdown document. When a converter is
// supplied, each item's raw payload is converted to Markdown so inline
// formatting and links survive; otherwise the flattened text is used.
func Markdown(report *relwatch.Report, conv relwatch.Converter) string {
	var b strings.Builder

	b.WriteString("# Release Notes Summary\n\n")
	fmt.Fprintf(&b, "**Source:** [%s](%s)  \n", report.URL, report.URL)
	b.WriteString("**Generated:** " + report.Generated.Format(timestampLayout) + "  \n")
	fmt.Fprintf(&b, "**Time range:** Last %d months\n\n", report.Months)
	b.WriteString("---\n")

	if len(report.Releases) == 0 {
		b.WriteString("\n*No releases found in the specified time range.*")
		return b.String()
	}

	for _, g := range report.Releases {
		b.WriteString("\n## " + g.DateStr + "\n\n")
		for _, item := range g.Items {
			fmt.Fprintf(&b, "- `%s` %s\n", item.Category, itemMarkdown(item, conv))
			for _, link := range item.Links {
				fmt.Fprintf(&b, "  - [Link](%s)\n", link)
			}
		}
	}

	b.WriteString("\n---\n\n")
	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- **Total releases:** %d\n", len(report.Releases))
	fmt.Fprintf(&b, "- **Total items:** %d\n", relwatch.TotalItems(report.Releases))

	counts := relwatch.CountByCategory(report.Releases)
	if len(counts) > 0 {
		b.WriteString("\n### Items by category\n\n")
		for _, c := range counts {
			fmt.Fprintf(&b, "- `%s`: %d\n", c.Category, c.Count)
		}
	}

	return b.String()
}

// itemMarkdown renders one item's text for a Markdown bullet. Converted
// output is collapsed onto a single line so it cannot break the list
// structure; conversion failures fall back to the flattened text.
func itemMarkdown(item *relwatch.ReleaseItem, conv relwatch.Converter) string {
	if conv == nil {
		return plainText(item)
	}

	md, err := conv.Convert(item.HTML)
	if err != nil || strings.TrimSpace(md) == "" {
		return plainText(item)
	}

	md = strings.Join(strings.Fields(md), " ")
	return strings.TrimSpace(strings.ReplaceAll(md, SelfLinkURL, ""))
}
