package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mjarosz/relwatch"
)

// Text renders the report as plain text with an aligned statistics block.
func Text(report *relwatch.Report) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 40)

	b.WriteString(rule + "\n")
	b.WriteString("RELEASE NOTES SUMMARY\n")
	b.WriteString("Generated: " + report.Generated.Format(timestampLayout) + "\n")
	fmt.Fprintf(&b, "Time range: Last %d months\n", report.Months)
	b.WriteString(rule + "\n\n")

	if len(report.Releases) == 0 {
		b.WriteString("No releases found in the specified time range.")
		return b.String()
	}

	for _, g := range report.Releases {
		b.WriteString("\n## " + g.DateStr + "\n")
		b.WriteString(thin + "\n")
		for _, item := range g.Items {
			fmt.Fprintf(&b, "  [%s] %s\n", strings.ToUpper(string(item.Category)), plainText(item))
			if len(item.Links) > 0 {
				b.WriteString("    Links:\n")
				for _, link := range item.Links {
					b.WriteString("      - " + link + "\n")
				}
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + rule + "\n")
	b.WriteString("STATISTICS\n")
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "Total releases: %d\n", len(report.Releases))
	fmt.Fprintf(&b, "Total items: %d\n", relwatch.TotalItems(report.Releases))

	counts := relwatch.CountByCategory(report.Releases)
	if len(counts) > 0 {
		b.WriteString("\nItems by category:\n")
		width := 0
		for _, c := range counts {
			if w := runewidth.StringWidth(string(c.Category)); w > width {
				width = w
			}
		}
		for _, c := range counts {
			fmt.Fprintf(&b, "  - %s  %d\n", runewidth.FillRight(string(c.Category), width), c.Count)
		}
	}

	return b.String()
}
