package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/mjarosz/relwatch"
)

// categoryStyle holds the HTML renderer's per-category colors: the accent
// border of an item card and the badge background. New categories only
// need a row here, not new rendering logic.
type categoryStyle struct {
	category relwatch.Category
	border   string
	badge    string
}

var categoryStyles = []categoryStyle{
	{relwatch.CategoryGA, "#4CAF50", "#4CAF50"},
	{relwatch.CategoryPublicPreview, "#FF9800", "#FF9800"},
	{relwatch.CategoryChange, "#2196F3", "#2196F3"},
	{relwatch.CategoryAnnouncement, "#9C27B0", "#9C27B0"},
	{relwatch.CategoryBreaking, "#f44336", "#E91E63"},
	{relwatch.CategoryDeprecated, "#f44336", "#f44336"},
	{relwatch.CategoryFixed, "#00BCD4", "#00BCD4"},
	{relwatch.CategoryUpdate, "#795548", "#795548"},
	{relwatch.CategoryLibraries, "#607D8B", "#607D8B"},
	{relwatch.CategorySecurity, "#E91E63", "#E91E63"},
	{relwatch.CategoryIssue, "#ffc107", "#ffc107"},
}

// cssClass derives a CSS class name from a category identifier.
func cssClass(c relwatch.Category) string {
	return strings.ReplaceAll(string(c), "-", "")
}

// badgeLabel is the category text shown inside an item badge.
func badgeLabel(c relwatch.Category) string {
	return strings.ToUpper(strings.ReplaceAll(string(c), "-", " "))
}

const baseStylesheet = `        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            line-height: 1.6;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background: #f5f5f5;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            border-radius: 10px;
            margin-bottom: 30px;
        }
        .header h1 {
            margin: 0;
            font-size: 2em;
        }
        .meta {
            opacity: 0.9;
            margin-top: 10px;
        }
        .release-date {
            background: white;
            border-radius: 8px;
            padding: 20px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .release-date h2 {
            color: #333;
            margin-top: 0;
            border-bottom: 2px solid #667eea;
            padding-bottom: 10px;
        }
        .release-item {
            margin: 15px 0;
            padding: 10px;
            background: #f9f9f9;
            border-left: 4px solid #ccc;
            border-radius: 4px;
        }
        .category {
            display: inline-block;
            padding: 2px 8px;
            border-radius: 3px;
            font-size: 0.85em;
            font-weight: bold;
            margin-right: 10px;
        }
        .stats {
            background: white;
            border-radius: 8px;
            padding: 20px;
            margin-top: 30px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .stats h2 {
            color: #333;
            margin-top: 0;
        }
        a {
            color: #667eea;
            text-decoration: none;
        }
        a:hover {
            text-decoration: underline;
        }
        .source-link {
            margin-top: 20px;
            text-align: center;
        }
        .no-results {
            background: #fff3cd;
            border: 1px solid #ffc107;
            border-radius: 5px;
            padding: 20px;
            margin: 20px 0;
            text-align: center;
        }
`

// stylesheet builds the full embedded stylesheet: the static base plus one
// border rule and one badge rule per category.
func stylesheet() string {
	var b strings.Builder
	b.WriteString(baseStylesheet)
	for _, s := range categoryStyles {
		fmt.Fprintf(&b, "        .release-item.%s { border-left-color: %s; }\n", cssClass(s.category), s.border)
	}
	for _, s := range categoryStyles {
		fmt.Fprintf(&b, "        .category.%s { background: %s; color: white; }\n", cssClass(s.category), s.badge)
	}
	return b.String()
}

// HTML renders the report as a standalone HTML document. Item payloads are
// emitted verbatim to preserve the original markup, including any
// self-links.
func HTML(report *relwatch.Report) string {
	var b strings.Builder
	src := html.EscapeString(report.URL)

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("    <title>Release Notes Summary</title>\n")
	b.WriteString("    <style>\n")
	b.WriteString(stylesheet())
	b.WriteString("    </style>\n</head>\n<body>\n")

	b.WriteString("    <div class=\"header\">\n")
	b.WriteString("        <h1>Release Notes Summary</h1>\n")
	b.WriteString("        <div class=\"meta\">\n")
	fmt.Fprintf(&b, "            <p>Generated: %s</p>\n", report.Generated.Format(timestampLayout))
	fmt.Fprintf(&b, "            <p>Source: <a href=\"%s\" style=\"color: white; text-decoration: underline;\">%s</a></p>\n", src, src)
	fmt.Fprintf(&b, "            <p>Time range: Last %d months</p>\n", report.Months)
	b.WriteString("        </div>\n    </div>\n")

	if len(report.Releases) == 0 {
		b.WriteString("    <div class=\"no-results\">\n")
		b.WriteString("        <h2>No Release Notes Found</h2>\n")
		b.WriteString("        <p>No release notes were found in the specified time range.</p>\n")
		b.WriteString("        <p>This could be due to:</p>\n")
		b.WriteString("        <ul style=\"text-align: left; display: inline-block;\">\n")
		fmt.Fprintf(&b, "            <li>No releases in the past %d months</li>\n", report.Months)
		b.WriteString("            <li>Different page structure than expected</li>\n")
		b.WriteString("            <li>Content loaded dynamically via JavaScript</li>\n")
		b.WriteString("        </ul>\n    </div>\n")
	} else {
		for _, g := range report.Releases {
			b.WriteString("    <div class=\"release-date\">\n")
			fmt.Fprintf(&b, "        <h2>%s</h2>\n", html.EscapeString(g.DateStr))
			for _, item := range g.Items {
				class := cssClass(item.Category)
				fmt.Fprintf(&b, "        <div class=\"release-item %s\">\n", class)
				fmt.Fprintf(&b, "            <span class=\"category %s\">%s</span>\n", class, badgeLabel(item.Category))
				fmt.Fprintf(&b, "            %s\n", item.HTML)
				b.WriteString("        </div>\n")
			}
			b.WriteString("    </div>\n")
		}
	}

	b.WriteString("    <div class=\"stats\">\n")
	b.WriteString("        <h2>Summary Statistics</h2>\n")
	fmt.Fprintf(&b, "        <p><strong>Total Releases:</strong> %d</p>\n", len(report.Releases))
	fmt.Fprintf(&b, "        <p><strong>Total Items:</strong> %d</p>\n", relwatch.TotalItems(report.Releases))

	if oldest, newest, ok := relwatch.DateRange(report.Releases); ok {
		fmt.Fprintf(&b, "        <p><strong>Date Range:</strong> %s to %s</p>\n",
			oldest.Format("2006-01-02"), newest.Format("2006-01-02"))
	} else {
		fmt.Fprintf(&b, "        <p><strong>Search Range:</strong> %s to %s</p>\n",
			report.Cutoff.Format("2006-01-02"), report.Generated.Format("2006-01-02"))
	}

	counts := relwatch.CountByCategory(report.Releases)
	if len(counts) > 0 {
		b.WriteString("        <h3>Items by Category</h3>\n        <ul>\n")
		for _, c := range counts {
			fmt.Fprintf(&b, "            <li><strong>%s:</strong> %d</li>\n", c.Category.DisplayName(), c.Count)
		}
		b.WriteString("        </ul>\n")
	}
	b.WriteString("    </div>\n")

	b.WriteString("    <div class=\"source-link\">\n")
	fmt.Fprintf(&b, "        <a href=\"%s\" target=\"_blank\">View Full Release Notes</a>\n", src)
	b.WriteString("    </div>\n</body>\n</html>")

	return b.String()
}
