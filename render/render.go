// Package render turns a filtered, sorted release collection into one of
// the four output formats. Each renderer is a pure function over a
// relwatch.Report and recomputes its own summary statistics.
package render

import (
	"strings"

	"github.com/mjarosz/relwatch"
)

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
)

// SelfLinkURL is the canonical self-link that release-notes pages embed in
// their own entries. Text, Markdown and JSON output strip it from item
// text; the HTML renderer emits the raw payload verbatim and keeps it.
const SelfLinkURL = "https://cloud.google.com/run/docs/release-notes"

// timestampLayout formats generation timestamps in human-readable output.
const timestampLayout = "2006-01-02 15:04:05"

// Render produces the report in the requested format. The converter is
// only consulted by the Markdown renderer and may be nil.
func Render(format Format, report *relwatch.Report, conv relwatch.Converter) (string, error) {
	switch format {
	case FormatText:
		return Text(report), nil
	case FormatMarkdown:
		return Markdown(report, conv), nil
	case FormatJSON:
		return JSON(report)
	case FormatHTML:
		return HTML(report), nil
	}
	return "", relwatch.Errorf(relwatch.EINVALID, "unknown output format %q", format)
}

// plainText returns an item's flattened text with the self-link removed.
func plainText(item *relwatch.ReleaseItem) string {
	return strings.TrimSpace(strings.ReplaceAll(item.Text, SelfLinkURL, ""))
}
