package render_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mjarosz/relwatch"
	"github.com/mjarosz/relwatch/mock"
	"github.com/mjarosz/relwatch/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport(releases ...*relwatch.ReleaseGroup) *relwatch.Report {
	return &relwatch.Report{
		URL:       "https://example.com/release-notes",
		Months:    12,
		Cutoff:    time.Date(2023, 6, 6, 0, 0, 0, 0, time.UTC),
		Generated: time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		Releases:  releases,
	}
}

func securityGroup() *relwatch.ReleaseGroup {
	return &relwatch.ReleaseGroup{
		Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DateStr: "March 1, 2024",
		URL:     "https://example.com/release-notes",
		Items: []*relwatch.ReleaseItem{{
			HTML:     `<p>Security patch released (CVE-1234) <a href="` + render.SelfLinkURL + `">notes</a></p>`,
			Text:     "Security patch released (CVE-1234) " + render.SelfLinkURL,
			Category: relwatch.CategorySecurity,
			Links:    []string{"/security/bulletin"},
		}},
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("renders categorized items with stripped self-link", func(t *testing.T) {
		t.Parallel()

		out := render.Text(testReport(securityGroup()))

		assert.Contains(t, out, "RELEASE NOTES SUMMARY")
		assert.Contains(t, out, "Time range: Last 12 months")
		assert.Contains(t, out, "## March 1, 2024")
		assert.Contains(t, out, "[SECURITY] Security patch released (CVE-1234)")
		assert.Contains(t, out, "- /security/bulletin")
		assert.Contains(t, out, "Total releases: 1")
		assert.Contains(t, out, "Total items: 1")
		assert.Contains(t, out, "security")
		assert.NotContains(t, out, render.SelfLinkURL)
	})

	t.Run("renders an empty-result notice", func(t *testing.T) {
		t.Parallel()

		out := render.Text(testReport())
		assert.Contains(t, out, "No releases found in the specified time range.")
	})
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("renders item payloads through the converter", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "Security patch released (CVE-1234) [notes](" + render.SelfLinkURL + ")", nil
			},
		}

		out := render.Markdown(testReport(securityGroup()), conv)

		assert.Contains(t, out, "# Release Notes Summary")
		assert.Contains(t, out, "**Source:** [https://example.com/release-notes](https://example.com/release-notes)")
		assert.Contains(t, out, "## March 1, 2024")
		assert.Contains(t, out, "- `security` Security patch released (CVE-1234)")
		assert.Contains(t, out, "- [Link](/security/bulletin)")
		assert.Contains(t, out, "- **Total releases:** 1")
		assert.NotContains(t, out, render.SelfLinkURL)
	})

	t.Run("falls back to flattened text when conversion fails", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) { return "", errors.New("boom") },
		}

		out := render.Markdown(testReport(securityGroup()), conv)
		assert.Contains(t, out, "- `security` Security patch released (CVE-1234)")
	})

	t.Run("works without a converter", func(t *testing.T) {
		t.Parallel()

		out := render.Markdown(testReport(securityGroup()), nil)
		assert.Contains(t, out, "- `security` Security patch released (CVE-1234)")
	})

	t.Run("renders an empty-result notice", func(t *testing.T) {
		t.Parallel()

		out := render.Markdown(testReport(), nil)
		assert.Contains(t, out, "*No releases found in the specified time range.*")
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("serializes metadata, statistics and releases", func(t *testing.T) {
		t.Parallel()

		out, err := render.JSON(testReport(securityGroup()))
		require.NoError(t, err)

		var doc struct {
			Metadata struct {
				Source          string `json:"source"`
				TimeRangeMonths int    `json:"time_range_months"`
				CutoffDate      string `json:"cutoff_date"`
			} `json:"metadata"`
			Statistics struct {
				TotalReleases int `json:"total_releases"`
				TotalItems    int `json:"total_items"`
				ByCategory    []struct {
					Category string `json:"category"`
					Count    int    `json:"count"`
				} `json:"by_category"`
			} `json:"statistics"`
			Releases []struct {
				Date    *string `json:"date"`
				DateStr string  `json:"date_str"`
				Items   []struct {
					Text     string   `json:"text"`
					Category string   `json:"category"`
					URLs     []string `json:"urls"`
				} `json:"items"`
				URL string `json:"url"`
			} `json:"releases"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &doc))

		assert.Equal(t, "https://example.com/release-notes", doc.Metadata.Source)
		assert.Equal(t, 12, doc.Metadata.TimeRangeMonths)
		assert.Equal(t, "2023-06-06T00:00:00Z", doc.Metadata.CutoffDate)
		assert.Equal(t, 1, doc.Statistics.TotalReleases)
		assert.Equal(t, 1, doc.Statistics.TotalItems)
		require.Len(t, doc.Statistics.ByCategory, 1)
		assert.Equal(t, "security", doc.Statistics.ByCategory[0].Category)

		require.Len(t, doc.Releases, 1)
		require.NotNil(t, doc.Releases[0].Date)
		assert.Equal(t, "2024-03-01T00:00:00Z", *doc.Releases[0].Date)
		assert.Equal(t, "March 1, 2024", doc.Releases[0].DateStr)
		require.Len(t, doc.Releases[0].Items, 1)
		assert.Equal(t, "Security patch released (CVE-1234)", doc.Releases[0].Items[0].Text)
		assert.Equal(t, []string{"/security/bulletin"}, doc.Releases[0].Items[0].URLs)
	})

	t.Run("marshals missing links as an empty array", func(t *testing.T) {
		t.Parallel()

		g := securityGroup()
		g.Items[0].Links = nil

		out, err := render.JSON(testReport(g))
		require.NoError(t, err)
		assert.Contains(t, out, `"urls": []`)
	})

	t.Run("renders an empty collection as a valid document", func(t *testing.T) {
		t.Parallel()

		out, err := render.JSON(testReport())
		require.NoError(t, err)
		assert.Contains(t, out, `"total_releases": 0`)
		assert.Contains(t, out, `"releases": []`)
	})
}

func TestHTML(t *testing.T) {
	t.Parallel()

	t.Run("renders raw payloads verbatim with category styling", func(t *testing.T) {
		t.Parallel()

		out := render.HTML(testReport(securityGroup()))

		assert.Contains(t, out, "<!DOCTYPE html>")
		assert.Contains(t, out, "Release Notes Summary")
		// Raw payload, self-link included.
		assert.Contains(t, out, render.SelfLinkURL)
		assert.Contains(t, out, `class="release-item security"`)
		assert.Contains(t, out, `<span class="category security">SECURITY</span>`)
		assert.Contains(t, out, "<strong>Date Range:</strong> 2024-03-01 to 2024-03-01")
		assert.Contains(t, out, "<strong>Security:</strong> 1")
		assert.Contains(t, out, "View Full Release Notes")
	})

	t.Run("hyphenated categories map to unhyphenated CSS classes", func(t *testing.T) {
		t.Parallel()

		g := securityGroup()
		g.Items[0].Category = relwatch.CategoryPublicPreview

		out := render.HTML(testReport(g))
		assert.Contains(t, out, `class="release-item publicpreview"`)
		assert.Contains(t, out, `<span class="category publicpreview">PUBLIC PREVIEW</span>`)
	})

	t.Run("explains an empty result", func(t *testing.T) {
		t.Parallel()

		out := render.HTML(testReport())

		assert.Contains(t, out, "No Release Notes Found")
		assert.Contains(t, out, "No releases in the past 12 months")
		assert.Contains(t, out, "Different page structure than expected")
		assert.Contains(t, out, "Content loaded dynamically via JavaScript")
		assert.Contains(t, out, "<strong>Search Range:</strong> 2023-06-06 to 2024-06-01")
	})
}

func TestRender_Dispatch(t *testing.T) {
	t.Parallel()

	report := testReport()

	for _, format := range []render.Format{
		render.FormatText, render.FormatMarkdown, render.FormatJSON, render.FormatHTML,
	} {
		out, err := render.Render(format, report, nil)
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, out)
	}

	_, err := render.Render(render.Format("xml"), report, nil)
	assert.Equal(t, relwatch.EINVALID, relwatch.ErrorCode(err))
}
