package render

import (
	"encoding/json"
	"time"

	"github.com/mjarosz/relwatch"
)

// jsonDocument is the top-level JSON output shape.
type jsonDocument struct {
	Metadata   jsonMetadata   `json:"metadata"`
	Statistics jsonStatistics `json:"statistics"`
	Releases   []jsonRelease  `json:"releases"`
}

type jsonMetadata struct {
	Source          string `json:"source"`
	Generated       string `json:"generated"`
	TimeRangeMonths int    `json:"time_range_months"`
	CutoffDate      string `json:"cutoff_date"`
}

type jsonStatistics struct {
	TotalReleases int                 `json:"total_releases"`
	TotalItems    int                 `json:"total_items"`
	ByCategory    []jsonCategoryCount `json:"by_category"`
}

type jsonCategoryCount struct {
	Category relwatch.Category `json:"category"`
	Count    int               `json:"count"`
}

type jsonRelease struct {
	Date    *string    `json:"date"`
	DateStr string     `json:"date_str"`
	Items   []jsonItem `json:"items"`
	URL     string     `json:"url"`
}

type jsonItem struct {
	Text     string            `json:"text"`
	Category relwatch.Category `json:"category"`
	URLs     []string          `json:"urls"`
}

// JSON renders the report as indented JSON with run metadata and
// statistics alongside the releases.
func JSON(report *relwatch.Report) (string, error) {
	counts := relwatch.CountByCategory(report.Releases)
	byCategory := make([]jsonCategoryCount, 0, len(counts))
	for _, c := range counts {
		byCategory = append(byCategory, jsonCategoryCount{Category: c.Category, Count: c.Count})
	}

	doc := jsonDocument{
		Metadata: jsonMetadata{
			Source:          report.URL,
			Generated:       report.Generated.Format(time.RFC3339),
			TimeRangeMonths: report.Months,
			CutoffDate:      report.Cutoff.Format(time.RFC3339),
		},
		Statistics: jsonStatistics{
			TotalReleases: len(report.Releases),
			TotalItems:    relwatch.TotalItems(report.Releases),
			ByCategory:    byCategory,
		},
		Releases: make([]jsonRelease, 0, len(report.Releases)),
	}

	for _, g := range report.Releases {
		var date *string
		if !g.Date.IsZero() {
			iso := g.Date.Format(time.RFC3339)
			date = &iso
		}

		items := make([]jsonItem, 0, len(g.Items))
		for _, item := range g.Items {
			urls := item.Links
			if urls == nil {
				urls = []string{}
			}
			items = append(items, jsonItem{
				Text:     plainText(item),
				Category: item.Category,
				URLs:     urls,
			})
		}

		doc.Releases = append(doc.Releases, jsonRelease{
			Date:    date,
			DateStr: g.DateStr,
			Items:   items,
			URL:     g.URL,
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", relwatch.Errorf(relwatch.EINTERNAL, "encoding JSON output: %v", err)
	}
	return string(out), nil
}
