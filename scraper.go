package relwatch

import (
	"context"
	"time"
)

// Fetcher retrieves raw HTML from URLs.
// Implementations send browser-like headers since documentation hosts
// commonly reject bare clients.
type Fetcher interface {
	// Fetch retrieves the page at url. The context controls timeout and
	// cancellation. A non-success status is an error.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// Extractor pulls release groups out of fetched markup.
type Extractor interface {
	// Extract locates date-bearing structure in html and returns one
	// group per discovered date. It tries header-anchored extraction
	// first and falls back to a free scan only when that yields nothing.
	// The cutoff bounds the fallback scan's discovery window; sourceURL
	// is recorded on every group.
	Extract(html string, profile *Profile, sourceURL string, cutoff time.Time) ([]*ReleaseGroup, error)
}

// Converter converts an HTML fragment to Markdown. Used by the Markdown
// renderer to preserve item formatting.
type Converter interface {
	Convert(html string) (string, error)
}

// ReleaseScraper runs the full pipeline for one URL.
type ReleaseScraper interface {
	// Scrape fetches url and returns the release groups inside the
	// retention window, newest first.
	Scrape(ctx context.Context, url string, months int) ([]*ReleaseGroup, error)
}

// Ensure Scraper implements ReleaseScraper at compile time.
var _ ReleaseScraper = (*Scraper)(nil)

// Scraper runs the full pipeline for one URL: fetch, extract, filter by the
// retention window, and sort newest first.
type Scraper struct {
	Fetcher   Fetcher
	Extractor Extractor
	Profiles  ProfileRegistry

	// Now returns the current time. Defaults to time.Now; tests override
	// it to pin the retention window.
	Now func() time.Time
}

// Scrape fetches url and returns the release groups inside the retention
// window, newest first. Fetch failures return EUNAVAILABLE and extraction
// failures EINTERNAL; callers treat both as soft failures and render an
// empty report.
func (s *Scraper) Scrape(ctx context.Context, url string, months int) ([]*ReleaseGroup, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	cutoff := CutoffDate(now, months)

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, Errorf(EUNAVAILABLE, "fetching %s: %v", url, err)
	}

	profile := s.Profiles.GetForURL(url)

	groups, err := s.Extractor.Extract(html, profile, url, cutoff)
	if err != nil {
		return nil, Errorf(EINTERNAL, "parsing content from %s: %v", url, err)
	}

	groups = FilterByDate(groups, cutoff)
	SortByDateDesc(groups)
	return groups, nil
}
