package mock

import (
	"context"

	"github.com/mjarosz/relwatch"
)

var _ relwatch.ReleaseScraper = (*ReleaseScraper)(nil)

// ReleaseScraper is a mock implementation of relwatch.ReleaseScraper.
type ReleaseScraper struct {
	ScrapeFn func(ctx context.Context, url string, months int) ([]*relwatch.ReleaseGroup, error)
}

func (s *ReleaseScraper) Scrape(ctx context.Context, url string, months int) ([]*relwatch.ReleaseGroup, error) {
	return s.ScrapeFn(ctx, url, months)
}
