package mock

import (
	"time"

	"github.com/mjarosz/relwatch"
)

var _ relwatch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of relwatch.Extractor.
type Extractor struct {
	ExtractFn func(html string, profile *relwatch.Profile, sourceURL string, cutoff time.Time) ([]*relwatch.ReleaseGroup, error)
}

func (e *Extractor) Extract(html string, profile *relwatch.Profile, sourceURL string, cutoff time.Time) ([]*relwatch.ReleaseGroup, error) {
	return e.ExtractFn(html, profile, sourceURL, cutoff)
}
