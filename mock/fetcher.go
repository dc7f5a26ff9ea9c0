package mock

import (
	"context"

	"github.com/mjarosz/relwatch"
)

var _ relwatch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of relwatch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
