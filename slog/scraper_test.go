package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjarosz/relwatch"
	"github.com/mjarosz/relwatch/mock"
	"github.com/mjarosz/relwatch/slog"
)

func newTestLogger(buf *bytes.Buffer) *stdslog.Logger {
	return stdslog.New(stdslog.NewTextHandler(buf, &stdslog.HandlerOptions{
		Level: stdslog.LevelDebug,
	}))
}

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("logs successful scrape", func(t *testing.T) {
		t.Parallel()

		groups := []*relwatch.ReleaseGroup{
			{
				Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				DateStr: "March 1, 2024",
				Items:   []*relwatch.ReleaseItem{{Text: "something shipped", Category: relwatch.CategoryUpdate}},
			},
		}
		next := &mock.ReleaseScraper{
			ScrapeFn: func(ctx context.Context, url string, months int) ([]*relwatch.ReleaseGroup, error) {
				assert.Equal(t, "https://example.com/release-notes", url)
				assert.Equal(t, 12, months)
				return groups, nil
			},
		}

		var buf bytes.Buffer
		scraper := slog.NewLoggingScraper(next, newTestLogger(&buf))

		got, err := scraper.Scrape(context.Background(), "https://example.com/release-notes", 12)
		require.NoError(t, err)
		assert.Equal(t, groups, got)
		assert.Contains(t, buf.String(), "scraping")
		assert.Contains(t, buf.String(), "scrape complete")
		assert.Contains(t, buf.String(), "releases=1")
		assert.Contains(t, buf.String(), "items=1")
	})

	t.Run("logs failure with error code", func(t *testing.T) {
		t.Parallel()

		next := &mock.ReleaseScraper{
			ScrapeFn: func(ctx context.Context, url string, months int) ([]*relwatch.ReleaseGroup, error) {
				return nil, relwatch.Errorf(relwatch.EUNAVAILABLE, "fetch failed")
			},
		}

		var buf bytes.Buffer
		scraper := slog.NewLoggingScraper(next, newTestLogger(&buf))

		_, err := scraper.Scrape(context.Background(), "https://example.com/release-notes", 12)
		require.Error(t, err)
		assert.Equal(t, relwatch.EUNAVAILABLE, relwatch.ErrorCode(err))
		assert.Contains(t, buf.String(), "scrape failed")
		assert.Contains(t, buf.String(), relwatch.EUNAVAILABLE)
	})
}
