// Package slog provides logging decorators for pipeline components.
// Logging stays out of the pure extraction logic; verbose diagnostics are
// wired here and in the CLI.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mjarosz/relwatch"
)

// Ensure LoggingScraper implements relwatch.ReleaseScraper.
var _ relwatch.ReleaseScraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a ReleaseScraper with diagnostic logging.
type LoggingScraper struct {
	next   relwatch.ReleaseScraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next relwatch.ReleaseScraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper, logging the target, the
// duration, and the outcome.
func (s *LoggingScraper) Scrape(ctx context.Context, url string, months int) ([]*relwatch.ReleaseGroup, error) {
	begin := time.Now()
	s.logger.Debug("scraping",
		"url", url,
		"months", months,
	)

	groups, err := s.next.Scrape(ctx, url, months)
	if err != nil {
		s.logger.Warn("scrape failed",
			"url", url,
			"code", relwatch.ErrorCode(err),
			"error", relwatch.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return groups, err
	}

	s.logger.Debug("scrape complete",
		"url", url,
		"releases", len(groups),
		"items", relwatch.TotalItems(groups),
		"duration", time.Since(begin),
	)
	return groups, nil
}
