package slog

import (
	"log/slog"

	"github.com/mjarosz/relwatch"
)

// Ensure LoggingRegistry implements relwatch.ProfileRegistry.
var _ relwatch.ProfileRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ProfileRegistry with debug logging for platform
// selection.
type LoggingRegistry struct {
	next   relwatch.ProfileRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next relwatch.ProfileRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(platform relwatch.Platform) *relwatch.Profile {
	return r.next.Get(platform)
}

// GetForURL selects a profile for the URL and logs which platform won.
func (r *LoggingRegistry) GetForURL(url string) *relwatch.Profile {
	profile := r.next.GetForURL(url)
	r.logger.Debug("platform selection",
		"url", url,
		"platform", string(profile.Platform),
	)
	return profile
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(profile *relwatch.Profile) {
	r.next.Register(profile)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []relwatch.Platform {
	return r.next.List()
}
