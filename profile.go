package relwatch

import (
	"regexp"
	"strings"
)

// Platform identifies a documentation platform with a known page layout.
type Platform string

// Supported documentation platforms.
const (
	PlatformGeneric     Platform = "generic"
	PlatformGoogleCloud Platform = "google_cloud"
)

// Profile bundles the selectors and patterns used to pull release notes out
// of one documentation platform. Exactly one profile is active per run and
// it is not mutated after selection.
type Profile struct {
	// Platform names the profile.
	Platform Platform

	// URLPatterns are substrings matched against the source URL to select
	// this profile. The generic profile leaves this empty and acts as the
	// fallback.
	URLPatterns []string

	// Containers are candidate CSS selectors for the main content area,
	// tried in order. First match wins; extraction falls back to <body>
	// when none match.
	Containers []string

	// DateHeaders are header tag names considered date-bearing, in order.
	DateHeaders []string

	// Content are tag names collected during the sibling walk.
	Content []string

	// DatePatterns locate date-like substrings, tried in order.
	DatePatterns []*regexp.Regexp
}

// IsDateHeader reports whether tag is one of the profile's header tags.
func (p *Profile) IsDateHeader(tag string) bool {
	for _, h := range p.DateHeaders {
		if h == tag {
			return true
		}
	}
	return false
}

// IsContent reports whether tag is one of the profile's content tags.
func (p *Profile) IsContent(tag string) bool {
	for _, c := range p.Content {
		if c == tag {
			return true
		}
	}
	return false
}

// MatchDate returns the first date-like substring found in text by the
// profile's patterns, tried in order.
func (p *Profile) MatchDate(text string) (string, bool) {
	for _, re := range p.DatePatterns {
		if m := re.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}

// MatchAllDates returns every date-like substring found in text across all
// patterns, in pattern order. Used by the text-node fallback pass.
func (p *Profile) MatchAllDates(text string) []string {
	var matches []string
	for _, re := range p.DatePatterns {
		matches = append(matches, re.FindAllString(text, -1)...)
	}
	return matches
}

// defaultDatePatterns detect "January 15, 2024", "2024-01-15" and
// "01/15/2024" shapes.
func defaultDatePatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`\w+\s+\d{1,2},\s+\d{4}`),
		regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
		regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
	}
}

// GoogleCloudProfile returns the profile for cloud.google.com release notes
// pages.
func GoogleCloudProfile() *Profile {
	return &Profile{
		Platform:     PlatformGoogleCloud,
		URLPatterns:  []string{"cloud.google.com"},
		Containers:   []string{"main", "article", `[role="main"]`, ".devsite-article-body", "div.release-notes-container"},
		DateHeaders:  []string{"h2", "h3"},
		Content:      []string{"p", "ul", "ol", "div"},
		DatePatterns: defaultDatePatterns(),
	}
}

// GenericProfile returns the fallback profile used when no platform is
// recognized from the URL.
func GenericProfile() *Profile {
	return &Profile{
		Platform:     PlatformGeneric,
		Containers:   []string{"main", "article", ".content", "#content", ".release-notes"},
		DateHeaders:  []string{"h2", "h3", "h4"},
		Content:      []string{"p", "ul", "li", "div"},
		DatePatterns: defaultDatePatterns(),
	}
}

// ProfileRegistry manages platform profiles and selects one per source URL.
type ProfileRegistry interface {
	// Get returns the profile for a specific platform, or nil if none is
	// registered.
	Get(platform Platform) *Profile

	// GetForURL matches the URL against registered profiles and returns
	// the first match, falling back to the generic profile.
	GetForURL(url string) *Profile

	// Register adds a profile, replacing any existing profile for the same
	// platform.
	Register(profile *Profile)

	// List returns all registered platforms.
	List() []Platform
}

// Registry is the default ProfileRegistry backed by an in-memory map with
// a generic fallback.
type Registry struct {
	fallback *Profile
	profiles map[Platform]*Profile
	order    []Platform
}

var _ ProfileRegistry = (*Registry)(nil)

// NewRegistry creates a Registry with the built-in profiles registered and
// the generic profile as fallback.
func NewRegistry() *Registry {
	r := &Registry{
		fallback: GenericProfile(),
		profiles: make(map[Platform]*Profile),
	}
	r.Register(GoogleCloudProfile())
	return r
}

// Get returns the profile registered for platform, or nil.
func (r *Registry) Get(platform Platform) *Profile {
	if platform == r.fallback.Platform {
		return r.fallback
	}
	return r.profiles[platform]
}

// GetForURL returns the first registered profile with a URL pattern
// matching url, in registration order, or the generic fallback.
func (r *Registry) GetForURL(url string) *Profile {
	for _, platform := range r.order {
		p := r.profiles[platform]
		for _, pattern := range p.URLPatterns {
			if strings.Contains(url, pattern) {
				return p
			}
		}
	}
	return r.fallback
}

// Register adds or replaces a profile. A profile without URL patterns
// replaces the generic fallback.
func (r *Registry) Register(profile *Profile) {
	if len(profile.URLPatterns) == 0 {
		r.fallback = profile
		return
	}
	if _, ok := r.profiles[profile.Platform]; !ok {
		r.order = append(r.order, profile.Platform)
	}
	r.profiles[profile.Platform] = profile
}

// List returns all registered platforms, fallback last.
func (r *Registry) List() []Platform {
	platforms := make([]Platform, 0, len(r.order)+1)
	platforms = append(platforms, r.order...)
	platforms = append(platforms, r.fallback.Platform)
	return platforms
}
