package relwatch

import "strings"

// Category classifies one release item.
type Category string

// The closed set of release item categories.
const (
	CategoryGA            Category = "ga"
	CategoryPublicPreview Category = "public-preview"
	CategoryChange        Category = "change"
	CategoryAnnouncement  Category = "announcement"
	CategoryBreaking      Category = "breaking"
	CategoryIssue         Category = "issue"
	CategorySecurity      Category = "security"
	CategoryDeprecated    Category = "deprecated"
	CategoryFixed         Category = "fixed"
	CategoryLibraries     Category = "libraries"
	CategoryUpdate        Category = "update" // default, never absent
)

// Role is a structural marker on a source element indicating its semantic
// role independent of its text content.
type Role string

// Recognized element roles.
const (
	RoleNone         Role = ""
	RoleFeature      Role = "feature"
	RoleChanged      Role = "changed"
	RoleAnnouncement Role = "announcement"
	RoleBreaking     Role = "breaking"
	RoleIssue        Role = "issue"
)

// roleClasses maps release-note marker classes to roles. Documentation
// pages tag change entries with these classes on container divs.
var roleClasses = map[string]Role{
	"release-feature":      RoleFeature,
	"release-changed":      RoleChanged,
	"release-announcement": RoleAnnouncement,
	"release-breaking":     RoleBreaking,
	"release-issue":        RoleIssue,
}

// RoleClasses returns the marker class names in a stable order, for
// extractors that locate role-marked elements by class.
func RoleClasses() []string {
	return []string{
		"release-feature",
		"release-changed",
		"release-announcement",
		"release-breaking",
		"release-issue",
	}
}

// RoleFromClass returns the role indicated by an element's class attribute,
// or RoleNone if no marker class is present.
func RoleFromClass(class string) Role {
	for _, c := range strings.Fields(class) {
		if role, ok := roleClasses[c]; ok {
			return role
		}
	}
	return RoleNone
}

// keywordRule pairs a category with the terms that select it. Rules are
// evaluated in order and the first hit wins, so a fragment mentioning both
// "security" and "preview" is always security.
type keywordRule struct {
	category Category
	terms    []string
}

var keywordRules = []keywordRule{
	{CategorySecurity, []string{"security", "vulnerability", "cve", "patch"}},
	{CategoryBreaking, []string{"breaking change", "breaking change:", "migration required", "major version update"}},
	{CategoryPublicPreview, []string{"(preview)", "public preview", "in preview", "preview)", "early access", "beta"}},
	{CategoryGA, []string{"generally available", "general availability", "(ga)", "is now ga", "is in ga", "in general availability"}},
	{CategoryDeprecated, []string{"deprecated", "deprecation", "obsolete", "removed", "discontinued"}},
	{CategoryFixed, []string{"fixed", "fix:", "resolved", "bug"}},
	{CategoryIssue, []string{"issue", "known issue", "workaround"}},
	{CategoryChange, []string{"changed:", "migration required", "version updates"}},
	{CategoryAnnouncement, []string{"announced", "announcement", "introducing"}},
	{CategoryLibraries, []string{"library", "sdk", "api", "client library", "framework"}},
}

// Categorize assigns a category to a content fragment. The structural role
// takes priority over text analysis; the keyword cascade only runs when no
// role decides the outcome. Falls back to CategoryUpdate when nothing
// matches.
func Categorize(role Role, text string) Category {
	switch role {
	case RoleFeature:
		if strings.Contains(strings.ToLower(text), "(preview)") {
			return CategoryPublicPreview
		}
		return CategoryGA
	case RoleChanged:
		return CategoryChange
	case RoleAnnouncement:
		return CategoryAnnouncement
	case RoleBreaking:
		return CategoryBreaking
	case RoleIssue:
		return CategoryIssue
	}

	if text == "" {
		return CategoryUpdate
	}

	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.category
			}
		}
	}

	return CategoryUpdate
}

// DisplayName returns the human-readable name used in rendered statistics.
func (c Category) DisplayName() string {
	switch c {
	case CategoryGA:
		return "GA (Generally Available)"
	case CategoryPublicPreview:
		return "Public Preview"
	case CategoryBreaking:
		return "Breaking"
	}
	// Title-case the hyphenated identifier.
	parts := strings.Split(string(c), "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
