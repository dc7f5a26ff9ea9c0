// Package yaml loads platform-profile overrides from YAML files. A
// profiles file lets users teach relwatch about documentation platforms it
// does not know, or reshape the built-in profiles, without a rebuild.
package yaml

import (
	"os"
	"regexp"

	"github.com/mjarosz/relwatch"
	"gopkg.in/yaml.v3"
)

// profileFile is the YAML document shape.
type profileFile struct {
	Profiles []profileConfig `yaml:"profiles"`
}

// profileConfig is one profile entry. A profile without url_patterns
// replaces the generic fallback.
type profileConfig struct {
	Platform     string   `yaml:"platform"`
	URLPatterns  []string `yaml:"url_patterns"`
	Containers   []string `yaml:"containers"`
	DateHeaders  []string `yaml:"date_headers"`
	Content      []string `yaml:"content"`
	DatePatterns []string `yaml:"date_patterns"`
}

// LoadProfiles reads a profiles file and registers every entry with the
// registry, replacing built-ins with the same platform name.
func LoadProfiles(path string, registry relwatch.ProfileRegistry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return relwatch.Errorf(relwatch.ENOTFOUND, "reading profiles file %q: %v", path, err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return relwatch.Errorf(relwatch.EINVALID, "parsing profiles file %q: %v", path, err)
	}

	for _, pc := range file.Profiles {
		profile, err := buildProfile(pc)
		if err != nil {
			return err
		}
		registry.Register(profile)
	}

	return nil
}

func buildProfile(pc profileConfig) (*relwatch.Profile, error) {
	if pc.Platform == "" {
		return nil, relwatch.Errorf(relwatch.EINVALID, "profile platform name required")
	}
	if len(pc.DateHeaders) == 0 {
		return nil, relwatch.Errorf(relwatch.EINVALID, "profile %q requires date_headers", pc.Platform)
	}
	if len(pc.DatePatterns) == 0 {
		return nil, relwatch.Errorf(relwatch.EINVALID, "profile %q requires date_patterns", pc.Platform)
	}

	patterns := make([]*regexp.Regexp, 0, len(pc.DatePatterns))
	for _, p := range pc.DatePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, relwatch.Errorf(relwatch.EINVALID, "profile %q date pattern %q: %v", pc.Platform, p, err)
		}
		patterns = append(patterns, re)
	}

	return &relwatch.Profile{
		Platform:     relwatch.Platform(pc.Platform),
		URLPatterns:  pc.URLPatterns,
		Containers:   pc.Containers,
		DateHeaders:  pc.DateHeaders,
		Content:      pc.Content,
		DatePatterns: patterns,
	}, nil
}
