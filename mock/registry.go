package mock

import "github.com/mjarosz/relwatch"

var _ relwatch.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of relwatch.ProfileRegistry.
type ProfileRegistry struct {
	GetFn       func(platform relwatch.Platform) *relwatch.Profile
	GetForURLFn func(url string) *relwatch.Profile
	RegisterFn  func(profile *relwatch.Profile)
	ListFn      func() []relwatch.Platform
}

func (r *ProfileRegistry) Get(platform relwatch.Platform) *relwatch.Profile {
	return r.GetFn(platform)
}

func (r *ProfileRegistry) GetForURL(url string) *relwatch.Profile {
	return r.GetForURLFn(url)
}

func (r *ProfileRegistry) Register(profile *relwatch.Profile) {
	r.RegisterFn(profile)
}

func (r *ProfileRegistry) List() []relwatch.Platform {
	return r.ListFn()
}
