package relwatch_test

import (
	"testing"

	"github.com/mjarosz/relwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileMatchDate(t *testing.T) {
	t.Parallel()

	p := relwatch.GenericProfile()

	t.Run("finds month-name dates", func(t *testing.T) {
		t.Parallel()

		m, ok := p.MatchDate("Released on January 15, 2024 at noon")
		require.True(t, ok)
		assert.Equal(t, "January 15, 2024", m)
	})

	t.Run("finds ISO dates", func(t *testing.T) {
		t.Parallel()

		m, ok := p.MatchDate("build 2024-01-15")
		require.True(t, ok)
		assert.Equal(t, "2024-01-15", m)
	})

	t.Run("finds slash dates", func(t *testing.T) {
		t.Parallel()

		m, ok := p.MatchDate("shipped 1/15/2024")
		require.True(t, ok)
		assert.Equal(t, "1/15/2024", m)
	})

	t.Run("reports no match", func(t *testing.T) {
		t.Parallel()

		_, ok := p.MatchDate("no dates here")
		assert.False(t, ok)
	})
}

func TestProfileMatchAllDates(t *testing.T) {
	t.Parallel()

	p := relwatch.GenericProfile()

	matches := p.MatchAllDates("between 2024-01-15 and 2024-02-20")
	assert.Equal(t, []string{"2024-01-15", "2024-02-20"}, matches)
}

func TestProfileTagSets(t *testing.T) {
	t.Parallel()

	p := relwatch.GoogleCloudProfile()

	assert.True(t, p.IsDateHeader("h2"))
	assert.True(t, p.IsDateHeader("h3"))
	assert.False(t, p.IsDateHeader("h4"))

	assert.True(t, p.IsContent("p"))
	assert.True(t, p.IsContent("div"))
	assert.False(t, p.IsContent("span"))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("selects the Google Cloud profile for cloud.google.com URLs", func(t *testing.T) {
		t.Parallel()

		r := relwatch.NewRegistry()
		p := r.GetForURL("https://cloud.google.com/run/docs/release-notes")
		assert.Equal(t, relwatch.PlatformGoogleCloud, p.Platform)
	})

	t.Run("falls back to the generic profile for unknown hosts", func(t *testing.T) {
		t.Parallel()

		r := relwatch.NewRegistry()
		p := r.GetForURL("https://example.com/changelog")
		assert.Equal(t, relwatch.PlatformGeneric, p.Platform)
	})

	t.Run("registered profiles replace existing ones", func(t *testing.T) {
		t.Parallel()

		r := relwatch.NewRegistry()
		custom := relwatch.GoogleCloudProfile()
		custom.DateHeaders = []string{"h2"}
		r.Register(custom)

		got := r.Get(relwatch.PlatformGoogleCloud)
		require.NotNil(t, got)
		assert.Equal(t, []string{"h2"}, got.DateHeaders)
	})

	t.Run("a profile without URL patterns becomes the fallback", func(t *testing.T) {
		t.Parallel()

		r := relwatch.NewRegistry()
		custom := relwatch.GenericProfile()
		custom.DateHeaders = []string{"h1"}
		r.Register(custom)

		got := r.GetForURL("https://example.com/changelog")
		assert.Equal(t, []string{"h1"}, got.DateHeaders)
	})

	t.Run("lists registered platforms with fallback last", func(t *testing.T) {
		t.Parallel()

		r := relwatch.NewRegistry()
		platforms := r.List()
		require.Len(t, platforms, 2)
		assert.Equal(t, relwatch.PlatformGoogleCloud, platforms[0])
		assert.Equal(t, relwatch.PlatformGeneric, platforms[1])
	})
}
