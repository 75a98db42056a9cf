package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaySite(t *testing.T) {
	orig := Site
	t.Cleanup(func() { Site = orig })

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Caleb\nurl: https://caleb.dev\n"), 0o644))

	loaded, err := OverlaySite(path)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, "Caleb", Site.Name)
	assert.Equal(t, "https://caleb.dev", Site.URL)
	assert.Equal(t, orig.Description, Site.Description)
}

func TestOverlaySiteMissingFile(t *testing.T) {
	orig := Site
	loaded, err := OverlaySite(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, orig, Site)
}

func TestOverlaySiteUnknownField(t *testing.T) {
	orig := Site
	t.Cleanup(func() { Site = orig })

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nmae: typo\n"), 0o644))

	_, err := OverlaySite(path)
	assert.Error(t, err)
	assert.Equal(t, orig, Site)
}

func TestReloadSite(t *testing.T) {
	orig := Site
	t.Cleanup(func() { Site = orig })

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Caleb\ntagline: Builder\n"), 0o644))
	_, err := ReloadSite(path)
	require.NoError(t, err)
	assert.Equal(t, "Builder", Site.Tagline)

	require.NoError(t, os.WriteFile(path, []byte("name: Caleb H\n"), 0o644))
	loaded, err := ReloadSite(path)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, "Caleb H", Site.Name)
	assert.Equal(t, defaultSite.Tagline, Site.Tagline, "removed field falls back to its default")

	require.NoError(t, os.WriteFile(path, []byte("name: [broken\n"), 0o644))
	_, err = ReloadSite(path)
	assert.Error(t, err)
	assert.Equal(t, "Caleb H", Site.Name, "a bad file keeps the last good values")

	require.NoError(t, os.Remove(path))
	loaded, err = ReloadSite(path)
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, defaultSite, Site)
}
