package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinksPath(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		trailing string
		segments []string
		want     string
	}{
		{"root home", "/", TrailingSlashAlways, nil, "/"},
		{"root post", "/", TrailingSlashAlways, []string{"blog", "hello"}, "/blog/hello/"},
		{"base post", "/my-portfolio", TrailingSlashAlways, []string{"blog", "hello"}, "/my-portfolio/blog/hello/"},
		{"base home", "my-portfolio/", TrailingSlashAlways, nil, "/my-portfolio/"},
		{"never", "/", TrailingSlashNever, []string{"blog", "hello"}, "/blog/hello"},
		{"never base home", "/sub", TrailingSlashNever, nil, "/sub"},
		{"empty base", "", TrailingSlashAlways, []string{"projects"}, "/projects/"},
		{"nested slug", "/", TrailingSlashAlways, []string{"blog", "2024/part-one"}, "/blog/2024/part-one/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLinks("https://example.com", tc.base, tc.trailing)
			assert.Equal(t, tc.want, l.Path(tc.segments...))
		})
	}
}

func TestLinksURL(t *testing.T) {
	l := NewLinks("https://example.com/", "/sub", TrailingSlashAlways)
	assert.Equal(t, "https://example.com/sub/blog/x/", l.URL("blog", "x"))
	assert.Equal(t, "/sub/rss.xml", l.Asset("rss.xml"))
	assert.Equal(t, "https://example.com/sub/rss.xml", l.Absolute(l.Asset("/rss.xml")))
}

func TestLinksFile(t *testing.T) {
	l := NewLinks("", "/sub", TrailingSlashNever)
	assert.Equal(t, "index.html", l.File())
	assert.Equal(t, "blog/hello/index.html", l.File("blog", "hello"))
}

func TestConfigLinksPrefersConfiguredURL(t *testing.T) {
	c := Config{SiteURL: "https://configured.dev", BasePath: "/", TrailingSlash: TrailingSlashAlways}
	assert.Equal(t, "https://configured.dev/blog/", c.Links("https://fallback.dev").URL("blog"))

	c.SiteURL = ""
	assert.Equal(t, "https://fallback.dev/blog/", c.Links("https://fallback.dev").URL("blog"))
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		OutputDir:     "dist",
		ContentDir:    "content/blog",
		LayoutsDir:    "layouts",
		TrailingSlash: TrailingSlashAlways,
		LogLevel:      "info",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.TrailingSlash = "sometimes"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.SiteURL = "not a url"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.OutputDir = ""
	assert.Error(t, bad.Validate())
}
