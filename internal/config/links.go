package config

import (
	"path"
	"strings"
)

// Links builds every page URL of the site so the base path and the
// trailing-slash policy are applied the same way everywhere.
type Links struct {
	origin   string
	base     string
	trailing bool
}

func NewLinks(siteURL, basePath, trailingSlash string) Links {
	base := "/" + strings.Trim(basePath, "/")
	return Links{
		origin:   strings.TrimRight(siteURL, "/"),
		base:     base,
		trailing: trailingSlash != TrailingSlashNever,
	}
}

// Path returns the site-relative path for a page, e.g. Path("blog", "hello")
// is "/blog/hello/" under base "/" with trailing slashes.
func (l Links) Path(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, l.base)
	for _, s := range segments {
		if s = strings.Trim(s, "/"); s != "" {
			parts = append(parts, s)
		}
	}
	p := path.Join(parts...)
	if l.trailing && p != "/" {
		p += "/"
	}
	return p
}

// Asset returns a path under the base for a file such as "rss.xml". It never
// gets a trailing slash.
func (l Links) Asset(name string) string {
	return path.Join(l.base, strings.TrimLeft(name, "/"))
}

// URL returns the absolute URL of Path(segments...).
func (l Links) URL(segments ...string) string {
	return l.origin + l.Path(segments...)
}

// Absolute prefixes a site-relative path with the site origin.
func (l Links) Absolute(p string) string {
	return l.origin + p
}

// File maps a page path to the file it is written to below the output directory.
func (l Links) File(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	for _, s := range segments {
		if s = strings.Trim(s, "/"); s != "" {
			parts = append(parts, s)
		}
	}
	return path.Join(append(parts, "index.html")...)
}
