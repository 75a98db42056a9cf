package content

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SlugFromPath derives a post identifier from its path relative to the collection root.
// "2024/Hello World.md" becomes "2024/hello-world".
func SlugFromPath(rel string) string {
	rel = filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
	segments := strings.Split(rel, "/")
	out := segments[:0]
	for _, s := range segments {
		if s = Slugify(s); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "/")
}

// Slugify lowercases s, turns whitespace into "-" and drops punctuation.
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte('-')
		}
	}
	return b.String()
}
