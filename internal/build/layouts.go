package build

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	baseLayout   = "base.html"
	partialsDir  = "partials"
	layoutSuffix = ".html"
)

// layoutSet holds one template per page layout. Each page is parsed over its
// own clone of base.html and the partials so pages can redefine blocks.
type layoutSet struct {
	pages map[string]*template.Template
}

func loadLayouts(dir string, funcs template.FuncMap) (*layoutSet, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("layouts directory '%s' not found", dir)
	}

	var basePath string
	var partials, pages []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), layoutSuffix) {
			return nil
		}
		switch {
		case d.Name() == baseLayout && filepath.Dir(path) == filepath.Clean(dir):
			basePath = path
		case strings.HasPrefix(filepath.Dir(path), filepath.Join(dir, partialsDir)):
			partials = append(partials, path)
		default:
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files in '%s': %w", dir, err)
	}
	if basePath == "" {
		return nil, fmt.Errorf("%s not found directly in layouts directory '%s'", baseLayout, dir)
	}

	root, err := template.New(baseLayout).Funcs(funcs).ParseFiles(append([]string{basePath}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s and partials: %w", baseLayout, err)
	}

	set := &layoutSet{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		name := filepath.Base(page)
		if _, dup := set.pages[name]; dup {
			return nil, fmt.Errorf("layout name %q is used twice in '%s'", name, dir)
		}
		clone, err := root.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base layout for %s: %w", name, err)
		}
		if set.pages[name], err = clone.ParseFiles(page); err != nil {
			return nil, fmt.Errorf("failed to parse layout %s: %w", page, err)
		}
	}
	return set, nil
}

func (s *layoutSet) lookup(name string) (*template.Template, bool) {
	t, ok := s.pages[name]
	return t, ok
}
