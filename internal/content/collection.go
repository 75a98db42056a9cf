// Package content loads and validates the blog collection.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/CalebHellmund/calebhellmund.github.io/internal/model"
)

var postExtensions = map[string]bool{".md": true, ".markdown": true}

// Load reads every post under dir. Files are taken in lexical path order and
// that order is kept in the result. All rejected entries are reported together.
// A missing dir is an empty collection.
func Load(ctx context.Context, dir string, r *Renderer) ([]model.Post, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Post{}, nil
		}
		return nil, fmt.Errorf("content directory %q: %w", dir, err)
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if postExtensions[strings.ToLower(filepath.Ext(path))] && !strings.HasPrefix(d.Name(), "_") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", dir, err)
	}

	posts := make([]model.Post, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %q: %w", path, err)
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return fmt.Errorf("relative path for %q: %w", path, err)
			}
			posts[i], errs[i] = ParseEntry(path, SlugFromPath(rel), src, r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(posts))
	for i, p := range posts {
		if errs[i] != nil {
			continue
		}
		if other, ok := seen[p.Slug]; ok {
			errs[i] = &RejectionError{Path: p.SourcePath, Reason: fmt.Sprintf("slug %q already used by %s", p.Slug, other)}
			continue
		}
		seen[p.Slug] = p.SourcePath
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return posts, nil
}

// Publishable drops drafts and orders the rest newest first. Posts sharing a
// date keep their original relative order. posts is left untouched.
func Publishable(posts []model.Post) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if !p.Data.Draft {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Data.Date.After(out[j].Data.Date)
	})
	return out
}

// ByTag groups posts under each of their tags, keeping the order of posts.
func ByTag(posts []model.Post) map[string][]model.Post {
	groups := make(map[string][]model.Post)
	for _, p := range posts {
		for _, tag := range p.Data.Tags {
			groups[tag] = append(groups[tag], p)
		}
	}
	return groups
}

// Tags lists the distinct tags used by posts, sorted.
func Tags(posts []model.Post) []string {
	groups := ByTag(posts)
	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// TagSlugs maps every tag used by posts to the path segment of its page.
// Tags whose segment would be empty or shared with another tag are an error.
func TagSlugs(posts []model.Post) (map[string]string, error) {
	slugs := make(map[string]string)
	owners := make(map[string]string)
	var errs []error
	for _, tag := range Tags(posts) {
		slug := Slugify(tag)
		if slug == "" {
			errs = append(errs, fmt.Errorf("tag %q has no letters or digits to build a page path from", tag))
			continue
		}
		if other, ok := owners[slug]; ok {
			errs = append(errs, fmt.Errorf("tags %q and %q both map to page path %q", other, tag, slug))
			continue
		}
		owners[slug] = tag
		slugs[tag] = slug
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return slugs, nil
}
