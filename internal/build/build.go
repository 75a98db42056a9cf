// Package build turns the site data, the blog collection and the layouts into
// a static site on disk.
package build

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/CalebHellmund/calebhellmund.github.io/internal/config"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/content"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/data"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/feed"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/format"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/model"
)

// Page layouts. Only home.html is required.
const (
	homeLayout     = "home.html"
	blogLayout     = "blog.html"
	postLayout     = "post.html"
	tagLayout      = "tag.html"
	projectsLayout = "projects.html"
	projectLayout  = "project.html"
	resumeLayout   = "resume.html"
	notFoundLayout = "404.html"

	sitemapFile = "sitemap.xml"
)

// Site is the static data a build renders.
type Site struct {
	Config   model.SiteConfig
	Projects data.Directory
	Resume   model.Resume
}

type builder struct {
	cfg     config.Config
	site    Site
	links   config.Links
	logger  *slog.Logger
	layouts *layoutSet
	posts   []model.Post
	tags    map[string]string
	pages   []string
}

// Run performs a full build into cfg.OutputDir.
func Run(ctx context.Context, cfg config.Config, site Site, logger *slog.Logger) error {
	start := time.Now()
	b := &builder{
		cfg:    cfg,
		site:   site,
		links:  cfg.Links(site.Config.URL),
		logger: logger,
	}
	logger.Info("starting build", "outputDir", cfg.OutputDir, "basePath", cfg.BasePath, "trailingSlash", cfg.TrailingSlash)

	if err := site.Projects.Validate(); err != nil {
		return fmt.Errorf("project table: %w", err)
	}

	if err := b.prepareOutput(); err != nil {
		return err
	}

	layouts, err := loadLayouts(cfg.LayoutsDir, b.funcs())
	if err != nil {
		return err
	}
	b.layouts = layouts

	if _, err := os.Stat(cfg.ContentDir); errors.Is(err, fs.ErrNotExist) {
		logger.Warn("content directory not found, building without posts", "dir", cfg.ContentDir)
	}
	all, err := content.Load(ctx, cfg.ContentDir, content.NewRenderer())
	if err != nil {
		return fmt.Errorf("blog collection: %w", err)
	}
	b.posts = content.Publishable(all)
	if err := b.resolveTags(); err != nil {
		return fmt.Errorf("blog collection: %w", err)
	}
	logger.Info("loaded blog collection", "entries", len(all), "published", len(b.posts))

	steps := []func() error{
		b.renderHome,
		b.renderBlog,
		b.renderPosts,
		b.renderTags,
		b.renderProjects,
		b.renderResume,
		b.renderNotFound,
		b.writeFeed,
		b.writeSitemap,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(); err != nil {
			return err
		}
	}

	logger.Info("build completed", "pages", len(b.pages), "duration", time.Since(start))
	return nil
}

func (b *builder) prepareOutput() error {
	out := b.cfg.OutputDir
	b.logger.Debug("cleaning output directory", "dir", out)
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", out, err)
	}
	if err := os.MkdirAll(out, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", out, err)
	}

	static := b.cfg.StaticDir
	if static == "" {
		return nil
	}
	if _, err := os.Stat(static); os.IsNotExist(err) {
		b.logger.Debug("static directory not found, skipping copy", "dir", static)
		return nil
	}
	n, err := copyDir(static, out)
	if err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	b.logger.Info("copied static assets", "files", n)
	return nil
}

func (b *builder) funcs() template.FuncMap {
	return template.FuncMap{
		"formatDate":  format.Date,
		"readingTime": format.ReadingTime,
		"truncate":    format.Truncate,
		"heading":     format.Heading,
		"path":        b.links.Path,
		"url":         b.links.URL,
		"asset":       b.links.Asset,
		"postPath": func(p model.Post) string {
			return b.links.Path("blog", p.Slug)
		},
		"tagPath": func(tag string) string {
			return b.links.Path("blog", "tags", b.tagSlug(tag))
		},
		"projectPath": func(p model.Project) string {
			return b.links.Path("projects", p.Slug)
		},
		"project": func(slug string) *model.Project {
			if p, ok := b.site.Projects.BySlug(slug); ok {
				return &p
			}
			return nil
		},
	}
}

func (b *builder) page(title, description string, segments ...string) model.PageData {
	if title == "" {
		title = b.site.Config.Name
	}
	if description == "" {
		description = b.site.Config.Description
	}
	return model.PageData{
		Site:        b.site.Config,
		Title:       title,
		Description: description,
		Path:        b.links.Path(segments...),
		Canonical:   b.links.URL(segments...),
		Posts:       b.posts,
		Featured:    b.site.Projects.Featured(),
		Resume:      b.site.Resume,
	}
}

// render executes layout into the page at segments. Missing optional layouts
// are skipped.
func (b *builder) render(layout string, required bool, pd model.PageData, segments ...string) error {
	tmpl, ok := b.layouts.lookup(layout)
	if !ok {
		if required {
			return fmt.Errorf("layout '%s' not found, please create it in '%s'", layout, b.cfg.LayoutsDir)
		}
		b.logger.Warn("layout not found, skipping page", "layout", layout, "path", pd.Path)
		return nil
	}

	out := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(b.links.File(segments...)))
	if err := b.writeFile(out, func(w io.Writer) error {
		return tmpl.ExecuteTemplate(w, layout, pd)
	}); err != nil {
		return fmt.Errorf("failed to execute layout '%s' for '%s': %w", layout, pd.Path, err)
	}
	b.pages = append(b.pages, pd.Canonical)
	b.logger.Debug("generated page", "path", pd.Path, "layout", layout)
	return nil
}

func (b *builder) writeFile(name string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(name), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", name, err)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", name, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (b *builder) renderHome() error {
	return b.render(homeLayout, true, b.page("", ""))
}

func (b *builder) renderBlog() error {
	pd := b.page("Blog", "", "blog")
	pd.Tags = content.Tags(b.posts)
	return b.render(blogLayout, false, pd, "blog")
}

func (b *builder) renderPosts() error {
	for i := range b.posts {
		p := b.posts[i]
		pd := b.page(p.Data.Title, p.Data.Description, "blog", p.Slug)
		pd.Post = &p
		pd.Related = b.relatedProjects(p)
		if err := b.render(postLayout, false, pd, "blog", p.Slug); err != nil {
			return err
		}
	}
	return nil
}

// relatedProjects resolves a post's project slugs. Unknown slugs are dropped.
func (b *builder) relatedProjects(p model.Post) []model.Project {
	related := make([]model.Project, 0, len(p.Data.RelatedProjects))
	for _, slug := range p.Data.RelatedProjects {
		project, ok := b.site.Projects.BySlug(slug)
		if !ok {
			b.logger.Warn("post references unknown project", "post", p.Slug, "project", slug)
			continue
		}
		related = append(related, project)
	}
	return related
}

// resolveTags assigns every tag its page path and rejects posts whose own
// path would overwrite a tag page.
func (b *builder) resolveTags() error {
	tags, err := content.TagSlugs(b.posts)
	if err != nil {
		return err
	}
	taken := make(map[string]string, len(tags))
	for tag, slug := range tags {
		taken[path.Join("tags", slug)] = tag
	}

	var errs []error
	for _, p := range b.posts {
		if tag, ok := taken[p.Slug]; ok {
			errs = append(errs, &content.RejectionError{
				Path:   p.SourcePath,
				Reason: fmt.Sprintf("slug %q clashes with the page of tag %q", p.Slug, tag),
			})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	b.tags = tags
	return nil
}

func (b *builder) tagSlug(tag string) string {
	if slug, ok := b.tags[tag]; ok {
		return slug
	}
	return content.Slugify(tag)
}

func (b *builder) renderTags() error {
	groups := content.ByTag(b.posts)
	for _, tag := range content.Tags(b.posts) {
		segments := []string{"blog", "tags", b.tagSlug(tag)}
		pd := b.page(format.Heading(tag), "", segments...)
		pd.Tag = tag
		pd.Posts = groups[tag]
		if err := b.render(tagLayout, false, pd, segments...); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) renderProjects() error {
	pd := b.page("Projects", "", "projects")
	pd.Projects = b.site.Projects
	if err := b.render(projectsLayout, false, pd, "projects"); err != nil {
		return err
	}

	for i := range b.site.Projects {
		p := b.site.Projects[i]
		pd := b.page(p.Title, p.Description, "projects", p.Slug)
		pd.Project = &p
		pd.Posts = b.postsAbout(p.Slug)
		if err := b.render(projectLayout, false, pd, "projects", p.Slug); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) postsAbout(slug string) []model.Post {
	var posts []model.Post
	for _, p := range b.posts {
		for _, related := range p.Data.RelatedProjects {
			if related == slug {
				posts = append(posts, p)
				break
			}
		}
	}
	return posts
}

func (b *builder) renderResume() error {
	pd := b.page("Resume", b.site.Resume.Summary, "resume")
	return b.render(resumeLayout, false, pd, "resume")
}

// renderNotFound writes 404.html at the output root, where static hosts look for it.
func (b *builder) renderNotFound() error {
	tmpl, ok := b.layouts.lookup(notFoundLayout)
	if !ok {
		b.logger.Warn("layout not found, skipping page", "layout", notFoundLayout)
		return nil
	}
	pd := b.page("Not found", "")
	pd.Path = b.links.Asset("404.html")
	pd.Canonical = b.links.Absolute(pd.Path)
	out := filepath.Join(b.cfg.OutputDir, "404.html")
	if err := b.writeFile(out, func(w io.Writer) error {
		return tmpl.ExecuteTemplate(w, notFoundLayout, pd)
	}); err != nil {
		return fmt.Errorf("failed to execute layout '%s': %w", notFoundLayout, err)
	}
	return nil
}

func (b *builder) writeFeed() error {
	f := feed.Build(b.site.Config, b.links, b.posts, time.Now())
	out := filepath.Join(b.cfg.OutputDir, feed.FileName)
	if err := b.writeFile(out, func(w io.Writer) error { return feed.WriteRSS(w, f) }); err != nil {
		return err
	}
	b.logger.Info("generated feed", "file", out, "items", len(f.Items))
	return nil
}

func (b *builder) writeSitemap() error {
	out := filepath.Join(b.cfg.OutputDir, sitemapFile)
	if err := b.writeFile(out, func(w io.Writer) error { return writeSitemap(w, b.pages) }); err != nil {
		return err
	}
	b.logger.Info("generated sitemap", "file", out, "urls", len(b.pages))
	return nil
}
