// Package feed serialises the blog's publish set as an RSS document.
package feed

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"golang.org/x/text/language"

	"github.com/CalebHellmund/calebhellmund.github.io/internal/config"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/model"
)

// FileName is the feed's path below the site base.
const FileName = "rss.xml"

var feedLanguage = strings.ToLower(language.AmericanEnglish.String())

// Build maps posts onto a feed in the order given. posts must already be the
// publish set: drafts removed, newest first.
func Build(site model.SiteConfig, links config.Links, posts []model.Post, now time.Time) *feeds.Feed {
	f := &feeds.Feed{
		Title:       site.Name + " — Blog",
		Description: site.Description,
		Link:        &feeds.Link{Href: links.URL()},
		Updated:     now,
		Items:       make([]*feeds.Item, 0, len(posts)),
	}
	if len(posts) > 0 {
		f.Updated = posts[0].Data.Date
	}

	for _, p := range posts {
		link := links.URL("blog", p.Slug)
		f.Items = append(f.Items, &feeds.Item{
			Title:       p.Data.Title,
			Description: p.Data.Description,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Created:     p.Data.Date,
		})
	}
	return f
}

// WriteRSS writes f as RSS 2.0.
func WriteRSS(w io.Writer, f *feeds.Feed) error {
	rss := (&feeds.Rss{Feed: f}).RssFeed()
	rss.Language = feedLanguage
	if err := feeds.WriteXML(rss, w); err != nil {
		return fmt.Errorf("write rss: %w", err)
	}
	return nil
}
