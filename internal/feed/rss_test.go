package feed

import (
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CalebHellmund/calebhellmund.github.io/internal/config"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/content"
	"github.com/CalebHellmund/calebhellmund.github.io/internal/model"
)

type rssDoc struct {
	Channel struct {
		Title       string `xml:"title"`
		Description string `xml:"description"`
		Link        string `xml:"link"`
		Language    string `xml:"language"`
		Items       []struct {
			Title       string `xml:"title"`
			Description string `xml:"description"`
			Link        string `xml:"link"`
			PubDate     string `xml:"pubDate"`
		} `xml:"item"`
	} `xml:"channel"`
}

func post(slug, date string, draft bool) model.Post {
	d, _ := time.Parse("2006-01-02", date)
	return model.Post{
		Slug: slug,
		Data: model.Frontmatter{Title: "Title " + slug, Description: "About " + slug, Date: d, Draft: draft},
	}
}

func TestWriteRSSRoundTrip(t *testing.T) {
	site := model.SiteConfig{Name: "Alex Johnson", Description: "Portfolio and blog"}
	links := config.NewLinks("https://example.com", "/", config.TrailingSlashAlways)

	published := content.Publishable([]model.Post{
		post("older", "2023-05-01", false),
		post("hidden", "2025-01-01", true),
		post("newest", "2024-09-10", false),
		post("middle", "2024-01-20", false),
	})

	var buf bytes.Buffer
	require.NoError(t, WriteRSS(&buf, Build(site, links, published, time.Now())))

	var doc rssDoc
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "Alex Johnson — Blog", doc.Channel.Title)
	assert.Equal(t, "Portfolio and blog", doc.Channel.Description)
	assert.Equal(t, "https://example.com/", doc.Channel.Link)
	assert.Equal(t, "en-us", doc.Channel.Language)

	require.Len(t, doc.Channel.Items, len(published))
	for i, item := range doc.Channel.Items {
		p := published[i]
		assert.Equal(t, p.Data.Title, item.Title)
		assert.Equal(t, p.Data.Description, item.Description)
		assert.Equal(t, "https://example.com/blog/"+p.Slug+"/", item.Link)

		pub, err := time.Parse(time.RFC1123Z, item.PubDate)
		require.NoError(t, err)
		assert.True(t, pub.Equal(p.Data.Date))
	}
	assert.Equal(t, "Title newest", doc.Channel.Items[0].Title)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestBuildUsesBasePath(t *testing.T) {
	links := config.NewLinks("https://example.com", "/my-portfolio", config.TrailingSlashAlways)
	f := Build(model.SiteConfig{Name: "N"}, links, []model.Post{post("a", "2024-01-01", false)}, time.Now())

	require.Len(t, f.Items, 1)
	assert.Equal(t, "https://example.com/my-portfolio/blog/a/", f.Items[0].Link.Href)
	assert.Equal(t, "https://example.com/my-portfolio/", f.Link.Href)
}

func TestBuildEmpty(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := Build(model.SiteConfig{Name: "N"}, config.NewLinks("https://e.com", "/", "always"), nil, now)
	assert.Empty(t, f.Items)
	assert.Equal(t, now, f.Updated)

	var buf bytes.Buffer
	require.NoError(t, WriteRSS(&buf, f))
	assert.Contains(t, buf.String(), "<channel>")
}
