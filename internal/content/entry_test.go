package content

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	src := []byte(`---
title: Hello World
description: First post
date: 2024-03-15
tags: [go, web]
image: /images/hello.png
imageAlt: A greeting
relatedProjects: [example-project]
---
# Hello

Some **bold** words here.
`)
	post, err := ParseEntry("blog/hello.md", "hello", src, NewRenderer())
	require.NoError(t, err)

	assert.Equal(t, "hello", post.Slug)
	assert.Equal(t, "blog/hello.md", post.SourcePath)
	assert.Equal(t, "Hello World", post.Data.Title)
	assert.Equal(t, "First post", post.Data.Description)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), post.Data.Date)
	assert.Equal(t, []string{"go", "web"}, post.Data.Tags)
	assert.Equal(t, "/images/hello.png", post.Data.Image)
	assert.Equal(t, "A greeting", post.Data.ImageAlt)
	assert.Equal(t, []string{"example-project"}, post.Data.RelatedProjects)
	assert.False(t, post.Data.Draft)
	assert.Equal(t, 1, post.ReadingTime)
	assert.Contains(t, string(post.ContentHTML), `<h1 id="hello">Hello</h1>`)
	assert.Contains(t, string(post.ContentHTML), "<strong>bold</strong>")
}

func TestParseEntryDefaults(t *testing.T) {
	src := []byte("---\ntitle: T\ndescription: D\ndate: 2024-01-02\n---\nbody\n")
	post, err := ParseEntry("x.md", "x", src, NewRenderer())
	require.NoError(t, err)

	assert.NotNil(t, post.Data.Tags)
	assert.Empty(t, post.Data.Tags)
	assert.NotNil(t, post.Data.RelatedProjects)
	assert.Empty(t, post.Data.RelatedProjects)
	assert.False(t, post.Data.Draft)
	assert.Empty(t, post.Data.Image)
}

func TestParseEntryDates(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{`"2024-03-15"`, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{`"2024-03-15 10:30:00"`, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		src := []byte("---\ntitle: T\ndescription: D\ndate: " + tc.in + "\n---\n")
		post, err := ParseEntry("x.md", "x", src, NewRenderer())
		require.NoError(t, err, tc.in)
		assert.True(t, tc.want.Equal(post.Data.Date), "%s parsed as %s", tc.in, post.Data.Date)
	}
}

func TestParseEntryQuotedNumberTitle(t *testing.T) {
	src := []byte("---\ntitle: \"2024\"\ndescription: D\ndate: 2024-01-02\n---\n")
	post, err := ParseEntry("x.md", "x", src, NewRenderer())
	require.NoError(t, err)
	assert.Equal(t, "2024", post.Data.Title)
}

func TestParseEntrySlugOverride(t *testing.T) {
	src := []byte("---\ntitle: T\ndescription: D\ndate: 2024-01-02\nslug: /custom/\n---\n")
	post, err := ParseEntry("x.md", "x", src, NewRenderer())
	require.NoError(t, err)
	assert.Equal(t, "custom", post.Slug)
}

func TestParseEntryRejections(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		reason string
	}{
		{"no frontmatter", "# just markdown\n", "missing frontmatter"},
		{"missing title", "---\ndescription: D\ndate: 2024-01-02\n---\n", "title"},
		{"missing description and date", "---\ntitle: T\n---\n", "description, date"},
		{"bad date", "---\ntitle: T\ndescription: D\ndate: yesterday\n---\n", "invalid date"},
		{"title is a list", "---\ntitle: [a, b]\ndescription: D\ndate: 2024-01-02\n---\n", "title must be a string"},
		{"title is a number", "---\ntitle: 2024\ndescription: D\ndate: 2024-01-02\n---\n", "title must be a string, got int"},
		{"description is a bool", "---\ntitle: T\ndescription: true\ndate: 2024-01-02\n---\n", "description must be a string, got bool"},
		{"tags not a list", "---\ntitle: T\ndescription: D\ndate: 2024-01-02\ntags: {a: b}\n---\n", "invalid frontmatter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			post, err := ParseEntry("bad.md", "bad", []byte(tc.src), NewRenderer())
			require.Error(t, err)
			assert.Empty(t, post.Slug)

			var rej *RejectionError
			require.True(t, errors.As(err, &rej))
			assert.Equal(t, "bad.md", rej.Path)
			assert.Contains(t, err.Error(), tc.reason)
		})
	}
}

func TestRendererSanitizes(t *testing.T) {
	html, err := NewRenderer().Render([]byte("<script>alert(1)</script>\n\n```go\nfmt.Println()\n```\n"))
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
	assert.Contains(t, string(html), `class="language-go"`)
}

func TestSlugFromPath(t *testing.T) {
	cases := map[string]string{
		"hello.md":                  "hello",
		"Hello World.md":            "hello-world",
		"2024/My Post!.markdown":    "2024/my-post",
		"nested/dir/under_score.md": "nested/dir/under_score",
	}
	for in, want := range cases {
		assert.Equal(t, want, SlugFromPath(in), in)
	}
}
