package model

import (
	"html/template"
	"time"
)

// SiteConfig holds the identity and contact metadata used by layouts and the feed.
type SiteConfig struct {
	Name          string `yaml:"name"`
	Tagline       string `yaml:"tagline"`
	Description   string `yaml:"description"`
	URL           string `yaml:"url"`
	GitHub        string `yaml:"github"`
	LinkedIn      string `yaml:"linkedin"`
	Email         string `yaml:"email"`
	TwitterHandle string `yaml:"twitterHandle"`
}

// Project is a single entry of the portfolio.
type Project struct {
	Slug            string   `validate:"required"`
	Title           string   `validate:"required"`
	Description     string   `validate:"required"`
	LongDescription string
	TechStack       []string
	Tags            []string
	GitHubURL       string `validate:"omitempty,url"`
	DemoURL         string `validate:"omitempty,url"`
	Image           string
	Featured        bool
}

type SkillCategory struct {
	Name  string
	Items []string
}

type Experience struct {
	Role    string
	Company string
	Period  string
	Bullets []string
}

type Education struct {
	Degree      string
	Institution string
	Period      string
	Notes       string
}

// Resume is rendered as-is. Experience and Education keep the order they are
// declared in; authors list them most recent first.
type Resume struct {
	Name       string
	Title      string
	Email      string
	GitHub     string
	LinkedIn   string
	Summary    string
	Skills     []SkillCategory
	Experience []Experience
	Education  []Education
}

// Frontmatter is the validated metadata of a blog post.
type Frontmatter struct {
	Title           string
	Description     string
	Date            time.Time
	Tags            []string
	Image           string
	ImageAlt        string
	RelatedProjects []string
	Draft           bool
}

// Post is a single entry of the blog collection.
type Post struct {
	Slug        string
	SourcePath  string
	Data        Frontmatter
	Body        string
	ContentHTML template.HTML
	ReadingTime int
}
