package model

// PageData is the value every layout is executed with.
type PageData struct {
	Site        SiteConfig
	Title       string
	Description string
	Canonical   string
	Path        string

	Posts    []Post
	Post     *Post
	Tag      string
	Tags     []string
	Projects []Project
	Project  *Project
	Featured []Project
	Related  []Project
	Resume   Resume
}
