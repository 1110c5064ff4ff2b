package model

import "time"

// Post is one parsed blog entry, built once from its source text.
type Post struct {
	Slug        string
	Title       string
	Date        string // display value straight from the front matter
	PublishedAt time.Time
	ReadTime    string
	Excerpt     string
	Tags        []string
	Body        string // markdown after the front matter
}
