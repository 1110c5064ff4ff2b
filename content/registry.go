package content

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/yagizklc/yagizklc.github.io/model"
)

//go:embed posts/*.md
var postFS embed.FS

// Source is one raw blog entry before parsing.
type Source struct {
	Slug string
	Raw  string
}

// Posts loads every embedded post, newest first.
func Posts() []model.Post {
	entries, err := fs.ReadDir(postFS, "posts")
	if err != nil {
		return nil
	}

	var sources []Source
	for _, e := range entries {
		raw, err := postFS.ReadFile("posts/" + e.Name())
		if err != nil {
			continue
		}
		sources = append(sources, Source{
			Slug: strings.TrimSuffix(e.Name(), ".md"),
			Raw:  string(raw),
		})
	}
	return Build(sources)
}

// Build turns raw sources into posts, sorted by date descending. A
// post with a missing or unparsable date sorts as the earliest
// possible value, so it sinks to the bottom. Ties keep their original
// relative order. A bad individual source is skipped, it never takes
// the rest of the registry down with it.
func Build(sources []Source) []model.Post {
	posts := make([]model.Post, 0, len(sources))
	for _, src := range sources {
		if src.Slug == "" || src.Raw == "" {
			continue
		}
		posts = append(posts, parsePost(src))
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts
}

func parsePost(src Source) model.Post {
	header, body := SplitFrontMatter(src.Raw)

	title := header.Get("title")
	if title == "" {
		title = src.Slug
	}

	date := header.Get("date")
	published, err := time.Parse("2006-01-02", date)
	if err != nil {
		published = time.Time{}
	}

	var tags []string
	if _, ok := header["tags"]; ok {
		tags = header.List("tags")
	}

	return model.Post{
		Slug:        src.Slug,
		Title:       title,
		Date:        date,
		PublishedAt: published,
		ReadTime:    header.Get("readTime"),
		Excerpt:     header.Get("excerpt"),
		Tags:        tags,
		Body:        body,
	}
}
