package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/yagizklc/yagizklc.github.io/content"
)

// addPosts lists the blog registry as plain text, for scripting and
// for checking a new post sorts where it should.
func addPosts(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List blog posts, newest first.",
		Example: `
portfolio posts
`,
		Run: func(_ *cobra.Command, _ []string) {
			posts := content.Posts()

			t := color.New(color.Bold, color.Underline)
			_, _ = t.Printf("%d posts\n", len(posts))

			tbl := uitable.New()
			tbl.AddRow("SLUG", "DATE", "TITLE", "READ", "TAGS")
			for _, p := range posts {
				tbl.AddRow(p.Slug, p.Date, p.Title, p.ReadTime, strings.Join(p.Tags, ","))
			}
			fmt.Println(tbl)
		},
	}

	topLevel.AddCommand(cmd)
}
