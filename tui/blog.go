package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/yagizklc/yagizklc.github.io/content"
	"github.com/yagizklc/yagizklc.github.io/model"
)

// postsLoadedMsg is sent when the registry build completes.
type postsLoadedMsg struct {
	posts []model.Post
}

func loadPosts() tea.Cmd {
	return func() tea.Msg {
		return postsLoadedMsg{posts: content.Posts()}
	}
}

// readerModel wraps the viewport showing a single rendered post.
type readerModel struct {
	vp     viewport.Model
	title  string
	width  int
	height int
}

func (r *readerModel) setSize(width, height int) {
	r.width = width
	r.height = height
	r.vp.Width = width
	r.vp.Height = max(height-2, 1) // title bar + help bar
}

func (r *readerModel) open(p model.Post) {
	r.title = p.Title
	r.vp = viewport.New(r.width, max(r.height-2, 1))
	body, err := renderMarkdown(p.Body, r.width)
	if err != nil {
		body = p.Body
	}
	r.vp.SetContent(body)
}

func renderMarkdown(md string, width int) (string, error) {
	if width < 40 {
		width = 40
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

func (m Model) updateBlogList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.session.SetView(model.ViewHome)
		return m, nil

	case "up", "k":
		if m.blogCursor > 0 {
			m.blogCursor--
		}

	case "down", "j":
		if m.blogCursor < len(m.posts)-1 {
			m.blogCursor++
		}

	case "enter":
		if len(m.posts) > 0 {
			m.reader.setSize(m.width, m.height)
			m.reader.open(m.posts[m.blogCursor])
			m.reading = true
		}
	}
	return m, nil
}

func (m Model) updateReader(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace":
		m.reading = false
		return m, nil
	case "g", "home":
		m.reader.vp.GotoTop()
		return m, nil
	case "G", "end":
		m.reader.vp.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.reader.vp, cmd = m.reader.vp.Update(msg)
	return m, cmd
}

func (m Model) viewBlogList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("~/blog"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d posts", len(m.posts))))
	b.WriteString("\n\n")

	if m.postsLoading {
		b.WriteString("  Loading...\n")
		b.WriteString(m.padTo(3))
		b.WriteString(helpStyle.Render("  esc: back"))
		return b.String()
	}

	if len(m.posts) == 0 {
		b.WriteString("  Nothing here yet.\n")
		b.WriteString(m.padTo(3))
		b.WriteString(helpStyle.Render("  esc: back"))
		return b.String()
	}

	used := 2
	for i, p := range m.posts {
		title := p.Title
		if i == m.blogCursor {
			title = selectedStyle.Render("> " + title)
		} else {
			title = "  " + title
		}
		b.WriteString(title + "\n")

		meta := p.Date
		if p.ReadTime != "" {
			meta += "  " + p.ReadTime
		}
		if len(p.Tags) > 0 {
			meta += "  " + tagStyle.Render("#"+strings.Join(p.Tags, " #"))
		}
		b.WriteString(dimStyle.Render("    "+meta) + "\n")

		if p.Excerpt != "" {
			b.WriteString(dimStyle.Render("    "+p.Excerpt) + "\n")
		}
		b.WriteString("\n")
		used += 4
	}

	b.WriteString(m.padTo(used))
	b.WriteString(helpStyle.Render("  enter: read  j/k: move  esc: back"))
	return b.String()
}

func (m Model) viewReader() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" " + m.reader.title + " "))
	b.WriteString("\n")
	b.WriteString(m.reader.vp.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  j/k: scroll  g/G: top/bottom  esc: back") +
		dimStyle.Render(fmt.Sprintf("  %3.f%%", m.reader.vp.ScrollPercent()*100)))
	return b.String()
}

// padTo fills the gap between used rows and the help bar so the bar
// stays at the bottom of the screen.
func (m Model) padTo(used int) string {
	rows := m.height - used - 1
	if rows < 0 {
		rows = 0
	}
	return strings.Repeat("\n", rows)
}
