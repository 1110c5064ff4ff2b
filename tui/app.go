package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/yagizklc/yagizklc.github.io/model"
	"github.com/yagizklc/yagizklc.github.io/term"
)

type Model struct {
	session *term.Session
	input   textinput.Model
	width   int
	height  int

	// blog view
	posts        []model.Post
	postsLoading bool
	postsLoaded  bool
	blogCursor   int
	reading      bool
	reader       readerModel

	// projects view
	projects   []model.Project
	projCursor int

	quitting bool
}

func NewModel(s *term.Session, projects []model.Project) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.Focus()

	return Model{
		session:  s,
		input:    ti,
		projects: projects,
		width:    100,
		height:   30,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reader.setSize(msg.Width, msg.Height)
		return m, nil

	case postsLoadedMsg:
		m.posts = msg.posts
		m.postsLoading = false
		m.postsLoaded = true
		if m.blogCursor >= len(m.posts) {
			m.blogCursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.session.View() {
		case model.ViewHome:
			return m.updateTerminal(msg)
		case model.ViewProjects:
			return m.updateProjects(msg)
		case model.ViewBlog:
			if m.reading {
				return m.updateReader(msg)
			}
			return m.updateBlogList(msg)
		}
	}
	return m, nil
}

func (m Model) updateTerminal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.session.Submit(m.input.Value())
		m.input.SetValue("")
		if m.session.View() == model.ViewBlog && !m.postsLoaded && !m.postsLoading {
			m.postsLoading = true
			return m, loadPosts()
		}
		return m, nil

	case "up":
		if v, ok := m.session.RecallPrev(); ok {
			m.input.SetValue(v)
			m.input.CursorEnd()
		}
		return m, nil

	case "down":
		if v, ok := m.session.RecallNext(); ok {
			m.input.SetValue(v)
			m.input.CursorEnd()
		}
		return m, nil

	case "tab":
		if v, ok := m.session.Complete(m.input.Value()); ok {
			m.input.SetValue(v)
			m.input.CursorEnd()
		}
		return m, nil
	}

	// any direct edit drops history browsing back to live input
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.session.StopRecall()
	}
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.View() {
	case model.ViewProjects:
		return m.viewProjects()
	case model.ViewBlog:
		if m.reading {
			return m.viewReader()
		}
		return m.viewBlogList()
	default:
		return m.viewTerminal()
	}
}

func (m Model) viewTerminal() string {
	var b strings.Builder

	// scrollback, wrapped to width, pinned to the bottom
	var rendered []string
	for _, line := range m.session.Scrollback() {
		wrapped := wordwrap.String(line.Text, max(m.width-2, 20))
		for _, part := range strings.Split(wrapped, "\n") {
			rendered = append(rendered, lineStyle(line.Kind).Render(part))
		}
	}

	visible := m.height - 2 // prompt line + help bar
	if visible < 1 {
		visible = 1
	}
	start := 0
	if len(rendered) > visible {
		start = len(rendered) - visible
	}
	for i := start; i < len(rendered); i++ {
		b.WriteString(rendered[i])
		b.WriteString("\n")
	}
	for i := len(rendered) - start; i < visible; i++ {
		b.WriteString("\n")
	}

	b.WriteString(promptStyle.Render(m.session.Prompt()) + " " + m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  enter: run  up/down: history  tab: complete  ctrl+c: quit"))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
