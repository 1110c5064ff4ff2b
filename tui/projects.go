package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yagizklc/yagizklc.github.io/model"
)

func (m Model) updateProjects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.session.SetView(model.ViewHome)

	case "up", "k":
		if m.projCursor > 0 {
			m.projCursor--
		}

	case "down", "j":
		if m.projCursor < len(m.projects)-1 {
			m.projCursor++
		}
	}
	return m, nil
}

func (m Model) viewProjects() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("~/projects"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d projects", len(m.projects))))
	b.WriteString("\n\n")

	used := 2
	for i, p := range m.projects {
		name := p.Name
		if i == m.projCursor {
			name = selectedStyle.Render("> " + name)
		} else {
			name = "  " + name
		}
		b.WriteString(name)
		if len(p.Tech) > 0 {
			b.WriteString("  " + tagStyle.Render("["+strings.Join(p.Tech, ", ")+"]"))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("    "+p.Description) + "\n")
		b.WriteString(dimStyle.Render("    "+p.URL) + "\n")
		b.WriteString("\n")
		used += 4
	}

	b.WriteString(m.padTo(used))
	b.WriteString(helpStyle.Render("  j/k: move  esc: back"))
	return b.String()
}
