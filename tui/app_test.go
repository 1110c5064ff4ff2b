package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yagizklc/yagizklc.github.io/content"
	"github.com/yagizklc/yagizklc.github.io/model"
	"github.com/yagizklc/yagizklc.github.io/profile"
	"github.com/yagizklc/yagizklc.github.io/term"
)

func newTestModel() Model {
	m := NewModel(term.NewSession(profile.Default()), content.Projects())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func press(t *testing.T, m Model, key tea.KeyType) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model)
}

func TestTypedCommandReachesTheSession(t *testing.T) {
	m := newTestModel()
	m = typeString(t, m, "help")
	m = press(t, m, tea.KeyEnter)

	require.Equal(t, []string{"help"}, m.session.History())
	view := m.View()
	assert.Contains(t, view, "Available commands")
	assert.Contains(t, view, "whoami")
}

func TestEnterClearsTheInputBuffer(t *testing.T) {
	m := newTestModel()
	m = typeString(t, m, "pwd")
	m = press(t, m, tea.KeyEnter)

	assert.Equal(t, "", m.input.Value())
}

func TestUpArrowRecallsLastCommand(t *testing.T) {
	m := newTestModel()
	m = typeString(t, m, "whoami")
	m = press(t, m, tea.KeyEnter)

	m = press(t, m, tea.KeyUp)
	assert.Equal(t, "whoami", m.input.Value())

	m = press(t, m, tea.KeyDown)
	assert.Equal(t, "", m.input.Value())
}

func TestEditingWhileRecallingDropsToLive(t *testing.T) {
	m := newTestModel()
	m = typeString(t, m, "whoami")
	m = press(t, m, tea.KeyEnter)

	m = press(t, m, tea.KeyUp)
	require.True(t, m.session.Recalling())

	m = typeString(t, m, "x")
	assert.False(t, m.session.Recalling())
}

func TestTabCompletesUniquePrefix(t *testing.T) {
	m := newTestModel()
	m = typeString(t, m, "wh")
	m = press(t, m, tea.KeyTab)

	assert.Equal(t, "whoami", m.input.Value())
}

func TestBlogCommandSwitchesViewAndLoadsPosts(t *testing.T) {
	m := newTestModel()
	m = typeString(t, m, "blog")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.Equal(t, model.ViewBlog, m.session.View())
	require.NotNil(t, cmd)
	assert.True(t, m.postsLoading)

	msg := cmd()
	loaded, ok := msg.(postsLoadedMsg)
	require.True(t, ok)
	require.NotEmpty(t, loaded.posts)

	updated, _ = m.Update(msg)
	m = updated.(Model)
	assert.True(t, m.postsLoaded)

	view := m.View()
	assert.Contains(t, view, "~/blog")
	assert.Contains(t, view, loaded.posts[0].Title)
}

func TestEscReturnsHomeFromProjects(t *testing.T) {
	m := newTestModel()
	m = typeString(t, m, "projects")
	m = press(t, m, tea.KeyEnter)
	require.Equal(t, model.ViewProjects, m.session.View())
	assert.Contains(t, m.View(), "~/projects")

	m = press(t, m, tea.KeyEsc)
	assert.Equal(t, model.ViewHome, m.session.View())
}

func TestTerminalViewShowsPromptAndScrollback(t *testing.T) {
	m := newTestModel()
	m = typeString(t, m, "nonsense")
	m = press(t, m, tea.KeyEnter)

	view := m.View()
	assert.Contains(t, view, m.session.Prompt())
	assert.Contains(t, view, "command not found: nonsense")

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 30)
}

func TestOpeningAPostRendersItsBody(t *testing.T) {
	m := newTestModel()
	m = typeString(t, m, "blog")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)
	updated, _ = m.Update(cmd())
	m = updated.(Model)

	m = press(t, m, tea.KeyEnter)
	require.True(t, m.reading)
	assert.Contains(t, m.View(), m.posts[0].Title)

	m = press(t, m, tea.KeyEsc)
	assert.False(t, m.reading)
}
