package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yagizklc/yagizklc.github.io/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	echoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	helpEntryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("249"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)

func lineStyle(kind model.LineKind) lipgloss.Style {
	switch kind {
	case model.KindCommand:
		return echoStyle
	case model.KindError:
		return errorStyle
	case model.KindAccent:
		return accentStyle
	case model.KindHelp:
		return helpEntryStyle
	default:
		return outputStyle
	}
}
