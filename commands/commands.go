package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yagizklc/yagizklc.github.io/content"
	"github.com/yagizklc/yagizklc.github.io/profile"
	"github.com/yagizklc/yagizklc.github.io/term"
	"github.com/yagizklc/yagizklc.github.io/tui"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "A personal portfolio that pretends to be a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.Load()
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}

			m := tui.NewModel(term.NewSession(p), content.Projects())
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("running ui: %w", err)
			}
			return nil
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPosts(topLevel)
	addVersion(topLevel)
}
