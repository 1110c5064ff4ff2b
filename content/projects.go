package content

import "github.com/yagizklc/yagizklc.github.io/model"

// Projects returns the fixed project list for the projects view.
func Projects() []model.Project {
	return []model.Project{
		{
			Name:        "yagizklc.github.io",
			Description: "This site. A personal portfolio that pretends to be a terminal.",
			Tech:        []string{"go", "bubbletea", "lipgloss"},
			URL:         "https://github.com/yagizklc/yagizklc.github.io",
		},
		{
			Name:        "queuectl",
			Description: "Small CLI for inspecting and draining work queues at my day job, open sourced the generic bits.",
			Tech:        []string{"go", "cobra"},
			URL:         "https://github.com/yagizklc/queuectl",
		},
		{
			Name:        "pgsnap",
			Description: "Snapshot and diff Postgres schemas between environments.",
			Tech:        []string{"go", "postgres"},
			URL:         "https://github.com/yagizklc/pgsnap",
		},
		{
			Name:        "dotfiles",
			Description: "Neovim, tmux and shell config. The usual never-finished project.",
			Tech:        []string{"lua", "shell"},
			URL:         "https://github.com/yagizklc/dotfiles",
		},
	}
}
