package term

import "strings"

// Command enumerates every input the dispatcher recognizes. Keeping
// this a closed set means a new command is a compile-time edit: add a
// constant, a name, a description, and a case in Submit.
type Command int

const (
	CmdUnknown Command = iota
	CmdEmpty
	CmdHelp
	CmdWhoami
	CmdContact
	CmdProjects
	CmdBlog
	CmdHome
	CmdClear
	CmdLs
	CmdPwd
)

// commandOrder fixes the order of the help listing and of completion
// candidates.
var commandOrder = []Command{
	CmdHelp,
	CmdWhoami,
	CmdContact,
	CmdProjects,
	CmdBlog,
	CmdHome,
	CmdClear,
	CmdLs,
	CmdPwd,
}

func (c Command) Name() string {
	switch c {
	case CmdHelp:
		return "help"
	case CmdWhoami:
		return "whoami"
	case CmdContact:
		return "contact"
	case CmdProjects:
		return "projects"
	case CmdBlog:
		return "blog"
	case CmdHome:
		return "home"
	case CmdClear:
		return "clear"
	case CmdLs:
		return "ls"
	case CmdPwd:
		return "pwd"
	default:
		return ""
	}
}

func (c Command) Description() string {
	switch c {
	case CmdHelp:
		return "Show this help"
	case CmdWhoami:
		return "A few words about me"
	case CmdContact:
		return "How to reach me"
	case CmdProjects:
		return "Open the projects view"
	case CmdBlog:
		return "Open the blog"
	case CmdHome:
		return "Back to the main screen"
	case CmdClear:
		return "Clear the screen"
	case CmdLs:
		return "List what's here"
	case CmdPwd:
		return "Print the working directory"
	default:
		return ""
	}
}

// ParseCommand matches raw input against the command set. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseCommand(raw string) Command {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return CmdEmpty
	}
	for _, c := range commandOrder {
		if normalized == c.Name() {
			return c
		}
	}
	return CmdUnknown
}

// CommandNames returns the recognized command names in help order.
func CommandNames() []string {
	names := make([]string, 0, len(commandOrder))
	for _, c := range commandOrder {
		names = append(names, c.Name())
	}
	return names
}
