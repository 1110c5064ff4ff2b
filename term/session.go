package term

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yagizklc/yagizklc.github.io/model"
	"github.com/yagizklc/yagizklc.github.io/profile"
)

// recallNone means the user is typing fresh input, not browsing
// history.
const recallNone = -1

// Session holds all interpreter state for one page of the terminal.
// It is exclusively owned by the event loop that feeds it; nothing in
// here is safe for concurrent use and nothing needs to be.
type Session struct {
	profile    profile.Profile
	scrollback []model.Line
	history    []string
	recall     int // index into history, or recallNone
	view       model.View
}

// NewSession returns a session seeded with the welcome banner.
func NewSession(p profile.Profile) *Session {
	s := &Session{
		profile: p,
		recall:  recallNone,
		view:    model.ViewHome,
	}
	s.append(model.KindAccent, fmt.Sprintf("Hi, I'm %s. Welcome to my corner of the internet.", p.Name))
	s.append(model.KindOutput, "")
	s.append(model.KindOutput, "Type 'help' to see what you can do here.")
	return s
}

// Scrollback returns the visible lines, oldest first.
func (s *Session) Scrollback() []model.Line { return s.scrollback }

// History returns every submitted raw input, oldest first.
func (s *Session) History() []string { return s.history }

// View returns the active view.
func (s *Session) View() model.View { return s.view }

// Prompt returns the prompt prefix used for command echoes.
func (s *Session) Prompt() string { return s.profile.Prompt }

// SetView switches the active view directly. The renderer uses this
// for shortcuts (esc from a sub-view); typed commands go through
// Submit instead.
func (s *Session) SetView(v model.View) { s.view = v }

// Submit runs one raw input line through the dispatcher. The
// submission is echoed with the prompt prefix, appended to the command
// history, and the recall cursor is reset, regardless of whether the
// command is recognized. Exactly one command effect fires.
func (s *Session) Submit(raw string) {
	s.append(model.KindCommand, s.profile.Prompt+" "+raw)
	s.history = append(s.history, raw)
	s.recall = recallNone

	switch ParseCommand(raw) {
	case CmdEmpty:
		// a bare enter, nothing to do

	case CmdHelp:
		s.append(model.KindAccent, "Available commands:")
		for _, c := range commandOrder {
			s.append(model.KindHelp, fmt.Sprintf("  %-10s %s", c.Name(), c.Description()))
		}

	case CmdWhoami:
		s.append(model.KindOutput, s.profile.Name+" ("+s.profile.Handle+")")
		s.append(model.KindOutput, s.profile.Role)
		s.append(model.KindOutput, "Based in "+s.profile.Location+".")

	case CmdContact:
		s.append(model.KindOutput, "You can reach me at:")
		s.append(model.KindOutput, "  email     "+s.profile.Email)
		s.append(model.KindOutput, "  github    "+s.profile.GitHub)
		s.append(model.KindOutput, "  linkedin  "+s.profile.LinkedIn)

	case CmdProjects:
		s.append(model.KindAccent, "Loading projects...")
		s.view = model.ViewProjects

	case CmdBlog:
		s.append(model.KindAccent, "Loading blog...")
		s.view = model.ViewBlog

	case CmdHome:
		s.append(model.KindAccent, "Returning home...")
		s.view = model.ViewHome

	case CmdClear:
		s.scrollback = nil

	case CmdLs:
		s.append(model.KindOutput, "projects/  blog/  about.md  contact.md")

	case CmdPwd:
		s.append(model.KindOutput, s.profile.WorkDir)

	case CmdUnknown:
		s.append(model.KindError,
			fmt.Sprintf("command not found: %s. Type 'help' to see available commands.", strings.TrimSpace(raw)))
	}
}

// Clear empties the scrollback. Command history and the active view
// are untouched.
func (s *Session) Clear() { s.scrollback = nil }

// RecallPrev moves one step back through the command history. It
// returns the entry to place in the input buffer. With an empty
// history there is nothing to recall and ok is false.
func (s *Session) RecallPrev() (string, bool) {
	if len(s.history) == 0 {
		return "", false
	}
	if s.recall == recallNone {
		s.recall = len(s.history) - 1
	} else if s.recall > 0 {
		s.recall--
	}
	return s.history[s.recall], true
}

// RecallNext moves one step forward. Stepping past the most recent
// entry returns to live input with an empty buffer. When already live
// it is a no-op and ok is false.
func (s *Session) RecallNext() (string, bool) {
	if s.recall == recallNone {
		return "", false
	}
	if s.recall == len(s.history)-1 {
		s.recall = recallNone
		return "", true
	}
	s.recall++
	return s.history[s.recall], true
}

// StopRecall drops back to live input. Called when the user edits the
// buffer directly; a recalled value becomes an ordinary buffer value.
func (s *Session) StopRecall() { s.recall = recallNone }

// Recalling reports whether the user is browsing history.
func (s *Session) Recalling() bool { return s.recall != recallNone }

// Complete resolves the buffer against the command set. A unique
// prefix match returns the completed name. Several matches append one
// informational line listing them and leave the buffer alone. No match
// is a no-op.
func (s *Session) Complete(buffer string) (string, bool) {
	prefix := strings.ToLower(strings.TrimSpace(buffer))
	var matches []string
	for _, name := range CommandNames() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return "", false
	case 1:
		return matches[0], true
	default:
		s.append(model.KindAccent, strings.Join(matches, "  "))
		return "", false
	}
}

func (s *Session) append(kind model.LineKind, text string) {
	s.scrollback = append(s.scrollback, model.Line{
		ID:   uuid.NewString(),
		Kind: kind,
		Text: text,
		At:   time.Now(),
	})
}
