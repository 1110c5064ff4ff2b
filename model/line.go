package model

import "time"

// LineKind tags a scrollback line so the renderer can pick a style.
type LineKind int

const (
	KindCommand LineKind = iota // echoed submission, prompt prefix included
	KindOutput                  // plain command output
	KindError                   // unrecognized command and friends
	KindAccent                  // banners and view-switch notices
	KindHelp                    // one entry of the help listing
)

// Line is one entry in the terminal scrollback. Lines are immutable
// once created; the session only ever appends them or clears the
// whole scrollback.
type Line struct {
	ID   string
	Kind LineKind
	Text string
	At   time.Time
}
