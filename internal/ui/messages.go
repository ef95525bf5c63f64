package ui

import (
	"time"

	"treepick/internal/tree"

	tea "github.com/charmbracelet/bubbletea"
)

// SelectedMsg reports the node chosen with the select key or a mouse click
// on the row under the cursor. Path holds the ancestor values, root first,
// followed by Value.
type SelectedMsg struct {
	Value any
	Path  []any
}

// DropMsg reports a legal drop. Applying it to the tree is up to the caller.
type DropMsg struct {
	Drag   any
	Target any
	Zone   tree.DropZone
}

type statusClearMsg struct {
	seq int
}

const statusDuration = 3 * time.Second

func scheduleStatusClear(seq int) tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
