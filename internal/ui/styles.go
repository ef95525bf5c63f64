package ui

import (
	"treepick/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	text      lipgloss.Style
	muted     lipgloss.Style
	prompt    lipgloss.Style
	match     lipgloss.Style
	selected  lipgloss.Style
	drag      lipgloss.Style
	dropZone  lipgloss.Style
	forbidden lipgloss.Style
	status    lipgloss.Style
	errStatus lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	return styles{
		text:   lipgloss.NewStyle().Foreground(t.Text),
		muted:  lipgloss.NewStyle().Foreground(t.Muted),
		prompt: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		match:  lipgloss.NewStyle().Foreground(t.Match).Bold(true).Underline(true),
		selected: lipgloss.NewStyle().
			Background(t.Cursor).
			Foreground(t.CursorFg).
			Bold(true),
		drag:      lipgloss.NewStyle().Foreground(t.Drag).Italic(true),
		dropZone:  lipgloss.NewStyle().Foreground(t.DropZone).Bold(true),
		forbidden: lipgloss.NewStyle().Foreground(t.Forbidden).Bold(true),
		status:    lipgloss.NewStyle().Foreground(t.Accent),
		errStatus: lipgloss.NewStyle().Foreground(t.Forbidden),
	}
}
