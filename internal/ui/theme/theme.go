// Package theme provides the picker's semantic color palettes.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps the picker's semantic roles to colors. Every color is adaptive
// so light and dark terminals both stay readable.
type Theme struct {
	Text      lipgloss.AdaptiveColor // row labels
	Muted     lipgloss.AdaptiveColor // branch markers, hints, footer
	Accent    lipgloss.AdaptiveColor // search prompt, header
	Match     lipgloss.AdaptiveColor // highlighted search characters
	Cursor    lipgloss.AdaptiveColor // selected row background
	CursorFg  lipgloss.AdaptiveColor
	Drag      lipgloss.AdaptiveColor // node being moved
	DropZone  lipgloss.AdaptiveColor // legal drop indicator
	Forbidden lipgloss.AdaptiveColor // illegal drop indicator, errors
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}
