package ui

import (
	"strings"

	"treepick/internal/richtext"
	"treepick/internal/tree"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"
)

const (
	markerExpanded  = "▾ "
	markerCollapsed = "▸ "
	markerLeaf      = "  "
	indentWidth     = 2
)

func (m *Picker) View() string {
	var b strings.Builder
	if m.searchBarShown() {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.muted.Render(strings.Repeat("─", max(m.width, 1))))
		b.WriteString("\n")
	}

	rows := m.listRows()
	end := min(m.offset+rows, len(m.shown))
	lines := make([]string, 0, rows)
	for pos := m.offset; pos < end; pos++ {
		lines = append(lines, m.renderRow(pos))
	}
	if len(m.shown) == 0 {
		lines = append(lines, m.styles.muted.Render("No matches"))
	}
	if !m.cfg.Inline {
		for len(lines) < rows {
			lines = append(lines, "")
		}
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *Picker) renderRow(pos int) string {
	i := m.shown[pos]
	row := m.view.Rows[i]

	marker := markerLeaf
	if m.view.HasChildren(i) {
		marker = markerCollapsed
		if row.Expanded || (m.view.Searching() && m.view.HasVisibleChildren(i)) {
			marker = markerExpanded
		}
	}
	prefix := strings.Repeat(" ", row.Depth*indentWidth) + marker

	suffix := m.dropIndicator(pos)
	width := m.width - lipgloss.Width(prefix) - lipgloss.Width(suffix)
	text := m.labelText(row)
	raw := tree.LabelOf(row.Node)
	if raw == nil {
		raw = tree.PlainText(text)
	}
	if width > 0 && richtext.Width(raw, m.cfg.Search.ToText) > width {
		text = truncate.StringWithTail(text, uint(width), "…")
	}

	var label string
	switch {
	case m.drag != nil && tree.ShallowEqual(row.Source.Value(), m.drag.value):
		label = m.styles.drag.Render(text)
	case row.Match && m.view.Searching():
		label = m.highlight(text)
	default:
		label = m.styles.text.Render(text)
	}

	line := m.styles.muted.Render(prefix) + label + suffix
	if pos == m.cursor && m.drag == nil {
		return m.styles.selected.Render(prefix + text + suffix)
	}
	return line
}

// highlight marks the characters of text that fuzzy-match the keyword.
func (m *Picker) highlight(text string) string {
	keyword := strings.TrimSpace(m.keyword)
	matches := fuzzy.Find(keyword, []string{text})
	if len(matches) == 0 {
		return m.styles.text.Render(text)
	}
	marked := make(map[int]bool, len(matches[0].MatchedIndexes))
	for _, idx := range matches[0].MatchedIndexes {
		marked[idx] = true
	}
	var b strings.Builder
	for i, r := range text {
		if marked[i] {
			b.WriteString(m.styles.match.Render(string(r)))
		} else {
			b.WriteString(m.styles.text.Render(string(r)))
		}
	}
	return b.String()
}

// dropIndicator annotates the row under the virtual pointer with the zone a
// drop would land in.
func (m *Picker) dropIndicator(pos int) string {
	if m.drag == nil || pos != m.drag.target {
		return ""
	}
	_, zone, ok := m.dropTarget()
	if !ok {
		return ""
	}
	var hint string
	switch zone {
	case tree.DropAbove:
		hint = "  ↑ above"
	case tree.DropOn:
		hint = "  → into"
	case tree.DropBelow:
		hint = "  ↓ below"
	default:
		return ""
	}
	if !m.dropAllowed() {
		return m.styles.forbidden.Render(hint + " ✗")
	}
	return m.styles.dropZone.Render(hint)
}

func (m *Picker) footer() string {
	if m.status != "" {
		if m.statusErr {
			return m.styles.errStatus.Render(m.status)
		}
		return m.styles.status.Render(m.status)
	}
	if m.drag != nil {
		return m.help.ShortHelpView(m.keys.dragHelp())
	}
	return m.help.View(m.keys)
}
