package ui

import (
	"fmt"

	"treepick/internal/debug"
	"treepick/internal/tree"
	"treepick/internal/ui/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (m *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 1)
		m.clampCursor()
		return m, nil
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case SelectedMsg:
		m.chosen = &msg
		debug.Logf("selected %v", msg.Value)
		if m.cfg.QuitOnSelect {
			return m, tea.Quit
		}
		return m, m.setStatus(fmt.Sprintf("Selected %v", msg.Value), false)
	case DropMsg:
		m.lastDrop = &msg
		debug.Logf("drop %v %s %v", msg.Drag, msg.Zone, msg.Target)
		return m, m.setStatus(fmt.Sprintf("Move %v %s %v", msg.Drag, msg.Zone, msg.Target), false)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleKeyMsg routes a key to the active mode.
func (m *Picker) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.drag != nil {
		return m.handleDragKey(msg)
	}
	return m.handleGlobalKey(msg)
}

// handleSearchKey processes keys while the search input has focus.
func (m *Picker) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select), msg.Type == tea.KeyDown, msg.Type == tea.KeyUp:
		m.searching = false
		m.input.Blur()
		if msg.Type == tea.KeyDown || msg.Type == tea.KeyUp {
			return m.handleGlobalKey(msg)
		}
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.clearSearch()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.setKeyword(m.input.Value())
		return m, cmd
	}
}

func (m *Picker) setKeyword(keyword string) {
	if keyword == m.keyword {
		return
	}
	m.keyword = keyword
	m.cursor = 0
	m.offset = 0
	m.rebuild()
}

// clearSearch drops the keyword and expands the ancestors of the node under
// the cursor so it stays in view.
func (m *Picker) clearSearch() {
	m.searching = false
	m.input.Blur()
	m.input.SetValue("")
	if value, ok := m.currentValue(); ok && m.keyword != "" {
		m.expand.ExpandItemValues = m.view.Reveal(value)
	}
	m.keyword = ""
	m.rebuild()
}

// handleGlobalKey processes keys in normal navigation mode.
func (m *Picker) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		if m.searchBarShown() {
			m.searching = true
			m.input.SetValue(m.keyword)
			m.input.CursorEnd()
			return m, m.input.Focus()
		}
	case key.Matches(msg, m.keys.Escape):
		if m.keyword != "" {
			m.clearSearch()
		}
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.clampCursor()
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.shown) - 1
		m.clampCursor()
	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= m.listRows()
		m.clampCursor()
	case key.Matches(msg, m.keys.PageDown):
		m.cursor += m.listRows()
		m.clampCursor()
	case key.Matches(msg, m.keys.Right):
		m.setExpanded(true)
	case key.Matches(msg, m.keys.Left):
		m.collapseOrParent()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCurrent()
	case key.Matches(msg, m.keys.Select):
		return m, m.selectCurrent()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyPath()
	case key.Matches(msg, m.keys.Move):
		return m, m.startDrag()
	case key.Matches(msg, m.keys.Theme):
		name := theme.CycleTheme()
		m.styles = newStyles(theme.Current())
		return m, m.setStatus("Theme: "+name, false)
	}
	return m, nil
}

func (m *Picker) toggleCurrent() {
	row, _, ok := m.currentRow()
	if !ok {
		return
	}
	m.expand.ExpandItemValues = m.view.Toggle(row.Source.Value())
	m.rebuild()
}

func (m *Picker) setExpanded(open bool) {
	row, i, ok := m.currentRow()
	if !ok || row.Expanded == open {
		return
	}
	if open && !m.view.HasChildren(i) {
		return
	}
	m.toggleCurrent()
}

// collapseOrParent collapses an expanded node, or moves to its parent.
func (m *Picker) collapseOrParent() {
	row, i, ok := m.currentRow()
	if !ok {
		return
	}
	if row.Expanded && m.view.HasChildren(i) {
		m.toggleCurrent()
		return
	}
	if row.Parent == tree.NoParent {
		return
	}
	for pos, i := range m.shown {
		if i == row.Parent {
			m.cursor = pos
			m.clampCursor()
			return
		}
	}
}

func (m *Picker) selectCurrent() tea.Cmd {
	row, i, ok := m.currentRow()
	if !ok {
		return nil
	}
	msg := SelectedMsg{Value: row.Source.Value(), Path: m.path(i)}
	return func() tea.Msg { return msg }
}

func (m *Picker) copyPath() tea.Cmd {
	_, i, ok := m.currentRow()
	if !ok {
		return nil
	}
	text := m.pathLabel(i)
	if err := writeClipboard(text); err != nil {
		return m.setStatus("Copy failed: "+err.Error(), true)
	}
	return m.setStatus(fmt.Sprintf("Copied '%s' to clipboard.", text), false)
}

// handleMouse selects the clicked row and scrolls with the wheel.
func (m *Picker) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cursor--
		m.clampCursor()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.cursor++
		m.clampCursor()
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}
	line := msg.Y - m.listTop()
	if line < 0 || line >= m.listRows() {
		return m, nil
	}
	pos := m.offset + line
	if pos >= len(m.shown) {
		return m, nil
	}
	if m.drag != nil {
		m.drag.target = pos
		m.drag.offset = tree.DropTolerance
		return m, nil
	}
	m.cursor = pos
	m.clampCursor()
	return m, m.selectCurrent()
}

// listTop is the first terminal line of the node list.
func (m *Picker) listTop() int {
	if m.searchBarShown() {
		return tree.SearchBarHeight / rowUnits
	}
	return 0
}
