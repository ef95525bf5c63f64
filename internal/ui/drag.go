package ui

import (
	"fmt"

	appErrors "treepick/internal/errors"
	"treepick/internal/tree"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dragState is a keyboard-driven stand-in for a pointer drag. The pointer
// sits offset units below the top of the target row; every row is rowUnits
// tall in the same coordinate space.
type dragState struct {
	value  any
	keys   []any
	label  string
	target int // position in the shown rows
	offset float64
}

var _ tree.PointerSource = (*dragState)(nil)

func (d *dragState) PointerY() float64 {
	return float64(d.target*rowUnits) + d.offset
}

func (d *dragState) Bounds() tree.Rect {
	top := float64(d.target * rowUnits)
	return tree.Rect{Top: top, Bottom: top + rowUnits}
}

// nudge moves the pointer by one tolerance step, crossing into the
// neighbouring row at either edge.
func (d *dragState) nudge(dir, rows int) {
	d.offset += float64(dir * tree.DropTolerance)
	switch {
	case d.offset >= rowUnits && d.target < rows-1:
		d.target++
		d.offset = 0
	case d.offset >= rowUnits:
		d.offset = rowUnits - tree.DropTolerance
	case d.offset < 0 && d.target > 0:
		d.target--
		d.offset = rowUnits - tree.DropTolerance
	case d.offset < 0:
		d.offset = 0
	}
}

func (m *Picker) startDrag() tea.Cmd {
	row, _, ok := m.currentRow()
	if !ok {
		return nil
	}
	m.drag = &dragState{
		value:  row.Source.Value(),
		keys:   tree.DragKeys(row.Source),
		label:  m.labelText(row),
		target: m.cursor,
		offset: tree.DropTolerance,
	}
	return m.setStatus(fmt.Sprintf("Moving '%s'", m.drag.label), false)
}

// dropTarget returns the row under the virtual pointer and where the drop
// would land.
func (m *Picker) dropTarget() (tree.Row, tree.DropZone, bool) {
	if m.drag == nil || m.drag.target < 0 || m.drag.target >= len(m.shown) {
		return tree.Row{}, tree.DropNone, false
	}
	return m.view.Rows[m.shown[m.drag.target]], tree.ClassifyPointer(m.drag), true
}

func (m *Picker) dropAllowed() bool {
	row, _, ok := m.dropTarget()
	return ok && tree.DropAllowed(m.drag.keys, row.Source.Value())
}

// handleDragKey processes keys while a node is being moved.
func (m *Picker) handleDragKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NudgeUp):
		m.drag.nudge(-1, len(m.shown))
	case key.Matches(msg, m.keys.NudgeDown):
		m.drag.nudge(1, len(m.shown))
	case key.Matches(msg, m.keys.Up):
		if m.drag.target > 0 {
			m.drag.target--
		}
		m.drag.offset = tree.DropTolerance
	case key.Matches(msg, m.keys.Down):
		if m.drag.target < len(m.shown)-1 {
			m.drag.target++
		}
		m.drag.offset = tree.DropTolerance
	case key.Matches(msg, m.keys.Select):
		return m, m.drop()
	case key.Matches(msg, m.keys.Escape):
		m.drag = nil
		return m, m.setStatus("Move cancelled", false)
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	m.cursor = m.drag.target
	m.clampCursor()
	return m, nil
}

// drop validates the target and emits a DropMsg. A node cannot be dropped
// onto itself or any of its descendants.
func (m *Picker) drop() tea.Cmd {
	row, zone, ok := m.dropTarget()
	if !ok {
		return nil
	}
	target := row.Source.Value()
	if !tree.DropAllowed(m.drag.keys, target) {
		err := appErrors.Newf(appErrors.CodeInvalidDrop, "cannot move '%s' into its own subtree", m.drag.label)
		return m.setStatus(err.Error(), true)
	}
	msg := DropMsg{Drag: m.drag.value, Target: target, Zone: zone}
	m.drag = nil
	return func() tea.Msg { return msg }
}
