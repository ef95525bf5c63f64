// Package ui renders a tree as an interactive Bubble Tea picker.
//
// The picker owns no tree logic of its own: every frame is derived from a
// tree.View, and expand, search and drop decisions come from the tree core.
package ui

import (
	"fmt"
	"strings"

	"treepick/internal/richtext"
	"treepick/internal/tree"
	"treepick/internal/ui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// rowUnits is the height of one terminal line in layout units. A line spans
// three drop tolerances so the virtual pointer can reach every zone.
const rowUnits = 3 * tree.DropTolerance

// Config controls a Picker.
type Config struct {
	Expand     tree.ExpandOptions
	Inline     bool
	Searchable bool
	// Height is the picker height in lines. Zero follows the terminal.
	Height int
	Search tree.Searcher
	// QuitOnSelect ends the program once a node is selected.
	QuitOnSelect bool
}

// Picker is the tea.Model for a tree picker.
type Picker struct {
	roots  []tree.Node
	cfg    Config
	keys   KeyMap
	styles styles
	help   help.Model
	input  textinput.Model

	searching bool
	keyword   string
	expand    tree.ExpandOptions
	view      *tree.View
	shown     []int

	cursor int
	offset int
	width  int
	height int

	drag *dragState

	status    string
	statusErr bool
	statusSeq int

	chosen   *SelectedMsg
	lastDrop *DropMsg
}

// New builds a picker over roots. A default expand list seeds the picker's
// own controlled state, so toggles start from it.
func New(roots []tree.Node, cfg Config) *Picker {
	if cfg.Search.ToText == nil {
		cfg.Search.ToText = richtext.Text
	}
	expand := cfg.Expand
	if !expand.Controlled() && expand.DefaultExpandItemValues != nil {
		expand.ExpandItemValues = append([]any{}, expand.DefaultExpandItemValues...)
	}

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/"

	m := &Picker{
		roots:  roots,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		styles: newStyles(theme.Current()),
		help:   help.New(),
		input:  ti,
		expand: expand,
		width:  80,
		height: 24,
	}
	m.rebuild()
	return m
}

func (m *Picker) Init() tea.Cmd {
	if m.searchBarShown() {
		return textinput.Blink
	}
	return nil
}

// Chosen returns the selection made before the program quit, if any.
func (m *Picker) Chosen() (SelectedMsg, bool) {
	if m.chosen == nil {
		return SelectedMsg{}, false
	}
	return *m.chosen, true
}

// LastDrop returns the most recent legal drop.
func (m *Picker) LastDrop() (DropMsg, bool) {
	if m.lastDrop == nil {
		return DropMsg{}, false
	}
	return *m.lastDrop, true
}

// ExpandedValues returns the expand list the picker is currently rendering.
func (m *Picker) ExpandedValues() []any {
	return m.view.ExpandedValues()
}

// TreeView returns the current tree view snapshot.
func (m *Picker) TreeView() *tree.View {
	return m.view
}

func (m *Picker) searchBarShown() bool {
	return m.cfg.Searchable && !m.cfg.Inline
}

// listRows converts the layout height of the list into terminal lines.
func (m *Picker) listRows() int {
	lines := m.cfg.Height
	if lines <= 0 {
		lines = m.height
	}
	rows := tree.ListHeight(m.cfg.Inline, m.cfg.Searchable, lines*rowUnits) / rowUnits
	if rows < 1 {
		rows = 1
	}
	return rows
}

// rebuild derives a new view and keeps the cursor on the same node when it
// is still shown.
func (m *Picker) rebuild() {
	current, hadCurrent := m.currentValue()
	m.view = tree.BuildView(m.roots, tree.ViewConfig{
		Expand:  m.expand,
		Keyword: m.keyword,
		Search:  m.cfg.Search,
	})
	m.shown = m.view.ShownIndexes()
	if hadCurrent {
		for pos, i := range m.shown {
			if tree.ShallowEqual(m.view.Rows[i].Source.Value(), current) {
				m.cursor = pos
				break
			}
		}
	}
	m.clampCursor()
}

func (m *Picker) clampCursor() {
	if m.cursor >= len(m.shown) {
		m.cursor = len(m.shown) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	rows := m.listRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if maxOffset := len(m.shown) - rows; m.offset > maxOffset {
		m.offset = max(maxOffset, 0)
	}
}

// currentRow returns the row under the cursor and its index in the view.
func (m *Picker) currentRow() (tree.Row, int, bool) {
	if m.view == nil || m.cursor < 0 || m.cursor >= len(m.shown) {
		return tree.Row{}, -1, false
	}
	i := m.shown[m.cursor]
	return m.view.Rows[i], i, true
}

func (m *Picker) currentValue() (any, bool) {
	row, _, ok := m.currentRow()
	if !ok {
		return nil, false
	}
	return row.Source.Value(), true
}

// labelText is the plain text of a row's label; rows without a label show
// their value.
func (m *Picker) labelText(row tree.Row) string {
	label := tree.LabelOf(row.Node)
	if label == nil {
		return fmt.Sprint(row.Source.Value())
	}
	return tree.PlainString(label, m.cfg.Search.ToText)
}

// path returns the ancestor values of row i, root first, followed by its own.
func (m *Picker) path(i int) []any {
	return append(m.view.List.AncestorValues(i), m.view.Rows[i].Source.Value())
}

func (m *Picker) pathLabel(i int) string {
	var parts []string
	for _, anc := range m.view.List.Ancestors(i) {
		parts = append(parts, m.labelText(m.view.Rows[anc]))
	}
	parts = append(parts, m.labelText(m.view.Rows[i]))
	return strings.Join(parts, " / ")
}

func (m *Picker) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return scheduleStatusClear(m.statusSeq)
}
