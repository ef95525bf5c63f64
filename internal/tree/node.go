// Package tree holds the picker's tree-manipulation core: flattening a nested
// tree into an indexable arena, ancestor resolution, visibility predicates,
// expand-state precedence, drag key collection and drop-zone classification.
//
// Every operation is a pure function over its inputs. Nothing here mutates the
// source tree; derived views are recomputed whenever the tree, the expand
// options or the search keyword change.
package tree

// Node is the capability every tree record must provide. The identifier and
// the ordered children are resolved by the implementation, not looked up by
// field name.
type Node interface {
	Value() any
	Children() []Node
}

// Labeled is implemented by nodes that carry a display label.
type Labeled interface {
	Label() Label
}

// Expandable is implemented by nodes that carry a per-node expand override.
type Expandable interface {
	Expand() Expand
}

// Expand is a tri-state per-node expand override.
type Expand int8

const (
	ExpandUnset Expand = iota
	ExpandOpen
	ExpandClosed
)

// ExpandFrom converts an optional boolean into an override.
func ExpandFrom(v *bool) Expand {
	switch {
	case v == nil:
		return ExpandUnset
	case *v:
		return ExpandOpen
	default:
		return ExpandClosed
	}
}

func (e Expand) String() string {
	switch e {
	case ExpandOpen:
		return "open"
	case ExpandClosed:
		return "closed"
	default:
		return "unset"
	}
}

// Item is the general-purpose Node used by the loaders and tests.
type Item struct {
	ID     any
	Text   Label
	Open   Expand
	Items  []Node
	Fields map[string]any
}

func (it *Item) Value() any       { return it.ID }
func (it *Item) Children() []Node { return it.Items }
func (it *Item) Label() Label     { return it.Text }
func (it *Item) Expand() Expand   { return it.Open }

// Clone returns a shallow copy: children and fields are shared.
func (it *Item) Clone() *Item {
	cp := *it
	return &cp
}

// Leaf returns an Item with a plain-text label and no children.
func Leaf(id any, label string) *Item {
	return &Item{ID: id, Text: PlainText(label)}
}

// Branch returns an Item with a plain-text label and the given children.
func Branch(id any, label string, children ...Node) *Item {
	return &Item{ID: id, Text: PlainText(label), Items: children}
}

// LabelOf returns the node's label, or nil when it has none.
func LabelOf(n Node) Label {
	if l, ok := n.(Labeled); ok {
		return l.Label()
	}
	return nil
}

// ExpandOf returns the node's expand override, or ExpandUnset.
func ExpandOf(n Node) Expand {
	if e, ok := n.(Expandable); ok {
		return e.Expand()
	}
	return ExpandUnset
}
