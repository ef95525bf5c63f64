package tree

// NoParent marks a root entry in a List.
const NoParent = -1

// FlatNode is one entry of a flattened tree. Parent is the index of the parent
// entry in the same List, or NoParent for roots.
type FlatNode struct {
	// Node is the node as returned by the transform.
	Node Node
	// Source is the untransformed node; ancestry is read from it.
	Source Node
	Parent int
	// Index is the position among siblings.
	Index int
	Depth int
}

// List is a flattened tree in pre-order. A parent always precedes its
// children.
type List []FlatNode

// Transform rewrites a node before it is stored. It receives the raw node and
// its index within its sibling list; children are still walked from the raw
// node.
type Transform func(n Node, index int) Node

// Flatten walks roots in pre-order and returns one entry per node. Nil nodes
// are skipped.
func Flatten(roots []Node, transform Transform) List {
	var out List
	var walk func(nodes []Node, parent, depth int)
	walk = func(nodes []Node, parent, depth int) {
		for i, raw := range nodes {
			if raw == nil {
				continue
			}
			node := raw
			if transform != nil {
				if t := transform(raw, i); t != nil {
					node = t
				}
			}
			idx := len(out)
			out = append(out, FlatNode{
				Node:   node,
				Source: raw,
				Parent: parent,
				Index:  i,
				Depth:  depth,
			})
			walk(raw.Children(), idx, depth+1)
		}
	}
	walk(roots, NoParent, 0)
	return out
}

// Values returns the identifier of every entry, in order. Identifiers are
// read from the transformed node.
func (l List) Values() []any {
	out := make([]any, len(l))
	for i, fn := range l {
		out[i] = fn.Node.Value()
	}
	return out
}

// IndexOf returns the index of the first entry whose identifier equals value,
// or -1.
func (l List) IndexOf(value any) int {
	for i, fn := range l {
		if ShallowEqual(fn.Node.Value(), value) {
			return i
		}
	}
	return -1
}

// Children returns the indexes of the direct children of entry i.
func (l List) Children(i int) []int {
	if i < 0 || i >= len(l) {
		return nil
	}
	var out []int
	for j := i + 1; j < len(l) && l[j].Depth > l[i].Depth; j++ {
		if l[j].Parent == i {
			out = append(out, j)
		}
	}
	return out
}
