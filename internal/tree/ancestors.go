package tree

import "slices"

// Ancestors returns the indexes of entry i's ancestors, root first and the
// immediate parent last. Roots and out-of-range indexes yield an empty chain.
// A parent link that does not point strictly backwards ends the walk.
func (l List) Ancestors(i int) []int {
	if i < 0 || i >= len(l) {
		return nil
	}
	var chain []int
	cur := i
	for p := l[cur].Parent; p != NoParent; p = l[cur].Parent {
		if p < 0 || p >= cur {
			break
		}
		chain = append(chain, p)
		cur = p
	}
	slices.Reverse(chain)
	return chain
}

// AncestorNodes returns the untransformed ancestor nodes of entry i, root
// first.
func (l List) AncestorNodes(i int) []Node {
	chain := l.Ancestors(i)
	out := make([]Node, len(chain))
	for k, p := range chain {
		out[k] = l[p].Source
	}
	return out
}

// AncestorValues returns the identifiers of entry i's ancestors, root first.
func (l List) AncestorValues(i int) []any {
	chain := l.Ancestors(i)
	out := make([]any, len(chain))
	for k, p := range chain {
		out[k] = l[p].Source.Value()
	}
	return out
}
