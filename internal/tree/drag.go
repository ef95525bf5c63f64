package tree

// DragKeys returns the dragged node's identifier followed by the identifiers
// of all its descendants in pre-order. None of them is a legal drop target.
func DragKeys(n Node) []any {
	if n == nil {
		return nil
	}
	keys := []any{n.Value()}
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, child := range nodes {
			if child == nil {
				continue
			}
			keys = append(keys, child.Value())
			walk(child.Children())
		}
	}
	walk(n.Children())
	return keys
}

// DropAllowed reports whether target may receive the drag described by
// dragKeys.
func DropAllowed(dragKeys []any, target any) bool {
	return !ContainsValue(dragKeys, target)
}
