package tree

const (
	// SearchBarHeight is reserved for the search input in popup mode.
	SearchBarHeight = 48
	// MenuPadding is applied above and below the list.
	MenuPadding = 12
)

// ListHeight returns the height left for the scrollable node list. Inline
// pickers never reserve room for a search bar.
func ListHeight(inline, searchable bool, height int) int {
	if inline {
		return height - MenuPadding*2
	}
	if searchable {
		height -= SearchBarHeight
	}
	return height - MenuPadding*2
}
