package tree

import "strings"

// ViewConfig is everything a View is derived from besides the tree itself.
type ViewConfig struct {
	Expand    ExpandOptions
	Keyword   string
	Search    Searcher
	Transform Transform
}

// Row is a flattened entry plus the render decisions for it.
type Row struct {
	FlatNode
	// Expanded is the resolved expand state of the node.
	Expanded bool
	// Match is true when the label matches the keyword.
	Match bool
	// Visible is true when the node or one of its descendants matches.
	Visible bool
	// Shown is true when the row belongs in the rendered list.
	Shown bool
}

// View is a read-only snapshot of a tree under one configuration. Rebuild it
// whenever the tree, the expand options or the keyword change.
type View struct {
	Rows    []Row
	List    List
	cfg     ViewConfig
	kids    [][]int
	visible []int
}

// BuildView flattens roots and resolves expand state and both visibility
// predicates for every node.
func BuildView(roots []Node, cfg ViewConfig) *View {
	list := Flatten(roots, cfg.Transform)
	v := &View{
		Rows: make([]Row, len(list)),
		List: list,
		cfg:  cfg,
		kids: make([][]int, len(list)),
	}
	for i, fn := range list {
		match := cfg.Search.Visible(LabelOf(fn.Node), cfg.Keyword)
		v.Rows[i] = Row{
			FlatNode: fn,
			Expanded: cfg.Expand.IsExpanded(fn.Node),
			Match:    match,
			Visible:  match,
		}
		if fn.Parent != NoParent {
			v.kids[fn.Parent] = append(v.kids[fn.Parent], i)
		}
	}
	// Children follow their parent, so one backwards pass settles every
	// ancestor of a match.
	for i := len(v.Rows) - 1; i >= 0; i-- {
		if p := v.Rows[i].Parent; v.Rows[i].Visible && p != NoParent {
			v.Rows[p].Visible = true
		}
	}

	searching := strings.TrimSpace(cfg.Keyword) != ""
	if searching {
		for i := range v.Rows {
			v.Rows[i].Shown = v.Rows[i].Visible
		}
	} else {
		v.markExpandedShown()
	}
	for i := range v.Rows {
		if v.Rows[i].Shown {
			v.visible = append(v.visible, i)
		}
	}
	return v
}

// markExpandedShown settles Shown for every row in one forward pass: a row is
// shown when its parent is shown and the parent's identifier is in the
// expanded list. Ancestry is tracked through the untransformed nodes, and a
// parent whose identifier repeats one of its own ancestors' hides its
// children, matching ExpandedVisible.
func (v *View) markExpandedShown() {
	expanded := v.ExpandedValues()
	// opens[p] caches whether row p lets its children through.
	opens := make([]int8, len(v.Rows))
	for i := range v.Rows {
		p := v.Rows[i].Parent
		if p == NoParent || p < 0 || p >= i {
			v.Rows[i].Shown = true
			continue
		}
		if !v.Rows[p].Shown {
			continue
		}
		if opens[p] == 0 {
			opens[p] = -1
			if ContainsValue(expanded, v.List[p].Source.Value()) && !v.repeatsAncestor(p) {
				opens[p] = 1
			}
		}
		v.Rows[i].Shown = opens[p] == 1
	}
}

// repeatsAncestor reports whether row p's identifier equals that of one of
// its ancestors.
func (v *View) repeatsAncestor(p int) bool {
	value := v.List[p].Source.Value()
	return ContainsValue(v.List.AncestorValues(p), value)
}

// Searching reports whether the view was built with a non-blank keyword.
func (v *View) Searching() bool {
	return strings.TrimSpace(v.cfg.Keyword) != ""
}

// ShownRows returns the rows to render, in order.
func (v *View) ShownRows() []Row {
	out := make([]Row, len(v.visible))
	for k, i := range v.visible {
		out[k] = v.Rows[i]
	}
	return out
}

// ShownIndexes returns the Rows indexes of the rows to render.
func (v *View) ShownIndexes() []int {
	return append([]int(nil), v.visible...)
}

// Find returns the index of the row whose identifier equals value, or -1.
func (v *View) Find(value any) int {
	return v.List.IndexOf(value)
}

// HasVisibleChildren reports whether any direct child of row i is visible.
func (v *View) HasVisibleChildren(i int) bool {
	if i < 0 || i >= len(v.kids) {
		return false
	}
	for _, c := range v.kids[i] {
		if v.Rows[c].Visible {
			return true
		}
	}
	return false
}

// HasChildren reports whether row i has any children at all.
func (v *View) HasChildren(i int) bool {
	return i >= 0 && i < len(v.kids) && len(v.kids[i]) > 0
}

// ExpandedValues returns the identifiers of every expanded row. Under a
// controlled list this is the list itself, so entries for nodes that are not
// in the tree survive a toggle.
func (v *View) ExpandedValues() []any {
	if v.cfg.Expand.Controlled() {
		return v.cfg.Expand.ExpandItemValues
	}
	var out []any
	for _, r := range v.Rows {
		if r.Expanded {
			out = append(out, r.Node.Value())
		}
	}
	return out
}

// Toggle returns the controlled expand list that results from flipping value.
// The view itself is left untouched.
func (v *View) Toggle(value any) []any {
	current := v.ExpandedValues()
	next := make([]any, 0, len(current)+1)
	found := false
	for _, existing := range current {
		if ShallowEqual(existing, value) {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, value)
	}
	return next
}

// Reveal returns the controlled expand list with every ancestor of value
// expanded, so that its row becomes shown once the view is rebuilt.
func (v *View) Reveal(value any) []any {
	next := append([]any{}, v.ExpandedValues()...)
	i := v.Find(value)
	if i < 0 {
		return next
	}
	for _, anc := range v.List.AncestorValues(i) {
		if !ContainsValue(next, anc) {
			next = append(next, anc)
		}
	}
	return next
}
