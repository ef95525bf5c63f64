package tree

// ExpandOptions is the expand-related configuration record. A nil
// ExpandItemValues means the list is not controlled; a non-nil empty slice is
// a controlled list with nothing expanded.
type ExpandOptions struct {
	ExpandItemValues        []any
	DefaultExpandItemValues []any
	ExpandAll               *bool
	DefaultExpandAll        *bool
}

// ExpandAllValue resolves the global expand flag: ExpandAll, then
// DefaultExpandAll, then false.
func (o ExpandOptions) ExpandAllValue() bool {
	if o.ExpandAll != nil {
		return *o.ExpandAll
	}
	if o.DefaultExpandAll != nil {
		return *o.DefaultExpandAll
	}
	return false
}

// ExpandedValues returns the controlled list if present, else the default
// list, else nil. Widgets seed their own expand state from it.
func (o ExpandOptions) ExpandedValues() []any {
	if o.ExpandItemValues != nil {
		return o.ExpandItemValues
	}
	return o.DefaultExpandItemValues
}

// Controlled reports whether an explicit expand list is set.
func (o ExpandOptions) Controlled() bool {
	return o.ExpandItemValues != nil
}

// IsExpanded decides whether n renders expanded. First match wins:
//  1. a controlled list decides alone, leaves included;
//  2. leaves are collapsed;
//  3. a per-node override;
//  4. the global expand flag.
func (o ExpandOptions) IsExpanded(n Node) bool {
	if o.ExpandItemValues != nil {
		return ContainsValue(o.ExpandItemValues, n.Value())
	}
	if len(n.Children()) == 0 {
		return false
	}
	if e := ExpandOf(n); e != ExpandUnset {
		return e == ExpandOpen
	}
	return o.ExpandAllValue()
}

// Bool returns a pointer to v, for filling the optional flags.
func Bool(v bool) *bool {
	return &v
}
