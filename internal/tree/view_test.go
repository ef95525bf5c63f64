package tree

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func shownValues(v *View) []any {
	var out []any
	for _, r := range v.ShownRows() {
		out = append(out, r.Source.Value())
	}
	return out
}

func TestBuildViewCollapsedByDefault(t *testing.T) {
	v := BuildView(sampleTree(), ViewConfig{})
	assertValues(t, shownValues(v), []any{"root", "other"})
	if v.Searching() {
		t.Fatalf("expected not searching")
	}
}

func TestBuildViewExpandAll(t *testing.T) {
	v := BuildView(sampleTree(), ViewConfig{Expand: ExpandOptions{DefaultExpandAll: Bool(true)}})
	assertValues(t, shownValues(v), []any{"root", "a", "a1", "b", "other"})
}

func TestBuildViewControlledList(t *testing.T) {
	v := BuildView(sampleTree(), ViewConfig{Expand: ExpandOptions{ExpandItemValues: []any{"root"}}})
	assertValues(t, shownValues(v), []any{"root", "a", "b", "other"})

	// a expanded but root collapsed: a1 stays hidden.
	v = BuildView(sampleTree(), ViewConfig{Expand: ExpandOptions{ExpandItemValues: []any{"a"}}})
	assertValues(t, shownValues(v), []any{"root", "other"})
}

func TestBuildViewPerNodeOverride(t *testing.T) {
	roots := []Node{
		&Item{ID: "p", Text: PlainText("P"), Open: ExpandOpen, Items: []Node{Leaf("c", "C")}},
	}
	v := BuildView(roots, ViewConfig{})
	assertValues(t, shownValues(v), []any{"p", "c"})
}

func TestBuildViewSearchShowsAncestors(t *testing.T) {
	v := BuildView(sampleTree(), ViewConfig{Keyword: "one"})
	if !v.Searching() {
		t.Fatalf("expected searching")
	}
	assertValues(t, shownValues(v), []any{"root", "a", "a1"})

	a1 := v.Find("a1")
	if !v.Rows[a1].Match {
		t.Fatalf("expected a1 to match")
	}
	root := v.Find("root")
	if v.Rows[root].Match || !v.Rows[root].Visible {
		t.Fatalf("expected root visible through its descendant only")
	}
	if !v.HasVisibleChildren(root) {
		t.Fatalf("expected root to have visible children")
	}
	if v.HasVisibleChildren(v.Find("b")) {
		t.Fatalf("leaf has no visible children")
	}
}

func TestBuildViewWhitespaceKeywordIsNotSearching(t *testing.T) {
	v := BuildView(sampleTree(), ViewConfig{Keyword: "  "})
	assertValues(t, shownValues(v), []any{"root", "other"})
}

func TestBuildViewStructuredLabels(t *testing.T) {
	roots := []Node{&Item{ID: 1, Text: Structured{Value: "**Bold** text"}}}
	strip := func(s Structured) []string {
		return []string{strings.ReplaceAll(s.Value.(string), "*", "")}
	}
	v := BuildView(roots, ViewConfig{Keyword: "bold text", Search: Searcher{ToText: strip}})
	assertValues(t, shownValues(v), []any{1})
}

func TestViewToggle(t *testing.T) {
	v := BuildView(sampleTree(), ViewConfig{})
	next := v.Toggle("root")
	assertValues(t, next, []any{"root"})

	v = BuildView(sampleTree(), ViewConfig{Expand: ExpandOptions{ExpandItemValues: next}})
	assertValues(t, shownValues(v), []any{"root", "a", "b", "other"})

	next = v.Toggle("root")
	if next == nil || len(next) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", next)
	}
}

func TestViewToggleKeepsUnknownControlledValues(t *testing.T) {
	v := BuildView(sampleTree(), ViewConfig{Expand: ExpandOptions{ExpandItemValues: []any{"gone"}}})
	assertValues(t, v.Toggle("a"), []any{"gone", "a"})
}

func TestViewToggleSeedsFromResolvedState(t *testing.T) {
	v := BuildView(sampleTree(), ViewConfig{Expand: ExpandOptions{DefaultExpandAll: Bool(true)}})
	assertValues(t, v.Toggle("a"), []any{"root"})
}

func TestViewReveal(t *testing.T) {
	v := BuildView(sampleTree(), ViewConfig{})
	next := v.Reveal("a1")
	assertValues(t, next, []any{"root", "a"})

	v = BuildView(sampleTree(), ViewConfig{Expand: ExpandOptions{ExpandItemValues: next}})
	if !v.Rows[v.Find("a1")].Shown {
		t.Fatalf("expected a1 shown after reveal")
	}
	if got := v.Reveal("missing"); got == nil {
		t.Fatalf("expected non-nil list for unknown value")
	}
}

func TestViewHasChildren(t *testing.T) {
	v := BuildView(sampleTree(), ViewConfig{})
	if !v.HasChildren(0) || v.HasChildren(v.Find("b")) || v.HasChildren(-1) {
		t.Fatalf("unexpected HasChildren results")
	}
	if got := v.ShownIndexes(); len(got) != 2 {
		t.Fatalf("expected 2 shown indexes, got %v", got)
	}
}

func TestBuildViewReadsTransformedExpandState(t *testing.T) {
	open := func(n Node, _ int) Node {
		it, ok := n.(*Item)
		if !ok || it.ID != "root" {
			return nil
		}
		cp := it.Clone()
		cp.Open = ExpandOpen
		return cp
	}
	v := BuildView(sampleTree(), ViewConfig{Transform: open})
	root := v.Find("root")
	if !v.Rows[root].Expanded {
		t.Fatalf("expected the transformed override to expand root")
	}
	assertValues(t, shownValues(v), []any{"root", "a", "b", "other"})
	assertValues(t, v.ExpandedValues(), []any{"root"})
}

func TestBuildViewReadsTransformedIdentifiers(t *testing.T) {
	rename := func(n Node, _ int) Node {
		it, ok := n.(*Item)
		if !ok {
			return nil
		}
		cp := it.Clone()
		cp.ID = "x-" + it.ID.(string)
		return cp
	}
	v := BuildView(sampleTree(), ViewConfig{Transform: rename})
	assertValues(t, v.List.Values(), []any{"x-root", "x-a", "x-a1", "x-b", "x-other"})
	if got := v.Find("x-root"); got != 0 {
		t.Fatalf("expected x-root at 0, got %d", got)
	}
	if got := v.Find("root"); got != -1 {
		t.Fatalf("expected source identifier not to be found, got %d", got)
	}
	// Ancestry still follows the untransformed nodes.
	assertValues(t, v.List.AncestorValues(v.Find("x-a1")), []any{"root", "a"})
}

// genDupTree draws a small forest whose identifiers may repeat.
func genDupTree(t *rapid.T) []Node {
	var build func(depth int) []Node
	build = func(depth int) []Node {
		width := rapid.IntRange(0, 3).Draw(t, "width")
		if depth > 3 {
			width = 0
		}
		nodes := make([]Node, 0, width)
		for i := 0; i < width; i++ {
			id := rapid.IntRange(0, 6).Draw(t, "id")
			nodes = append(nodes, &Item{ID: id, Text: PlainText("n"), Items: build(depth + 1)})
		}
		return nodes
	}
	return build(0)
}

func TestBuildViewShownMatchesExpandedVisible(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roots := genDupTree(t)
		expanded := rapid.SliceOfN(rapid.IntRange(0, 6), 0, 7).Draw(t, "expanded")
		values := make([]any, len(expanded))
		for i, e := range expanded {
			values[i] = e
		}
		v := BuildView(roots, ViewConfig{Expand: ExpandOptions{ExpandItemValues: values}})
		for i, row := range v.Rows {
			want := ExpandedVisible(values, v.List.AncestorValues(i))
			if row.Shown != want {
				t.Fatalf("row %d (%v, ancestors %v): shown=%v, ExpandedVisible=%v",
					i, row.Source.Value(), v.List.AncestorValues(i), row.Shown, want)
			}
		}
	})
}

func TestBuildViewHidesUnderRepeatedAncestor(t *testing.T) {
	roots := []Node{Branch("d", "D", Branch("d", "D again", Leaf("x", "X")))}
	v := BuildView(roots, ViewConfig{Expand: ExpandOptions{ExpandItemValues: []any{"d"}}})
	assertValues(t, shownValues(v), []any{"d", "d"})
}
