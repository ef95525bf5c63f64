package tree

import "testing"

// sampleTree builds:
//
//	root
//	├── a
//	│   └── a1
//	└── b
//	other
func sampleTree() []Node {
	return []Node{
		Branch("root", "Root",
			Branch("a", "Alpha", Leaf("a1", "Alpha One")),
			Leaf("b", "Beta"),
		),
		Leaf("other", "Other"),
	}
}

func valuesOf(t *testing.T, l List) []any {
	t.Helper()
	return l.Values()
}

func assertValues(t *testing.T, got, want []any) {
	t.Helper()
	if !ShallowEqualSlice(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
