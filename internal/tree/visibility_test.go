package tree

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestExpandedVisible(t *testing.T) {
	tests := []struct {
		name      string
		expanded  []any
		ancestors []any
		want      bool
	}{
		{"full chain expanded", []any{"A", "B"}, []any{"A", "B"}, true},
		{"missing ancestor", []any{"A", "B"}, []any{"A", "C"}, false},
		{"root level", []any{"A", "B"}, []any{}, true},
		{"root level with nothing expanded", nil, nil, true},
		{"extra expanded keys", []any{"X", "A", "Y", "B"}, []any{"A", "B"}, true},
		{"nothing expanded", nil, []any{"A"}, false},
		{"duplicate expanded keys count once", []any{"A", "A"}, []any{"A", "B"}, false},
		{"numeric identifiers", []any{1, 2}, []any{1, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandedVisible(tt.expanded, tt.ancestors); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSearchVisible(t *testing.T) {
	upper := func(s Structured) []string {
		parts, _ := s.Value.([]string)
		return parts
	}
	tests := []struct {
		name    string
		label   Label
		keyword string
		toText  TextFunc
		want    bool
	}{
		{"empty keyword", PlainText("anything"), "", nil, true},
		{"whitespace keyword", nil, "   ", nil, true},
		{"case-insensitive match", PlainText("Abc"), "ab", nil, true},
		{"uppercase keyword", PlainText("abc"), "AB", nil, true},
		{"no match", PlainText("xyz"), "ab", nil, false},
		{"structured match across fragments", Structured{Value: []string{"Hel", "lo"}}, "ell", upper, true},
		{"structured no match", Structured{Value: []string{"Hello"}}, "xyz", upper, false},
		{"structured without converter", Structured{Value: []string{"Hello"}}, "ell", nil, false},
		{"nil label", nil, "ab", nil, false},
		{"keyword keeps inner spaces", PlainText("Alpha One"), "a o", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SearchVisible(tt.label, tt.keyword, tt.toText); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSearcherLocale(t *testing.T) {
	s := Searcher{Locale: language.Turkish}
	// Turkish lowercases dotted capital I to a plain i.
	if !s.Visible(PlainText("İstanbul"), "ist") {
		t.Fatalf("expected locale-aware lowercase to match")
	}
	if !s.Visible(PlainText("straße"), strings.ToUpper("STRA")) {
		t.Fatalf("expected match for mixed-case keyword")
	}
}

func TestPlainString(t *testing.T) {
	conv := func(s Structured) []string { return []string{"a", "b"} }
	if got := PlainString(PlainText("x"), nil); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}
	if got := PlainString(Structured{}, conv); got != "ab" {
		t.Fatalf("expected ab, got %q", got)
	}
	if got := PlainString(Structured{}, nil); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := PlainString(nil, conv); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
