package tree

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExpandedVisible reports whether a node whose ancestor identifiers are
// ancestors is reachable through expanded nodes only. Root-level nodes
// (no ancestors) are always visible.
func ExpandedVisible(expanded, ancestors []any) bool {
	return len(intersect(expanded, ancestors)) == len(ancestors)
}

// intersect returns the distinct members of a that also occur in b, in the
// order of a.
func intersect(a, b []any) []any {
	var out []any
	for _, v := range a {
		if ContainsValue(out, v) || !ContainsValue(b, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Searcher matches labels against a keyword. The zero value lowercases with
// language-neutral rules and cannot see structured labels.
type Searcher struct {
	Locale language.Tag
	ToText TextFunc
}

// Visible reports whether label matches keyword. A blank keyword matches
// everything; otherwise the lowercased keyword must be a substring of the
// lowercased label text.
func (s Searcher) Visible(label Label, keyword string) bool {
	if strings.TrimSpace(keyword) == "" {
		return true
	}
	lower := cases.Lower(s.Locale)
	kw := lower.String(keyword)
	switch l := label.(type) {
	case PlainText:
		return strings.Contains(lower.String(string(l)), kw)
	case Structured:
		if s.ToText == nil {
			return false
		}
		return strings.Contains(lower.String(strings.Join(s.ToText(l), "")), kw)
	}
	return false
}

// SearchVisible is Searcher.Visible with language-neutral lowercasing.
func SearchVisible(label Label, keyword string, toText TextFunc) bool {
	return Searcher{ToText: toText}.Visible(label, keyword)
}
