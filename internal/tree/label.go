package tree

import "strings"

// Label is either PlainText or Structured. Any other value, including nil,
// never matches a search.
type Label interface {
	isLabel()
}

// PlainText is a label searched directly.
type PlainText string

func (PlainText) isLabel() {}

// Structured is a rich-text label. It is searched through a TextFunc that
// flattens it into plain-text fragments.
type Structured struct {
	Value any
}

func (Structured) isLabel() {}

// TextFunc converts a structured label into searchable fragments. It must be
// deterministic and total.
type TextFunc func(Structured) []string

// PlainString returns the label's text as a single string.
func PlainString(l Label, toText TextFunc) string {
	switch v := l.(type) {
	case PlainText:
		return string(v)
	case Structured:
		if toText == nil {
			return ""
		}
		return strings.Join(toText(v), "")
	}
	return ""
}
