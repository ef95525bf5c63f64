// Package richtext converts structured labels into searchable plain text.
package richtext

import (
	"fmt"
	"strings"
	"sync"

	"treepick/internal/tree"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

// ANSI is a label pre-styled with terminal escape sequences.
type ANSI string

// Markdown is a label written in Markdown.
type Markdown string

// Text flattens a structured label into plain-text fragments. It is a
// tree.TextFunc.
func Text(s tree.Structured) []string {
	return fragments(s.Value)
}

var _ tree.TextFunc = Text

func fragments(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return []string{x}
	case tree.PlainText:
		return []string{string(x)}
	case ANSI:
		return []string{ansi.Strip(string(x))}
	case Markdown:
		return []string{markdownText(string(x))}
	case tree.Structured:
		return fragments(x.Value)
	case []tree.Label:
		var out []string
		for _, l := range x {
			out = append(out, fragments(l)...)
		}
		return out
	case []any:
		var out []string
		for _, item := range x {
			out = append(out, fragments(item)...)
		}
		return out
	case []string:
		return append([]string(nil), x...)
	case fmt.Stringer:
		return []string{x.String()}
	}
	return nil
}

var (
	rendererOnce sync.Once
	rendererMu   sync.Mutex
	renderer     *glamour.TermRenderer
)

func markdownRenderer() *glamour.TermRenderer {
	rendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("notty"),
			glamour.WithWordWrap(0),
		)
		if err == nil {
			renderer = r
		}
	})
	return renderer
}

// markdownText renders src without styling and collapses whitespace, so a
// label reads the same however it was wrapped. Rendering failures fall back
// to the source text.
func markdownText(src string) string {
	out := src
	if r := markdownRenderer(); r != nil {
		rendererMu.Lock()
		rendered, err := r.Render(src)
		rendererMu.Unlock()
		if err == nil {
			out = ansi.Strip(rendered)
		}
	}
	return strings.Join(strings.Fields(out), " ")
}

// Width returns the printable width of a label's text. A nil toText flattens
// structured labels with Text.
func Width(l tree.Label, toText tree.TextFunc) int {
	if toText == nil {
		toText = Text
	}
	return ansi.StringWidth(tree.PlainString(l, toText))
}
