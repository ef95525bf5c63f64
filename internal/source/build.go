// Package source loads picker trees from JSON, YAML and SQLite.
//
// Field names are resolved once through Keys; malformed input degrades rather
// than fails: a children field that is not a list means no children, and list
// elements that are not records are skipped.
package source

import (
	"strings"

	"treepick/internal/richtext"
	"treepick/internal/tree"
)

// Keys names the record fields that carry each part of a node.
type Keys struct {
	Value    string
	Children string
	Label    string
	Expand   string
}

// DefaultKeys returns the field names used when nothing is configured.
func DefaultKeys() Keys {
	return Keys{
		Value:    "value",
		Children: "children",
		Label:    "label",
		Expand:   "expand",
	}
}

// withDefaults fills blank names from DefaultKeys.
func (k Keys) withDefaults() Keys {
	d := DefaultKeys()
	if strings.TrimSpace(k.Value) == "" {
		k.Value = d.Value
	}
	if strings.TrimSpace(k.Children) == "" {
		k.Children = d.Children
	}
	if strings.TrimSpace(k.Label) == "" {
		k.Label = d.Label
	}
	if strings.TrimSpace(k.Expand) == "" {
		k.Expand = d.Expand
	}
	return k
}

// Build converts decoded data into tree nodes. A list is a list of roots; a
// record holding only a children list is a wrapper whose children are the
// roots; any other record is a single root.
func Build(data any, keys Keys) []tree.Node {
	keys = keys.withDefaults()
	if m, ok := data.(map[string]any); ok {
		_, hasValue := m[keys.Value]
		if kids, isList := m[keys.Children].([]any); isList && !hasValue {
			return buildList(kids, keys)
		}
		return buildList([]any{m}, keys)
	}
	return buildList(data, keys)
}

func buildList(data any, keys Keys) []tree.Node {
	items, ok := data.([]any)
	if !ok {
		return nil
	}
	nodes := make([]tree.Node, 0, len(items))
	for _, raw := range items {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		nodes = append(nodes, buildItem(m, keys))
	}
	return nodes
}

func buildItem(m map[string]any, keys Keys) *tree.Item {
	fields := make(map[string]any, len(m))
	for k, v := range m {
		if k == keys.Children {
			continue
		}
		fields[k] = v
	}
	item := &tree.Item{
		ID:     tree.NormalizeValue(m[keys.Value]),
		Text:   labelFrom(m[keys.Label]),
		Open:   expandFrom(m[keys.Expand]),
		Fields: fields,
	}
	if kids := buildList(m[keys.Children], keys); len(kids) > 0 {
		item.Items = kids
	}
	return item
}

// labelFrom maps a raw label to a tree label. Strings are plain text;
// records with a markdown, ansi or segments field are structured.
func labelFrom(v any) tree.Label {
	switch x := v.(type) {
	case string:
		return tree.PlainText(x)
	case map[string]any:
		if md, ok := x["markdown"].(string); ok {
			return tree.Structured{Value: richtext.Markdown(md)}
		}
		if s, ok := x["ansi"].(string); ok {
			return tree.Structured{Value: richtext.ANSI(s)}
		}
		if segs, ok := x["segments"].([]any); ok {
			labels := make([]tree.Label, 0, len(segs))
			for _, seg := range segs {
				if l := labelFrom(seg); l != nil {
					labels = append(labels, l)
				}
			}
			return tree.Structured{Value: labels}
		}
	}
	return nil
}

func expandFrom(v any) tree.Expand {
	b, ok := v.(bool)
	if !ok {
		return tree.ExpandUnset
	}
	return tree.ExpandFrom(&b)
}
