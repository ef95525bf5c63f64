package config

import (
	"reflect"
	"strings"

	"treepick/internal/tree"

	"github.com/mitchellh/mapstructure"
)

// PickerOptions is the decoded `picker` section.
type PickerOptions struct {
	ValueKey    string `mapstructure:"value-key"`
	ChildrenKey string `mapstructure:"children-key"`
	LabelKey    string `mapstructure:"label-key"`
	ExpandKey   string `mapstructure:"expand-key"`

	ExpandItemValues        []any `mapstructure:"expand-item-values"`
	DefaultExpandItemValues []any `mapstructure:"default-expand-item-values"`
	ExpandAll               *bool `mapstructure:"expand-all"`
	DefaultExpandAll        *bool `mapstructure:"default-expand-all"`

	Inline     bool `mapstructure:"inline"`
	Searchable bool `mapstructure:"searchable"`
	Height     int  `mapstructure:"height"`
}

// ExpandOptions converts the expand settings for the tree core. Identifier
// values are normalized so numbers from YAML, JSON and the environment
// compare equal.
func (p PickerOptions) ExpandOptions() tree.ExpandOptions {
	return tree.ExpandOptions{
		ExpandItemValues:        tree.NormalizeValues(p.ExpandItemValues),
		DefaultExpandItemValues: tree.NormalizeValues(p.DefaultExpandItemValues),
		ExpandAll:               p.ExpandAll,
		DefaultExpandAll:        p.DefaultExpandAll,
	}
}

// Picker decodes the merged `picker` settings. Keys that are not set by any
// source stay at their zero value; the optional expand settings stay nil.
func Picker() (PickerOptions, error) {
	opts, _, err := decodePicker()
	return opts, err
}

// UnknownPickerKeys lists keys under `picker` that neither decode into
// PickerOptions nor are known retired keys.
func UnknownPickerKeys() ([]string, error) {
	_, md, err := decodePicker()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, key := range md.Unused {
		if _, retired := retiredKeys["picker."+key]; retired {
			continue
		}
		out = append(out, "picker."+key)
	}
	return out, nil
}

func decodePicker() (PickerOptions, mapstructure.Metadata, error) {
	var opts PickerOptions
	var md mapstructure.Metadata

	v, err := getViper()
	if err != nil {
		return opts, md, err
	}
	configMu.RLock()
	raw, _ := v.AllSettings()["picker"].(map[string]any)
	configMu.RUnlock()

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       commaListHook,
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           &opts,
	})
	if err != nil {
		return opts, md, err
	}
	if err := dec.Decode(raw); err != nil {
		return opts, md, err
	}
	return opts, md, nil
}

// commaListHook splits strings such as environment values into lists.
func commaListHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}
	s := strings.TrimSpace(reflect.ValueOf(data).String())
	if s == "" {
		return []any{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out, nil
}
