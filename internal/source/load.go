package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	appErrors "treepick/internal/errors"
	"treepick/internal/tree"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format identifies a source encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// DetectFormat picks a format from an explicit name or, when blank, from the
// file extension.
func DetectFormat(path, name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch name {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	}
	return "", appErrors.Newf(appErrors.CodeUnsupportedFormat, "unsupported source format %q", name)
}

// Load reads the tree stored at path.
func Load(ctx context.Context, path, format string, keys Keys) ([]tree.Node, error) {
	f, err := DetectFormat(path, format)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, appErrors.New(appErrors.CodeSourceNotFound, fmt.Sprintf("source %s does not exist", path), err)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, appErrors.Newf(appErrors.CodeSourceNotFound, "source %s is a directory", path)
	}

	if f == FormatSQLite {
		return LoadSQLite(ctx, path)
	}
	//nolint:gosec // G304: the source path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if f == FormatJSON {
		return LoadJSON(bytes.NewReader(data), keys)
	}
	return LoadYAML(bytes.NewReader(data), keys)
}

// LoadJSON decodes a JSON document into tree nodes.
func LoadJSON(r io.Reader, keys Keys) ([]tree.Node, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, appErrors.New(appErrors.CodeParseFailed, "parse json source", err)
	}
	return Build(doc, keys), nil
}

// LoadYAML decodes a YAML document into tree nodes.
func LoadYAML(r io.Reader, keys Keys) ([]tree.Node, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, appErrors.New(appErrors.CodeParseFailed, "parse yaml source", err)
	}
	return Build(doc, keys), nil
}
