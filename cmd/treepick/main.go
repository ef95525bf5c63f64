package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"treepick/internal/config"
	"treepick/internal/debug"
	appErrors "treepick/internal/errors"
	"treepick/internal/richtext"
	"treepick/internal/source"
	"treepick/internal/tree"
	"treepick/internal/ui"
	"treepick/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var errVersionPrinted = errors.New("version printed")

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, newProgram)
	if errors.Is(err, errVersionPrinted) || errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.Picker) programRunner

func newProgram(p *ui.Picker) programRunner {
	return tea.NewProgram(p, tea.WithAltScreen(), tea.WithMouseCellMotion())
}

// flagKeys maps each flag to the configuration key it overrides.
var flagKeys = map[string]string{
	"source":       config.KeySourcePath,
	"format":       config.KeySourceFormat,
	"debug":        config.KeyDebug,
	"no-color":     config.KeyNoColor,
	"theme":        config.KeyTheme,
	"inline":       config.KeyInline,
	"searchable":   config.KeySearchable,
	"height":       config.KeyHeight,
	"value-key":    config.KeyValueKey,
	"children-key": config.KeyChildrenKey,
	"label-key":    config.KeyLabelKey,
	"expand-key":   config.KeyExpandKey,
	"expand":       config.KeyExpandItemValues,
	"expand-all":   config.KeyExpandAll,
	"open":         config.KeyDefaultExpandItemValues,
	"open-all":     config.KeyDefaultExpandAll,
}

type cliFlags struct {
	version      bool
	print        bool
	query        string
	saveExpanded bool
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, map[string]any, error) {
	fs := flag.NewFlagSet("treepick", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cli cliFlags
	fs.BoolVar(&cli.version, "version", false, "Print version information and exit")
	fs.BoolVar(&cli.print, "print", false, "Print the shown rows instead of starting the picker")
	fs.StringVar(&cli.query, "query", "", "Search keyword applied to --print output")
	fs.BoolVar(&cli.saveExpanded, "save-expanded", false, "Persist the expanded nodes as the default expand list on exit")

	fs.String("source", config.GetString(config.KeySourcePath), "Path to the tree source (.json, .yaml, .db)")
	fs.String("format", config.GetString(config.KeySourceFormat), "Source format (json, yaml, sqlite); detected from the extension when empty")
	fs.Bool("debug", config.GetBool(config.KeyDebug), "Write a debug log to ~/.treepick/debug.log")
	fs.Bool("no-color", config.GetBool(config.KeyNoColor), "Disable colors")
	fs.String("theme", config.GetString(config.KeyTheme), "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	fs.Bool("inline", config.GetBool(config.KeyInline), "Render inline without a search bar")
	fs.Bool("searchable", config.GetBool(config.KeySearchable), "Show the search bar")
	fs.Int("height", config.GetInt(config.KeyHeight), "Picker height in lines (0 follows the terminal)")
	fs.String("value-key", config.GetString(config.KeyValueKey), "Field holding a node's identifier")
	fs.String("children-key", config.GetString(config.KeyChildrenKey), "Field holding a node's children")
	fs.String("label-key", config.GetString(config.KeyLabelKey), "Field holding a node's label")
	fs.String("expand-key", config.GetString(config.KeyExpandKey), "Field holding a node's expand override")
	fs.String("expand", "", "Comma-separated node values to expand; nothing else is expanded")
	fs.Bool("expand-all", false, "Expand every branch")
	fs.String("open", "", "Comma-separated node values expanded at start")
	fs.Bool("open-all", false, "Expand every branch at start")

	if err := fs.Parse(args); err != nil {
		return cli, nil, err
	}

	overrides := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if getter, ok := f.Value.(flag.Getter); ok {
			overrides[key] = getter.Get()
		}
	})
	return cli, overrides, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, factory programFactory) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("initialize config: %w", err)
	}
	cli, overrides, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cli.version {
		printVersion(stdout)
		return errVersionPrinted
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "apply flags", err)
	}

	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		fmt.Fprintf(stderr, "Warning: debug logging unavailable: %v\n", err)
	}
	defer debug.Close()

	if err := reportConfigProblems(stderr); err != nil {
		return err
	}
	opts, err := config.Picker()
	if err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "decode picker settings", err)
	}

	if config.GetBool(config.KeyNoColor) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if name := config.GetString(config.KeyTheme); name != "" && !theme.SetTheme(name) {
		fmt.Fprintf(stderr, "Warning: unknown theme %q, using %s\n", name, theme.CurrentName())
	}

	path := strings.TrimSpace(config.GetString(config.KeySourcePath))
	if path == "" {
		return appErrors.Newf(appErrors.CodeConfigurationError, "no source given: pass --source or set %s", config.KeySourcePath)
	}
	keys := source.Keys{
		Value:    opts.ValueKey,
		Children: opts.ChildrenKey,
		Label:    opts.LabelKey,
		Expand:   opts.ExpandKey,
	}
	roots, err := source.Load(ctx, path, config.GetString(config.KeySourceFormat), keys)
	if err != nil {
		return err
	}
	debug.Logf("loaded %d root nodes from %s", len(roots), path)

	if cli.print {
		return printRows(stdout, roots, opts.ExpandOptions(), cli.query)
	}

	picker := ui.New(roots, ui.Config{
		Expand:       opts.ExpandOptions(),
		Inline:       opts.Inline,
		Searchable:   opts.Searchable,
		Height:       opts.Height,
		QuitOnSelect: true,
	})
	prog := factory(picker)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}

	if cli.saveExpanded {
		if err := config.SaveDefaultExpanded(picker.ExpandedValues()); err != nil {
			return fmt.Errorf("save expanded nodes: %w", err)
		}
	}
	if chosen, ok := picker.Chosen(); ok {
		fmt.Fprintln(stdout, formatPath(chosen.Path))
	}
	return nil
}

// reportConfigProblems warns once per retired or unknown configuration key.
func reportConfigProblems(stderr io.Writer) error {
	deprecated, err := config.DeprecatedKeys()
	if err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "read configuration", err)
	}
	for _, d := range deprecated {
		fmt.Fprintf(stderr, "Warning: %s is deprecated and ignored; use %s instead\n", d.Key, d.Replacement)
		debug.Warn("deprecated configuration key", "key", d.Key, "replacement", d.Replacement)
	}
	unknown, err := config.UnknownPickerKeys()
	if err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "decode picker settings", err)
	}
	for _, key := range unknown {
		debug.Warn("unknown configuration key", "key", key)
	}
	return nil
}

// printRows writes the shown rows as an indented outline.
func printRows(w io.Writer, roots []tree.Node, expand tree.ExpandOptions, query string) error {
	view := tree.BuildView(roots, tree.ViewConfig{
		Expand:  expand,
		Keyword: query,
		Search:  tree.Searcher{ToText: richtext.Text},
	})
	for _, row := range view.ShownRows() {
		label := tree.PlainString(tree.LabelOf(row.Node), richtext.Text)
		if label == "" {
			label = fmt.Sprint(row.Source.Value())
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", row.Depth), label); err != nil {
			return err
		}
	}
	return nil
}

func formatPath(path []any) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "/")
}
