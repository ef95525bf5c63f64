package theme

// Palettes are registered in init order; the first one is the default.
func init() {
	RegisterTheme("treepick", Theme{
		Text:      adaptive("#1f1f1f", "#eeeeee"),
		Muted:     adaptive("#8a8a8a", "#6c6c6c"),
		Accent:    adaptive("#5f5fd7", "#875fff"),
		Match:     adaptive("#d75f00", "#ffaf00"),
		Cursor:    adaptive("#d7d7ff", "#5f00ff"),
		CursorFg:  adaptive("#000000", "#ffffff"),
		Drag:      adaptive("#0087af", "#00afff"),
		DropZone:  adaptive("#008700", "#87ff00"),
		Forbidden: adaptive("#d70000", "#ff5f5f"),
	})

	RegisterTheme("nord", Theme{
		Text:      adaptive("#2E3440", "#ECEFF4"),
		Muted:     adaptive("#4C566A", "#8B95A7"),
		Accent:    adaptive("#5E81AC", "#88C0D0"),
		Match:     adaptive("#D08770", "#EBCB8B"),
		Cursor:    adaptive("#D8DEE9", "#434C5E"),
		CursorFg:  adaptive("#2E3440", "#ECEFF4"),
		Drag:      adaptive("#81A1C1", "#81A1C1"),
		DropZone:  adaptive("#A3BE8C", "#A3BE8C"),
		Forbidden: adaptive("#BF616A", "#BF616A"),
	})

	RegisterTheme("dracula", Theme{
		Text:      adaptive("#212121", "#f8f8f2"),
		Muted:     adaptive("#757575", "#6272a4"),
		Accent:    adaptive("#7e57c2", "#bd93f9"),
		Match:     adaptive("#f9a825", "#f1fa8c"),
		Cursor:    adaptive("#e0e0e0", "#44475a"),
		CursorFg:  adaptive("#000000", "#f8f8f2"),
		Drag:      adaptive("#0097a7", "#8be9fd"),
		DropZone:  adaptive("#388e3c", "#50fa7b"),
		Forbidden: adaptive("#d32f2f", "#ff5555"),
	})

	RegisterTheme("gruvbox", Theme{
		Text:      adaptive("#3c3836", "#ebdbb2"),
		Muted:     adaptive("#7c6f64", "#928374"),
		Accent:    adaptive("#076678", "#83a598"),
		Match:     adaptive("#b57614", "#fabd2f"),
		Cursor:    adaptive("#d5c4a1", "#504945"),
		CursorFg:  adaptive("#282828", "#fbf1c7"),
		Drag:      adaptive("#427b58", "#8ec07c"),
		DropZone:  adaptive("#79740e", "#b8bb26"),
		Forbidden: adaptive("#9d0006", "#fb4934"),
	})
}
