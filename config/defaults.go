package config

// Default grid bounds and print separators for the spreadsheet engine.
// These values are referenced by pkg/position and pkg/sheet. There is no
// runtime configuration surface (env, CLI, or files); the engine is a
// library and callers tune it through sheet options.

const (
	// Grid bounds. Positions are valid in [0, rows) x [0, cols).
	DefaultMaxRows = 16_384
	DefaultMaxCols = 16_384
)

const (
	// Separators used by the tab-separated region renderers.
	PrintFieldSep = '\t'
	PrintRowSep   = '\n'
)
