// Package render provides markdown rendering utilities for terminal output.
package render

import "os"

// Options configures the markdown renderer behavior.
type Options struct {
	// Width defines the maximum output width (default: 80)
	Width int

	// Style defines the glamour theme: "dark", "light", "notty", or a path
	// to a JSON style file
	Style string

	// PreserveNewLines preserves original line breaks
	PreserveNewLines bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            "dark",
		PreserveNewLines: true,
	}
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

// OptionsFromStyle builds Options for a configured style name. The
// GLAMOUR_STYLE environment variable takes precedence.
func OptionsFromStyle(style string) Options {
	opts := DefaultOptions()
	if style != "" {
		opts.Style = style
	}
	if env := os.Getenv("GLAMOUR_STYLE"); env != "" {
		opts.Style = env
	}
	return opts
}
