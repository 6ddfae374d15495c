// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers for the CLI. All helpers
// degrade to plain text when the writer is not a terminal.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// Income returns a styled income amount (green).
func (s *Styles) Income(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		String()
}

// Expense returns a styled expense amount (red).
func (s *Styles) Expense(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		String()
}

// Category returns a styled category name in its configured color.
// Unknown color names fall back to plain text.
func (s *Styles) Category(text, color string) string {
	if c, ok := namedColors[color]; ok {
		return s.output.String(text).
			Foreground(s.output.Color(c)).
			String()
	}
	return text
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text for secondary information.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// namedColors maps the color names stored on categories to ANSI codes.
var namedColors = map[string]string{
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"bright_green": "10",
}
