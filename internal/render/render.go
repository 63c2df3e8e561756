// Package render formats draw results for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects when output is colored
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always or never; empty means auto
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown color mode %q", s)
	}
}

// Options configure a Formatter
type Options struct {
	Color   ColorMode
	Verbose bool
}

// Formatter renders results to a writer
type Formatter struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	styles   styles
	verbose  bool
}

// New creates a Formatter writing to w. With ColorAuto the color profile is
// detected from w, so pipes and files get plain text.
func New(w io.Writer, opts Options) *Formatter {
	r := lipgloss.NewRenderer(w)
	switch opts.Color {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Formatter{
		w:        w,
		renderer: r,
		styles:   newStyles(r, r.ColorProfile() != termenv.Ascii),
		verbose:  opts.Verbose,
	}
}

// Colored reports whether the formatter emits color
func (f *Formatter) Colored() bool {
	return f.renderer.ColorProfile() != termenv.Ascii
}

func (f *Formatter) write(s string) {
	fmt.Fprint(f.w, s)
}
