package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled reports whether output to w should be colored: w must be a
// terminal and NO_COLOR must be unset.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(w)
}

// palette holds the colors used by the renderers.
type palette struct {
	label   *color.Color
	value   *color.Color
	gap     *color.Color
	success *color.Color
	warn    *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		label:   color.New(color.FgCyan),
		value:   color.New(color.Bold),
		gap:     color.New(color.FgYellow, color.Bold),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.label, p.value, p.gap, p.success, p.warn} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
