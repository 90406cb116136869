package display

import (
	"fmt"
	"io"
	"path/filepath"
)

// ProgressIndicator reports per-item progress for multi-document runs
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
	palette *palette
}

// NewProgressIndicator creates a progress indicator for total items
func NewProgressIndicator(w io.Writer, total int, colorOn bool) *ProgressIndicator {
	return &ProgressIndicator{
		writer:  w,
		total:   total,
		palette: newPalette(colorOn),
	}
}

// Step reports the next item: "  [N/Total] name"
func (p *ProgressIndicator) Step(path string) {
	p.current++
	fmt.Fprintln(p.writer, p.palette.label.Sprintf("  [%d/%d] %s", p.current, p.total, filepath.Base(path)))
}

// Complete reports how many items were processed
func (p *ProgressIndicator) Complete(noun string) {
	fmt.Fprintf(p.writer, "%s Analyzed %d %s\n", p.palette.success.Sprint("✓"), p.current, noun)
}
