package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ProgressIndicator prints one numbered line per file of a directory run.
type ProgressIndicator struct {
	writer  io.Writer
	step    *color.Color
	current int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, colorEnabled bool) *ProgressIndicator {
	return &ProgressIndicator{
		writer: w,
		step:   newColor(colorEnabled, color.FgCyan),
	}
}

// Step displays progress for the next file: [N] Indexing file: path (cyan)
func (p *ProgressIndicator) Step(path string) {
	p.current++
	fmt.Fprintf(p.writer, "%s %s\n", p.step.Sprintf("  [%d] Indexing file:", p.current), path)
}
