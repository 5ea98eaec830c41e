package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/harrison/mindexr/internal/models"
	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether colored output should be written to w.
// Only terminals get color, and noColor always wins.
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newColor returns a color whose output is forced on or off regardless of
// fatih/color's global stdout detection.
func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Printer writes run results for humans.
type Printer struct {
	out     io.Writer
	heading *color.Color
	query   *color.Color
	path    *color.Color
	line    *color.Color
	label   *color.Color
	fail    *color.Color
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, colorEnabled bool) *Printer {
	return &Printer{
		out:     out,
		heading: newColor(colorEnabled, color.FgGreen, color.Bold),
		query:   newColor(colorEnabled, color.FgYellow),
		path:    newColor(colorEnabled, color.FgMagenta),
		line:    newColor(colorEnabled, color.FgGreen),
		label:   newColor(colorEnabled, color.FgHiWhite),
		fail:    newColor(colorEnabled, color.FgRed),
	}
}

// Header announces the operation before any file is processed.
//
//	Indexing file: notes.txt
//	Searching for 'hello' in directory: docs
func (p *Printer) Header(mode models.Mode, kind models.TargetKind, target, query string) {
	where := "file"
	if kind == models.TargetDirectory {
		where = "directory"
	}

	if mode == models.ModeIndex {
		fmt.Fprintf(p.out, "%s %s\n", p.heading.Sprintf("Indexing %s:", where), target)
		return
	}
	fmt.Fprintf(p.out, "%s '%s' %s %s\n",
		p.heading.Sprint("Searching for"), p.query.Sprint(query), p.heading.Sprintf("in %s:", where), target)
}

// Match prints one matching line as path:line: text.
func (p *Printer) Match(m models.MatchRecord) {
	fmt.Fprintf(p.out, "%s:%s: %s\n", p.path.Sprint(m.Path), p.line.Sprint(m.Line), m.Text)
}

// Summary prints the final counters of a run.
func (p *Printer) Summary(s models.RunSummary) {
	failed := fmt.Sprint(s.Failed)
	if s.Failed > 0 {
		failed = p.fail.Sprint(s.Failed)
	}

	if s.Mode == models.ModeIndex {
		fmt.Fprintf(p.out, "%s\n%s %d\n%s %s\n",
			p.heading.Sprint("Indexing completed:"),
			p.label.Sprint("Files processed:"), s.Processed,
			p.label.Sprint("Files failed:"), failed)
		return
	}

	if s.TargetKind == models.TargetFile {
		fmt.Fprintf(p.out, "Found %d %s in %s\n", s.Matches, plural(s.Matches, "match", "matches"), s.Target)
		return
	}
	fmt.Fprintf(p.out, "%s %d %s found in %d %s (%s failed)\n",
		p.heading.Sprint("Search completed:"),
		s.Matches, plural(s.Matches, "match", "matches"),
		s.Processed, plural(s.Processed, "file", "files"),
		failed)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
