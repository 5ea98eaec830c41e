package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/mindexr/internal/models"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when colorEnabled is set.
func (w Warning) Display(out io.Writer, colorEnabled bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	// Add files with proper singular/plural and indentation
	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, newColor(colorEnabled, color.FgYellow).Sprint(b.String()))
}

// WarnFailedFiles builds the recap warning for files that could not be
// processed. ok is false when there is nothing to report.
func WarnFailedFiles(failures []models.FileFailure) (Warning, bool) {
	if len(failures) == 0 {
		return Warning{}, false
	}

	files := make([]string, 0, len(failures))
	for _, f := range failures {
		files = append(files, fmt.Sprintf("%s: %v", f.Path, f.Error))
	}

	return Warning{
		Title:      fmt.Sprintf("%d %s could not be processed", len(failures), plural(len(failures), "file", "files")),
		Files:      files,
		Suggestion: "Check the paths above, or raise --max-file-size for files that are too large",
	}, true
}
