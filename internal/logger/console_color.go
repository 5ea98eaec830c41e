package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/mindexr/internal/models"
)

// colorScheme defines consistent colors for different metric types.
// Green: success/positive metrics
// Red: failure/error metrics
// Yellow: match counts
// Cyan: labels and identifiers
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

// newColorScheme creates the standard color scheme for metrics.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single metric with colorized label and value.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, labelColor, valueColor *color.Color) string {
	return fmt.Sprintf("%s: %s", labelColor.Sprint(label), valueColor.Sprintf("%v", value))
}

// formatCounts formats the summary counters without color.
// Format: "processed: N, failed: N[, matches: N]"
func formatCounts(summary models.RunSummary) string {
	parts := []string{
		fmt.Sprintf("processed: %d", summary.Processed),
		fmt.Sprintf("failed: %d", summary.Failed),
	}
	if summary.Mode == models.ModeSearch {
		parts = append(parts, fmt.Sprintf("matches: %d", summary.Matches))
	}
	return strings.Join(parts, ", ")
}

// formatColorizedCounts formats the summary counters with color coding.
// Processed files are green, failures red when non-zero, matches yellow.
// Colors are automatically disabled when output is not a TTY via fatih/color's built-in detection.
func formatColorizedCounts(summary models.RunSummary, scheme *colorScheme) string {
	parts := []string{
		formatColorizedMetric("processed", summary.Processed, scheme.success, scheme.value),
	}

	if summary.Failed > 0 {
		parts = append(parts, formatColorizedMetric("failed", summary.Failed, scheme.fail, scheme.fail))
	} else {
		parts = append(parts, formatColorizedMetric("failed", summary.Failed, scheme.label, scheme.value))
	}

	if summary.Mode == models.ModeSearch {
		parts = append(parts, formatColorizedMetric("matches", summary.Matches, scheme.warn, scheme.value))
	}

	return strings.Join(parts, ", ")
}
