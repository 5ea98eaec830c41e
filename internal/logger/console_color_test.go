package logger

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/harrison/mindexr/internal/models"
)

func TestFormatCounts(t *testing.T) {
	tests := []struct {
		name     string
		summary  models.RunSummary
		expected string
	}{
		{
			name:     "index",
			summary:  models.RunSummary{Mode: models.ModeIndex, Processed: 3, Failed: 2},
			expected: "processed: 3, failed: 2",
		},
		{
			name:     "search",
			summary:  models.RunSummary{Mode: models.ModeSearch, Processed: 2, Matches: 5},
			expected: "processed: 2, failed: 0, matches: 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCounts(tt.summary); got != tt.expected {
				t.Errorf("formatCounts() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatColorizedCounts(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()

	t.Run("plain text when color disabled", func(t *testing.T) {
		color.NoColor = true
		summary := models.RunSummary{Mode: models.ModeSearch, Processed: 1, Failed: 1, Matches: 4}

		got := formatColorizedCounts(summary, newColorScheme())
		if got != "processed: 1, failed: 1, matches: 4" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("escape codes when color enabled", func(t *testing.T) {
		color.NoColor = false
		summary := models.RunSummary{Mode: models.ModeIndex, Processed: 1, Failed: 1}

		got := formatColorizedCounts(summary, newColorScheme())
		if !strings.Contains(got, "\x1b[") {
			t.Errorf("expected ANSI escape codes, got %q", got)
		}
		if strings.Contains(got, "matches") {
			t.Errorf("index summary should not mention matches, got %q", got)
		}
	})
}
