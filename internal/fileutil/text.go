package fileutil

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/harrison/mindexr/internal/models"
)

// ReadText reads the whole file at path as UTF-8 text. It fails with
// InvalidUtf8 when the content does not decode and with Io for read failures.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", models.NewIoError(path, err)
	}
	if !utf8.Valid(data) {
		return "", models.NewInvalidUTF8(path)
	}
	return string(data), nil
}

// SplitLines splits text into lines the way a line-oriented reader sees
// them: lines end at "\n", a trailing "\r" is dropped, and a final line
// terminator does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := make([]string, 0, 16)
	for text != "" {
		line, rest, _ := strings.Cut(text, "\n")
		lines = append(lines, strings.TrimSuffix(line, "\r"))
		text = rest
	}
	return lines
}
