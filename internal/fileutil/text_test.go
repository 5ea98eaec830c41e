package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/mindexr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("héllo\nworld\n"), 0644))

	bad := filepath.Join(dir, "bad.bin")
	require.NoError(t, os.WriteFile(bad, []byte{'o', 'k', 0xff, 0xfe}, 0644))

	text, err := ReadText(good)
	require.NoError(t, err)
	assert.Equal(t, "héllo\nworld\n", text)

	_, err = ReadText(bad)
	assert.ErrorIs(t, err, models.ErrInvalidUTF8)

	_, err = ReadText(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, models.ErrIo)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "single no newline", text: "hello", want: []string{"hello"}},
		{name: "trailing newline", text: "hello\n", want: []string{"hello"}},
		{name: "crlf", text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", text: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "only newline", text: "\n", want: []string{""}},
		{name: "lone cr kept mid line", text: "a\rb\n", want: []string{"a\rb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}
