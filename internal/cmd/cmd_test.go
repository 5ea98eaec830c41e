package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/mindexr/internal/display"
	"github.com/harrison/mindexr/internal/executor"
	"github.com/harrison/mindexr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	rootCmd := NewRootCommand()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIndexFile(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "notes.txt"), "one\ntwo\n")

	stdout, _, err := executeCommand(t, "index", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Indexing file: "+path)
	assert.Contains(t, stdout, "Indexing completed:\nFiles processed: 1\nFiles failed: 0\n")
}

func TestIndexFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	stdout, _, err := executeCommand(t, "index", "--file", missing)
	require.Error(t, err)

	assert.ErrorIs(t, err, models.ErrPathNotFound)
	assert.Contains(t, err.Error(), "path does not exist: "+missing)
	assert.NotContains(t, stdout, "Indexing file:", "rejected target should not print a header")
}

func TestIndexDirectoryWithFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "alpha\n")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "beta\n")
	writeFile(t, filepath.Join(dir, "big.txt"), strings.Repeat("x", 64))

	stdout, stderr, err := executeCommand(t, "index", "-D", dir, "--max-file-size", "32")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Indexing directory: "+dir)
	assert.Contains(t, stdout, "  [1] Indexing file: "+filepath.Join(dir, "a.txt"))
	assert.Contains(t, stdout, "  [2] Indexing file: "+filepath.Join(dir, "sub", "b.txt"))
	assert.Contains(t, stdout, "Files processed: 2\nFiles failed: 1\n")

	assert.Contains(t, stderr, "[WARN] Failed to process "+filepath.Join(dir, "big.txt"))
	assert.Contains(t, stderr, "Warning: 1 file could not be processed")
	assert.NotContains(t, stdout, "Warning:", "warnings must not go to stdout")
}

func TestSearchDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "hello world\n")
	writeFile(t, filepath.Join(dir, "b.txt"), "goodbye\nhello again\n")

	stdout, _, err := executeCommand(t, "search", "hello", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Searching for 'hello' in directory: "+dir)
	first := filepath.Join(dir, "a.txt") + ":1: hello world\n"
	second := filepath.Join(dir, "b.txt") + ":2: hello again\n"
	assert.Contains(t, stdout, first)
	assert.Contains(t, stdout, second)
	assert.Less(t, strings.Index(stdout, first), strings.Index(stdout, second))
	assert.Contains(t, stdout, "Search completed: 2 matches found in 2 files (0 failed)")
}

func TestSearchFilePattern(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "f.txt"), "hi\nbye\nhey\n")

	stdout, _, err := executeCommand(t, "search", "/^h/", "-F", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, path+":1: hi\n")
	assert.Contains(t, stdout, path+":3: hey\n")
	assert.NotContains(t, stdout, ":2: bye")
	assert.Contains(t, stdout, "Found 2 matches in "+path)
}

func TestSearchQueryErrors(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "f.txt"), "text\n")

	tests := []struct {
		name  string
		query string
		want  error
	}{
		{"empty", "   ", models.ErrEmptyQuery},
		{"invalid pattern", "/[unclosed/", models.ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, "search", tt.query, "--file", path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, stdout)
		})
	}
}

func TestTargetFlagGroups(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "f.txt"), "text\n")

	tests := []struct {
		name string
		args []string
	}{
		{"index without target", []string{"index"}},
		{"index with both targets", []string{"index", "--file", path, "--dir", dir}},
		{"search without target", []string{"search", "text"}},
		{"search with both targets", []string{"search", "text", "-F", path, "-D", dir}},
		{"search without query", []string{"search", "--file", path}},
		{"index with positional argument", []string{"index", "--file", path, "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRunGroup(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "f.txt"), "hello\n")

	stdout, _, err := executeCommand(t, "run", "index", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Indexing completed:")

	stdout, _, err = executeCommand(t, "run", "search", "hello", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, path+":1: hello")
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "data", "f.txt"), strings.Repeat("y", 50))
	cfgPath := writeFile(t, filepath.Join(dir, "mindexr.yaml"), "max_file_size_bytes: 10\n")

	_, _, err := executeCommand(t, "index", "--file", path, "--config", cfgPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrFileTooLarge)
	assert.Contains(t, err.Error(), "(50 bytes, max 10 bytes)")

	_, _, err = executeCommand(t, "index", "--file", path, "--config", cfgPath, "--max-file-size", "100")
	assert.NoError(t, err)
}

func TestInvalidConfiguration(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "f.txt"), "x\n")

	_, _, err := executeCommand(t, "index", "--file", path, "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	_, _, err = executeCommand(t, "search", "x", "--file", path, "--search-timeout", "0s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search_timeout must be > 0")
}

func TestReadOnlyFlag(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "ro.txt"), "x\n")
	require.NoError(t, os.Chmod(path, 0444))

	_, _, err := executeCommand(t, "index", "--file", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrPermissionDenied)

	_, _, err = executeCommand(t, "index", "--file", path, "--allow-read-only")
	assert.NoError(t, err)
}

func TestLogDirWritesRunLog(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "data", "f.txt"), "hello\n")
	logDir := filepath.Join(dir, "logs")

	_, _, err := executeCommand(t, "search", "hello", "--file", path, "--log-dir", logDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(logDir, "latest.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== Run Summary ===")
	assert.Contains(t, string(data), "Matches: 1")
}

func TestDebugLogLevelShowsSkips(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "x\n")
	require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), filepath.Join(dir, "broken")))

	_, stderr, err := executeCommand(t, "index", "--dir", dir, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[DEBUG] Skipping "+filepath.Join(dir, "broken"))
}

func TestNoColorLeavesGlobalColorSetting(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()
	color.NoColor = false

	path := writeFile(t, filepath.Join(t.TempDir(), "f.txt"), "hello\n")

	stdout, _, err := executeCommand(t, "search", "hello", "--file", path, "--no-color")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "\x1b[")
	assert.False(t, color.NoColor, "--no-color must not leak into later runs")
}

func TestReportOutcome(t *testing.T) {
	timeout := models.NewSearchTimeout(30 * time.Second)
	partial := &models.RunSummary{
		Mode:       models.ModeSearch,
		TargetKind: models.TargetDirectory,
		Target:     "docs",
		Processed:  1,
		Failed:     1,
		Matches:    2,
		Failures:   []models.FileFailure{{Path: "docs/bad.txt", Error: models.NewInvalidUTF8("docs/bad.txt")}},
	}

	tests := []struct {
		name       string
		kind       models.TargetKind
		summary    *models.RunSummary
		runErr     error
		wantStdout string
		wantStderr string
	}{
		{
			name:       "walk cut short keeps summary and recap",
			kind:       models.TargetDirectory,
			summary:    partial,
			runErr:     timeout,
			wantStdout: "Search completed: 2 matches found in 1 file (1 failed)",
			wantStderr: "1. docs/bad.txt: invalid UTF-8 in file: docs/bad.txt",
		},
		{
			name:       "successful walk",
			kind:       models.TargetDirectory,
			summary:    partial,
			wantStdout: "Search completed:",
			wantStderr: "Warning: 1 file could not be processed",
		},
		{
			name:    "walk aborted before any file",
			kind:    models.TargetDirectory,
			summary: &models.RunSummary{Mode: models.ModeSearch, TargetKind: models.TargetDirectory},
			runErr:  timeout,
		},
		{
			name:    "single file failure",
			kind:    models.TargetFile,
			summary: &models.RunSummary{Mode: models.ModeIndex, TargetKind: models.TargetFile, Failed: 1},
			runErr:  models.NewPathNotFound("a.txt"),
		},
		{
			name:   "malformed request",
			kind:   models.TargetFile,
			runErr: errors.New("target path is required"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			req := executor.Request{Mode: models.ModeSearch, Kind: tt.kind, Target: "docs", Query: "hello"}
			reporter := newConsoleReporter(req, display.NewPrinter(&stdout, false), display.NewProgressIndicator(&stdout, false))

			reportOutcome(reporter, req, tt.summary, tt.runErr, &stderr, true)

			if tt.wantStdout == "" {
				assert.Empty(t, stdout.String())
			} else {
				assert.Contains(t, stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestMultiLogger(t *testing.T) {
	var first, second bytes.Buffer
	loggers := multiLogger{newBufferLogger(&first), newBufferLogger(&second)}

	loggers.LogWarn("careful")
	loggers.LogSummary(models.RunSummary{Processed: 3})

	for _, buf := range []*bytes.Buffer{&first, &second} {
		assert.Contains(t, buf.String(), "warn: careful")
		assert.Contains(t, buf.String(), "summary: 3")
	}
}

type bufferLogger struct {
	buf *bytes.Buffer
}

func newBufferLogger(buf *bytes.Buffer) *bufferLogger {
	return &bufferLogger{buf: buf}
}

func (l *bufferLogger) LogDebug(m string) { fmt.Fprintf(l.buf, "debug: %s\n", m) }
func (l *bufferLogger) LogInfo(m string) { fmt.Fprintf(l.buf, "info: %s\n", m) }
func (l *bufferLogger) LogWarn(m string) { fmt.Fprintf(l.buf, "warn: %s\n", m) }
func (l *bufferLogger) LogError(m string) { fmt.Fprintf(l.buf, "error: %s\n", m) }
func (l *bufferLogger) LogSummary(s models.RunSummary) {
	fmt.Fprintf(l.buf, "summary: %d\n", s.Processed)
}
