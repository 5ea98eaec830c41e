package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/mindexr/internal/filelock"
	"github.com/harrison/mindexr/internal/models"
)

// LatestLogName is the symlink in the log directory that points at the most recent run log.
const LatestLogName = "latest.log"

// FileLogger writes the log of one run to a timestamped file in a log
// directory and keeps a latest.log symlink pointing at the most recent run.
// It is thread-safe and implements the executor.Logger interface.
// It supports log level filtering to control message verbosity.
type FileLogger struct {
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger in logDir with the default "info" level.
func NewFileLogger(logDir, runID string) (*FileLogger, error) {
	return NewFileLoggerWithLevel(logDir, runID, "info")
}

// NewFileLoggerWithLevel creates a FileLogger with a custom log level.
// It creates logDir if needed, opens run-YYYYMMDD-HHMMSS-<id>.log, and
// repoints latest.log at it while holding the directory lock.
func NewFileLoggerWithLevel(logDir, runID, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runFile := filepath.Join(logDir, runLogName(time.Now(), runID))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	// Concurrent runs sharing logDir would otherwise race on the link
	if err := filelock.LockAndLink(filepath.Base(runFile), filepath.Join(logDir, LatestLogName)); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to update %s: %w", LatestLogName, err)
	}

	logger := &FileLogger{
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizeLogLevel(logLevel),
	}

	logger.writeRunLog("=== mindexr Run Log ===\n")
	logger.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	logger.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return logger, nil
}

// runLogName returns run-YYYYMMDD-HHMMSS-<first 8 chars of id>.log.
func runLogName(t time.Time, runID string) string {
	short := runID
	if len(short) > 8 {
		short = short[:8]
	}
	name := fmt.Sprintf("run-%s", t.Format("20060102-150405"))
	if short != "" {
		name += "-" + short
	}
	return name + ".log"
}

// RunFile returns the path of the run log file.
func (fl *FileLogger) RunFile() string {
	return fl.runFile
}

// shouldLog checks if a message at the given level should be logged.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}

	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogSummary writes the run summary at INFO level, including every failed
// file with its error.
func (fl *FileLogger) LogSummary(summary models.RunSummary) {
	if !fl.shouldLog("info") {
		return
	}

	var sb strings.Builder
	sb.WriteString("\n=== Run Summary ===\n")
	sb.WriteString(fmt.Sprintf("Run ID: %s\n", summary.RunID))
	sb.WriteString(fmt.Sprintf("Mode: %s %s\n", summary.Mode, summary.TargetKind))
	sb.WriteString(fmt.Sprintf("Target: %s\n", summary.Target))
	if summary.Mode == models.ModeSearch {
		sb.WriteString(fmt.Sprintf("Query: %s\n", summary.Query))
	}
	sb.WriteString(fmt.Sprintf("Processed: %d\n", summary.Processed))
	sb.WriteString(fmt.Sprintf("Failed: %d\n", summary.Failed))
	if summary.Mode == models.ModeSearch {
		sb.WriteString(fmt.Sprintf("Matches: %d\n", summary.Matches))
	}
	sb.WriteString(fmt.Sprintf("Duration: %s\n", formatDuration(summary.Duration)))

	if len(summary.Failures) > 0 {
		sb.WriteString("\nFailed files:\n")
		for _, f := range summary.Failures {
			sb.WriteString(fmt.Sprintf("  - %s: %v\n", f.Path, f.Error))
		}
	}

	fl.writeRunLog(sb.String())
}

// Close flushes and closes the run log file.
// It should be called when the logger is no longer needed.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
	}
}
