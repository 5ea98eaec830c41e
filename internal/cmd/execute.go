package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/mindexr/internal/config"
	"github.com/harrison/mindexr/internal/display"
	"github.com/harrison/mindexr/internal/executor"
	"github.com/harrison/mindexr/internal/logger"
	"github.com/harrison/mindexr/internal/models"
	"github.com/spf13/cobra"
)

// addTargetFlags registers --file/-F and --dir/-D; exactly one must be given.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "F", "", "Path to a single file")
	cmd.Flags().StringP("dir", "D", "", "Path to a directory, walked recursively")
	cmd.MarkFlagsMutuallyExclusive("file", "dir")
	cmd.MarkFlagsOneRequired("file", "dir")
}

// targetFromFlags returns the target selected by --file or --dir. The flag
// groups guarantee at most one is set; an empty kind is left for
// Request.Validate to reject.
func targetFromFlags(cmd *cobra.Command) (models.TargetKind, string) {
	if cmd.Flags().Changed("file") {
		file, _ := cmd.Flags().GetString("file")
		return models.TargetFile, file
	}
	if cmd.Flags().Changed("dir") {
		dir, _ := cmd.Flags().GetString("dir")
		return models.TargetDirectory, dir
	}
	return "", ""
}

// loadConfig reads --config when given and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		cfg = loaded
	}

	// Only flags set on the command line override the file
	var maxFileSizePtr *int64
	var searchTimeoutPtr *time.Duration
	var logLevelPtr, logDirPtr *string
	var allowReadOnlyPtr *bool

	if cmd.Flags().Changed("max-file-size") {
		v, _ := cmd.Flags().GetInt64("max-file-size")
		maxFileSizePtr = &v
	}
	if cmd.Flags().Changed("search-timeout") {
		v, _ := cmd.Flags().GetDuration("search-timeout")
		searchTimeoutPtr = &v
	}
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}
	if cmd.Flags().Changed("log-dir") {
		v, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &v
	}
	if cmd.Flags().Changed("allow-read-only") {
		v, _ := cmd.Flags().GetBool("allow-read-only")
		allowReadOnlyPtr = &v
	}

	cfg.MergeWithFlags(maxFileSizePtr, searchTimeoutPtr, logLevelPtr, logDirPtr, allowReadOnlyPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// execute runs one request end to end: configuration, loggers, the
// orchestrator, and the human readable output.
func execute(cmd *cobra.Command, req executor.Request) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	runID := uuid.New().String()

	consoleLogger := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	if noColor {
		consoleLogger.DisableColor()
	}
	loggers := multiLogger{consoleLogger}
	if cfg.LogDir != "" {
		fileLogger, err := logger.NewFileLoggerWithLevel(cfg.LogDir, runID, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLogger.Close()
		loggers = append(loggers, fileLogger)
	}

	colorOut := display.ColorEnabled(out, noColor)
	reporter := newConsoleReporter(req, display.NewPrinter(out, colorOut), display.NewProgressIndicator(out, colorOut))

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	orch := executor.NewOrchestrator(cfg, loggers, reporter, executor.WithRunID(runID))
	summary, err := orch.Run(ctx, req)
	if errors.Is(err, context.Canceled) {
		loggers.LogError("Interrupted")
	}

	reportOutcome(reporter, req, summary, err, errOut, noColor)

	return err
}

// reportOutcome prints the summary on stdout and recaps failed files on
// errOut. A failed run only reports when a directory walk was cut short
// after some files were attempted.
func reportOutcome(reporter *consoleReporter, req executor.Request, summary *models.RunSummary, runErr error, errOut io.Writer, noColor bool) {
	if summary == nil {
		return
	}
	if runErr != nil && (req.Kind != models.TargetDirectory || summary.Total() == 0) {
		return
	}

	reporter.summary(*summary)
	if warning, ok := display.WarnFailedFiles(summary.Failures); ok {
		warning.Display(errOut, display.ColorEnabled(errOut, noColor))
	}
}
