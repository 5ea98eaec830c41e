package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/mindexr/internal/config"
	"github.com/harrison/mindexr/internal/fileutil"
	"github.com/harrison/mindexr/internal/index"
	"github.com/harrison/mindexr/internal/models"
	"github.com/harrison/mindexr/internal/query"
	"github.com/harrison/mindexr/internal/search"
	"github.com/harrison/mindexr/internal/validation"
)

// Logger defines the interface for logging orchestrator progress and results.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogSummary(summary models.RunSummary)
}

// Reporter receives per-file events as they happen, in walk order.
// The CLI layer implements it to print matches while the walk is running.
type Reporter interface {
	FileStarted(mode models.Mode, path string)
	FileIndexed(stats index.FileStats)
	Match(record models.MatchRecord)
	FileSearched(result search.FileResult)
	FileFailed(path string, err error)
}

// Request is a validated invocation handed over by the CLI layer.
type Request struct {
	Mode   models.Mode
	Kind   models.TargetKind
	Target string
	Query  string // Search only
}

// Validate rejects requests that do not name exactly one operation and target.
func (r Request) Validate() error {
	switch r.Mode {
	case models.ModeIndex:
		if r.Query != "" {
			return fmt.Errorf("index does not take a query")
		}
	case models.ModeSearch:
	default:
		return fmt.Errorf("invalid mode %q", r.Mode)
	}

	switch r.Kind {
	case models.TargetFile, models.TargetDirectory:
	default:
		return fmt.Errorf("invalid target kind %q: exactly one of file or dir is required", r.Kind)
	}

	if r.Target == "" {
		return fmt.Errorf("target path is required")
	}
	return nil
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock replaces time.Now for the search deadline and run duration.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithRunID fixes the run ID stamped on summaries instead of generating one
// per operation, so the CLI can name its run log after the same ID.
func WithRunID(id string) Option {
	return func(o *Orchestrator) {
		o.runID = id
	}
}

// Orchestrator runs the index and search operations and aggregates per-file
// outcomes into a RunSummary. It is not safe for concurrent use; each
// invocation owns its summary.
type Orchestrator struct {
	cfg       *config.Config
	validator *validation.Validator
	walker    *fileutil.Walker
	logger    Logger
	reporter  Reporter
	now       func() time.Time
	runID     string
}

// NewOrchestrator creates a new Orchestrator instance.
// The logger and reporter parameters are optional and can be nil.
func NewOrchestrator(cfg *config.Config, logger Logger, reporter Reporter, opts ...Option) *Orchestrator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = noopLogger{}
	}
	if reporter == nil {
		reporter = noopReporter{}
	}

	o := &Orchestrator{
		cfg:       cfg,
		validator: validation.NewValidator(cfg.MaxFileSizeBytes, cfg.DenyReadOnly),
		logger:    logger,
		reporter:  reporter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	o.walker = fileutil.NewWalker(fileutil.WalkOptions{
		FollowSymlinks: cfg.FollowSymlinks,
		Extensions:     cfg.Walk.Extensions,
		ExcludeDirs:    cfg.Walk.ExcludeDirs,
		OnSkip: func(path string, err error) {
			o.logger.LogDebug(fmt.Sprintf("Skipping %s: %v", path, err))
		},
	})

	return o
}

// Run dispatches the request to one of the four operations.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*models.RunSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch {
	case req.Mode == models.ModeIndex && req.Kind == models.TargetFile:
		return o.IndexFile(ctx, req.Target)
	case req.Mode == models.ModeIndex:
		return o.IndexDirectory(ctx, req.Target)
	case req.Kind == models.TargetFile:
		return o.SearchFile(ctx, req.Query, req.Target)
	default:
		return o.SearchDirectory(ctx, req.Query, req.Target)
	}
}

// IndexFile validates and indexes a single file.
func (o *Orchestrator) IndexFile(ctx context.Context, path string) (*models.RunSummary, error) {
	summary := o.newSummary(models.ModeIndex, models.TargetFile, path, "")
	defer o.finish(summary, o.now())

	if err := o.indexOne(path, summary); err != nil {
		summary.RecordFailure(path, err)
		return summary, fmt.Errorf("failed to index file: %s: %w", path, err)
	}
	return summary, nil
}

// IndexDirectory indexes every file below path. A file that fails is logged
// and counted; the walk always continues.
func (o *Orchestrator) IndexDirectory(ctx context.Context, path string) (*models.RunSummary, error) {
	summary := o.newSummary(models.ModeIndex, models.TargetDirectory, path, "")
	defer o.finish(summary, o.now())

	dir, err := o.validator.ValidateDirectory(path)
	if err != nil {
		return summary, fmt.Errorf("failed to index directory: %s: %w", path, err)
	}
	o.logger.LogInfo(fmt.Sprintf("Indexing directory: %s", dir.Path))

	err = o.walker.Walk(ctx, dir.Path, func(e fileutil.Entry) error {
		if err := o.indexOne(e.Path, summary); err != nil {
			o.recordFailure(summary, e.Path, err)
		}
		return nil
	})
	if err != nil {
		return summary, fmt.Errorf("failed to index directory: %s: %w", path, err)
	}
	return summary, nil
}

// SearchFile compiles rawQuery and searches a single file.
func (o *Orchestrator) SearchFile(ctx context.Context, rawQuery, path string) (*models.RunSummary, error) {
	summary := o.newSummary(models.ModeSearch, models.TargetFile, path, rawQuery)
	defer o.finish(summary, o.now())

	m, err := query.Compile(rawQuery)
	if err != nil {
		return summary, err
	}
	deadline := search.NewDeadline(o.cfg.SearchTimeout, o.now)

	if err := o.searchOne(ctx, m, path, deadline, summary); err != nil {
		summary.RecordFailure(path, err)
		return summary, fmt.Errorf("failed to search in file: %s: %w", path, err)
	}
	return summary, nil
}

// SearchDirectory compiles rawQuery and searches every file below path under
// one shared deadline. Per-file failures are logged and counted, except a
// search timeout or cancellation, which aborts the whole walk and is returned
// together with the summary accumulated so far.
func (o *Orchestrator) SearchDirectory(ctx context.Context, rawQuery, path string) (*models.RunSummary, error) {
	summary := o.newSummary(models.ModeSearch, models.TargetDirectory, path, rawQuery)
	defer o.finish(summary, o.now())

	m, err := query.Compile(rawQuery)
	if err != nil {
		return summary, err
	}
	deadline := search.NewDeadline(o.cfg.SearchTimeout, o.now)

	dir, err := o.validator.ValidateDirectory(path)
	if err != nil {
		return summary, fmt.Errorf("failed to search in directory: %s: %w", path, err)
	}
	o.logger.LogInfo(fmt.Sprintf("Searching for %q in directory: %s", rawQuery, dir.Path))

	err = o.walker.Walk(ctx, dir.Path, func(e fileutil.Entry) error {
		if err := deadline.Check(); err != nil {
			return err
		}
		if err := o.searchOne(ctx, m, e.Path, deadline, summary); err != nil {
			if isWalkFatal(ctx, err) {
				return err
			}
			o.recordFailure(summary, e.Path, err)
		}
		return nil
	})
	if err != nil {
		return summary, fmt.Errorf("failed to search in directory: %s: %w", path, err)
	}
	return summary, nil
}

func (o *Orchestrator) indexOne(path string, summary *models.RunSummary) error {
	vp, err := o.validator.ValidateFile(path)
	if err != nil {
		return err
	}
	o.reporter.FileStarted(models.ModeIndex, vp.Path)

	stats, err := index.IndexFile(vp)
	if err != nil {
		return err
	}

	summary.RecordProcessed(0)
	o.reporter.FileIndexed(*stats)
	o.logger.LogDebug(fmt.Sprintf("Indexed %s (%d bytes, %d lines)", stats.Path, stats.Bytes, stats.Lines))
	return nil
}

func (o *Orchestrator) searchOne(ctx context.Context, m *query.Matcher, path string, deadline *search.Deadline, summary *models.RunSummary) error {
	vp, err := o.validator.ValidateFile(path)
	if err != nil {
		return err
	}
	o.reporter.FileStarted(models.ModeSearch, vp.Path)

	result, err := search.SearchFile(ctx, m, vp, deadline)
	if err != nil {
		return err
	}

	for _, record := range result.Matches {
		o.reporter.Match(record)
	}
	summary.RecordProcessed(len(result.Matches))
	o.reporter.FileSearched(*result)
	o.logger.LogDebug(fmt.Sprintf("Searched %s: %d matches in %d lines", result.Path, len(result.Matches), result.Lines))
	return nil
}

// recordFailure turns a per-file error into a warning and a failed count.
func (o *Orchestrator) recordFailure(summary *models.RunSummary, path string, err error) {
	summary.RecordFailure(path, err)
	o.logger.LogWarn(fmt.Sprintf("Failed to process %s: %v", path, err))
	o.reporter.FileFailed(path, err)
}

func (o *Orchestrator) newSummary(mode models.Mode, kind models.TargetKind, target, rawQuery string) *models.RunSummary {
	runID := o.runID
	if runID == "" {
		runID = uuid.New().String()
	}
	return &models.RunSummary{
		RunID:      runID,
		Mode:       mode,
		TargetKind: kind,
		Target:     target,
		Query:      rawQuery,
	}
}

func (o *Orchestrator) finish(summary *models.RunSummary, start time.Time) {
	summary.Duration = o.now().Sub(start)
	o.logger.LogSummary(*summary)
}

// isWalkFatal reports whether err must stop a directory search instead of
// being counted against a single file.
func isWalkFatal(ctx context.Context, err error) bool {
	if errors.Is(err, models.ErrSearchTimeout) {
		return true
	}
	return ctx.Err() != nil
}

type noopLogger struct{}

func (noopLogger) LogDebug(string) {}
func (noopLogger) LogInfo(string) {}
func (noopLogger) LogWarn(string) {}
func (noopLogger) LogError(string) {}
func (noopLogger) LogSummary(models.RunSummary) {}

type noopReporter struct{}

func (noopReporter) FileStarted(models.Mode, string) {}
func (noopReporter) FileIndexed(index.FileStats) {}
func (noopReporter) Match(models.MatchRecord) {}
func (noopReporter) FileSearched(search.FileResult) {}
func (noopReporter) FileFailed(string, error) {}
