package cmd

import (
	"github.com/harrison/mindexr/internal/display"
	"github.com/harrison/mindexr/internal/executor"
	"github.com/harrison/mindexr/internal/index"
	"github.com/harrison/mindexr/internal/models"
	"github.com/harrison/mindexr/internal/search"
)

// consoleReporter implements executor.Reporter on top of the display
// package. The header is printed on the first event, once the target has
// passed validation, so a rejected target only produces the error.
type consoleReporter struct {
	req      executor.Request
	printer  *display.Printer
	progress *display.ProgressIndicator
	started  bool
}

func newConsoleReporter(req executor.Request, printer *display.Printer, progress *display.ProgressIndicator) *consoleReporter {
	return &consoleReporter{
		req:      req,
		printer:  printer,
		progress: progress,
	}
}

func (r *consoleReporter) header() {
	if r.started {
		return
	}
	r.started = true
	r.printer.Header(r.req.Mode, r.req.Kind, r.req.Target, r.req.Query)
}

// FileStarted prints the header and, for directory indexing, a progress step.
func (r *consoleReporter) FileStarted(mode models.Mode, path string) {
	r.header()
	if mode == models.ModeIndex && r.req.Kind == models.TargetDirectory {
		r.progress.Step(path)
	}
}

// FileIndexed is a no-op; the step line was already printed.
func (r *consoleReporter) FileIndexed(stats index.FileStats) {
}

// Match prints the matching line immediately.
func (r *consoleReporter) Match(record models.MatchRecord) {
	r.printer.Match(record)
}

// FileSearched is a no-op; matches were printed as they were found.
func (r *consoleReporter) FileSearched(result search.FileResult) {
}

// FileFailed only makes sure the header is out; the warning itself goes
// through the logger.
func (r *consoleReporter) FileFailed(path string, err error) {
	r.header()
}

func (r *consoleReporter) summary(s models.RunSummary) {
	r.header()
	r.printer.Summary(s)
}

// multiLogger fans every call out to several loggers.
type multiLogger []executor.Logger

func (m multiLogger) LogDebug(message string) {
	for _, l := range m {
		l.LogDebug(message)
	}
}

func (m multiLogger) LogInfo(message string) {
	for _, l := range m {
		l.LogInfo(message)
	}
}

func (m multiLogger) LogWarn(message string) {
	for _, l := range m {
		l.LogWarn(message)
	}
}

func (m multiLogger) LogError(message string) {
	for _, l := range m {
		l.LogError(message)
	}
}

func (m multiLogger) LogSummary(summary models.RunSummary) {
	for _, l := range m {
		l.LogSummary(summary)
	}
}
