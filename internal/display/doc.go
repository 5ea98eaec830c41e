// Package display provides terminal output for mindexr runs: headers, match
// lines, progress steps, run summaries and the failed-files warning.
//
// Results go to stdout through a Printer; warnings go to stderr. Colors are
// only emitted when the writer is a terminal and --no-color is not set:
//
//	p := display.NewPrinter(os.Stdout, display.ColorEnabled(os.Stdout, noColor))
//	p.Header(models.ModeSearch, models.TargetDirectory, "docs", "hello")
//	p.Match(models.MatchRecord{Path: "docs/a.txt", Line: 1, Text: "hello world"})
//	p.Summary(summary)
//
// Directory indexing reports each file through a ProgressIndicator:
//
//	progress := display.NewProgressIndicator(os.Stdout, colorEnabled)
//	progress.Step("docs/a.txt")
//
// Failed files are recapped after the summary:
//
//	if w, ok := display.WarnFailedFiles(summary.Failures); ok {
//	    w.Display(os.Stderr, colorEnabled)
//	}
package display
