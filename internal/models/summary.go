package models

import "time"

// Mode is the operation requested by the CLI layer.
type Mode string

// Supported modes
const (
	ModeIndex  Mode = "index"
	ModeSearch Mode = "search"
)

// TargetKind tells whether the target path names a file or a directory.
type TargetKind string

// Supported target kinds
const (
	TargetFile      TargetKind = "file"
	TargetDirectory TargetKind = "dir"
)

// MatchRecord is one matching line of a searched file.
type MatchRecord struct {
	Path string // Path of the file as produced by the walker or given by the caller
	Line int    // 1-based line number
	Text string // Line content without the line terminator
}

// FileFailure records a file that could not be processed during a run.
type FileFailure struct {
	Path  string
	Error error
}

// RunSummary aggregates the outcome of one invocation.
// Counters only ever grow during a run.
type RunSummary struct {
	RunID      string        // Unique identifier of the run
	Mode       Mode          // index or search
	TargetKind TargetKind    // file or dir
	Target     string        // Path given by the caller
	Query      string        // Raw query (search only)
	Processed  int           // Files processed successfully
	Failed     int           // Files that failed
	Matches    int           // Total matches (search only)
	Failures   []FileFailure // Details of failed files
	Duration   time.Duration // Wall time of the run
}

// RecordProcessed counts a successfully processed file and its matches.
func (s *RunSummary) RecordProcessed(matches int) {
	s.Processed++
	if matches > 0 {
		s.Matches += matches
	}
}

// RecordFailure counts a failed file.
func (s *RunSummary) RecordFailure(path string, err error) {
	s.Failed++
	s.Failures = append(s.Failures, FileFailure{Path: path, Error: err})
}

// Total returns the number of files that were attempted.
func (s *RunSummary) Total() int {
	return s.Processed + s.Failed
}
