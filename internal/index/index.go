// Package index registers validated files as indexed. Indexing reads the whole
// file and checks that it decodes as UTF-8 text; nothing is persisted.
package index

import (
	"github.com/harrison/mindexr/internal/fileutil"
	"github.com/harrison/mindexr/internal/validation"
)

// FileStats describes an indexed file.
type FileStats struct {
	Path  string
	Bytes int
	Lines int
}

// IndexFile reads the validated file and returns its stats. It fails with
// InvalidUtf8 when the content is not text and Io when it cannot be read.
func IndexFile(path *validation.ValidatedPath) (*FileStats, error) {
	text, err := fileutil.ReadText(path.Path)
	if err != nil {
		return nil, err
	}

	return &FileStats{
		Path:  path.Path,
		Bytes: len(text),
		Lines: len(fileutil.SplitLines(text)),
	}, nil
}
