// Package search applies a compiled query to file content line by line under
// a shared wall-clock budget.
package search

import (
	"context"

	"github.com/harrison/mindexr/internal/fileutil"
	"github.com/harrison/mindexr/internal/models"
	"github.com/harrison/mindexr/internal/query"
	"github.com/harrison/mindexr/internal/validation"
)

// ctxCheckInterval is how many lines are tested between context checks.
const ctxCheckInterval = 1024

// FileResult holds the matches of one searched file.
type FileResult struct {
	Path    string
	Lines   int                  // Number of lines examined
	Matches []models.MatchRecord // In ascending line order
}

// SearchFile reads the validated file and returns every line that satisfies
// m. The deadline is checked before each line test; when it is exceeded the
// file is abandoned and a SearchTimeout error is returned with no partial
// result.
func SearchFile(ctx context.Context, m *query.Matcher, path *validation.ValidatedPath, deadline *Deadline) (*FileResult, error) {
	text, err := fileutil.ReadText(path.Path)
	if err != nil {
		return nil, err
	}

	lines := fileutil.SplitLines(text)
	result := &FileResult{
		Path:  path.Path,
		Lines: len(lines),
	}

	for i, line := range lines {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if err := deadline.Check(); err != nil {
			return nil, err
		}

		if m.Match(line) {
			result.Matches = append(result.Matches, models.MatchRecord{
				Path: path.Path,
				Line: i + 1,
				Text: line,
			})
		}
	}

	return result, nil
}
