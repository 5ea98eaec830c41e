package search

import (
	"time"

	"github.com/harrison/mindexr/internal/models"
)

// Deadline is the wall-clock budget of one search operation. It is created
// once at the start of the outermost search and shared by every file the
// operation visits; it is never reset per file.
type Deadline struct {
	start  time.Time
	budget time.Duration
	now    func() time.Time
}

// NewDeadline starts a budget of the given length. now may be nil, in which
// case time.Now is used.
func NewDeadline(budget time.Duration, now func() time.Time) *Deadline {
	if now == nil {
		now = time.Now
	}
	return &Deadline{
		start:  now(),
		budget: budget,
		now:    now,
	}
}

// Check returns a SearchTimeout error once the elapsed time exceeds the budget.
func (d *Deadline) Check() error {
	if d.Elapsed() > d.budget {
		return models.NewSearchTimeout(d.budget)
	}
	return nil
}

// Elapsed returns the time spent since the deadline was created.
func (d *Deadline) Elapsed() time.Duration {
	return d.now().Sub(d.start)
}

// Budget returns the total budget.
func (d *Deadline) Budget() time.Duration {
	return d.budget
}
