package runner

import (
	"time"

	"github.com/google/uuid"
)

// Report is the outcome of one run, ready for rendering
type Report struct {
	ID        string
	Started   time.Time
	Finished  time.Time
	Matches   []Match
	Skipped   []Skipped
	Conflicts []Conflict
}

func newReport(started, finished time.Time, matches []Match, skipped []Skipped, conflicts []Conflict) Report {
	return Report{
		ID:        uuid.NewString(),
		Started:   started,
		Finished:  finished,
		Matches:   matches,
		Skipped:   skipped,
		Conflicts: conflicts,
	}
}

// Total returns the number of admitted entries over all rules
func (r Report) Total() int {
	n := 0
	for _, m := range r.Matches {
		n += len(m.Entries)
	}
	return n
}

// Duration returns how long the run took
func (r Report) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}
