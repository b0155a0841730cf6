package attempt

import (
	"time"

	"github.com/adesai/prepdeck/internal/analytics"
	"github.com/adesai/prepdeck/internal/progress"
)

// Result is the local wrap-up of a completed attempt, shown on the
// summary screen and recorded in local history before (and regardless
// of) server submission.
type Result struct {
	AttemptID  string
	CourseID   int
	CourseName string
	Mode       Mode
	Summary    analytics.Summary
	Rows       []analytics.Row
	Duration   time.Duration
	TimedOut   bool
}

// BuildResult classifies the attempt's own answers against the catalog
// it ran over. No server aggregate exists yet for a just-finished
// attempt, so the summary is purely local here; the stats screen later
// shows the server-reconciled view.
func BuildResult(s *State, courseName string) *Result {
	payload := &progress.Payload{Questions: s.Entries()}
	summary, rows := analytics.Build(s.Questions, len(s.Questions), payload)

	return &Result{
		AttemptID:  s.ID,
		CourseID:   s.CourseID,
		CourseName: courseName,
		Mode:       s.Mode,
		Summary:    summary,
		Rows:       rows,
		Duration:   s.Elapsed(),
		TimedOut:   s.Timed() && s.Remaining <= 0,
	}
}
