package stats

import (
	"github.com/adesai/prepdeck/internal/catalog"
	"github.com/adesai/prepdeck/internal/progress"
)

// Message types for the two concurrent fetches. Each carries the course
// ID it was issued for so stale responses can be dropped.

type catalogReadyMsg struct {
	CourseID int
	Catalog  *catalog.Catalog
	Err      error
}

// None reports the expected-empty case: the learner has not submitted
// an attempt for this course yet.
type analyticsReadyMsg struct {
	CourseID int
	Payload  *progress.Payload
	None     bool
	Err      error
}
