package quiz

import (
	"time"

	"github.com/adesai/prepdeck/internal/catalog"
)

// catalogReadyMsg is sent when the course catalog fetch resolves. It
// carries the course ID it was issued for so a screen that has since
// moved to another course can drop it.
type catalogReadyMsg struct {
	CourseID int
	Catalog  *catalog.Catalog
	Err      error
}

// timerTickMsg is sent every second while the attempt is live.
type timerTickMsg time.Time
