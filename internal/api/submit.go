package api

import (
	"context"
	"fmt"
	"time"

	"github.com/adesai/prepdeck/internal/progress"
)

// AttemptSubmission is the persistence payload for a finished attempt.
type AttemptSubmission struct {
	AttemptID    string           `json:"attempt_id"`
	Mode         string           `json:"mode"`
	DurationSecs int              `json:"duration_secs"`
	TimedOut     bool             `json:"timed_out"`
	Questions    []progress.Entry `json:"questions"`
}

// SubmitAttempt posts a completed attempt's answers and flags. The
// server grades and folds them into the course analytics. Not retried;
// a failure is surfaced to the learner while the local summary and
// history remain intact.
func (c *Client) SubmitAttempt(ctx context.Context, courseID int, sub AttemptSubmission, duration time.Duration) error {
	sub.DurationSecs = int(duration.Seconds())
	path := fmt.Sprintf("/courses/%d/attempts", courseID)
	_, err := c.post(ctx, path, sub)
	return err
}
