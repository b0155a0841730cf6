package attempt

import (
	"testing"
	"time"

	"github.com/adesai/prepdeck/internal/progress"
)

func TestBuildResult_LocalClassification(t *testing.T) {
	s := testState(3, 0)

	s.SelectOption(0) // question 1, correct
	s.Advance()
	s.SelectOption(0) // question 2, incorrect (correct is 1)
	s.Advance()
	s.ToggleFlag() // question 3, flagged only
	s.Finish()

	r := BuildResult(s, "Algebra")

	if r.AttemptID != "attempt-1" || r.CourseID != 42 {
		t.Errorf("identity = %q / %d", r.AttemptID, r.CourseID)
	}
	if r.CourseName != "Algebra" {
		t.Errorf("CourseName = %q", r.CourseName)
	}
	if r.TimedOut {
		t.Error("untimed attempt must not report TimedOut")
	}

	if r.Summary.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", r.Summary.CorrectCount)
	}
	if r.Summary.IncorrectCount != 1 {
		t.Errorf("IncorrectCount = %d, want 1", r.Summary.IncorrectCount)
	}
	if r.Summary.FlaggedCount != 1 {
		t.Errorf("FlaggedCount = %d, want 1", r.Summary.FlaggedCount)
	}
	if r.Summary.AccuracyPercent != 33 {
		t.Errorf("AccuracyPercent = %d, want 33", r.Summary.AccuracyPercent)
	}

	want := []progress.Status{progress.StatusCorrect, progress.StatusIncorrect, progress.StatusFlagged}
	for i := range want {
		if r.Rows[i].Status != want[i] {
			t.Errorf("row %d status = %v, want %v", i, r.Rows[i].Status, want[i])
		}
	}
}

func TestBuildResult_TimedOut(t *testing.T) {
	s := testState(2, time.Second)
	s.Tick()

	if !s.Completed() {
		t.Fatal("expected completion on exhausted budget")
	}

	r := BuildResult(s, "Algebra")
	if !r.TimedOut {
		t.Error("expected TimedOut after the countdown forced completion")
	}
}
