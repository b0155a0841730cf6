package analytics

import (
	"testing"

	"github.com/adesai/prepdeck/internal/catalog"
	"github.com/adesai/prepdeck/internal/progress"
)

func intPtr(v int) *int { return &v }

func threeQuestions() []catalog.Question {
	return []catalog.Question{
		{ID: 1, CorrectOption: 0},
		{ID: 2, CorrectOption: 1},
		{ID: 3, CorrectOption: 2},
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name            string
		correct, total  int
		want            int
	}{
		{"zero total", 5, 0, 0},
		{"negative total", 5, -1, 0},
		{"zero correct", 0, 10, 0},
		{"all correct", 10, 10, 100},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accuracy(tt.correct, tt.total); got != tt.want {
				t.Errorf("Accuracy(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestBuild_NilPayload(t *testing.T) {
	s, rows := Build(threeQuestions(), 3, nil)

	if s.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", s.TotalQuestions)
	}
	if s.CorrectCount != 0 || s.AttemptedCount != 0 || s.IncorrectCount != 0 {
		t.Errorf("expected zero counts, got %+v", s)
	}
	if s.SkippedCount != 3 {
		t.Errorf("SkippedCount = %d, want 3", s.SkippedCount)
	}
	for i, r := range rows {
		if r.Status != progress.StatusSkipped {
			t.Errorf("row %d status = %v, want skipped", i, r.Status)
		}
	}
}

// One correct, one skipped, one flagged-unanswered.
func TestBuild_MixedAttempt(t *testing.T) {
	payload := &progress.Payload{
		Questions: []progress.Entry{
			{QuestionID: 1, SelectedOption: intPtr(0)},
			{QuestionID: 3, Flagged: true},
		},
	}

	s, rows := Build(threeQuestions(), 3, payload)

	if s.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", s.CorrectCount)
	}
	if s.AttemptedCount != 1 {
		t.Errorf("AttemptedCount = %d, want 1", s.AttemptedCount)
	}
	if s.IncorrectCount != 0 {
		t.Errorf("IncorrectCount = %d, want 0", s.IncorrectCount)
	}
	if s.FlaggedCount != 1 {
		t.Errorf("FlaggedCount = %d, want 1", s.FlaggedCount)
	}
	if s.SkippedCount != 2 {
		t.Errorf("SkippedCount = %d, want 2", s.SkippedCount)
	}
	if s.AccuracyPercent != 33 {
		t.Errorf("AccuracyPercent = %d, want 33", s.AccuracyPercent)
	}

	want := []progress.Status{progress.StatusCorrect, progress.StatusSkipped, progress.StatusFlagged}
	for i := range want {
		if rows[i].Status != want[i] {
			t.Errorf("row %d status = %v, want %v", i, rows[i].Status, want[i])
		}
	}
}

// Server aggregates win over local classification for the summary, and
// incorrect is always derived from the reconciled counts.
func TestBuild_ServerCountsTakePrecedence(t *testing.T) {
	payload := &progress.Payload{
		CorrectCount:       intPtr(5),
		AttemptedQuestions: intPtr(7),
		TotalQuestions:     intPtr(10),
		IsSubmitted:        true,
		Questions: []progress.Entry{
			{QuestionID: 1, SelectedOption: intPtr(0)},
		},
	}

	s, _ := Build(threeQuestions(), 3, payload)

	if s.TotalQuestions != 10 {
		t.Errorf("TotalQuestions = %d, want 10 (server)", s.TotalQuestions)
	}
	if s.CorrectCount != 5 {
		t.Errorf("CorrectCount = %d, want 5 (server)", s.CorrectCount)
	}
	if s.AttemptedCount != 7 {
		t.Errorf("AttemptedCount = %d, want 7 (server)", s.AttemptedCount)
	}
	if s.IncorrectCount != 2 {
		t.Errorf("IncorrectCount = %d, want 2 (derived 7-5)", s.IncorrectCount)
	}
	if s.AccuracyPercent != 50 {
		t.Errorf("AccuracyPercent = %d, want 50", s.AccuracyPercent)
	}
	if !s.IsSubmitted {
		t.Error("expected IsSubmitted carried from payload")
	}
}

func TestBuild_NegativeServerCountsCoerced(t *testing.T) {
	payload := &progress.Payload{
		CorrectCount:       intPtr(-3),
		AttemptedQuestions: intPtr(-1),
	}

	s, _ := Build(threeQuestions(), 3, payload)

	if s.CorrectCount != 0 {
		t.Errorf("CorrectCount = %d, want 0", s.CorrectCount)
	}
	if s.IncorrectCount != 0 {
		t.Errorf("IncorrectCount = %d, want 0", s.IncorrectCount)
	}
}

func TestBuild_DerivedIncorrectNeverNegative(t *testing.T) {
	payload := &progress.Payload{
		CorrectCount:       intPtr(9),
		AttemptedQuestions: intPtr(4),
	}

	s, _ := Build(threeQuestions(), 3, payload)

	if s.IncorrectCount != 0 {
		t.Errorf("IncorrectCount = %d, want 0 (clamped)", s.IncorrectCount)
	}
}

func TestBuild_FallsBackToCatalogLength(t *testing.T) {
	s, _ := Build(threeQuestions(), 0, &progress.Payload{})
	if s.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3 (catalog length)", s.TotalQuestions)
	}
}
