package attempt

import (
	"testing"
	"time"

	"github.com/adesai/prepdeck/internal/catalog"
)

func testQuestions(n int) []catalog.Question {
	qs := make([]catalog.Question, n)
	for i := range qs {
		qs[i] = catalog.Question{ID: i + 1, CorrectOption: i % 4}
	}
	return qs
}

func testState(n int, budget time.Duration) *State {
	return New("attempt-1", 42, ModeQuiz, testQuestions(n), budget)
}

func TestSelectOption_LocksFirstAnswer(t *testing.T) {
	s := testState(3, 0)

	if !s.SelectOption(1) {
		t.Fatal("expected first selection to be recorded")
	}
	if s.Phase != PhaseExplanation || !s.ShowExplanation {
		t.Error("expected explanation phase after answering")
	}

	if s.SelectOption(2) {
		t.Error("expected second selection on same question to be rejected")
	}
	if got := *s.CurrentSelection(); got != 1 {
		t.Errorf("CurrentSelection = %d, want 1 (first answer kept)", got)
	}
}

func TestSelectOption_RejectsOutOfRange(t *testing.T) {
	s := testState(1, 0)
	if s.SelectOption(-1) || s.SelectOption(4) {
		t.Error("expected out-of-range options to be rejected")
	}
}

func TestAdvance_CompletesAfterLastQuestion(t *testing.T) {
	n := 3
	s := testState(n, 0)

	for i := 0; i < n; i++ {
		if s.Completed() {
			t.Fatalf("completed early at question %d", i)
		}
		s.SelectOption(0)
		s.Advance()
	}

	if !s.Completed() {
		t.Error("expected attempt completed after advancing past last question")
	}
	if s.CurrentQuestion() != nil {
		t.Error("expected nil current question once completed")
	}

	// Further transitions are no-ops.
	s.Advance()
	s.GoBack()
	if s.SelectOption(0) {
		t.Error("expected selection rejected after completion")
	}
}

func TestGoBack_KeepsLockedAnswer(t *testing.T) {
	s := testState(3, 0)

	s.SelectOption(2)
	s.Advance()
	s.GoBack()

	if s.Current != 0 {
		t.Fatalf("Current = %d, want 0", s.Current)
	}
	if s.ShowExplanation {
		t.Error("expected transient explanation state cleared on GoBack")
	}
	if !s.Answered() {
		t.Error("expected answer still locked after GoBack")
	}
	if s.SelectOption(3) {
		t.Error("expected re-answer rejected on revisited question")
	}
}

func TestGoBack_NoOpAtFirstQuestion(t *testing.T) {
	s := testState(2, 0)
	s.GoBack()
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0", s.Current)
	}
}

func TestToggleFlag(t *testing.T) {
	s := testState(2, 0)

	s.ToggleFlag()
	if !s.CurrentFlagged() {
		t.Error("expected flag set")
	}
	s.ToggleFlag()
	if s.CurrentFlagged() {
		t.Error("expected flag cleared")
	}

	// Flagging must not lock the answer or change phase.
	s.ToggleFlag()
	if s.Answered() || s.Phase != PhaseInProgress {
		t.Error("expected flag to leave selection and phase untouched")
	}
}

func TestTick_CountsDownAndForcesCompletion(t *testing.T) {
	s := testState(5, 3*time.Second)

	if !s.Timed() {
		t.Fatal("expected timed attempt")
	}
	if s.Tick() {
		t.Error("tick 1 should not complete")
	}
	if s.Tick() {
		t.Error("tick 2 should not complete")
	}
	if !s.Tick() {
		t.Error("tick 3 should complete the attempt")
	}
	if !s.Completed() {
		t.Error("expected completed after budget exhausted")
	}
	if s.Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", s.Remaining)
	}

	// Ticks after completion are no-ops.
	if s.Tick() {
		t.Error("expected tick after completion to report false")
	}
}

func TestTick_UntimedNeverCompletes(t *testing.T) {
	s := testState(2, 0)
	for i := 0; i < 10; i++ {
		if s.Tick() {
			t.Fatal("untimed attempt must not complete on tick")
		}
	}
	if s.Completed() {
		t.Error("untimed attempt completed by ticking")
	}
}

func TestFinish(t *testing.T) {
	s := testState(3, 0)
	s.SelectOption(1)
	s.Finish()
	if !s.Completed() {
		t.Error("expected completed after Finish")
	}
}

func TestEntries_FullSequence(t *testing.T) {
	s := testState(3, 0)

	s.SelectOption(0) // question 1: correct
	s.Advance()
	s.ToggleFlag() // question 2: flagged only
	s.Advance()
	// question 3: untouched
	s.Finish()

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	if entries[0].SelectedOption == nil || *entries[0].SelectedOption != 0 {
		t.Error("entry 0: expected selected option 0")
	}
	if entries[1].SelectedOption != nil || !entries[1].Flagged {
		t.Error("entry 1: expected unanswered and flagged")
	}
	if entries[2].SelectedOption != nil || entries[2].Flagged {
		t.Error("entry 2: expected untouched")
	}
}
