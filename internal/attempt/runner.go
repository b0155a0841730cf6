package attempt

import "github.com/adesai/prepdeck/internal/progress"

// The transition functions below are total: an input that is invalid
// for the current phase is a silent no-op. The attempt has no external
// consistency obligation until submission, so there is nothing useful
// to report for, say, a second option press on an answered question.

// SelectOption locks in an answer for the current question and reveals
// its explanation. Returns true if the selection was recorded. Ignored
// when completed, out of range, or the question already has an answer.
func (s *State) SelectOption(option int) bool {
	q := s.CurrentQuestion()
	if q == nil || option < 0 || option > 3 {
		return false
	}
	if _, locked := s.Selections[q.ID]; locked {
		return false
	}
	s.Selections[q.ID] = option
	s.ShowExplanation = true
	s.Phase = PhaseExplanation
	return true
}

// Advance moves to the next question (Next/Continue and Skip are the
// same transition), clearing transient display state. On the last
// question it completes the attempt.
func (s *State) Advance() {
	if s.Phase == PhaseCompleted {
		return
	}
	s.ShowExplanation = false
	if s.Current+1 >= len(s.Questions) {
		s.complete()
		return
	}
	s.Current++
	s.Phase = PhaseInProgress
}

// GoBack moves to the previous question. Transient display state resets
// but previously locked answers stay recorded.
func (s *State) GoBack() {
	if s.Phase == PhaseCompleted || s.Current == 0 {
		return
	}
	s.Current--
	s.ShowExplanation = false
	s.Phase = PhaseInProgress
}

// ToggleFlag flips the flag on the current question. Valid in any
// non-completed phase; never touches the selection or phase.
func (s *State) ToggleFlag() {
	q := s.CurrentQuestion()
	if q == nil {
		return
	}
	if s.Flagged[q.ID] {
		delete(s.Flagged, q.ID)
	} else {
		s.Flagged[q.ID] = true
	}
}

// Tick consumes one second of the budget. At zero the attempt completes
// regardless of remaining questions; they stay unanswered and classify
// as skipped. Returns true when this tick ended the attempt.
func (s *State) Tick() bool {
	if s.Phase == PhaseCompleted || !s.Timed() {
		return false
	}
	if s.Remaining > 0 {
		s.Remaining--
	}
	if s.Remaining <= 0 {
		s.complete()
		return true
	}
	return false
}

// Finish is the explicit manual submission trigger.
func (s *State) Finish() {
	if s.Phase == PhaseCompleted {
		return
	}
	s.complete()
}

func (s *State) complete() {
	s.Phase = PhaseCompleted
	s.ShowExplanation = false
}

// Completed reports whether the attempt reached its terminal phase.
func (s *State) Completed() bool {
	return s.Phase == PhaseCompleted
}

// Entries converts the recorded answers and flags into progress entries
// for submission, one per question in sequence order. Unanswered,
// unflagged questions are included with a nil selection so the server
// sees the full sequence.
func (s *State) Entries() []progress.Entry {
	out := make([]progress.Entry, 0, len(s.Questions))
	for _, q := range s.Questions {
		e := progress.Entry{QuestionID: q.ID, Flagged: s.Flagged[q.ID]}
		if opt, ok := s.Selections[q.ID]; ok {
			sel := opt
			e.SelectedOption = &sel
		}
		out = append(out, e)
	}
	return out
}
