// Package attempt drives a live quiz or mock-exam attempt: question
// pointer, answer lockout, flagging, explanation reveal, and the
// countdown that forces submission. It owns no UI and no I/O; screens
// feed it input events and render from its state.
package attempt

import (
	"time"

	"github.com/adesai/prepdeck/internal/catalog"
)

// Mode distinguishes a chapter quiz from a timed mock exam.
type Mode string

const (
	ModeQuiz Mode = "quiz"
	ModeExam Mode = "exam"
)

// Phase is the attempt lifecycle phase.
type Phase int

const (
	// PhaseInProgress is the default answering phase.
	PhaseInProgress Phase = iota
	// PhaseExplanation is entered after an answer is locked in, while
	// the explanation for the current question is shown.
	PhaseExplanation
	// PhaseCompleted is terminal: manual finish, running out of
	// questions, or timer expiry.
	PhaseCompleted
)

// State is the ephemeral client-side state of one attempt. It is owned
// exclusively by the active screen; the timer tick is the only
// background mutator and stops with the attempt.
type State struct {
	// ID is the client-generated attempt identifier.
	ID string

	// CourseID ties the attempt to its course for the stale-fetch guard
	// and submission.
	CourseID int

	Mode Mode

	// Questions is the fixed sequence for this attempt.
	Questions []catalog.Question

	// Current is the 0-based pointer into Questions.
	Current int

	// Selections records locked-in answers by question ID. Entries are
	// never removed; GoBack only resets transient display state.
	Selections map[int]int

	// Flagged is the set of flagged question IDs.
	Flagged map[int]bool

	// ShowExplanation is transient display state for the current
	// question, true only in PhaseExplanation.
	ShowExplanation bool

	// Budget is the total countdown budget in seconds, zero for an
	// untimed attempt.
	Budget int

	// Remaining counts down from Budget, one Tick at a time.
	Remaining int

	Phase Phase

	StartedAt time.Time
}

// New creates an attempt over the given question sequence with a fixed
// time budget. A non-positive budget means untimed (Tick never fires).
func New(id string, courseID int, mode Mode, questions []catalog.Question, budget time.Duration) *State {
	return &State{
		ID:         id,
		CourseID:   courseID,
		Mode:       mode,
		Questions:  questions,
		Selections: make(map[int]int),
		Flagged:    make(map[int]bool),
		Budget:     int(budget.Seconds()),
		Remaining:  int(budget.Seconds()),
		Phase:      PhaseInProgress,
		StartedAt:  time.Now(),
	}
}

// Timed reports whether the attempt runs against a countdown.
func (s *State) Timed() bool {
	return s.Budget > 0
}

// CurrentQuestion returns the question under the pointer, or nil once
// the attempt is completed or the sequence is empty.
func (s *State) CurrentQuestion() *catalog.Question {
	if s.Phase == PhaseCompleted || s.Current < 0 || s.Current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Current]
}

// CurrentSelection returns the locked-in option for the current
// question, or nil if it is unanswered.
func (s *State) CurrentSelection() *int {
	q := s.CurrentQuestion()
	if q == nil {
		return nil
	}
	if opt, ok := s.Selections[q.ID]; ok {
		return &opt
	}
	return nil
}

// Answered reports whether the current question has a locked-in answer.
func (s *State) Answered() bool {
	return s.CurrentSelection() != nil
}

// CurrentFlagged reports whether the current question is flagged.
func (s *State) CurrentFlagged() bool {
	q := s.CurrentQuestion()
	return q != nil && s.Flagged[q.ID]
}

// Elapsed returns wall time since the attempt started.
func (s *State) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}
