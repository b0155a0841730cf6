// Package quiz is the live attempt screen: it fetches the catalog,
// drives the attempt state machine from key input and the countdown,
// and hands off to the summary screen on completion.
package quiz

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/adesai/prepdeck/internal/api"
	"github.com/adesai/prepdeck/internal/attempt"
	"github.com/adesai/prepdeck/internal/catalog"
	"github.com/adesai/prepdeck/internal/router"
	"github.com/adesai/prepdeck/internal/screen"
	"github.com/adesai/prepdeck/internal/screens/summary"
	"github.com/adesai/prepdeck/internal/store"
	"github.com/adesai/prepdeck/internal/ui/components"
	"github.com/adesai/prepdeck/internal/ui/layout"
)

// quizQuestionBudget is the per-question time allowance for chapter
// quizzes. Mock exams use the course's own duration instead.
const quizQuestionBudget = time.Minute

// defaultExamDuration applies when a course does not declare one.
const defaultExamDuration = 90 * time.Minute

// QuizScreen implements screen.Screen for an active attempt.
type QuizScreen struct {
	client   *api.Client
	attempts store.AttemptRepo

	course catalog.Course
	mode   attempt.Mode

	state      *attempt.State
	courseName string
	options    components.OptionList
	spinner    components.Spinner

	showQuitConfirm bool
	errMsg          string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given course and mode.
func New(client *api.Client, attempts store.AttemptRepo, course catalog.Course, mode attempt.Mode) *QuizScreen {
	return &QuizScreen{
		client:   client,
		attempts: attempts,
		course:   course,
		mode:     mode,
		spinner:  components.NewSpinner("Loading questions..."),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.fetchCatalog(), s.spinner.Init())
}

func (s *QuizScreen) Title() string {
	if s.mode == attempt.ModeExam {
		return "Mock Exam"
	}
	return "Quiz"
}

// Status renders the header countdown and running score.
func (s *QuizScreen) Status() string {
	if s.state == nil {
		return ""
	}
	n := len(s.state.Selections)
	if !s.state.Timed() {
		return fmt.Sprintf("Q %d/%d  answered %d", s.state.Current+1, len(s.state.Questions), n)
	}
	mins := s.state.Remaining / 60
	secs := s.state.Remaining % 60
	return fmt.Sprintf("Q %d/%d  %d:%02d", s.state.Current+1, len(s.state.Questions), mins, secs)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon attempt"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.state.ShowExplanation {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "F", Description: "Flag"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "S", Description: "Skip"},
		{Key: "P", Description: "Previous"},
		{Key: "F", Description: "Flag"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogReadyMsg:
		return s.handleCatalogReady(msg)

	case timerTickMsg:
		return s.handleTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state == nil {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// fetchCatalog loads the question set for this attempt's mode.
func (s *QuizScreen) fetchCatalog() tea.Cmd {
	courseID := s.course.ID
	mode := api.ModeChapters
	if s.mode == attempt.ModeExam {
		mode = api.ModeFull
	}
	return func() tea.Msg {
		cat, err := s.client.Catalog(context.Background(), courseID, mode)
		return catalogReadyMsg{CourseID: courseID, Catalog: cat, Err: err}
	}
}

func (s *QuizScreen) handleCatalogReady(msg catalogReadyMsg) (screen.Screen, tea.Cmd) {
	// Stale-response guard: a fetch issued for another course must not
	// seed this attempt.
	if msg.CourseID != s.course.ID {
		return s, nil
	}
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	questions := msg.Catalog.Flatten()
	if len(questions) == 0 {
		s.errMsg = "course has no questions"
		return s, nil
	}

	budget := s.budgetFor(len(questions))
	s.state = attempt.New(uuid.New().String(), s.course.ID, s.mode, questions, budget)
	s.courseName = msg.Catalog.Name
	if s.courseName == "" {
		s.courseName = s.course.Name
	}
	s.resetOptions()

	if s.state.Timed() {
		return s, tickCmd()
	}
	return s, nil
}

func (s *QuizScreen) budgetFor(questionCount int) time.Duration {
	if s.mode == attempt.ModeExam {
		if s.course.DurationMins > 0 {
			return time.Duration(s.course.DurationMins) * time.Minute
		}
		return defaultExamDuration
	}
	return time.Duration(questionCount) * quizQuestionBudget
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Completed() {
		return s, nil
	}
	if s.state.Tick() {
		// Budget exhausted: forced submission, remaining questions stay
		// skipped.
		return s.finishAttempt()
	}
	return s, tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopMsg{} }
	}

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	if s.state == nil {
		if key == "esc" {
			return s, func() tea.Msg { return router.PopMsg{} }
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showQuitConfirm = true
		return s, nil
	case "f":
		s.state.ToggleFlag()
		return s, nil
	case "enter":
		// An answered question (including one revisited via Previous)
		// advances; an unanswered one locks in the cursor's option.
		if s.state.Answered() {
			return s.advance()
		}
		return s.selectOption(s.options.Cursor)
	case "s", "n", "right":
		return s.advance()
	case "p", "left":
		s.state.GoBack()
		s.resetOptions()
		return s, nil
	case "1", "2", "3", "4":
		return s.selectOption(int(key[0] - '1'))
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// selectOption locks in an answer. The state machine rejects a second
// selection on an answered question, so the option list only locks
// when the state actually recorded the pick.
func (s *QuizScreen) selectOption(option int) (screen.Screen, tea.Cmd) {
	if s.state.SelectOption(option) {
		s.options = s.options.Lock(option)
	}
	return s, nil
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.state.Advance()
	if s.state.Completed() {
		return s.finishAttempt()
	}
	s.resetOptions()
	return s, nil
}

// finishAttempt wraps up and replaces this screen with the summary,
// which owns history persistence and server submission.
func (s *QuizScreen) finishAttempt() (screen.Screen, tea.Cmd) {
	s.state.Finish()
	result := attempt.BuildResult(s.state, s.courseName)
	sub := api.AttemptSubmission{
		AttemptID: s.state.ID,
		Mode:      string(s.mode),
		TimedOut:  result.TimedOut,
		Questions: s.state.Entries(),
	}
	next := summary.New(s.client, s.attempts, result, sub)
	return s, func() tea.Msg { return router.ReplaceMsg{Screen: next} }
}

// resetOptions rebuilds the option list for the current question,
// relocking it if the question already has a recorded answer.
func (s *QuizScreen) resetOptions() {
	q := s.state.CurrentQuestion()
	if q == nil {
		return
	}
	s.options = components.NewOptionList(q.Options(), q.CorrectOption)
	if sel := s.state.CurrentSelection(); sel != nil {
		s.options = s.options.Lock(*sel)
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
