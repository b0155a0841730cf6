// Package home is the landing screen: the course index with per-course
// shortcuts into quiz, mock exam, and statistics.
package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/adesai/prepdeck/internal/api"
	"github.com/adesai/prepdeck/internal/attempt"
	"github.com/adesai/prepdeck/internal/catalog"
	"github.com/adesai/prepdeck/internal/router"
	"github.com/adesai/prepdeck/internal/screen"
	"github.com/adesai/prepdeck/internal/screens/quiz"
	"github.com/adesai/prepdeck/internal/screens/stats"
	"github.com/adesai/prepdeck/internal/store"
	"github.com/adesai/prepdeck/internal/ui/components"
	"github.com/adesai/prepdeck/internal/ui/layout"
)

type coursesReadyMsg struct {
	Courses []catalog.Course
	Err     error
}

type courseStatsMsg struct {
	Stats map[int]*store.CourseStats
}

// HomeScreen lists the learner's courses.
type HomeScreen struct {
	client   *api.Client
	attempts store.AttemptRepo

	spinner components.Spinner
	menu    components.Menu
	courses []catalog.Course
	stats   map[int]*store.CourseStats
	loaded  bool
	err     error
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(client *api.Client, attempts store.AttemptRepo) *HomeScreen {
	return &HomeScreen{
		client:   client,
		attempts: attempts,
		spinner:  components.NewSpinner("Loading courses..."),
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return tea.Batch(s.fetchCourses(), s.spinner.Init())
}

func (s *HomeScreen) Title() string {
	return "Courses"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	if s.err != nil {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Quiz"},
		{Key: "e", Description: "Mock Exam"},
		{Key: "s", Description: "Statistics"},
	}
}

func (s *HomeScreen) fetchCourses() tea.Cmd {
	client := s.client
	return func() tea.Msg {
		courses, err := client.Courses(context.Background())
		return coursesReadyMsg{Courses: courses, Err: err}
	}
}

// fetchStats pulls local attempt aggregates so the list can show each
// course's best score. Errors here only cost the detail column.
func (s *HomeScreen) fetchStats(courses []catalog.Course) tea.Cmd {
	repo := s.attempts
	return func() tea.Msg {
		out := make(map[int]*store.CourseStats, len(courses))
		if repo == nil {
			return courseStatsMsg{Stats: out}
		}
		for _, c := range courses {
			cs, err := repo.Stats(context.Background(), c.ID)
			if err == nil && cs != nil {
				out[c.ID] = cs
			}
		}
		return courseStatsMsg{Stats: out}
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesReadyMsg:
		if msg.Err != nil {
			s.err = msg.Err
			return s, nil
		}
		s.courses = msg.Courses
		s.loaded = true
		s.rebuildMenu()
		return s, s.fetchStats(msg.Courses)

	case courseStatsMsg:
		s.stats = msg.Stats
		s.rebuildMenu()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.loaded && s.err == nil {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// rebuildMenu regenerates the course menu, preserving the cursor.
func (s *HomeScreen) rebuildMenu() {
	items := make([]components.MenuItem, len(s.courses))
	for i, c := range s.courses {
		course := c
		items[i] = components.MenuItem{
			Label:  c.Name,
			Detail: s.detailFor(c),
			Action: func() tea.Cmd { return s.startAttempt(course, attempt.ModeQuiz) },
		}
	}
	selected := s.menu.Selected
	s.menu = components.NewMenu(items)
	if selected < len(items) {
		s.menu.Selected = selected
	}
}

func (s *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.err != nil {
		if msg.String() == "r" {
			s.err = nil
			s.loaded = false
			return s, tea.Batch(s.fetchCourses(), s.spinner.Init())
		}
		return s, nil
	}
	if !s.loaded {
		return s, nil
	}

	switch msg.String() {
	case "e":
		if c, ok := s.selected(); ok {
			return s, s.startAttempt(c, attempt.ModeExam)
		}
		return s, nil
	case "s":
		if c, ok := s.selected(); ok {
			next := stats.New(s.client, c)
			return s, func() tea.Msg { return router.PushMsg{Screen: next} }
		}
		return s, nil
	case "r":
		s.loaded = false
		return s, tea.Batch(s.fetchCourses(), s.spinner.Init())
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) startAttempt(c catalog.Course, mode attempt.Mode) tea.Cmd {
	next := quiz.New(s.client, s.attempts, c, mode)
	return func() tea.Msg { return router.PushMsg{Screen: next} }
}

func (s *HomeScreen) selected() (catalog.Course, bool) {
	if !s.loaded || len(s.courses) == 0 || s.menu.Selected >= len(s.courses) {
		return catalog.Course{}, false
	}
	return s.courses[s.menu.Selected], true
}

// detailFor builds the right-hand column for a course row.
func (s *HomeScreen) detailFor(c catalog.Course) string {
	detail := fmt.Sprintf("%d questions", c.TotalQuestions)
	if cs, ok := s.stats[c.ID]; ok && cs.Attempts > 0 {
		detail = fmt.Sprintf("best %d%% · %s", cs.BestAccuracy, detail)
	}
	return detail
}
