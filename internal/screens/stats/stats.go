// Package stats reviews the learner's latest submitted attempt for a
// course: per-question statuses reconciled against the live catalog,
// plus the aggregate counts.
package stats

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/adesai/prepdeck/internal/analytics"
	"github.com/adesai/prepdeck/internal/api"
	"github.com/adesai/prepdeck/internal/catalog"
	"github.com/adesai/prepdeck/internal/progress"
	"github.com/adesai/prepdeck/internal/router"
	"github.com/adesai/prepdeck/internal/screen"
	"github.com/adesai/prepdeck/internal/ui/components"
	"github.com/adesai/prepdeck/internal/ui/layout"
)

// StatsScreen loads catalog and analytics concurrently and classifies
// once both have arrived.
type StatsScreen struct {
	client *api.Client
	course catalog.Course

	spinner components.Spinner

	cat       *catalog.Catalog
	gotCat    bool
	payload   *progress.Payload
	gotStats  bool
	noHistory bool

	summary analytics.Summary
	rows    []analytics.Row
	ready   bool

	cursor int
	offset int
	height int

	err error
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)
var _ screen.StatusProvider = (*StatsScreen)(nil)

// New creates the statistics screen for a course.
func New(client *api.Client, course catalog.Course) *StatsScreen {
	return &StatsScreen{
		client:  client,
		course:  course,
		spinner: components.NewSpinner("Loading your statistics..."),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return tea.Batch(s.fetchCatalog(), s.fetchAnalytics(), s.spinner.Init())
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) Status() string {
	return s.course.Name
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.err != nil || s.noHistory {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) fetchCatalog() tea.Cmd {
	client := s.client
	id := s.course.ID
	return func() tea.Msg {
		cat, err := client.Catalog(context.Background(), id, api.ModeFull)
		return catalogReadyMsg{CourseID: id, Catalog: cat, Err: err}
	}
}

func (s *StatsScreen) fetchAnalytics() tea.Cmd {
	client := s.client
	id := s.course.ID
	return func() tea.Msg {
		payload, err := client.LatestAnalytics(context.Background(), id)
		if errors.Is(err, api.ErrNoAnalytics) {
			return analyticsReadyMsg{CourseID: id, None: true}
		}
		if err != nil {
			return analyticsReadyMsg{CourseID: id, Err: err}
		}
		return analyticsReadyMsg{CourseID: id, Payload: payload}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogReadyMsg:
		if msg.CourseID != s.course.ID {
			return s, nil
		}
		if msg.Err != nil {
			s.err = msg.Err
			return s, nil
		}
		s.cat = msg.Catalog
		s.gotCat = true
		s.classify()
		return s, nil

	case analyticsReadyMsg:
		if msg.CourseID != s.course.ID {
			return s, nil
		}
		if msg.Err != nil {
			s.err = msg.Err
			return s, nil
		}
		if msg.None {
			s.noHistory = true
			return s, nil
		}
		s.payload = msg.Payload
		s.gotStats = true
		s.classify()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.ready && s.err == nil && !s.noHistory {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// classify runs once both responses are in. Classification needs the
// catalog for question order and correct answers, and the analytics
// payload for the learner's selections; running it on a partial pair
// would mislabel every question as skipped.
func (s *StatsScreen) classify() {
	if !s.gotCat || !s.gotStats {
		return
	}
	s.summary, s.rows = analytics.Build(s.cat.Flatten(), s.cat.TotalQuestions, s.payload)
	s.ready = true
}

func (s *StatsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "pgup":
		s.cursor = max(0, s.cursor-s.visibleRows())
	case "pgdown":
		s.cursor = min(len(s.rows)-1, s.cursor+s.visibleRows())
	case "g":
		s.cursor = 0
	case "G":
		if len(s.rows) > 0 {
			s.cursor = len(s.rows) - 1
		}
	}
	s.clampOffset()
	return s, nil
}

func (s *StatsScreen) clampOffset() {
	visible := s.visibleRows()
	if visible <= 0 {
		return
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+visible {
		s.offset = s.cursor - visible + 1
	}
}
