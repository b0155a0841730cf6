// Package summary shows the wrap-up of a completed attempt and owns
// its persistence: local history first, then server submission. Either
// failing leaves the on-screen summary intact.
package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/prepdeck/internal/api"
	"github.com/adesai/prepdeck/internal/attempt"
	"github.com/adesai/prepdeck/internal/router"
	"github.com/adesai/prepdeck/internal/screen"
	"github.com/adesai/prepdeck/internal/store"
	"github.com/adesai/prepdeck/internal/ui/components"
	"github.com/adesai/prepdeck/internal/ui/layout"
	"github.com/adesai/prepdeck/internal/ui/theme"
)

type savedMsg struct{ Err error }

type submittedMsg struct{ Err error }

// SummaryScreen displays a finished attempt.
type SummaryScreen struct {
	client   *api.Client
	attempts store.AttemptRepo
	result   *attempt.Result
	sub      api.AttemptSubmission

	saveErr   error
	submitted bool
	submitErr error
	pending   int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen over a completed attempt.
func New(client *api.Client, attempts store.AttemptRepo, result *attempt.Result, sub api.AttemptSubmission) *SummaryScreen {
	return &SummaryScreen{
		client:   client,
		attempts: attempts,
		result:   result,
		sub:      sub,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	s.pending = 2
	return tea.Batch(s.saveHistory(), s.submitAttempt())
}

func (s *SummaryScreen) Title() string {
	return "Attempt Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) saveHistory() tea.Cmd {
	r := s.result
	rec := store.AttemptRecord{
		ID:              r.AttemptID,
		CourseID:        r.CourseID,
		CourseName:      r.CourseName,
		Mode:            string(r.Mode),
		TotalQuestions:  r.Summary.TotalQuestions,
		CorrectCount:    r.Summary.CorrectCount,
		IncorrectCount:  r.Summary.IncorrectCount,
		FlaggedCount:    r.Summary.FlaggedCount,
		SkippedCount:    r.Summary.SkippedCount,
		AccuracyPercent: r.Summary.AccuracyPercent,
		DurationSecs:    int(r.Duration.Seconds()),
		TimedOut:        r.TimedOut,
	}
	repo := s.attempts
	return func() tea.Msg {
		if repo == nil {
			return savedMsg{}
		}
		return savedMsg{Err: repo.Append(context.Background(), rec)}
	}
}

func (s *SummaryScreen) submitAttempt() tea.Cmd {
	client := s.client
	courseID := s.result.CourseID
	sub := s.sub
	duration := s.result.Duration
	return func() tea.Msg {
		if client == nil {
			return submittedMsg{}
		}
		return submittedMsg{Err: client.SubmitAttempt(context.Background(), courseID, sub, duration)}
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.pending--
		s.saveErr = msg.Err
		return s, nil

	case submittedMsg:
		s.pending--
		s.submitErr = msg.Err
		if msg.Err == nil {
			s.submitted = true
			if s.attempts != nil {
				id := s.result.AttemptID
				repo := s.attempts
				return s, func() tea.Msg {
					_ = repo.MarkSubmitted(context.Background(), id)
					return nil
				}
			}
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	var b strings.Builder

	heading := "Quiz complete!"
	if r.Mode == attempt.ModeExam {
		heading = "Mock exam complete!"
	}
	if r.TimedOut {
		heading += "  (time ran out)"
	}
	b.WriteString(theme.Title.Width(width).Render(heading))
	b.WriteString("\n\n")

	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%s · %d:%02d", r.CourseName, mins, secs)))
	b.WriteString("\n\n")

	tiles := components.SummaryTiles(r.Summary, width-8)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tiles))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.syncLine()))
	b.WriteString("\n")

	return b.String()
}

// syncLine reports persistence state: local save and server sync.
func (s *SummaryScreen) syncLine() string {
	switch {
	case s.pending > 0:
		return theme.Hint.Render("Syncing...")
	case s.submitErr != nil:
		return theme.Incorrect.Render("Sync failed: " + s.submitErr.Error())
	case s.saveErr != nil:
		return theme.Incorrect.Render("Could not save local history: " + s.saveErr.Error())
	case s.submitted:
		return theme.Correct.Render("Synced to your account")
	default:
		return ""
	}
}
