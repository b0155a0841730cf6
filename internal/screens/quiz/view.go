package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adesai/prepdeck/internal/ui/components"
	"github.com/adesai/prepdeck/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.state == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n" + s.spinner.View())
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	q := s.state.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Attempt progress bar across the question sequence.
	bar := components.ProgressBar{
		Percent: float64(s.state.Current) / float64(len(s.state.Questions)),
		Width:   width - 8,
	}
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	if s.state.CurrentFlagged() {
		b.WriteString(theme.Flagged.Render("  ⚑ flagged for review"))
		b.WriteString("\n\n")
	}

	questionStyle := lipgloss.NewStyle().
		Width(width - 8).
		PaddingLeft(4).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(s.options.View()))

	if s.state.ShowExplanation && q.Explanation != "" {
		b.WriteString("\n")
		expl := theme.Card.Width(width - 12).Render(
			theme.Hint.Render("Explanation") + "\n" +
				lipgloss.NewStyle().Foreground(theme.Text).Render(q.Explanation))
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(expl))
		b.WriteString("\n")
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	msg := theme.Title.Render("Abandon this attempt?") + "\n\n" +
		theme.Subtitle.Render("Locked-in answers will not be submitted.") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).
			Render("[Y]es    [N]o")
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + msg)
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" +
			theme.Incorrect.Render("Something went wrong") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(errMsg) + "\n\n" +
			theme.Hint.Render("press any key to go back"))
}
