package stats

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adesai/prepdeck/internal/progress"
	"github.com/adesai/prepdeck/internal/ui/components"
	"github.com/adesai/prepdeck/internal/ui/theme"
)

// tilesHeight is the vertical space the summary tiles block occupies,
// including its surrounding blank lines.
const tilesHeight = 7

func (s *StatsScreen) View(width, height int) string {
	s.height = height

	switch {
	case s.err != nil:
		return s.renderError(width)
	case s.noHistory:
		return s.renderNoHistory(width)
	case !s.ready:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.spinner.View())
	}
	return s.renderStats(width, height)
}

func (s *StatsScreen) renderError(width int) string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Could not load statistics"))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.err.Error()))
	return b.String()
}

func (s *StatsScreen) renderNoHistory(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("No statistics yet"))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(
		"Complete and submit a quiz for this course to see your statistics here."))
	return b.String()
}

func (s *StatsScreen) renderStats(width, height int) string {
	var b strings.Builder

	tiles := components.SummaryTiles(s.summary, width-8)
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tiles))
	b.WriteString("\n\n")

	visible := s.visibleRows()
	end := min(s.offset+visible, len(s.rows))
	for i := s.offset; i < end; i++ {
		b.WriteString(s.renderRow(i, width))
		b.WriteString("\n")
	}

	if len(s.rows) > visible {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d-%d of %d questions", s.offset+1, end, len(s.rows))))
	}
	return b.String()
}

func (s *StatsScreen) renderRow(i, width int) string {
	row := s.rows[i]
	badge := statusBadge(row.Status)

	text := row.Question.Text
	avail := width - lipgloss.Width(badge) - 10
	if r := []rune(text); avail > 1 && len(r) > avail {
		text = string(r[:avail-1]) + "…"
	}

	line := fmt.Sprintf("%3d. %s %s", i+1, badge, text)
	if i == s.cursor {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}

func statusBadge(st progress.Status) string {
	switch st {
	case progress.StatusCorrect:
		return theme.Correct.Render("[✓]")
	case progress.StatusIncorrect:
		return theme.Incorrect.Render("[✗]")
	case progress.StatusFlagged:
		return theme.Flagged.Render("[⚑]")
	default:
		return theme.Skipped.Render("[–]")
	}
}

// visibleRows is how many question rows fit under the tiles block.
func (s *StatsScreen) visibleRows() int {
	v := s.height - tilesHeight - 2
	if v < 1 {
		return 1
	}
	return v
}
