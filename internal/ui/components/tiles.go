package components

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/adesai/prepdeck/internal/analytics"
	"github.com/adesai/prepdeck/internal/ui/theme"
)

// SummaryTiles renders the attempt aggregate as a row of labeled tiles.
func SummaryTiles(s analytics.Summary, width int) string {
	tiles := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Correct", strconv.Itoa(s.CorrectCount), theme.Correct},
		{"Incorrect", strconv.Itoa(s.IncorrectCount), theme.Incorrect},
		{"Flagged", strconv.Itoa(s.FlaggedCount), theme.Flagged},
		{"Skipped", strconv.Itoa(s.SkippedCount), theme.Skipped},
		{"Accuracy", fmt.Sprintf("%d%%", s.AccuracyPercent), theme.Selected},
	}

	tileWidth := width/len(tiles) - 2
	if tileWidth < 11 {
		tileWidth = 11
	}

	rendered := make([]string, 0, len(tiles))
	for _, t := range tiles {
		content := t.style.Align(lipgloss.Center).Width(tileWidth - 4).Render(t.value) +
			"\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Align(lipgloss.Center).Width(tileWidth-4).Render(t.label)
		rendered = append(rendered, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(content))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
