package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adesai/prepdeck/internal/ui/theme"
)

func (s *HomeScreen) View(width, height int) string {
	switch {
	case s.err != nil:
		return s.renderError(width)
	case !s.loaded:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.spinner.View())
	case len(s.courses) == 0:
		return theme.Hint.Width(width).Align(lipgloss.Center).Render(
			"No courses on your account yet.")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Your courses"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View(width))

	if c, ok := s.selected(); ok && c.Description != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  " + c.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HomeScreen) renderError(width int) string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Could not load courses"))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.err.Error()))
	return b.String()
}
