package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/prepdeck/internal/ui/theme"
)

// MenuItem is a selectable row with an optional dimmed detail column.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{Items: items, Selected: selected}
}

// Update handles keyboard navigation and selection.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		item := m.Items[m.Selected]
		if !item.Disabled && item.Action != nil {
			return m, item.Action()
		}
	}
	return m, nil
}

// View renders the menu rows with label and detail columns.
func (m Menu) View(width int) string {
	var s string
	for i, item := range m.Items {
		prefix := "  "
		if i == m.Selected {
			prefix = "> "
		}

		labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case item.Disabled:
			labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			labelStyle = theme.Selected
		}

		line := prefix + labelStyle.Render(item.Label)
		if item.Detail != "" {
			gap := width - lipgloss.Width(line) - lipgloss.Width(item.Detail) - 4
			if gap < 2 {
				gap = 2
			}
			line += lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(strings.Repeat(" ", gap) + item.Detail)
		}
		s += line + "\n"
	}
	return s
}
