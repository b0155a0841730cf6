package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/adesai/prepdeck/internal/ui/theme"
)

// Spinner wraps bubbles/spinner for fetch-in-flight states.
type Spinner struct {
	Model   spinner.Model
	Message string
}

// NewSpinner creates a themed spinner with the given message.
func NewSpinner(message string) Spinner {
	m := spinner.New()
	m.Spinner = spinner.Dot
	m.Style = theme.Selected
	return Spinner{Model: m, Message: message}
}

// Init starts the spinner animation.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner with its message.
func (s Spinner) View() string {
	return s.Model.View() + " " + theme.Hint.Render(s.Message)
}
