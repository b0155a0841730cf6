// Package screen defines the contract every application screen meets.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/adesai/prepdeck/internal/ui/layout"
)

// Screen is a routable application screen.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider lets a screen supply custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen supply the header's right-hand status
// segment (countdown, score).
type StatusProvider interface {
	Status() string
}
