package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adesai/prepdeck/internal/ui/theme"
)

// OptionList renders a question's four answer options with cursor
// navigation. Once an answer is locked the cursor disappears and the
// list recolors to show the correct and chosen options; further key
// input is ignored, which is the screen-side half of the answer
// lockout.
type OptionList struct {
	Options      [4]string
	CorrectIndex int
	Cursor       int
	Locked       bool
	ChosenIndex  int
}

// NewOptionList creates an unanswered option list.
func NewOptionList(options [4]string, correctIndex int) OptionList {
	return OptionList{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Lock marks the list answered with the given choice.
func (o OptionList) Lock(chosen int) OptionList {
	o.Locked = true
	o.ChosenIndex = chosen
	return o
}

// Update handles cursor movement. Selection itself is owned by the
// screen so the attempt state stays the single source of truth.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}
	return o, nil
}

var optionLabels = [4]string{"A", "B", "C", "D"}

// View renders the option rows.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if !o.Locked && i == o.Cursor {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabels[i], opt)

		switch {
		case o.Locked && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Locked && i == o.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Locked:
			s += theme.Skipped.Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
