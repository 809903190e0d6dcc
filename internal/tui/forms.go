package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// resourceForm is one create-or-edit form of the dashboard. The main loop
// renders the form, forwards key events, and leaves the screen when a
// [savedMsg] without error arrives. Submission is dispatched by the form
// itself so each form owns its validation.
type resourceForm interface {
	update(msg tea.Msg) (resourceForm, tea.Cmd)
	view() string
}

// newFormInput builds a textinput with the dashboard's defaults.
func newFormInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = width
	return in
}

// cycleFocus moves focus across inputs by delta and returns the new index.
func cycleFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
