package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"go-folio/internal/service"
	"go-folio/models"
)

const (
	experienceFieldCompany = iota
	experienceFieldPosition
	experienceFieldPeriod
	experienceFieldDescription
	experienceFieldCount
)

// formExperience creates or edits one work-history entry. Achievements are
// edited one per line in a textarea and split back into the ordered list on
// save; enter inside the textarea inserts a newline, so saving is ctrl+s.
type formExperience struct {
	ctx        context.Context
	experience service.ClientExperienceService

	id      int64
	editing bool

	inputs       []textinput.Model
	achievements textarea.Model

	// focus runs over the inputs first; len(inputs) means the textarea.
	focus int

	submitting bool
	errMsg     string
}

func newFormExperience(ctx context.Context, experience service.ClientExperienceService, entry *models.Experience) *formExperience {
	inputs := make([]textinput.Model, experienceFieldCount)
	inputs[experienceFieldCompany] = newFormInput("company", 40)
	inputs[experienceFieldPosition] = newFormInput("position", 40)
	inputs[experienceFieldPeriod] = newFormInput("2020 - 2022", 20)
	inputs[experienceFieldDescription] = newFormInput("description", 60)
	inputs[experienceFieldCompany].Focus()

	achievements := textarea.New()
	achievements.Placeholder = "one achievement per line"
	achievements.SetWidth(60)
	achievements.SetHeight(5)

	m := &formExperience{ctx: ctx, experience: experience, inputs: inputs, achievements: achievements}
	if entry == nil {
		return m
	}

	m.editing = true
	m.id = entry.ID
	m.inputs[experienceFieldCompany].SetValue(entry.Company)
	m.inputs[experienceFieldPosition].SetValue(entry.Position)
	m.inputs[experienceFieldPeriod].SetValue(entry.Period)
	m.inputs[experienceFieldDescription].SetValue(entry.Description)
	m.achievements.SetValue(joinLines(entry.Achievements))
	return m
}

func (m *formExperience) update(msg tea.Msg) (resourceForm, tea.Cmd) {
	if result, ok := msg.(savedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.moveFocus(1)
			return m, nil
		case "shift+tab":
			m.moveFocus(-1)
			return m, nil
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.focus < len(m.inputs) {
				return m, m.submit()
			}
			// enter inside the textarea falls through and inserts a newline
		}
	}

	var cmd tea.Cmd
	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	} else {
		m.achievements, cmd = m.achievements.Update(msg)
	}
	return m, cmd
}

func (m *formExperience) moveFocus(delta int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	} else {
		m.achievements.Blur()
	}

	fields := len(m.inputs) + 1
	m.focus = (m.focus + delta + fields) % fields

	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	} else {
		m.achievements.Focus()
	}
}

func (m *formExperience) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if strings.TrimSpace(m.inputs[experienceFieldCompany].Value()) == "" ||
		strings.TrimSpace(m.inputs[experienceFieldPosition].Value()) == "" {
		m.errMsg = "Company and position are required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	entry := models.Experience{
		Company:      strings.TrimSpace(m.inputs[experienceFieldCompany].Value()),
		Position:     strings.TrimSpace(m.inputs[experienceFieldPosition].Value()),
		Period:       strings.TrimSpace(m.inputs[experienceFieldPeriod].Value()),
		Description:  strings.TrimSpace(m.inputs[experienceFieldDescription].Value()),
		Achievements: splitLines(m.achievements.Value()),
	}

	ctx, experience, id, editing := m.ctx, m.experience, m.id, m.editing
	return func() tea.Msg {
		var err error
		if editing {
			_, err = experience.Update(ctx, id, entry)
		} else {
			_, err = experience.Create(ctx, entry)
		}
		return savedMsg{err: err}
	}
}

func (m *formExperience) view() string {
	title := "New experience entry"
	if m.editing {
		title = "Edit experience: " + m.inputs[experienceFieldCompany].Value()
	}

	out := title + "\n\n"
	out += "Company:      [" + m.inputs[experienceFieldCompany].View() + "]\n"
	out += "Position:     [" + m.inputs[experienceFieldPosition].View() + "]\n"
	out += "Period:       [" + m.inputs[experienceFieldPeriod].View() + "]\n"
	out += "Description:  [" + m.inputs[experienceFieldDescription].View() + "]\n"
	out += "Achievements:\n" + m.achievements.View() + "\n\n"

	if m.submitting {
		out += "[Saving...]\n"
	}
	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}

	out += "esc cancel  tab next field  ctrl+s save"
	return out
}
