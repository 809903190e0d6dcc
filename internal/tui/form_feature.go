package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"go-folio/internal/service"
	"go-folio/models"
)

const (
	featureFieldTitle = iota
	featureFieldDescription
	featureFieldIcon
	featureFieldOrderIndex
	featureFieldCount
)

// formFeature creates or edits one landing-page feature card.
type formFeature struct {
	ctx      context.Context
	features service.ClientFeatureService

	id      int64
	editing bool
	inputs  []textinput.Model
	focus   int

	submitting bool
	errMsg     string
}

func newFormFeature(ctx context.Context, features service.ClientFeatureService, feature *models.Feature) *formFeature {
	inputs := make([]textinput.Model, featureFieldCount)
	inputs[featureFieldTitle] = newFormInput("title", 40)
	inputs[featureFieldDescription] = newFormInput("description", 60)
	inputs[featureFieldIcon] = newFormInput("icon", 20)
	inputs[featureFieldOrderIndex] = newFormInput("0", 5)
	inputs[featureFieldTitle].Focus()

	m := &formFeature{ctx: ctx, features: features, inputs: inputs}
	if feature == nil {
		return m
	}

	m.editing = true
	m.id = feature.ID
	m.inputs[featureFieldTitle].SetValue(feature.Title)
	m.inputs[featureFieldDescription].SetValue(feature.Description)
	m.inputs[featureFieldIcon].SetValue(feature.Icon)
	m.inputs[featureFieldOrderIndex].SetValue(strconv.Itoa(feature.OrderIndex))
	return m
}

func (m *formFeature) update(msg tea.Msg) (resourceForm, tea.Cmd) {
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
			m.focus = cycleFocus(m.inputs, m.focus, 1)
			return m, nil
		case "shift+tab":
			m.focus = cycleFocus(m.inputs, m.focus, -1)
			return m, nil
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *formFeature) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if strings.TrimSpace(m.inputs[featureFieldTitle].Value()) == "" {
		m.errMsg = "Title is required"
		return nil
	}

	orderIndex := 0
	if raw := strings.TrimSpace(m.inputs[featureFieldOrderIndex].Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			m.errMsg = "Order must be a number"
			return nil
		}
		orderIndex = parsed
	}

	m.errMsg = ""
	m.submitting = true

	feature := models.Feature{
		Title:       strings.TrimSpace(m.inputs[featureFieldTitle].Value()),
		Description: strings.TrimSpace(m.inputs[featureFieldDescription].Value()),
		Icon:        strings.TrimSpace(m.inputs[featureFieldIcon].Value()),
		OrderIndex:  orderIndex,
	}

	ctx, features, id, editing := m.ctx, m.features, m.id, m.editing
	return func() tea.Msg {
		var err error
		if editing {
			_, err = features.Update(ctx, id, feature)
		} else {
			_, err = features.Create(ctx, feature)
		}
		return savedMsg{err: err}
	}
}

func (m *formFeature) view() string {
	title := "New feature"
	if m.editing {
		title = "Edit feature: " + m.inputs[featureFieldTitle].Value()
	}

	out := title + "\n\n"
	out += "Title:       [" + m.inputs[featureFieldTitle].View() + "]\n"
	out += "Description: [" + m.inputs[featureFieldDescription].View() + "]\n"
	out += "Icon:        [" + m.inputs[featureFieldIcon].View() + "]\n"
	out += "Order:       [" + m.inputs[featureFieldOrderIndex].View() + "]\n\n"

	if m.submitting {
		out += "[Saving...]\n"
	}
	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}

	out += "esc cancel  tab next field  enter save"
	return out
}
