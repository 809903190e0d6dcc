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
	skillFieldCategory = iota
	skillFieldName
	skillFieldLevel
	skillFieldIconURL
	skillFieldColor
	skillFieldCount
)

// formSkill creates or edits one tech-stack skill.
type formSkill struct {
	ctx    context.Context
	skills service.ClientSkillService

	id      int64
	editing bool
	inputs  []textinput.Model
	focus   int

	submitting bool
	errMsg     string
}

func newFormSkill(ctx context.Context, skills service.ClientSkillService, skill *models.Skill) *formSkill {
	inputs := make([]textinput.Model, skillFieldCount)
	inputs[skillFieldCategory] = newFormInput("Languages", 30)
	inputs[skillFieldName] = newFormInput("Go", 30)
	inputs[skillFieldLevel] = newFormInput("0-100", 5)
	inputs[skillFieldIconURL] = newFormInput("https://...", 60)
	inputs[skillFieldColor] = newFormInput("#00ADD8", 10)
	inputs[skillFieldCategory].Focus()

	m := &formSkill{ctx: ctx, skills: skills, inputs: inputs}
	if skill == nil {
		return m
	}

	m.editing = true
	m.id = skill.ID
	m.inputs[skillFieldCategory].SetValue(skill.Category)
	m.inputs[skillFieldName].SetValue(skill.Name)
	m.inputs[skillFieldLevel].SetValue(strconv.Itoa(skill.Level))
	m.inputs[skillFieldIconURL].SetValue(skill.IconURL)
	m.inputs[skillFieldColor].SetValue(skill.Color)
	return m
}

func (m *formSkill) update(msg tea.Msg) (resourceForm, tea.Cmd) {
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

func (m *formSkill) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if strings.TrimSpace(m.inputs[skillFieldCategory].Value()) == "" ||
		strings.TrimSpace(m.inputs[skillFieldName].Value()) == "" {
		m.errMsg = "Category and name are required"
		return nil
	}

	level := 0
	if raw := strings.TrimSpace(m.inputs[skillFieldLevel].Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 100 {
			m.errMsg = "Level must be a number between 0 and 100"
			return nil
		}
		level = parsed
	}

	m.errMsg = ""
	m.submitting = true

	skill := models.Skill{
		Category: strings.TrimSpace(m.inputs[skillFieldCategory].Value()),
		Name:     strings.TrimSpace(m.inputs[skillFieldName].Value()),
		Level:    level,
		IconURL:  strings.TrimSpace(m.inputs[skillFieldIconURL].Value()),
		Color:    strings.TrimSpace(m.inputs[skillFieldColor].Value()),
	}

	ctx, skills, id, editing := m.ctx, m.skills, m.id, m.editing
	return func() tea.Msg {
		var err error
		if editing {
			_, err = skills.Update(ctx, id, skill)
		} else {
			_, err = skills.Create(ctx, skill)
		}
		return savedMsg{err: err}
	}
}

func (m *formSkill) view() string {
	title := "New skill"
	if m.editing {
		title = "Edit skill: " + m.inputs[skillFieldName].Value()
	}

	out := title + "\n\n"
	out += "Category: [" + m.inputs[skillFieldCategory].View() + "]\n"
	out += "Name:     [" + m.inputs[skillFieldName].View() + "]\n"
	out += "Level:    [" + m.inputs[skillFieldLevel].View() + "]\n"
	out += "Icon URL: [" + m.inputs[skillFieldIconURL].View() + "]\n"
	out += "Color:    [" + m.inputs[skillFieldColor].View() + "]\n\n"

	if m.submitting {
		out += "[Saving...]\n"
	}
	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}

	out += "esc cancel  tab next field  enter save"
	return out
}
