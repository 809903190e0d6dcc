package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"go-folio/internal/service"
	"go-folio/models"
)

// Input order of the project form.
const (
	projectFieldTitle = iota
	projectFieldEmoji
	projectFieldDescription
	projectFieldGithubURL
	projectFieldDemoURL
	projectFieldTechnologies
	projectFieldCount
)

// formProject creates or edits one portfolio project. Technologies are edited
// as comma-separated text and split back into the ordered list on save.
type formProject struct {
	ctx      context.Context
	projects service.ClientProjectService

	id       int64
	editing  bool
	inputs   []textinput.Model
	featured bool
	focus    int

	submitting bool
	errMsg     string
}

func newFormProject(ctx context.Context, projects service.ClientProjectService, project *models.Project) *formProject {
	inputs := make([]textinput.Model, projectFieldCount)
	inputs[projectFieldTitle] = newFormInput("title", 40)
	inputs[projectFieldEmoji] = newFormInput("emoji", 4)
	inputs[projectFieldDescription] = newFormInput("description", 60)
	inputs[projectFieldGithubURL] = newFormInput("https://github.com/...", 60)
	inputs[projectFieldDemoURL] = newFormInput("https://...", 60)
	inputs[projectFieldTechnologies] = newFormInput("React, Node.js, Go", 60)
	inputs[projectFieldTitle].Focus()

	m := &formProject{ctx: ctx, projects: projects, inputs: inputs}
	if project == nil {
		return m
	}

	m.editing = true
	m.id = project.ID
	m.featured = project.Featured
	m.inputs[projectFieldTitle].SetValue(project.Title)
	m.inputs[projectFieldEmoji].SetValue(project.Emoji)
	m.inputs[projectFieldDescription].SetValue(project.Description)
	m.inputs[projectFieldGithubURL].SetValue(project.GithubURL)
	m.inputs[projectFieldDemoURL].SetValue(project.DemoURL)
	m.inputs[projectFieldTechnologies].SetValue(joinCommaList(project.Technologies))
	return m
}

func (m *formProject) update(msg tea.Msg) (resourceForm, tea.Cmd) {
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
		case "ctrl+f":
			m.featured = !m.featured
			return m, nil
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *formProject) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if strings.TrimSpace(m.inputs[projectFieldTitle].Value()) == "" {
		m.errMsg = "Title is required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	project := models.Project{
		Title:        strings.TrimSpace(m.inputs[projectFieldTitle].Value()),
		Emoji:        strings.TrimSpace(m.inputs[projectFieldEmoji].Value()),
		Description:  strings.TrimSpace(m.inputs[projectFieldDescription].Value()),
		GithubURL:    strings.TrimSpace(m.inputs[projectFieldGithubURL].Value()),
		DemoURL:      strings.TrimSpace(m.inputs[projectFieldDemoURL].Value()),
		Featured:     m.featured,
		Technologies: splitCommaList(m.inputs[projectFieldTechnologies].Value()),
	}

	ctx, projects, id, editing := m.ctx, m.projects, m.id, m.editing
	return func() tea.Msg {
		var err error
		if editing {
			_, err = projects.Update(ctx, id, project)
		} else {
			_, err = projects.Create(ctx, project)
		}
		return savedMsg{err: err}
	}
}

func (m *formProject) view() string {
	title := "New project"
	if m.editing {
		title = "Edit project: " + m.inputs[projectFieldTitle].Value()
	}

	featured := "[ ]"
	if m.featured {
		featured = "[x]"
	}

	out := title + "\n\n"
	out += "Title:        [" + m.inputs[projectFieldTitle].View() + "]\n"
	out += "Emoji:        [" + m.inputs[projectFieldEmoji].View() + "]\n"
	out += "Description:  [" + m.inputs[projectFieldDescription].View() + "]\n"
	out += "GitHub URL:   [" + m.inputs[projectFieldGithubURL].View() + "]\n"
	out += "Demo URL:     [" + m.inputs[projectFieldDemoURL].View() + "]\n"
	out += "Technologies: [" + m.inputs[projectFieldTechnologies].View() + "]\n"
	out += "Featured:     " + featured + "\n\n"

	if m.submitting {
		out += "[Saving...]\n"
	}
	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}

	out += "esc cancel  tab next field  ctrl+f toggle featured  enter save"
	return out
}
