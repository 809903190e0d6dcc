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
	profileFieldName = iota
	profileFieldTitle
	profileFieldEmail
	profileFieldPhone
	profileFieldLocation
	profileFieldGithubURL
	profileFieldLinkedinURL
	profileFieldCount
)

// formProfile edits the singleton owner profile. There is no create variant,
// the backend always has exactly one profile row.
type formProfile struct {
	ctx     context.Context
	profile service.ClientProfileService

	inputs []textinput.Model
	bio    textarea.Model
	focus  int

	submitting bool
	errMsg     string
}

func newFormProfile(ctx context.Context, profile service.ClientProfileService, current models.Profile) *formProfile {
	inputs := make([]textinput.Model, profileFieldCount)
	inputs[profileFieldName] = newFormInput("name", 40)
	inputs[profileFieldTitle] = newFormInput("professional title", 50)
	inputs[profileFieldEmail] = newFormInput("email", 40)
	inputs[profileFieldPhone] = newFormInput("phone", 20)
	inputs[profileFieldLocation] = newFormInput("location", 40)
	inputs[profileFieldGithubURL] = newFormInput("https://github.com/...", 60)
	inputs[profileFieldLinkedinURL] = newFormInput("https://linkedin.com/in/...", 60)
	inputs[profileFieldName].Focus()

	inputs[profileFieldName].SetValue(current.Name)
	inputs[profileFieldTitle].SetValue(current.Title)
	inputs[profileFieldEmail].SetValue(current.Email)
	inputs[profileFieldPhone].SetValue(current.Phone)
	inputs[profileFieldLocation].SetValue(current.Location)
	inputs[profileFieldGithubURL].SetValue(current.GithubURL)
	inputs[profileFieldLinkedinURL].SetValue(current.LinkedinURL)

	bio := textarea.New()
	bio.Placeholder = "about text"
	bio.SetWidth(60)
	bio.SetHeight(6)
	bio.SetValue(current.Bio)

	return &formProfile{ctx: ctx, profile: profile, inputs: inputs, bio: bio}
}

func (m *formProfile) update(msg tea.Msg) (resourceForm, tea.Cmd) {
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
		}
	}

	var cmd tea.Cmd
	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	} else {
		m.bio, cmd = m.bio.Update(msg)
	}
	return m, cmd
}

func (m *formProfile) moveFocus(delta int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	} else {
		m.bio.Blur()
	}

	fields := len(m.inputs) + 1
	m.focus = (m.focus + delta + fields) % fields

	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	} else {
		m.bio.Focus()
	}
}

func (m *formProfile) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if strings.TrimSpace(m.inputs[profileFieldName].Value()) == "" {
		m.errMsg = "Name is required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	profile := models.Profile{
		Name:        strings.TrimSpace(m.inputs[profileFieldName].Value()),
		Title:       strings.TrimSpace(m.inputs[profileFieldTitle].Value()),
		Bio:         strings.TrimSpace(m.bio.Value()),
		Email:       strings.TrimSpace(m.inputs[profileFieldEmail].Value()),
		Phone:       strings.TrimSpace(m.inputs[profileFieldPhone].Value()),
		Location:    strings.TrimSpace(m.inputs[profileFieldLocation].Value()),
		GithubURL:   strings.TrimSpace(m.inputs[profileFieldGithubURL].Value()),
		LinkedinURL: strings.TrimSpace(m.inputs[profileFieldLinkedinURL].Value()),
	}

	ctx, svc := m.ctx, m.profile
	return func() tea.Msg {
		_, err := svc.Update(ctx, profile)
		return savedMsg{err: err}
	}
}

func (m *formProfile) view() string {
	out := "Edit profile\n\n"
	out += "Name:      [" + m.inputs[profileFieldName].View() + "]\n"
	out += "Title:     [" + m.inputs[profileFieldTitle].View() + "]\n"
	out += "Email:     [" + m.inputs[profileFieldEmail].View() + "]\n"
	out += "Phone:     [" + m.inputs[profileFieldPhone].View() + "]\n"
	out += "Location:  [" + m.inputs[profileFieldLocation].View() + "]\n"
	out += "GitHub:    [" + m.inputs[profileFieldGithubURL].View() + "]\n"
	out += "LinkedIn:  [" + m.inputs[profileFieldLinkedinURL].View() + "]\n"
	out += "Bio:\n" + m.bio.View() + "\n\n"

	if m.submitting {
		out += "[Saving...]\n"
	}
	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}

	out += "esc cancel  tab next field  ctrl+s save"
	return out
}
