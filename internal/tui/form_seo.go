// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"go-folio/internal/service"
	"go-folio/models"
)

const (
	seoFieldPageName = iota
	seoFieldTitle
	seoFieldDescription
	seoFieldKeywords
	seoFieldOGImage
	seoFieldTwitterImage
	seoFieldCanonicalURL
	seoFieldCount
)

// formSEO creates or edits the meta tags of one page. The page name is the
// collection key: on edit it is locked and saving goes through UpdateByPage,
// on create the name is free text and saving upserts.
type formSEO struct {
	ctx context.Context
	seo service.ClientSEOService

	page    string
	editing bool
	inputs  []textinput.Model
	focus   int

	submitting bool
	errMsg     string
}

func newFormSEO(ctx context.Context, seo service.ClientSEOService, setting *models.SEOSetting) *formSEO {
	inputs := make([]textinput.Model, seoFieldCount)
	inputs[seoFieldPageName] = newFormInput("home", 20)
	inputs[seoFieldTitle] = newFormInput("page title", 60)
	inputs[seoFieldDescription] = newFormInput("meta description", 60)
	inputs[seoFieldKeywords] = newFormInput("comma, separated, keywords", 60)
	inputs[seoFieldOGImage] = newFormInput("https://...", 60)
	inputs[seoFieldTwitterImage] = newFormInput("https://...", 60)
	inputs[seoFieldCanonicalURL] = newFormInput("https://...", 60)

	m := &formSEO{ctx: ctx, seo: seo, inputs: inputs}
	if setting == nil {
		m.inputs[seoFieldPageName].Focus()
		m.focus = seoFieldPageName
		return m
	}

	m.editing = true
	m.page = setting.PageName
	m.inputs[seoFieldPageName].SetValue(setting.PageName)
	m.inputs[seoFieldTitle].SetValue(setting.Title)
	m.inputs[seoFieldDescription].SetValue(setting.Description)
	m.inputs[seoFieldKeywords].SetValue(setting.Keywords)
	m.inputs[seoFieldOGImage].SetValue(setting.OGImage)
	m.inputs[seoFieldTwitterImage].SetValue(setting.TwitterImage)
	m.inputs[seoFieldCanonicalURL].SetValue(setting.CanonicalURL)

	// Page name is the key, it cannot change on edit.
	m.inputs[seoFieldTitle].Focus()
	m.focus = seoFieldTitle
	return m
}

func (m *formSEO) update(msg tea.Msg) (resourceForm, tea.Cmd) {
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
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// moveFocus skips the page-name input when editing an existing page.
func (m *formSEO) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	if m.editing && m.focus == seoFieldPageName {
		m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	}
	m.inputs[m.focus].Focus()
}

func (m *formSEO) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	page := m.page
	if !m.editing {
		page = strings.ToLower(strings.TrimSpace(m.inputs[seoFieldPageName].Value()))
		if page == "" {
			m.errMsg = "Page name is required"
			return nil
		}
	}

	m.errMsg = ""
	m.submitting = true

	setting := models.SEOSetting{
		PageName:     page,
		Title:        strings.TrimSpace(m.inputs[seoFieldTitle].Value()),
		Description:  strings.TrimSpace(m.inputs[seoFieldDescription].Value()),
		Keywords:     strings.TrimSpace(m.inputs[seoFieldKeywords].Value()),
		OGImage:      strings.TrimSpace(m.inputs[seoFieldOGImage].Value()),
		TwitterImage: strings.TrimSpace(m.inputs[seoFieldTwitterImage].Value()),
		CanonicalURL: strings.TrimSpace(m.inputs[seoFieldCanonicalURL].Value()),
	}

	ctx, seo, editing := m.ctx, m.seo, m.editing
	return func() tea.Msg {
		var err error
		if editing {
			_, err = seo.UpdateByPage(ctx, setting.PageName, setting)
		} else {
			_, err = seo.Upsert(ctx, setting)
		}
		return savedMsg{err: err}
	}
}

func (m *formSEO) view() string {
	title := "New SEO page"
	if m.editing {
		title = "Edit SEO: " + m.page
	}

	out := title + "\n\n"
	if m.editing {
		out += "Page:          " + m.page + "\n"
	} else {
		out += "Page:          [" + m.inputs[seoFieldPageName].View() + "]\n"
	}
	out += "Title:         [" + m.inputs[seoFieldTitle].View() + "]\n"
	out += "Description:   [" + m.inputs[seoFieldDescription].View() + "]\n"
	out += "Keywords:      [" + m.inputs[seoFieldKeywords].View() + "]\n"
	out += "OG image:      [" + m.inputs[seoFieldOGImage].View() + "]\n"
	out += "Twitter image: [" + m.inputs[seoFieldTwitterImage].View() + "]\n"
	out += "Canonical:     [" + m.inputs[seoFieldCanonicalURL].View() + "]\n\n"

	if m.submitting {
		out += "[Saving...]\n"
	}
	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}

	out += "esc cancel  tab next field  enter save"
	return out
}
