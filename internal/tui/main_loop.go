// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"go-folio/internal/query"
	"go-folio/internal/service"
	"go-folio/models"
)

type screen int

const (
	screenMenu screen = iota
	screenList
	screenDetail
	screenForm
	screenConfirmDelete
)

type resource int

const (
	resourceProfile resource = iota
	resourceProjects
	resourceExperience
	resourceSkills
	resourceFeatures
	resourceSEO
	resourceInbox
)

func (r resource) String() string {
	switch r {
	case resourceProfile:
		return "Profile"
	case resourceProjects:
		return "Projects"
	case resourceExperience:
		return "Experience"
	case resourceSkills:
		return "Skills"
	case resourceFeatures:
		return "Features"
	case resourceSEO:
		return "SEO"
	case resourceInbox:
		return "Inbox"
	}
	return "Unknown"
}

var menuItems = []resource{
	resourceProfile,
	resourceProjects,
	resourceExperience,
	resourceSkills,
	resourceFeatures,
	resourceSEO,
	resourceInbox,
}

// listRow is one line of a resource list. SEO rows carry the page name in
// key, everything else is addressed by id.
type listRow struct {
	id    int64
	key   string
	title string
}

// detailView is a rendered read screen for one record plus the actions the
// main loop allows on it.
type detailView struct {
	title    string
	body     string
	copyText string
	canEdit  bool
	canCopy  bool

	canDelete bool
	deleteID  int64
}

// mainLoopModel is the dashboard state machine: menu, per-resource list,
// record detail, create-or-edit form, and a delete confirmation overlay.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	queries  *query.Queries

	screen   screen
	resource resource

	menuCursor int

	rows       []listRow
	listCursor int
	loading    bool

	// inbox keeps the full messages behind the inbox rows so the detail
	// screen does not refetch per message.
	inbox []models.ContactMessage

	detail detailView
	form   resourceForm

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, queries *query.Queries) *mainLoopModel {
	return &mainLoopModel{ctx: ctx, services: services, queries: queries}
}

func (m *mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m *mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inboxLoadedMsg:
		if msg.err == nil {
			m.inbox = msg.messages
		}
		return m.Update(msg.rowsLoadedMsg)

	case rowsLoadedMsg:
		// A slower fetch for a screen the user already left is dropped.
		if msg.resource != m.resource || m.screen != screenList {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, query.ErrStale) {
				return m, nil
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.rows = msg.rows
		if m.listCursor >= len(m.rows) {
			m.listCursor = 0
		}
		return m, nil

	case detailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.screen = screenList
			return m, nil
		}
		m.errMsg = ""
		m.detail = msg.detail
		m.screen = screenDetail
		return m, nil

	case formReadyMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.form = msg.form
		m.screen = screenForm
		return m, nil

	case savedMsg:
		if msg.err != nil {
			// The form stays open and shows the error itself.
			if m.form != nil {
				var cmd tea.Cmd
				m.form, cmd = m.form.update(msg)
				return m, cmd
			}
			return m, nil
		}
		m.form = nil
		return m, m.afterWrite("Saved")

	case deletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.screen = screenDetail
			return m, nil
		}
		return m, m.afterWrite("Deleted")

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy to clipboard"
			return m, nil
		}
		m.status = "Email copied"
		return m, clearStatusAfter(3 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.screen == screenForm && m.form != nil {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenList:
		return m.handleListKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	case screenForm:
		if key.Matches(msg, keys.esc) {
			m.form = nil
			m.leaveForm()
			return m, nil
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	case screenConfirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			return m, m.cmdDelete(m.detail.deleteID)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.screen = screenDetail
			return m, nil
		}
	}
	return m, nil
}

func (m *mainLoopModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, keys.down):
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, keys.enter):
		m.resource = menuItems[m.menuCursor]
		if m.resource == resourceProfile {
			m.loading = true
			return m, m.cmdLoadProfileDetail()
		}
		m.screen = screenList
		m.rows = nil
		m.listCursor = 0
		m.loading = true
		return m, m.cmdLoadRows(m.resource)
	}
	return m, nil
}

func (m *mainLoopModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenMenu
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.up):
		if m.listCursor > 0 {
			m.listCursor--
		}
	case key.Matches(msg, keys.down):
		if m.listCursor < len(m.rows)-1 {
			m.listCursor++
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadRows(m.resource)
	case key.Matches(msg, keys.newItem):
		if m.resource == resourceInbox {
			return m, nil
		}
		m.form = m.newForm(nil)
		m.screen = screenForm
		return m, nil
	case key.Matches(msg, keys.enter):
		if len(m.rows) == 0 {
			return m, nil
		}
		row := m.rows[m.listCursor]
		if m.resource == resourceInbox {
			m.detail = m.inboxDetail(row.id)
			m.screen = screenDetail
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoadDetail(m.resource, row)
	}
	return m, nil
}

func (m *mainLoopModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.leaveForm()
		return m, nil
	case key.Matches(msg, keys.edit):
		if !m.detail.canEdit {
			return m, nil
		}
		m.loading = true
		if m.resource == resourceProfile {
			return m, m.cmdOpenProfileForm()
		}
		return m, m.cmdOpenForm(m.resource, m.rows[m.listCursor])
	case key.Matches(msg, keys.delete):
		if m.detail.canDelete {
			m.screen = screenConfirmDelete
		}
		return m, nil
	case key.Matches(msg, keys.copy):
		if !m.detail.canCopy {
			return m, nil
		}
		text := m.detail.copyText
		return m, func() tea.Msg {
			return copiedMsg{err: clipboard.WriteAll(text)}
		}
	}
	return m, nil
}

// leaveForm returns to the screen a form or detail was opened from.
func (m *mainLoopModel) leaveForm() {
	if m.resource == resourceProfile {
		m.screen = screenMenu
		return
	}
	m.screen = screenList
}

// afterWrite runs after a successful save or delete: back to the origin
// screen, refetch, and flash a status line.
func (m *mainLoopModel) afterWrite(status string) tea.Cmd {
	m.status = status
	m.errMsg = ""
	m.leaveForm()
	if m.screen == screenList {
		m.loading = true
		return tea.Batch(m.cmdLoadRows(m.resource), clearStatusAfter(3*time.Second))
	}
	return clearStatusAfter(3 * time.Second)
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ── Commands ──

func (m *mainLoopModel) cmdLoadRows(res resource) tea.Cmd {
	ctx, q := m.ctx, m.queries
	switch res {
	case resourceProjects:
		return func() tea.Msg {
			projects, err := q.Projects.Fetch(ctx)
			rows := make([]listRow, 0, len(projects))
			for _, p := range projects {
				title := p.Title
				if p.Featured {
					title += " *"
				}
				rows = append(rows, listRow{id: p.ID, title: title})
			}
			return rowsLoadedMsg{resource: res, rows: rows, err: err}
		}
	case resourceExperience:
		return func() tea.Msg {
			entries, err := q.Experience.Fetch(ctx)
			rows := make([]listRow, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, listRow{id: e.ID, title: e.Company + ", " + e.Position})
			}
			return rowsLoadedMsg{resource: res, rows: rows, err: err}
		}
	case resourceSkills:
		return func() tea.Msg {
			grouped, err := q.Skills.Fetch(ctx)
			var rows []listRow
			for _, category := range sortedKeys(grouped) {
				for _, s := range grouped[category] {
					rows = append(rows, listRow{id: s.ID, title: category + " / " + s.Name})
				}
			}
			return rowsLoadedMsg{resource: res, rows: rows, err: err}
		}
	case resourceFeatures:
		return func() tea.Msg {
			features, err := q.Features.Fetch(ctx)
			rows := make([]listRow, 0, len(features))
			for _, f := range features {
				rows = append(rows, listRow{id: f.ID, title: f.Title})
			}
			return rowsLoadedMsg{resource: res, rows: rows, err: err}
		}
	case resourceSEO:
		return func() tea.Msg {
			settings, err := q.SEO.Fetch(ctx)
			var rows []listRow
			for _, page := range sortedKeys(settings) {
				rows = append(rows, listRow{key: page, title: page + ": " + valueOrDash(settings[page].Title)})
			}
			return rowsLoadedMsg{resource: res, rows: rows, err: err}
		}
	case resourceInbox:
		return func() tea.Msg {
			messages, err := q.Messages.Fetch(ctx)
			rows := make([]listRow, 0, len(messages))
			for _, msg := range messages {
				rows = append(rows, listRow{
					id:    msg.ID,
					title: fmt.Sprintf("%s  %s (%s)", msg.CreatedAt.Format("2006-01-02"), valueOrDash(msg.Subject), msg.Name),
				})
			}
			return inboxLoadedMsg{rowsLoadedMsg: rowsLoadedMsg{resource: res, rows: rows, err: err}, messages: messages}
		}
	}
	return nil
}

func (m *mainLoopModel) cmdLoadDetail(res resource, row listRow) tea.Cmd {
	ctx, services := m.ctx, m.services
	switch res {
	case resourceProjects:
		return func() tea.Msg {
			p, err := services.ProjectService.Get(ctx, row.id)
			return detailLoadedMsg{detail: projectDetail(p), err: err}
		}
	case resourceExperience:
		return func() tea.Msg {
			e, err := services.ExperienceService.Get(ctx, row.id)
			return detailLoadedMsg{detail: experienceDetail(e), err: err}
		}
	case resourceSkills:
		return func() tea.Msg {
			s, err := services.SkillService.Get(ctx, row.id)
			return detailLoadedMsg{detail: skillDetail(s), err: err}
		}
	case resourceFeatures:
		return func() tea.Msg {
			f, err := services.FeatureService.Get(ctx, row.id)
			return detailLoadedMsg{detail: featureDetail(f), err: err}
		}
	case resourceSEO:
		return func() tea.Msg {
			s, err := services.SEOService.GetByPage(ctx, row.key)
			return detailLoadedMsg{detail: seoDetail(s), err: err}
		}
	}
	return nil
}

func (m *mainLoopModel) cmdLoadProfileDetail() tea.Cmd {
	ctx, q := m.ctx, m.queries
	return func() tea.Msg {
		profile, err := q.Profile.Fetch(ctx)
		return detailLoadedMsg{detail: profileDetail(profile), err: err}
	}
}

func (m *mainLoopModel) cmdOpenProfileForm() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		profile, err := services.ProfileService.Get(ctx)
		if err != nil {
			return formReadyMsg{err: err}
		}
		return formReadyMsg{form: newFormProfile(ctx, services.ProfileService, profile)}
	}
}

func (m *mainLoopModel) cmdOpenForm(res resource, row listRow) tea.Cmd {
	ctx, services := m.ctx, m.services
	switch res {
	case resourceProjects:
		return func() tea.Msg {
			p, err := services.ProjectService.Get(ctx, row.id)
			if err != nil {
				return formReadyMsg{err: err}
			}
			return formReadyMsg{form: newFormProject(ctx, services.ProjectService, &p)}
		}
	case resourceExperience:
		return func() tea.Msg {
			e, err := services.ExperienceService.Get(ctx, row.id)
			if err != nil {
				return formReadyMsg{err: err}
			}
			return formReadyMsg{form: newFormExperience(ctx, services.ExperienceService, &e)}
		}
	case resourceSkills:
		return func() tea.Msg {
			s, err := services.SkillService.Get(ctx, row.id)
			if err != nil {
				return formReadyMsg{err: err}
			}
			return formReadyMsg{form: newFormSkill(ctx, services.SkillService, &s)}
		}
	case resourceFeatures:
		return func() tea.Msg {
			f, err := services.FeatureService.Get(ctx, row.id)
			if err != nil {
				return formReadyMsg{err: err}
			}
			return formReadyMsg{form: newFormFeature(ctx, services.FeatureService, &f)}
		}
	case resourceSEO:
		return func() tea.Msg {
			s, err := services.SEOService.GetByPage(ctx, row.key)
			if err != nil {
				return formReadyMsg{err: err}
			}
			return formReadyMsg{form: newFormSEO(ctx, services.SEOService, &s)}
		}
	}
	return nil
}

// newForm builds an empty create form for the current resource.
func (m *mainLoopModel) newForm(_ *listRow) resourceForm {
	switch m.resource {
	case resourceProjects:
		return newFormProject(m.ctx, m.services.ProjectService, nil)
	case resourceExperience:
		return newFormExperience(m.ctx, m.services.ExperienceService, nil)
	case resourceSkills:
		return newFormSkill(m.ctx, m.services.SkillService, nil)
	case resourceFeatures:
		return newFormFeature(m.ctx, m.services.FeatureService, nil)
	case resourceSEO:
		return newFormSEO(m.ctx, m.services.SEOService, nil)
	}
	return nil
}

func (m *mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx, services, res := m.ctx, m.services, m.resource
	return func() tea.Msg {
		var err error
		switch res {
		case resourceProjects:
			err = services.ProjectService.Delete(ctx, id)
		case resourceExperience:
			err = services.ExperienceService.Delete(ctx, id)
		case resourceSkills:
			err = services.SkillService.Delete(ctx, id)
		case resourceFeatures:
			err = services.FeatureService.Delete(ctx, id)
		}
		return deletedMsg{err: err}
	}
}

func (m *mainLoopModel) inboxDetail(id int64) detailView {
	for _, msg := range m.inbox {
		if msg.ID == id {
			return contactDetail(msg)
		}
	}
	return detailView{title: "Message", body: "Message is no longer available, refresh the inbox."}
}

// ── Detail rendering ──

func profileDetail(p models.Profile) detailView {
	body := "Name:      " + valueOrDash(p.Name) + "\n"
	body += "Title:     " + valueOrDash(p.Title) + "\n"
	body += "Email:     " + valueOrDash(p.Email) + "\n"
	body += "Phone:     " + valueOrDash(p.Phone) + "\n"
	body += "Location:  " + valueOrDash(p.Location) + "\n"
	body += "GitHub:    " + valueOrDash(p.GithubURL) + "\n"
	body += "LinkedIn:  " + valueOrDash(p.LinkedinURL) + "\n"
	body += "Bio:       " + valueOrDash(fitText(p.Bio, 200))
	return detailView{title: "Profile", body: body, canEdit: true}
}

func projectDetail(p models.Project) detailView {
	featured := "no"
	if p.Featured {
		featured = "yes"
	}
	body := "Title:        " + valueOrDash(p.Title) + "\n"
	body += "Emoji:        " + valueOrDash(p.Emoji) + "\n"
	body += "Description:  " + valueOrDash(p.Description) + "\n"
	body += "GitHub:       " + valueOrDash(p.GithubURL) + "\n"
	body += "Demo:         " + valueOrDash(p.DemoURL) + "\n"
	body += "Featured:     " + featured + "\n"
	body += "Technologies: " + valueOrDash(joinCommaList(p.Technologies))
	return detailView{
		title:     "Project: " + p.Title,
		body:      body,
		copyText:  p.GithubURL,
		canCopy:   p.GithubURL != "",
		canEdit:   true,
		canDelete: true,
		deleteID:  p.ID,
	}
}

func experienceDetail(e models.Experience) detailView {
	body := "Company:     " + valueOrDash(e.Company) + "\n"
	body += "Position:    " + valueOrDash(e.Position) + "\n"
	body += "Period:      " + valueOrDash(e.Period) + "\n"
	body += "Description: " + valueOrDash(e.Description) + "\n"
	body += "Achievements:\n"
	if len(e.Achievements) == 0 {
		body += "  -"
	} else {
		for _, a := range e.Achievements {
			body += "  * " + a + "\n"
		}
		body = strings.TrimRight(body, "\n")
	}
	return detailView{title: "Experience: " + e.Company, body: body, canEdit: true, canDelete: true, deleteID: e.ID}
}

func skillDetail(s models.Skill) detailView {
	body := "Category: " + valueOrDash(s.Category) + "\n"
	body += "Name:     " + valueOrDash(s.Name) + "\n"
	body += "Level:    " + strconv.Itoa(s.Level) + "\n"
	body += "Icon URL: " + valueOrDash(s.IconURL) + "\n"
	body += "Color:    " + valueOrDash(s.Color)
	return detailView{title: "Skill: " + s.Name, body: body, canEdit: true, canDelete: true, deleteID: s.ID}
}

func featureDetail(f models.Feature) detailView {
	body := "Title:       " + valueOrDash(f.Title) + "\n"
	body += "Description: " + valueOrDash(f.Description) + "\n"
	body += "Icon:        " + valueOrDash(f.Icon) + "\n"
	body += "Order:       " + strconv.Itoa(f.OrderIndex)
	return detailView{title: "Feature: " + f.Title, body: body, canEdit: true, canDelete: true, deleteID: f.ID}
}

func seoDetail(s models.SEOSetting) detailView {
	body := "Page:          " + valueOrDash(s.PageName) + "\n"
	body += "Title:         " + valueOrDash(s.Title) + "\n"
	body += "Description:   " + valueOrDash(s.Description) + "\n"
	body += "Keywords:      " + valueOrDash(s.Keywords) + "\n"
	body += "OG image:      " + valueOrDash(s.OGImage) + "\n"
	body += "Twitter image: " + valueOrDash(s.TwitterImage) + "\n"
	body += "Canonical:     " + valueOrDash(s.CanonicalURL)
	return detailView{title: "SEO: " + s.PageName, body: body, canEdit: true}
}

func contactDetail(msg models.ContactMessage) detailView {
	body := "From:     " + valueOrDash(msg.Name) + "\n"
	body += "Email:    " + valueOrDash(msg.Email) + "\n"
	body += "Subject:  " + valueOrDash(msg.Subject) + "\n"
	body += "Received: " + msg.CreatedAt.Format("2006-01-02 15:04") + "\n\n"
	body += msg.Message
	return detailView{
		title:    "Message from " + msg.Name,
		body:     body,
		copyText: msg.Email,
		canCopy:  true,
	}
}

// ── Views ──

func (m *mainLoopModel) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenList:
		return m.viewList()
	case screenDetail:
		return m.viewDetail()
	case screenForm:
		return appStyle.Render(renderPage(titleStyle.Render(m.resource.String()), m.form.view(), ""))
	case screenConfirmDelete:
		return m.viewConfirmDelete()
	}
	return ""
}

func (m *mainLoopModel) viewMenu() string {
	var b strings.Builder
	for i, item := range menuItems {
		cursor := "  "
		if i == m.menuCursor {
			cursor = "> "
		}
		b.WriteString(cursor + item.String() + "\n")
	}
	b.WriteString("\n" + m.statusLine())

	hotKeys := "enter: open  L: logout  q: quit"
	return appStyle.Render(renderPage(titleStyle.Render("GO-FOLIO ADMIN"), b.String(), hotKeys))
}

func (m *mainLoopModel) viewList() string {
	var b strings.Builder
	switch {
	case m.loading && len(m.rows) == 0:
		b.WriteString("Loading...\n")
	case len(m.rows) == 0:
		b.WriteString("Nothing here yet.\n")
	default:
		for i, row := range m.rows {
			cursor := "  "
			if i == m.listCursor {
				cursor = "> "
			}
			b.WriteString(cursor + fitText(row.title, 70) + "\n")
		}
	}
	b.WriteString("\n" + m.statusLine())

	hotKeys := "enter: open  r: refresh  esc: back"
	if m.resource != resourceInbox {
		hotKeys = "enter: open  n: new  r: refresh  esc: back"
	}
	return appStyle.Render(renderPage(titleStyle.Render(m.resource.String()), b.String(), hotKeys))
}

func (m *mainLoopModel) viewDetail() string {
	body := m.detail.body + "\n\n" + m.statusLine()

	var actions []string
	if m.detail.canEdit {
		actions = append(actions, "e: edit")
	}
	if m.detail.canDelete {
		actions = append(actions, "d: delete")
	}
	if m.detail.canCopy {
		if m.resource == resourceInbox {
			actions = append(actions, "c: copy email")
		} else {
			actions = append(actions, "c: copy link")
		}
	}
	actions = append(actions, "esc: back")

	return appStyle.Render(renderPage(titleStyle.Render(m.detail.title), body, strings.Join(actions, "  ")))
}

func (m *mainLoopModel) viewConfirmDelete() string {
	prompt := "Delete \"" + m.detail.title + "\"?\n\nThis cannot be undone.\n\n  y: delete  n: cancel"
	return appStyle.Render(overlayBoxStyle.Render(prompt))
}

func (m *mainLoopModel) statusLine() string {
	switch {
	case m.errMsg != "":
		return errorStyle.Render("Error: " + m.errMsg)
	case m.loading:
		return "Loading..."
	case m.status != "":
		return helpStyle.Render(m.status)
	}
	return ""
}
