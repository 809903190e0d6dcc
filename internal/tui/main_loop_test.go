package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-folio/internal/query"
	"go-folio/internal/service"
	"go-folio/internal/store"
	"go-folio/models"
)

// ── Fakes ──

type fakeProfileService struct {
	profile models.Profile
	updated *models.Profile
}

func (f *fakeProfileService) Get(_ context.Context) (models.Profile, error) {
	return f.profile, nil
}

func (f *fakeProfileService) Update(_ context.Context, p models.Profile) (models.Profile, error) {
	f.updated = &p
	return p, nil
}

type fakeProjectService struct {
	projects []models.Project
	created  []models.Project
	updated  map[int64]models.Project
	deleted  []int64
}

func (f *fakeProjectService) List(_ context.Context) ([]models.Project, error) {
	return f.projects, nil
}

func (f *fakeProjectService) Get(_ context.Context, id int64) (models.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, store.ErrNotFound
}

func (f *fakeProjectService) Create(_ context.Context, p models.Project) (models.Project, error) {
	p.ID = int64(len(f.created) + 1)
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeProjectService) Update(_ context.Context, id int64, p models.Project) (models.Project, error) {
	if f.updated == nil {
		f.updated = map[int64]models.Project{}
	}
	p.ID = id
	f.updated[id] = p
	return p, nil
}

func (f *fakeProjectService) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeExperienceService struct {
	entries []models.Experience
}

func (f *fakeExperienceService) List(_ context.Context) ([]models.Experience, error) {
	return f.entries, nil
}

func (f *fakeExperienceService) Get(_ context.Context, id int64) (models.Experience, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Experience{}, store.ErrNotFound
}

func (f *fakeExperienceService) Create(_ context.Context, e models.Experience) (models.Experience, error) {
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeExperienceService) Update(_ context.Context, id int64, e models.Experience) (models.Experience, error) {
	e.ID = id
	return e, nil
}

func (f *fakeExperienceService) Delete(_ context.Context, _ int64) error {
	return nil
}

type fakeSkillService struct {
	grouped models.SkillsByCategory
}

func (f *fakeSkillService) List(_ context.Context) (models.SkillsByCategory, error) {
	return f.grouped, nil
}

func (f *fakeSkillService) Get(_ context.Context, id int64) (models.Skill, error) {
	for _, skills := range f.grouped {
		for _, s := range skills {
			if s.ID == id {
				return s, nil
			}
		}
	}
	return models.Skill{}, store.ErrNotFound
}

func (f *fakeSkillService) Create(_ context.Context, s models.Skill) (models.Skill, error) {
	return s, nil
}

func (f *fakeSkillService) Update(_ context.Context, id int64, s models.Skill) (models.Skill, error) {
	s.ID = id
	return s, nil
}

func (f *fakeSkillService) Delete(_ context.Context, _ int64) error {
	return nil
}

type fakeFeatureService struct {
	features []models.Feature
}

func (f *fakeFeatureService) List(_ context.Context) ([]models.Feature, error) {
	return f.features, nil
}

func (f *fakeFeatureService) Get(_ context.Context, id int64) (models.Feature, error) {
	for _, ft := range f.features {
		if ft.ID == id {
			return ft, nil
		}
	}
	return models.Feature{}, store.ErrNotFound
}

func (f *fakeFeatureService) Create(_ context.Context, ft models.Feature) (models.Feature, error) {
	return ft, nil
}

func (f *fakeFeatureService) Update(_ context.Context, id int64, ft models.Feature) (models.Feature, error) {
	ft.ID = id
	return ft, nil
}

func (f *fakeFeatureService) Delete(_ context.Context, _ int64) error {
	return nil
}

type fakeSEOService struct {
	settings models.SEOSettings
	updated  map[string]models.SEOSetting
	upserted []models.SEOSetting
}

func (f *fakeSEOService) List(_ context.Context) (models.SEOSettings, error) {
	return f.settings, nil
}

func (f *fakeSEOService) GetByPage(_ context.Context, page string) (models.SEOSetting, error) {
	s, ok := f.settings[page]
	if !ok {
		return models.SEOSetting{}, store.ErrNotFound
	}
	return s, nil
}

func (f *fakeSEOService) Upsert(_ context.Context, s models.SEOSetting) (models.SEOSetting, error) {
	f.upserted = append(f.upserted, s)
	return s, nil
}

func (f *fakeSEOService) UpdateByPage(_ context.Context, page string, s models.SEOSetting) (models.SEOSetting, error) {
	if f.updated == nil {
		f.updated = map[string]models.SEOSetting{}
	}
	f.updated[page] = s
	return s, nil
}

type fakeContactService struct {
	messages []models.ContactMessage
}

func (f *fakeContactService) Submit(_ context.Context, _ models.ContactMessage) error {
	return nil
}

func (f *fakeContactService) Messages(_ context.Context) ([]models.ContactMessage, error) {
	return f.messages, nil
}

type dashboardFakes struct {
	profile    *fakeProfileService
	projects   *fakeProjectService
	experience *fakeExperienceService
	skills     *fakeSkillService
	features   *fakeFeatureService
	seo        *fakeSEOService
	contact    *fakeContactService
}

func newDashboard(t *testing.T) (*mainLoopModel, *dashboardFakes) {
	t.Helper()

	fakes := &dashboardFakes{
		profile: &fakeProfileService{profile: models.Profile{Name: "Ada", Title: "Engineer"}},
		projects: &fakeProjectService{projects: []models.Project{
			{ID: 1, Title: "Portfolio Site", Featured: true, Technologies: []string{"Go", "React"}},
			{ID: 2, Title: "CLI Tool"},
		}},
		experience: &fakeExperienceService{entries: []models.Experience{
			{ID: 3, Company: "Acme", Position: "Developer", Achievements: []string{"Shipped v2"}},
		}},
		skills: &fakeSkillService{grouped: models.SkillsByCategory{
			"Languages": {{ID: 4, Category: "Languages", Name: "Go", Level: 90}},
		}},
		features: &fakeFeatureService{features: []models.Feature{{ID: 5, Title: "Backend"}}},
		seo: &fakeSEOService{settings: models.SEOSettings{
			"home": {PageName: "home", Title: "Welcome"},
		}},
		contact: &fakeContactService{messages: []models.ContactMessage{
			{ID: 6, Name: "Visitor", Email: "visitor@example.com", Subject: "Hello", Message: "Hi there", CreatedAt: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)},
		}},
	}

	services := &service.ClientServices{
		ProfileService:    fakes.profile,
		ProjectService:    fakes.projects,
		ExperienceService: fakes.experience,
		SkillService:      fakes.skills,
		FeatureService:    fakes.features,
		SEOService:        fakes.seo,
		ContactService:    fakes.contact,
	}

	model := newMainLoopModel(context.Background(), services, query.NewQueries(services))
	return model, fakes
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// deliver runs a command synchronously and feeds its message back in.
func deliver(t *testing.T, m *mainLoopModel, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := m.Update(cmd())
	for next != nil {
		msg := next()
		if msg == nil {
			return
		}
		if _, ok := msg.(clearStatusMsg); ok {
			return
		}
		_, next = m.Update(msg)
	}
}

// ── Menu and lists ──

// TestMainLoop_OpenProjectsList checks that selecting Projects in the menu
// loads the list and marks featured projects.
func TestMainLoop_OpenProjectsList(t *testing.T) {
	m, _ := newDashboard(t)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenList, m.screen)
	require.Equal(t, resourceProjects, m.resource)

	_, _ = m.Update(cmd())
	require.Len(t, m.rows, 2)
	assert.Equal(t, "Portfolio Site *", m.rows[0].title)
	assert.Equal(t, "CLI Tool", m.rows[1].title)
	assert.False(t, m.loading)
}

// TestMainLoop_ProfileOpensDetail checks that the profile menu entry skips
// the list and goes straight to the record.
func TestMainLoop_ProfileOpensDetail(t *testing.T) {
	m, _ := newDashboard(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = m.Update(cmd())

	require.Equal(t, screenDetail, m.screen)
	assert.Contains(t, m.detail.body, "Ada")
	assert.True(t, m.detail.canEdit)
	assert.False(t, m.detail.canDelete)
}

// TestMainLoop_StaleLoadIsDropped checks that a stale fetch result leaves the
// current rows and error state untouched.
func TestMainLoop_StaleLoadIsDropped(t *testing.T) {
	m, _ := newDashboard(t)
	m.screen = screenList
	m.resource = resourceProjects
	m.rows = []listRow{{id: 1, title: "Portfolio Site"}}

	_, _ = m.Update(rowsLoadedMsg{resource: resourceProjects, err: query.ErrStale})

	assert.Empty(t, m.errMsg)
	assert.Len(t, m.rows, 1)
}

// TestMainLoop_RowsForLeftScreenAreDropped checks that a slow list load for a
// screen the user already left does not overwrite the current one.
func TestMainLoop_RowsForLeftScreenAreDropped(t *testing.T) {
	m, _ := newDashboard(t)
	m.screen = screenList
	m.resource = resourceSkills

	_, _ = m.Update(rowsLoadedMsg{resource: resourceProjects, rows: []listRow{{id: 1, title: "late"}}})

	assert.Empty(t, m.rows)
}

// ── Detail and delete ──

// TestMainLoop_DeleteFlow walks list -> detail -> confirmation -> delete and
// checks the service call and the return to the list.
func TestMainLoop_DeleteFlow(t *testing.T) {
	m, fakes := newDashboard(t)
	m.screen = screenList
	m.resource = resourceProjects
	m.rows = []listRow{{id: 1, title: "Portfolio Site *"}, {id: 2, title: "CLI Tool"}}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = m.Update(cmd())
	require.Equal(t, screenDetail, m.screen)
	require.True(t, m.detail.canDelete)

	_, _ = m.Update(keyPress('d'))
	require.Equal(t, screenConfirmDelete, m.screen)

	_, cmd = m.Update(keyPress('y'))
	deliver(t, m, cmd)

	assert.Equal(t, []int64{1}, fakes.projects.deleted)
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Deleted", m.status)
}

// TestMainLoop_ConfirmDeleteCancel checks that answering no keeps the record.
func TestMainLoop_ConfirmDeleteCancel(t *testing.T) {
	m, fakes := newDashboard(t)
	m.screen = screenConfirmDelete
	m.resource = resourceProjects
	m.detail = detailView{title: "Project: CLI Tool", canDelete: true, deleteID: 2}

	_, cmd := m.Update(keyPress('n'))

	assert.Nil(t, cmd)
	assert.Equal(t, screenDetail, m.screen)
	assert.Empty(t, fakes.projects.deleted)
}

// TestMainLoop_InboxDetail checks that an inbox message renders from the
// cached list and exposes the sender address for the copy action.
func TestMainLoop_InboxDetail(t *testing.T) {
	m, _ := newDashboard(t)
	m.screen = screenList
	m.resource = resourceInbox

	deliver(t, m, m.cmdLoadRows(resourceInbox))
	require.Len(t, m.rows, 1)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, screenDetail, m.screen)
	assert.True(t, m.detail.canCopy)
	assert.False(t, m.detail.canDelete)
	assert.Equal(t, "visitor@example.com", m.detail.copyText)
	assert.Contains(t, m.detail.body, "Hi there")
}

// ── Forms ──

// TestMainLoop_CreateProject opens the create form from the project list,
// fills it, and checks the service receives the parsed technologies.
func TestMainLoop_CreateProject(t *testing.T) {
	m, fakes := newDashboard(t)
	m.screen = screenList
	m.resource = resourceProjects

	_, _ = m.Update(keyPress('n'))
	require.Equal(t, screenForm, m.screen)

	form, ok := m.form.(*formProject)
	require.True(t, ok)
	form.inputs[projectFieldTitle].SetValue("New Thing")
	form.inputs[projectFieldTechnologies].SetValue("Go, Postgres,  , chi")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	deliver(t, m, cmd)

	require.Len(t, fakes.projects.created, 1)
	created := fakes.projects.created[0]
	assert.Equal(t, "New Thing", created.Title)
	assert.Equal(t, []string{"Go", "Postgres", "chi"}, created.Technologies)
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Saved", m.status)
}

// TestMainLoop_EmptyTitleStaysOnForm checks that validation failures keep the
// form open without touching the backend.
func TestMainLoop_EmptyTitleStaysOnForm(t *testing.T) {
	m, fakes := newDashboard(t)
	m.screen = screenList
	m.resource = resourceProjects

	_, _ = m.Update(keyPress('n'))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, screenForm, m.screen)
	assert.Empty(t, fakes.projects.created)
	assert.Contains(t, m.form.view(), "Title is required")
}

// TestFormSEO_EditUpdatesByPage checks that editing an existing page keeps
// the page name locked and saves through the per-page update.
func TestFormSEO_EditUpdatesByPage(t *testing.T) {
	fake := &fakeSEOService{settings: models.SEOSettings{"home": {PageName: "home", Title: "Welcome"}}}
	form := newFormSEO(context.Background(), fake, &models.SEOSetting{PageName: "home", Title: "Welcome"})

	form.inputs[seoFieldTitle].SetValue("Hello")
	cmd := form.submit()
	require.NotNil(t, cmd)
	msg, ok := cmd().(savedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	require.Contains(t, fake.updated, "home")
	assert.Equal(t, "Hello", fake.updated["home"].Title)
	assert.Empty(t, fake.upserted)
}

// TestFormSEO_NewPageUpserts checks that a fresh form normalizes the page
// name and saves through upsert.
func TestFormSEO_NewPageUpserts(t *testing.T) {
	fake := &fakeSEOService{settings: models.SEOSettings{}}
	form := newFormSEO(context.Background(), fake, nil)

	form.inputs[seoFieldPageName].SetValue("  Blog ")
	form.inputs[seoFieldTitle].SetValue("Posts")
	cmd := form.submit()
	require.NotNil(t, cmd)
	msg, ok := cmd().(savedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	require.Len(t, fake.upserted, 1)
	assert.Equal(t, "blog", fake.upserted[0].PageName)
	assert.Empty(t, fake.updated)
}

// ── Session ──

// TestMainLoop_LogoutKey checks that L on the menu quits with the logout
// flag set so the caller drops the session.
func TestMainLoop_LogoutKey(t *testing.T) {
	m, _ := newDashboard(t)

	_, cmd := m.Update(keyPress('L'))

	assert.True(t, m.logout)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
