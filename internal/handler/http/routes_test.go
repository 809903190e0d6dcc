package http

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-folio/internal/config"
	"go-folio/internal/logger"
	"go-folio/internal/mock"
	"go-folio/internal/service"
	"go-folio/internal/store"
	"go-folio/models"
)

// testServices groups the per-resource service mocks behind a wired
// *service.Services so tests can set expectations on individual resources.
type testServices struct {
	auth       *mock.MockAuthService
	profile    *mock.MockProfileService
	project    *mock.MockProjectService
	experience *mock.MockExperienceService
	skill      *mock.MockSkillService
	feature    *mock.MockFeatureService
	seo        *mock.MockSEOService
	contact    *mock.MockContactService
}

func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := &testServices{
		auth:       mock.NewMockAuthService(ctrl),
		profile:    mock.NewMockProfileService(ctrl),
		project:    mock.NewMockProjectService(ctrl),
		experience: mock.NewMockExperienceService(ctrl),
		skill:      mock.NewMockSkillService(ctrl),
		feature:    mock.NewMockFeatureService(ctrl),
		seo:        mock.NewMockSEOService(ctrl),
		contact:    mock.NewMockContactService(ctrl),
	}

	services := &service.Services{
		AuthService:       mocks.auth,
		ProfileService:    mocks.profile,
		ProjectService:    mocks.project,
		ExperienceService: mocks.experience,
		SkillService:      mocks.skill,
		FeatureService:    mocks.feature,
		SEOService:        mocks.seo,
		ContactService:    mocks.contact,
	}

	cfg := config.Server{
		HTTPAddress:   ":5000",
		AllowedOrigin: "http://localhost:3000",
	}

	h := NewHandler(services, cfg, logger.Nop())

	return h.Init(), mocks
}

func decodeErrorBody(t *testing.T, body string) models.ErrorResponse {
	t.Helper()

	var errResponse models.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResponse))

	return errResponse
}

// ── Auth ──

// TestLogin_Success verifies that valid credentials answer 200 with the
// signed token and the user's public fields.
func TestLogin_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	user := models.User{ID: 1, Username: "admin"}
	mocks.auth.EXPECT().
		Login(gomock.Any(), models.Credentials{Username: "admin", Password: "secret"}).
		Return(user, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), user).
		Return(models.Token{SignedString: "signed.jwt", UserID: 1}, nil)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"admin","password":"secret"}`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "signed.jwt", response.Token)
	assert.Equal(t, "admin", response.User.Username)
}

// TestLogin_WrongPassword verifies that a rejected password answers 401 with
// a generic message that does not reveal whether the username exists.
func TestLogin_WrongPassword(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid credentials", decodeErrorBody(t, recorder.Body.String()).Error)
}

// TestLogin_UnknownUser verifies that an unknown username also answers 401
// with the same generic message as a wrong password.
func TestLogin_UnknownUser(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrNotFound)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"ghost","password":"whatever"}`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid credentials", decodeErrorBody(t, recorder.Body.String()).Error)
}

// TestLogin_MalformedBody verifies that a body that is not valid JSON answers
// 400 without calling the auth service.
func TestLogin_MalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{not json`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid request body", decodeErrorBody(t, recorder.Body.String()).Error)
}

// ── Auth middleware ──

// TestProtectedRoute_NoToken verifies that a write without an Authorization
// header is rejected with 401 before reaching the resource service.
func TestProtectedRoute_NoToken(t *testing.T) {
	router, _ := newTestRouter(t)

	request := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name":"Jane"}`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Authorization required", decodeErrorBody(t, recorder.Body.String()).Error)
}

// TestProtectedRoute_InvalidToken verifies that an expired or garbage token
// answers 401.
func TestProtectedRoute_InvalidToken(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "garbage").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	request := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name":"Jane"}`))
	request.Header.Set("Authorization", "Bearer garbage")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid or expired token", decodeErrorBody(t, recorder.Body.String()).Error)
}

// TestProtectedRoute_ValidToken verifies that a valid bearer token lets the
// request through to the resource service.
func TestProtectedRoute_ValidToken(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "signed.jwt").
		Return(models.Token{UserID: 1}, nil)
	mocks.profile.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any()).
		Return(models.Profile{Name: "Jane"}, nil)

	request := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name":"Jane"}`))
	request.Header.Set("Authorization", "Bearer signed.jwt")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var profile models.Profile
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &profile))
	assert.Equal(t, "Jane", profile.Name)
}

// ── Public reads ──

// TestListProjects_Public verifies that the project list requires no token
// and answers a JSON array.
func TestListProjects_Public(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.project.EXPECT().
		ListProjects(gomock.Any()).
		Return([]models.Project{{ID: 1, Title: "go-folio"}}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "go-folio", projects[0].Title)
}

// TestListProjects_GzipResponse verifies that responses are gzip-compressed
// when the client advertises support, and still decode to the same JSON.
func TestListProjects_GzipResponse(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.project.EXPECT().
		ListProjects(gomock.Any()).
		Return([]models.Project{{ID: 1, Title: "go-folio"}}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	request.Header.Set("Accept-Encoding", "gzip")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(recorder.Body)
	require.NoError(t, err)
	defer reader.Close()

	body, err := io.ReadAll(reader)
	require.NoError(t, err)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(body, &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "go-folio", projects[0].Title)
}

// TestGetProject_NotFound verifies that a missing project maps to 404 with
// the uniform error body.
func TestGetProject_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.project.EXPECT().
		GetProject(gomock.Any(), int64(42)).
		Return(models.Project{}, store.ErrNotFound)

	request := httptest.NewRequest(http.MethodGet, "/api/projects/42", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Project not found", decodeErrorBody(t, recorder.Body.String()).Error)
}

// TestGetProject_InvalidID verifies that a non-numeric id answers 400 without
// calling the service.
func TestGetProject_InvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	request := httptest.NewRequest(http.MethodGet, "/api/projects/abc", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid id", decodeErrorBody(t, recorder.Body.String()).Error)
}

// TestGetProject_NonPositiveID verifies that zero and negative ids answer 400
// without calling the service: database ids start at 1.
func TestGetProject_NonPositiveID(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, id := range []string{"0", "-3"} {
		request := httptest.NewRequest(http.MethodGet, "/api/projects/"+id, nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusBadRequest, recorder.Code, "id %s", id)
		assert.Equal(t, "Invalid id", decodeErrorBody(t, recorder.Body.String()).Error, "id %s", id)
	}
}

// TestListSkills_GroupedShape verifies that GET /skills answers the map
// keyed by category.
func TestListSkills_GroupedShape(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.skill.EXPECT().
		ListSkills(gomock.Any()).
		Return(models.SkillsByCategory{
			"Backend": {{ID: 1, Name: "Go", Category: "Backend"}},
		}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var grouped models.SkillsByCategory
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &grouped))
	require.Contains(t, grouped, "Backend")
	assert.Equal(t, "Go", grouped["Backend"][0].Name)
}

// TestGetSEOByPage verifies that page-scoped SEO settings are fetched by the
// {page} route parameter.
func TestGetSEOByPage(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.seo.EXPECT().
		GetSEOByPage(gomock.Any(), "about").
		Return(models.SEOSetting{PageName: "about", Title: "About me"}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/seo/page/about", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var setting models.SEOSetting
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &setting))
	assert.Equal(t, "About me", setting.Title)
}

// ── Writes ──

// TestCreateProject_Created verifies that an authenticated create answers 201
// with the stored entity.
func TestCreateProject_Created(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "signed.jwt").
		Return(models.Token{UserID: 1}, nil)
	mocks.project.EXPECT().
		CreateProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, project models.Project) (models.Project, error) {
			project.ID = 7
			return project, nil
		})

	request := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"title":"New project"}`))
	request.Header.Set("Authorization", "Bearer signed.jwt")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var created models.Project
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "New project", created.Title)
}

// TestCreateProject_ValidationError verifies that a service-side validation
// failure maps to 400.
func TestCreateProject_ValidationError(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "signed.jwt").
		Return(models.Token{UserID: 1}, nil)
	mocks.project.EXPECT().
		CreateProject(gomock.Any(), gomock.Any()).
		Return(models.Project{}, service.ErrInvalidDataProvided)

	request := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"title":""}`))
	request.Header.Set("Authorization", "Bearer signed.jwt")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

// TestUpdateExperience_IDFromPath verifies that the entity's ID comes from
// the route parameter, not the request body.
func TestUpdateExperience_IDFromPath(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "signed.jwt").
		Return(models.Token{UserID: 1}, nil)
	mocks.experience.EXPECT().
		UpdateExperience(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, entry models.Experience) (models.Experience, error) {
			assert.Equal(t, int64(3), entry.ID)
			return entry, nil
		})

	request := httptest.NewRequest(http.MethodPut, "/api/experience/3", strings.NewReader(`{"id":999,"company":"Acme","position":"Engineer"}`))
	request.Header.Set("Authorization", "Bearer signed.jwt")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
}

// TestDeleteFeature_StatusBody verifies that deletes acknowledge with the
// {"status":"ok"} body.
func TestDeleteFeature_StatusBody(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "signed.jwt").
		Return(models.Token{UserID: 1}, nil)
	mocks.feature.EXPECT().
		DeleteFeature(gomock.Any(), int64(5)).
		Return(nil)

	request := httptest.NewRequest(http.MethodDelete, "/api/features/5", nil)
	request.Header.Set("Authorization", "Bearer signed.jwt")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var status models.StatusResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
}

// ── Contact ──

// TestSubmitContact_Public verifies that the contact form accepts submissions
// without a token and answers 201.
func TestSubmitContact_Public(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.contact.EXPECT().
		SubmitMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, message models.ContactMessage) (models.ContactMessage, error) {
			message.ID = 1
			return message, nil
		})

	body := `{"name":"Visitor","email":"visitor@example.com","subject":"Hello","message":"Nice site"}`
	request := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var saved models.ContactMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &saved))
	assert.Equal(t, int64(1), saved.ID)
}

// TestListContactMessages_Protected verifies that reading submissions
// requires authentication.
func TestListContactMessages_Protected(t *testing.T) {
	router, _ := newTestRouter(t)

	request := httptest.NewRequest(http.MethodGet, "/api/contact/messages", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

// ── Error masking ──

// TestStorageErrorMasked verifies that storage failures answer 500 with the
// status text rather than the internal error message.
func TestStorageErrorMasked(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.profile.EXPECT().
		GetProfile(gomock.Any()).
		Return(models.Profile{}, store.ErrExecutingQuery)

	request := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeErrorBody(t, recorder.Body.String()).Error)
}

// TestTraceIDHeader verifies that every response carries an X-Trace-ID
// header, generated when the request does not supply one.
func TestTraceIDHeader(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.profile.EXPECT().
		GetProfile(gomock.Any()).
		Return(models.Profile{Name: "Jane"}, nil)

	request := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(traceIDHeader))
}
