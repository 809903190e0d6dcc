package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"go-folio/internal/config"
	"go-folio/internal/logger"
	"go-folio/internal/utils"
	"go-folio/models"
)

type httpGateway struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPGateway constructs the HTTP/REST implementation of [Gateway]. It
// normalises and validates the base URL from adapterCfg.BaseURL (the /api
// prefix included) and configures the underlying client with the resolved
// base URL and request timeout. tokens supplies the bearer token for
// authenticated requests; pass the session store here.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPGateway(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (Gateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpGateway{client: client, tokens: tokens, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request prepares an outgoing request with the JSON content type and, when
// the token source currently holds a session, the Authorization header. All
// gateway operations go through here.
func (g *httpGateway) request(ctx context.Context) *resty.Request {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := strings.TrimSpace(g.tokens.Token()); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// ── Auth ────────────────────────────────────────────────────────────────────

// Login implements [Gateway]. It POSTs the credentials to POST /auth/login
// and returns the token and account record. Persisting the session is the
// caller's job. A 401 maps to [ErrUnauthorized] carrying the server message.
func (g *httpGateway) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := g.request(ctx).
		SetBody(creds).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return result, nil
}

// ── Profile ─────────────────────────────────────────────────────────────────

func (g *httpGateway) GetProfile(ctx context.Context) (models.Profile, error) {
	var result models.Profile

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return result, nil
}

func (g *httpGateway) UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	var result models.Profile

	resp, err := g.request(ctx).
		SetBody(profile).
		SetResult(&result).
		Put("/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return result, nil
}

// ── Projects ────────────────────────────────────────────────────────────────

func (g *httpGateway) ListProjects(ctx context.Context) ([]models.Project, error) {
	var result []models.Project

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/projects")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *httpGateway) GetProject(ctx context.Context, id int64) (models.Project, error) {
	var result models.Project

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/projects/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Project{}, fmt.Errorf("get project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return result, nil
}

func (g *httpGateway) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	var result models.Project

	resp, err := g.request(ctx).
		SetBody(project).
		SetResult(&result).
		Post("/projects")
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return result, nil
}

func (g *httpGateway) UpdateProject(ctx context.Context, id int64, project models.Project) (models.Project, error) {
	var result models.Project

	resp, err := g.request(ctx).
		SetBody(project).
		SetResult(&result).
		Put("/projects/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Project{}, fmt.Errorf("update project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return result, nil
}

func (g *httpGateway) DeleteProject(ctx context.Context, id int64) error {
	resp, err := g.request(ctx).
		Delete("/projects/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}

	return mapHTTPError(resp)
}

// ── Experience ──────────────────────────────────────────────────────────────

func (g *httpGateway) ListExperience(ctx context.Context) ([]models.Experience, error) {
	var result []models.Experience

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/experience")
	if err != nil {
		return nil, fmt.Errorf("list experience request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *httpGateway) GetExperience(ctx context.Context, id int64) (models.Experience, error) {
	var result models.Experience

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/experience/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Experience{}, fmt.Errorf("get experience request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Experience{}, err
	}

	return result, nil
}

func (g *httpGateway) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	var result models.Experience

	resp, err := g.request(ctx).
		SetBody(experience).
		SetResult(&result).
		Post("/experience")
	if err != nil {
		return models.Experience{}, fmt.Errorf("create experience request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Experience{}, err
	}

	return result, nil
}

func (g *httpGateway) UpdateExperience(ctx context.Context, id int64, experience models.Experience) (models.Experience, error) {
	var result models.Experience

	resp, err := g.request(ctx).
		SetBody(experience).
		SetResult(&result).
		Put("/experience/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Experience{}, fmt.Errorf("update experience request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Experience{}, err
	}

	return result, nil
}

func (g *httpGateway) DeleteExperience(ctx context.Context, id int64) error {
	resp, err := g.request(ctx).
		Delete("/experience/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete experience request: %w", err)
	}

	return mapHTTPError(resp)
}

// ── Skills ──────────────────────────────────────────────────────────────────

func (g *httpGateway) ListSkills(ctx context.Context) (models.SkillsByCategory, error) {
	var result models.SkillsByCategory

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/skills")
	if err != nil {
		return nil, fmt.Errorf("list skills request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *httpGateway) GetSkill(ctx context.Context, id int64) (models.Skill, error) {
	var result models.Skill

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/skills/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Skill{}, fmt.Errorf("get skill request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Skill{}, err
	}

	return result, nil
}

func (g *httpGateway) CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	var result models.Skill

	resp, err := g.request(ctx).
		SetBody(skill).
		SetResult(&result).
		Post("/skills")
	if err != nil {
		return models.Skill{}, fmt.Errorf("create skill request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Skill{}, err
	}

	return result, nil
}

func (g *httpGateway) UpdateSkill(ctx context.Context, id int64, skill models.Skill) (models.Skill, error) {
	var result models.Skill

	resp, err := g.request(ctx).
		SetBody(skill).
		SetResult(&result).
		Put("/skills/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Skill{}, fmt.Errorf("update skill request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Skill{}, err
	}

	return result, nil
}

func (g *httpGateway) DeleteSkill(ctx context.Context, id int64) error {
	resp, err := g.request(ctx).
		Delete("/skills/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete skill request: %w", err)
	}

	return mapHTTPError(resp)
}

// ── Features ────────────────────────────────────────────────────────────────

func (g *httpGateway) ListFeatures(ctx context.Context) ([]models.Feature, error) {
	var result []models.Feature

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/features")
	if err != nil {
		return nil, fmt.Errorf("list features request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *httpGateway) GetFeature(ctx context.Context, id int64) (models.Feature, error) {
	var result models.Feature

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/features/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Feature{}, fmt.Errorf("get feature request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Feature{}, err
	}

	return result, nil
}

func (g *httpGateway) CreateFeature(ctx context.Context, feature models.Feature) (models.Feature, error) {
	var result models.Feature

	resp, err := g.request(ctx).
		SetBody(feature).
		SetResult(&result).
		Post("/features")
	if err != nil {
		return models.Feature{}, fmt.Errorf("create feature request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Feature{}, err
	}

	return result, nil
}

func (g *httpGateway) UpdateFeature(ctx context.Context, id int64, feature models.Feature) (models.Feature, error) {
	var result models.Feature

	resp, err := g.request(ctx).
		SetBody(feature).
		SetResult(&result).
		Put("/features/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Feature{}, fmt.Errorf("update feature request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Feature{}, err
	}

	return result, nil
}

func (g *httpGateway) DeleteFeature(ctx context.Context, id int64) error {
	resp, err := g.request(ctx).
		Delete("/features/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete feature request: %w", err)
	}

	return mapHTTPError(resp)
}

// ── SEO ─────────────────────────────────────────────────────────────────────

func (g *httpGateway) GetSEOSettings(ctx context.Context) (models.SEOSettings, error) {
	var result models.SEOSettings

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/seo")
	if err != nil {
		return nil, fmt.Errorf("get seo settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *httpGateway) GetSEOByPage(ctx context.Context, page string) (models.SEOSetting, error) {
	var result models.SEOSetting

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/seo/page/" + url.PathEscape(page))
	if err != nil {
		return models.SEOSetting{}, fmt.Errorf("get seo by page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SEOSetting{}, err
	}

	return result, nil
}

func (g *httpGateway) UpsertSEO(ctx context.Context, setting models.SEOSetting) (models.SEOSetting, error) {
	var result models.SEOSetting

	resp, err := g.request(ctx).
		SetBody(setting).
		SetResult(&result).
		Post("/seo/upsert")
	if err != nil {
		return models.SEOSetting{}, fmt.Errorf("upsert seo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SEOSetting{}, err
	}

	return result, nil
}

func (g *httpGateway) UpdateSEOByPage(ctx context.Context, page string, setting models.SEOSetting) (models.SEOSetting, error) {
	var result models.SEOSetting

	resp, err := g.request(ctx).
		SetBody(setting).
		SetResult(&result).
		Put("/seo/page/" + url.PathEscape(page))
	if err != nil {
		return models.SEOSetting{}, fmt.Errorf("update seo by page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SEOSetting{}, err
	}

	return result, nil
}

// ── Contact ─────────────────────────────────────────────────────────────────

func (g *httpGateway) SubmitContact(ctx context.Context, message models.ContactMessage) error {
	resp, err := g.request(ctx).
		SetBody(message).
		Post("/contact")
	if err != nil {
		return fmt.Errorf("submit contact request: %w", err)
	}

	return mapHTTPError(resp)
}

func (g *httpGateway) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var result []models.ContactMessage

	resp, err := g.request(ctx).
		SetResult(&result).
		Get("/contact/messages")
	if err != nil {
		return nil, fmt.Errorf("list contact messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}
