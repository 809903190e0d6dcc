// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer access to the portfolio REST API.
//
// The primary abstraction is [Gateway], which decouples the client service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
// The server-supplied message from the JSON error body is carried in the
// wrapped error text.
package adapter

import (
	"context"

	"go-folio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// TokenSource supplies the bearer token attached to outgoing requests. The
// session store implements it; the gateway holds a reference instead of
// owning token state itself, so login and logout are visible to the transport
// immediately and the source can be swapped for a stub in tests.
type TokenSource interface {
	// Token returns the current bearer token, or an empty string when no
	// session is active. Requests carry an Authorization header iff the
	// returned token is non-empty.
	Token() string
}

// Gateway defines transport-agnostic communication with the portfolio
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Every operation performs exactly one network call; there are no retries
// and no caching.
type Gateway interface {
	// Login exchanges credentials for a signed token and the account record
	// at POST /auth/login. The gateway does not persist the session; the
	// calling auth service is responsible for storing token and user.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// GetProfile fetches the singleton owner record from GET /profile.
	GetProfile(ctx context.Context) (models.Profile, error)

	// UpdateProfile replaces the singleton owner record via PUT /profile and
	// returns the stored result.
	UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	// ListProjects fetches all portfolio projects from GET /projects.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// GetProject fetches one project by id from GET /projects/{id}.
	GetProject(ctx context.Context, id int64) (models.Project, error)

	// CreateProject creates a project via POST /projects and returns the
	// stored record with its assigned id.
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)

	// UpdateProject replaces the project with the given id via
	// PUT /projects/{id}.
	UpdateProject(ctx context.Context, id int64, project models.Project) (models.Project, error)

	// DeleteProject removes the project with the given id via
	// DELETE /projects/{id}.
	DeleteProject(ctx context.Context, id int64) error

	// ListExperience fetches the work-history timeline from GET /experience.
	ListExperience(ctx context.Context) ([]models.Experience, error)

	// GetExperience fetches one timeline entry from GET /experience/{id}.
	GetExperience(ctx context.Context, id int64) (models.Experience, error)

	// CreateExperience creates a timeline entry via POST /experience.
	CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error)

	// UpdateExperience replaces a timeline entry via PUT /experience/{id}.
	UpdateExperience(ctx context.Context, id int64, experience models.Experience) (models.Experience, error)

	// DeleteExperience removes a timeline entry via DELETE /experience/{id}.
	DeleteExperience(ctx context.Context, id int64) error

	// ListSkills fetches all skills from GET /skills. The response arrives
	// already grouped by category.
	ListSkills(ctx context.Context) (models.SkillsByCategory, error)

	// GetSkill fetches one skill from GET /skills/{id}.
	GetSkill(ctx context.Context, id int64) (models.Skill, error)

	// CreateSkill creates a skill via POST /skills.
	CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error)

	// UpdateSkill replaces a skill via PUT /skills/{id}.
	UpdateSkill(ctx context.Context, id int64, skill models.Skill) (models.Skill, error)

	// DeleteSkill removes a skill via DELETE /skills/{id}.
	DeleteSkill(ctx context.Context, id int64) error

	// ListFeatures fetches the "what I do" cards from GET /features, ordered
	// by order_index.
	ListFeatures(ctx context.Context) ([]models.Feature, error)

	// GetFeature fetches one card from GET /features/{id}.
	GetFeature(ctx context.Context, id int64) (models.Feature, error)

	// CreateFeature creates a card via POST /features.
	CreateFeature(ctx context.Context, feature models.Feature) (models.Feature, error)

	// UpdateFeature replaces a card via PUT /features/{id}.
	UpdateFeature(ctx context.Context, id int64, feature models.Feature) (models.Feature, error)

	// DeleteFeature removes a card via DELETE /features/{id}.
	DeleteFeature(ctx context.Context, id int64) error

	// GetSEOSettings fetches the meta tags of every page from GET /seo,
	// keyed by page name.
	GetSEOSettings(ctx context.Context) (models.SEOSettings, error)

	// GetSEOByPage fetches the meta tags of one page from
	// GET /seo/page/{page}.
	GetSEOByPage(ctx context.Context, page string) (models.SEOSetting, error)

	// UpsertSEO creates or replaces the record keyed by setting.PageName via
	// POST /seo/upsert.
	UpsertSEO(ctx context.Context, setting models.SEOSetting) (models.SEOSetting, error)

	// UpdateSEOByPage replaces the record of the given page via
	// PUT /seo/page/{page}.
	UpdateSEOByPage(ctx context.Context, page string, setting models.SEOSetting) (models.SEOSetting, error)

	// SubmitContact sends a visitor message via POST /contact. The endpoint
	// is public; an Authorization header is still attached when a session is
	// active, which the server ignores.
	SubmitContact(ctx context.Context, message models.ContactMessage) error

	// ListContactMessages fetches all submitted messages from
	// GET /contact/messages. Requires an active session.
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
}
