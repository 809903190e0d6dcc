// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"go-folio/models"
)

// ClientAuthService defines the client-side contract for dashboard sign-in and
// session lifecycle. Implementations talk to the backend through the adapter
// and keep the token plus user snapshot in the local session store.
type ClientAuthService interface {
	// Login authenticates against the backend and persists the returned token
	// together with the user snapshot. Either both are stored or neither is.
	// Returns ErrLoginOnServer when the backend rejects the credentials or is
	// unreachable, ErrSessionNotSaved when local persistence fails.
	Login(ctx context.Context, username, password string) error

	// Logout drops the persisted session. Safe to call when not logged in.
	Logout(ctx context.Context) error

	// Token returns the stored JWT, or "" when no session exists.
	Token() string

	// User returns the stored user snapshot and whether a session exists.
	User() (models.User, bool)

	// IsAuthenticated reports whether a token is currently stored. It does not
	// check expiry; an expired token surfaces as 401 on the next request.
	IsAuthenticated() bool
}

// ClientProfileService exposes the owner profile to the admin dashboard.
type ClientProfileService interface {
	Get(ctx context.Context) (models.Profile, error)
	Update(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// ClientProjectService exposes project CRUD to the admin dashboard.
type ClientProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int64) (models.Project, error)
	Create(ctx context.Context, project models.Project) (models.Project, error)
	Update(ctx context.Context, id int64, project models.Project) (models.Project, error)
	Delete(ctx context.Context, id int64) error
}

// ClientExperienceService exposes experience CRUD to the admin dashboard.
type ClientExperienceService interface {
	List(ctx context.Context) ([]models.Experience, error)
	Get(ctx context.Context, id int64) (models.Experience, error)
	Create(ctx context.Context, experience models.Experience) (models.Experience, error)
	Update(ctx context.Context, id int64, experience models.Experience) (models.Experience, error)
	Delete(ctx context.Context, id int64) error
}

// ClientSkillService exposes skill CRUD to the admin dashboard. List returns
// skills grouped by category, the shape the backend serves.
type ClientSkillService interface {
	List(ctx context.Context) (models.SkillsByCategory, error)
	Get(ctx context.Context, id int64) (models.Skill, error)
	Create(ctx context.Context, skill models.Skill) (models.Skill, error)
	Update(ctx context.Context, id int64, skill models.Skill) (models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

// ClientFeatureService exposes feature-card CRUD to the admin dashboard.
type ClientFeatureService interface {
	List(ctx context.Context) ([]models.Feature, error)
	Get(ctx context.Context, id int64) (models.Feature, error)
	Create(ctx context.Context, feature models.Feature) (models.Feature, error)
	Update(ctx context.Context, id int64, feature models.Feature) (models.Feature, error)
	Delete(ctx context.Context, id int64) error
}

// ClientSEOService exposes per-page SEO settings to the admin dashboard.
type ClientSEOService interface {
	List(ctx context.Context) (models.SEOSettings, error)
	GetByPage(ctx context.Context, page string) (models.SEOSetting, error)
	Upsert(ctx context.Context, setting models.SEOSetting) (models.SEOSetting, error)
	UpdateByPage(ctx context.Context, page string, setting models.SEOSetting) (models.SEOSetting, error)
}

// ClientContactService submits the public contact form and lists received
// messages in the admin dashboard.
type ClientContactService interface {
	Submit(ctx context.Context, message models.ContactMessage) error
	Messages(ctx context.Context) ([]models.ContactMessage, error)
}
