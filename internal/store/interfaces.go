// SPDX-License-Identifier: Apache-2.0

// Package store contains the persistence layer: PostgreSQL repositories for
// the portfolio content served by the API, and a local SQLite session store
// used by the admin client.
package store

import (
	"context"

	"go-folio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository manages dashboard accounts in the "users" table.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields. Returns [ErrAlreadyExists] when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username, or
	// [ErrNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ProfileRepository manages the singleton owner record.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
}

// ProjectRepository manages portfolio project records.
type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// ExperienceRepository manages work-history records.
type ExperienceRepository interface {
	ListExperience(ctx context.Context) ([]models.Experience, error)
	GetExperience(ctx context.Context, id int64) (models.Experience, error)
	CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error)
	UpdateExperience(ctx context.Context, experience models.Experience) (models.Experience, error)
	DeleteExperience(ctx context.Context, id int64) error
}

// SkillRepository manages skill records. Listing returns a flat slice ordered
// by category; grouping into the response map happens in the service layer.
type SkillRepository interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	GetSkill(ctx context.Context, id int64) (models.Skill, error)
	CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	UpdateSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

// FeatureRepository manages the "what I do" cards, ordered by order_index.
type FeatureRepository interface {
	ListFeatures(ctx context.Context) ([]models.Feature, error)
	GetFeature(ctx context.Context, id int64) (models.Feature, error)
	CreateFeature(ctx context.Context, feature models.Feature) (models.Feature, error)
	UpdateFeature(ctx context.Context, feature models.Feature) (models.Feature, error)
	DeleteFeature(ctx context.Context, id int64) error
}

// SEORepository manages per-page meta-tag records keyed by page name.
type SEORepository interface {
	ListSEOSettings(ctx context.Context) ([]models.SEOSetting, error)
	GetSEOByPage(ctx context.Context, page string) (models.SEOSetting, error)

	// UpsertSEO creates the record for setting.PageName or replaces it when
	// one already exists.
	UpsertSEO(ctx context.Context, setting models.SEOSetting) (models.SEOSetting, error)

	// UpdateSEOByPage replaces the record of an existing page. Returns
	// [ErrNotFound] when the page has no record yet.
	UpdateSEOByPage(ctx context.Context, page string, setting models.SEOSetting) (models.SEOSetting, error)
}

// ContactRepository manages visitor messages from the public contact form.
type ContactRepository interface {
	CreateContactMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Used by repositories for diagnostics on write failures.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
