package service

import (
	"context"

	"go-folio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

type ExperienceService interface {
	ListExperience(ctx context.Context) ([]models.Experience, error)
	GetExperience(ctx context.Context, id int64) (models.Experience, error)
	CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error)
	UpdateExperience(ctx context.Context, experience models.Experience) (models.Experience, error)
	DeleteExperience(ctx context.Context, id int64) error
}

// SkillService returns skills grouped by category: the public site renders
// them section by section, so grouping happens here rather than in every
// consumer.
type SkillService interface {
	ListSkills(ctx context.Context) (models.SkillsByCategory, error)
	GetSkill(ctx context.Context, id int64) (models.Skill, error)
	CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	UpdateSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

type FeatureService interface {
	ListFeatures(ctx context.Context) ([]models.Feature, error)
	GetFeature(ctx context.Context, id int64) (models.Feature, error)
	CreateFeature(ctx context.Context, feature models.Feature) (models.Feature, error)
	UpdateFeature(ctx context.Context, feature models.Feature) (models.Feature, error)
	DeleteFeature(ctx context.Context, id int64) error
}

type SEOService interface {
	GetSEOSettings(ctx context.Context) (models.SEOSettings, error)
	GetSEOByPage(ctx context.Context, page string) (models.SEOSetting, error)
	UpsertSEO(ctx context.Context, setting models.SEOSetting) (models.SEOSetting, error)
	UpdateSEOByPage(ctx context.Context, page string, setting models.SEOSetting) (models.SEOSetting, error)
}

type ContactService interface {
	SubmitMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}
