package service

import (
	"go-folio/internal/config"
	"go-folio/internal/logger"
	"go-folio/internal/store"
)

type Services struct {
	AuthService       AuthService
	ProfileService    ProfileService
	ProjectService    ProjectService
	ExperienceService ExperienceService
	SkillService      SkillService
	FeatureService    FeatureService
	SEOService        SEOService
	ContactService    ContactService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		ProfileService:    NewProfileService(repositories.ProfileRepository, logger),
		ProjectService:    NewProjectService(repositories.ProjectRepository, logger),
		ExperienceService: NewExperienceService(repositories.ExperienceRepository, logger),
		SkillService:      NewSkillService(repositories.SkillRepository, logger),
		FeatureService:    NewFeatureService(repositories.FeatureRepository, logger),
		SEOService:        NewSEOService(repositories.SEORepository, logger),
		ContactService:    NewContactService(repositories.ContactRepository, logger),
	}
}
