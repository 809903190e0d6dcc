package store

import (
	"go-folio/internal/logger"
)

// Repositories groups every server-side repository into a single value that
// can be passed to the service layer.
type Repositories struct {
	UserRepository       UserRepository
	ProfileRepository    ProfileRepository
	ProjectRepository    ProjectRepository
	ExperienceRepository ExperienceRepository
	SkillRepository      SkillRepository
	FeatureRepository    FeatureRepository
	SEORepository        SEORepository
	ContactRepository    ContactRepository
}

// NewRepositories wires all repositories to the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db, logger),
		ProfileRepository:    NewProfileRepository(db, logger),
		ProjectRepository:    NewProjectRepository(db, logger),
		ExperienceRepository: NewExperienceRepository(db, logger),
		SkillRepository:      NewSkillRepository(db, logger),
		FeatureRepository:    NewFeatureRepository(db, logger),
		SEORepository:        NewSEORepository(db, logger),
		ContactRepository:    NewContactRepository(db, logger),
	}
}
