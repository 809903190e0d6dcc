package query

import (
	"go-folio/internal/service"
	"go-folio/models"
)

// Queries bundles one query per portfolio resource, wired to the client
// services. The admin TUI holds a single Queries value and refetches the
// resource a screen needs when it opens.
type Queries struct {
	Profile    *Query[models.Profile]
	Projects   *Query[[]models.Project]
	Experience *Query[[]models.Experience]
	Skills     *Query[models.SkillsByCategory]
	Features   *Query[[]models.Feature]
	SEO        *Query[models.SEOSettings]
	SEOByPage  *Keyed[models.SEOSetting]
	Messages   *Query[[]models.ContactMessage]
}

func NewQueries(services *service.ClientServices) *Queries {
	return &Queries{
		Profile:    New(services.ProfileService.Get),
		Projects:   New(services.ProjectService.List),
		Experience: New(services.ExperienceService.List),
		Skills:     New(services.SkillService.List),
		Features:   New(services.FeatureService.List),
		SEO:        New(services.SEOService.List),
		SEOByPage:  NewKeyed(services.SEOService.GetByPage),
		Messages:   New(services.ContactService.Messages),
	}
}
