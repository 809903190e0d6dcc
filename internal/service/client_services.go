package service

import (
	"go-folio/internal/adapter"
	"go-folio/internal/store"
)

type ClientServices struct {
	AuthService       ClientAuthService
	ProfileService    ClientProfileService
	ProjectService    ClientProjectService
	ExperienceService ClientExperienceService
	SkillService      ClientSkillService
	FeatureService    ClientFeatureService
	SEOService        ClientSEOService
	ContactService    ClientContactService
}

func NewClientServices(session store.SessionStore, gateway adapter.Gateway) *ClientServices {
	return &ClientServices{
		AuthService:       NewClientAuthService(session, gateway),
		ProfileService:    NewClientProfileService(gateway),
		ProjectService:    NewClientProjectService(gateway),
		ExperienceService: NewClientExperienceService(gateway),
		SkillService:      NewClientSkillService(gateway),
		FeatureService:    NewClientFeatureService(gateway),
		SEOService:        NewClientSEOService(gateway),
		ContactService:    NewClientContactService(gateway),
	}
}
