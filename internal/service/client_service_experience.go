package service

import (
	"context"

	"go-folio/internal/adapter"
	"go-folio/models"
)

type clientExperienceService struct {
	gateway adapter.Gateway
}

func NewClientExperienceService(gateway adapter.Gateway) ClientExperienceService {
	return &clientExperienceService{gateway: gateway}
}

func (s *clientExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	return s.gateway.ListExperience(ctx)
}

func (s *clientExperienceService) Get(ctx context.Context, id int64) (models.Experience, error) {
	return s.gateway.GetExperience(ctx, id)
}

func (s *clientExperienceService) Create(ctx context.Context, experience models.Experience) (models.Experience, error) {
	if experience.Company == "" || experience.Position == "" {
		return models.Experience{}, ErrInvalidDataProvided
	}

	return s.gateway.CreateExperience(ctx, experience)
}

func (s *clientExperienceService) Update(ctx context.Context, id int64, experience models.Experience) (models.Experience, error) {
	if experience.Company == "" || experience.Position == "" {
		return models.Experience{}, ErrInvalidDataProvided
	}

	return s.gateway.UpdateExperience(ctx, id, experience)
}

func (s *clientExperienceService) Delete(ctx context.Context, id int64) error {
	return s.gateway.DeleteExperience(ctx, id)
}
