package service

import (
	"context"

	"go-folio/internal/adapter"
	"go-folio/models"
)

type clientProfileService struct {
	gateway adapter.Gateway
}

func NewClientProfileService(gateway adapter.Gateway) ClientProfileService {
	return &clientProfileService{gateway: gateway}
}

func (s *clientProfileService) Get(ctx context.Context) (models.Profile, error) {
	return s.gateway.GetProfile(ctx)
}

func (s *clientProfileService) Update(ctx context.Context, profile models.Profile) (models.Profile, error) {
	return s.gateway.UpdateProfile(ctx, profile)
}
