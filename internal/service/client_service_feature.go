package service

import (
	"context"

	"go-folio/internal/adapter"
	"go-folio/models"
)

type clientFeatureService struct {
	gateway adapter.Gateway
}

func NewClientFeatureService(gateway adapter.Gateway) ClientFeatureService {
	return &clientFeatureService{gateway: gateway}
}

func (s *clientFeatureService) List(ctx context.Context) ([]models.Feature, error) {
	return s.gateway.ListFeatures(ctx)
}

func (s *clientFeatureService) Get(ctx context.Context, id int64) (models.Feature, error) {
	return s.gateway.GetFeature(ctx, id)
}

func (s *clientFeatureService) Create(ctx context.Context, feature models.Feature) (models.Feature, error) {
	if feature.Title == "" {
		return models.Feature{}, ErrInvalidDataProvided
	}

	return s.gateway.CreateFeature(ctx, feature)
}

func (s *clientFeatureService) Update(ctx context.Context, id int64, feature models.Feature) (models.Feature, error) {
	if feature.Title == "" {
		return models.Feature{}, ErrInvalidDataProvided
	}

	return s.gateway.UpdateFeature(ctx, id, feature)
}

func (s *clientFeatureService) Delete(ctx context.Context, id int64) error {
	return s.gateway.DeleteFeature(ctx, id)
}
