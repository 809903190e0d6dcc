package service

import (
	"context"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/internal/store"
	"go-folio/models"
)

type featureService struct {
	repository store.FeatureRepository
	logger     *logger.Logger
}

func NewFeatureService(repository store.FeatureRepository, logger *logger.Logger) FeatureService {
	return &featureService{repository: repository, logger: logger}
}

func (s *featureService) ListFeatures(ctx context.Context) ([]models.Feature, error) {
	features, err := s.repository.ListFeatures(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("feature list failed")
		return nil, fmt.Errorf("feature list failed: %w", err)
	}

	return features, nil
}

func (s *featureService) GetFeature(ctx context.Context, id int64) (models.Feature, error) {
	feature, err := s.repository.GetFeature(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("feature lookup failed")
		return models.Feature{}, fmt.Errorf("feature lookup failed: %w", err)
	}

	return feature, nil
}

func (s *featureService) CreateFeature(ctx context.Context, feature models.Feature) (models.Feature, error) {
	log := logger.FromContext(ctx)

	if feature.Title == "" {
		log.Error().Msg("feature title is required")
		return models.Feature{}, ErrInvalidDataProvided
	}

	created, err := s.repository.CreateFeature(ctx, feature)
	if err != nil {
		log.Err(err).Str("title", feature.Title).Msg("feature creation failed")
		return models.Feature{}, fmt.Errorf("feature creation failed: %w", err)
	}

	return created, nil
}

func (s *featureService) UpdateFeature(ctx context.Context, feature models.Feature) (models.Feature, error) {
	log := logger.FromContext(ctx)

	if feature.Title == "" {
		log.Error().Int64("id", feature.ID).Msg("feature title is required")
		return models.Feature{}, ErrInvalidDataProvided
	}

	updated, err := s.repository.UpdateFeature(ctx, feature)
	if err != nil {
		log.Err(err).Int64("id", feature.ID).Msg("feature update failed")
		return models.Feature{}, fmt.Errorf("feature update failed: %w", err)
	}

	return updated, nil
}

func (s *featureService) DeleteFeature(ctx context.Context, id int64) error {
	if err := s.repository.DeleteFeature(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("feature deletion failed")
		return fmt.Errorf("feature deletion failed: %w", err)
	}

	return nil
}
