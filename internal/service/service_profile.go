package service

import (
	"context"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/internal/store"
	"go-folio/models"
)

type profileService struct {
	repository store.ProfileRepository
	logger     *logger.Logger
}

func NewProfileService(repository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{repository: repository, logger: logger}
}

func (s *profileService) GetProfile(ctx context.Context) (models.Profile, error) {
	profile, err := s.repository.GetProfile(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if profile.Name == "" {
		log.Error().Msg("profile name is required")
		return models.Profile{}, ErrInvalidDataProvided
	}

	updated, err := s.repository.UpdateProfile(ctx, profile)
	if err != nil {
		log.Err(err).Msg("profile update failed")
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}
