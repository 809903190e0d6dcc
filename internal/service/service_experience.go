package service

import (
	"context"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/internal/store"
	"go-folio/models"
)

type experienceService struct {
	repository store.ExperienceRepository
	logger     *logger.Logger
}

func NewExperienceService(repository store.ExperienceRepository, logger *logger.Logger) ExperienceService {
	return &experienceService{repository: repository, logger: logger}
}

func (s *experienceService) ListExperience(ctx context.Context) ([]models.Experience, error) {
	entries, err := s.repository.ListExperience(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("experience list failed")
		return nil, fmt.Errorf("experience list failed: %w", err)
	}

	return entries, nil
}

func (s *experienceService) GetExperience(ctx context.Context, id int64) (models.Experience, error) {
	entry, err := s.repository.GetExperience(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("experience lookup failed")
		return models.Experience{}, fmt.Errorf("experience lookup failed: %w", err)
	}

	return entry, nil
}

func (s *experienceService) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	log := logger.FromContext(ctx)

	if experience.Company == "" || experience.Position == "" {
		log.Error().Msg("experience company and position are required")
		return models.Experience{}, ErrInvalidDataProvided
	}

	created, err := s.repository.CreateExperience(ctx, experience)
	if err != nil {
		log.Err(err).Str("company", experience.Company).Msg("experience creation failed")
		return models.Experience{}, fmt.Errorf("experience creation failed: %w", err)
	}

	return created, nil
}

func (s *experienceService) UpdateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	log := logger.FromContext(ctx)

	if experience.Company == "" || experience.Position == "" {
		log.Error().Int64("id", experience.ID).Msg("experience company and position are required")
		return models.Experience{}, ErrInvalidDataProvided
	}

	updated, err := s.repository.UpdateExperience(ctx, experience)
	if err != nil {
		log.Err(err).Int64("id", experience.ID).Msg("experience update failed")
		return models.Experience{}, fmt.Errorf("experience update failed: %w", err)
	}

	return updated, nil
}

func (s *experienceService) DeleteExperience(ctx context.Context, id int64) error {
	if err := s.repository.DeleteExperience(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("experience deletion failed")
		return fmt.Errorf("experience deletion failed: %w", err)
	}

	return nil
}
