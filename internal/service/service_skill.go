package service

import (
	"context"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/internal/store"
	"go-folio/models"
)

type skillService struct {
	repository store.SkillRepository
	logger     *logger.Logger
}

func NewSkillService(repository store.SkillRepository, logger *logger.Logger) SkillService {
	return &skillService{repository: repository, logger: logger}
}

// ListSkills returns every skill grouped by category. The repository already
// orders rows by (category, id), so appending in row order keeps the
// per-category ordering stable.
func (s *skillService) ListSkills(ctx context.Context) (models.SkillsByCategory, error) {
	skills, err := s.repository.ListSkills(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("skill list failed")
		return nil, fmt.Errorf("skill list failed: %w", err)
	}

	grouped := make(models.SkillsByCategory, len(skills))
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}

	return grouped, nil
}

func (s *skillService) GetSkill(ctx context.Context, id int64) (models.Skill, error) {
	skill, err := s.repository.GetSkill(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("skill lookup failed")
		return models.Skill{}, fmt.Errorf("skill lookup failed: %w", err)
	}

	return skill, nil
}

func (s *skillService) CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	log := logger.FromContext(ctx)

	if skill.Name == "" || skill.Category == "" {
		log.Error().Msg("skill name and category are required")
		return models.Skill{}, ErrInvalidDataProvided
	}

	created, err := s.repository.CreateSkill(ctx, skill)
	if err != nil {
		log.Err(err).Str("name", skill.Name).Msg("skill creation failed")
		return models.Skill{}, fmt.Errorf("skill creation failed: %w", err)
	}

	return created, nil
}

func (s *skillService) UpdateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	log := logger.FromContext(ctx)

	if skill.Name == "" || skill.Category == "" {
		log.Error().Int64("id", skill.ID).Msg("skill name and category are required")
		return models.Skill{}, ErrInvalidDataProvided
	}

	updated, err := s.repository.UpdateSkill(ctx, skill)
	if err != nil {
		log.Err(err).Int64("id", skill.ID).Msg("skill update failed")
		return models.Skill{}, fmt.Errorf("skill update failed: %w", err)
	}

	return updated, nil
}

func (s *skillService) DeleteSkill(ctx context.Context, id int64) error {
	if err := s.repository.DeleteSkill(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("skill deletion failed")
		return fmt.Errorf("skill deletion failed: %w", err)
	}

	return nil
}
