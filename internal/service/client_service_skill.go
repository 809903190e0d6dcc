package service

import (
	"context"

	"go-folio/internal/adapter"
	"go-folio/models"
)

type clientSkillService struct {
	gateway adapter.Gateway
}

func NewClientSkillService(gateway adapter.Gateway) ClientSkillService {
	return &clientSkillService{gateway: gateway}
}

func (s *clientSkillService) List(ctx context.Context) (models.SkillsByCategory, error) {
	return s.gateway.ListSkills(ctx)
}

func (s *clientSkillService) Get(ctx context.Context, id int64) (models.Skill, error) {
	return s.gateway.GetSkill(ctx, id)
}

func (s *clientSkillService) Create(ctx context.Context, skill models.Skill) (models.Skill, error) {
	if skill.Name == "" || skill.Category == "" {
		return models.Skill{}, ErrInvalidDataProvided
	}

	return s.gateway.CreateSkill(ctx, skill)
}

func (s *clientSkillService) Update(ctx context.Context, id int64, skill models.Skill) (models.Skill, error) {
	if skill.Name == "" || skill.Category == "" {
		return models.Skill{}, ErrInvalidDataProvided
	}

	return s.gateway.UpdateSkill(ctx, id, skill)
}

func (s *clientSkillService) Delete(ctx context.Context, id int64) error {
	return s.gateway.DeleteSkill(ctx, id)
}
