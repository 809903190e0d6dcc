package service

import (
	"context"

	"go-folio/internal/adapter"
	"go-folio/models"
)

type clientProjectService struct {
	gateway adapter.Gateway
}

func NewClientProjectService(gateway adapter.Gateway) ClientProjectService {
	return &clientProjectService{gateway: gateway}
}

func (s *clientProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.gateway.ListProjects(ctx)
}

func (s *clientProjectService) Get(ctx context.Context, id int64) (models.Project, error) {
	return s.gateway.GetProject(ctx, id)
}

func (s *clientProjectService) Create(ctx context.Context, project models.Project) (models.Project, error) {
	if project.Title == "" {
		return models.Project{}, ErrInvalidDataProvided
	}

	return s.gateway.CreateProject(ctx, project)
}

func (s *clientProjectService) Update(ctx context.Context, id int64, project models.Project) (models.Project, error) {
	if project.Title == "" {
		return models.Project{}, ErrInvalidDataProvided
	}

	return s.gateway.UpdateProject(ctx, id, project)
}

func (s *clientProjectService) Delete(ctx context.Context, id int64) error {
	return s.gateway.DeleteProject(ctx, id)
}
