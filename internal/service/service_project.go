package service

import (
	"context"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/internal/store"
	"go-folio/models"
)

type projectService struct {
	repository store.ProjectRepository
	logger     *logger.Logger
}

func NewProjectService(repository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{repository: repository, logger: logger}
}

func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repository.ListProjects(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("project list failed")
		return nil, fmt.Errorf("project list failed: %w", err)
	}

	return projects, nil
}

func (s *projectService) GetProject(ctx context.Context, id int64) (models.Project, error) {
	project, err := s.repository.GetProject(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("project lookup failed")
		return models.Project{}, fmt.Errorf("project lookup failed: %w", err)
	}

	return project, nil
}

func (s *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if project.Title == "" {
		log.Error().Msg("project title is required")
		return models.Project{}, ErrInvalidDataProvided
	}

	created, err := s.repository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("title", project.Title).Msg("project creation failed")
		return models.Project{}, fmt.Errorf("project creation failed: %w", err)
	}

	return created, nil
}

func (s *projectService) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if project.Title == "" {
		log.Error().Int64("id", project.ID).Msg("project title is required")
		return models.Project{}, ErrInvalidDataProvided
	}

	updated, err := s.repository.UpdateProject(ctx, project)
	if err != nil {
		log.Err(err).Int64("id", project.ID).Msg("project update failed")
		return models.Project{}, fmt.Errorf("project update failed: %w", err)
	}

	return updated, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.repository.DeleteProject(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("project deletion failed")
		return fmt.Errorf("project deletion failed: %w", err)
	}

	return nil
}
