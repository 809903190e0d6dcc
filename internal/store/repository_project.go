package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository]. Technologies are stored in a jsonb column and decoded
// back into an ordered string slice on every read.
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProjectsQuery()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)

	for rows.Next() {
		project, scanErr := scanProject(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*projectRepository.ListProjects").Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		projects = append(projects, project)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*projectRepository.ListProjects").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return projects, nil
}

func (r *projectRepository) GetProject(ctx context.Context, id int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	project, err := scanProject(r.db.QueryRowContext(ctx, getProject, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*projectRepository.GetProject").Int64("id", id).Msg("project not found")
			return models.Project{}, ErrNotFound
		}

		log.Err(err).Str("func", "*projectRepository.GetProject").Int64("id", id).Msg("failed to get project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return project, nil
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	technologies, err := marshalStringList(project.Technologies)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("failed to encode technologies")
		return models.Project{}, err
	}

	created, err := scanProject(r.db.QueryRowContext(ctx, createProject,
		project.Title, project.Description, project.Emoji,
		project.GithubURL, project.DemoURL, project.Featured, technologies,
	))
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("failed to create project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	technologies, err := marshalStringList(project.Technologies)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Int64("id", project.ID).Msg("failed to encode technologies")
		return models.Project{}, err
	}

	updated, err := scanProject(r.db.QueryRowContext(ctx, updateProject,
		project.Title, project.Description, project.Emoji,
		project.GithubURL, project.DemoURL, project.Featured, technologies,
		project.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*projectRepository.UpdateProject").Int64("id", project.ID).Msg("project not found")
			return models.Project{}, ErrNotFound
		}

		log.Err(err).Str("func", "*projectRepository.UpdateProject").Int64("id", project.ID).Msg("failed to update project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProject, id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Int64("id", id).Msg("failed to delete project")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*projectRepository.DeleteProject").Int64("id", id).Msg("project not found")
		return ErrNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var (
		project      models.Project
		technologies []byte
	)

	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Emoji,
		&project.GithubURL,
		&project.DemoURL,
		&project.Featured,
		&technologies,
	)
	if err != nil {
		return models.Project{}, err
	}

	project.Technologies, err = unmarshalStringList(technologies)
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}
