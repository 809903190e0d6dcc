package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/models"
)

// experienceRepository is the PostgreSQL-backed implementation of
// [ExperienceRepository]. Achievements are stored in a jsonb column.
type experienceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExperienceRepository constructs an [ExperienceRepository] backed by the
// provided database connection and logger.
func NewExperienceRepository(db *DB, logger *logger.Logger) ExperienceRepository {
	logger.Debug().Msg("creating experience repository")
	return &experienceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *experienceRepository) ListExperience(ctx context.Context) ([]models.Experience, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExperienceQuery()
	if err != nil {
		log.Err(err).Str("func", "*experienceRepository.ListExperience").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*experienceRepository.ListExperience").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Experience, 0, 16)

	for rows.Next() {
		entry, scanErr := scanExperience(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*experienceRepository.ListExperience").Msg("failed to scan experience row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*experienceRepository.ListExperience").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (r *experienceRepository) GetExperience(ctx context.Context, id int64) (models.Experience, error) {
	log := logger.FromContext(ctx)

	entry, err := scanExperience(r.db.QueryRowContext(ctx, getExperience, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*experienceRepository.GetExperience").Int64("id", id).Msg("experience not found")
			return models.Experience{}, ErrNotFound
		}

		log.Err(err).Str("func", "*experienceRepository.GetExperience").Int64("id", id).Msg("failed to get experience")
		return models.Experience{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *experienceRepository) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	log := logger.FromContext(ctx)

	achievements, err := marshalStringList(experience.Achievements)
	if err != nil {
		log.Err(err).Str("func", "*experienceRepository.CreateExperience").Msg("failed to encode achievements")
		return models.Experience{}, err
	}

	created, err := scanExperience(r.db.QueryRowContext(ctx, createExperience,
		experience.Company, experience.Position, experience.Period,
		experience.Description, achievements,
	))
	if err != nil {
		log.Err(err).Str("func", "*experienceRepository.CreateExperience").Msg("failed to create experience")
		return models.Experience{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *experienceRepository) UpdateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	log := logger.FromContext(ctx)

	achievements, err := marshalStringList(experience.Achievements)
	if err != nil {
		log.Err(err).Str("func", "*experienceRepository.UpdateExperience").Int64("id", experience.ID).Msg("failed to encode achievements")
		return models.Experience{}, err
	}

	updated, err := scanExperience(r.db.QueryRowContext(ctx, updateExperience,
		experience.Company, experience.Position, experience.Period,
		experience.Description, achievements,
		experience.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*experienceRepository.UpdateExperience").Int64("id", experience.ID).Msg("experience not found")
			return models.Experience{}, ErrNotFound
		}

		log.Err(err).Str("func", "*experienceRepository.UpdateExperience").Int64("id", experience.ID).Msg("failed to update experience")
		return models.Experience{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *experienceRepository) DeleteExperience(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExperience, id)
	if err != nil {
		log.Err(err).Str("func", "*experienceRepository.DeleteExperience").Int64("id", id).Msg("failed to delete experience")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*experienceRepository.DeleteExperience").Int64("id", id).Msg("experience not found")
		return ErrNotFound
	}

	return nil
}

func scanExperience(row rowScanner) (models.Experience, error) {
	var (
		entry        models.Experience
		achievements []byte
	)

	err := row.Scan(
		&entry.ID,
		&entry.Company,
		&entry.Position,
		&entry.Period,
		&entry.Description,
		&achievements,
	)
	if err != nil {
		return models.Experience{}, err
	}

	entry.Achievements, err = unmarshalStringList(achievements)
	if err != nil {
		return models.Experience{}, err
	}

	return entry, nil
}
