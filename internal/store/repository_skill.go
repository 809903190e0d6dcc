package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/models"
)

// skillRepository is the PostgreSQL-backed implementation of
// [SkillRepository].
type skillRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSkillRepository constructs a [SkillRepository] backed by the provided
// database connection and logger.
func NewSkillRepository(db *DB, logger *logger.Logger) SkillRepository {
	logger.Debug().Msg("creating skill repository")
	return &skillRepository{
		db:     db,
		logger: logger,
	}
}

func (r *skillRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSkillsQuery()
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.ListSkills").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.ListSkills").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	skills := make([]models.Skill, 0, 32)

	for rows.Next() {
		var skill models.Skill

		scanErr := rows.Scan(&skill.ID, &skill.Category, &skill.Name, &skill.Level, &skill.IconURL, &skill.Color)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*skillRepository.ListSkills").Msg("failed to scan skill row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		skills = append(skills, skill)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*skillRepository.ListSkills").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return skills, nil
}

func (r *skillRepository) GetSkill(ctx context.Context, id int64) (models.Skill, error) {
	log := logger.FromContext(ctx)

	var skill models.Skill
	row := r.db.QueryRowContext(ctx, getSkill, id)

	err := row.Scan(&skill.ID, &skill.Category, &skill.Name, &skill.Level, &skill.IconURL, &skill.Color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*skillRepository.GetSkill").Int64("id", id).Msg("skill not found")
			return models.Skill{}, ErrNotFound
		}

		log.Err(err).Str("func", "*skillRepository.GetSkill").Int64("id", id).Msg("failed to get skill")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return skill, nil
}

func (r *skillRepository) CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	log := logger.FromContext(ctx)

	var created models.Skill
	row := r.db.QueryRowContext(ctx, createSkill, skill.Category, skill.Name, skill.Level, skill.IconURL, skill.Color)

	err := row.Scan(&created.ID, &created.Category, &created.Name, &created.Level, &created.IconURL, &created.Color)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.CreateSkill").Msg("failed to create skill")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *skillRepository) UpdateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	log := logger.FromContext(ctx)

	var updated models.Skill
	row := r.db.QueryRowContext(ctx, updateSkill, skill.Category, skill.Name, skill.Level, skill.IconURL, skill.Color, skill.ID)

	err := row.Scan(&updated.ID, &updated.Category, &updated.Name, &updated.Level, &updated.IconURL, &updated.Color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*skillRepository.UpdateSkill").Int64("id", skill.ID).Msg("skill not found")
			return models.Skill{}, ErrNotFound
		}

		log.Err(err).Str("func", "*skillRepository.UpdateSkill").Int64("id", skill.ID).Msg("failed to update skill")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *skillRepository) DeleteSkill(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSkill, id)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.DeleteSkill").Int64("id", id).Msg("failed to delete skill")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*skillRepository.DeleteSkill").Int64("id", id).Msg("skill not found")
		return ErrNotFound
	}

	return nil
}
