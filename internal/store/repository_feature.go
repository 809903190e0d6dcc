package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/models"
)

// featureRepository is the PostgreSQL-backed implementation of
// [FeatureRepository].
type featureRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFeatureRepository constructs a [FeatureRepository] backed by the
// provided database connection and logger.
func NewFeatureRepository(db *DB, logger *logger.Logger) FeatureRepository {
	logger.Debug().Msg("creating feature repository")
	return &featureRepository{
		db:     db,
		logger: logger,
	}
}

func (r *featureRepository) ListFeatures(ctx context.Context) ([]models.Feature, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFeaturesQuery()
	if err != nil {
		log.Err(err).Str("func", "*featureRepository.ListFeatures").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*featureRepository.ListFeatures").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	features := make([]models.Feature, 0, 8)

	for rows.Next() {
		var feature models.Feature

		scanErr := rows.Scan(&feature.ID, &feature.Title, &feature.Description, &feature.Icon, &feature.OrderIndex)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*featureRepository.ListFeatures").Msg("failed to scan feature row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		features = append(features, feature)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*featureRepository.ListFeatures").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return features, nil
}

func (r *featureRepository) GetFeature(ctx context.Context, id int64) (models.Feature, error) {
	log := logger.FromContext(ctx)

	var feature models.Feature
	row := r.db.QueryRowContext(ctx, getFeature, id)

	err := row.Scan(&feature.ID, &feature.Title, &feature.Description, &feature.Icon, &feature.OrderIndex)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*featureRepository.GetFeature").Int64("id", id).Msg("feature not found")
			return models.Feature{}, ErrNotFound
		}

		log.Err(err).Str("func", "*featureRepository.GetFeature").Int64("id", id).Msg("failed to get feature")
		return models.Feature{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return feature, nil
}

func (r *featureRepository) CreateFeature(ctx context.Context, feature models.Feature) (models.Feature, error) {
	log := logger.FromContext(ctx)

	var created models.Feature
	row := r.db.QueryRowContext(ctx, createFeature, feature.Title, feature.Description, feature.Icon, feature.OrderIndex)

	err := row.Scan(&created.ID, &created.Title, &created.Description, &created.Icon, &created.OrderIndex)
	if err != nil {
		log.Err(err).Str("func", "*featureRepository.CreateFeature").Msg("failed to create feature")
		return models.Feature{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *featureRepository) UpdateFeature(ctx context.Context, feature models.Feature) (models.Feature, error) {
	log := logger.FromContext(ctx)

	var updated models.Feature
	row := r.db.QueryRowContext(ctx, updateFeature, feature.Title, feature.Description, feature.Icon, feature.OrderIndex, feature.ID)

	err := row.Scan(&updated.ID, &updated.Title, &updated.Description, &updated.Icon, &updated.OrderIndex)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*featureRepository.UpdateFeature").Int64("id", feature.ID).Msg("feature not found")
			return models.Feature{}, ErrNotFound
		}

		log.Err(err).Str("func", "*featureRepository.UpdateFeature").Int64("id", feature.ID).Msg("failed to update feature")
		return models.Feature{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *featureRepository) DeleteFeature(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFeature, id)
	if err != nil {
		log.Err(err).Str("func", "*featureRepository.DeleteFeature").Int64("id", id).Msg("failed to delete feature")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*featureRepository.DeleteFeature").Int64("id", id).Msg("feature not found")
		return ErrNotFound
	}

	return nil
}
