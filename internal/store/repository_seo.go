package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/models"
)

// seoRepository is the PostgreSQL-backed implementation of [SEORepository].
// Rows are keyed by page_name; the upsert path uses a dynamically built
// INSERT ... ON CONFLICT query.
type seoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSEORepository constructs a [SEORepository] backed by the provided
// database connection and logger.
func NewSEORepository(db *DB, logger *logger.Logger) SEORepository {
	logger.Debug().Msg("creating seo repository")
	return &seoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *seoRepository) ListSEOSettings(ctx context.Context) ([]models.SEOSetting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSEOSettingsQuery()
	if err != nil {
		log.Err(err).Str("func", "*seoRepository.ListSEOSettings").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*seoRepository.ListSEOSettings").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	settings := make([]models.SEOSetting, 0, 8)

	for rows.Next() {
		var s models.SEOSetting

		scanErr := rows.Scan(&s.PageName, &s.Title, &s.Description, &s.Keywords, &s.OGImage, &s.TwitterImage, &s.CanonicalURL)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*seoRepository.ListSEOSettings").Msg("failed to scan seo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		settings = append(settings, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*seoRepository.ListSEOSettings").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return settings, nil
}

func (r *seoRepository) GetSEOByPage(ctx context.Context, page string) (models.SEOSetting, error) {
	log := logger.FromContext(ctx)

	var s models.SEOSetting
	row := r.db.QueryRowContext(ctx, getSEOByPage, page)

	err := row.Scan(&s.PageName, &s.Title, &s.Description, &s.Keywords, &s.OGImage, &s.TwitterImage, &s.CanonicalURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*seoRepository.GetSEOByPage").Str("page", page).Msg("seo setting not found")
			return models.SEOSetting{}, ErrNotFound
		}

		log.Err(err).Str("func", "*seoRepository.GetSEOByPage").Str("page", page).Msg("failed to get seo setting")
		return models.SEOSetting{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}

func (r *seoRepository) UpsertSEO(ctx context.Context, setting models.SEOSetting) (models.SEOSetting, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSEOQuery(setting)
	if err != nil {
		log.Err(err).Str("func", "*seoRepository.UpsertSEO").Str("page", setting.PageName).Msg("failed to build upsert query")
		return models.SEOSetting{}, err
	}

	var s models.SEOSetting
	row := r.db.QueryRowContext(ctx, query, args...)

	err = row.Scan(&s.PageName, &s.Title, &s.Description, &s.Keywords, &s.OGImage, &s.TwitterImage, &s.CanonicalURL)
	if err != nil {
		log.Err(err).Str("func", "*seoRepository.UpsertSEO").Str("page", setting.PageName).Msg("failed to upsert seo setting")
		return models.SEOSetting{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}

func (r *seoRepository) UpdateSEOByPage(ctx context.Context, page string, setting models.SEOSetting) (models.SEOSetting, error) {
	log := logger.FromContext(ctx)

	var s models.SEOSetting
	row := r.db.QueryRowContext(ctx, updateSEOByPage,
		setting.Title, setting.Description, setting.Keywords,
		setting.OGImage, setting.TwitterImage, setting.CanonicalURL,
		page,
	)

	err := row.Scan(&s.PageName, &s.Title, &s.Description, &s.Keywords, &s.OGImage, &s.TwitterImage, &s.CanonicalURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*seoRepository.UpdateSEOByPage").Str("page", page).Msg("seo setting not found")
			return models.SEOSetting{}, ErrNotFound
		}

		log.Err(err).Str("func", "*seoRepository.UpdateSEOByPage").Str("page", page).Msg("failed to update seo setting")
		return models.SEOSetting{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}
