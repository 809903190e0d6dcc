package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. The "profile" table holds exactly one row (id = 1),
// created by the migrations.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile returns the singleton owner record. [ErrNotFound] is returned
// only when the seed row is missing, which indicates an unmigrated database.
func (r *profileRepository) GetProfile(ctx context.Context) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var p models.Profile
	row := r.db.QueryRowContext(ctx, getProfile)

	err := row.Scan(&p.Name, &p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location, &p.GithubURL, &p.LinkedinURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*profileRepository.GetProfile").Msg("profile row missing")
			return models.Profile{}, ErrNotFound
		}

		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("failed to get profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}

// UpdateProfile replaces the singleton owner record and returns the stored
// result.
func (r *profileRepository) UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var p models.Profile
	row := r.db.QueryRowContext(ctx, updateProfile,
		profile.Name, profile.Title, profile.Bio, profile.Email,
		profile.Phone, profile.Location, profile.GithubURL, profile.LinkedinURL,
	)

	err := row.Scan(&p.Name, &p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location, &p.GithubURL, &p.LinkedinURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*profileRepository.UpdateProfile").Msg("profile row missing")
			return models.Profile{}, ErrNotFound
		}

		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("failed to update profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}
