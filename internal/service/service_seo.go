package service

import (
	"context"
	"fmt"

	"go-folio/internal/logger"
	"go-folio/internal/store"
	"go-folio/models"
)

type seoService struct {
	repository store.SEORepository
	logger     *logger.Logger
}

func NewSEOService(repository store.SEORepository, logger *logger.Logger) SEOService {
	return &seoService{repository: repository, logger: logger}
}

// GetSEOSettings returns every SEO record keyed by page name, the shape the
// public site consumes when resolving meta tags per route.
func (s *seoService) GetSEOSettings(ctx context.Context) (models.SEOSettings, error) {
	settings, err := s.repository.ListSEOSettings(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("seo settings list failed")
		return nil, fmt.Errorf("seo settings list failed: %w", err)
	}

	byPage := make(models.SEOSettings, len(settings))
	for _, setting := range settings {
		byPage[setting.PageName] = setting
	}

	return byPage, nil
}

func (s *seoService) GetSEOByPage(ctx context.Context, page string) (models.SEOSetting, error) {
	log := logger.FromContext(ctx)

	if page == "" {
		log.Error().Msg("page name is required")
		return models.SEOSetting{}, ErrInvalidDataProvided
	}

	setting, err := s.repository.GetSEOByPage(ctx, page)
	if err != nil {
		log.Err(err).Str("page", page).Msg("seo lookup failed")
		return models.SEOSetting{}, fmt.Errorf("seo lookup failed: %w", err)
	}

	return setting, nil
}

func (s *seoService) UpsertSEO(ctx context.Context, setting models.SEOSetting) (models.SEOSetting, error) {
	log := logger.FromContext(ctx)

	if setting.PageName == "" {
		log.Error().Msg("page name is required")
		return models.SEOSetting{}, ErrInvalidDataProvided
	}

	saved, err := s.repository.UpsertSEO(ctx, setting)
	if err != nil {
		log.Err(err).Str("page", setting.PageName).Msg("seo upsert failed")
		return models.SEOSetting{}, fmt.Errorf("seo upsert failed: %w", err)
	}

	return saved, nil
}

func (s *seoService) UpdateSEOByPage(ctx context.Context, page string, setting models.SEOSetting) (models.SEOSetting, error) {
	log := logger.FromContext(ctx)

	if page == "" {
		log.Error().Msg("page name is required")
		return models.SEOSetting{}, ErrInvalidDataProvided
	}

	updated, err := s.repository.UpdateSEOByPage(ctx, page, setting)
	if err != nil {
		log.Err(err).Str("page", page).Msg("seo update failed")
		return models.SEOSetting{}, fmt.Errorf("seo update failed: %w", err)
	}

	return updated, nil
}
