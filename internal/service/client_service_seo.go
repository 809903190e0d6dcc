package service

import (
	"context"

	"go-folio/internal/adapter"
	"go-folio/models"
)

type clientSEOService struct {
	gateway adapter.Gateway
}

func NewClientSEOService(gateway adapter.Gateway) ClientSEOService {
	return &clientSEOService{gateway: gateway}
}

func (s *clientSEOService) List(ctx context.Context) (models.SEOSettings, error) {
	return s.gateway.GetSEOSettings(ctx)
}

func (s *clientSEOService) GetByPage(ctx context.Context, page string) (models.SEOSetting, error) {
	if page == "" {
		return models.SEOSetting{}, ErrInvalidDataProvided
	}

	return s.gateway.GetSEOByPage(ctx, page)
}

func (s *clientSEOService) Upsert(ctx context.Context, setting models.SEOSetting) (models.SEOSetting, error) {
	if setting.PageName == "" {
		return models.SEOSetting{}, ErrInvalidDataProvided
	}

	return s.gateway.UpsertSEO(ctx, setting)
}

func (s *clientSEOService) UpdateByPage(ctx context.Context, page string, setting models.SEOSetting) (models.SEOSetting, error) {
	if page == "" {
		return models.SEOSetting{}, ErrInvalidDataProvided
	}

	return s.gateway.UpdateSEOByPage(ctx, page, setting)
}
