package service

import (
	"context"
	"encoding/json"

	"portfolio/internal/cache"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const publicSiteCacheKey = "public:site"

// ContentService handles the settings and content documents plus the combined
// public site view.
type ContentService interface {
	GetPublicSite(ctx context.Context) (*model.PublicSite, error)
	GetContent(ctx context.Context) (*model.Content, error)
	UpdateContent(ctx context.Context, update model.ContentUpdate) (*model.Content, error)
	GetSettings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, update model.SettingsUpdate) (*model.Settings, error)
	SetCV(ctx context.Context, cv model.CVInfo) error
}

type contentService struct {
	contentRepo  repository.ContentRepository
	settingsRepo repository.SettingsRepository
	cache        *cache.Client
}

// NewContentService creates a new content service.
func NewContentService(contentRepo repository.ContentRepository, settingsRepo repository.SettingsRepository, cache *cache.Client) ContentService {
	return &contentService{
		contentRepo:  contentRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// GetPublicSite assembles the public settings+content view, cached.
func (s *contentService) GetPublicSite(ctx context.Context) (*model.PublicSite, error) {
	if data, _ := s.cache.Get(ctx, publicSiteCacheKey); data != nil {
		var cached model.PublicSite
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	site := &model.PublicSite{
		Settings: model.PublicSiteSettings{
			Theme:           settings.Theme,
			SiteTitle:       settings.SiteTitle,
			SiteDescription: settings.SiteDescription,
		},
		Content: model.PublicSiteContent{
			Hero:     content.Hero,
			About:    content.About,
			Services: content.Services,
		},
	}

	if payload, err := json.Marshal(site); err == nil {
		_ = s.cache.Set(ctx, publicSiteCacheKey, payload, publicCacheTTL)
	}
	return site, nil
}

func (s *contentService) GetContent(ctx context.Context) (*model.Content, error) {
	return s.contentRepo.Get(ctx)
}

func (s *contentService) UpdateContent(ctx context.Context, update model.ContentUpdate) (*model.Content, error) {
	content, err := s.contentRepo.Update(ctx, update)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, publicSiteCacheKey)
	return content, nil
}

func (s *contentService) GetSettings(ctx context.Context) (*model.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *contentService) UpdateSettings(ctx context.Context, update model.SettingsUpdate) (*model.Settings, error) {
	settings, err := s.settingsRepo.Update(ctx, update)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, publicSiteCacheKey)
	return settings, nil
}

func (s *contentService) SetCV(ctx context.Context, cv model.CVInfo) error {
	if _, err := s.contentRepo.SetCV(ctx, cv); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, publicSiteCacheKey)
	return nil
}
