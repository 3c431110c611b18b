package repository

import (
	"context"
	"time"

	"portfolio/internal/model"
	"portfolio/internal/store"
)

// SettingsRepository persists the single site settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, update model.SettingsUpdate) (*model.Settings, error)
}

type settingsRepository struct {
	store store.Store
}

// NewSettingsRepository builds a store-backed repository.
func NewSettingsRepository(s store.Store) SettingsRepository {
	return &settingsRepository{store: s}
}

// Get returns the settings document, seeding the default on first use.
func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	found, err := r.store.Read(ctx, store.CollectionSettings, &settings)
	if err != nil {
		return nil, err
	}
	if !found {
		settings = model.DefaultSettings()
		if err := r.store.Replace(ctx, store.CollectionSettings, settings); err != nil {
			return nil, err
		}
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, update model.SettingsUpdate) (*model.Settings, error) {
	settings, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	update.Apply(settings)
	settings.UpdatedAt = time.Now()
	if err := r.store.Replace(ctx, store.CollectionSettings, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
