package state

import (
	"context"

	"family-organizer/internal/domain/settings"
	"family-organizer/internal/storage"
)

type SettingsRepository struct {
	store *storage.Store
}

func NewSettingsRepository(store *storage.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

func (r *SettingsRepository) Settings(ctx context.Context) settings.AppSettings {
	return storage.Get(ctx, r.store, storage.KeyAppSettings, emptySettings)
}

func (r *SettingsRepository) UpdateSettings(ctx context.Context, fn func(settings.AppSettings) (settings.AppSettings, error)) error {
	return storage.Update(ctx, r.store, storage.KeyAppSettings, emptySettings, fn)
}

func emptySettings() settings.AppSettings {
	return settings.AppSettings{}
}
