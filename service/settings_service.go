package service

import (
	"mediadock/models"
	"mediadock/settings"
)

// SettingsService handles settings persistence business logic
type SettingsService struct {
	store settings.Store
}

// NewSettingsService constructs a settings service around the given store
func NewSettingsService(store settings.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Load returns the persisted settings, or the defaults when nothing usable is
// stored.
func (s *SettingsService) Load() (models.AppSettings, error) {
	return s.store.Load()
}

// Save persists the settings wholesale.
func (s *SettingsService) Save(settings models.AppSettings) error {
	return s.store.Save(settings)
}
