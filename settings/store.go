package settings

import "mediadock/models"

// RecordKey is the fixed name of the persisted settings record.
const RecordKey = "app_settings"

// Store defines the interface for settings persistence. Implementations are
// injected into the service layer so tests can substitute an in-memory store.
type Store interface {
	// Load retrieves the persisted settings, returning defaults if no record
	// exists or the record cannot be decoded.
	Load() (models.AppSettings, error)
	// Save persists the settings wholesale under the fixed record key.
	Save(settings models.AppSettings) error
	// Close releases store resources.
	Close() error
}
