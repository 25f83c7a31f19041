package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"mediadock/models"

	"gorm.io/gorm"
)

// DBStore persists the settings record as a JSON document in the generic
// stored-record table.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore constructs a store backed by the given database handle.
func NewDBStore(db *gorm.DB) (*DBStore, error) {
	if db == nil {
		return nil, errors.New("database not initialized")
	}
	return &DBStore{db: db}, nil
}

// Load reads the settings record. A missing row or an undecodable document
// yields the defaults; only a store-level failure is reported as an error.
func (s *DBStore) Load() (models.AppSettings, error) {
	var record models.StoredRecord
	if err := s.db.First(&record, "key = ?", RecordKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultAppSettings(), nil
		}
		return models.AppSettings{}, fmt.Errorf("failed to read settings record: %w", err)
	}

	var settings models.AppSettings
	if err := json.Unmarshal([]byte(record.Value), &settings); err != nil {
		// Malformed persisted data is replaced by defaults rather than
		// surfaced; the next save overwrites the bad document.
		log.Printf("Settings record undecodable, falling back to defaults: %v", err)
		return models.DefaultAppSettings(), nil
	}
	return settings, nil
}

// Save serializes the settings and upserts them under the fixed record key.
func (s *DBStore) Save(settings models.AppSettings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	record := models.StoredRecord{Key: RecordKey, Value: string(value)}
	if err := s.db.Save(&record).Error; err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}

// Close is a no-op; the store shares the process-wide database connection.
func (s *DBStore) Close() error {
	return nil
}
