package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"mediadock/models"
)

// MemoryStore keeps records in a map. It is used by tests and ephemeral runs;
// it serializes through JSON so it exercises the same document round-trip as
// the database-backed store.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]string
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]string)}
}

// Load returns the stored settings, or defaults when absent or undecodable.
func (s *MemoryStore) Load() (models.AppSettings, error) {
	s.mu.Lock()
	value, ok := s.records[RecordKey]
	s.mu.Unlock()

	if !ok {
		return models.DefaultAppSettings(), nil
	}

	var settings models.AppSettings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return models.DefaultAppSettings(), nil
	}
	return settings, nil
}

// Save serializes and stores the settings under the fixed record key.
func (s *MemoryStore) Save(settings models.AppSettings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	s.mu.Lock()
	s.records[RecordKey] = string(value)
	s.mu.Unlock()
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// SetRaw stores an arbitrary document under the record key. Tests use it to
// simulate corrupted persisted data.
func (s *MemoryStore) SetRaw(value string) {
	s.mu.Lock()
	s.records[RecordKey] = value
	s.mu.Unlock()
}
