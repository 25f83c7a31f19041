package models

import "time"

// AppSettings is the single persisted configuration record for the desktop UI.
// Field names are fixed by the persisted JSON document; the front-end binds to
// them directly.
type AppSettings struct {
	// R2 credentials
	R2AccountID       string `json:"r2_account_id"`
	R2AccessKeyID     string `json:"r2_access_key_id"`
	R2SecretAccessKey string `json:"r2_secret_access_key"`
	R2BucketName      string `json:"r2_bucket_name"`

	// Processing
	GPUEnabled              bool `json:"gpu_enabled"`
	ParallelProcessingCount uint `json:"parallel_processing_count"`
	MaxParallelProcessing   uint `json:"max_parallel_processing"`

	// Deletion policy
	DeleteOriginalAfterConversion bool `json:"delete_original_after_conversion"`
	CleanupHLSTempFiles           bool `json:"cleanup_hls_temp_files"`
	KeepOriginalMP4               bool `json:"keep_original_mp4"`

	// Quality
	Include480p bool `json:"include_480p"`
}

// DefaultAppSettings returns the settings used when nothing has been persisted
// yet, or when the persisted record cannot be decoded.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		GPUEnabled:              true,
		ParallelProcessingCount: 2,
		MaxParallelProcessing:   4,
		CleanupHLSTempFiles:     true,
		KeepOriginalMP4:         true,
	}
}

// StoredRecord stores a named JSON document in SQLite.
// It is intentionally generic to avoid adding new tables for every tiny feature.
type StoredRecord struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
