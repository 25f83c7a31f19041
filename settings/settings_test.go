package settings

import (
	"testing"

	"mediadock/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDBStore(t *testing.T) (*DBStore, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StoredRecord{}))

	store, err := NewDBStore(db)
	require.NoError(t, err)
	return store, db
}

func TestDBStoreLoadEmptyReturnsDefaults(t *testing.T) {
	store, _ := newTestDBStore(t)

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, models.DefaultAppSettings(), got)
}

func TestDBStoreRoundTrip(t *testing.T) {
	store, _ := newTestDBStore(t)

	want := models.AppSettings{
		R2AccountID:                   "acct",
		R2AccessKeyID:                 "key",
		R2SecretAccessKey:             "secret",
		R2BucketName:                  "bucket",
		GPUEnabled:                    false,
		ParallelProcessingCount:       3,
		MaxParallelProcessing:         8,
		DeleteOriginalAfterConversion: true,
		CleanupHLSTempFiles:           false,
		KeepOriginalMP4:               false,
		Include480p:                   true,
	}

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDBStoreSingleFieldMutation(t *testing.T) {
	store, _ := newTestDBStore(t)

	settings := models.DefaultAppSettings()
	require.NoError(t, store.Save(settings))

	settings.Include480p = true
	require.NoError(t, store.Save(settings))

	got, err := store.Load()
	require.NoError(t, err)
	require.True(t, got.Include480p)

	// Everything else stays at the defaults.
	settings.Include480p = false
	got.Include480p = false
	require.Equal(t, settings, got)
}

func TestDBStoreCorruptRecordFallsBackToDefaults(t *testing.T) {
	store, db := newTestDBStore(t)

	record := models.StoredRecord{Key: RecordKey, Value: "{not json"}
	require.NoError(t, db.Save(&record).Error)

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, models.DefaultAppSettings(), got)
}

func TestDBStoreClosedDatabaseSurfacesError(t *testing.T) {
	store, db := newTestDBStore(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = store.Load()
	require.Error(t, err)
}

func TestMemoryStoreDefaultsAndRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, models.DefaultAppSettings(), got)

	want := models.DefaultAppSettings()
	want.R2BucketName = "videos"
	want.ParallelProcessingCount = 4
	require.NoError(t, store.Save(want))

	got, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestMemoryStoreCorruptRecordFallsBackToDefaults(t *testing.T) {
	store := NewMemoryStore()
	store.SetRaw("][")

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, models.DefaultAppSettings(), got)
}
