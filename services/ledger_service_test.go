package services

import (
	"testing"
	"time"

	"github.com/aditya-yaduvanshi/calorie-tracker/config"
	"github.com/aditya-yaduvanshi/calorie-tracker/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func TestApplyDeltaCreatesBucketLazily(t *testing.T) {
	db := testDB(t)
	ledger := NewLedgerService(db)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	bucket, err := ledger.ApplyDelta(1, day, Delta{Calorie: 500, PriceCents: 10000, Entries: 1})
	require.NoError(t, err)
	assert.Equal(t, 500, bucket.TotalCalorie)
	assert.Equal(t, 1, bucket.NumOfEntries)
	assert.Equal(t, int64(10000), bucket.TotalPriceCents)

	var count int64
	require.NoError(t, db.Model(&models.LedgerBucket{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// same day again reuses the bucket
	bucket, err = ledger.ApplyDelta(1, day, Delta{Calorie: 300, Entries: 1})
	require.NoError(t, err)
	assert.Equal(t, 800, bucket.TotalCalorie)
	assert.Equal(t, 2, bucket.NumOfEntries)

	require.NoError(t, db.Model(&models.LedgerBucket{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplyDeltaNormalizesToCalendarDay(t *testing.T) {
	db := testDB(t)
	ledger := NewLedgerService(db)

	morning := time.Date(2024, 1, 1, 8, 15, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 1, 22, 45, 0, 0, time.UTC)

	_, err := ledger.ApplyDelta(1, morning, Delta{Calorie: 200, Entries: 1})
	require.NoError(t, err)
	bucket, err := ledger.ApplyDelta(1, evening, Delta{Calorie: 300, Entries: 1})
	require.NoError(t, err)

	assert.Equal(t, 500, bucket.TotalCalorie)
	assert.Equal(t, 2, bucket.NumOfEntries)
}

func TestGetBucketMissingIsZero(t *testing.T) {
	db := testDB(t)
	ledger := NewLedgerService(db)

	bucket, err := ledger.GetBucket(42, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, bucket.TotalCalorie)
	assert.Zero(t, bucket.NumOfEntries)
	assert.Zero(t, bucket.TotalPriceCents)
}

func TestAverageCaloriesPerDay(t *testing.T) {
	assert.Zero(t, AverageCaloriesPerDay(models.LedgerBucket{}))
	assert.Zero(t, AverageCaloriesPerDay(models.LedgerBucket{TotalCalorie: 100}))

	avg := AverageCaloriesPerDay(models.LedgerBucket{TotalCalorie: 500, NumOfEntries: 2})
	assert.Equal(t, 250.0, avg)
}

func TestBucketsAreScopedPerUser(t *testing.T) {
	db := testDB(t)
	ledger := NewLedgerService(db)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := ledger.ApplyDelta(1, day, Delta{Calorie: 100, Entries: 1})
	require.NoError(t, err)
	_, err = ledger.ApplyDelta(2, day, Delta{Calorie: 900, Entries: 1})
	require.NoError(t, err)

	one, err := ledger.GetBucket(1, day)
	require.NoError(t, err)
	two, err := ledger.GetBucket(2, day)
	require.NoError(t, err)
	assert.Equal(t, 100, one.TotalCalorie)
	assert.Equal(t, 900, two.TotalCalorie)
}
