package controllers

import (
	"fmt"
	"testing"

	"eslapi/database"
	"eslapi/models/exercise"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDb swaps the global handle for an in-memory sqlite database and
// restores it when the test ends. cache=shared keeps every pooled
// connection on the same in-memory database.
func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&exercise.ProgressRecord{}))

	previous := database.Database
	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() {
		database.Database = previous
	})

	return db
}

func scorePtr(v int) *int { return &v }

func TestUpsertProgressCreatesSingleRecord(t *testing.T) {
	db := openTestDb(t)

	record, err := upsertProgress(7, 42, true, scorePtr(80))
	require.NoError(t, err)

	assert.Equal(t, uint(7), record.UserID)
	assert.Equal(t, uint(42), record.ExerciseID)
	assert.True(t, record.Completed)
	require.NotNil(t, record.Score)
	assert.Equal(t, 80, *record.Score)
	require.NotNil(t, record.CompletedAt)

	var count int64
	require.NoError(t, db.Model(&exercise.ProgressRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertProgressOverwritesInPlace(t *testing.T) {
	db := openTestDb(t)

	first, err := upsertProgress(7, 42, true, scorePtr(40))
	require.NoError(t, err)

	second, err := upsertProgress(7, 42, true, scorePtr(90))
	require.NoError(t, err)

	// Still one row for the pair, carrying the second call's values.
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&exercise.ProgressRecord{}).
		Where("user_id = ? AND exercise_id = ?", 7, 42).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored exercise.ProgressRecord
	require.NoError(t, db.Where("user_id = ? AND exercise_id = ?", 7, 42).First(&stored).Error)
	assert.True(t, stored.Completed)
	require.NotNil(t, stored.Score)
	assert.Equal(t, 90, *stored.Score)
	require.NotNil(t, stored.CompletedAt)
}

func TestUpsertProgressClearsCompletionOnIncomplete(t *testing.T) {
	db := openTestDb(t)

	_, err := upsertProgress(7, 42, true, scorePtr(75))
	require.NoError(t, err)

	record, err := upsertProgress(7, 42, false, nil)
	require.NoError(t, err)

	assert.False(t, record.Completed)
	assert.Nil(t, record.Score)
	assert.Nil(t, record.CompletedAt)

	var count int64
	require.NoError(t, db.Model(&exercise.ProgressRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertProgressKeepsPairsSeparate(t *testing.T) {
	db := openTestDb(t)

	_, err := upsertProgress(7, 42, true, scorePtr(60))
	require.NoError(t, err)
	_, err = upsertProgress(7, 43, true, scorePtr(70))
	require.NoError(t, err)
	_, err = upsertProgress(8, 42, true, scorePtr(80))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&exercise.ProgressRecord{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
