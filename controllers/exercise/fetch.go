package controllers

import (
	"eslapi/database"
	"eslapi/models"
	"eslapi/models/exercise"
	"time"

	"gorm.io/gorm"
)

// The stats engine is pure computation; these helpers are its only
// persistence boundary. Everything is fetched wholesale, no pagination.

// fetchUserProgress returns all progress records for one user
func fetchUserProgress(userID uint) ([]exercise.ProgressRecord, error) {
	var progress []exercise.ProgressRecord
	err := database.Database.Db.Where("user_id = ?", userID).Find(&progress).Error
	return progress, err
}

// fetchAllProgress returns every user's progress records (admin analytics)
func fetchAllProgress() ([]exercise.ProgressRecord, error) {
	var progress []exercise.ProgressRecord
	err := database.Database.Db.Find(&progress).Error
	return progress, err
}

// fetchAllExercises returns the published exercise catalog
func fetchAllExercises() ([]exercise.Exercise, error) {
	var exercises []exercise.Exercise
	err := database.Database.Db.
		Where("is_deleted = ? AND is_published = ?", false, true).
		Find(&exercises).Error
	return exercises, err
}

// fetchAllCategories returns categories in canonical order
func fetchAllCategories() ([]exercise.Category, error) {
	var categories []exercise.Category
	err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("order_index asc, id asc").
		Find(&categories).Error
	return categories, err
}

// countActiveUsers counts non-deleted user accounts
func countActiveUsers() (int64, error) {
	var total int64
	err := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&total).Error
	return total, err
}

// upsertProgress finds or creates the single record for (user, exercise) and
// overwrites it in place. Re-submissions never append a duplicate row.
func upsertProgress(userID, exerciseID uint, completed bool, score *int) (exercise.ProgressRecord, error) {
	db := database.Database.Db

	var record exercise.ProgressRecord
	err := db.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).First(&record).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return record, err
		}
		record = exercise.ProgressRecord{UserID: userID, ExerciseID: exerciseID}
	}

	record.Completed = completed
	record.Score = score
	if completed {
		now := time.Now().UTC()
		record.CompletedAt = &now
	} else {
		record.CompletedAt = nil
	}

	return record, db.Save(&record).Error
}
