package controllers

import (
	"eslapi/database"
	"eslapi/middleware"
	"eslapi/models"
	"eslapi/models/exercise"

	"github.com/gofiber/fiber/v2"
)

// GetCategoryList lists all categories with their published exercise counts
func GetCategoryList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	categories, err := fetchAllCategories()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	type CategoryWithCount struct {
		exercise.Category
		ExerciseCount int64 `json:"exercise_count"`
	}

	result := make([]CategoryWithCount, len(categories))
	for i, cat := range categories {
		var count int64
		database.Database.Db.Model(&exercise.Exercise{}).
			Where("category_id = ? AND is_deleted = ? AND is_published = ?", cat.ID, false, true).
			Count(&count)
		result[i] = CategoryWithCount{Category: cat, ExerciseCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": result,
	})
}

// GetCategoryDetails gets one category with its published exercises
func GetCategoryDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	categoryID := c.Locals("categoryID").(int)

	var category exercise.Category
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", categoryID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var exercises []exercise.Exercise
	if err := database.Database.Db.
		Where("category_id = ? AND is_deleted = ? AND is_published = ?", categoryID, false, true).
		Order("id asc").Find(&exercises).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exercises!", nil)
	}

	// Attach the user's completion state so the list can show progress
	var progress []exercise.ProgressRecord
	database.Database.Db.Where("user_id = ?", userID).Find(&progress)

	completedByExercise := make(map[uint]*exercise.ProgressRecord, len(progress))
	for i := range progress {
		completedByExercise[progress[i].ExerciseID] = &progress[i]
	}

	type ExerciseWithProgress struct {
		exercise.Exercise
		IsCompleted bool `json:"is_completed"`
		Score       *int `json:"score,omitempty"`
	}

	result := make([]ExerciseWithProgress, len(exercises))
	for i, ex := range exercises {
		result[i] = ExerciseWithProgress{Exercise: ex}
		if record, ok := completedByExercise[ex.ID]; ok && record.Completed {
			result[i].IsCompleted = true
			result[i].Score = record.Score
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category details fetched successfully!", fiber.Map{
		"category":  category,
		"exercises": result,
	})
}

// GetCategoryFiles lists downloadable study material for a category
func GetCategoryFiles(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	categoryID := c.Locals("categoryID").(int)

	var category exercise.Category
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", categoryID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var files []exercise.DownloadableFile
	if err := database.Database.Db.
		Where("category_id = ? AND is_deleted = ?", categoryID, false).
		Order("file_name asc").Find(&files).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch files!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Files fetched successfully!", fiber.Map{
		"files": files,
	})
}
