package controllers

import (
	"eslapi/database"
	"eslapi/middleware"
	"eslapi/models"
	"eslapi/models/exercise"
	"eslapi/stats"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetUserStats computes the caller's aggregated progress summary. Nothing is
// cached or persisted; the summary is derived fresh on every request.
func GetUserStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	progress, err := fetchUserProgress(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}
	exercises, err := fetchAllExercises()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exercises!", nil)
	}
	categories, err := fetchAllCategories()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	summary := stats.ComputeUserStats(progress, exercises, categories, time.Now().UTC())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"stats": summary,
	})
}

// GetRecentActivity returns the caller's latest completions, newest first
func GetRecentActivity(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	progress, err := fetchUserProgress(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}
	exercises, err := fetchAllExercises()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exercises!", nil)
	}

	activity := stats.BuildRecentActivity(progress, exercises, stats.RecentActivityLimit, time.Now().UTC())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recent activity fetched successfully!", fiber.Map{
		"activity": activity,
	})
}

// DeleteUserProgress wipes every progress record of the caller. The catalog
// is untouched; stats and streak start over from zero.
func DeleteUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Delete(&exercise.ProgressRecord{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress reset successfully!", nil)
}
