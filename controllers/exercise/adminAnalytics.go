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

// AdminAnalytics computes fleet-wide analytics over every user's progress
func AdminAnalytics(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	allProgress, err := fetchAllProgress()
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
	totalUsers, err := countActiveUsers()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count users!", nil)
	}

	analytics := stats.BuildAnalytics(allProgress, exercises, categories, int(totalUsers), time.Now().UTC())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
		"analytics": analytics,
	})
}

// AdminGetStudentStats computes the same progress summary a student sees,
// for any student
func AdminGetStudentStats(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	targetUserID := c.Locals("targetUserID").(int)

	var targetUser models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&targetUser).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	progress, err := fetchUserProgress(targetUser.ID)
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

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student stats fetched successfully!", fiber.Map{
		"student": fiber.Map{
			"id":    targetUser.ID,
			"name":  targetUser.Name,
			"email": targetUser.Email,
		},
		"stats": summary,
	})
}

// AdminDashboardStats gets dashboard statistics
func AdminDashboardStats(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	var totalUsers, totalCategories, totalExercises, publishedExercises, totalCompletions int64

	database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	database.Database.Db.Model(&exercise.Category{}).Where("is_deleted = ?", false).Count(&totalCategories)
	database.Database.Db.Model(&exercise.Exercise{}).Where("is_deleted = ?", false).Count(&totalExercises)
	database.Database.Db.Model(&exercise.Exercise{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedExercises)
	database.Database.Db.Model(&exercise.ProgressRecord{}).Where("completed = ?", true).Count(&totalCompletions)

	// Get recent completions
	type RecentCompletion struct {
		UserName      string     `json:"user_name"`
		ExerciseTitle string     `json:"exercise_title"`
		Score         *int       `json:"score"`
		CompletedAt   *time.Time `json:"completed_at"`
	}

	var recentRecords []exercise.ProgressRecord
	database.Database.Db.Where("completed = ? AND completed_at IS NOT NULL", true).
		Order("completed_at desc").Limit(5).Find(&recentRecords)

	recent := make([]RecentCompletion, len(recentRecords))
	for i, r := range recentRecords {
		var recordUser models.User
		var ex exercise.Exercise
		database.Database.Db.Select("name").Where("id = ?", r.UserID).First(&recordUser)
		database.Database.Db.Select("title").Where("id = ?", r.ExerciseID).First(&ex)
		title := ex.Title
		if title == "" {
			title = stats.UnknownExerciseTitle
		}
		recent[i] = RecentCompletion{
			UserName:      recordUser.Name,
			ExerciseTitle: title,
			Score:         r.Score,
			CompletedAt:   r.CompletedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": fiber.Map{
			"total_users":         totalUsers,
			"total_categories":    totalCategories,
			"total_exercises":     totalExercises,
			"published_exercises": publishedExercises,
			"total_completions":   totalCompletions,
		},
		"recent_completions": recent,
	})
}
