package controllers

import (
	"eslapi/database"
	"eslapi/middleware"
	"eslapi/models"
	"eslapi/models/exercise"
	"eslapi/stats"
	"eslapi/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// streakMilestones are the streak lengths that trigger a push notification
var streakMilestones = map[int]bool{3: true, 7: true, 30: true}

// SubmitAttempt grades a submitted attempt and upserts the user's progress.
// Re-submitting overwrites the previous score; there is one record per
// (user, exercise) pair.
func SubmitAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	exerciseID := c.Locals("exerciseID").(int)

	reqData, ok := c.Locals("validatedAttempt").(*struct {
		Answers []struct {
			QuestionID uint     `json:"questionId"`
			Text       string   `json:"text"`
			Parts      []string `json:"parts"`
			Value      *bool    `json:"value"`
		} `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var ex exercise.Exercise
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND is_published = ?", exerciseID, false, true).
		First(&ex).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	var questions []exercise.Question
	if err := database.Database.Db.
		Where("exercise_id = ? AND is_deleted = ?", exerciseID, false).
		Order("order_index asc, id asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}
	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Exercise has no questions!", nil)
	}

	answers := make(map[uint]stats.Answer, len(reqData.Answers))
	for _, a := range reqData.Answers {
		answers[a.QuestionID] = stats.Answer{Text: a.Text, Parts: a.Parts, Value: a.Value}
	}

	result, err := stats.GradeAttempt(questions, answers)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Exercise content is invalid!", nil)
	}

	percentage := result.Percentage
	record, err := upsertProgress(userID, ex.ID, true, &percentage)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	progress, err := fetchUserProgress(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}
	streak := stats.StreakDays(progress, time.Now().UTC())

	if streakMilestones[streak] && user.PushToken != "" {
		go utils.SendStreakPush(user.PushToken, streak)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt submitted successfully!", fiber.Map{
		"result":   result,
		"progress": record,
		"streak":   streak,
	})
}
