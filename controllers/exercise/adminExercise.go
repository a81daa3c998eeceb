package controllers

import (
	"encoding/json"
	"eslapi/database"
	"eslapi/middleware"
	"eslapi/models"
	"eslapi/models/exercise"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateExercise creates a new exercise in a category
func AdminCreateExercise(c *fiber.Ctx) error {
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

	reqData, ok := c.Locals("validatedExercise").(*struct {
		CategoryID   uint            `json:"category_id"`
		Title        string          `json:"title"`
		Description  string          `json:"description"`
		Difficulty   string          `json:"difficulty"`
		Type         string          `json:"type"`
		Instructions json.RawMessage `json:"instructions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var category exercise.Category
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CategoryID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	ex := exercise.Exercise{
		CategoryID:   reqData.CategoryID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Difficulty:   reqData.Difficulty,
		Type:         reqData.Type,
		Instructions: datatypes.JSON(reqData.Instructions),
		IsPublished:  false,
	}

	if err := database.Database.Db.Create(&ex).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create exercise!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exercise created successfully!", ex)
}

// AdminUpdateExercise updates an existing exercise
func AdminUpdateExercise(c *fiber.Ctx) error {
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

	exerciseID := c.Locals("exerciseID").(int)

	var ex exercise.Exercise
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", exerciseID, false).First(&ex).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	reqData, ok := c.Locals("validatedExerciseUpdate").(*struct {
		Title        string          `json:"title"`
		Description  string          `json:"description"`
		Difficulty   string          `json:"difficulty"`
		Type         string          `json:"type"`
		Instructions json.RawMessage `json:"instructions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		ex.Title = reqData.Title
	}
	if reqData.Description != "" {
		ex.Description = reqData.Description
	}
	if reqData.Difficulty != "" {
		ex.Difficulty = reqData.Difficulty
	}
	if reqData.Type != "" {
		ex.Type = reqData.Type
	}
	if len(reqData.Instructions) > 0 {
		ex.Instructions = datatypes.JSON(reqData.Instructions)
	}

	if err := database.Database.Db.Save(&ex).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update exercise!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercise updated successfully!", ex)
}

// AdminDeleteExercise soft deletes an exercise. Progress rows that point at
// it are kept; feeds render them with the unknown-exercise title.
func AdminDeleteExercise(c *fiber.Ctx) error {
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

	exerciseID := c.Locals("exerciseID").(int)

	var ex exercise.Exercise
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", exerciseID, false).First(&ex).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	ex.IsDeleted = true
	if err := database.Database.Db.Save(&ex).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete exercise!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercise deleted successfully!", nil)
}

// AdminGetAllExercises lists exercises for admin, drafts included
func AdminGetAllExercises(c *fiber.Ctx) error {
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

	reqData, ok := c.Locals("validatedAdminList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var exercises []exercise.Exercise
	var total int64

	db := database.Database.Db.Model(&exercise.Exercise{}).Where("is_deleted = ?", false)
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&exercises).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exercises!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercises fetched successfully!", fiber.Map{
		"exercises": exercises,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminPublishExercise publishes or unpublishes an exercise. An exercise
// without questions cannot be published.
func AdminPublishExercise(c *fiber.Ctx) error {
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

	exerciseID := c.Locals("exerciseID").(int)
	publishStatus := c.Locals("publishStatus").(bool)

	var ex exercise.Exercise
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", exerciseID, false).First(&ex).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	if publishStatus {
		var questionCount int64
		database.Database.Db.Model(&exercise.Question{}).
			Where("exercise_id = ? AND is_deleted = ?", exerciseID, false).
			Count(&questionCount)
		if questionCount == 0 {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Cannot publish an exercise without questions!", nil)
		}
	}

	ex.IsPublished = publishStatus
	if err := database.Database.Db.Save(&ex).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update exercise!", nil)
	}

	message := "Exercise unpublished successfully!"
	if publishStatus {
		message = "Exercise published successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, ex)
}

// AdminAddQuestion adds a question to an exercise
func AdminAddQuestion(c *fiber.Ctx) error {
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

	exerciseID := c.Locals("exerciseID").(int)

	var ex exercise.Exercise
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", exerciseID, false).First(&ex).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exercise not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		Prompt      string          `json:"prompt"`
		Explanation string          `json:"explanation"`
		OrderIndex  int             `json:"order_index"`
		Type        string          `json:"type"`
		Payload     json.RawMessage `json:"payload"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question := exercise.Question{
		ExerciseID:  uint(exerciseID),
		Prompt:      reqData.Prompt,
		Explanation: reqData.Explanation,
		OrderIndex:  reqData.OrderIndex,
		Type:        reqData.Type,
		Payload:     datatypes.JSON(reqData.Payload),
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// AdminUpdateQuestion updates a question
func AdminUpdateQuestion(c *fiber.Ctx) error {
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

	questionID := c.Locals("questionID").(int)

	var question exercise.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestionUpdate").(*struct {
		Prompt      string          `json:"prompt"`
		Explanation string          `json:"explanation"`
		OrderIndex  *int            `json:"order_index"`
		Type        string          `json:"type"`
		Payload     json.RawMessage `json:"payload"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Prompt != "" {
		question.Prompt = reqData.Prompt
	}
	if reqData.Explanation != "" {
		question.Explanation = reqData.Explanation
	}
	if reqData.OrderIndex != nil {
		question.OrderIndex = *reqData.OrderIndex
	}
	// type and payload change together so the payload always matches the type
	if reqData.Type != "" {
		question.Type = reqData.Type
		question.Payload = datatypes.JSON(reqData.Payload)
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// AdminDeleteQuestion soft deletes a question
func AdminDeleteQuestion(c *fiber.Ctx) error {
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

	questionID := c.Locals("questionID").(int)

	var question exercise.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
