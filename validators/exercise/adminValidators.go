package exerciseValidator

import (
	"encoding/json"
	"eslapi/middleware"
	"eslapi/models/exercise"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ============ Category Validators ============

// CreateCategory validates admin category creation request
func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

// UpdateCategory validates admin category update request
func UpdateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
		}

		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			OrderIndex  *int   `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Name != "" && len(reqData.Name) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("categoryID", id)
		c.Locals("validatedCategoryUpdate", reqData)
		return c.Next()
	}
}

// FileID validates the :fileId path param
func FileID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("fileId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid File ID!", nil)
		}

		c.Locals("fileID", id)
		return c.Next()
	}
}

// ============ Exercise Validators ============

// CreateExercise validates admin exercise creation request
func CreateExercise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CategoryID   uint            `json:"category_id"`
			Title        string          `json:"title"`
			Description  string          `json:"description"`
			Difficulty   string          `json:"difficulty"`
			Type         string          `json:"type"`
			Instructions json.RawMessage `json:"instructions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.CategoryID == 0 {
			errors["category_id"] = "Category ID is required!"
		}

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if !exercise.ValidDifficulties[reqData.Difficulty] {
			errors["difficulty"] = "Difficulty must be beginner, intermediate, or advanced!"
		}

		if !exercise.ValidTypes[reqData.Type] {
			errors["type"] = "Invalid exercise type!"
		}

		if len(reqData.Instructions) > 0 {
			var instructions exercise.Instructions
			if err := json.Unmarshal(reqData.Instructions, &instructions); err != nil {
				errors["instructions"] = "Instructions must be a string or a language map!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedExercise", reqData)
		return c.Next()
	}
}

// UpdateExercise validates admin exercise update request
func UpdateExercise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Exercise ID!", nil)
		}

		reqData := new(struct {
			Title        string          `json:"title"`
			Description  string          `json:"description"`
			Difficulty   string          `json:"difficulty"`
			Type         string          `json:"type"`
			Instructions json.RawMessage `json:"instructions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Difficulty != "" && !exercise.ValidDifficulties[reqData.Difficulty] {
			errors["difficulty"] = "Difficulty must be beginner, intermediate, or advanced!"
		}

		if reqData.Type != "" && !exercise.ValidTypes[reqData.Type] {
			errors["type"] = "Invalid exercise type!"
		}

		if len(reqData.Instructions) > 0 {
			var instructions exercise.Instructions
			if err := json.Unmarshal(reqData.Instructions, &instructions); err != nil {
				errors["instructions"] = "Instructions must be a string or a language map!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("exerciseID", id)
		c.Locals("validatedExerciseUpdate", reqData)
		return c.Next()
	}
}

// PublishExercise validates the publish toggle request
func PublishExercise() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Exercise ID!", nil)
		}

		reqData := new(struct {
			Publish *bool `json:"publish"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Publish == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Publish status is required!", nil)
		}

		c.Locals("exerciseID", id)
		c.Locals("publishStatus", *reqData.Publish)
		return c.Next()
	}
}

// ============ Question Validators ============

// CreateQuestion validates a new question and its typed payload
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Exercise ID!", nil)
		}

		reqData := new(struct {
			Prompt      string          `json:"prompt"`
			Explanation string          `json:"explanation"`
			OrderIndex  int             `json:"order_index"`
			Type        string          `json:"type"`
			Payload     json.RawMessage `json:"payload"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Prompt = strings.TrimSpace(reqData.Prompt)

		if reqData.Prompt == "" {
			errors["prompt"] = "Prompt is required!"
		}

		if !exercise.ValidTypes[reqData.Type] {
			errors["type"] = "Invalid question type!"
		} else {
			for field, msg := range exercise.ValidatePayload(reqData.Type, reqData.Payload) {
				errors[field] = msg
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("exerciseID", id)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// UpdateQuestion validates a question update. When the type changes the
// payload must be resubmitted and revalidated with it.
func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("questionId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		reqData := new(struct {
			Prompt      string          `json:"prompt"`
			Explanation string          `json:"explanation"`
			OrderIndex  *int            `json:"order_index"`
			Type        string          `json:"type"`
			Payload     json.RawMessage `json:"payload"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Prompt = strings.TrimSpace(reqData.Prompt)

		if reqData.Type != "" {
			if !exercise.ValidTypes[reqData.Type] {
				errors["type"] = "Invalid question type!"
			} else {
				for field, msg := range exercise.ValidatePayload(reqData.Type, reqData.Payload) {
					errors[field] = msg
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("questionID", id)
		c.Locals("validatedQuestionUpdate", reqData)
		return c.Next()
	}
}

// QuestionID validates the :questionId path param
func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("questionId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		c.Locals("questionID", id)
		return c.Next()
	}
}

// TargetUserID validates the :userId path param for admin lookups
func TargetUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("userId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// AdminList validates pagination query params for admin lists
func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query params!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}
