package exerciseValidator

import (
	"eslapi/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CategoryID validates the :id path param and stores it as categoryID
func CategoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
		}

		c.Locals("categoryID", id)
		return c.Next()
	}
}

// ExerciseID validates the :id path param and stores it as exerciseID
func ExerciseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Exercise ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Exercise ID!", nil)
		}

		c.Locals("exerciseID", id)
		return c.Next()
	}
}

// SubmitAttempt validates an attempt submission body
func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers []struct {
				QuestionID uint     `json:"questionId"`
				Text       string   `json:"text"`
				Parts      []string `json:"parts"`
				Value      *bool    `json:"value"`
			} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Answers) == 0 {
			errors["answers"] = "At least one answer is required!"
		}
		for _, a := range reqData.Answers {
			if a.QuestionID == 0 {
				errors["answers"] = "Every answer needs a question ID!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}
