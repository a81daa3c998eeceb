package userValidator

import (
	"eslapi/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile validates a profile update request
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name           string `json:"name"`
			NativeLanguage string `json:"nativeLanguage"`
			ProfileImage   string `json:"profileImage"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.NativeLanguage = strings.TrimSpace(reqData.NativeLanguage)

		if reqData.Name != "" && len(reqData.Name) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		// language codes are two-letter ISO 639-1, optionally with a region
		if reqData.NativeLanguage != "" && (len(reqData.NativeLanguage) < 2 || len(reqData.NativeLanguage) > 5) {
			errors["nativeLanguage"] = "Invalid language code!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
