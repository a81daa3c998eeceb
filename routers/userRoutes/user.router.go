package userProfileRoutes

import (
	userProfileController "eslapi/controllers/userControllers"
	"eslapi/middleware"
	userProfileValidator "eslapi/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userProfileController.GetProfile)
	userGroup.Put("/profile", userProfileValidator.UpdateProfile(), middleware.JWTMiddleware, userProfileController.UpdateProfile)
	userGroup.Put("/push/token", middleware.JWTMiddleware, userProfileController.UpdatePushToken)
	userGroup.Delete("/account", middleware.JWTMiddleware, userProfileController.DeleteAccount)
}
