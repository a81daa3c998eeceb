package exerciseRoutes

import (
	controllers "eslapi/controllers/exercise"
	"eslapi/middleware"
	validators "eslapi/validators/exercise"

	"github.com/gofiber/fiber/v2"
)

// SetupExerciseRoutes sets up all learner-facing routes
func SetupExerciseRoutes(app *fiber.App) {
	categoryGroup := app.Group("/category")

	categoryGroup.Get("/list", middleware.JWTMiddleware, controllers.GetCategoryList)
	categoryGroup.Get("/:id", middleware.JWTMiddleware, validators.CategoryID(), controllers.GetCategoryDetails)
	categoryGroup.Get("/:id/files", middleware.JWTMiddleware, validators.CategoryID(), controllers.GetCategoryFiles)

	exerciseGroup := app.Group("/exercise")

	exerciseGroup.Get("/:id", middleware.JWTMiddleware, validators.ExerciseID(), controllers.GetExerciseDetails)
	exerciseGroup.Post("/:id/attempt", middleware.JWTMiddleware, validators.ExerciseID(), validators.SubmitAttempt(), controllers.SubmitAttempt)

	progressGroup := app.Group("/progress")

	progressGroup.Get("/stats", middleware.JWTMiddleware, controllers.GetUserStats)
	progressGroup.Get("/activity", middleware.JWTMiddleware, controllers.GetRecentActivity)
	progressGroup.Delete("/reset", middleware.JWTMiddleware, controllers.DeleteUserProgress)
}
