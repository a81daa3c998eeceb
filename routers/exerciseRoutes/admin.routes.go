package exerciseRoutes

import (
	controllers "eslapi/controllers/exercise"
	"eslapi/middleware"
	validators "eslapi/validators/exercise"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminExerciseRoutes sets up all admin content management routes
func SetupAdminExerciseRoutes(app *fiber.App) {
	categoryGroup := app.Group("/admin/category")

	categoryGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CreateCategory(), controllers.AdminCreateCategory)
	categoryGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.UpdateCategory(), controllers.AdminUpdateCategory)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CategoryID(), controllers.AdminDeleteCategory)
	categoryGroup.Post("/:id/file", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CategoryID(), controllers.AdminUploadCategoryFile)
	categoryGroup.Delete("/:id/file/:fileId", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.FileID(), controllers.AdminDeleteCategoryFile)

	exerciseGroup := app.Group("/admin/exercise")

	exerciseGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CreateExercise(), controllers.AdminCreateExercise)
	exerciseGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.AdminList(), controllers.AdminGetAllExercises)
	exerciseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.UpdateExercise(), controllers.AdminUpdateExercise)
	exerciseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.ExerciseID(), controllers.AdminDeleteExercise)
	exerciseGroup.Post("/:id/publish", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.PublishExercise(), controllers.AdminPublishExercise)

	// Question management
	exerciseGroup.Post("/:id/question", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CreateQuestion(), controllers.AdminAddQuestion)

	questionGroup := app.Group("/admin/question")
	questionGroup.Put("/:questionId", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.UpdateQuestion(), controllers.AdminUpdateQuestion)
	questionGroup.Delete("/:questionId", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.QuestionID(), controllers.AdminDeleteQuestion)

	// Analytics & dashboard
	statsGroup := app.Group("/admin/analytics")
	statsGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controllers.AdminAnalytics)

	studentGroup := app.Group("/admin/student")
	studentGroup.Get("/:userId/stats", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.TargetUserID(), controllers.AdminGetStudentStats)

	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/stats", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controllers.AdminDashboardStats)
}
