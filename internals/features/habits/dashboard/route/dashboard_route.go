package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "habitku_backend/internals/features/habits/dashboard/controller"
	authMiddleware "habitku_backend/internals/middlewares/auth"
)

func DashboardRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	dashboard := app.Group("/api/dashboard", authMiddleware.AuthMiddleware(db))
	dashboard.Get("/summary", ctrl.Summary)
}
