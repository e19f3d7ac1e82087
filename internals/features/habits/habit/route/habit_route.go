package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinController "habitku_backend/internals/features/habits/checkin/controller"
	habitController "habitku_backend/internals/features/habits/habit/controller"
	statsController "habitku_backend/internals/features/habits/stats/controller"
	authMiddleware "habitku_backend/internals/middlewares/auth"
)

// HabitRoutes — seluruh endpoint habit di belakang JWT.
func HabitRoutes(app *fiber.App, db *gorm.DB) {
	habitCtrl := habitController.NewHabitController(db)
	checkinCtrl := checkinController.NewCheckinController(db)
	statsCtrl := statsController.NewStatsController(db)

	habits := app.Group("/api/habits", authMiddleware.AuthMiddleware(db))

	habits.Get("/", habitCtrl.List)
	habits.Post("/", habitCtrl.Create)
	habits.Patch("/:id", habitCtrl.Update)
	habits.Delete("/:id", habitCtrl.Archive)
	habits.Post("/:id/restore", habitCtrl.Restore)

	habits.Post("/:id/checkin", checkinCtrl.Checkin)
	habits.Post("/:id/uncheckin", checkinCtrl.Uncheckin)
	habits.Get("/:id/checkins", checkinCtrl.List)
	habits.Get("/:id/stats", statsCtrl.Stats)
}
