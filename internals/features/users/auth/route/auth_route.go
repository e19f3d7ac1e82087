package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "habitku_backend/internals/features/users/auth/controller"
	"habitku_backend/internals/middlewares"
	authMiddleware "habitku_backend/internals/middlewares/auth"
)

// AuthRoutes — register/login publik (dengan limiter ketat), me di belakang JWT
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	authGroup.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	authGroup.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
