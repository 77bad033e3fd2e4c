package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/src/controllers"
	"socialnet/src/middleware"
)

// AuthRoutes sets up authentication-related routes for signup, login, logout, and getting the current user
func AuthRoutes(app *fiber.App, ctrl *controllers.AuthController) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/signup", ctrl.Signup)
	auth.Post("/login", ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", middleware.ProtectRoute, ctrl.GetCurrentUser)
}
