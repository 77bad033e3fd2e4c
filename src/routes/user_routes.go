package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/src/controllers"
	"socialnet/src/middleware"
)

// UserRoutes sets up user-related routes for suggestions, public profile, and profile update
func UserRoutes(app *fiber.App, ctrl *controllers.UserController) {
	user := app.Group("/api/v1/users", middleware.ProtectRoute)

	user.Get("/suggestions", ctrl.GetSuggestedConnections)
	user.Put("/profile", ctrl.UpdateProfile)
	user.Get("/:username", ctrl.GetPublicProfile)
}
