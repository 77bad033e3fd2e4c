package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/src/controllers"
	"socialnet/src/middleware"
	"socialnet/src/realtime"
)

// RealtimeRoutes sets up the websocket endpoint and the connection test route
func RealtimeRoutes(app *fiber.App, handler *realtime.Handler, ctrl *controllers.RealtimeController) {
	app.Get("/ws", handler.Upgrade, handler.Serve())

	app.Get("/api/ws-test", middleware.ProtectRoute, ctrl.TestConnection)
}
