package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/src/controllers"
	"socialnet/src/middleware"
)

// NotificationRoutes sets up notification-related routes for listing, marking as read, and deleting notifications
func NotificationRoutes(app *fiber.App, ctrl *controllers.NotificationController) {
	notification := app.Group("/api/v1/notifications", middleware.ProtectRoute)

	notification.Get("/", ctrl.GetUserNotifications)
	notification.Get("/unread-count", ctrl.GetUnreadCount)
	notification.Put("/:id/read", ctrl.MarkNotificationAsRead)
	notification.Delete("/:id", ctrl.DeleteNotification)
}
