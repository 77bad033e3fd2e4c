package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/src/controllers"
	"socialnet/src/middleware"
)

// MessageRoutes sets up direct-message routes for sending, conversations, read tracking, and deletion
func MessageRoutes(app *fiber.App, ctrl *controllers.MessageController) {
	message := app.Group("/api/v1/messages", middleware.ProtectRoute)

	message.Post("/send/:receiverId", ctrl.SendMessage)
	message.Get("/conversations", ctrl.GetConversations)
	message.Get("/unread-count", ctrl.GetUnreadCount)
	message.Get("/chat/:userId", ctrl.GetChat)
	message.Put("/read/:senderId", ctrl.MarkMessagesRead)
	message.Delete("/:messageId", ctrl.DeleteMessage)
}
