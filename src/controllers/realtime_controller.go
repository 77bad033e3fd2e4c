package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"socialnet/src/models"
	"socialnet/src/protocol"
	"socialnet/src/realtime"
)

type RealtimeController struct {
	Hub *realtime.Hub
}

// TestConnection pushes a test event to the caller's private channel so a
// client can verify its websocket subscription end to end
func (ctrl *RealtimeController) TestConnection(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	online := ctrl.Hub.IsOnline(user.Email)
	if online {
		ctrl.Hub.SendToUser(user.Email, protocol.ConnectionTestEvent{
			Type:      protocol.EventConnectionTest,
			Timestamp: time.Now().UnixMilli(),
			Message:   "Test notification from server",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Test event dispatched",
		"connected": online,
	})
}
