package controllers

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/src/lib"
	"socialnet/src/models"
	"socialnet/src/services"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

// GetUserNotifications returns all notifications for the authenticated
// user, newest first
func (ctrl *NotificationController) GetUserNotifications(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	notifications, err := ctrl.Notifications.ForUser(user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

// MarkNotificationAsRead marks a notification as read for the
// authenticated user
func (ctrl *NotificationController) MarkNotificationAsRead(c *fiber.Ctx) error {
	notificationID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid notification ID format"))
	}

	user := c.Locals("user").(models.User)

	notification, err := ctrl.Notifications.MarkRead(user, notificationID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(notification)
}

// GetUnreadCount returns the unread notification count for the
// authenticated user
func (ctrl *NotificationController) GetUnreadCount(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	count, err := ctrl.Notifications.UnreadCount(user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

// DeleteNotification deletes a notification for the authenticated user
func (ctrl *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	notificationID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid notification ID format"))
	}

	user := c.Locals("user").(models.User)

	if err := ctrl.Notifications.Delete(user, notificationID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Notification deleted successfully"))
}
