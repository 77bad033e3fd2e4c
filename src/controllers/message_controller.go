package controllers

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/src/lib"
	"socialnet/src/models"
	"socialnet/src/services"
)

type MessageController struct {
	Messages *services.MessageService
}

// SendMessage persists a direct message to another user and pushes it to
// their channel if they are connected
func (ctrl *MessageController) SendMessage(c *fiber.Ctx) error {
	receiverID, err := parseID(c, "receiverId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	user := c.Locals("user").(models.User)

	message, err := ctrl.Messages.Send(user, receiverID, body.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(message.ToDto(user.ID))
}

// GetChat returns the conversation with another user, marking received
// messages as read
func (ctrl *MessageController) GetChat(c *fiber.Ctx) error {
	otherID, err := parseID(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
	}

	user := c.Locals("user").(models.User)

	if user.ID == otherID {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID"))
	}

	messages, other, err := ctrl.Messages.Conversation(user, otherID)
	if err != nil {
		return respondError(c, err)
	}

	dtos := make([]models.MessageDto, 0, len(messages))
	for i := range messages {
		dtos = append(dtos, messages[i].ToDto(user.ID))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"messages": dtos,
		"user":     other.ToDto(),
	})
}

// GetConversations lists one conversation summary per friend
func (ctrl *MessageController) GetConversations(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	conversations, err := ctrl.Messages.Conversations(user)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(conversations)
}

// MarkMessagesRead marks all unread messages from the given sender as read
func (ctrl *MessageController) MarkMessagesRead(c *fiber.Ctx) error {
	senderID, err := parseID(c, "senderId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
	}

	user := c.Locals("user").(models.User)

	count, err := ctrl.Messages.MarkRead(user, senderID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

// DeleteMessage soft-deletes a message sent by the authenticated user
func (ctrl *MessageController) DeleteMessage(c *fiber.Ctx) error {
	messageID, err := parseID(c, "messageId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid message ID format"))
	}

	user := c.Locals("user").(models.User)

	if err := ctrl.Messages.Delete(user, messageID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"messageId": messageID})
}

// GetUnreadCount returns the total unread message count for the
// authenticated user
func (ctrl *MessageController) GetUnreadCount(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	count, err := ctrl.Messages.UnreadCount(user.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}
