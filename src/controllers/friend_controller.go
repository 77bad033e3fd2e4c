package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"socialnet/src/lib"
	"socialnet/src/models"
	"socialnet/src/services"
)

type FriendController struct {
	Friends *services.FriendService
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	return uint(id), err
}

// SendFriendRequest sends a friend request from the authenticated user to
// another user
func (ctrl *FriendController) SendFriendRequest(c *fiber.Ctx) error {
	targetUserID, err := parseID(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
	}

	user := c.Locals("user").(models.User)

	if user.ID == targetUserID {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("You can't send a friend request to yourself"))
	}

	request, err := ctrl.Friends.SendRequest(user, targetUserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        request.ID,
		"status":    request.Status,
		"createdAt": request.CreatedAt.Format(time.RFC3339),
		"receiver":  fiber.Map{"id": request.ReceiverID},
	})
}

// AcceptFriendRequest accepts a pending friend request addressed to the
// authenticated user, creating the friendship
func (ctrl *FriendController) AcceptFriendRequest(c *fiber.Ctx) error {
	requestID, err := parseID(c, "requestId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request ID format"))
	}

	user := c.Locals("user").(models.User)

	if err := ctrl.Friends.Accept(user, requestID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Friend request accepted",
		"requestId": requestID,
	})
}

// RejectFriendRequest rejects a pending friend request addressed to the
// authenticated user
func (ctrl *FriendController) RejectFriendRequest(c *fiber.Ctx) error {
	requestID, err := parseID(c, "requestId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request ID format"))
	}

	user := c.Locals("user").(models.User)

	if err := ctrl.Friends.Reject(user, requestID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Friend request rejected",
		"requestId": requestID,
	})
}

// CancelFriendRequest removes a pending request previously sent by the
// authenticated user
func (ctrl *FriendController) CancelFriendRequest(c *fiber.Ctx) error {
	requestID, err := parseID(c, "requestId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request ID format"))
	}

	user := c.Locals("user").(models.User)

	if err := ctrl.Friends.Cancel(user, requestID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Friend request cancelled",
		"requestId": requestID,
	})
}

// GetSentRequests returns the requests sent by the authenticated user
func (ctrl *FriendController) GetSentRequests(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	requests, err := ctrl.Friends.SentRequests(user.ID)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]fiber.Map, 0, len(requests))
	for _, req := range requests {
		response = append(response, fiber.Map{
			"id":        req.ID,
			"status":    req.Status,
			"createdAt": req.CreatedAt.Format(time.RFC3339),
			"receiver":  req.Receiver.ToDto(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetReceivedRequests returns the pending requests addressed to the
// authenticated user
func (ctrl *FriendController) GetReceivedRequests(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	requests, err := ctrl.Friends.ReceivedRequests(user.ID)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]fiber.Map, 0, len(requests))
	for _, req := range requests {
		response = append(response, fiber.Map{
			"id":        req.ID,
			"status":    req.Status,
			"createdAt": req.CreatedAt.Format(time.RFC3339),
			"sender":    req.Sender.ToDto(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetFriends returns all users connected to the authenticated user
func (ctrl *FriendController) GetFriends(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	friends, err := ctrl.Friends.FriendsOf(user.ID)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]models.UserDto, 0, len(friends))
	for _, friend := range friends {
		response = append(response, friend.ToDto())
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// RemoveFriend removes the friendship between the authenticated user and
// another user
func (ctrl *FriendController) RemoveFriend(c *fiber.Ctx) error {
	targetUserID, err := parseID(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
	}

	user := c.Locals("user").(models.User)

	if user.ID == targetUserID {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("You cannot remove yourself as a friend"))
	}

	if err := ctrl.Friends.Unfriend(user.ID, targetUserID); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Friend removed successfully"))
}
