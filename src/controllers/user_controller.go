package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"socialnet/src/lib"
	"socialnet/src/models"
	"socialnet/src/services"
)

type UserController struct {
	DB      *gorm.DB
	Friends *services.FriendService
}

// GetSuggestedConnections returns a few users the authenticated user is not
// already friends with
func (ctrl *UserController) GetSuggestedConnections(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	friends, err := ctrl.Friends.FriendsOf(user.ID)
	if err != nil {
		log.Printf("Error fetching friends: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	excluded := make([]uint, 0, len(friends)+1)
	excluded = append(excluded, user.ID)
	for _, friend := range friends {
		excluded = append(excluded, friend.ID)
	}

	var suggested []models.User
	err = ctrl.DB.Where("id NOT IN ?", excluded).
		Limit(3).
		Find(&suggested).Error
	if err != nil {
		log.Printf("Error fetching suggested users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	response := make([]models.UserDto, 0, len(suggested))
	for _, s := range suggested {
		response = append(response, s.ToDto())
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetPublicProfile returns a user's public profile by username
func (ctrl *UserController) GetPublicProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	var user models.User
	err := ctrl.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
		}

		log.Printf("Error finding user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateProfile updates the allowed profile fields of the authenticated user
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	allowed := []string{"name", "about", "location", "profile_picture", "cover_picture"}
	updates := make(map[string]any)
	for _, field := range allowed {
		if value, ok := body[field]; ok {
			updates[field] = value
		}
	}

	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("No valid fields to update"))
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("Error updating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to update profile"))
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
