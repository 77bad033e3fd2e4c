package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"socialnet/src/lib"
	"socialnet/src/services"
)

// respondError maps a domain failure to its HTTP status and message.
// Unrecognized errors are logged and reported as a generic server error.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Not found"))
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("Not authorized to perform this action"))
	case errors.Is(err, services.ErrNotFriends):
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("You are not friends with this user"))
	case errors.Is(err, services.ErrInvalidState):
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("This request has already been processed"))
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("A connection or pending request already exists"))
	case errors.Is(err, services.ErrEmptyContent):
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Message content cannot be empty"))
	case errors.Is(err, services.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Unauthorized"))
	default:
		log.Printf("Unexpected error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
}
