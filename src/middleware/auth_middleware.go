package middleware

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/src/auth"
	"socialnet/src/lib"
	"socialnet/src/models"
)

// ProtectRoute checks for a valid token, resolves the identity and attaches
// the user to the request context. The credential is searched in the
// Authorization and X-Authorization headers and the token/access_token
// parameters, in that order.
func ProtectRoute(c *fiber.Ctx) error {
	token := auth.TokenFromRequest(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - no token provided",
		})
	}

	email, err := auth.ExtractSubject(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - invalid token",
		})
	}

	var user models.User
	if err := lib.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	// bind the token to the resolved identity, not just the decoded subject
	if !auth.TokenValid(token, user.Email) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - invalid token",
		})
	}

	user.Password = ""

	c.Locals("user", user)

	return c.Next()
}
