package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"socialnet/src/auth"
	"socialnet/src/lib"
	"socialnet/src/models"
)

type AuthController struct {
	DB *gorm.DB
}

// Signup handles user registration, validates input, checks for duplicates,
// hashes the password and returns a fresh token
func (ctrl *AuthController) Signup(c *fiber.Ctx) error {

	var userData struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&userData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if userData.Name == "" || userData.Username == "" || userData.Email == "" || userData.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("All fields are required"))
	}

	if len(userData.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Password must be at least 6 characters"))
	}

	var existingUser models.User
	if err := ctrl.DB.Where("email = ?", userData.Email).First(&existingUser).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email already exists"))
	}

	if err := ctrl.DB.Where("username = ?", userData.Username).First(&existingUser).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Username already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.Password), 11)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	newUser := models.User{
		Name:     userData.Name,
		Username: userData.Username,
		Email:    userData.Email,
		Password: string(hashedPassword),
		Roles:    []string{"ROLE_USER"},
	}

	if err := ctrl.DB.Create(&newUser).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to create user"))
	}

	token, err := auth.GenerateToken(newUser.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to generate token"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   token,
	})
}

// Login authenticates a user by email and password and returns a token
func (ctrl *AuthController) Login(c *fiber.Ctx) error {

	var loginData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&loginData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if loginData.Email == "" || loginData.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email and password are required"))
	}

	var user models.User
	err := ctrl.DB.Where("email = ?", loginData.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid credentials"))
		}

		log.Printf("Error finding user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginData.Password))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid credentials"))
	}

	token, err := auth.GenerateToken(user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// GetCurrentUser returns the currently authenticated user's data
func (ctrl *AuthController) GetCurrentUser(c *fiber.Ctx) error {

	user := c.Locals("user")
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Not authenticated"))
	}
	return c.JSON(user)
}

// Logout clears the authentication cookie
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt-socialnet",
		Value:    "",
		Expires:  time.Now().Add(-1 * time.Hour),
		HTTPOnly: true,
		SameSite: "Strict",
		Secure:   false,
		Path:     "/",
	})
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Logged out successfully"))
}
