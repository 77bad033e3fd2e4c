package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialnet/src/auth"
	"socialnet/src/lib"
	"socialnet/src/models"
)

func setupProtectedApp(t *testing.T) (*fiber.App, models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	lib.DB = db

	user := models.User{
		Name:     "alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed",
		Roles:    []string{"ROLE_USER"},
	}
	require.NoError(t, db.Create(&user).Error)

	app := fiber.New()
	app.Get("/protected", ProtectRoute, func(c *fiber.Ctx) error {
		bound := c.Locals("user").(models.User)
		return c.JSON(fiber.Map{"email": bound.Email})
	})

	return app, user
}

func TestProtectRouteAcceptsValidToken(t *testing.T) {
	app, user := setupProtectedApp(t)

	token, err := auth.GenerateToken(user.Email)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectRouteAcceptsQueryParamToken(t *testing.T) {
	app, user := setupProtectedApp(t)

	token, err := auth.GenerateToken(user.Email)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected?access_token="+token, nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectRouteRejectsMissingToken(t *testing.T) {
	app, _ := setupProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectRouteRejectsInvalidToken(t *testing.T) {
	app, _ := setupProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectRouteRejectsUnknownSubject(t *testing.T) {
	app, _ := setupProtectedApp(t)

	// well-formed token for an identity that does not exist
	token, err := auth.GenerateToken("ghost@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
