package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractSubject(t *testing.T) {
	token, err := GenerateToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestExtractSubjectRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ExtractSubject(bad)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestExtractSubjectRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("alice@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ExtractSubject(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenValidBindsToEmail(t *testing.T) {
	token, err := GenerateToken("alice@example.com")
	require.NoError(t, err)

	assert.True(t, TokenValid(token, "alice@example.com"))

	// a valid token presented for a different identity must not pass
	assert.False(t, TokenValid(token, "bob@example.com"))
	assert.False(t, TokenValid("garbage", "alice@example.com"))
}

func TestTokenFromHeadersOrder(t *testing.T) {
	assert.Equal(t, "primary", TokenFromHeaders(map[string]string{
		"Authorization":   "Bearer primary",
		"X-Authorization": "Bearer secondary",
	}))

	assert.Equal(t, "secondary", TokenFromHeaders(map[string]string{
		"X-Authorization": "Bearer secondary",
	}))

	// only the bearer scheme counts
	assert.Empty(t, TokenFromHeaders(map[string]string{
		"Authorization": "Basic dXNlcjpwYXNz",
	}))
	assert.Empty(t, TokenFromHeaders(map[string]string{
		"Authorization": "Bearer ",
	}))
	assert.Empty(t, TokenFromHeaders(nil))
}

// probeRequest routes the request through a fiber handler and reports what
// TokenFromRequest resolved
func probeRequest(t *testing.T, req *http.Request) string {
	t.Helper()

	app := fiber.New()
	var got string
	app.Get("/probe", func(c *fiber.Ctx) error {
		got = TokenFromRequest(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return got
}

func TestTokenFromRequestSearchOrder(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer from-auth")
	req.Header.Set("X-Authorization", "Bearer from-x-auth")
	assert.Equal(t, "from-auth", probeRequest(t, req))

	req = httptest.NewRequest(http.MethodGet, "/probe?token=from-param", nil)
	req.Header.Set("X-Authorization", "Bearer from-x-auth")
	assert.Equal(t, "from-x-auth", probeRequest(t, req))

	req = httptest.NewRequest(http.MethodGet, "/probe?token=from-token&access_token=from-access", nil)
	assert.Equal(t, "from-token", probeRequest(t, req))

	req = httptest.NewRequest(http.MethodGet, "/probe?access_token=from-access", nil)
	assert.Equal(t, "from-access", probeRequest(t, req))

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	assert.Empty(t, probeRequest(t, req))

	// a malformed Authorization header falls through to the parameters
	req = httptest.NewRequest(http.MethodGet, "/probe?token=from-param", nil)
	req.Header.Set("Authorization", "from-auth")
	assert.Equal(t, "from-param", probeRequest(t, req))
}
