package auth

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// ErrInvalidToken covers malformed, badly signed and expired tokens alike.
// Callers treat it as "no identity", never as a fatal condition.
var ErrInvalidToken = errors.New("invalid token")

func secretKey() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "fallback-secret-key"
	}
	return []byte(secret)
}

// GenerateToken issues a signed token with the user's email as subject
func GenerateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":         email,
		"authorities": []string{"ROLE_USER"},
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(10 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ExtractSubject verifies the token signature and expiry and returns the
// embedded subject (the login email)
func ExtractSubject(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secretKey(), nil
	})

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}

// TokenValid reports whether the token is unexpired and bound to the given
// login email. This re-checks token integrity against the resolved identity,
// not just the decoded subject.
func TokenValid(tokenString, email string) bool {
	subject, err := ExtractSubject(tokenString)
	if err != nil {
		return false
	}
	return subject == email
}

func bearerToken(header string) string {
	if strings.HasPrefix(header, bearerPrefix) && len(header) > len(bearerPrefix) {
		return header[len(bearerPrefix):]
	}
	return ""
}

func paramValue(c *fiber.Ctx, name string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return c.FormValue(name)
}

// TokenFromRequest pulls a bearer credential out of an HTTP request.
// Search order: Authorization header, X-Authorization header, then the
// token and access_token parameters. Empty string means anonymous.
func TokenFromRequest(c *fiber.Ctx) string {
	if token := bearerToken(c.Get("Authorization")); token != "" {
		return token
	}
	if token := bearerToken(c.Get("X-Authorization")); token != "" {
		return token
	}
	if token := paramValue(c, "token"); token != "" {
		return token
	}
	return paramValue(c, "access_token")
}

// TokenFromHeaders applies the same header search order to a websocket
// frame's header map
func TokenFromHeaders(headers map[string]string) string {
	if token := bearerToken(headers["Authorization"]); token != "" {
		return token
	}
	return bearerToken(headers["X-Authorization"])
}
