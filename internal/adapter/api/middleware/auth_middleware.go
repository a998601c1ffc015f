package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"estatia/internal/infrastructure/token"
	"estatia/pkg/errors"
	"estatia/pkg/response"
)

type AuthMiddleware struct {
	tokens *token.Manager
}

func NewAuthMiddleware(tokens *token.Manager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate verifies the Bearer token and stores the caller's identity
// on the request context under "uid", "email" and "role".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			return response.Error(c, err)
		}

		c.Set("uid", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		return next(c)
	}
}
