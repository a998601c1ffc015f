package middleware

import (
	"github.com/labstack/echo/v4"

	"estatia/pkg/errors"
	"estatia/pkg/response"
)

// RequireRoles allows the request through only when the authenticated
// caller carries one of the given roles. Must run after Authenticate.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok {
				return response.Error(c, errors.Unauthorized("Authentication required", nil))
			}
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return response.Error(c, errors.Unauthorized("Insufficient privileges", nil))
		}
	}
}
