package auth

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ErrNoClaims is returned when the request context carries no verified token.
var ErrNoClaims = errors.New("no token claims in context")

// CurrentClaims extracts the verified claims placed in the context by the JWT
// middleware. It must only be called on routes behind that middleware.
func CurrentClaims(c echo.Context) (*Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, ErrNoClaims
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// RequireRole produces a middleware enforcing a minimum role level. It runs
// after identity verification and never itself verifies signatures. The 403
// payload discloses required vs current role; role names are not secret.
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := CurrentClaims(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			if !CanAccess(claims.Role, required) {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error":    "insufficient permissions",
					"code":     "FORBIDDEN",
					"required": required,
					"current":  claims.Role,
				})
			}

			return next(c)
		}
	}
}
