package http

import (
	nethttp "net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cargotrack/internal/core/domain/model/account"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/token"
)

const principalContextKey = "principal"

// TokenVerifier checks an access token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (token.Claims, error)
}

// Principal is the authenticated identity attached to the request context.
type Principal struct {
	ProfileID kernel.UUID
	Email     string
	Role      account.Role
}

// IsStaff reports whether the principal may use the admin route group.
func (p Principal) IsStaff() bool {
	return p.Role.IsStaff()
}

// AuthMiddleware verifies the Bearer token and stores the principal in the
// request context. Requests without a valid token get 401.
func AuthMiddleware(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c, "Missing bearer token")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return unauthorized(c, "Invalid or expired token")
			}

			profileID, err := kernel.UUIDFromString(claims.ProfileID)
			if err != nil {
				return unauthorized(c, "Invalid token subject")
			}
			role, err := account.RoleFromString(claims.Role)
			if err != nil {
				return unauthorized(c, "Invalid token role")
			}

			c.Set(principalContextKey, Principal{
				ProfileID: profileID,
				Email:     claims.Email,
				Role:      role,
			})
			return next(c)
		}
	}
}

// StaffOnly rejects principals outside the admin and manager roles.
func StaffOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := principalFrom(c)
			if !ok {
				return unauthorized(c, "Authentication required")
			}
			if !principal.IsStaff() {
				return c.JSON(nethttp.StatusForbidden, ErrorResponse{
					Code:    nethttp.StatusForbidden,
					Message: "Staff role required",
				})
			}
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(principalContextKey).(Principal)
	return principal, ok
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(nethttp.StatusUnauthorized, ErrorResponse{
		Code:    nethttp.StatusUnauthorized,
		Message: message,
	})
}
