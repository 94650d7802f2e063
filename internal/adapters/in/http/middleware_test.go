package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpin "cargotrack/internal/adapters/in/http"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callProtected(t *testing.T, authHeader string,
	middlewares ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "ok")
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	require.NoError(t, err)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	manager := token.NewJWTManager("test-secret", time.Hour)

	t.Run("should pass valid bearer token through", func(t *testing.T) {
		signed, err := manager.Issue(kernel.NewUUID().String(), "ivan@example.com", "client")
		require.NoError(t, err)

		rec := callProtected(t, "Bearer "+signed, httpin.AuthMiddleware(manager))
		assert.Equal(t, nethttp.StatusOK, rec.Code)
	})

	t.Run("should reject missing header", func(t *testing.T) {
		rec := callProtected(t, "", httpin.AuthMiddleware(manager))
		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject malformed header", func(t *testing.T) {
		rec := callProtected(t, "Token abc", httpin.AuthMiddleware(manager))
		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject token signed with another secret", func(t *testing.T) {
		other := token.NewJWTManager("other-secret", time.Hour)
		signed, err := other.Issue(kernel.NewUUID().String(), "ivan@example.com", "client")
		require.NoError(t, err)

		rec := callProtected(t, "Bearer "+signed, httpin.AuthMiddleware(manager))
		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject token with unknown role", func(t *testing.T) {
		signed, err := manager.Issue(kernel.NewUUID().String(), "ivan@example.com", "superuser")
		require.NoError(t, err)

		rec := callProtected(t, "Bearer "+signed, httpin.AuthMiddleware(manager))
		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	})
}

func TestStaffOnly(t *testing.T) {
	manager := token.NewJWTManager("test-secret", time.Hour)

	issue := func(role string) string {
		signed, err := manager.Issue(kernel.NewUUID().String(), "user@example.com", role)
		require.NoError(t, err)
		return signed
	}

	t.Run("should admit admin", func(t *testing.T) {
		rec := callProtected(t, "Bearer "+issue("admin"),
			httpin.AuthMiddleware(manager), httpin.StaffOnly())
		assert.Equal(t, nethttp.StatusOK, rec.Code)
	})

	t.Run("should admit manager", func(t *testing.T) {
		rec := callProtected(t, "Bearer "+issue("manager"),
			httpin.AuthMiddleware(manager), httpin.StaffOnly())
		assert.Equal(t, nethttp.StatusOK, rec.Code)
	})

	t.Run("should reject client", func(t *testing.T) {
		rec := callProtected(t, "Bearer "+issue("client"),
			httpin.AuthMiddleware(manager), httpin.StaffOnly())
		assert.Equal(t, nethttp.StatusForbidden, rec.Code)
	})

	t.Run("should reject anonymous", func(t *testing.T) {
		rec := callProtected(t, "", httpin.StaffOnly())
		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	})
}
