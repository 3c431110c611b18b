package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithRole(e *echo.Echo, role string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			UserID: "user-1",
			Email:  "user@example.com",
			Role:   role,
		})
		c.Set("user", token)
	}
	return c, rec
}

func TestRequireRole(t *testing.T) {
	ok := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	tests := []struct {
		name       string
		role       string
		required   string
		wantStatus int
	}{
		{"equal role passes", RoleAdmin, RoleAdmin, http.StatusOK},
		{"higher role passes", RoleOwner, RoleAdmin, http.StatusOK},
		{"lower role forbidden", RoleEditor, RoleAdmin, http.StatusForbidden},
		{"viewer forbidden from editor gate", RoleViewer, RoleEditor, http.StatusForbidden},
		{"unknown role forbidden", "superuser", RoleViewer, http.StatusForbidden},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := contextWithRole(e, tt.role)
			err := RequireRole(tt.required)(ok)(c)

			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusForbidden, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "FORBIDDEN", body["code"])
			assert.Equal(t, tt.required, body["required"])
			assert.Equal(t, tt.role, body["current"])
		})
	}
}

func TestRequireRole_NoToken(t *testing.T) {
	e := echo.New()
	c, _ := contextWithRole(e, "")

	err := RequireRole(RoleViewer)(func(c echo.Context) error {
		t.Fatal("handler must not run without claims")
		return nil
	})(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestCurrentClaims(t *testing.T) {
	e := echo.New()

	c, _ := contextWithRole(e, RoleEditor)
	claims, err := CurrentClaims(c)
	require.NoError(t, err)
	assert.Equal(t, RoleEditor, claims.Role)
	assert.Equal(t, "user@example.com", claims.Email)

	c, _ = contextWithRole(e, "")
	claims, err = CurrentClaims(c)
	assert.ErrorIs(t, err, ErrNoClaims)
	assert.Nil(t, claims)
}
