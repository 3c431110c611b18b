package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/auth"
	"portfolio/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newSecureTestEnv(t *testing.T) (*echo.Echo, *SecureHandler, service.DownloadService) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("original bytes"), 0o644))

	signer := auth.NewURLSigner("test-hmac-secret")
	downloadService := service.NewDownloadService(signer, dir, 30*time.Minute, 60*time.Minute)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e, NewSecureHandler(downloadService), downloadService
}

func serveFileContext(e *echo.Echo, resourcePath, query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/secure/"+resourcePath+"?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("*")
	c.SetParamValues(resourcePath)
	return c, rec
}

func TestSecureHandler_ServeFile(t *testing.T) {
	e, h, downloadService := newSecureTestEnv(t)

	signed := downloadService.GenerateURL("photo.jpg", service.DownloadClassMedia)
	u, err := url.Parse(signed)
	require.NoError(t, err)
	expires := u.Query().Get("expires")
	signature := u.Query().Get("signature")

	t.Run("valid signed URL streams the file", func(t *testing.T) {
		c, rec := serveFileContext(e, "photo.jpg", u.RawQuery)
		require.NoError(t, h.ServeFile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "original bytes", rec.Body.String())
	})

	t.Run("missing parameters", func(t *testing.T) {
		c, _ := serveFileContext(e, "photo.jpg", "expires="+expires)
		err := h.ServeFile(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("tampered signature", func(t *testing.T) {
		bad := "0" + signature[1:]
		if bad == signature {
			bad = "1" + signature[1:]
		}
		c, _ := serveFileContext(e, "photo.jpg", "expires="+expires+"&signature="+bad)
		err := h.ServeFile(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("signature for another file", func(t *testing.T) {
		c, _ := serveFileContext(e, "other.jpg", "expires="+expires+"&signature="+signature)
		err := h.ServeFile(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("valid signature for a missing file", func(t *testing.T) {
		missing := downloadService.GenerateURL("gone.jpg", service.DownloadClassMedia)
		mu, err := url.Parse(missing)
		require.NoError(t, err)

		c, _ := serveFileContext(e, "gone.jpg", mu.RawQuery)
		serveErr := h.ServeFile(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, serveErr, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestSecureHandler_GenerateDownloadURL(t *testing.T) {
	e, h, downloadService := newSecureTestEnv(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		checkURL   func(*testing.T, string)
	}{
		{
			name:       "media class",
			body:       `{"filename":"photo.jpg"}`,
			wantStatus: http.StatusOK,
			checkURL: func(t *testing.T, downloadURL string) {
				assert.True(t, strings.HasPrefix(downloadURL, "/api/secure/photo.jpg?"))

				u, err := url.Parse(downloadURL)
				require.NoError(t, err)
				assert.True(t, downloadService.Verify("photo.jpg", u.Query().Get("expires"), u.Query().Get("signature")))
			},
		},
		{
			name:       "cv class gets the longer window",
			body:       `{"filename":"cv.pdf","type":"cv"}`,
			wantStatus: http.StatusOK,
			checkURL: func(t *testing.T, downloadURL string) {
				u, err := url.Parse(downloadURL)
				require.NoError(t, err)
				expires := u.Query().Get("expires")
				require.NotEmpty(t, expires)
				assert.True(t, downloadService.Verify("cv.pdf", expires, u.Query().Get("signature")))
			},
		},
		{
			name:       "missing filename",
			body:       `{"type":"media"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/generate-download-url", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.GenerateDownloadURL(c)

			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)

				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				tt.checkURL(t, resp["downloadUrl"])
			} else {
				var httpErr *echo.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.wantStatus, httpErr.Code)
			}
		})
	}
}
