package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// SecureHandler issues signed download URLs and serves gated files.
type SecureHandler struct {
	downloadService service.DownloadService
}

// NewSecureHandler creates a new secure file handler.
func NewSecureHandler(downloadService service.DownloadService) *SecureHandler {
	return &SecureHandler{downloadService: downloadService}
}

// GenerateDownloadURLRequest selects a file and its resource class.
type GenerateDownloadURLRequest struct {
	Filename string `json:"filename" validate:"required"`
	Type     string `json:"type"`
}

// GenerateDownloadURL godoc
// @Summary Generate a signed, time-limited download URL
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateDownloadURLRequest true "File and resource class"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/generate-download-url [post]
func (h *SecureHandler) GenerateDownloadURL(c echo.Context) error {
	var req GenerateDownloadURLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	class := service.DownloadClassMedia
	if req.Type == service.DownloadClassCV {
		class = service.DownloadClassCV
	}

	return c.JSON(http.StatusOK, map[string]string{
		"downloadUrl": h.downloadService.GenerateURL(req.Filename, class),
	})
}

// ServeFile godoc
// @Summary Redeem a signed URL and stream the original file
// @Tags secure
// @Produce octet-stream
// @Param path path string true "Resource path"
// @Param expires query string true "Expiry epoch millis"
// @Param signature query string true "HMAC signature (hex)"
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /secure/{path} [get]
func (h *SecureHandler) ServeFile(c echo.Context) error {
	resourcePath := c.Param("*")
	expires := c.QueryParam("expires")
	signature := c.QueryParam("signature")

	if expires == "" || signature == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "missing signature or expiry",
			Code:  "MISSING_PARAMS",
		})
	}

	// One rejection for expired, tampered and malformed URLs alike.
	if !h.downloadService.Verify(resourcePath, expires, signature) {
		return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
			Error: "invalid or expired URL",
			Code:  "INVALID_SIGNED_URL",
		})
	}

	path, err := h.downloadService.Resolve(resourcePath)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.File(path)
}
