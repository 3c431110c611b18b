package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// UploadHandler handles multipart upload endpoints.
type UploadHandler struct {
	uploadService  service.UploadService
	contentService service.ContentService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService, contentService service.ContentService) *UploadHandler {
	return &UploadHandler{
		uploadService:  uploadService,
		contentService: contentService,
	}
}

// UploadMedia godoc
// @Summary Upload media files
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Media files (up to 10)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/upload [post]
func (h *UploadHandler) UploadMedia(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no files uploaded")
	}

	processed, err := h.uploadService.ProcessFiles(c.Request().Context(), files)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"files": processed})
}

// UploadCV godoc
// @Summary Upload the CV document (PDF)
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param cv formData file true "CV document"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/upload-cv [post]
func (h *UploadHandler) UploadCV(c echo.Context) error {
	file, err := c.FormFile("cv")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}

	cv, err := h.uploadService.ProcessCV(c.Request().Context(), file)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.contentService.SetCV(c.Request().Context(), *cv); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":      "CV uploaded successfully",
		"filename":     cv.Filename,
		"originalName": cv.OriginalName,
	})
}
