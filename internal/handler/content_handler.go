package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// ContentHandler handles the public site view and the admin content/settings
// documents.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// GetPublicSite godoc
// @Summary Get public settings and content
// @Tags content
// @Produce json
// @Success 200 {object} model.PublicSite
// @Failure 500 {object} errors.ErrorResponse
// @Router /content [get]
func (h *ContentHandler) GetPublicSite(c echo.Context) error {
	site, err := h.contentService.GetPublicSite(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, site)
}

// GetContent godoc
// @Summary Get the full content document
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Content
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/content [get]
func (h *ContentHandler) GetContent(c echo.Context) error {
	content, err := h.contentService.GetContent(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, content)
}

// UpdateContent godoc
// @Summary Update content blocks
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ContentUpdate true "Blocks to change"
// @Success 200 {object} model.Content
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/content [put]
func (h *ContentHandler) UpdateContent(c echo.Context) error {
	var update model.ContentUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	content, err := h.contentService.UpdateContent(c.Request().Context(), update)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, content)
}

// GetSettings godoc
// @Summary Get site settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Settings
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/settings [get]
func (h *ContentHandler) GetSettings(c echo.Context) error {
	settings, err := h.contentService.GetSettings(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Update site settings
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SettingsUpdate true "Fields to change"
// @Success 200 {object} model.Settings
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/settings [put]
func (h *ContentHandler) UpdateSettings(c echo.Context) error {
	var update model.SettingsUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	settings, err := h.contentService.UpdateSettings(c.Request().Context(), update)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, settings)
}
