package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// PreferenceHandler handles display preference requests
type PreferenceHandler struct {
	preferences services.PreferenceServiceInterface
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferences services.PreferenceServiceInterface) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// GetTheme returns the active theme
// @Summary Get theme
// @Tags Preferences
// @Produce json
// @Success 200 {object} dto.ThemeResponse "Active theme"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Storage backend error"
// @Router /preferences/theme [get]
func (h *PreferenceHandler) GetTheme(c echo.Context) error {
	theme, err := h.preferences.Theme(c.Request().Context())
	if err != nil {
		return SendStorageError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ThemeResponse{Theme: theme})
}

// ToggleTheme switches between the light and dark theme
// @Summary Toggle theme
// @Tags Preferences
// @Produce json
// @Success 200 {object} dto.ThemeResponse "New theme"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Storage backend error"
// @Router /preferences/theme/toggle [post]
func (h *PreferenceHandler) ToggleTheme(c echo.Context) error {
	theme, err := h.preferences.ToggleTheme(c.Request().Context())
	if err != nil {
		return SendStorageError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ThemeResponse{Theme: theme})
}
