package handlers

import (
	stderrors "errors"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves totals, suggestions and chart series
type DashboardHandler struct {
	dashboard services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func parseDashboardQuery(c echo.Context) (dto.DashboardQuery, error) {
	month, err := getIntParam(c, "month", 0)
	if err != nil {
		return dto.DashboardQuery{}, err
	}

	query := dto.DashboardQuery{
		View:  c.QueryParam("view"),
		Month: month,
	}
	return query, c.Validate(query)
}

// sendQueryError reports a non-numeric month as LEDGER_004 and validator failures through their field codes
func sendQueryError(c echo.Context, err error) error {
	if stderrors.Is(err, errNotAnInteger) {
		return SendError(c, errors.LedgerInvalidMonth, errors.WithDetails(err.Error()))
	}
	return sendValidationError(c, err)
}

// GetDashboard returns the full dashboard refresh
// @Summary Get dashboard
// @Description Totals, suggestions and charts recomputed from the current store
// @Tags Dashboard
// @Produce json
// @Param view query string false "Chart view" Enums(overall, monthly)
// @Param month query int false "Zero-based month for the monthly view" default(0)
// @Success 200 {object} models.Dashboard "Dashboard"
// @Failure 400 {object} errors.ErrorResponse "LEDGER_003 - Invalid view or LEDGER_004 - Invalid month"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	query, err := parseDashboardQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	dashboard, err := h.dashboard.Refresh(query.ChartView())
	if err != nil {
		return sendModelError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

// GetSuggestions returns the advisory list with the totals it was built from
// @Summary Get suggestions
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.SuggestionsResponse "Suggestions"
// @Router /suggestions [get]
func (h *DashboardHandler) GetSuggestions(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.SuggestionsResponse{
		Suggestions: h.dashboard.Suggestions(),
		Totals:      h.dashboard.Totals(),
	})
}

// GetCharts returns the pie and bar series for the selected view
// @Summary Get charts
// @Tags Dashboard
// @Produce json
// @Param view query string false "Chart view" Enums(overall, monthly)
// @Param month query int false "Zero-based month for the monthly view" default(0)
// @Success 200 {object} models.ChartData "Chart series"
// @Failure 400 {object} errors.ErrorResponse "LEDGER_003 - Invalid view or LEDGER_004 - Invalid month"
// @Router /charts [get]
func (h *DashboardHandler) GetCharts(c echo.Context) error {
	query, err := parseDashboardQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	charts, err := h.dashboard.Charts(query.ChartView())
	if err != nil {
		return sendModelError(c, err)
	}

	return c.JSON(http.StatusOK, charts)
}
