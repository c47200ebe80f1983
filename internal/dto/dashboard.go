package dto

import "finance-tracker/internal/models"

// DashboardQuery selects the chart view for dashboard and chart requests
type DashboardQuery struct {
	View  string `json:"view" query:"view" validate:"view_mode"`
	Month int    `json:"month" query:"month" validate:"min=0,max=11"`
}

// ChartView returns the model view, defaulting to the overall view
func (q DashboardQuery) ChartView() models.ChartView {
	mode := models.ViewMode(q.View)
	if mode == "" {
		mode = models.ViewOverall
	}
	return models.ChartView{Mode: mode, Month: q.Month}
}

// SuggestionsResponse represents the advisory list
type SuggestionsResponse struct {
	Suggestions []models.Suggestion `json:"suggestions"`
	Totals      models.LedgerTotals `json:"totals"`
}
