package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ViewMode is the time window used for category charts.
type ViewMode string

const (
	ViewOverall ViewMode = "overall"
	ViewMonthly ViewMode = "monthly"

	BarChartColor = "#9400D3"
)

var (
	ErrInvalidViewMode = errors.New("view must be overall or monthly")
	ErrInvalidMonth    = errors.New("month must be between 0 and 11")
)

// ChartView selects the chart window. Month is only used by the monthly view.
type ChartView struct {
	Mode  ViewMode `json:"mode"`
	Month int      `json:"month"`
}

func (v ChartView) Validate() error {
	switch v.Mode {
	case ViewOverall:
		return nil
	case ViewMonthly:
		if v.Month < 0 || v.Month > 11 {
			return ErrInvalidMonth
		}
		return nil
	default:
		return ErrInvalidViewMode
	}
}

// PieSlice is one category slice of the expense pie chart.
type PieSlice struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// BarPoint is one month of the expense bar chart.
type BarPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// ChartData is the series pair rendered by the dashboard.
type ChartData struct {
	View     ChartView  `json:"view"`
	Pie      []PieSlice `json:"pie"`
	Bar      []BarPoint `json:"bar"`
	BarColor string     `json:"barColor"`
}

// Dashboard is a full refresh of the derived ledger views.
type Dashboard struct {
	Totals      LedgerTotals `json:"totals"`
	Suggestions []Suggestion `json:"suggestions"`
	Charts      ChartData    `json:"charts"`
}
