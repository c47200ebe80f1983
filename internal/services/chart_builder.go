package services

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

// ColorGenerator returns a #rrggbb color for the next pie slice
type ColorGenerator func() string

// RandomColor picks a random #rrggbb color from the shared faker. Safe for concurrent use.
func RandomColor() string {
	return gofakeit.HexColor()
}

type chartBuilder struct {
	color ColorGenerator
}

// NewChartBuilder creates a chart builder. A nil generator uses RandomColor.
func NewChartBuilder(color ColorGenerator) ChartBuilderInterface {
	if color == nil {
		color = RandomColor
	}
	return &chartBuilder{color: color}
}

// Build returns the expense pie series for the view and the twelve-month expense bar series
func (b *chartBuilder) Build(transactions []models.Transaction, view models.ChartView) (*models.ChartData, error) {
	if err := view.Validate(); err != nil {
		return nil, err
	}

	var month *int
	if view.Mode == models.ViewMonthly {
		selected := view.Month
		month = &selected
	}

	categories := CategoryTotals(transactions, models.TransactionTypeExpense, month)
	pie := make([]models.PieSlice, 0, len(categories))
	for _, c := range categories {
		pie = append(pie, models.PieSlice{
			Label: c.Category,
			Value: c.Total,
			Color: b.color(),
		})
	}

	monthly := MonthlyTotals(transactions, models.TransactionTypeExpense)
	bar := make([]models.BarPoint, 0, len(monthly))
	for i, amount := range monthly {
		bar = append(bar, models.BarPoint{
			Label: time.Month(i + 1).String(),
			Value: amount,
		})
	}

	if view.Mode == models.ViewOverall {
		view.Month = 0
	}

	return &models.ChartData{
		View:     view,
		Pie:      pie,
		Bar:      bar,
		BarColor: models.BarChartColor,
	}, nil
}
