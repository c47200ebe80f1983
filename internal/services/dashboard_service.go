package services

import (
	"log/slog"
	"time"

	"finance-tracker/internal/models"
)

type dashboardService struct {
	ledger  LedgerServiceInterface
	charts  ChartBuilderInterface
	metrics MetricsRecorderInterface
}

func NewDashboardService(
	ledger LedgerServiceInterface,
	charts ChartBuilderInterface,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	return &dashboardService{
		ledger:  ledger,
		charts:  charts,
		metrics: metrics,
	}
}

// Refresh recomputes every derived view from one copy of the store
func (s *dashboardService) Refresh(view models.ChartView) (*models.Dashboard, error) {
	start := time.Now()
	transactions := s.ledger.Transactions()

	charts, err := s.charts.Build(transactions, view)
	if err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		Totals:      computeTotals(transactions),
		Suggestions: GenerateSuggestions(transactions),
		Charts:      *charts,
	}

	if s.metrics != nil {
		s.metrics.RecordProcessingTime("dashboard.refresh", time.Since(start))
	}

	slog.Debug("dashboard refreshed",
		"transaction_count", len(transactions),
		"view", view.Mode,
		"suggestion_count", len(dashboard.Suggestions))

	return dashboard, nil
}

func (s *dashboardService) Totals() models.LedgerTotals {
	return computeTotals(s.ledger.Transactions())
}

func (s *dashboardService) Suggestions() []models.Suggestion {
	return GenerateSuggestions(s.ledger.Transactions())
}

func (s *dashboardService) Charts(view models.ChartView) (*models.ChartData, error) {
	return s.charts.Build(s.ledger.Transactions(), view)
}

func computeTotals(transactions []models.Transaction) models.LedgerTotals {
	income := TotalByType(transactions, models.TransactionTypeIncome)
	expense := TotalByType(transactions, models.TransactionTypeExpense)
	return models.LedgerTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
