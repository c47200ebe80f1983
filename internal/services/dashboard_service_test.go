package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ctx     context.Context
	ledger  LedgerServiceInterface
	service DashboardServiceInterface
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.ledger = NewLedgerService(repositories.NewMemoryStateRepository(), nil, nil, nil)
	s.service = NewDashboardService(s.ledger, NewChartBuilder(func() string { return "#123456" }), nil)
}

func (s *DashboardServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardServiceSuite) seed() {
	for _, txn := range []models.Transaction{
		newTransaction(models.TransactionTypeIncome, "Salary", "1000", models.NewDate(2024, time.January, 15)),
		newTransaction(models.TransactionTypeExpense, "Food", "200", models.NewDate(2024, time.January, 20)),
		newTransaction(models.TransactionTypeExpense, "Rent", "800", models.NewDate(2024, time.February, 1)),
	} {
		_, err := s.ledger.AddTransaction(s.ctx, txn, false)
		s.Require().NoError(err)
	}
}

func (s *DashboardServiceSuite) TestRefresh_BalancedScenario() {
	s.seed()

	dashboard, err := s.service.Refresh(models.ChartView{Mode: models.ViewOverall})

	s.Require().NoError(err)
	s.Equal("1000.00", dashboard.Totals.Income.StringFixed(2))
	s.Equal("1000.00", dashboard.Totals.Expense.StringFixed(2))
	s.True(dashboard.Totals.Balance.IsZero())
	s.Len(dashboard.Suggestions, 8)
	s.Len(dashboard.Charts.Pie, 2)
	s.Len(dashboard.Charts.Bar, 12)
}

func (s *DashboardServiceSuite) TestRefresh_EmptyLedger() {
	dashboard, err := s.service.Refresh(models.ChartView{Mode: models.ViewOverall})

	s.Require().NoError(err)
	s.True(dashboard.Totals.Income.IsZero())
	s.True(dashboard.Totals.Expense.IsZero())
	s.True(dashboard.Totals.Balance.IsZero())
	s.Len(dashboard.Suggestions, 2)
	s.Empty(dashboard.Charts.Pie)
}

func (s *DashboardServiceSuite) TestTotals_NegativeBalance() {
	_, err := s.ledger.AddTransaction(s.ctx,
		newTransaction(models.TransactionTypeExpense, "Rent", "800", models.NewDate(2024, time.February, 1)), false)
	s.Require().NoError(err)

	totals := s.service.Totals()

	s.Equal("-800.00", totals.Balance.StringFixed(2))
}

func (s *DashboardServiceSuite) TestSuggestionsAndCharts() {
	s.seed()

	s.Equal("Most frequent expense category: Food", s.service.Suggestions()[5].Message)

	charts, err := s.service.Charts(models.ChartView{Mode: models.ViewMonthly, Month: 0})
	s.Require().NoError(err)
	s.Require().Len(charts.Pie, 1)
	s.Equal("Food", charts.Pie[0].Label)
	s.Equal("#123456", charts.Pie[0].Color)
}

func (s *DashboardServiceSuite) TestRefresh_ChartErrorPropagates() {
	ledger := service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	charts := service_mocks.NewMockChartBuilderInterface(s.ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	service := NewDashboardService(ledger, charts, metrics)

	view := models.ChartView{Mode: "weekly"}
	ledger.EXPECT().Transactions().Return([]models.Transaction{})
	charts.EXPECT().Build(gomock.Any(), view).Return(nil, models.ErrInvalidViewMode)

	dashboard, err := service.Refresh(view)

	s.True(errors.Is(err, models.ErrInvalidViewMode))
	s.Nil(dashboard)
}

func (s *DashboardServiceSuite) TestRefresh_RecordsDuration() {
	ledger := service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	service := NewDashboardService(ledger, NewChartBuilder(nil), metrics)

	ledger.EXPECT().Transactions().Return(nil)
	metrics.EXPECT().RecordProcessingTime("dashboard.refresh", gomock.Any()).Times(1)

	_, err := service.Refresh(models.ChartView{Mode: models.ViewOverall})

	s.NoError(err)
}
