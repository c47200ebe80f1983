package services

import (
	"context"
	"time"

	"finance-tracker/internal/messaging"
	"finance-tracker/internal/models"
)

// LedgerServiceInterface owns the transaction store and its undo history
type LedgerServiceInterface interface {
	// Load replaces the in-memory state with what the key-value store holds
	Load(ctx context.Context) error
	// AddTransaction appends the template, or its twelve monthly copies when repeat is set
	AddTransaction(ctx context.Context, template models.Transaction, repeat bool) ([]models.Transaction, error)
	// Undo restores the previous snapshot; ErrNothingToUndo when fewer than two exist
	Undo(ctx context.Context) ([]models.Transaction, error)
	// Reset clears the store, the history and their persisted keys
	Reset(ctx context.Context) error
	Transactions() []models.Transaction
	HistoryDepth() int
}

// DashboardServiceInterface derives totals, suggestions and chart series from the ledger
type DashboardServiceInterface interface {
	Refresh(view models.ChartView) (*models.Dashboard, error)
	Totals() models.LedgerTotals
	Suggestions() []models.Suggestion
	Charts(view models.ChartView) (*models.ChartData, error)
}

// ChartBuilderInterface builds the pie and bar series for a view
type ChartBuilderInterface interface {
	Build(transactions []models.Transaction, view models.ChartView) (*models.ChartData, error)
}

// PreferenceServiceInterface manages display preferences
type PreferenceServiceInterface interface {
	Theme(ctx context.Context) (string, error)
	ToggleTheme(ctx context.Context) (string, error)
}

// LedgerEventPublisherInterface announces ledger mutations to other systems
type LedgerEventPublisherInterface interface {
	PublishLedgerChanged(ctx context.Context, msg *messaging.LedgerChangedMessage) error
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface trips after repeated failures of a downstream dependency
type CircuitBreakerInterface interface {
	Allow() bool
	RecordSuccess()
	RecordFailure()
	State() BreakerState
}

// DemoDataGeneratorInterface produces sample submissions for development environments
type DemoDataGeneratorInterface interface {
	Generate(year, count int) []DemoEntry
}
