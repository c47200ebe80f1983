package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"finance-tracker/internal/messaging"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
)

type ledgerService struct {
	mu           sync.Mutex
	store        repositories.KeyValueStoreInterface
	publisher    LedgerEventPublisherInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	transactions []models.Transaction
	history      [][]models.Transaction
}

// NewLedgerService creates an empty ledger bound to the key-value store. Call Load to restore persisted state.
func NewLedgerService(
	store repositories.KeyValueStoreInterface,
	publisher LedgerEventPublisherInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ledgerService{
		store:        store,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
		transactions: []models.Transaction{},
		history:      [][]models.Transaction{},
	}
}

func (s *ledgerService) Load(ctx context.Context) error {
	start := time.Now()

	transactions, err := readState[[]models.Transaction](ctx, s, models.StateKeyTransactions)
	if err != nil {
		s.recordOperation("load", "failed", start)
		return err
	}

	history, err := readState[[][]models.Transaction](ctx, s, models.StateKeyTransactionHistory)
	if err != nil {
		s.recordOperation("load", "failed", start)
		return err
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if history == nil {
		history = [][]models.Transaction{}
	}

	s.mu.Lock()
	s.transactions = transactions
	s.history = history
	s.recordSizes()
	s.mu.Unlock()

	s.logger.Info("ledger loaded",
		"transaction_count", len(transactions),
		"history_depth", len(history))
	s.recordOperation("load", "success", start)

	return nil
}

// readState decodes the value under key. An absent or corrupt value yields the zero
// value; only backend failures are returned.
func readState[T any](ctx context.Context, s *ledgerService, key string) (T, error) {
	var zero T

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrKeyNotFound) {
			return zero, nil
		}
		return zero, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var decoded T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		s.logger.Warn("discarding unreadable ledger state",
			"key", key,
			"error", err)
		s.increment("ledger.state.corrupt", map[string]string{"key": key})
		return zero, nil
	}

	return decoded, nil
}

func (s *ledgerService) AddTransaction(ctx context.Context, template models.Transaction, repeat bool) ([]models.Transaction, error) {
	start := time.Now()

	if err := template.Validate(); err != nil {
		s.recordOperation("add", "rejected", start)
		return nil, err
	}

	expanded := ExpandRecurrence(template, repeat)

	s.mu.Lock()
	s.transactions = append(s.transactions, expanded...)
	s.history = append(s.history, models.CloneTransactions(s.transactions))
	s.persistTransactions(ctx)
	s.persistHistory(ctx)
	count, depth := len(s.transactions), len(s.history)
	s.recordSizes()
	s.mu.Unlock()

	s.logger.Info("transactions added",
		"type", template.Type,
		"category", template.Category,
		"repeat", repeat,
		"added", len(expanded),
		"transaction_count", count,
		"history_depth", depth)

	s.publish(ctx, messaging.NewLedgerChangedMessage(messaging.ActionAdd, len(expanded), count, depth))
	s.recordOperation("add", "success", start)

	return models.CloneTransactions(expanded), nil
}

func (s *ledgerService) Undo(ctx context.Context) ([]models.Transaction, error) {
	start := time.Now()

	s.mu.Lock()
	if len(s.history) <= 1 {
		s.mu.Unlock()
		s.recordOperation("undo", "noop", start)
		return nil, ErrNothingToUndo
	}

	s.history = s.history[:len(s.history)-1]
	s.transactions = models.CloneTransactions(s.history[len(s.history)-1])
	s.persistTransactions(ctx)
	s.persistHistory(ctx)
	restored := models.CloneTransactions(s.transactions)
	depth := len(s.history)
	s.recordSizes()
	s.mu.Unlock()

	s.logger.Info("ledger undo applied",
		"transaction_count", len(restored),
		"history_depth", depth)

	s.publish(ctx, messaging.NewLedgerChangedMessage(messaging.ActionUndo, 0, len(restored), depth))
	s.recordOperation("undo", "success", start)

	return restored, nil
}

func (s *ledgerService) Reset(ctx context.Context) error {
	start := time.Now()

	s.mu.Lock()
	s.transactions = []models.Transaction{}
	s.history = [][]models.Transaction{}
	for _, key := range []string{models.StateKeyTransactions, models.StateKeyTransactionHistory} {
		if err := s.store.Delete(ctx, key); err != nil {
			s.persistenceFailed(key, err)
		}
	}
	s.recordSizes()
	s.mu.Unlock()

	s.logger.Info("ledger reset")

	s.publish(ctx, messaging.NewLedgerChangedMessage(messaging.ActionReset, 0, 0, 0))
	s.recordOperation("reset", "success", start)

	return nil
}

func (s *ledgerService) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneTransactions(s.transactions)
}

func (s *ledgerService) HistoryDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// persistTransactions and persistHistory must be called with mu held. Write failures
// are logged and counted; the in-memory state stays authoritative.
func (s *ledgerService) persistTransactions(ctx context.Context) {
	s.writeState(ctx, models.StateKeyTransactions, s.transactions)
}

func (s *ledgerService) persistHistory(ctx context.Context) {
	s.writeState(ctx, models.StateKeyTransactionHistory, s.history)
}

func (s *ledgerService) writeState(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.persistenceFailed(key, err)
		return
	}

	if err := s.store.Set(ctx, key, string(data)); err != nil {
		s.persistenceFailed(key, err)
	}
}

func (s *ledgerService) persistenceFailed(key string, err error) {
	s.logger.Error("failed to persist ledger state",
		"key", key,
		"error", err)
	s.increment("ledger.persistence.failed", map[string]string{"key": key})
}

func (s *ledgerService) publish(ctx context.Context, msg *messaging.LedgerChangedMessage) {
	if err := s.publisher.PublishLedgerChanged(ctx, msg); err != nil {
		s.logger.Warn("failed to publish ledger change",
			"action", msg.Action,
			"error", err)
		s.increment("ledger.event.publish_failed", map[string]string{"action": msg.Action})
	}
}

// recordSizes must be called with mu held
func (s *ledgerService) recordSizes() {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordGauge("ledger.transactions", float64(len(s.transactions)), nil)
	s.metrics.RecordGauge("ledger.history_depth", float64(len(s.history)), nil)
}

func (s *ledgerService) recordOperation(operation, status string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("ledger.operation", map[string]string{
		"operation": operation,
		"status":    status,
	})
	s.metrics.RecordProcessingTime("ledger.operation."+operation, time.Since(start))
}

func (s *ledgerService) increment(name string, tags map[string]string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(name, tags)
}
