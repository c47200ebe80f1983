package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerStateRepository stores ledger state rows in a SQL database through gorm
type LedgerStateRepository struct {
	db *gorm.DB
}

// NewLedgerStateRepository creates a new SQL-backed key-value store
func NewLedgerStateRepository(db *gorm.DB) KeyValueStoreInterface {
	return &LedgerStateRepository{
		db: db,
	}
}

// Get retrieves the value stored under key
func (r *LedgerStateRepository) Get(ctx context.Context, key string) (string, error) {
	var state models.LedgerState

	if err := r.db.WithContext(ctx).Where("state_key = ?", key).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get ledger state %q: %w", key, err)
	}

	return state.Value, nil
}

// Set inserts or replaces the value stored under key
func (r *LedgerStateRepository) Set(ctx context.Context, key, value string) error {
	state := &models.LedgerState{
		Key:   key,
		Value: value,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(state).Error
	if err != nil {
		return fmt.Errorf("failed to save ledger state %q: %w", key, err)
	}

	return nil
}

// Delete removes the row stored under key
func (r *LedgerStateRepository) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("state_key = ?", key).Delete(&models.LedgerState{}).Error; err != nil {
		return fmt.Errorf("failed to delete ledger state %q: %w", key, err)
	}

	return nil
}

// Ping checks database connectivity
func (r *LedgerStateRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
