package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Keys under which the ledger persists its state.
const (
	StateKeyTransactions       = "transactions"
	StateKeyTransactionHistory = "transactionHistory"
	StateKeyTheme              = "theme"

	MaxStateKeyLength = 64
)

var ErrInvalidStateKey = errors.New("state key must be between 1 and 64 characters")

// LedgerState is one key-value row in the SQL storage backends.
type LedgerState struct {
	Key       string    `gorm:"column:state_key;type:varchar(64);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (*LedgerState) TableName() string {
	return "ledger_state"
}

// BeforeSave hook for LedgerState
func (s *LedgerState) BeforeSave(tx *gorm.DB) error {
	s.UpdatedAt = time.Now().UTC()
	return s.Validate()
}

func (s *LedgerState) Validate() error {
	if s.Key == "" || len(s.Key) > MaxStateKeyLength {
		return ErrInvalidStateKey
	}
	return nil
}
