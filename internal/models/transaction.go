package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrInvalidDate            = errors.New("transaction date is required")
)

// Transaction is a single income or expense entry in the ledger. Entries are
// never edited after they are recorded.
type Transaction struct {
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     Date            `json:"date"`
}

// Validate validates the transaction fields
func (t Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Date.IsZero() {
		return ErrInvalidDate
	}

	return nil
}

// IsExpense returns true for expense entries
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome returns true for income entries
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// CloneTransactions returns an independent copy of the slice. A nil input yields an empty slice.
func CloneTransactions(transactions []Transaction) []Transaction {
	cloned := make([]Transaction, len(transactions))
	copy(cloned, transactions)
	return cloned
}
