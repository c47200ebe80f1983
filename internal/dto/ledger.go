package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Ledger Request DTOs

// AddTransactionRequest represents the request payload for recording an income or expense.
// Amount accepts a JSON number or a numeric string.
type AddTransactionRequest struct {
	Type     string      `json:"type" validate:"required,transaction_type"`
	Category string      `json:"category"`
	Amount   json.Number `json:"amount" validate:"required,positive_amount"`
	Date     string      `json:"date" validate:"required,date_format"`
	Repeat   bool        `json:"repeat"`
}

// ToTransaction converts a validated request into the transaction template
func (r AddTransactionRequest) ToTransaction() (models.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount.String()))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}

	date, err := models.ParseDate(r.Date)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		Type:     r.Type,
		Category: strings.TrimSpace(r.Category),
		Amount:   amount,
		Date:     date,
	}, nil
}

// Ledger Response DTOs

// TransactionListResponse represents the full transaction store
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	HistoryDepth int                  `json:"historyDepth"`
}

// AddTransactionResponse represents the entries appended by one add
type AddTransactionResponse struct {
	Added        []models.Transaction `json:"added"`
	Count        int                  `json:"count"`
	HistoryDepth int                  `json:"historyDepth"`
	Message      string               `json:"message"`
}

// UndoResponse represents the store after an undo
type UndoResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	HistoryDepth int                  `json:"historyDepth"`
	Message      string               `json:"message"`
}

// ResetResponse represents the outcome of clearing the ledger
type ResetResponse struct {
	Message string `json:"message"`
}
