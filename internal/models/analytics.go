package models

import "github.com/shopspring/decimal"

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyTotals holds one bucket per calendar month, January at index 0.
// Entries from every year fall into the same twelve buckets.
type MonthlyTotals [12]decimal.Decimal

// Sum returns the total across all twelve buckets.
func (m MonthlyTotals) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range m {
		total = total.Add(amount)
	}
	return total
}

// ExtremalMode selects the largest or smallest entry.
type ExtremalMode string

const (
	ExtremalMax ExtremalMode = "max"
	ExtremalMin ExtremalMode = "min"
)

// LedgerTotals are the balance figures shown on the dashboard.
type LedgerTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}
