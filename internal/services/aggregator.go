package services

import (
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// TotalByType sums the amounts of all entries of the given type
func TotalByType(transactions []models.Transaction, transactionType string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == transactionType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// CategoryTotals sums amounts per category in first-seen order. When month is
// non-nil only entries dated in that zero-based month count, whatever their year.
func CategoryTotals(transactions []models.Transaction, transactionType string, month *int) []models.CategoryTotal {
	index := make(map[string]int)
	totals := make([]models.CategoryTotal, 0)

	for _, t := range transactions {
		if t.Type != transactionType {
			continue
		}
		if month != nil && t.Date.MonthIndex() != *month {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			index[t.Category] = len(totals)
			totals = append(totals, models.CategoryTotal{Category: t.Category, Total: t.Amount})
			continue
		}
		totals[i].Total = totals[i].Total.Add(t.Amount)
	}

	return totals
}

// MonthlyTotals buckets amounts by calendar month, collapsing years
func MonthlyTotals(transactions []models.Transaction, transactionType string) models.MonthlyTotals {
	var totals models.MonthlyTotals
	for i := range totals {
		totals[i] = decimal.Zero
	}

	for _, t := range transactions {
		if t.Type != transactionType {
			continue
		}
		m := t.Date.MonthIndex()
		totals[m] = totals[m].Add(t.Amount)
	}

	return totals
}

// Extremal finds the largest or smallest single entry of the type. Ties keep the
// earliest entry. The bool is false when no entry of the type exists.
func Extremal(transactions []models.Transaction, transactionType string, mode models.ExtremalMode) (models.Transaction, bool) {
	var best models.Transaction
	found := false

	for _, t := range transactions {
		if t.Type != transactionType {
			continue
		}
		if !found || better(t.Amount, best.Amount, mode) {
			best = t
			found = true
		}
	}

	return best, found
}

// MostFrequentCategory returns the category with the most entries of the type.
// Ties keep the category seen first. The bool is false on empty input.
func MostFrequentCategory(transactions []models.Transaction, transactionType string) (string, bool) {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, t := range transactions {
		if t.Type != transactionType {
			continue
		}
		if _, ok := counts[t.Category]; !ok {
			order = append(order, t.Category)
		}
		counts[t.Category]++
	}

	if len(order) == 0 {
		return "", false
	}

	mostFrequent := order[0]
	for _, category := range order[1:] {
		if counts[category] > counts[mostFrequent] {
			mostFrequent = category
		}
	}

	return mostFrequent, true
}

// extremalCategory picks the largest or smallest category total, first-seen on ties
func extremalCategory(totals []models.CategoryTotal, mode models.ExtremalMode) (models.CategoryTotal, bool) {
	if len(totals) == 0 {
		return models.CategoryTotal{}, false
	}

	best := totals[0]
	for _, total := range totals[1:] {
		if better(total.Total, best.Total, mode) {
			best = total
		}
	}

	return best, true
}

func better(candidate, current decimal.Decimal, mode models.ExtremalMode) bool {
	if mode == models.ExtremalMin {
		return candidate.LessThan(current)
	}
	return candidate.GreaterThan(current)
}
