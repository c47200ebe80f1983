package services

import (
	"fmt"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// GenerateSuggestions rebuilds the advisory list from scratch. The budget status and
// the monthly average are always present; the rest only appear when expense data supports them.
func GenerateSuggestions(transactions []models.Transaction) []models.Suggestion {
	income := TotalByType(transactions, models.TransactionTypeIncome)
	expense := TotalByType(transactions, models.TransactionTypeExpense)

	suggestions := make([]models.Suggestion, 0, 8)
	add := func(kind, format string, args ...any) {
		suggestions = append(suggestions, models.Suggestion{Kind: kind, Message: fmt.Sprintf(format, args...)})
	}

	if expense.GreaterThan(income) {
		add(models.SuggestionBudgetStatus, "Consider reducing your expenses to stay within your income limits.")
	} else {
		add(models.SuggestionBudgetStatus, "Great job! Your expenses are within your income limits.")
	}

	categories := CategoryTotals(transactions, models.TransactionTypeExpense, nil)
	if highest, ok := extremalCategory(categories, models.ExtremalMax); ok && highest.Total.IsPositive() {
		add(models.SuggestionHighestCategory, "Highest expense category: %s with amount %s",
			highest.Category, highest.Total.StringFixed(2))
	}
	if lowest, ok := extremalCategory(categories, models.ExtremalMin); ok {
		add(models.SuggestionLowestCategory, "Lowest expense category: %s with amount %s",
			lowest.Category, lowest.Total.StringFixed(2))
	}

	monthly := MonthlyTotals(transactions, models.TransactionTypeExpense)
	highestMonth, highestMonthAmount := -1, decimal.Zero
	for month, amount := range monthly {
		if amount.GreaterThan(highestMonthAmount) {
			highestMonth, highestMonthAmount = month, amount
		}
	}
	if highestMonth >= 0 {
		add(models.SuggestionHighestMonth, "Highest monthly expense: Month %d with amount %s",
			highestMonth+1, highestMonthAmount.StringFixed(2))
	}

	add(models.SuggestionAverageMonthly, "Average monthly expense: %s", expense.Div(monthsPerYear).StringFixed(2))

	if category, ok := MostFrequentCategory(transactions, models.TransactionTypeExpense); ok {
		add(models.SuggestionMostFrequent, "Most frequent expense category: %s", category)
	}

	if highest, ok := Extremal(transactions, models.TransactionTypeExpense, models.ExtremalMax); ok && highest.Amount.IsPositive() {
		add(models.SuggestionHighestSingle, "Highest single expense: %s with amount %s",
			highest.Category, highest.Amount.StringFixed(2))
	}
	if lowest, ok := Extremal(transactions, models.TransactionTypeExpense, models.ExtremalMin); ok {
		add(models.SuggestionLowestSingle, "Lowest single expense: %s with amount %s",
			lowest.Category, lowest.Amount.StringFixed(2))
	}

	return suggestions
}
