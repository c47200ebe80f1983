package models

// Suggestion kinds, in the order they are generated.
const (
	SuggestionBudgetStatus    = "budget_status"
	SuggestionHighestCategory = "highest_expense_category"
	SuggestionLowestCategory  = "lowest_expense_category"
	SuggestionHighestMonth    = "highest_monthly_expense"
	SuggestionAverageMonthly  = "average_monthly_expense"
	SuggestionMostFrequent    = "most_frequent_category"
	SuggestionHighestSingle   = "highest_single_expense"
	SuggestionLowestSingle    = "lowest_single_expense"
)

// Suggestion is one advisory line derived from the ledger.
type Suggestion struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
