package models

// Categories offered when seeding a demo ledger. Stored categories are free text.
const (
	CategorySalary        = "Salary"
	CategoryFreelance     = "Freelance"
	CategoryRent          = "Rent"
	CategoryGroceries     = "Groceries"
	CategoryDining        = "Dining"
	CategoryTransport     = "Transport"
	CategoryUtilities     = "Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryHealthcare    = "Healthcare"
	CategoryShopping      = "Shopping"
)

// AmountRange bounds generated amounts for a category
type AmountRange struct {
	Min float64
	Max float64
}

// ExpenseCategoryRanges lists the one-off expense categories and their usual amounts
func ExpenseCategoryRanges() map[string]AmountRange {
	return map[string]AmountRange{
		CategoryGroceries:     {Min: 15, Max: 250},
		CategoryDining:        {Min: 8, Max: 120},
		CategoryTransport:     {Min: 10, Max: 80},
		CategoryUtilities:     {Min: 50, Max: 250},
		CategoryEntertainment: {Min: 10, Max: 60},
		CategoryHealthcare:    {Min: 20, Max: 300},
		CategoryShopping:      {Min: 25, Max: 450},
	}
}
