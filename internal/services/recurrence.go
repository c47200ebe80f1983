package services

import "finance-tracker/internal/models"

// RecurrenceOccurrences is the number of monthly copies a repeating entry expands to.
const RecurrenceOccurrences = 12

// ExpandRecurrence returns the template alone, or twelve copies dated template.Date
// plus 0..11 months. Each date is computed from the template date, so a day-of-month
// overflow rolls into the next month for that copy only.
func ExpandRecurrence(template models.Transaction, repeat bool) []models.Transaction {
	if !repeat {
		return []models.Transaction{template}
	}

	expanded := make([]models.Transaction, 0, RecurrenceOccurrences)
	for i := 0; i < RecurrenceOccurrences; i++ {
		occurrence := template
		occurrence.Date = template.Date.AddMonths(i)
		expanded = append(expanded, occurrence)
	}

	return expanded
}
