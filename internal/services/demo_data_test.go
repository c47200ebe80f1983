package services

import (
	"testing"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoDataGenerator_Generate(t *testing.T) {
	entries := NewDemoDataGenerator(7).Generate(2024, 30)
	require.Len(t, entries, 32)

	salary, rent := entries[0], entries[1]
	assert.True(t, salary.Repeat)
	assert.Equal(t, models.CategorySalary, salary.Transaction.Category)
	assert.True(t, salary.Transaction.IsIncome())
	assert.True(t, rent.Repeat)
	assert.Equal(t, models.CategoryRent, rent.Transaction.Category)
	assert.True(t, rent.Transaction.IsExpense())

	ranges := models.ExpenseCategoryRanges()
	for _, entry := range entries[2:] {
		txn := entry.Transaction
		assert.False(t, entry.Repeat)
		assert.NoError(t, txn.Validate())
		assert.Equal(t, 2024, txn.Date.Year())

		if txn.IsExpense() {
			r, ok := ranges[txn.Category]
			require.True(t, ok, "unexpected category %s", txn.Category)
			amount, _ := txn.Amount.Float64()
			assert.GreaterOrEqual(t, amount, r.Min)
			assert.LessOrEqual(t, amount, r.Max)
		} else {
			assert.Equal(t, models.CategoryFreelance, txn.Category)
		}
	}
}

func TestDemoDataGenerator_SameSeedSameData(t *testing.T) {
	first := NewDemoDataGenerator(99).Generate(2023, 10)
	second := NewDemoDataGenerator(99).Generate(2023, 10)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Transaction.Category, second[i].Transaction.Category)
		assert.True(t, first[i].Transaction.Amount.Equal(second[i].Transaction.Amount))
		assert.True(t, first[i].Transaction.Date.Equal(second[i].Transaction.Date.Time))
	}
}

func TestDemoDataGenerator_ClampsCount(t *testing.T) {
	g := NewDemoDataGenerator(3)

	assert.Len(t, g.Generate(2024, -4), 2)
	assert.Len(t, g.Generate(2024, MaxDemoEntries+10), MaxDemoEntries+2)
}
