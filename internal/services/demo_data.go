package services

import (
	"sort"
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	MaxDemoEntries     = 100
	DefaultDemoEntries = 40

	freelanceChance = 25
)

// DemoEntry is one submission the demo seeder replays against the ledger
type DemoEntry struct {
	Transaction models.Transaction
	Repeat      bool
}

type demoDataGenerator struct {
	faker      *gofakeit.Faker
	categories []string
	ranges     map[string]models.AmountRange
}

// NewDemoDataGenerator creates a generator. A zero seed draws a random one.
func NewDemoDataGenerator(seed uint64) DemoDataGeneratorInterface {
	ranges := models.ExpenseCategoryRanges()
	categories := make([]string, 0, len(ranges))
	for category := range ranges {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return &demoDataGenerator{
		faker:      gofakeit.New(seed),
		categories: categories,
		ranges:     ranges,
	}
}

// Generate returns a repeating salary and rent from January of year, followed
// by count one-off entries dated within that year.
func (g *demoDataGenerator) Generate(year, count int) []DemoEntry {
	if count < 0 {
		count = 0
	}
	if count > MaxDemoEntries {
		count = MaxDemoEntries
	}

	first := models.NewDate(year, time.January, 1)
	salary := g.amount(2000, 6000)

	entries := []DemoEntry{
		{
			Transaction: models.Transaction{
				Type:     models.TransactionTypeIncome,
				Category: models.CategorySalary,
				Amount:   salary,
				Date:     first,
			},
			Repeat: true,
		},
		{
			Transaction: models.Transaction{
				Type:     models.TransactionTypeExpense,
				Category: models.CategoryRent,
				Amount:   salary.Mul(decimal.NewFromFloat(0.3)).Round(2),
				Date:     first,
			},
			Repeat: true,
		},
	}

	last := models.NewDate(year, time.December, 31)
	for i := 0; i < count; i++ {
		date := g.faker.DateRange(first.Time, last.Time).UTC()
		entries = append(entries, DemoEntry{Transaction: g.oneOff(models.NewDate(date.Year(), date.Month(), date.Day()))})
	}

	return entries
}

func (g *demoDataGenerator) oneOff(date models.Date) models.Transaction {
	if g.faker.IntRange(1, 100) <= freelanceChance {
		return models.Transaction{
			Type:     models.TransactionTypeIncome,
			Category: models.CategoryFreelance,
			Amount:   g.amount(100, 1500),
			Date:     date,
		}
	}

	category := g.faker.RandomString(g.categories)
	r := g.ranges[category]
	return models.Transaction{
		Type:     models.TransactionTypeExpense,
		Category: category,
		Amount:   g.amount(r.Min, r.Max),
		Date:     date,
	}
}

func (g *demoDataGenerator) amount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(min, max)).Round(2)
}
