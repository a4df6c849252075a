// Package aggregator computes the monthly totals of a set of entries
package aggregator

import (
	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"
)

// MonthlyAggregator sums income, expense and per-category expense
type MonthlyAggregator struct {
	logger logging.Logger
}

// NewMonthlyAggregator creates a new MonthlyAggregator instance
func NewMonthlyAggregator(logger logging.Logger) *MonthlyAggregator {
	return &MonthlyAggregator{
		logger: logger,
	}
}

// Aggregate sums entries in a single pass.
// Entries that are not income count as expense; those with an empty category count under "Other". Category
// order is the order in which each label first appears in entries.
func (a *MonthlyAggregator) Aggregate(entries []models.Entry) models.MonthlySummary {
	summary := Aggregate(entries)
	a.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
		logging.Field{Key: "income", Value: summary.Income},
		logging.Field{Key: "expense", Value: summary.Expense},
	).Debug("Aggregated entries")
	return summary
}

// Aggregate is the stateless form of MonthlyAggregator.Aggregate
func Aggregate(entries []models.Entry) models.MonthlySummary {
	summary := models.MonthlySummary{Categories: models.NewCategoryTotals()}

	for _, e := range entries {
		if e.IsIncome() {
			summary.Income += e.Amount
			continue
		}
		// anything that is not income counts as expense
		summary.Expense += e.Amount
		summary.Categories.Add(e.CategoryOrOther(), e.Amount)
	}

	summary.Balance = summary.Income - summary.Expense
	return summary
}
