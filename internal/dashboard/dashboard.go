// Package dashboard derives everything shown for a month from the application state.
package dashboard

import (
	"fjacquet/kakeibo/internal/advice"
	"fjacquet/kakeibo/internal/aggregator"
	"fjacquet/kakeibo/internal/budget"
	"fjacquet/kakeibo/internal/ledger"
	"fjacquet/kakeibo/internal/models"
)

// State is the explicit application state: all entries, the budget and the selected month.
type State struct {
	Ledger *ledger.Ledger
	Budget models.Budget
	Month  string
}

// View is the derived, read-only result of a recompute
type View struct {
	Month   string                `json:"month" yaml:"month"`
	Entries []models.Entry        `json:"entries" yaml:"entries"`
	Summary models.MonthlySummary `json:"summary" yaml:"summary"`
	Budget  models.BudgetStatus   `json:"budget" yaml:"budget"`
	Advice  []models.Advice       `json:"advice" yaml:"advice"`
}

// Dashboard recomputes the View of a State
type Dashboard struct {
	aggregator *aggregator.MonthlyAggregator
	evaluator  *budget.Evaluator
	advisor    *advice.Engine
}

// New creates a Dashboard from its collaborators
func New(agg *aggregator.MonthlyAggregator, evaluator *budget.Evaluator, advisor *advice.Engine) *Dashboard {
	return &Dashboard{
		aggregator: agg,
		evaluator:  evaluator,
		advisor:    advisor,
	}
}

// Compute filters the ledger by month, aggregates, evaluates the budget and
// generates advice. It never mutates the state and may be called after every change.
func (d *Dashboard) Compute(s State) View {
	var entries []models.Entry
	if s.Ledger != nil {
		entries = s.Ledger.FilterByMonth(s.Month)
	} else {
		entries = []models.Entry{}
	}

	summary := d.aggregator.Aggregate(entries)

	return View{
		Month:   s.Month,
		Entries: entries,
		Summary: summary,
		Budget:  d.evaluator.Evaluate(summary.Expense, s.Budget),
		Advice:  d.advisor.Generate(summary.Expense, s.Budget, summary.Categories),
	}
}
