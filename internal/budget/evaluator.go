// Package budget evaluates monthly spending against the budget ceiling
package budget

import (
	"fjacquet/kakeibo/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultNearLimitRatio is the fraction of the budget above which spending is near the limit
var DefaultNearLimitRatio = decimal.NewFromFloat(0.8)

// Evaluator classifies an expense total against a budget
type Evaluator struct {
	ratio decimal.Decimal
}

// NewEvaluator creates an Evaluator with the given near-limit ratio.
// A ratio outside (0, 1] falls back to DefaultNearLimitRatio.
func NewEvaluator(ratio decimal.Decimal) *Evaluator {
	if !ratio.IsPositive() || ratio.GreaterThan(decimal.NewFromInt(1)) {
		ratio = DefaultNearLimitRatio
	}
	return &Evaluator{ratio: ratio}
}

// Ratio returns the near-limit ratio in use
func (e *Evaluator) Ratio() decimal.Decimal {
	return e.ratio
}

// Evaluate compares expense with budget.
//
// Over means expense > budget. NearLimit means ratio*budget < expense <= budget.
// Remaining is budget - expense and may be negative. With no budget the state is Unset.
func (e *Evaluator) Evaluate(expense int64, b models.Budget) models.BudgetStatus {
	if !b.IsSet() {
		return models.BudgetStatus{State: models.BudgetUnset}
	}

	amount := b.Amount()
	spent := decimal.NewFromInt(expense)
	remaining := amount.Sub(spent)

	status := models.BudgetStatus{
		State:     models.BudgetUnder,
		Budget:    amount,
		Remaining: remaining,
		IsOver:    remaining.IsNegative(),
	}

	switch {
	case spent.GreaterThan(amount):
		status.State = models.BudgetOver
	case spent.GreaterThan(amount.Mul(e.ratio)):
		status.State = models.BudgetNearLimit
	}
	return status
}

// IsOver reports whether expense exceeds the budget
func (e *Evaluator) IsOver(expense int64, b models.Budget) bool {
	return b.IsSet() && decimal.NewFromInt(expense).GreaterThan(b.Amount())
}

// IsNearLimit reports whether expense exceeds ratio*budget without being over
func (e *Evaluator) IsNearLimit(expense int64, b models.Budget) bool {
	return e.Evaluate(expense, b).State == models.BudgetNearLimit
}
