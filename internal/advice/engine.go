// Package advice produces rule-based spending advice for a month.
package advice

import (
	"fmt"

	"fjacquet/kakeibo/internal/budget"
	"fjacquet/kakeibo/internal/currencyutils"
	"fjacquet/kakeibo/internal/models"

	"github.com/shopspring/decimal"
)

// Default rule thresholds in whole yen
const (
	DefaultFoodThreshold      int64 = 30000
	DefaultTransportThreshold int64 = 15000
	DefaultUtilitiesThreshold int64 = 15000
)

// Thresholds configures the advice rules
type Thresholds struct {
	NearLimitRatio decimal.Decimal
	Food           int64
	Transport      int64
	Utilities      int64
}

// DefaultThresholds returns the built-in rule thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		NearLimitRatio: budget.DefaultNearLimitRatio,
		Food:           DefaultFoodThreshold,
		Transport:      DefaultTransportThreshold,
		Utilities:      DefaultUtilitiesThreshold,
	}
}

// Engine evaluates the advice rules in declaration order
type Engine struct {
	thresholds Thresholds
	evaluator  *budget.Evaluator
}

// NewEngine creates an Engine. Non-positive category thresholds fall back to the defaults.
func NewEngine(t Thresholds) *Engine {
	def := DefaultThresholds()
	if t.Food <= 0 {
		t.Food = def.Food
	}
	if t.Transport <= 0 {
		t.Transport = def.Transport
	}
	if t.Utilities <= 0 {
		t.Utilities = def.Utilities
	}
	evaluator := budget.NewEvaluator(t.NearLimitRatio)
	t.NearLimitRatio = evaluator.Ratio()

	return &Engine{thresholds: t, evaluator: evaluator}
}

// Thresholds returns the effective thresholds
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Generate returns the advice for a month, in rule order.
//
// At most one of the over-budget and near-limit warnings is produced. The
// category rules fire independently. When no rule fires and something was
// spent, a single encouragement is returned; with no spending the list is empty.
func (e *Engine) Generate(expense int64, b models.Budget, totals *models.CategoryTotals) []models.Advice {
	advice := make([]models.Advice, 0, 4)

	switch e.evaluator.Evaluate(expense, b).State {
	case models.BudgetOver:
		advice = append(advice, models.Advice{
			Kind:    models.AdviceOverBudget,
			Message: "⚠️ You are over budget this month! Time to switch to saving mode.",
		})
	case models.BudgetNearLimit:
		advice = append(advice, models.Advice{
			Kind: models.AdviceNearLimit,
			Message: fmt.Sprintf("👀 You have used over %s of your budget. Watch your spending for the rest of the month!",
				percentLabel(e.thresholds.NearLimitRatio)),
		})
	}

	if totals.Get(models.CategoryFood) > e.thresholds.Food {
		advice = append(advice, models.Advice{
			Kind: models.AdviceFood,
			Message: fmt.Sprintf("🍱 Food spending is over %s. Try eating out less often and cooking at home.",
				currencyutils.FormatYen(e.thresholds.Food)),
		})
	}
	if totals.Get(models.CategoryTransport) > e.thresholds.Transport {
		advice = append(advice, models.Advice{
			Kind:    models.AdviceTransport,
			Message: "🚃 Transport costs are adding up. Consider a commuter pass or getting around by bicycle.",
		})
	}
	if totals.Get(models.CategoryUtilities) > e.thresholds.Utilities {
		advice = append(advice, models.Advice{
			Kind:    models.AdviceUtilities,
			Message: "💡 Utility bills are on the high side. Unplug appliances you are not using and reheat the bath less often.",
		})
	}

	if len(advice) == 0 && expense > 0 {
		advice = append(advice, models.Advice{
			Kind:    models.AdviceOnTrack,
			Message: "✨ You are managing well! Keep it up.",
		})
	}
	return advice
}

func percentLabel(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).Round(0).String() + "%"
}
