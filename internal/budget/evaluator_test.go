package budget

import (
	"testing"

	"fjacquet/kakeibo/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Evaluate(t *testing.T) {
	evaluator := NewEvaluator(DefaultNearLimitRatio)

	tests := []struct {
		name      string
		expense   int64
		budget    models.Budget
		state     models.BudgetState
		remaining int64
		isOver    bool
	}{
		{name: "no budget", expense: 5000, budget: models.NoBudget(), state: models.BudgetUnset},
		{name: "well under", expense: 10000, budget: models.BudgetFromInt(50000), state: models.BudgetUnder, remaining: 40000},
		{name: "exactly eighty percent", expense: 40000, budget: models.BudgetFromInt(50000), state: models.BudgetUnder, remaining: 10000},
		{name: "just above eighty percent", expense: 40001, budget: models.BudgetFromInt(50000), state: models.BudgetNearLimit, remaining: 9999},
		{name: "exactly at budget", expense: 50000, budget: models.BudgetFromInt(50000), state: models.BudgetNearLimit, remaining: 0},
		{name: "over budget", expense: 55000, budget: models.BudgetFromInt(50000), state: models.BudgetOver, remaining: -5000, isOver: true},
		{name: "zero expense", expense: 0, budget: models.BudgetFromInt(50000), state: models.BudgetUnder, remaining: 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := evaluator.Evaluate(tt.expense, tt.budget)
			assert.Equal(t, tt.state, status.State)
			assert.Equal(t, tt.isOver, status.IsOver)
			if tt.state != models.BudgetUnset {
				assert.True(t, decimal.NewFromInt(tt.remaining).Equal(status.Remaining),
					"remaining: got %s", status.Remaining)
				assert.True(t, status.IsSet())
			} else {
				assert.False(t, status.IsSet())
			}
		})
	}
}

func TestEvaluator_FractionalBudget(t *testing.T) {
	b, err := models.ParseBudget("45000.50")
	require.NoError(t, err)

	status := NewEvaluator(DefaultNearLimitRatio).Evaluate(45000, b)
	assert.Equal(t, models.BudgetNearLimit, status.State)
	assert.Equal(t, "0.5", status.Remaining.String())
}

func TestEvaluator_CustomRatio(t *testing.T) {
	evaluator := NewEvaluator(decimal.NewFromFloat(0.5))
	assert.Equal(t, models.BudgetNearLimit, evaluator.Evaluate(26000, models.BudgetFromInt(50000)).State)
	assert.True(t, evaluator.IsNearLimit(26000, models.BudgetFromInt(50000)))
	assert.False(t, evaluator.IsOver(26000, models.BudgetFromInt(50000)))
	assert.True(t, evaluator.IsOver(50001, models.BudgetFromInt(50000)))
	assert.False(t, evaluator.IsOver(50001, models.NoBudget()))
}

func TestNewEvaluator_InvalidRatio(t *testing.T) {
	for _, ratio := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1), decimal.NewFromFloat(1.5)} {
		assert.True(t, NewEvaluator(ratio).Ratio().Equal(DefaultNearLimitRatio), ratio.String())
	}
	assert.True(t, NewEvaluator(decimal.NewFromInt(1)).Ratio().Equal(decimal.NewFromInt(1)))
}
