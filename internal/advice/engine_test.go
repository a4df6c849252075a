package advice

import (
	"testing"

	"fjacquet/kakeibo/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func totals(pairs ...interface{}) *models.CategoryTotals {
	t := models.NewCategoryTotals()
	for i := 0; i+1 < len(pairs); i += 2 {
		t.Add(pairs[i].(string), int64(pairs[i+1].(int)))
	}
	return t
}

func kinds(advice []models.Advice) []models.AdviceKind {
	out := make([]models.AdviceKind, 0, len(advice))
	for _, a := range advice {
		out = append(out, a.Kind)
	}
	return out
}

func TestEngine_Generate(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	tests := []struct {
		name     string
		expense  int64
		budget   models.Budget
		totals   *models.CategoryTotals
		expected []models.AdviceKind
	}{
		{
			name:     "no spending yields nothing",
			expense:  0,
			budget:   models.BudgetFromInt(1000),
			totals:   totals(),
			expected: []models.AdviceKind{},
		},
		{
			name:     "no spending and no budget yields nothing",
			expense:  0,
			budget:   models.NoBudget(),
			totals:   nil,
			expected: []models.AdviceKind{},
		},
		{
			name:     "food over threshold without budget",
			expense:  32000,
			budget:   models.NoBudget(),
			totals:   totals(models.CategoryFood, 32000),
			expected: []models.AdviceKind{models.AdviceFood},
		},
		{
			name:     "near limit only",
			expense:  9000,
			budget:   models.BudgetFromInt(10000),
			totals:   totals(models.CategoryOther, 9000),
			expected: []models.AdviceKind{models.AdviceNearLimit},
		},
		{
			name:     "over budget excludes near limit",
			expense:  12000,
			budget:   models.BudgetFromInt(10000),
			totals:   totals(models.CategoryOther, 12000),
			expected: []models.AdviceKind{models.AdviceOverBudget},
		},
		{
			name:    "all rules in declaration order",
			expense: 70000,
			budget:  models.BudgetFromInt(50000),
			totals: totals(
				models.CategoryUtilities, 16000,
				models.CategoryTransport, 16000,
				models.CategoryFood, 38000,
			),
			expected: []models.AdviceKind{
				models.AdviceOverBudget,
				models.AdviceFood,
				models.AdviceTransport,
				models.AdviceUtilities,
			},
		},
		{
			name:     "thresholds are exclusive",
			expense:  60000,
			budget:   models.NoBudget(),
			totals:   totals(models.CategoryFood, 30000, models.CategoryTransport, 15000, models.CategoryUtilities, 15000),
			expected: []models.AdviceKind{models.AdviceOnTrack},
		},
		{
			name:     "fallback when nothing fired",
			expense:  5000,
			budget:   models.BudgetFromInt(50000),
			totals:   totals(models.CategoryFood, 5000),
			expected: []models.AdviceKind{models.AdviceOnTrack},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := engine.Generate(tt.expense, tt.budget, tt.totals)
			assert.Equal(t, tt.expected, kinds(advice))
			for _, a := range advice {
				assert.NotEmpty(t, a.Message)
			}
		})
	}
}

func TestEngine_Messages(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	advice := engine.Generate(32000, models.NoBudget(), totals(models.CategoryFood, 32000))
	assert.Equal(t, []string{"🍱 Food spending is over ¥30,000. Try eating out less often and cooking at home."},
		models.AdviceMessages(advice))

	advice = engine.Generate(9000, models.BudgetFromInt(10000), totals(models.CategoryOther, 9000))
	assert.Contains(t, advice[0].Message, "80%")
	assert.False(t, models.HasAdvice(advice, models.AdviceOverBudget))
}

func TestEngine_Idempotent(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	in := totals(models.CategoryFood, 40000)
	assert.Equal(t,
		engine.Generate(40000, models.BudgetFromInt(45000), in),
		engine.Generate(40000, models.BudgetFromInt(45000), in))
}

func TestNewEngine_CustomThresholds(t *testing.T) {
	engine := NewEngine(Thresholds{
		NearLimitRatio: decimal.NewFromFloat(0.5),
		Food:           10000,
	})

	th := engine.Thresholds()
	assert.Equal(t, int64(10000), th.Food)
	assert.Equal(t, DefaultTransportThreshold, th.Transport)
	assert.Equal(t, DefaultUtilitiesThreshold, th.Utilities)

	advice := engine.Generate(12000, models.BudgetFromInt(20000), totals(models.CategoryFood, 12000))
	assert.Equal(t, []models.AdviceKind{models.AdviceNearLimit, models.AdviceFood}, kinds(advice))
	assert.Contains(t, advice[0].Message, "50%")
	assert.Contains(t, advice[1].Message, "¥10,000")
}

func TestNewEngine_ZeroRatioUsesDefault(t *testing.T) {
	engine := NewEngine(Thresholds{})
	assert.True(t, engine.Thresholds().NearLimitRatio.Equal(decimal.NewFromFloat(0.8)))
}
