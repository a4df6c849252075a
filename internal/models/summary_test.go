package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTotals_FirstOccurrenceOrder(t *testing.T) {
	totals := NewCategoryTotals()
	totals.Add(CategoryTransport, 200)
	totals.Add(CategoryFood, 100)
	totals.Add(CategoryTransport, 50)

	assert.Equal(t, []string{CategoryTransport, CategoryFood}, totals.Labels())
	assert.Equal(t, int64(250), totals.Get(CategoryTransport))
	assert.Equal(t, int64(0), totals.Get(CategoryUtilities))
	assert.Equal(t, 2, totals.Len())
}

func TestCategoryTotals_NilSafe(t *testing.T) {
	var totals *CategoryTotals
	assert.Equal(t, int64(0), totals.Get(CategoryFood))
	assert.Equal(t, 0, totals.Len())
	assert.Empty(t, totals.Items())

	var zero CategoryTotals
	zero.Add(CategoryFood, 10)
	assert.Equal(t, int64(10), zero.Get(CategoryFood))
}

func TestCategoryTotals_MarshalJSON(t *testing.T) {
	totals := NewCategoryTotals()
	totals.Add(CategoryOther, 5)
	totals.Add(CategoryFood, 7)

	data, err := json.Marshal(totals)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"category":"Other","amount":5},{"category":"Food","amount":7}]`, string(data))
}

func TestMetaFor(t *testing.T) {
	assert.Equal(t, "tag-food", MetaFor(CategoryFood).Tag)
	assert.Equal(t, "tag-other", MetaFor("").Tag)
	assert.Equal(t, "tag-other", MetaFor("Hobbies").Tag)
}

func TestAdviceHelpers(t *testing.T) {
	advice := []Advice{
		{Kind: AdviceNearLimit, Message: "near"},
		{Kind: AdviceFood, Message: "food"},
	}
	assert.Equal(t, []string{"near", "food"}, AdviceMessages(advice))
	assert.True(t, HasAdvice(advice, AdviceFood))
	assert.False(t, HasAdvice(advice, AdviceOverBudget))
}
