package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CategoryAmount is one category label with its summed expense
type CategoryAmount struct {
	Category string `json:"category" yaml:"category"`
	Amount   int64  `json:"amount" yaml:"amount"`
}

// CategoryTotals maps category labels to summed expense amounts.
// Iteration order is the order in which each label was first added.
type CategoryTotals struct {
	order []string
	sums  map[string]int64
}

// NewCategoryTotals returns an empty CategoryTotals
func NewCategoryTotals() *CategoryTotals {
	return &CategoryTotals{sums: make(map[string]int64)}
}

// Add accumulates amount under label
func (c *CategoryTotals) Add(label string, amount int64) {
	if c.sums == nil {
		c.sums = make(map[string]int64)
	}
	if _, ok := c.sums[label]; !ok {
		c.order = append(c.order, label)
	}
	c.sums[label] += amount
}

// Get returns the total for label, zero when absent
func (c *CategoryTotals) Get(label string) int64 {
	if c == nil {
		return 0
	}
	return c.sums[label]
}

// Labels returns the labels in first-occurrence order
func (c *CategoryTotals) Labels() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of distinct labels
func (c *CategoryTotals) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Items returns the totals as an ordered slice
func (c *CategoryTotals) Items() []CategoryAmount {
	if c == nil {
		return []CategoryAmount{}
	}
	items := make([]CategoryAmount, 0, len(c.order))
	for _, label := range c.order {
		items = append(items, CategoryAmount{Category: label, Amount: c.sums[label]})
	}
	return items
}

// MarshalJSON encodes the totals as an ordered array of {category, amount}
func (c *CategoryTotals) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

// MarshalYAML encodes the totals as an ordered sequence
func (c *CategoryTotals) MarshalYAML() (interface{}, error) {
	return c.Items(), nil
}

// MonthlySummary is the aggregation result for one month
type MonthlySummary struct {
	Income     int64           `json:"income" yaml:"income"`
	Expense    int64           `json:"expense" yaml:"expense"`
	Balance    int64           `json:"balance" yaml:"balance"`
	Categories *CategoryTotals `json:"categories" yaml:"categories"`
}

// BudgetState classifies spending against the budget
type BudgetState string

const (
	BudgetUnset     BudgetState = "unset"
	BudgetUnder     BudgetState = "under"
	BudgetNearLimit BudgetState = "near_limit"
	BudgetOver      BudgetState = "over"
)

// BudgetStatus is the result of evaluating an expense total against the budget.
// Remaining and IsOver are only meaningful when State is not BudgetUnset.
type BudgetStatus struct {
	State     BudgetState     `json:"state" yaml:"state"`
	Budget    decimal.Decimal `json:"budget" yaml:"budget"`
	Remaining decimal.Decimal `json:"remaining" yaml:"remaining"`
	IsOver    bool            `json:"is_over" yaml:"is_over"`
}

// IsSet returns true when a budget was configured
func (s BudgetStatus) IsSet() bool {
	return s.State != BudgetUnset
}
