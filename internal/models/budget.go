package models

import (
	"strings"

	"fjacquet/kakeibo/internal/entryerror"

	"github.com/shopspring/decimal"
)

// Budget is the single monthly spending ceiling of the store.
// It is either unset or a positive amount; the zero value is unset.
type Budget struct {
	amount decimal.Decimal
	set    bool
}

// NoBudget returns an unset budget
func NoBudget() Budget {
	return Budget{}
}

// NewBudget creates a budget from a decimal amount.
// Zero yields an unset budget, negative amounts are rejected.
func NewBudget(amount decimal.Decimal) (Budget, error) {
	if amount.IsNegative() {
		return Budget{}, &entryerror.InvalidBudgetError{
			Value:  amount.String(),
			Reason: "must not be negative",
		}
	}
	if amount.IsZero() {
		return NoBudget(), nil
	}
	return Budget{amount: amount, set: true}, nil
}

// BudgetFromInt is a convenience constructor for whole-unit budgets
func BudgetFromInt(amount int64) Budget {
	b, err := NewBudget(decimal.NewFromInt(amount))
	if err != nil {
		return NoBudget()
	}
	return b
}

// ParseBudget parses the raw budget value as typed by the user or persisted
// by the storage collaborator. Empty and "0" are unset.
func ParseBudget(raw string) (Budget, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NoBudget(), nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Budget{}, &entryerror.InvalidBudgetError{
			Value:  raw,
			Reason: "not a number",
			Err:    err,
		}
	}
	return NewBudget(amount)
}

// IsSet returns true when a positive budget is configured
func (b Budget) IsSet() bool {
	return b.set
}

// Amount returns the configured amount, zero when unset
func (b Budget) Amount() decimal.Decimal {
	if !b.set {
		return decimal.Zero
	}
	return b.amount
}

// String returns the persisted form: the raw number, or "" when unset
func (b Budget) String() string {
	if !b.set {
		return ""
	}
	return b.amount.String()
}

// Equal compares two budgets by value
func (b Budget) Equal(other Budget) bool {
	if b.set != other.set {
		return false
	}
	return !b.set || b.amount.Equal(other.amount)
}

// MarshalText implements encoding.TextMarshaler using the persisted form
func (b Budget) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *Budget) UnmarshalText(text []byte) error {
	parsed, err := ParseBudget(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
