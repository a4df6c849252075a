// Package models provides the data structures used throughout the application.
package models

import (
	"strconv"
	"strings"
	"time"

	"fjacquet/kakeibo/internal/entryerror"
)

// EntryType distinguishes income from expense entries
type EntryType string

// IsValid reports whether t is one of the known entry types
func (t EntryType) IsValid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// ParseEntryType converts user input into an EntryType.
// An empty string defaults to expense, which is the form's preselected type.
func ParseEntryType(s string) (EntryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(EntryTypeExpense):
		return EntryTypeExpense, nil
	case string(EntryTypeIncome):
		return EntryTypeIncome, nil
	default:
		return "", &entryerror.InvalidEntryInputError{
			Field:  "type",
			Value:  s,
			Reason: "must be 'income' or 'expense'",
		}
	}
}

// Entry is a single recorded income or expense transaction.
// Entries are immutable once created; the only mutation is deletion by ID.
type Entry struct {
	ID       int64     `json:"id" yaml:"id" csv:"id"`
	Date     string    `json:"date" yaml:"date" csv:"date"`
	Type     EntryType `json:"type" yaml:"type" csv:"type"`
	Amount   int64     `json:"amount" yaml:"amount" csv:"amount"`
	Memo     string    `json:"memo" yaml:"memo" csv:"memo"`
	Category string    `json:"category" yaml:"category" csv:"category"`
}

// IsExpense returns true for expense entries
func (e Entry) IsExpense() bool {
	return e.Type == EntryTypeExpense
}

// IsIncome returns true for income entries
func (e Entry) IsIncome() bool {
	return e.Type == EntryTypeIncome
}

// CategoryOrOther returns the category label, normalized to "Other" when empty.
// The stored category is left untouched.
func (e Entry) CategoryOrOther() string {
	if strings.TrimSpace(e.Category) == "" {
		return CategoryOther
	}
	return e.Category
}

// InMonth reports whether the entry date falls within the YYYY-MM month key
func (e Entry) InMonth(monthKey string) bool {
	return strings.HasPrefix(e.Date, monthKey+"-")
}

// EntryInput is the raw record supplied by the input collaborator
type EntryInput struct {
	Date     string
	Amount   int64
	Memo     string
	Type     EntryType
	Category string
}

// NewEntry validates the input and builds an immutable Entry with the given ID.
// An empty memo is replaced with the type-specific placeholder.
func NewEntry(id int64, in EntryInput) (Entry, error) {
	date := strings.TrimSpace(in.Date)
	if date == "" {
		return Entry{}, &entryerror.InvalidEntryInputError{
			Field:  "date",
			Reason: "date is required",
		}
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Entry{}, &entryerror.InvalidEntryInputError{
			Field:  "date",
			Value:  in.Date,
			Reason: "must be in YYYY-MM-DD format",
			Err:    err,
		}
	}
	if in.Amount <= 0 {
		return Entry{}, &entryerror.InvalidEntryInputError{
			Field:  "amount",
			Value:  strconv.FormatInt(in.Amount, 10),
			Reason: "must be a positive integer",
		}
	}

	entryType := in.Type
	if entryType == "" {
		entryType = EntryTypeExpense
	}
	if !entryType.IsValid() {
		return Entry{}, &entryerror.InvalidEntryInputError{
			Field:  "type",
			Value:  string(in.Type),
			Reason: "must be 'income' or 'expense'",
		}
	}

	memo := in.Memo
	if strings.TrimSpace(memo) == "" {
		memo = DefaultMemoExpense
		if entryType == EntryTypeIncome {
			memo = DefaultMemoIncome
		}
	}

	return Entry{
		ID:       id,
		Date:     date,
		Type:     entryType,
		Amount:   in.Amount,
		Memo:     memo,
		Category: strings.TrimSpace(in.Category),
	}, nil
}
