package models

// Entry types
const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// Default memos applied when an entry is created without one
const (
	DefaultMemoExpense = "Expense"
	DefaultMemoIncome  = "Income"
)

// Categories
const (
	CategoryFood       = "Food"
	CategoryTransport  = "Transport"
	CategoryDailyGoods = "Daily Goods"
	CategoryUtilities  = "Utilities"
	CategoryOther      = "Other"
)

// Storage keys used by the key-value collaborator
const (
	StorageKeyEntries = "kakeibo_entries"
	StorageKeyBudget  = "kakeibo_budget"
)

// MonthKeyLayout is the time layout of a month key (YYYY-MM)
const MonthKeyLayout = "2006-01"

// DateLayout is the time layout of an entry date (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
