package logging

// Standardized field names for structured logging.
const (
	FieldComponent = "component"
	FieldEntryID   = "entry_id"
	FieldMonth     = "month"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldBudget    = "budget"
	FieldStrategy  = "strategy"
	FieldKeyword   = "keyword"
	FieldBackend   = "backend"
	FieldKey       = "key"
	FieldFile      = "file_path"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
	FieldFormat    = "format"
)
