package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldCount     = "count"
	FieldWeekStart = "week_start"
	FieldWeekEnd   = "week_end"
)

// Components defines standard component names.
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentExpense = "expense"
	ComponentStore   = "store"
	ComponentBackend = "backend"
)

// Operations defines standard operation names.
const (
	OpAppend   = "append"
	OpList     = "list"
	OpSummary  = "summary"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
