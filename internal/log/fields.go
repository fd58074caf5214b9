package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldRecordID   = "record_id"
	FieldCount      = "count"
	FieldBackend    = "backend"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
)

// Component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentRecords = "records"
	ComponentHTTP    = "http"
	ComponentCLI     = "cli"
	ComponentBackend = "backend"
)

// Operation names
const (
	OpInit   = "init"
	OpSave   = "save"
	OpList   = "list"
	OpDelete = "delete"
	OpTable  = "table"
)
