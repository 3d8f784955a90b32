package errors

// ErrorCode identifies the kind of failure.
// Codes are strings so they read well in logs and serialize naturally to JSON.
type ErrorCode string

const (
	// Validation errors.

	// CodeInvalidArgument indicates a required collaborator or parameter was absent.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeInvalidConfig indicates the configuration could not be loaded or validated.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Tool errors.

	// CodeToolNotFound indicates the tool executable could not be located.
	CodeToolNotFound ErrorCode = "TOOL_NOT_FOUND"

	// CodeToolExecution indicates a precondition of a tool invocation failed
	// before any process was launched.
	CodeToolExecution ErrorCode = "TOOL_EXECUTION_FAILED"

	// CodeProcessFailed indicates the launched process failed or exited non-zero.
	CodeProcessFailed ErrorCode = "PROCESS_FAILED"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
