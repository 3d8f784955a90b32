package errors

import "fmt"

// New creates a PlatformError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeToolNotFound, "Failed to find sn.exe.")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a PlatformError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

// InvalidArgument reports that the named parameter or collaborator was absent.
// The parameter name is both the message and the "parameter" context field,
// so callers can match on either.
func InvalidArgument(parameter string) PlatformError {
	return &platformError{
		code:           CodeInvalidArgument,
		classification: ClassificationPermanent,
		message:        parameter,
		context:        map[string]interface{}{"parameter": parameter},
	}
}
