package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps err with a code and message while preserving it for errors.Is
// and errors.As. The classification of a wrapped PlatformError is kept.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := cmd.Run(); err != nil {
//	    return errors.Wrap(err, errors.CodeProcessFailed, "sn exited with an error")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps err with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
