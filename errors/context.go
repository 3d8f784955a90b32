package errors

import "errors"

// WithContext returns a copy of err with one context field added.
// Existing fields are preserved. A non-PlatformError is converted with CodeUnknown.
//
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeToolExecution, "Container is required but not specified.")
//	err = errors.WithContext(err, "tool", "sn")
func WithContext(err error, key string, value interface{}) PlatformError {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap returns a copy of err with the given fields merged in.
// New fields override existing ones with the same key.
//
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	platformErr := asPlatformError(err)
	merged := copyContext(platformErr.Context())
	if merged == nil {
		merged = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        merged,
		cause:          platformErr.Unwrap(),
	}
}

// asPlatformError returns the first PlatformError in err's chain, or wraps
// err as an UNKNOWN PlatformError.
func asPlatformError(err error) PlatformError {
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
