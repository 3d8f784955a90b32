package errors

// ErrorClassification indicates whether an error is worth retrying.
type ErrorClassification string

const (
	// ClassificationRetryable marks failures that may succeed on a later attempt.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// Only timeouts are retryable: a missing tool or an invalid argument stays
// missing or invalid until the caller changes something.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeTimeout: ClassificationRetryable,

	CodeInvalidArgument: ClassificationPermanent,
	CodeInvalidConfig:   ClassificationPermanent,
	CodeToolNotFound:    ClassificationPermanent,
	CodeToolExecution:   ClassificationPermanent,
	CodeProcessFailed:   ClassificationPermanent,
	CodeInternal:        ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unknown codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
