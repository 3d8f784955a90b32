// Package errors provides the coded errors used across the strong-name tooling.
//
// Every failure the locator and invoker surface is a PlatformError carrying
// an ErrorCode, a retry classification and optional context metadata. The
// package stays compatible with the standard library (errors.Is, errors.As,
// errors.Unwrap).
//
// # Error Codes
//
//   - CodeInvalidArgument: a required collaborator or parameter was absent
//   - CodeToolNotFound: the tool could not be located on disk or in the registry
//   - CodeToolExecution: a precondition failed before any process was launched
//   - CodeProcessFailed: the launched process failed
//   - CodeInvalidConfig: the configuration file could not be loaded
//   - CodeTimeout, CodeInternal, CodeUnknown
//
// # Usage
//
//	err := errors.New(errors.CodeToolNotFound, "Failed to find sn.exe.")
//	err = errors.WithContext(err, "tool", "sn")
//
//	if errors.HasCode(err, errors.CodeToolNotFound) {
//	    // ...
//	}
//
// ToJSON renders any error as a flat ErrorResponse without the wrapped chain.
package errors
