package sn

import (
	"fmt"
	"strings"

	"github.com/jmgilman/go/strongname/errors"
)

// Operation is an sn.exe operation the Invoker can run.
type Operation int

const (
	// OperationVerify checks an assembly's strong-name signature.
	OperationVerify Operation = iota + 1

	// OperationResign re-signs an assembly with a key from a CSP container.
	OperationResign
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OperationVerify:
		return "verify"
	case OperationResign:
		return "resign"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// ParseOperation returns the operation with the given name.
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "verify":
		return OperationVerify, nil
	case "resign":
		return OperationResign, nil
	default:
		return 0, errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "unknown operation %q", name),
			"operation", name,
		)
	}
}
