package sn

import (
	"context"

	"github.com/jmgilman/go/strongname/errors"
)

// Runner runs sn.exe against a single file. *Invoker implements it.
type Runner interface {
	Run(ctx context.Context, op Operation, targetFile string, settings *Settings) error
	CreateKey(ctx context.Context, keyFile string, settings *Settings) error
}

// Resign re-signs each assembly in order and stops at the first failure.
func Resign(ctx context.Context, runner Runner, assemblies []string, settings *Settings) error {
	return each(ctx, runner, OperationResign, assemblies, settings)
}

// Verify verifies each assembly in order and stops at the first failure.
func Verify(ctx context.Context, runner Runner, assemblies []string, settings *Settings) error {
	return each(ctx, runner, OperationVerify, assemblies, settings)
}

// CreateKey writes a new key pair to each file in order and stops at the
// first failure. settings may be nil.
func CreateKey(ctx context.Context, runner Runner, keyFiles []string, settings *Settings) error {
	if runner == nil {
		return errors.InvalidArgument("runner")
	}
	if keyFiles == nil {
		return errors.InvalidArgument("keyFiles")
	}
	for _, f := range keyFiles {
		if err := runner.CreateKey(ctx, f, settings); err != nil {
			return err
		}
	}
	return nil
}

func each(ctx context.Context, runner Runner, op Operation, assemblies []string, settings *Settings) error {
	if runner == nil {
		return errors.InvalidArgument("runner")
	}
	if assemblies == nil {
		return errors.InvalidArgument("assemblies")
	}
	if settings == nil {
		return errors.InvalidArgument("settings")
	}
	for _, a := range assemblies {
		if err := runner.Run(ctx, op, a, settings); err != nil {
			return err
		}
	}
	return nil
}
