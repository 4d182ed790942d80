// Package errs holds the error kinds shared by the pricing pipeline.
//
// Every error produced by the core wraps exactly one of the kinds below, so
// callers can branch with errors.Is regardless of which package raised it.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed numeric or enumerated input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState marks an operation attempted in the wrong lifecycle state.
	ErrInvalidState = errors.New("invalid state")
	// ErrPrecondition marks a failed checkout precondition.
	ErrPrecondition = errors.New("precondition failed")
)

func InvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func InvalidArgumentf(format string, args ...any) error {
	return InvalidArgument(fmt.Sprintf(format, args...))
}

func InvalidState(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, msg)
}

func InvalidStatef(format string, args ...any) error {
	return InvalidState(fmt.Sprintf(format, args...))
}

func Precondition(msg string) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, msg)
}
