package core

import (
	"errors"
	"fmt"
)

// Status is the integer result code of a filter or solver call.
// Zero is success and every failure is negative.
type Status int

const (
	// StatusOK reports success.
	StatusOK Status = 0
	// StatusInternal reports a generic failure inside a routine.
	StatusInternal Status = -1
	// StatusUnstable reports a pole on or outside the unit circle.
	StatusUnstable Status = -2
	// StatusNoConvergence reports an initial-condition series that did not
	// reach the requested precision within its term budget.
	StatusNoConvergence Status = -3
)

// Errors shared by the filter and spline packages.
var (
	ErrInternal       = errors.New("core: problem occurred inside routine")
	ErrUnstable       = errors.New("core: pole magnitude must be less than one")
	ErrNoConvergence  = errors.New("core: precision too high, error did not converge")
	ErrNotImplemented = errors.New("core: not implemented")
)

// StatusOf maps an error returned by this module to its status code.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNoConvergence):
		return StatusNoConvergence
	case errors.Is(err, ErrUnstable):
		return StatusUnstable
	default:
		return StatusInternal
	}
}

// Err returns the sentinel error for s, or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusUnstable:
		return ErrUnstable
	case StatusNoConvergence:
		return ErrNoConvergence
	default:
		return ErrInternal
	}
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInternal:
		return "internal"
	case StatusUnstable:
		return "unstable"
	case StatusNoConvergence:
		return "no-convergence"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
