// Package errs defines the three cross-cutting error categories every
// package in this module reports through: ConfigError, SolverError and
// LogicError. Each category is a package-level sentinel; concrete
// errors wrap the sentinel via %w, in most packages alongside a
// package-specific sentinel of their own (see that package's
// errors.go; fd's errors wrap ErrConfig alone), so callers can branch
// on either the broad category or the precise cause with errors.Is.
//
// No error in this module is ever swallowed, and no partial result is
// returned alongside a non-nil error.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks a fatal configuration error: an invalid
	// hypergraph, FD, or FD-vs-hypergraph consistency violation,
	// detected at construction or at SUBW build time. Never caught
	// internally.
	ErrConfig = errors.New("config error")

	// ErrSolver marks a fatal LP solver error: the solver reported a
	// non-optimal status. Surfaced to the caller verbatim; never
	// retried, since the LP is deterministic in its inputs.
	ErrSolver = errors.New("solver error")

	// ErrLogic marks an internal invariant violation (a bug guard).
	// Treated as fatal; it should never occur in correct code.
	ErrLogic = errors.New("internal logic error")
)

// Config wraps ErrConfig with formatted context.
func Config(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, error(ErrConfig))...)
}

// Solver wraps ErrSolver with formatted context.
func Solver(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, error(ErrSolver))...)
}

// Logic wraps ErrLogic with formatted context.
func Logic(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, error(ErrLogic))...)
}
