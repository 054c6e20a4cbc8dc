package lp

import (
	"errors"

	"github.com/stefanmengel/submodular-width/errs"
)

// Sentinel causes specific to this package. Callers branch on these
// with errors.Is; each is also wrapped by one of errs.ErrConfig,
// errs.ErrSolver or errs.ErrLogic via the constructors below.
var (
	ErrDimensionMismatch = errors.New("lp: coefficient row length does not match NumVars")
	ErrNoVariables       = errors.New("lp: program has zero variables")
	ErrNonOptimal        = errors.New("lp: solver did not report an optimal status")
	ErrIterationLimit    = errors.New("lp: simplex exceeded its iteration limit")
)

func configErrorf(cause error) error {
	return errs.Config("lp: %w", cause)
}

func solverErrorf(cause error) error {
	return errs.Solver("lp: %w", cause)
}
