package fhtw

import (
	"errors"

	"github.com/stefanmengel/submodular-width/errs"
)

// ErrUnknownTargetVertex marks a target vertex not present in the
// hypergraph's vertex set.
var ErrUnknownTargetVertex = errors.New("fhtw: target contains a vertex not in the hypergraph")

func configErrorf(cause error) error {
	return errs.Config("fhtw: %w", cause)
}

func solverErrorf(cause error) error {
	return errs.Solver("fhtw: %w", cause)
}
