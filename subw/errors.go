package subw

import (
	"errors"

	"github.com/stefanmengel/submodular-width/errs"
)

// ErrIllegalFD marks a functional dependency whose normalized Y is not
// contained in any hyperedge of the hypergraph it's being applied to.
var ErrIllegalFD = errors.New("subw: functional dependency's Y is not contained in any hyperedge")

// ErrUnknownFDVertex marks a functional dependency referencing a
// vertex not present in the hypergraph.
var ErrUnknownFDVertex = errors.New("subw: functional dependency references a vertex not in the hypergraph")

func configErrorf(cause error) error {
	return errs.Config("subw: %w", cause)
}

func solverErrorf(cause error) error {
	return errs.Solver("subw: %w", cause)
}
