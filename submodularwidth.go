package submodularwidth

import (
	"github.com/stefanmengel/submodular-width/fd"
	"github.com/stefanmengel/submodular-width/fhtw"
	"github.com/stefanmengel/submodular-width/hypergraph"
	"github.com/stefanmengel/submodular-width/lp"
	"github.com/stefanmengel/submodular-width/subw"
)

// NewHypergraph constructs and validates a hypergraph. See
// hypergraph.New for the full set of construction-time invariants.
func NewHypergraph[V comparable](vars []V, edges [][]V, opts ...hypergraph.Option[V]) (*hypergraph.Hypergraph[V], error) {
	return hypergraph.New(vars, edges, opts...)
}

// NewFD validates x and y and returns the normalized functional
// dependency X -> X∪Y. See fd.New.
func NewFD[V comparable](x, y []V) (fd.FD[V], error) {
	return fd.New(x, y)
}

// FractionalEdgeCover returns the minimum weighted fractional edge
// cover of target within h (target defaults to every vertex of h when
// nil). See fhtw.EdgeCover.
func FractionalEdgeCover[V comparable](h *hypergraph.Hypergraph[V], target []V, opts ...fhtw.Option) (float64, error) {
	return fhtw.EdgeCover(h, target, opts...)
}

// FractionalHypertreeWidth returns h's fractional hypertree width. See
// fhtw.Width.
func FractionalHypertreeWidth[V comparable](h *hypergraph.Hypergraph[V], opts ...fhtw.Option) (float64, error) {
	return fhtw.Width(h, opts...)
}

// SubmodularWidth returns h's submodular width under fds. See
// subw.Width.
func SubmodularWidth[V comparable](h *hypergraph.Hypergraph[V], fds []fd.FD[V], opts ...subw.Option) (float64, error) {
	return subw.Width(h, fds, opts...)
}

// EnumerateTDs enumerates the non-redundant tree decompositions of an
// edge set over vars. See hypergraph.EnumerateTDs.
func EnumerateTDs[V comparable](vars []V, edges [][]V) ([][][]V, error) {
	return hypergraph.EnumerateTDs(vars, edges)
}

// Solver re-exports the black-box LP solver contract fhtw/subw are
// programmed against, for callers that want to supply their own
// implementation via fhtw.WithSolver/subw.WithSolver.
type Solver = lp.Solver
