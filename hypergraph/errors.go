package hypergraph

import "errors"

// Sentinel causes specific to this package. Each is also wrapped by
// errs.ErrConfig via the configErrorf helper in build.go, so callers
// can check either the precise cause or the broad category.
var (
	ErrEmptyVars          = errors.New("hypergraph: vars must be non-empty")
	ErrDuplicateVertex     = errors.New("hypergraph: vars contains a duplicate vertex")
	ErrEmptyEdges         = errors.New("hypergraph: edges must be non-empty")
	ErrEmptyEdge          = errors.New("hypergraph: a hyperedge must be non-empty")
	ErrEdgeNotSubset      = errors.New("hypergraph: a hyperedge contains a vertex not in vars")
	ErrEdgesDontCoverVars = errors.New("hypergraph: union of edges does not equal vars")
	ErrWeightCountMismatch = errors.New("hypergraph: len(weights) must equal len(edges)")
	ErrNegativeWeight     = errors.New("hypergraph: edge weights must be nonnegative")
)
