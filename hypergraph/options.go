package hypergraph

// Option configures an optional construction-time knob of a
// Hypergraph[V]. Without any Option, weights default to 1.0 per edge,
// and TDs default to a lazily-computed call into internal/td.Enumerate.
type Option[V comparable] func(*config[V])

type config[V comparable] struct {
	weights []float64
	tds     [][][]V // one TD per element; one bag (vertex slice) per inner element
}

// WithWeights supplies one nonnegative weight per edge, in edge order,
// overriding the default of 1.0 for every edge.
func WithWeights[V comparable](weights []float64) Option[V] {
	return func(c *config[V]) { c.weights = weights }
}

// WithTDs supplies precomputed tree decompositions, overriding the
// default of lazily enumerating TDs (via internal/td.Enumerate) from
// the hypergraph's edges.
// Each TD is a list of bags; each bag is a vertex slice.
func WithTDs[V comparable](tds [][][]V) Option[V] {
	return func(c *config[V]) { c.tds = tds }
}
