// Package hypergraph models the query hypergraph this module computes
// width measures over: an ordered vertex set, a set of hyperedges over
// that vertex set, one nonnegative weight per edge, and the tree
// decompositions the hypergraph's edge set admits.
//
// A Hypergraph is constructed once and never mutated afterward: vars,
// edges and weights are validated up front (duplicate/empty/coverage
// checks all fail construction with a ConfigError), and the vertex
// index plus the vertex->edge incidence map are derived once and
// frozen. Tree decompositions are computed lazily on first access
// (via internal/td's variable-elimination enumerator) unless the
// caller supplies its own with WithTDs.
package hypergraph
