// Package td enumerates tree decompositions (TDs) of a hypergraph edge
// set via variable elimination over every permutation of the vertex
// set, then removes redundant TDs via TD-level subsumption.
//
// A TD is represented as a sorted slice of bag bitmasks (see
// internal/subset for the bitmask encoding); bag identity is exact set
// equality, so within one elimination run duplicate bags collapse
// automatically by construction.
//
// Complexity is O(n!) in the vertex count, dominated by the permutation
// sweep; this package makes no attempt to prune permutations early, so
// practical use is limited to roughly twelve vertices or fewer.
package td
