// Package subw computes the submodular width of a hypergraph, with
// optional awareness of functional dependencies: the maximum, over
// the hypergraph's bag selectors, of the optimal value of an entropic
// linear program whose objective is the min of the h-values of the
// selector's bags.
//
// The LP has one variable h[U] per vertex subset U (indexed directly
// by U's subset-codec bitmask, 0..2^n-1) plus one auxiliary scalar w,
// and is built fresh per selector: the zero, elemental-monotonicity,
// elemental-submodularity, edge-domination and FD-equality families
// only depend on the hypergraph and FDs, while the min-target family
// depends on the selector's bags. Width iterates every selector
// produced by internal/selector.Enumerate over the hypergraph's TDs,
// solves each LP, and returns the running maximum objective.
package subw
