// Package fd models a functional dependency X -> Y over a hypergraph's
// vertex set: a small immutable record, validated and normalized once
// at construction.
//
// The stored Y is normalized to the union of X and the caller-supplied
// Y; the caller-supplied X and Y must be disjoint. Whether a FD is
// legal for a particular hypergraph (its normalized Y must fit inside
// some hyperedge) is checked later, at SUBW build time, by the subw
// package — an FD is meaningful independent of any one hypergraph.
package fd
