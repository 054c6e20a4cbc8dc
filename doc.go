// Package submodularwidth computes two width measures on a query
// hypergraph — the fractional hypertree width (FHTW) and the
// submodular width (SUBW) — with optional awareness of functional
// dependencies (FDs). Both measures bound the worst-case complexity of
// evaluating a conjunctive query whose join structure is described by
// the hypergraph.
//
// Under the hood, everything is organized under these subpackages:
//
//	hypergraph/       — the Hypergraph[V] model: vertices, hyperedges,
//	                     weights, and lazily-computed tree decompositions.
//	fd/                — functional-dependency records.
//	lp/                — the black-box LP Solver interface plus a
//	                     shipped single-phase Big-M simplex implementation.
//	fhtw/              — the fractional hypertree width driver.
//	subw/              — the submodular width driver.
//	internal/subset/   — the vertex-subset ↔ bitmask codec.
//	internal/td/       — tree-decomposition enumeration and subsumption.
//	internal/selector/ — selector enumeration and dual subsumption.
//	internal/progress/ — optional coarse-progress reporting.
//
// This root package is a thin façade over those subpackages: construct
// a hypergraph, optionally attach FDs, then ask for its fractional
// hypertree width or its submodular width.
//
// Quick example:
//
//	h, _ := hypergraph.New([]string{"1", "2", "3", "4"}, [][]string{
//		{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "1"},
//	})
//	w, _ := fhtw.Width(h)   // 2.0 for the 4-cycle
//	s, _ := subw.Width(h, nil) // 1.5 for the 4-cycle
//
// The package computes exact answers only for small hypergraphs: TD
// enumeration runs variable elimination over every permutation of the
// vertex set (factorial time), so practical use is limited to roughly
// twelve vertices or fewer.
package submodularwidth
