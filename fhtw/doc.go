// Package fhtw computes the fractional hypertree width of a
// hypergraph: the minimum, over its tree decompositions, of the
// maximum fractional edge cover among a TD's bags.
//
// EdgeCover solves the weighted fractional edge-cover LP standalone,
// over an arbitrary target vertex set. Width drives that LP once per
// bag of every TD the hypergraph carries (computing them lazily via
// hypergraph.TDs if none were supplied), and returns the winning
// width; WidthDetailed additionally reports which TD achieved it.
package fhtw
