package hypergraph

import (
	"github.com/stefanmengel/submodular-width/internal/td"
)

// TDs returns the hypergraph's non-redundant tree decompositions,
// computing them on first call (or using the decompositions supplied
// via WithTDs) and caching the result for subsequent calls.
func (h *Hypergraph[V]) TDs() []td.TD {
	h.tdsMu.Lock()
	defer h.tdsMu.Unlock()

	if !h.tdsComputed {
		h.tds = td.Enumerate(h.N(), h.edges)
		h.tdsComputed = true
	}
	return h.tds
}

// Bags decodes a tree decomposition's bags back into vertex slices.
func (h *Hypergraph[V]) Bags(t td.TD) [][]V {
	out := make([][]V, len(t))
	for i, bag := range t {
		out[i] = h.codec.Decode(bag)
	}
	return out
}

// EnumerateTDs enumerates the non-redundant tree decompositions of an
// arbitrary edge set over vars, independently of any Hypergraph value.
// Most callers should prefer (*Hypergraph[V]).TDs, which caches its
// result; this is exposed for callers that only need the enumerator
// itself, e.g. to inspect candidate TDs before committing to weights.
func EnumerateTDs[V comparable](vars []V, edges [][]V) ([][][]V, error) {
	h, err := New(vars, edges)
	if err != nil {
		return nil, err
	}
	tds := h.TDs()
	out := make([][][]V, len(tds))
	for i, t := range tds {
		out[i] = h.Bags(t)
	}
	return out, nil
}
