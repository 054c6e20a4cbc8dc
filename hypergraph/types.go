package hypergraph

import (
	"sync"

	"github.com/stefanmengel/submodular-width/internal/subset"
	"github.com/stefanmengel/submodular-width/internal/td"
)

// Hypergraph is the query hypergraph this module computes width
// measures over. It is immutable once constructed; see the package doc
// comment for the construction-time invariants it enforces.
type Hypergraph[V comparable] struct {
	vars    []V
	codec   *subset.Codec[V]
	edges   []int // edge masks, in input order
	weights []float64

	varEdges [][]int // vertex index -> indices into edges containing it

	tdsMu       sync.Mutex
	tdsComputed bool
	tds         []td.TD
}

// N returns the number of vertices.
func (h *Hypergraph[V]) N() int { return len(h.vars) }

// M returns the number of hyperedges.
func (h *Hypergraph[V]) M() int { return len(h.edges) }

// Vars returns the hypergraph's vertices, in construction order. The
// returned slice must not be mutated.
func (h *Hypergraph[V]) Vars() []V { return h.vars }

// EdgeMasks returns the hyperedges as subset-codec bitmasks, in
// construction order. The returned slice must not be mutated.
func (h *Hypergraph[V]) EdgeMasks() []int { return h.edges }

// Edges decodes the hyperedges back into vertex slices, in
// construction order.
func (h *Hypergraph[V]) Edges() [][]V {
	out := make([][]V, len(h.edges))
	for i, e := range h.edges {
		out[i] = h.codec.Decode(e)
	}
	return out
}

// Weights returns the per-edge weights, in construction order. The
// returned slice must not be mutated.
func (h *Hypergraph[V]) Weights() []float64 { return h.weights }

// Codec returns the hypergraph's vertex<->bitmask codec.
func (h *Hypergraph[V]) Codec() *subset.Codec[V] { return h.codec }

// VarIndex returns the dense index assigned to v, or false if v is not
// one of the hypergraph's vertices.
func (h *Hypergraph[V]) VarIndex(v V) (int, bool) { return h.codec.Index(v) }

// VarEdges returns the indices, into Edges()/EdgeMasks(), of the
// hyperedges containing the vertex at the given dense index.
func (h *Hypergraph[V]) VarEdges(varIndex int) []int { return h.varEdges[varIndex] }

// EncodeMask encodes a vertex slice into a subset-codec bitmask using
// this hypergraph's codec.
func (h *Hypergraph[V]) EncodeMask(vs []V) int { return h.codec.Encode(vs) }
