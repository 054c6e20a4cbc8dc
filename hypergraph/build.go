package hypergraph

import (
	"sort"

	"github.com/stefanmengel/submodular-width/errs"
	"github.com/stefanmengel/submodular-width/internal/subset"
	"github.com/stefanmengel/submodular-width/internal/td"
)

// New validates and constructs a Hypergraph over vars and edges. vars
// must be distinct; every edge must be nonempty and a subset of vars;
// the union of edges must equal the set of vars; weights (if supplied
// via WithWeights) must have one nonnegative entry per edge and
// default to 1.0 otherwise. Any violation aborts construction with a
// ConfigError.
func New[V comparable](vars []V, edges [][]V, opts ...Option[V]) (*Hypergraph[V], error) {
	if len(vars) == 0 {
		return nil, configErrorf(ErrEmptyVars)
	}
	if err := checkDistinct(vars); err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, configErrorf(ErrEmptyEdges)
	}

	codec := subset.NewCodec(vars)

	edgeMasks := make([]int, len(edges))
	coverage := 0
	for i, e := range edges {
		if len(e) == 0 {
			return nil, configErrorf(ErrEmptyEdge)
		}
		mask := 0
		for _, v := range e {
			idx, ok := codec.Index(v)
			if !ok {
				return nil, configErrorf(ErrEdgeNotSubset)
			}
			mask |= 1 << uint(idx)
		}
		edgeMasks[i] = mask
		coverage |= mask
	}
	if coverage != subset.Full(len(vars)) {
		return nil, configErrorf(ErrEdgesDontCoverVars)
	}

	var c config[V]
	for _, opt := range opts {
		opt(&c)
	}

	weights, err := resolveWeights(c.weights, len(edges))
	if err != nil {
		return nil, err
	}

	varEdges := make([][]int, len(vars))
	for i, mask := range edgeMasks {
		for _, vi := range subset.Elements(mask) {
			varEdges[vi] = append(varEdges[vi], i)
		}
	}

	h := &Hypergraph[V]{
		vars:     append([]V(nil), vars...),
		codec:    codec,
		edges:    edgeMasks,
		weights:  weights,
		varEdges: varEdges,
	}

	if c.tds != nil {
		h.tds = decodeTDs(codec, c.tds)
		h.tdsComputed = true
	}

	return h, nil
}

func checkDistinct[V comparable](vars []V) error {
	seen := make(map[V]struct{}, len(vars))
	for _, v := range vars {
		if _, dup := seen[v]; dup {
			return configErrorf(ErrDuplicateVertex)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func resolveWeights(weights []float64, m int) ([]float64, error) {
	if weights == nil {
		out := make([]float64, m)
		for i := range out {
			out[i] = 1.0
		}
		return out, nil
	}
	if len(weights) != m {
		return nil, configErrorf(ErrWeightCountMismatch)
	}
	for _, w := range weights {
		if w < 0 {
			return nil, configErrorf(ErrNegativeWeight)
		}
	}
	return append([]float64(nil), weights...), nil
}

func decodeTDs[V comparable](codec *subset.Codec[V], tds [][][]V) []td.TD {
	out := make([]td.TD, len(tds))
	for i, bags := range tds {
		masks := make([]int, 0, len(bags))
		for _, bag := range bags {
			masks = append(masks, codec.Encode(bag))
		}
		// Canonicalize to td.TD's sorted, duplicate-free form.
		sort.Ints(masks)
		canon := masks[:0]
		for j, m := range masks {
			if j == 0 || m != masks[j-1] {
				canon = append(canon, m)
			}
		}
		out[i] = td.TD(canon)
	}
	return out
}

func configErrorf(cause error) error {
	return errs.Config("hypergraph: %w", cause)
}
