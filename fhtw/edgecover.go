package fhtw

import (
	"github.com/stefanmengel/submodular-width/hypergraph"
	"github.com/stefanmengel/submodular-width/lp"
)

// EdgeCover returns the minimum weighted fractional edge cover of
// target within h: one lambda_j >= 0 per edge, minimizing
// sum(weight_j * lambda_j), subject to every target vertex being
// covered at least once by the edges incident to it. If target is
// nil, it defaults to every vertex of h.
func EdgeCover[V comparable](h *hypergraph.Hypergraph[V], target []V, opts ...Option) (float64, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if target == nil {
		target = h.Vars()
	}

	targetIdx := make([]int, 0, len(target))
	for _, v := range target {
		idx, ok := h.VarIndex(v)
		if !ok {
			return 0, configErrorf(ErrUnknownTargetVertex)
		}
		targetIdx = append(targetIdx, idx)
	}

	return edgeCoverMask(h, targetIdx, cfg.solver)
}

// edgeCoverMask is the index-level edge-cover LP used both by EdgeCover
// and internally by Width: one constraint per index in target,
// requiring the edges incident to it to sum to >= 1.
func edgeCoverMask[V comparable](h *hypergraph.Hypergraph[V], target []int, solver lp.Solver) (float64, error) {
	m := h.M()
	weights := h.Weights()
	edges := h.EdgeMasks()

	prog := &lp.Program{
		NumVars:   m,
		Objective: append([]float64(nil), weights...),
		Maximize:  false,
	}
	for _, vi := range target {
		bit := 1 << uint(vi)
		coeffs := make([]float64, m)
		for j, e := range edges {
			if e&bit != 0 {
				coeffs[j] = 1
			}
		}
		prog.Constraints = append(prog.Constraints, lp.Constraint{
			Coeffs: coeffs,
			Op:     lp.GE,
			RHS:    1,
		})
	}

	res, err := solver.Solve(prog)
	if err != nil {
		return 0, err
	}
	if res.Status != lp.StatusOptimal {
		return 0, solverErrorf(lp.ErrNonOptimal)
	}
	return res.Value, nil
}
