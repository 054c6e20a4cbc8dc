package subw

import (
	"sync"

	"github.com/stefanmengel/submodular-width/fd"
	"github.com/stefanmengel/submodular-width/hypergraph"
	"github.com/stefanmengel/submodular-width/internal/progress"
	"github.com/stefanmengel/submodular-width/internal/selector"
	"github.com/stefanmengel/submodular-width/lp"
)

// Result carries the submodular width together with the selector that
// achieved it.
type Result[V comparable] struct {
	Width           float64
	WinningSelector [][]V
}

// Width returns the submodular width of h under fds: the maximum,
// over h's bag selectors, of the optimal objective of the entropic LP
// described in the package doc comment. An empty selector list (e.g.
// h has no TDs) yields 0.
func Width[V comparable](h *hypergraph.Hypergraph[V], fds []fd.FD[V], opts ...Option) (float64, error) {
	res, err := WidthDetailed(h, fds, opts...)
	if err != nil {
		return 0, err
	}
	return res.Width, nil
}

// WidthDetailed is Width, additionally reporting the winning selector.
func WidthDetailed[V comparable](h *hypergraph.Hypergraph[V], fds []fd.FD[V], opts ...Option) (Result[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fdMasks := make([][2]int, len(fds))
	for i, f := range fds {
		xMask, err := encodeStrict(h, f.X)
		if err != nil {
			return Result[V]{}, err
		}
		yMask, err := encodeStrict(h, f.Y)
		if err != nil {
			return Result[V]{}, err
		}
		fdMasks[i] = [2]int{xMask, yMask}
	}

	base, err := newBaseModel(h.N(), h.EdgeMasks(), h.Weights(), fdMasks)
	if err != nil {
		return Result[V]{}, err
	}

	selectors := selector.Enumerate(h.TDs())

	values := make([]float64, len(selectors))
	errsOut := make([]error, len(selectors))

	compute := func(i int) {
		prog := base.program(selectors[i])
		res, err := cfg.solver.Solve(prog)
		if err != nil {
			errsOut[i] = err
			return
		}
		if res.Status != lp.StatusOptimal {
			errsOut[i] = solverErrorf(lp.ErrNonOptimal)
			return
		}
		values[i] = res.Value
		progress.Report(cfg.onProgress, "subw", i+1, len(selectors))
	}

	if cfg.concurrency > 1 {
		runConcurrently(len(selectors), cfg.concurrency, compute)
	} else {
		for i := range selectors {
			compute(i)
		}
	}

	for _, err := range errsOut {
		if err != nil {
			return Result[V]{}, err
		}
	}

	best := 0.0
	var bestSelector selector.Selector
	haveBest := false
	for i, s := range selectors {
		if !haveBest || values[i] > best {
			best, bestSelector, haveBest = values[i], s, true
		}
	}

	bags := make([][]V, len(bestSelector))
	for i, b := range bestSelector {
		bags[i] = h.Codec().Decode(b)
	}

	return Result[V]{Width: best, WinningSelector: bags}, nil
}

// runConcurrently runs compute(0..n-1) across a pool of at most
// workers goroutines, blocking until every call returns.
func runConcurrently(n, workers int, compute func(int)) {
	if n == 0 {
		return
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				compute(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

func encodeStrict[V comparable](h *hypergraph.Hypergraph[V], vs []V) (int, error) {
	mask := 0
	for _, v := range vs {
		idx, ok := h.VarIndex(v)
		if !ok {
			return 0, configErrorf(ErrUnknownFDVertex)
		}
		mask |= 1 << uint(idx)
	}
	return mask, nil
}
