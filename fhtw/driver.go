package fhtw

import (
	"math"
	"sync"

	"github.com/stefanmengel/submodular-width/hypergraph"
	"github.com/stefanmengel/submodular-width/internal/progress"
	"github.com/stefanmengel/submodular-width/internal/subset"
	"github.com/stefanmengel/submodular-width/internal/td"
	"github.com/stefanmengel/submodular-width/lp"
)

// tolerance is the fixed equality tolerance for comparing candidate
// widths; below it, candidates are treated as tied and the tie-break
// (fewer bags) decides.
const tolerance = 1e-6

// Width returns the fractional hypertree width of h: the minimum,
// over h's tree decompositions, of the maximum weighted fractional
// edge cover among a TD's bags. Ties within tolerance are broken in
// favor of the TD with fewer bags.
func Width[V comparable](h *hypergraph.Hypergraph[V], opts ...Option) (float64, error) {
	res, err := WidthDetailed(h, opts...)
	if err != nil {
		return 0, err
	}
	return res.Width, nil
}

// WidthDetailed is Width, additionally reporting which TD (and which
// of its bags) realized the width.
func WidthDetailed[V comparable](h *hypergraph.Hypergraph[V], opts ...Option) (Result[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	tds := h.TDs()
	widths := make([]float64, len(tds))
	worstBags := make([]int, len(tds))
	errs := make([]error, len(tds))

	compute := func(i int) {
		w, worstBag, err := tdWidth(h, tds[i], cfg.solver)
		widths[i], worstBags[i], errs[i] = w, worstBag, err
		progress.Report(cfg.onProgress, "fhtw", i+1, len(tds))
	}

	if cfg.concurrency > 1 {
		runConcurrently(len(tds), cfg.concurrency, compute)
	} else {
		for i := range tds {
			compute(i)
		}
	}

	for _, err := range errs {
		if err != nil {
			return Result[V]{}, err
		}
	}

	best := math.Inf(1)
	var bestTD td.TD
	bestWorstBag := 0
	haveBest := false

	for i, t := range tds {
		w, worstBag := widths[i], worstBags[i]
		switch {
		case !haveBest:
			best, bestTD, bestWorstBag, haveBest = w, t, worstBag, true
		case w < best-tolerance:
			best, bestTD, bestWorstBag = w, t, worstBag
		case w < best+tolerance && len(t) < len(bestTD):
			best, bestTD, bestWorstBag = w, t, worstBag
		}
	}

	if !haveBest {
		// No TDs at all: enumeration always yields at least one TD
		// because construction guarantees edges cover vars, so this is
		// reached only when an empty TD list was supplied via
		// hypergraph.WithTDs. The width is then reported as 0.
		best, bestWorstBag = 0, 0
	}

	return buildResult[V](h.Codec().Decode, best, bestTD, bestWorstBag), nil
}

// runConcurrently runs compute(0..n-1) across a pool of at most
// workers goroutines, blocking until every call returns. Order of
// completion does not affect the caller: each call writes to its own
// index of its result slices.
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

// tdWidth computes max, over t's bags, of the edge-cover LP of that
// bag's vertex set, returning which bag achieved the max.
func tdWidth[V comparable](h *hypergraph.Hypergraph[V], t td.TD, solver lp.Solver) (float64, int, error) {
	if len(t) == 0 {
		return 0, 0, nil
	}

	maxW := math.Inf(-1)
	worstBag := 0
	for _, bag := range t {
		w, err := edgeCoverMask[V](h, subset.Elements(bag), solver)
		if err != nil {
			return 0, 0, err
		}
		if w > maxW {
			maxW, worstBag = w, bag
		}
	}
	return maxW, worstBag, nil
}
