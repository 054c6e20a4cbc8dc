package fhtw

import (
	"github.com/stefanmengel/submodular-width/internal/progress"
	"github.com/stefanmengel/submodular-width/lp"
)

// Option configures an optional knob of Width/WidthDetailed/EdgeCover.
// Without any Option, the defaults are: sequential (concurrency 1)
// using SimplexSolver, no progress reporting.
type Option func(*config)

type config struct {
	solver      lp.Solver
	concurrency int
	onProgress  progress.Func
}

func defaultConfig() config {
	return config{solver: lp.SimplexSolver{}, concurrency: 1}
}

// WithSolver overrides the LP solver used for every edge-cover LP.
func WithSolver(s lp.Solver) Option {
	return func(c *config) { c.solver = s }
}

// WithConcurrency fans the per-TD edge-cover work out across n worker
// goroutines. n <= 1 runs sequentially on the caller's goroutine.
// Concurrency never changes the returned width: results are collected
// in TD order before the deterministic tie-break reduction runs.
func WithConcurrency(n int) Option {
	return func(c *config) { c.concurrency = n }
}

// WithProgress registers a coarse progress callback, invoked once per
// TD as its edge-cover width finishes computing. Never affects the
// returned result.
func WithProgress(f progress.Func) Option {
	return func(c *config) { c.onProgress = f }
}
