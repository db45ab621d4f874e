// Package sweep fans independent Volterra solves out over a worker pool.
// Each solve is single threaded; the sweep only parallelizes across runs,
// so kernels never see concurrent calls from the same solve.
package sweep

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
	"github.com/BRUTALLOLOL/kernel-experience-tools/volterra"
)

// Run describes one solve in a sweep.
type Run struct {
	Name   string
	Kernel kexp.Kernel
	TMax   float64
	N      int
	X0     float64
	Rule   volterra.Rule
}

// Result is the outcome of one Run.  A failed solve carries its error here
// instead of failing the sweep.
type Result struct {
	Run
	T       []float64
	X       []float64
	Err     error
	Elapsed time.Duration
}

type config struct {
	workers int
	log     *zap.Logger
	solve   []volterra.Option
}

type Option func(*config)

// Workers caps the number of concurrent solves.  The default is the number
// of CPUs.
func Workers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// Logger sets the sweep's logger.  The default discards everything.
func Logger(l *zap.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// Solver appends solver options passed to every solve in the sweep, e.g.
// volterra.DB to record all runs.  They are applied after the per run
// settings, so they win on conflict.
func Solver(opts ...volterra.Option) Option {
	return func(c *config) {
		c.solve = append(c.solve, opts...)
	}
}

// Do solves every run and returns one Result per run, in input order.  A
// run that fails only marks its own Result; the sweep keeps going.  Do
// itself returns an error only when ctx is canceled, in which case runs
// not yet started carry the cancellation error in their Result.
func Do(ctx context.Context, runs []Run, opts ...Option) ([]Result, error) {
	c := &config{workers: runtime.NumCPU(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers < 1 {
		c.workers = 1
	}

	results := make([]Result, len(runs))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers)

	for i, r := range runs {
		i, r := i, r
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Run: r, Err: err}
				return nil
			}

			name := r.Name
			if name == "" {
				name = kexp.Name(r.Kernel)
			}

			sopts := []volterra.Option{volterra.X0(r.X0), volterra.Method(r.Rule)}
			sopts = append(sopts, c.solve...)

			start := time.Now()
			t, x, err := volterra.Solve(r.Kernel, r.TMax, r.N, sopts...)
			elapsed := time.Since(start)
			results[i] = Result{Run: r, T: t, X: x, Err: err, Elapsed: elapsed}

			if err != nil {
				c.log.Warn("solve failed",
					zap.String("run", name),
					zap.Error(err))
				return nil
			}
			c.log.Info("solve finished",
				zap.String("run", name),
				zap.Int("n", r.N),
				zap.Float64("tmax", r.TMax),
				zap.Duration("elapsed", elapsed))
			return nil
		})
	}

	// workers never abort the group; cancellation is reported from the
	// caller's context, not the derived one, which Wait tears down even on
	// success.
	if err := eg.Wait(); err != nil {
		return results, err
	}

	nfail := 0
	for _, res := range results {
		if res.Err != nil {
			nfail++
		}
	}
	c.log.Info("sweep finished",
		zap.Int("runs", len(runs)),
		zap.Int("failed", nfail))

	return results, ctx.Err()
}
