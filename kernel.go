// Package kexp projects memory kernels K(t) onto experience functions n(t)
// through the linear Volterra equation
//
//	x(t) = x0 - integral[0,t] K(t-s) x(s) ds
//
// This root package holds the kernel evaluation seam shared by the solver
// and the generators; the numerical work lives in the volterra, kernels and
// project packages.
package kexp

import (
	"fmt"
	"math"
)

// Kernel is a memory kernel evaluated at nonnegative lags.  Implementations
// must be deterministic: the same lag always yields the same value.  Values
// are used as returned; NaN or Inf from a degenerate parameterization is
// propagated, not repaired.
type Kernel interface {
	At(lag float64) float64
}

// BatchKernel is the optional batch capability.  AtBatch returns one value
// per lag, aligned index for index with its input, and must not mutate the
// lag slice.  Implementations that can fail (e.g. on inconsistent
// parameters) report that through the error; they must not truncate or pad
// the result.
type BatchKernel interface {
	Kernel
	AtBatch(lags []float64) ([]float64, error)
}

// KernelFunc adapts a plain function to the Kernel interface.
type KernelFunc func(float64) float64

func (f KernelFunc) At(lag float64) float64 { return f(lag) }

// Name returns k's self-reported name, or "CustomKernel" for kernels that
// don't carry one.
func Name(k Kernel) string {
	if n, ok := k.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "CustomKernel"
}

// EvalBatch evaluates k at every lag in lags.  The batch capability is
// detected with a type assertion: batch capable kernels receive exactly one
// AtBatch call, anything else is evaluated one lag at a time in input
// order.  EvalBatch never splits a batch or reorders lags, so kernels that
// are only safe single threaded stay single threaded.
//
// A batch result whose length differs from len(lags) fails with
// ShapeMismatchErr and no values are returned.
func EvalBatch(k Kernel, lags []float64) ([]float64, error) {
	if bk, ok := k.(BatchKernel); ok {
		vals, err := bk.AtBatch(lags)
		if err != nil {
			return nil, err
		}
		if len(vals) != len(lags) {
			return nil, fmt.Errorf("batch kernel returned %v values for %v lags: %w", len(vals), len(lags), ShapeMismatchErr)
		}
		return vals, nil
	}

	vals := make([]float64, len(lags))
	for i, lag := range lags {
		vals[i] = k.At(lag)
	}
	return vals, nil
}

// CacheKernel wraps a kernel and memoizes values by exact lag.  Keys are
// the lag's bit pattern, so lags that differ in the last ulp are distinct
// entries.  On the batch path only cache misses are forwarded to the
// wrapped kernel, in one AtBatch call when it is batch capable.
//
// A CacheKernel is not safe for concurrent use; give each solve its own.
type CacheKernel struct {
	k      Kernel
	cache  map[uint64]float64
	hits   int
	misses int
}

func NewCacheKernel(k Kernel) *CacheKernel {
	return &CacheKernel{
		k:     k,
		cache: map[uint64]float64{},
	}
}

func (ck *CacheKernel) At(lag float64) float64 {
	if v, ok := ck.cache[math.Float64bits(lag)]; ok {
		ck.hits++
		return v
	}
	ck.misses++
	v := ck.k.At(lag)
	ck.cache[math.Float64bits(lag)] = v
	return v
}

func (ck *CacheKernel) AtBatch(lags []float64) ([]float64, error) {
	vals := make([]float64, len(lags))
	fromnew := make([]int, 0, len(lags))
	newlags := make([]float64, 0, len(lags))
	for i, lag := range lags {
		if v, ok := ck.cache[math.Float64bits(lag)]; ok {
			ck.hits++
			vals[i] = v
		} else {
			fromnew = append(fromnew, i)
			newlags = append(newlags, lag)
		}
	}
	if len(newlags) == 0 {
		return vals, nil
	}

	ck.misses += len(newlags)
	newvals, err := EvalBatch(ck.k, newlags)
	if err != nil {
		return nil, err
	}
	for i, v := range newvals {
		ck.cache[math.Float64bits(newlags[i])] = v
		vals[fromnew[i]] = v
	}
	return vals, nil
}

// Name reports the wrapped kernel's name.
func (ck *CacheKernel) Name() string { return Name(ck.k) }

// Hits is the number of lookups answered from the cache.
func (ck *CacheKernel) Hits() int { return ck.hits }

// Misses is the number of evaluations forwarded to the wrapped kernel.
func (ck *CacheKernel) Misses() int { return ck.misses }
