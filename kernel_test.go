package kexp

import (
	"errors"
	"math"
	"testing"
)

type countKernel struct {
	calls int
}

func (k *countKernel) At(lag float64) float64 {
	k.calls++
	return math.Exp(-lag)
}

// badBatchKernel pads its batch result with an extra value.
type badBatchKernel struct{}

func (badBatchKernel) At(lag float64) float64 { return 1 }

func (badBatchKernel) AtBatch(lags []float64) ([]float64, error) {
	return make([]float64, len(lags)+1), nil
}

type errBatchKernel struct{}

func (errBatchKernel) At(lag float64) float64 { return 1 }

func (errBatchKernel) AtBatch(lags []float64) ([]float64, error) {
	return nil, errors.New("fake error")
}

func TestEvalBatchScalarFallback(t *testing.T) {
	k := &countKernel{}
	lags := []float64{0, 0.5, 1, 1.5}

	vals, err := EvalBatch(k, lags)
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != len(lags) {
		t.Fatalf("returned wrong number of values: expected %v, got %v", len(lags), len(vals))
	}
	if k.calls != len(lags) {
		t.Errorf("wrong evaluation count: expected %v, got %v", len(lags), k.calls)
	}
	for i, lag := range lags {
		if want := math.Exp(-lag); vals[i] != want {
			t.Errorf("lag %v: expected %v, got %v", lag, want, vals[i])
		}
	}
}

func TestEvalBatchShapeMismatch(t *testing.T) {
	_, err := EvalBatch(badBatchKernel{}, []float64{0, 1, 2})
	if !errors.Is(err, ShapeMismatchErr) {
		t.Errorf("expected ShapeMismatchErr, got %v", err)
	}
}

func TestEvalBatchKernelErr(t *testing.T) {
	_, err := EvalBatch(errBatchKernel{}, []float64{0, 1})
	if err == nil {
		t.Errorf("did not propagate kernel error through return")
	}
}

func TestCacheKernelScalar(t *testing.T) {
	inner := &countKernel{}
	ck := NewCacheKernel(inner)

	v1 := ck.At(0.5)
	v2 := ck.At(0.5)
	if v1 != v2 {
		t.Errorf("cached value changed: expected %v, got %v", v1, v2)
	}
	if inner.calls != 1 {
		t.Errorf("wrong evaluation count: expected 1, got %v", inner.calls)
	}
	if ck.Hits() != 1 || ck.Misses() != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %v and %v", ck.Hits(), ck.Misses())
	}
}

func TestCacheKernelBatch(t *testing.T) {
	inner := &countKernel{}
	ck := NewCacheKernel(inner)
	lags := []float64{0, 0.25, 0.5, 0.75}

	first, err := EvalBatch(ck, lags)
	if err != nil {
		t.Fatal(err)
	}
	if inner.calls != len(lags) {
		t.Errorf("wrong evaluation count: expected %v, got %v", len(lags), inner.calls)
	}

	second, err := EvalBatch(ck, lags)
	if err != nil {
		t.Fatal(err)
	}
	if inner.calls != len(lags) {
		t.Errorf("second batch re-evaluated cached lags: expected %v calls, got %v", len(lags), inner.calls)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("lag %v: cached value changed: expected %v, got %v", lags[i], first[i], second[i])
		}
	}

	// A mixed batch forwards only the misses and fills results in input order.
	mixed := []float64{0.25, 2, 0.75}
	vals, err := EvalBatch(ck, mixed)
	if err != nil {
		t.Fatal(err)
	}
	if inner.calls != len(lags)+1 {
		t.Errorf("mixed batch evaluation count: expected %v, got %v", len(lags)+1, inner.calls)
	}
	for i, lag := range mixed {
		if want := math.Exp(-lag); vals[i] != want {
			t.Errorf("lag %v: expected %v, got %v", lag, want, vals[i])
		}
	}
}

func TestCacheKernelBatchErr(t *testing.T) {
	ck := NewCacheKernel(badBatchKernel{})
	_, err := EvalBatch(ck, []float64{0, 1})
	if !errors.Is(err, ShapeMismatchErr) {
		t.Errorf("expected ShapeMismatchErr through cache, got %v", err)
	}
}

type namedKernel struct{}

func (namedKernel) At(lag float64) float64 { return 0 }
func (namedKernel) Name() string           { return "Named" }

func TestName(t *testing.T) {
	if got := Name(namedKernel{}); got != "Named" {
		t.Errorf("expected Named, got %v", got)
	}
	if got := Name(KernelFunc(math.Exp)); got != "CustomKernel" {
		t.Errorf("expected CustomKernel, got %v", got)
	}
	if got := Name(NewCacheKernel(namedKernel{})); got != "Named" {
		t.Errorf("expected Named through cache, got %v", got)
	}
}
