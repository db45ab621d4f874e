package volterra

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
)

// Grid returns n uniformly spaced samples spanning [0, tmax], with
// t[i] = i * tmax/(n-1).  Uniform spacing from zero makes the grid double
// as the solver's unique lag set: every difference t[i]-t[j] is (up to
// rounding) the grid value t[i-j].
//
// InvalidArgErr if n < 2 or tmax is not a positive finite value.
func Grid(tmax float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points, got %v: %w", n, kexp.InvalidArgErr)
	}
	if math.IsNaN(tmax) || math.IsInf(tmax, 0) || tmax <= 0 {
		return nil, fmt.Errorf("grid horizon must be a positive finite value, got %v: %w", tmax, kexp.InvalidArgErr)
	}
	return floats.Span(make([]float64, n), 0, tmax), nil
}
