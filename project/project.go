// Package project turns solved memory trajectories x(t) into experience
// functions n(t) = log_lambda(x(t)/x0), the equivalent number of plain
// lambda-discount exposures.  It also carries the envelope and rescaling
// helpers used to compare experience across discount scales.
package project

import (
	"fmt"
	"math"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
)

// ratioFloor keeps the real-valued projection out of log(0) territory.
const ratioFloor = 1e-12

// N projects a trajectory onto the real experience function: for each
// sample, n[i] = log(x[i]/x0)/log(lambda) with the ratio clamped to a
// minimum of 1e-12.  An underflowed or negative sample therefore projects
// to the same large positive copy number instead of failing.  Lambda must
// be positive; NaN samples pass through unclamped.
func N(x []float64, x0, lambda float64) ([]float64, error) {
	if lambda <= 0 {
		return nil, fmt.Errorf("projection lambda must be positive, got %v: %w", lambda, kexp.InvalidArgErr)
	}

	loglam := math.Log(lambda)
	n := make([]float64, len(x))
	for i, v := range x {
		ratio := v / x0
		if ratio < ratioFloor {
			ratio = ratioFloor
		}
		n[i] = math.Log(ratio) / loglam
	}
	return n, nil
}

// NComplex projects a trajectory onto the complex experience function,
// keeping the sign information a real projection clamps away: the real
// part is log|x[i]/x0|/log(lambda) and the imaginary part is
// arg(x[i]/x0)/log(lambda) with arg fixed at 0 for nonnegative ratios and
// +pi otherwise, never -pi.
func NComplex(x []float64, x0, lambda float64) ([]complex128, error) {
	if lambda <= 0 {
		return nil, fmt.Errorf("projection lambda must be positive, got %v: %w", lambda, kexp.InvalidArgErr)
	}

	loglam := math.Log(lambda)
	n := make([]complex128, len(x))
	for i, v := range x {
		ratio := v / x0
		angle := math.Pi
		if ratio >= 0 {
			angle = 0
		}
		n[i] = complex(math.Log(math.Abs(ratio))/loglam, angle/loglam)
	}
	return n, nil
}

// Envelope returns the running maximum of x.  The maximum starts at zero,
// so a series that never goes positive has an identically zero envelope.
func Envelope(x []float64) []float64 {
	env := make([]float64, len(x))
	cur := 0.0
	for i, v := range x {
		if v > cur {
			cur = v
		}
		env[i] = cur
	}
	return env
}

// MonotonicMin returns the running minimum of x, the monotone nonincreasing
// hull used to strip quadrature ripple from an experience function.  Empty
// input returns nil.
func MonotonicMin(x []float64) []float64 {
	if len(x) == 0 {
		return nil
	}

	out := make([]float64, len(x))
	cur := x[0]
	for i, v := range x {
		if v < cur {
			cur = v
		}
		out[i] = cur
	}
	return out
}
