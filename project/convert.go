package project

import (
	"fmt"
	"math"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
)

// LambdaToExp converts an experience value measured on the given lambda
// scale to e-foldings (the lambda = 1/e scale).  Lambda must be in (0, 1).
func LambdaToExp(n, lambda float64) (float64, error) {
	if lambda <= 0 || lambda >= 1 {
		return 0, fmt.Errorf("lambda must be in (0,1), got %v: %w", lambda, kexp.InvalidArgErr)
	}
	return -n * math.Log(lambda), nil
}

// ExpToLambda converts an experience value from e-foldings to the target
// lambda scale.  The target must be in (0, 1).
func ExpToLambda(nexp, target float64) (float64, error) {
	if target <= 0 || target >= 1 {
		return 0, fmt.Errorf("target lambda must be in (0,1), got %v: %w", target, kexp.InvalidArgErr)
	}
	return nexp / -math.Log(target), nil
}

// ScaleFactor returns the multiplier that rebases an experience value from
// one lambda scale to another: nTo = nFrom * ScaleFactor(from, to).  The
// arguments are not range checked; out of domain lambdas yield the NaN or
// Inf the logarithms produce.
func ScaleFactor(from, to float64) float64 {
	return math.Log(from) / math.Log(to)
}

// Convert rebases an experience value from one lambda scale to another.
// Both lambdas must be in (0, 1).
func Convert(n, from, to float64) (float64, error) {
	if from <= 0 || from >= 1 {
		return 0, fmt.Errorf("source lambda must be in (0,1), got %v: %w", from, kexp.InvalidArgErr)
	}
	if to <= 0 || to >= 1 {
		return 0, fmt.Errorf("target lambda must be in (0,1), got %v: %w", to, kexp.InvalidArgErr)
	}
	return n * math.Log(from) / math.Log(to), nil
}
