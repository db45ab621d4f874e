// Package kernels provides the memory kernels the Volterra solver consumes:
// the distributed order family with optional tempering and deterministic
// test oscillations, tempered power laws, the simplified Prabhakar core,
// and the classic single parameter kernels.  Every kernel here implements
// both the scalar and the batch capability of the root package.
package kernels

import (
	"fmt"
	"math"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
)

var (
	sin = math.Sin
	exp = math.Exp
	pow = math.Pow
)

// Lag floors.  The generator family floors lags at 1e-15; the classic
// factory kernels kept their original coarser 1e-12 substitution.
const (
	tFloor        = 1e-15
	tFloorClassic = 1e-12
)

// AllKernels are the stock parameterizations used by the scenario suite and
// the command line tool.
var AllKernels = []kexp.Kernel{
	Exponential{Gamma: 1},
	PowerLaw{Alpha: 0.5, Gamma: 1},
	MittagLeffler{Alpha: 0.7, Beta: 1},
	TemperedPowerLaw{Alpha: 0.6, Beta: 0.3, Gamma: 1},
	Prabhakar{Alpha: 0.9, Beta: 0.85, Delta: 1},
	DistOrder{
		Alphas:  []float64{0.1, 0.3, 0.5, 0.7, 0.9},
		Weights: []float64{1, 1, 1, 1, 1},
		Beta:    0.3,
		Temper:  true,
	},
}

// DistOrder is the distributed order memory kernel
//
//	K(t) = da * sum_j Weights[j] * t^(-Alphas[j]) / gamma(1-Alphas[j])
//
// where da = (Alphas[last]-Alphas[0])/(len(Alphas)-1) is the quadrature
// spacing of a uniformly spaced alpha grid.  Temper multiplies each term by
// exp(-Beta*t); Oscillate multiplies in the deterministic probe factor
// 1 + 0.2sin(13t) + 0.2sin(47t) + 0.2sin(127t).  Lags below 1e-15 are
// evaluated at 1e-15.  The reference parameterization tempers with
// Beta = 0.3 and leaves oscillations off.
//
// Distributed order relaxation in this form is discussed in:
//
//	Mainardi, Mura, Gorenflo and Stojanovic.  "The two forms of fractional
//	relaxation of distributed order" J. Vibration and Control 14(9-10), 2008.
//
// At least one alpha is required, and Alphas and Weights must be the same
// length: AtBatch reports ShapeMismatchErr, At panics.  A single alpha
// makes da the indeterminate 0/0, which propagates as NaN like any other
// degeneracy.
type DistOrder struct {
	Alphas    []float64
	Weights   []float64
	Beta      float64
	Temper    bool
	Oscillate bool
}

func (k DistOrder) Name() string { return fmt.Sprintf("DistOrder_%v", len(k.Alphas)) }

func (k DistOrder) At(lag float64) float64 {
	if len(k.Alphas) != len(k.Weights) {
		panic(fmt.Sprintf("kernels: %v alphas vs %v weights", len(k.Alphas), len(k.Weights)))
	}
	return k.at(lag)
}

func (k DistOrder) AtBatch(lags []float64) ([]float64, error) {
	if len(k.Alphas) != len(k.Weights) {
		return nil, fmt.Errorf("%v alphas vs %v weights: %w", len(k.Alphas), len(k.Weights), kexp.ShapeMismatchErr)
	}
	vals := make([]float64, len(lags))
	for i, lag := range lags {
		vals[i] = k.at(lag)
	}
	return vals, nil
}

func (k DistOrder) at(lag float64) float64 {
	t := lag
	if t < tFloor {
		t = tFloor
	}
	sum := 0.0
	for j, a := range k.Alphas {
		term := k.Weights[j] * pow(t, -a) / Gamma(1-a)
		if k.Temper {
			term *= exp(-k.Beta * t)
		}
		if k.Oscillate {
			term *= 1 + 0.2*sin(13*t) + 0.2*sin(47*t) + 0.2*sin(127*t)
		}
		sum += term
	}
	da := (k.Alphas[len(k.Alphas)-1] - k.Alphas[0]) / float64(len(k.Alphas)-1)
	return sum * da
}

// TemperedPowerLaw is the exponentially tempered power law kernel
//
//	K(t) = Gamma * t^(Alpha-1) * exp(-Beta*t) / gamma(Alpha)
//
// Lags below 1e-15 are evaluated at 1e-15.  The reference parameterization
// is Alpha 0.6, Beta 0.3, Gamma 1.
type TemperedPowerLaw struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

func (k TemperedPowerLaw) Name() string { return "TemperedPowerLaw" }

func (k TemperedPowerLaw) At(lag float64) float64 {
	t := lag
	if t < tFloor {
		t = tFloor
	}
	norm := k.Gamma / Gamma(k.Alpha)
	return norm * pow(t, k.Alpha-1) * exp(-k.Beta*t)
}

func (k TemperedPowerLaw) AtBatch(lags []float64) ([]float64, error) {
	vals := make([]float64, len(lags))
	norm := k.Gamma / Gamma(k.Alpha)
	for i, lag := range lags {
		t := lag
		if t < tFloor {
			t = tFloor
		}
		vals[i] = norm * pow(t, k.Alpha-1) * exp(-k.Beta*t)
	}
	return vals, nil
}

// Prabhakar is the power core t^(Beta-1) of the three parameter
// Mittag-Leffler kernel t^(Beta-1) * E^Delta_{Alpha,Beta}(-t^Alpha).  The
// series factor is not evaluated; Alpha and Delta are carried for run
// labeling only.  Lags below 1e-15 are evaluated at 1e-15.
type Prabhakar struct {
	Alpha float64
	Beta  float64
	Delta float64
}

func (k Prabhakar) Name() string { return "Prabhakar" }

func (k Prabhakar) At(lag float64) float64 {
	t := lag
	if t < tFloor {
		t = tFloor
	}
	return pow(t, k.Beta-1)
}

func (k Prabhakar) AtBatch(lags []float64) ([]float64, error) {
	vals := make([]float64, len(lags))
	for i, lag := range lags {
		vals[i] = k.At(lag)
	}
	return vals, nil
}
