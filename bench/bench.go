// Package bench provides memory kernels whose Volterra solutions have
// closed forms, for measuring solver accuracy against known answers.
package bench

import (
	"fmt"
	"math"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
	"github.com/BRUTALLOLOL/kernel-experience-tools/kernels"
	"github.com/BRUTALLOLOL/kernel-experience-tools/project"
	"github.com/BRUTALLOLOL/kernel-experience-tools/volterra"
)

var (
	abs = math.Abs
	exp = math.Exp
	pow = math.Pow
)

var AllScenarios = []Scenario{
	ZeroMemory{},
	ConstantMemory{C: 1},
	ConstantMemory{C: 2},
	ExponentialMemory{Rate: 1},
	ExponentialMemory{Rate: 2},
	PowerLawMemory{Alpha: 0.5},
	PowerLawMemory{Alpha: 0.7},
}

// Smooth lists the scenarios whose kernels stay finite at zero lag.  Only
// these are safe under quadratures that read the zero lag value; the power
// law scenarios are clamped there and poison such quadratures.
var Smooth = []Scenario{
	ZeroMemory{},
	ConstantMemory{C: 1},
	ConstantMemory{C: 2},
	ExponentialMemory{Rate: 1},
	ExponentialMemory{Rate: 2},
}

// Scenario pairs a memory kernel with the closed form solution of
//
//	x(t) = 1 - integral[0,t] K(t-s) x(s) ds
//
// All scenarios use initial condition 1.
type Scenario interface {
	Kernel() kexp.Kernel
	Exact(t float64) float64
	TMax() float64
	Name() string
}

// ZeroMemory is the no memory case: x stays at the initial condition.
type ZeroMemory struct{}

func (fn ZeroMemory) Name() string { return "ZeroMemory" }

func (fn ZeroMemory) Kernel() kexp.Kernel {
	return kexp.KernelFunc(func(lag float64) float64 { return 0 })
}

func (fn ZeroMemory) Exact(t float64) float64 { return 1 }

func (fn ZeroMemory) TMax() float64 { return 5 }

// ConstantMemory weights all history equally, giving pure exponential
// relaxation x(t) = exp(-C*t).
type ConstantMemory struct {
	C float64
}

func (fn ConstantMemory) Name() string { return fmt.Sprintf("ConstantMemory_%v", fn.C) }

func (fn ConstantMemory) Kernel() kexp.Kernel {
	return kexp.KernelFunc(func(lag float64) float64 { return fn.C })
}

func (fn ConstantMemory) Exact(t float64) float64 { return exp(-fn.C * t) }

func (fn ConstantMemory) TMax() float64 { return 2 }

// ExponentialMemory uses the normalized exponential kernel Rate*exp(-Rate*t),
// which relaxes to 1/2 instead of zero:
//
//	x(t) = (1 + exp(-2*Rate*t)) / 2
type ExponentialMemory struct {
	Rate float64
}

func (fn ExponentialMemory) Name() string { return fmt.Sprintf("ExponentialMemory_%v", fn.Rate) }

func (fn ExponentialMemory) Kernel() kexp.Kernel {
	return kernels.Exponential{Gamma: fn.Rate}
}

func (fn ExponentialMemory) Exact(t float64) float64 {
	return (1 + exp(-2*fn.Rate*t)) / 2
}

func (fn ExponentialMemory) TMax() float64 { return 4 }

// PowerLawMemory uses the power law kernel t^(Alpha-1)/Gamma(Alpha), the
// memory of fractional relaxation of order Alpha:
//
//	x(t) = E_Alpha(-t^Alpha)
type PowerLawMemory struct {
	Alpha float64
}

func (fn PowerLawMemory) Name() string { return fmt.Sprintf("PowerLawMemory_%v", fn.Alpha) }

func (fn PowerLawMemory) Kernel() kexp.Kernel {
	return kernels.PowerLaw{Alpha: fn.Alpha, Gamma: 1}
}

func (fn PowerLawMemory) Exact(t float64) float64 {
	return MittagLeffler(fn.Alpha, -pow(t, fn.Alpha))
}

func (fn PowerLawMemory) TMax() float64 { return 2 }

// Run solves the scenario's kernel on n uniform samples of [0, TMax] with
// the given quadrature rule and measures the result against the closed
// form solution.
func Run(s Scenario, n int, rule volterra.Rule) (project.Accuracy, error) {
	t, x, err := volterra.Solve(s.Kernel(), s.TMax(), n, volterra.Method(rule))
	if err != nil {
		return project.Accuracy{}, err
	}

	want := make([]float64, len(t))
	for i, ti := range t {
		want[i] = s.Exact(ti)
	}
	return project.Compare(want, x)
}

// MittagLeffler evaluates the one parameter Mittag-Leffler function
//
//	E_a(z) = sum over k of z^k / Gamma(a*k + 1)
//
// by direct summation.  E_1(z) is exp(z) and E_2(-z*z) is cos(z); between
// those it interpolates the stretched relaxation of power law memory.
func MittagLeffler(a, z float64) float64 {
	sum := 0.0
	zk := 1.0
	for k := 0; k < 200; k++ {
		term := zk / kernels.Gamma(a*float64(k)+1)
		sum += term
		if abs(term) < 1e-16*abs(sum) {
			break
		}
		zk *= z
	}
	return sum
}
