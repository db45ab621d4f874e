package bench_test

import (
	"math"
	"testing"

	"github.com/BRUTALLOLOL/kernel-experience-tools/bench"
	"github.com/BRUTALLOLOL/kernel-experience-tools/volterra"
)

const (
	npoints = 301
	ncoarse = 101
	nfine   = 401

	// worst tolerated relative error at npoints for any scenario and rule;
	// the mixed simpson stepping on ConstantMemory_2 comes closest
	maxerr = 0.2
)

func TestZeroExact(t *testing.T) {
	for _, rule := range []volterra.Rule{volterra.Trapezoid, volterra.Simpson} {
		acc, err := bench.Run(bench.ZeroMemory{}, npoints, rule)
		if err != nil {
			t.Fatal(err)
		}
		if acc.MaxErr != 0 || acc.RMSE != 0 {
			t.Errorf("%v: expected exact solution, got max err %v rmse %v", rule, acc.MaxErr, acc.RMSE)
		}
	}
}

func TestTrapezoid(t *testing.T) {
	for _, s := range bench.AllScenarios {
		acc, err := bench.Run(s, npoints, volterra.Trapezoid)
		if err != nil {
			t.Fatal(err)
		}

		t.Logf("[%v] mean err %v, max err %v, score %v", s.Name(), acc.MeanErr, acc.MaxErr, acc.Score)
		if acc.MaxErr > maxerr {
			t.Errorf("[%v] max relative error %v, expected <= %v", s.Name(), acc.MaxErr, maxerr)
		}
	}
}

func TestSimpson(t *testing.T) {
	for _, s := range bench.Smooth {
		acc, err := bench.Run(s, npoints, volterra.Simpson)
		if err != nil {
			t.Fatal(err)
		}

		t.Logf("[%v] mean err %v, max err %v, score %v", s.Name(), acc.MeanErr, acc.MaxErr, acc.Score)
		if acc.MaxErr > maxerr {
			t.Errorf("[%v] max relative error %v, expected <= %v", s.Name(), acc.MaxErr, maxerr)
		}
	}
}

func TestConvergence(t *testing.T) {
	for _, s := range bench.AllScenarios {
		coarse, err := bench.Run(s, ncoarse, volterra.Trapezoid)
		if err != nil {
			t.Fatal(err)
		}
		fine, err := bench.Run(s, nfine, volterra.Trapezoid)
		if err != nil {
			t.Fatal(err)
		}

		t.Logf("[%v] max err %v at n=%v, %v at n=%v", s.Name(), coarse.MaxErr, ncoarse, fine.MaxErr, nfine)
		if fine.MaxErr > 0.6*coarse.MaxErr {
			t.Errorf("[%v] error did not shrink with the grid: %v at n=%v, %v at n=%v",
				s.Name(), coarse.MaxErr, ncoarse, fine.MaxErr, nfine)
		}
	}
}

func TestMittagLeffler(t *testing.T) {
	// E_1 is the exponential
	for _, z := range []float64{-2, -0.5, 0, 0.5, 1} {
		got, want := bench.MittagLeffler(1, z), math.Exp(z)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("E_1(%v): expected %v, got %v", z, want, got)
		}
	}

	// E_2(-z*z) is cos(z)
	for _, z := range []float64{0.5, 1, 2} {
		got, want := bench.MittagLeffler(2, -z*z), math.Cos(z)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("E_2(%v): expected %v, got %v", -z*z, want, got)
		}
	}

	if got := bench.MittagLeffler(0.7, 0); got != 1 {
		t.Errorf("E_0.7(0): expected 1, got %v", got)
	}
}
