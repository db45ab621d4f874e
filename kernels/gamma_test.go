package kernels

import (
	"math"
	"testing"
)

func TestGammaKnownValues(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0.5, math.Sqrt(math.Pi)},
		{1, 1},
		{1.5, math.Sqrt(math.Pi) / 2},
		{2, 1},
		{5, 24},
	}
	for _, test := range tests {
		if got := Gamma(test.x); math.Abs(got-test.want) > 1e-12*test.want {
			t.Errorf("Gamma(%v): expected %v, got %v", test.x, test.want, got)
		}
	}
}

func TestLanczosAgreesWithNative(t *testing.T) {
	worst := 0.0
	for x := 0.01; x < 2; x += 0.01 {
		want := math.Gamma(x)
		got := lanczosGamma(x)
		rel := math.Abs(got-want) / math.Abs(want)
		if rel > worst {
			worst = rel
		}
		if rel > 1e-10 {
			t.Errorf("x=%v: native %v vs lanczos %v (rel err %v)", x, want, got, rel)
		}
	}
	t.Logf("[INFO] worst relative disagreement on (0,2): %v", worst)
}

func TestLanczosRecurrence(t *testing.T) {
	// gamma(x+1) = x*gamma(x)
	for _, x := range []float64{0.3, 0.7, 1.1, 1.9} {
		want := x * lanczosGamma(x)
		got := lanczosGamma(x + 1)
		if math.Abs(got-want) > 1e-10*math.Abs(want) {
			t.Errorf("x=%v: expected %v, got %v", x, want, got)
		}
	}
}
