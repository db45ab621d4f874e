package kernels

// Exponential is K(t) = Gamma * exp(-Gamma*t), with negative lags evaluated
// at zero.
type Exponential struct {
	Gamma float64
}

func (k Exponential) Name() string { return "Exponential" }

func (k Exponential) At(lag float64) float64 {
	t := lag
	if t < 0 {
		t = 0
	}
	return k.Gamma * exp(-k.Gamma*t)
}

func (k Exponential) AtBatch(lags []float64) ([]float64, error) {
	vals := make([]float64, len(lags))
	for i, lag := range lags {
		vals[i] = k.At(lag)
	}
	return vals, nil
}

// PowerLaw is K(t) = Gamma * t^(Alpha-1) / gamma(Alpha).  Nonpositive lags
// are evaluated at 1e-12; positive lags are used as given, however small.
type PowerLaw struct {
	Alpha float64
	Gamma float64
}

func (k PowerLaw) Name() string { return "PowerLaw" }

func (k PowerLaw) At(lag float64) float64 {
	t := lag
	if t <= 0 {
		t = tFloorClassic
	}
	return k.Gamma / Gamma(k.Alpha) * pow(t, k.Alpha-1)
}

func (k PowerLaw) AtBatch(lags []float64) ([]float64, error) {
	vals := make([]float64, len(lags))
	prefactor := k.Gamma / Gamma(k.Alpha)
	for i, lag := range lags {
		t := lag
		if t <= 0 {
			t = tFloorClassic
		}
		vals[i] = prefactor * pow(t, k.Alpha-1)
	}
	return vals, nil
}

// MittagLeffler is the simplified stand in
//
//	K(t) = t^(Alpha-1) * exp(-t^Alpha) / gamma(Alpha)
//
// for the Mittag-Leffler kernel t^(Alpha-1) * E_{Alpha,Alpha}(-t^Alpha).
// There is no lag floor: a zero lag with Alpha < 1 evaluates to +Inf, which
// propagates.  Beta is carried for run labeling; the simplified form does
// not use it.
type MittagLeffler struct {
	Alpha float64
	Beta  float64
}

func (k MittagLeffler) Name() string { return "MittagLeffler" }

func (k MittagLeffler) At(lag float64) float64 {
	return pow(lag, k.Alpha-1) * exp(-pow(lag, k.Alpha)) / Gamma(k.Alpha)
}

func (k MittagLeffler) AtBatch(lags []float64) ([]float64, error) {
	vals := make([]float64, len(lags))
	for i, lag := range lags {
		vals[i] = k.At(lag)
	}
	return vals, nil
}
