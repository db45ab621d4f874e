// Package volterra discretizes the linear Volterra integral equation
//
//	x(t) = x0 - integral[0,t] K(t-s) x(s) ds
//
// by forward recursion on a uniform time grid.  The kernel is evaluated
// once per unique lag, so a solve costs O(n) kernel calls and O(n^2)
// arithmetic.
package volterra

import (
	"database/sql"
	"fmt"

	"gonum.org/v1/gonum/integrate"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
)

// Rule selects the quadrature applied to the memory integral.
type Rule int

const (
	// Trapezoid integrates each step with the composite trapezoid rule
	// over the already computed samples.
	Trapezoid Rule = iota
	// Simpson integrates steps with an even number of intervals with the
	// composite Simpson rule and falls back to Trapezoid on odd steps.
	Simpson
)

func (r Rule) String() string {
	switch r {
	case Trapezoid:
		return "trapezoidal"
	case Simpson:
		return "simpson"
	}
	return fmt.Sprintf("Rule(%v)", int(r))
}

// ParseRule maps the rule names used in recorded runs and experiment
// manifests back to a Rule.  InvalidArgErr for anything but "trapezoidal"
// and "simpson".
func ParseRule(s string) (Rule, error) {
	switch s {
	case "trapezoidal":
		return Trapezoid, nil
	case "simpson":
		return Simpson, nil
	}
	return 0, fmt.Errorf("unknown quadrature rule %q: %w", s, kexp.InvalidArgErr)
}

type solver struct {
	x0   float64
	rule Rule
	db   *sql.DB
}

type Option func(*solver)

// X0 sets the initial condition x(0).  The default is 1.
func X0(x0 float64) Option {
	return func(s *solver) {
		s.x0 = x0
	}
}

// Method selects the quadrature rule.  The default is Trapezoid.
func Method(r Rule) Option {
	return func(s *solver) {
		s.rule = r
	}
}

// DB turns on run recording.  After a successful solve one row describing
// the run is inserted into TblRuns and one row per sample into TblSamples
// (both created if absent); a failed solve writes nothing.
func DB(db *sql.DB) Option {
	return func(s *solver) {
		s.db = db
	}
}

// Solve integrates the equation on n uniform samples of [0, tmax] and
// returns the grid and the solution trajectory.  x[0] is the initial
// condition; each later x[i] is x0 minus the quadrature of K(t_i-t_j)*x[j]
// over the samples already computed, following the stepping convention of
// the recorded experiments: the trapezoid step spans the computed samples
// t_0..t_{i-1}, and the Simpson step closes the interval at t_i by pairing
// the zero lag kernel value with the newest sample x[i-1].
//
// The kernel sees each unique lag exactly once, through one kexp.EvalBatch
// call on the grid, before the recursion starts.  Kernel values are used
// as returned: NaN or Inf from a degenerate parameterization contaminates
// the tail of the trajectory instead of raising an error.
func Solve(k kexp.Kernel, tmax float64, n int, opts ...Option) (t, x []float64, err error) {
	s := &solver{x0: 1, rule: Trapezoid}
	for _, opt := range opts {
		opt(s)
	}
	if s.rule != Trapezoid && s.rule != Simpson {
		return nil, nil, fmt.Errorf("unknown quadrature rule %v: %w", int(s.rule), kexp.InvalidArgErr)
	}

	t, err = Grid(tmax, n)
	if err != nil {
		return nil, nil, err
	}
	kv, err := kexp.EvalBatch(k, t)
	if err != nil {
		return nil, nil, err
	}

	dt := tmax / float64(n-1)
	x = make([]float64, n)
	x[0] = s.x0

	// Integrand buffer for one step: f[j] = K(t_i - t_j) * x[j] = kv[i-j] * x[j].
	f := make([]float64, n)

	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			f[j] = kv[i-j] * x[j]
		}

		var integral float64
		switch {
		case s.rule == Simpson && i%2 == 0:
			f[i] = kv[0] * x[i-1]
			integral = integrate.Simpsons(t[:i+1], f[:i+1])
		case i == 1:
			// One computed sample; the half weight endpoint term.
			integral = 0.5 * kv[1] * x[0] * dt
		default:
			integral = integrate.Trapezoidal(t[:i], f[:i])
		}
		x[i] = s.x0 - integral
	}

	if s.db != nil {
		if err := s.record(k, tmax, n, t, x); err != nil {
			return nil, nil, fmt.Errorf("record run: %w", err)
		}
	}
	return t, x, nil
}
