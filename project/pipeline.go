package project

import (
	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
	"github.com/BRUTALLOLOL/kernel-experience-tools/volterra"
)

// KernelToN is the whole pipeline in one call: solve the Volterra equation
// for k on n samples of [0, tmax] with initial condition x0, then project
// the trajectory onto the real experience function with base lambda.  The
// solve uses the trapezoid rule.  Returns the grid, the trajectory, and
// the experience function.
func KernelToN(k kexp.Kernel, lambda, tmax float64, n int, x0 float64) (t, x, nvals []float64, err error) {
	t, x, err = volterra.Solve(k, tmax, n, volterra.X0(x0))
	if err != nil {
		return nil, nil, nil, err
	}
	nvals, err = N(x, x0, lambda)
	if err != nil {
		return nil, nil, nil, err
	}
	return t, x, nvals, nil
}

// EnvelopeN solves for k like KernelToN and projects the running maximum
// envelope of the trajectory instead of the trajectory itself, then takes
// the running minimum of the result.  Oscillatory kernels get a monotone
// experience function this way.  Returns the grid, the envelope, and the
// monotone experience function.
func EnvelopeN(k kexp.Kernel, lambda, tmax float64, n int, x0 float64) (t, env, nenv []float64, err error) {
	t, x, err := volterra.Solve(k, tmax, n, volterra.X0(x0))
	if err != nil {
		return nil, nil, nil, err
	}

	env = Envelope(x)
	nvals, err := N(env, x0, lambda)
	if err != nil {
		return nil, nil, nil, err
	}
	return t, env, MonotonicMin(nvals), nil
}
