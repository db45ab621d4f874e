package volterra

import (
	"gonum.org/v1/gonum/mat"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
)

// Matrix builds the lower triangular kernel matrix for the grid of n
// samples on [0, tmax]: entry (i, j) with j <= i holds K(t_i - t_j).
// Because the grid is uniform this is a Toeplitz matrix with kv[i-j] on
// the (i-j)th subdiagonal, and it is exactly the table of kernel values a
// Solve with the same arguments consumes.  Useful for inspecting a kernel
// discretization or for solving the system with dense linear algebra
// instead of the forward recursion.
func Matrix(k kexp.Kernel, tmax float64, n int) (*mat.TriDense, error) {
	t, err := Grid(tmax, n)
	if err != nil {
		return nil, err
	}
	kv, err := kexp.EvalBatch(k, t)
	if err != nil {
		return nil, err
	}

	m := mat.NewTriDense(n, mat.Lower, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			m.SetTri(i, j, kv[i-j])
		}
	}
	return m, nil
}
