// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solve provides the pluggable linear-solver adapter that sits
// between the assembler's (G, b) and the body's committed strengths (spec.md
// §4.4). The default implementation is a dense partial-pivot LU solve;
// gosl/la's LinSol/GetSolver target sparse matrices backed by external
// MUMPS/UMFPACK libraries, a different contract (sparse Triplet assembly,
// out-of-process factorization) than the small dense in-place solve this
// core needs, so the default solver here is hand-rolled instead of wired to
// that adapter — see DESIGN.md.
package solve

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Solver solves G x = b in place into the caller-provided x, which must
// already have the correct length. Implementations must not allocate beyond
// O(N^2) scratch and must report singular/non-converged systems as an error
// rather than returning a degenerate x.
type Solver interface {
	Solve(G [][]float64, b []float64, x []float64) error
}

var registry = map[string]Solver{}

// Register adds (or replaces) a named solver in the package registry.
func Register(name string, s Solver) {
	registry[name] = s
}

// Get returns the solver registered under name, or an error if none is.
func Get(name string) (Solver, error) {
	s, ok := registry[name]
	if !ok {
		return nil, chk.Err("no solver registered under name %q", name)
	}
	return s, nil
}

func init() {
	Register("lu", LU{})
}

// LU is the default solver: dense Gaussian elimination with partial
// pivoting, operating on a scratch copy of G so the caller's matrix is left
// untouched.
type LU struct{}

// Solve implements Solver.
func (LU) Solve(G [][]float64, b []float64, x []float64) error {
	n := len(G)
	if n == 0 {
		return chk.Err("LU.Solve: G must be non-empty")
	}
	for i, row := range G {
		if len(row) != n {
			return chk.Err("LU.Solve: G must be square; row %d has %d columns, want %d", i, len(row), n)
		}
	}
	if len(b) != n {
		return chk.Err("LU.Solve: b must have length %d; got %d", n, len(b))
	}
	if len(x) != n {
		return chk.Err("LU.Solve: x must have length %d; got %d", n, len(x))
	}

	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		copy(a[i], G[i])
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	const tiny = 1e-300
	for k := 0; k < n; k++ {
		piv := k
		best := math.Abs(a[k][k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a[i][k]); v > best {
				best = v
				piv = i
			}
		}
		if best < tiny {
			return chk.Err("LU.Solve: singular matrix (zero pivot at column %d)", k)
		}
		if piv != k {
			a[k], a[piv] = a[piv], a[k]
			rhs[k], rhs[piv] = rhs[piv], rhs[k]
		}
		for i := k + 1; i < n; i++ {
			f := a[i][k] / a[k][k]
			if f == 0 {
				continue
			}
			for j := k; j < n; j++ {
				a[i][j] -= f * a[k][j]
			}
			rhs[i] -= f * rhs[k]
		}
	}

	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		x[i] = sum / a[i][i]
	}
	return nil
}
