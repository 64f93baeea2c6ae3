// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_lu01(tst *testing.T) {

	chk.PrintTitle("lu01: solves a well-conditioned dense system")

	G := [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	}
	b := []float64{1, 2, 3}
	x := make([]float64, 3)

	s, err := Get("lu")
	if err != nil {
		tst.Errorf("Get failed: %v", err)
		return
	}
	if err := s.Solve(G, b, x); err != nil {
		tst.Errorf("Solve failed: %v", err)
		return
	}

	// residual check: G*x - b ~ 0
	res := make([]float64, 3)
	for i := range G {
		for j := range G[i] {
			res[i] += G[i][j] * x[j]
		}
		res[i] -= b[i]
	}
	chk.Array(tst, "residual", 1e-10, res, []float64{0, 0, 0})
}

func Test_lu02(tst *testing.T) {

	chk.PrintTitle("lu02: singular matrix is reported, not silently solved")

	G := [][]float64{
		{1, 2},
		{2, 4},
	}
	b := []float64{1, 2}
	x := make([]float64, 2)

	s, _ := Get("lu")
	if err := s.Solve(G, b, x); err == nil {
		tst.Errorf("expected a singular-matrix error")
	}
}

func Test_registry01(tst *testing.T) {

	chk.PrintTitle("registry01: unregistered solver name is an error")

	if _, err := Get("does-not-exist"); err == nil {
		tst.Errorf("expected an error for an unregistered solver name")
	}
}
