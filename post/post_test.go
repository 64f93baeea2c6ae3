// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cp01(tst *testing.T) {

	chk.PrintTitle("cp01: Cp=0 when |U|=Uref")

	U := [][]float64{{1, 0, 0}, {0, 1, 0}}
	cp, err := CalcCp(U, 1.0)
	if err != nil {
		tst.Errorf("CalcCp failed: %v", err)
		return
	}
	chk.Array(tst, "cp", 1e-15, cp, []float64{0, 0})
}

func Test_force01(tst *testing.T) {

	chk.PrintTitle("force01: force identity F = -Cp*0.5*rho*Uref^2*A*n (P6)")

	U := [][]float64{{2, 0, 0}, {0.5, 0, 0}}
	areas := []float64{1.0, 2.0}
	normals := [][]float64{{0, 0, 1}, {0, 0, 1}}
	rho := 1.2
	uref := 1.0

	F, err := CalcForce(U, areas, normals, rho, uref)
	if err != nil {
		tst.Errorf("CalcForce failed: %v", err)
		return
	}
	cp, err := CalcCp(U, uref)
	if err != nil {
		tst.Errorf("CalcCp failed: %v", err)
		return
	}
	for i := range F {
		expected := -cp[i] * 0.5 * rho * uref * uref * areas[i]
		chk.Scalar(tst, "F_z vs -Cp*q*A", 1e-12, F[i][2], expected)
	}
}

func Test_totalforce01(tst *testing.T) {

	chk.PrintTitle("totalforce01: column-wise sum")

	F := [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}
	tot := CalcTotalForce(F)
	chk.Array(tst, "Ftot", 1e-15, tot, []float64{1, 2, 3})
}

func Test_sectionalforce01(tst *testing.T) {

	chk.PrintTitle("sectionalforce01: 5-span x 3-chord uniform force field (S5, P7)")

	nchord, nspan := 3, 5
	lin := func(ic, is, it int) int { return is*nchord + ic }
	gdims := []int{nchord, nspan, 1}

	F := make([][]float64, nchord*nspan)
	cps := make([][]float64, nchord*nspan)
	for is := 0; is < nspan; is++ {
		for ic := 0; ic < nchord; ic++ {
			idx := lin(ic, is, 0)
			F[idx] = []float64{0, 0, 1}
			cps[idx] = []float64{float64(ic), float64(is), 0}
		}
	}
	spanDir := []float64{0, 1, 0}

	Fsec, err := CalcSectionalForce(F, cps, lin, gdims, spanDir)
	if err != nil {
		tst.Errorf("CalcSectionalForce failed: %v", err)
		return
	}
	for _, f := range Fsec {
		chk.Vector(tst, "Fsec station", 1e-12, f, []float64{0, 0, 3})
	}

	// P7: sum_j (ds_j * Fsec_j) ~= Ftot
	tot := CalcTotalForce(F)
	var sum [3]float64
	ds := []float64{1, 1, 1, 1, 1}
	for j, f := range Fsec {
		sum[0] += ds[j] * f[0]
		sum[1] += ds[j] * f[1]
		sum[2] += ds[j] * f[2]
	}
	chk.Array(tst, "P7 sectional integration", 1e-10, sum[:], tot)
}

func Test_lds01(tst *testing.T) {

	chk.PrintTitle("lds01: LDS decomposition (S4, P8)")

	ftot := []float64{2, 0, 5}
	lhat := []float64{0, 0, 1}
	dhat := []float64{1, 0, 0}

	out, err := CalcLDS(ftot, lhat, dhat, nil)
	if err != nil {
		tst.Errorf("CalcLDS failed: %v", err)
		return
	}
	chk.Vector(tst, "L", 1e-14, out[0], []float64{0, 0, 5})
	chk.Vector(tst, "D", 1e-14, out[1], []float64{2, 0, 0})
	chk.Vector(tst, "S", 1e-14, out[2], []float64{0, 0, 0})

	var sum [3]float64
	for _, o := range out {
		sum[0] += o[0]
		sum[1] += o[1]
		sum[2] += o[2]
	}
	chk.Array(tst, "P8 LDS closure", 1e-13, sum[:], ftot)
}

func Test_lds02(tst *testing.T) {

	chk.PrintTitle("lds02: non-unit basis is rejected")

	ftot := []float64{1, 1, 1}
	lhat := []float64{0, 0, 2}
	dhat := []float64{1, 0, 0}
	if _, err := CalcLDS(ftot, lhat, dhat, nil); err == nil {
		tst.Errorf("expected an error for a non-unit lhat")
	}
}
