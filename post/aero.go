// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CalcCp returns the incompressible pressure coefficient at each target:
// Cp_i = 1 - (|U_i|/Uref)^2.
func CalcCp(U [][]float64, uref float64) (cp []float64, err error) {
	if uref == 0 {
		err = chk.Err("CalcCp: uref must be nonzero")
		return
	}
	cp = make([]float64, len(U))
	for i, u := range U {
		mag := math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
		cp[i] = 1 - (mag/uref)*(mag/uref)
	}
	return
}

// CalcForce returns the elemental aerodynamic force on each panel:
// F_i = 0.5*rho*(|U_i|^2 - uinfMag^2)*A_i*n_i.
func CalcForce(U [][]float64, areas []float64, normals [][]float64, rho, uinfMag float64) (F [][]float64, err error) {
	if len(areas) != len(U) || len(normals) != len(U) {
		err = chk.Err("CalcForce: U, areas, normals must have matching lengths; got %d, %d, %d", len(U), len(areas), len(normals))
		return
	}
	F = make([][]float64, len(U))
	uinf2 := uinfMag * uinfMag
	for i, u := range U {
		umag2 := u[0]*u[0] + u[1]*u[1] + u[2]*u[2]
		q := 0.5 * rho * (umag2 - uinf2) * areas[i]
		F[i] = []float64{q * normals[i][0], q * normals[i][1], q * normals[i][2]}
	}
	return
}

// CalcTotalForce sums F column-wise.
func CalcTotalForce(F [][]float64) []float64 {
	tot := []float64{0, 0, 0}
	for _, f := range F {
		tot[0] += f[0]
		tot[1] += f[1]
		tot[2] += f[2]
	}
	return tot
}

// CalcSectionalForce integrates F over the chordwise index at each span
// station and divides by the local span step (spec.md §4.5): forward
// difference at the leading station, backward at the trailing one, centred
// average elsewhere. lin/gdims come from geom.GetLinearIndex; spanDir is the
// unit direction along which span position is measured.
func CalcSectionalForce(F [][]float64, cps [][]float64, lin func(ic, is, it int) int, gdims []int, spanDir []float64) (Fsec [][]float64, err error) {
	if len(gdims) != 3 || gdims[2] != 1 {
		err = chk.Err("CalcSectionalForce: gdims must be (nchord, nspan, 1); got %v", gdims)
		return
	}
	nchord, nspan := gdims[0], gdims[1]
	if nchord < 1 || nspan < 1 {
		err = chk.Err("CalcSectionalForce: nchord and nspan must be >= 1; got %d, %d", nchord, nspan)
		return
	}

	s := make([]float64, nspan)
	for j := 0; j < nspan; j++ {
		var sum float64
		for i := 0; i < nchord; i++ {
			idx := lin(i, j, 0)
			cp := cps[idx]
			sum += spanDir[0]*cp[0] + spanDir[1]*cp[1] + spanDir[2]*cp[2]
		}
		s[j] = sum / float64(nchord)
	}

	Fsec = make([][]float64, nspan)
	for j := 0; j < nspan; j++ {
		var fx, fy, fz float64
		for i := 0; i < nchord; i++ {
			idx := lin(i, j, 0)
			fx += F[idx][0]
			fy += F[idx][1]
			fz += F[idx][2]
		}
		var ds float64
		switch {
		case nspan == 1:
			err = chk.Err("CalcSectionalForce: nspan must be >= 2 to define a span step")
			return
		case j == 0:
			ds = s[1] - s[0]
		case j == nspan-1:
			ds = s[j] - s[j-1]
		default:
			ds = (s[j+1] - s[j-1]) / 2
		}
		if ds == 0 {
			err = chk.Err("CalcSectionalForce: zero span step at station %d", j)
			return
		}
		Fsec[j] = []float64{fx / ds, fy / ds, fz / ds}
	}
	return
}
