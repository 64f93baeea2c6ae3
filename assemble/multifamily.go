// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/panelflow/body"
	"github.com/cpmech/panelflow/kernel"
)

// BuildMultiFamily builds the combined vortex-ring + uniform-vortex-sheet
// system (spec.md §4.3, "Multi-family assembly"): the ring block is built
// exactly as Build does, the single prescribed column is moved to the
// right-hand side and zeroed, and a secondary sheet contribution is written
// into that same column by summing, over every panel j, the dotted
// influence of a unit vortex sheet of strength (s_j*weightT, s_j*weightO)
// with s_j alternating sign by panel parity. The returned system stays
// square (no column is struck), because that column now carries the single
// combined sheet unknown rather than panel i*'s own ring circulation; after
// solving, ReinjectMultiFamily recovers both the prescribed ring strength
// and the per-panel sheet strengths from it.
//
// Calling this with weightT = weightO = 0 collapses the sheet contribution
// to zero while the prescribed column is still consumed by it: column i* of
// G is then identically zero, so the system is singular and the default
// "lu" solver reports it as such. This case is not special-cased.
func (a *Assembler) BuildMultiFamily(uinfs, da, db [][]float64, prescribed Prescribed, weightT, weightO float64) (G [][]float64, rhs []float64, err error) {
	G, rhs, err = a.Build(uinfs, da, db)
	if err != nil {
		return
	}
	ncells := a.Body.Ncells()
	if prescribed.Index < 0 || prescribed.Index >= ncells {
		err = chk.Err("prescribed index %d out of range [0,%d)", prescribed.Index, ncells)
		return
	}

	for i := 0; i < ncells; i++ {
		rhs[i] -= G[i][prescribed.Index] * prescribed.Value
		G[i][prescribed.Index] = 0
	}

	msh := a.Body.Msh
	scratch := make([]int, 4)
	outVec := make([][]float64, ncells)
	for i := range outVec {
		outVec[i] = make([]float64, 3)
	}
	for j := 0; j < ncells; j++ {
		n, errc := msh.GetCellT(j, scratch)
		if errc != nil {
			err = errc
			return
		}
		s := sheetSign(j)
		for i := range outVec {
			outVec[i][0], outVec[i][1], outVec[i][2] = 0, 0, 0
		}
		if err = kernel.UConstantVortexSheet(msh.Verts, scratch[:n], s*weightT, s*weightO, a.tangents[j], a.obliques[j], a.cps, outVec, a.ctl); err != nil {
			return
		}
		for i := 0; i < ncells; i++ {
			G[i][prescribed.Index] += dot3(outVec[i], a.normals[i])
		}
	}
	return
}

// ReinjectMultiFamily recovers the 3-column strength matrix (VortexRing,
// UniformVortexSheetT, UniformVortexSheetO) from the solution of the system
// BuildMultiFamily produced: x[prescribed.Index] is the combined sheet
// magnitude gamma, every other x[j] is panel j's ring circulation, and the
// prescribed panel's own ring strength is written as its fixed value rather
// than read back from x.
func ReinjectMultiFamily(ncells int, prescribed Prescribed, x []float64, weightT, weightO float64) [][]float64 {
	gamma := x[prescribed.Index]
	strength := make([][]float64, ncells)
	for j := 0; j < ncells; j++ {
		s := sheetSign(j)
		strength[j] = make([]float64, 3)
		strength[j][body.VortexRing] = x[j]
		strength[j][body.UniformVortexSheetT] = s * gamma * weightT
		strength[j][body.UniformVortexSheetO] = s * gamma * weightO
		if j == prescribed.Index {
			strength[j][body.VortexRing] = prescribed.Value
		}
	}
	return strength
}

// sheetSign is the checkerboard sign s_j of spec.md §4.3: -1 for odd panel
// indices, +1 otherwise, enforcing consistent tangent/oblique orientation
// panel to panel.
func sheetSign(j int) float64 {
	if j%2 == 1 {
		return -1.0
	}
	return 1.0
}
