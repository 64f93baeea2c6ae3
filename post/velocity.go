// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package post turns a solved LiftingBody's strengths into induced
// velocities, pressure coefficients, elemental and sectional forces, and
// the lift/drag/sideslip decomposition of the total force (spec.md §4.5).
// The Cp, force, sectional-force and LDS routines operate on explicit arrays
// only. CalcU takes the solved *body.LiftingBody for its strengths, shedding
// table and Da/Db fields, and CalcUAtControlPoints is a thin wrapper that
// also reads the body's Uinf field.
package post

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/panelflow/body"
	"github.com/cpmech/panelflow/geom"
	"github.com/cpmech/panelflow/kernel"
)

// CalcU writes, into out, uinfsAtTargets plus the velocity induced by b's
// solved strengths at each of targets: the vortex-ring contribution of
// every panel, the horseshoe contribution of every shedding edge at wake
// strength mu_u (and, when partnered, mu_l with flipped directions), and,
// when b carries a sheet family, the uniform-vortex-sheet contribution of
// every panel.
func CalcU(b *body.LiftingBody, targets, uinfsAtTargets [][]float64, ctl kernel.Controls) (out [][]float64, err error) {
	if !b.Solved() {
		err = chk.Err("CalcU: body is not solved")
		return
	}
	if len(uinfsAtTargets) != len(targets) {
		err = chk.Err("CalcU: uinfsAtTargets must have length %d; got %d", len(targets), len(uinfsAtTargets))
		return
	}
	out = make([][]float64, len(targets))
	for i := range out {
		if len(uinfsAtTargets[i]) != 3 {
			err = chk.Err("CalcU: uinfsAtTargets[%d] must have 3 components; got %d", i, len(uinfsAtTargets[i]))
			return
		}
		out[i] = []float64{uinfsAtTargets[i][0], uinfsAtTargets[i][1], uinfsAtTargets[i][2]}
	}

	msh := b.Msh
	strength := b.Strength()
	scratch := make([]int, 4)
	for j := 0; j < b.Ncells(); j++ {
		n, errc := msh.GetCellT(j, scratch)
		if errc != nil {
			err = errc
			return
		}
		if err = kernel.UVortexRing(msh.Verts, scratch[:n], strength[j][body.VortexRing], targets, out, ctl); err != nil {
			return
		}
	}

	if len(b.Shedding) > 0 {
		var da, db [][]float64
		if da, err = readVectorField(b, "Da"); err != nil {
			return
		}
		if db, err = readVectorField(b, "Db"); err != nil {
			return
		}
		for k, s := range b.Shedding {
			teIdx := []int{s.NAUpper, s.NBUpper}
			muU := strength[s.PUpper][body.VortexRing]
			if err = kernel.USemiInfiniteHorseshoe(msh.Verts, teIdx, da[k], db[k], muU, targets, out, ctl); err != nil {
				return
			}
			if s.PLower == -1 {
				continue
			}
			muL := strength[s.PLower][body.VortexRing]
			if err = kernel.USemiInfiniteHorseshoe(msh.Verts, teIdx, db[k], da[k], muL, targets, out, ctl); err != nil {
				return
			}
		}
	}

	if b.Nfam() == 3 {
		tangents := geom.CalcTangents(msh)
		obliques := geom.CalcObliques(msh)
		for j := 0; j < b.Ncells(); j++ {
			n, errc := msh.GetCellT(j, scratch)
			if errc != nil {
				err = errc
				return
			}
			if err = kernel.UConstantVortexSheet(msh.Verts, scratch[:n], strength[j][body.UniformVortexSheetT], strength[j][body.UniformVortexSheetO], tangents[j], obliques[j], targets, out, ctl); err != nil {
				return
			}
		}
	}
	return
}

// CalcUAtControlPoints is the thin body-reading wrapper: it recomputes b's
// own control points and reads its committed Uinf field to call CalcU.
func CalcUAtControlPoints(b *body.LiftingBody, ctl kernel.Controls) (out [][]float64, cps [][]float64, err error) {
	areas := geom.CalcAreas(b.Msh)
	L := geom.CalcCharLengths(areas)
	normals := geom.CalcNormals(b.Msh, false)
	cps, err = geom.CalcControlPoints(b.Msh, normals, b.CPoffset, L)
	if err != nil {
		return
	}
	uinfs, err := readVectorField(b, "Uinf")
	if err != nil {
		return
	}
	out, err = CalcU(b, cps, uinfs, ctl)
	return
}

func readVectorField(b *body.LiftingBody, name string) ([][]float64, error) {
	fld, err := b.GetField(name)
	if err != nil {
		return nil, err
	}
	data, ok := fld.Data.([][]float64)
	if !ok {
		return nil, chk.Err("field %q is not a vector field", name)
	}
	return data, nil
}
