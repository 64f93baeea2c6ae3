// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernel implements the singular-kernel evaluators for
// potential-flow panel methods (closed form throughout, except the
// quadrature-based vortex sheet): the velocity and potential induced by a
// constant-strength vortex-ring panel, a semi-infinite horseshoe, a
// constant-strength uniform vortex sheet, and a constant-strength doublet
// panel (bound and semi-infinite wake variants). Every evaluator streams over
// its targets and accumulates into a caller-owned buffer with +=; none
// allocates scratch beyond the O(1) temporaries of a single edge/target pair.
package kernel

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// fourPi is the 4π normalisation common to every Biot–Savart-derived kernel.
const fourPi = 4.0 * math.Pi

// Controls bundles the regularisation offset ε and the minimum-distance
// cutoff δ shared by every kernel in this package (spec §4.1). ε is added in
// quadrature to squared distances so that a target exactly on a panel's
// boundary still has a well-defined (large but finite) induced velocity; δ
// discards a filament's contribution altogether when the target lies within
// δ of one of its end points (of a quadrature point, for the vortex sheet),
// which is what actually guards the evaluators against division by
// near-zero distances.
type Controls struct {
	Offset float64 // ε ≥ 0
	Cutoff float64 // δ ≥ 0
}

// Check validates that Offset and Cutoff are non-negative.
func (c Controls) Check() error {
	if c.Offset < 0 {
		return chk.Err("kernel offset must be >= 0; got %v", c.Offset)
	}
	if c.Cutoff < 0 {
		return chk.Err("kernel cutoff must be >= 0; got %v", c.Cutoff)
	}
	return nil
}

// Project reduces a full vector field (one 3-vector per target, as written by
// every U_* evaluator in this package) to the scalar projection onto a
// per-target unit direction, realizing the optional dot_with output mode of
// spec.md §4.1 as a thin post-processing step rather than a second code path
// through every kernel.
func Project(vec [][]float64, dotWith [][]float64) (out []float64, err error) {
	if len(dotWith) != len(vec) {
		err = chk.Err("dotWith must have length %d (one per target); got %d", len(vec), len(dotWith))
		return
	}
	out = make([]float64, len(vec))
	for i := range vec {
		out[i] = utl.Dot3d(vec[i], dotWith[i])
	}
	return
}

// checkTargets validates that out has one row per target and each row/target
// has 3 components.
func checkTargets(targets, out [][]float64) error {
	if len(out) != len(targets) {
		return chk.Err("out must have length %d (one row per target); got %d", len(targets), len(out))
	}
	for i, t := range targets {
		if len(t) != 3 {
			return chk.Err("target %d must have 3 coordinates; got %d", i, len(t))
		}
		if len(out[i]) != 3 {
			return chk.Err("out[%d] must have 3 components; got %d", i, len(out[i]))
		}
	}
	return nil
}

// biotSavartSegment accumulates, into v, the velocity induced at target by a
// straight vortex filament of unit circulation running from p0 to p1 (the
// standard finite-filament Biot–Savart result used throughout lifting-line
// and panel codes). ctl.Offset regularises the denominator; ctl.Cutoff skips
// the contribution when the target lies within δ of either end point.
func biotSavartSegment(p0, p1, target []float64, ctl Controls) (v [3]float64) {
	r0 := sub3(p1, p0)
	r1 := sub3(target, p0)
	r2 := sub3(target, p1)
	n1, n2 := la.VecNorm(r1), la.VecNorm(r2)
	if n1 < ctl.Cutoff || n2 < ctl.Cutoff {
		return
	}
	cr := cross3(r1, r2)
	crSq := utl.Dot3d(cr, cr) + ctl.Offset*ctl.Offset
	if crSq < 1e-300 {
		return
	}
	k := (utl.Dot3d(r0, r1)/n1 - utl.Dot3d(r0, r2)/n2) / (fourPi * crSq)
	v[0] = k * cr[0]
	v[1] = k * cr[1]
	v[2] = k * cr[2]
	return
}

// biotSavartSemiInfinite accumulates, into v, the velocity induced at target
// by a straight vortex filament of unit circulation that starts at p0 and
// extends to infinity along the unit direction dir.
func biotSavartSemiInfinite(p0, dir, target []float64, ctl Controls) (v [3]float64) {
	r1 := sub3(target, p0)
	n1 := la.VecNorm(r1)
	if n1 < ctl.Cutoff {
		return
	}
	dxr := cross3(dir, r1)
	dxrSq := utl.Dot3d(dxr, dxr) + ctl.Offset*ctl.Offset
	if dxrSq < 1e-300 {
		return
	}
	k := (1.0 + utl.Dot3d(r1, dir)/n1) / (fourPi * dxrSq)
	v[0] = k * dxr[0]
	v[1] = k * dxr[1]
	v[2] = k * dxr[2]
	return
}

func sub3(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross3(a, b []float64) []float64 {
	w := make([]float64, 3)
	utl.Cross3d(w, a, b)
	return w
}

func addInto(out []float64, v [3]float64, scale float64) {
	out[0] += scale * v[0]
	out[1] += scale * v[1]
	out[2] += scale * v[2]
}

func errTEIdx(n int) error {
	return chk.Err("trailing-edge index pair must have length 2; got %d", n)
}

func errTargetsOut(want, got int) error {
	return chk.Err("out must have length %d (one scalar per target); got %d", want, got)
}
