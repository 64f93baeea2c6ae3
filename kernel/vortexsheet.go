// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/cpmech/gosl/la"

// triQuadBary holds the barycentric coordinates of the points of a degree-2,
// 3-point symmetric Gauss rule over a triangle (each row sums to 1); every
// point carries the equal weight area/3, applied in quadTriVortexSheet.
var triQuadBary = [3][3]float64{
	{2.0 / 3.0, 1.0 / 6.0, 1.0 / 6.0},
	{1.0 / 6.0, 2.0 / 3.0, 1.0 / 6.0},
	{1.0 / 6.0, 1.0 / 6.0, 2.0 / 3.0},
}

// UConstantVortexSheet accumulates, into out, the velocity induced at each
// target by a planar panel carrying a uniform surface vorticity vector
// gammaT*that + gammaO*oblique (spec.md §4.1: a constant-strength uniform
// vortex sheet, as opposed to the vortex-ring/doublet pair's boundary-line
// representation). Unlike the other kernels here this one has no convenient
// boundary-only closed form, so it is evaluated by triangulating the panel
// from its first node and applying a 3-point Gauss rule per triangle to the
// pointwise Biot–Savart kernel (gamma x r)/(4 pi |r|^3); this is the
// quadrature-based evaluator spec.md §4.1 explicitly allows as an
// alternative to a closed form.
func UConstantVortexSheet(nodes [][]float64, idx []int, gammaT, gammaO float64, that, oblique []float64, targets [][]float64, out [][]float64, ctl Controls) error {
	if err := ctl.Check(); err != nil {
		return err
	}
	if err := checkTargets(targets, out); err != nil {
		return err
	}
	gamma := []float64{
		gammaT*that[0] + gammaO*oblique[0],
		gammaT*that[1] + gammaO*oblique[1],
		gammaT*that[2] + gammaO*oblique[2],
	}
	n := len(idx)
	p0 := nodes[idx[0]]
	for i, t := range targets {
		for e := 1; e < n-1; e++ {
			p1 := nodes[idx[e]]
			p2 := nodes[idx[e+1]]
			v := quadTriVortexSheet(p0, p1, p2, gamma, t, ctl)
			addInto(out[i], v, 1.0)
		}
	}
	return nil
}

// quadTriVortexSheet integrates (gamma x (t-x))/(4 pi |t-x|^3) over the
// triangle (p0,p1,p2) using a 3-point Gauss rule and returns the result.
func quadTriVortexSheet(p0, p1, p2 []float64, gamma, t []float64, ctl Controls) (v [3]float64) {
	e1 := sub3(p1, p0)
	e2 := sub3(p2, p0)
	nrm := cross3(e1, e2)
	area := 0.5 * la.VecNorm(nrm)
	if area < 1e-300 {
		return
	}
	for _, bw := range triQuadBary {
		x := []float64{
			bw[0]*p0[0] + bw[1]*p1[0] + bw[2]*p2[0],
			bw[0]*p0[1] + bw[1]*p1[1] + bw[2]*p2[1],
			bw[0]*p0[2] + bw[1]*p1[2] + bw[2]*p2[2],
		}
		r := sub3(t, x)
		rn := la.VecNorm(r)
		if rn < ctl.Cutoff {
			continue
		}
		rSq := rn*rn + ctl.Offset*ctl.Offset
		denom := fourPi * rSq * rn
		cr := cross3(gamma, r)
		w := area / 3.0
		v[0] += w * cr[0] / denom
		v[1] += w * cr[1] / denom
		v[2] += w * cr[2] / denom
	}
	return
}
