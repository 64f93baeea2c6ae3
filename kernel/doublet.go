// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// PhiConstantDoublet accumulates, into out, the potential induced at each
// target by a constant-strength doublet panel of strength mu spanning the
// polygon nodes[idx[0..n-1]]. The panel is fan-triangulated from its first
// node and the solid angle it subtends at each target is summed triangle by
// triangle via the Van Oosterom–Strackee formula, an exact closed form (no
// quadrature needed): phi = -mu*Omega/(4*pi).
func PhiConstantDoublet(nodes [][]float64, idx []int, mu float64, targets [][]float64, out []float64) error {
	if len(out) != len(targets) {
		return errTargetsOut(len(targets), len(out))
	}
	n := len(idx)
	p0 := nodes[idx[0]]
	for i, t := range targets {
		var omega float64
		for e := 1; e < n-1; e++ {
			p1 := nodes[idx[e]]
			p2 := nodes[idx[e+1]]
			omega += triSolidAngle(p0, p1, p2, t)
		}
		out[i] += -mu * omega / fourPi
	}
	return nil
}

// PhiSemiInfiniteDoublet accumulates, into out, the potential induced at each
// target by a semi-infinite doublet strip of strength mu: a bound edge
// between nodes[teIdx[0]] and nodes[teIdx[1]], trailing to infinity along da
// and db. The strip is approximated by a finite doublet quadrilateral whose
// far edge sits a distance far along da/db (far defaults to a large multiple
// of the bound edge's length when far<=0), which is the standard
// truncated-wake technique for evaluating an otherwise semi-infinite
// singularity with the same closed-form machinery as the bound panel.
func PhiSemiInfiniteDoublet(nodes [][]float64, teIdx []int, da, db []float64, mu float64, far float64, targets [][]float64, out []float64) error {
	if len(out) != len(targets) {
		return errTargetsOut(len(targets), len(out))
	}
	if len(teIdx) != 2 {
		return errTEIdx(len(teIdx))
	}
	p0 := nodes[teIdx[0]]
	p1 := nodes[teIdx[1]]
	if far <= 0 {
		far = 1e6 * la.VecNorm(sub3(p1, p0))
	}
	p3 := []float64{p0[0] + far*da[0], p0[1] + far*da[1], p0[2] + far*da[2]}
	p2 := []float64{p1[0] + far*db[0], p1[1] + far*db[1], p1[2] + far*db[2]}
	quadNodes := [][]float64{p0, p1, p2, p3}
	quadIdx := []int{0, 1, 2, 3}
	return PhiConstantDoublet(quadNodes, quadIdx, mu, targets, out)
}

// triSolidAngle returns the solid angle subtended at t by the triangle
// (p0,p1,p2), via the Van Oosterom–Strackee (1983) tangent-half-angle
// formula.
func triSolidAngle(p0, p1, p2, t []float64) float64 {
	a := sub3(p0, t)
	b := sub3(p1, t)
	c := sub3(p2, t)
	ra, rb, rc := la.VecNorm(a), la.VecNorm(b), la.VecNorm(c)
	numer := utl.Dot3d(a, cross3(b, c))
	denom := ra*rb*rc + utl.Dot3d(a, b)*rc + utl.Dot3d(b, c)*ra + utl.Dot3d(c, a)*rb
	return 2 * math.Atan2(numer, denom)
}
