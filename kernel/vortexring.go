// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// UVortexRing accumulates, into out, the velocity induced at each target by a
// closed polygonal vortex ring of circulation gamma running around the
// panel's nodes nodes[idx[0]], nodes[idx[1]], ..., nodes[idx[n-1]], nodes[idx[0]].
// It is the sum of the finite-filament Biot–Savart contribution of every
// edge; an edge whose target coincides with one of its own endpoints (within
// ctl.Cutoff) contributes nothing, which is what keeps a panel's own control
// point well-defined. Reversing idx's winding negates the sign of every edge
// and hence of the whole sum (spec.md property P5).
func UVortexRing(nodes [][]float64, idx []int, gamma float64, targets [][]float64, out [][]float64, ctl Controls) error {
	if err := ctl.Check(); err != nil {
		return err
	}
	if err := checkTargets(targets, out); err != nil {
		return err
	}
	n := len(idx)
	for i, t := range targets {
		for e := 0; e < n; e++ {
			p0 := nodes[idx[e]]
			p1 := nodes[idx[(e+1)%n]]
			v := biotSavartSegment(p0, p1, t, ctl)
			addInto(out[i], v, gamma)
		}
	}
	return nil
}
