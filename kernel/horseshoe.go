// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// USemiInfiniteHorseshoe accumulates, into out, the velocity induced at each
// target by a horseshoe vortex of circulation gamma: a finite bound segment
// between nodes[teIdx[0]] and nodes[teIdx[1]], closed by two trailing legs
// that run to infinity along the unit directions da (from teIdx[0]) and db
// (from teIdx[1]). The leg at teIdx[0] is traversed into the loop (and so
// contributes with a negated sign) while the leg at teIdx[1] is traversed out
// of it; a caller folding the other half of a shed wake panel calls this same
// function again with (db, da) swapped. The swap exchanges only the two legs'
// directions: the leg at teIdx[0] is still traversed into the loop and the
// bound segment still runs from teIdx[0] to teIdx[1], so when da == db the
// second call induces the same velocity as the first.
func USemiInfiniteHorseshoe(nodes [][]float64, teIdx []int, da, db []float64, gamma float64, targets [][]float64, out [][]float64, ctl Controls) error {
	if err := ctl.Check(); err != nil {
		return err
	}
	if err := checkTargets(targets, out); err != nil {
		return err
	}
	if len(teIdx) != 2 {
		return errTEIdx(len(teIdx))
	}
	p0 := nodes[teIdx[0]]
	p1 := nodes[teIdx[1]]
	for i, t := range targets {
		legIn := biotSavartSemiInfinite(p0, da, t, ctl)
		bound := biotSavartSegment(p0, p1, t, ctl)
		legOut := biotSavartSemiInfinite(p1, db, t, ctl)
		addInto(out[i], legIn, -gamma)
		addInto(out[i], bound, gamma)
		addInto(out[i], legOut, gamma)
	}
	return nil
}
