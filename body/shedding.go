// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/panelflow/geom"
)

// Shedding is one trailing-edge record: the edge (NAUpper,NBUpper) on panel
// PUpper sheds a wake, optionally partnered by the coincident edge
// (NALower,NBLower) on panel PLower. PLower = -1 marks an open (half)
// trailing edge with no partner panel.
type Shedding struct {
	PUpper, NAUpper, NBUpper int
	PLower, NALower, NBLower int
}

// checkTE validates every shedding record against msh: panel and node
// indices must be in range, and when a partner panel is present its edge
// must coincide geometrically (in either traversal order, since the shared
// edge is walked in opposite directions by the two panels' windings) with
// the upper edge, within tol.
func checkTE(msh *geom.Mesh, shedding []Shedding, tol float64) error {
	ncells := msh.Ncells()
	nnodes := msh.Nnodes()
	checkPanel := func(p int) error {
		if p < 0 || p >= ncells {
			return chk.Err("shedding record references out-of-range panel index %d (ncells=%d)", p, ncells)
		}
		return nil
	}
	checkNode := func(n int) error {
		if n < 0 || n >= nnodes {
			return chk.Err("shedding record references out-of-range node index %d (nnodes=%d)", n, nnodes)
		}
		return nil
	}
	for i, s := range shedding {
		if err := checkPanel(s.PUpper); err != nil {
			return chk.Err("shedding[%d]: %v", i, err)
		}
		if err := checkNode(s.NAUpper); err != nil {
			return chk.Err("shedding[%d]: %v", i, err)
		}
		if err := checkNode(s.NBUpper); err != nil {
			return chk.Err("shedding[%d]: %v", i, err)
		}
		if s.PLower == -1 {
			continue
		}
		if err := checkPanel(s.PLower); err != nil {
			return chk.Err("shedding[%d]: %v", i, err)
		}
		if err := checkNode(s.NALower); err != nil {
			return chk.Err("shedding[%d]: %v", i, err)
		}
		if err := checkNode(s.NBLower); err != nil {
			return chk.Err("shedding[%d]: %v", i, err)
		}
		same := geom.Coincident(msh, s.NAUpper, s.NALower, tol) && geom.Coincident(msh, s.NBUpper, s.NBLower, tol)
		swapped := geom.Coincident(msh, s.NAUpper, s.NBLower, tol) && geom.Coincident(msh, s.NBUpper, s.NALower, tol)
		if !same && !swapped {
			return chk.Err("shedding[%d]: upper edge (%d,%d) does not coincide with lower edge (%d,%d) within tol=%v",
				i, s.NAUpper, s.NBUpper, s.NALower, s.NBLower, tol)
		}
	}
	return nil
}
