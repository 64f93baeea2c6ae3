// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/chk"
)

// CalcControlPoints returns, for every panel, the centroid offset along the
// unit normal by off*L[i], where L is the panel's characteristic length. This
// realizes the "control point = centroid displaced inward/outward" contract
// of spec.md §4.3.
func CalcControlPoints(msh *Mesh, normals [][]float64, off float64, charlength []float64) (cp [][]float64, err error) {
	n := msh.Ncells()
	if len(normals) != n {
		err = chk.Err("normals must have length %d; got %d", n, len(normals))
		return
	}
	if len(charlength) != n {
		err = chk.Err("charlength must have length %d; got %d", n, len(charlength))
		return
	}
	centroids := CalcCentroids(msh)
	cp = make([][]float64, n)
	for i := 0; i < n; i++ {
		c := centroids[i]
		d := off * charlength[i]
		for k := 0; k < 3; k++ {
			c[k] += d * normals[i][k]
		}
		cp[i] = c
	}
	err = checkNoCollapse(cp, charlength)
	return
}
