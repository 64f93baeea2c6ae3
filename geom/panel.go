// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// cross3 returns a freshly-allocated a×b
func cross3(a, b []float64) []float64 {
	w := make([]float64, 3)
	utl.Cross3d(w, a, b)
	return w
}

// vsub returns a-b
func vsub(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// vnorm returns the Euclidean length of v
func vnorm(v []float64) float64 {
	return la.VecNorm(v)
}

// vscale scales v in place by s
func vscale(v []float64, s float64) {
	la.VecScale(v, 0, s, v)
}

// normalOf computes the un-normalized area vector of the panel identified by
// its node-index list using the diagonal method for quads. Triangles use the
// standard edge cross product (v1-v0)x(v2-v0), which equals the diagonal
// formula with node 0 standing in for the missing node 3.
func normalOf(verts [][]float64, idx []int) []float64 {
	if len(idx) == 3 {
		e1 := vsub(verts[idx[1]], verts[idx[0]])
		e2 := vsub(verts[idx[2]], verts[idx[0]])
		return cross3(e1, e2)
	}
	d1 := vsub(verts[idx[2]], verts[idx[0]])
	d2 := vsub(verts[idx[3]], verts[idx[1]])
	return cross3(d1, d2)
}

// CalcAreas returns the area of every panel in the mesh.
func CalcAreas(msh *Mesh) (areas []float64) {
	areas = make([]float64, msh.Ncells())
	for i, idx := range msh.Cells {
		areas[i] = 0.5 * vnorm(normalOf(msh.Verts, idx))
	}
	return
}

// CalcNormals returns the unit outward normal of every panel. When
// flipByCPoffset is true every normal is reversed, matching the geometry
// adapter contract of spec.md §6 ("calc_normals(body; flipbyCPoffset=bool)"):
// the sign convention used to place the control point on the correct side of
// the panel is fixed once, at body construction, via this flag.
func CalcNormals(msh *Mesh, flipByCPoffset bool) (normals [][]float64) {
	normals = make([][]float64, msh.Ncells())
	for i, idx := range msh.Cells {
		n := normalOf(msh.Verts, idx)
		L := vnorm(n)
		if L < 1e-300 {
			chk.Panic("panel %d is degenerate: zero area", i)
		}
		vscale(n, 1.0/L)
		if flipByCPoffset {
			vscale(n, -1.0)
		}
		normals[i] = n
	}
	return
}

// CalcTangents returns, for every panel, the unit in-plane tangent t̂ aligned
// with the first edge (node 0 -> node 1).
func CalcTangents(msh *Mesh) (tangents [][]float64) {
	tangents = make([][]float64, msh.Ncells())
	for i, idx := range msh.Cells {
		t := vsub(msh.Verts[idx[1]], msh.Verts[idx[0]])
		L := vnorm(t)
		if L < 1e-300 {
			chk.Panic("panel %d has a zero-length first edge", i)
		}
		vscale(t, 1.0/L)
		tangents[i] = t
	}
	return
}

// CalcObliques returns, for every panel, the unit in-plane oblique direction
// ô aligned with the edge from node 0 to the last node of the panel's index
// list (node 2 for a triangle, node 3 for a quad). ô need not be orthogonal
// to t̂, only coplanar with it.
func CalcObliques(msh *Mesh) (obliques [][]float64) {
	obliques = make([][]float64, msh.Ncells())
	for i, idx := range msh.Cells {
		last := idx[len(idx)-1]
		o := vsub(msh.Verts[last], msh.Verts[idx[0]])
		L := vnorm(o)
		if L < 1e-300 {
			chk.Panic("panel %d has a zero-length oblique edge", i)
		}
		vscale(o, 1.0/L)
		obliques[i] = o
	}
	return
}

// CalcCentroids returns the centroid of every panel.
func CalcCentroids(msh *Mesh) (centroids [][]float64) {
	centroids = make([][]float64, msh.Ncells())
	for i := range msh.Cells {
		centroids[i] = msh.Centroid(i)
	}
	return
}

// CalcCharLengths returns the characteristic length L=√A of every panel, used
// to scale the control-point offset.
func CalcCharLengths(areas []float64) (L []float64) {
	L = make([]float64, len(areas))
	for i, a := range areas {
		L[i] = math.Sqrt(a)
	}
	return
}
