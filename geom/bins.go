// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// pointBins builds a spatial hash over points, mirroring the teacher's own
// NodBins/IpsBins (out/out.go): a bounding box divided into a fixed 20x20x20
// grid of bins, with every point appended under its own index as id.
func pointBins(points [][]float64) (bins *gm.Bins, err error) {
	xmin := []float64{points[0][0], points[0][1], points[0][2]}
	xmax := []float64{points[0][0], points[0][1], points[0][2]}
	for _, v := range points {
		for k := 0; k < 3; k++ {
			if v[k] < xmin[k] {
				xmin[k] = v[k]
			}
			if v[k] > xmax[k] {
				xmax[k] = v[k]
			}
		}
	}
	ndiv := []int{20, 20, 20}
	bins = new(gm.Bins)
	err = bins.Init(xmin, xmax, ndiv)
	if err != nil {
		err = chk.Err("cannot initialise bins: %v", err)
		return
	}
	for id, v := range points {
		err = bins.Append(v, id)
		if err != nil {
			err = chk.Err("cannot append point %d to bins: %v", id, err)
			return
		}
	}
	return
}

// NodeBins builds a spatial hash over the mesh's nodes so that proximity
// queries among nodes run sub-quadratic instead of scanning all nodes for
// each query. The trailing-edge check compares its named node pairs with
// Coincident instead, and the duplicate control-point check (checkNoCollapse)
// hashes control points via pointBins, not the mesh's nodes.
func NodeBins(msh *Mesh) (bins *gm.Bins, err error) {
	return pointBins(msh.Verts)
}

// checkNoCollapse flags control points that land on top of a neighbour's
// control point (a degenerate panel pair) by hashing every point into bins
// sized from the mesh's own panels and checking each point's nearest bin
// match is itself. charlength supplies the scale: two control points closer
// than 1e-6 of the smallest panel's characteristic length are rejected.
func checkNoCollapse(points [][]float64, charlength []float64) error {
	if len(points) < 2 {
		return nil
	}
	bins, err := pointBins(points)
	if err != nil {
		return err
	}
	minL := charlength[0]
	for _, L := range charlength[1:] {
		if L < minL {
			minL = L
		}
	}
	tol := 1e-6 * minL
	for i, p := range points {
		id := bins.Find(p)
		if id != i && id >= 0 {
			d := vnorm(vsub(points[id], p))
			if d < tol {
				return chk.Err("control points %d and %d have collapsed (distance %v < tol %v); panels are degenerate or duplicated", i, id, d, tol)
			}
		}
	}
	return nil
}

// Coincident reports whether nodes a and b lie within tol of each other.
func Coincident(msh *Mesh, a, b int, tol float64) bool {
	va, vb := msh.Verts[a], msh.Verts[b]
	d := vnorm(vsub(va, vb))
	return d <= tol
}
