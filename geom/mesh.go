// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the geometry adapter over a triangular surface mesh:
// node coordinates, per-cell node-index lists, and the per-panel quantities
// (area, normal, tangent, oblique, centroid, characteristic length, control
// point) that the kernels and assembler need.
package geom

import (
	"github.com/cpmech/gosl/chk"
)

// Mesh holds an ordered sequence of 3D nodes and an ordered sequence of panels,
// each referencing 3 (triangle) or 4 (degenerate quad) node indices into Verts.
type Mesh struct {
	Verts [][]float64 // [nverts][3] node coordinates
	Cells [][]int     // [ncells][3 or 4] node indices into Verts
}

// NewMesh validates and returns a new Mesh.
func NewMesh(verts [][]float64, cells [][]int) (msh *Mesh, err error) {
	if len(verts) < 3 {
		err = chk.Err("mesh must have at least 3 vertices; got %d", len(verts))
		return
	}
	for i, v := range verts {
		if len(v) != 3 {
			err = chk.Err("vertex %d must have 3 coordinates; got %d", i, len(v))
			return
		}
	}
	if len(cells) == 0 {
		err = chk.Err("mesh must have at least 1 cell; got 0")
		return
	}
	for i, c := range cells {
		if len(c) != 3 && len(c) != 4 {
			err = chk.Err("cell %d must have 3 or 4 node indices; got %d", i, len(c))
			return
		}
		for _, v := range c {
			if v < 0 || v >= len(verts) {
				err = chk.Err("cell %d references out-of-range node index %d (nverts=%d)", i, v, len(verts))
				return
			}
		}
	}
	msh = &Mesh{Verts: verts, Cells: cells}
	return
}

// Ncells returns the number of panels in the mesh.
func (o *Mesh) Ncells() int { return len(o.Cells) }

// Nnodes returns the number of nodes in the mesh.
func (o *Mesh) Nnodes() int { return len(o.Verts) }

// GetCell returns the node-index list of panel cidx.
func (o *Mesh) GetCell(cidx int) (nodeIdx []int, err error) {
	if cidx < 0 || cidx >= len(o.Cells) {
		err = chk.Err("cell index %d out of range [0,%d)", cidx, len(o.Cells))
		return
	}
	nodeIdx = o.Cells[cidx]
	return
}

// GetCellT is the bulk variant of GetCell: it copies the node-index list of
// panel cidx into the pre-allocated scratch slice, returning the number of
// nodes written. scratch must have length >= 4.
func (o *Mesh) GetCellT(cidx int, scratch []int) (n int, err error) {
	if len(scratch) < 4 {
		err = chk.Err("scratch must have length >= 4; got %d", len(scratch))
		return
	}
	if cidx < 0 || cidx >= len(o.Cells) {
		err = chk.Err("cell index %d out of range [0,%d)", cidx, len(o.Cells))
		return
	}
	n = copy(scratch, o.Cells[cidx])
	return
}

// Centroid returns the mean of the panel's node coordinates.
func (o *Mesh) Centroid(cidx int) (c []float64) {
	idx := o.Cells[cidx]
	c = make([]float64, 3)
	for _, v := range idx {
		for k := 0; k < 3; k++ {
			c[k] += o.Verts[v][k]
		}
	}
	n := float64(len(idx))
	for k := 0; k < 3; k++ {
		c[k] /= n
	}
	return
}
