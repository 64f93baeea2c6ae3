// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_panel01(tst *testing.T) {

	chk.PrintTitle("panel01: area, normal, tangent of a unit right triangle")

	verts := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
	cells := [][]int{{0, 1, 2}}
	msh, err := NewMesh(verts, cells)
	if err != nil {
		tst.Errorf("NewMesh failed: %v", err)
		return
	}

	areas := CalcAreas(msh)
	chk.Scalar(tst, "area", 1e-15, areas[0], 0.5)

	normals := CalcNormals(msh, false)
	chk.Vector(tst, "normal", 1e-15, normals[0], []float64{0, 0, 1})

	tangents := CalcTangents(msh)
	chk.Vector(tst, "tangent", 1e-15, tangents[0], []float64{1, 0, 0})

	L := CalcCharLengths(areas)
	chk.Scalar(tst, "L", 1e-15, L[0], math.Sqrt(0.5))
}

func Test_panel02(tst *testing.T) {

	chk.PrintTitle("panel02: flipByCPoffset reverses the normal")

	verts := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
	cells := [][]int{{0, 1, 2}}
	msh, _ := NewMesh(verts, cells)

	n1 := CalcNormals(msh, false)
	n2 := CalcNormals(msh, true)
	chk.Vector(tst, "flipped normal", 1e-15, n2[0], []float64{-n1[0][0], -n1[0][1], -n1[0][2]})
}

func Test_panel03(tst *testing.T) {

	chk.PrintTitle("panel03: unit-square quad area via diagonal method")

	verts := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
	cells := [][]int{{0, 1, 2, 3}}
	msh, _ := NewMesh(verts, cells)

	areas := CalcAreas(msh)
	chk.Scalar(tst, "area", 1e-14, areas[0], 1.0)

	normals := CalcNormals(msh, false)
	chk.Vector(tst, "normal", 1e-14, normals[0], []float64{0, 0, 1})
}
