// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_mesh01(tst *testing.T) {

	chk.PrintTitle("mesh01: construction and cell access")

	verts := [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	cells := [][]int{{0, 1, 2}, {0, 2, 3}}
	msh, err := NewMesh(verts, cells)
	if err != nil {
		tst.Errorf("NewMesh failed: %v", err)
		return
	}
	if msh.Ncells() != 2 || msh.Nnodes() != 4 {
		tst.Errorf("wrong dimensions: ncells=%d nnodes=%d", msh.Ncells(), msh.Nnodes())
	}

	idx, err := msh.GetCell(1)
	if err != nil {
		tst.Errorf("GetCell failed: %v", err)
		return
	}
	chk.Ints(tst, "cell 1", idx, []int{0, 2, 3})

	scratch := make([]int, 4)
	n, err := msh.GetCellT(0, scratch)
	if err != nil {
		tst.Errorf("GetCellT failed: %v", err)
		return
	}
	chk.Ints(tst, "cell 0 (bulk)", scratch[:n], []int{0, 1, 2})
}

func Test_mesh02(tst *testing.T) {

	chk.PrintTitle("mesh02: construction rejects out-of-range cell indices")

	verts := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	cells := [][]int{{0, 1, 5}}
	_, err := NewMesh(verts, cells)
	if err == nil {
		tst.Errorf("expected an error for out-of-range node index, got nil")
	}
}
