// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/panelflow/geom"
)

func flatPlateMesh() *geom.Mesh {
	verts := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
		{0, 1, 0}, {1, 1, 0}, {2, 1, 0},
	}
	cells := [][]int{{0, 1, 4, 3}, {1, 2, 5, 4}}
	msh, _ := geom.NewMesh(verts, cells)
	return msh
}

func Test_body01(tst *testing.T) {

	chk.PrintTitle("body01: construction with no shedding")

	msh := flatPlateMesh()
	b, err := NewLiftingBody(msh, nil, 1, 0.001, 1e-8, 1e-10, 1e-8)
	if err != nil {
		tst.Errorf("NewLiftingBody failed: %v", err)
		return
	}
	if b.Solved() {
		tst.Errorf("a freshly constructed body must not be solved")
	}
	if b.Ncells() != 2 || b.Nfam() != 1 {
		tst.Errorf("wrong dimensions: ncells=%d nfam=%d", b.Ncells(), b.Nfam())
	}
}

func Test_body02(tst *testing.T) {

	chk.PrintTitle("body02: open trailing edge is accepted, mismatched edge rejected")

	msh := flatPlateMesh()

	open := []Shedding{{PUpper: 1, NAUpper: 2, NBUpper: 5, PLower: -1}}
	if _, err := NewLiftingBody(msh, open, 1, 0.001, 1e-8, 1e-10, 1e-8); err != nil {
		tst.Errorf("open trailing edge should be accepted, got: %v", err)
	}

	bad := []Shedding{{PUpper: 0, NAUpper: 0, NBUpper: 1, PLower: 1, NALower: 2, NBLower: 5}}
	if _, err := NewLiftingBody(msh, bad, 1, 0.001, 1e-8, 1e-10, 1e-8); err == nil {
		tst.Errorf("expected an error for a non-coincident shedding edge")
	}
}

func Test_body03(tst *testing.T) {

	chk.PrintTitle("body03: Commit is the only path to solved, and is atomic")

	msh := flatPlateMesh()
	b, _ := NewLiftingBody(msh, nil, 1, 0.001, 1e-8, 1e-10, 1e-8)

	if _, err := b.GetField("Gamma"); err == nil {
		tst.Errorf("reading a field before solve must fail")
	}

	strength := [][]float64{{1.0}, {2.0}}
	fields := NewFields()
	fields.Add("Gamma", Scalar, AtCell, []float64{1.0, 2.0})
	if err := b.Commit(strength, fields); err != nil {
		tst.Errorf("Commit failed: %v", err)
		return
	}
	if !b.Solved() {
		tst.Errorf("body must be solved after Commit")
	}
	fld, err := b.GetField("Gamma")
	if err != nil {
		tst.Errorf("GetField after commit failed: %v", err)
		return
	}
	data := fld.Data.([]float64)
	chk.Array(tst, "Gamma", 1e-15, data, []float64{1.0, 2.0})
}

func Test_fields01(tst *testing.T) {

	chk.PrintTitle("fields01: append-only, insertion-ordered store")

	f := NewFields()
	if err := f.Add("Uinf", Vector, AtCell, [][]float64{{1, 0, 0}}); err != nil {
		tst.Errorf("Add failed: %v", err)
		return
	}
	if err := f.Add("Uinf", Vector, AtCell, [][]float64{{0, 0, 0}}); err == nil {
		tst.Errorf("expected re-adding an existing field name to fail")
	}
	if !f.Check("Uinf") {
		tst.Errorf("Check should report Uinf present")
	}
	chk.Ints(tst, "names len", []int{len(f.Names())}, []int{1})
}
