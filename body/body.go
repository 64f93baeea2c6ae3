// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package body implements LiftingBody: the immutable geometric object that
// carries per-panel strength storage, the trailing-edge shedding table, the
// kernel regularization offsets, and the insertion-ordered field store that
// a solve populates. It mirrors the teacher's fem.Domain in shape (owned
// mesh + per-entity storage + a small state machine) but its payload is
// aerodynamic, not structural.
package body

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/panelflow/geom"
)

// Family tags an element strength column. VortexRing is always column 0;
// UniformVortexSheet occupies columns 1 and 2 (tangential, oblique) when
// present. Dispatch on this tag replaces subtyping per panel (spec.md
// Design Notes §9): there is one LiftingBody type, not a hierarchy.
type Family int

const (
	VortexRing Family = iota
	UniformVortexSheetT
	UniformVortexSheetO
)

// LiftingBody is constructed from a mesh and a shedding table and moves,
// exactly once, from constructed to solved via Commit.
type LiftingBody struct {
	Msh      *geom.Mesh
	Shedding []Shedding

	Oaxis [][]float64 // body-to-world orthonormal frame, rows are basis vectors
	O     []float64   // world-frame origin

	CPoffset     float64
	KernelOffset float64
	KernelCutoff float64

	// UinfFuncX, UinfFuncY, UinfFuncZ, when all non-nil, generate a
	// time/position-varying freestream component-wise instead of the caller
	// supplying a static Uinf array to solve; an optional hook, not required
	// by the core contract. Each is called as f(t, x) for the panel control
	// point x at t=0.
	UinfFuncX, UinfFuncY, UinfFuncZ dbf.T

	// Verbose gates assembly/solve progress tracing via gosl/io, mirroring
	// the teacher's ShowMsg flag.
	Verbose bool

	nfam     int
	strength [][]float64
	fields   *Fields
	solved   bool
}

// NewLiftingBody validates shedding against msh and returns a body in the
// constructed (unsolved) state with nfam strength columns (1 for a pure
// vortex-ring body, 3 for vortex-ring + uniform-vortex-sheet).
func NewLiftingBody(msh *geom.Mesh, shedding []Shedding, nfam int, cpoffset, kerneloffset, kernelcutoff, tetol float64) (b *LiftingBody, err error) {
	if nfam < 1 || nfam > 3 {
		err = chk.Err("nfam must be 1, 2, or 3; got %d", nfam)
		return
	}
	if cpoffset <= 0 || kerneloffset <= 0 || kernelcutoff < 0 {
		err = chk.Err("cpoffset and kerneloffset must be > 0, kernelcutoff must be >= 0; got %v, %v, %v", cpoffset, kerneloffset, kernelcutoff)
		return
	}
	if err = checkTE(msh, shedding, tetol); err != nil {
		return
	}
	ncells := msh.Ncells()
	strength := make([][]float64, ncells)
	for i := range strength {
		strength[i] = make([]float64, nfam)
	}
	b = &LiftingBody{
		Msh:          msh,
		Shedding:     shedding,
		Oaxis:        [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		O:            []float64{0, 0, 0},
		CPoffset:     cpoffset,
		KernelOffset: kerneloffset,
		KernelCutoff: kernelcutoff,
		nfam:         nfam,
		strength:     strength,
		fields:       NewFields(),
	}
	return
}

// Ncells returns the panel count.
func (b *LiftingBody) Ncells() int { return b.Msh.Ncells() }

// Nfam returns the number of strength columns (1, 2, or 3).
func (b *LiftingBody) Nfam() int { return b.nfam }

// Solved reports whether Commit has been called.
func (b *LiftingBody) Solved() bool { return b.solved }

// Strength returns the ncells x nfam strength matrix. Before the first
// Commit every entry is zero; callers must check Solved before trusting it.
func (b *LiftingBody) Strength() [][]float64 { return b.strength }

// AddField adds a field to the body's current field store. Commit replaces
// the whole store, so a field added here before Commit is not kept after it.
func (b *LiftingBody) AddField(name string, typ FieldType, loc FieldLoc, data interface{}) error {
	return b.fields.Add(name, typ, loc, data)
}

// GetField requires the body to be solved and returns the named field.
func (b *LiftingBody) GetField(name string) (*Field, error) {
	if !b.solved {
		return nil, chk.Err("cannot read field %q: body is not solved", name)
	}
	fld, ok := b.fields.Get(name)
	if !ok {
		return nil, chk.Err("field %q not found", name)
	}
	return fld, nil
}

// CheckField reports whether the named field exists, regardless of solved
// state.
func (b *LiftingBody) CheckField(name string) bool {
	return b.fields.Check(name)
}

// Commit is the sole transition from constructed to solved (spec.md §4.6):
// it replaces strength and the field store wholesale with the given ones,
// then flips the solved flag, all in one call so that no partial state is ever
// observable from outside. It is intended to be called once, by the
// orchestration that drives assembly and the linear solve.
func (b *LiftingBody) Commit(strength [][]float64, fields *Fields) error {
	if len(strength) != b.Ncells() {
		return chk.Err("commit: strength must have %d rows; got %d", b.Ncells(), len(strength))
	}
	for i, row := range strength {
		if len(row) != b.nfam {
			return chk.Err("commit: strength row %d must have %d columns; got %d", i, b.nfam, len(row))
		}
	}
	b.strength = strength
	b.fields = fields
	b.solved = true
	return nil
}
