// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assemble

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/panelflow/body"
	"github.com/cpmech/panelflow/solve"
)

// freestreamFromFunc synthesizes a per-control-point freestream from b's
// UinfFuncX/Y/Z hooks, evaluated at t=0, for a Solve/SolveMultiFamily call
// that was not given a static uinfs array (spec.md §5 supplemented feature:
// a body may describe its freestream as a function of position instead of a
// caller-supplied table). All three hooks must be set; there is no partial
// component fallback.
func freestreamFromFunc(b *body.LiftingBody, cps [][]float64) ([][]float64, error) {
	if b.UinfFuncX == nil || b.UinfFuncY == nil || b.UinfFuncZ == nil {
		return nil, chk.Err("uinfs is nil and body has no UinfFuncX/Y/Z hooks set")
	}
	uinfs := make([][]float64, len(cps))
	for i, x := range cps {
		uinfs[i] = []float64{
			b.UinfFuncX(0, x),
			b.UinfFuncY(0, x),
			b.UinfFuncZ(0, x),
		}
	}
	return uinfs, nil
}

// Solve drives the single-family (vortex-ring) path end to end: assemble,
// reduce prescribed strengths to a normal-equations least-squares system,
// solve it, and commit the recovered strengths and canonical fields
// (Uinf, Gamma, Da, Db) to b in one atomic Commit (spec.md §4.6). solverName
// selects the registered solve.Solver to use ("lu" if empty).
func Solve(b *body.LiftingBody, uinfs, da, db [][]float64, prescribed []Prescribed, solverName string) error {
	if solverName == "" {
		solverName = "lu"
	}
	a, err := NewAssembler(b)
	if err != nil {
		return err
	}
	if uinfs == nil {
		if uinfs, err = freestreamFromFunc(b, a.ControlPoints()); err != nil {
			return err
		}
	}
	G, rhs, err := a.Build(uinfs, da, db)
	if err != nil {
		return err
	}
	Gred, rhsAdj, keep, err := Reduce(G, rhs, prescribed)
	if err != nil {
		return err
	}
	Gls, bls := NormalEquations(Gred, rhsAdj)

	s, err := solve.Get(solverName)
	if err != nil {
		return err
	}
	xred := make([]float64, len(bls))
	if err = s.Solve(Gls, bls, xred); err != nil {
		return err
	}

	gamma := Reinject(b.Ncells(), keep, xred, prescribed)
	strength := make([][]float64, b.Ncells())
	for i := range strength {
		strength[i] = []float64{gamma[i]}
	}

	if b.Verbose {
		io.Pf(">> Solve: reduced to %d unknown(s), solved with %q, committing fields\n", len(keep), solverName)
	}

	fields := body.NewFields()
	if err = fields.AddWithUnit("Uinf", body.Vector, body.AtCell, uinfs, "m/s"); err != nil {
		return err
	}
	if err = fields.AddWithUnit("Gamma", body.Scalar, body.AtCell, gamma, "m^2/s"); err != nil {
		return err
	}
	if err = fields.Add("Da", body.Vector, body.AtSystem, da); err != nil {
		return err
	}
	if err = fields.Add("Db", body.Vector, body.AtSystem, db); err != nil {
		return err
	}

	return b.Commit(strength, fields)
}

// SolveMultiFamily drives the two-family (VortexRing + UniformVortexSheet)
// path: a single prescribed ring strength is substituted for a combined
// sheet unknown in its own column, the resulting square system is solved
// directly (no normal-equations reduction — see BuildMultiFamily), and the
// recovered ring and sheet strengths are committed together.
func SolveMultiFamily(b *body.LiftingBody, uinfs, da, db [][]float64, prescribed Prescribed, weightT, weightO float64, solverName string) error {
	if b.Nfam() != 3 {
		return chk.Err("SolveMultiFamily requires a 3-column body (VortexRing + UniformVortexSheetT/O); got nfam=%d", b.Nfam())
	}
	if solverName == "" {
		solverName = "lu"
	}
	a, err := NewAssembler(b)
	if err != nil {
		return err
	}
	if uinfs == nil {
		if uinfs, err = freestreamFromFunc(b, a.ControlPoints()); err != nil {
			return err
		}
	}
	G, rhs, err := a.BuildMultiFamily(uinfs, da, db, prescribed, weightT, weightO)
	if err != nil {
		return err
	}

	s, err := solve.Get(solverName)
	if err != nil {
		return err
	}
	x := make([]float64, b.Ncells())
	if err = s.Solve(G, rhs, x); err != nil {
		return err
	}

	strength := ReinjectMultiFamily(b.Ncells(), prescribed, x, weightT, weightO)
	gammaCol := make([]float64, b.Ncells())
	for i, row := range strength {
		gammaCol[i] = row[body.VortexRing]
	}

	if b.Verbose {
		io.Pf(">> SolveMultiFamily: solved %d unknown(s) with %q, committing fields\n", b.Ncells(), solverName)
	}

	fields := body.NewFields()
	if err = fields.AddWithUnit("Uinf", body.Vector, body.AtCell, uinfs, "m/s"); err != nil {
		return err
	}
	if err = fields.AddWithUnit("Gamma", body.Scalar, body.AtCell, gammaCol, "m^2/s"); err != nil {
		return err
	}
	if err = fields.Add("Da", body.Vector, body.AtSystem, da); err != nil {
		return err
	}
	if err = fields.Add("Db", body.Vector, body.AtSystem, db); err != nil {
		return err
	}

	return b.Commit(strength, fields)
}
