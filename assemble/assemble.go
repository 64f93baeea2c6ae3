// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package assemble builds the influence matrix and right-hand side of the
// lifting-body boundary-value problem, folds wake influence back onto
// shedding panels, and reduces prescribed-strength degrees of freedom to a
// normal-equations least-squares system (spec.md §4.3). It is the one
// package allowed to see geom, kernel, body, and solve together, since it
// is the orchestration point that wires them into a single Solve call.
package assemble

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/panelflow/body"
	"github.com/cpmech/panelflow/geom"
	"github.com/cpmech/panelflow/kernel"
)

// Prescribed is one fixed vortex-ring strength at panel index Index.
type Prescribed struct {
	Index int
	Value float64
}

// Assembler builds the influence matrix for one lifting body, caching the
// geometry derived quantities (areas, normals, control points) that every
// column of G and every wake fold need.
type Assembler struct {
	Body    *body.LiftingBody
	ctl     kernel.Controls
	Verbose bool // mirrors b.Verbose; gates io.Pf progress tracing in Build

	areas    []float64
	normals  [][]float64
	tangents [][]float64
	obliques [][]float64
	cps      [][]float64
}

// NewAssembler derives panel geometry from b.Msh and prepares an Assembler.
func NewAssembler(b *body.LiftingBody) (a *Assembler, err error) {
	msh := b.Msh
	areas := geom.CalcAreas(msh)
	L := geom.CalcCharLengths(areas)
	normals := geom.CalcNormals(msh, false)
	tangents := geom.CalcTangents(msh)
	obliques := geom.CalcObliques(msh)
	cps, err := geom.CalcControlPoints(msh, normals, b.CPoffset, L)
	if err != nil {
		return
	}
	a = &Assembler{
		Body:     b,
		ctl:      kernel.Controls{Offset: b.KernelOffset, Cutoff: b.KernelCutoff},
		Verbose:  b.Verbose,
		areas:    areas,
		normals:  normals,
		tangents: tangents,
		obliques: obliques,
		cps:      cps,
	}
	if a.Verbose {
		io.Pf(">> Assembler: %d panels, %d shedding records, cpoffset=%v kerneloffset=%v kernelcutoff=%v\n",
			msh.Ncells(), len(b.Shedding), b.CPoffset, b.KernelOffset, b.KernelCutoff)
	}
	return
}

// ControlPoints returns the control points used to assemble G.
func (a *Assembler) ControlPoints() [][]float64 { return a.cps }

// Normals returns the unit normals used to assemble G.
func (a *Assembler) Normals() [][]float64 { return a.normals }

// Build assembles the unreduced square vortex-ring influence matrix G and
// right-hand side b from per-panel freestream uinfs and the per-shedding
// wake directions da, db (spec.md §4.3). G and b carry the full ncells rows
// and columns; prescribed-strength reduction is a separate step (Reduce).
func (a *Assembler) Build(uinfs [][]float64, da, db [][]float64) (G [][]float64, rhs []float64, err error) {
	b := a.Body
	ncells := b.Ncells()
	if err = checkRows(uinfs, ncells, "uinfs"); err != nil {
		return
	}
	nsh := len(b.Shedding)
	if err = checkRows(da, nsh, "da"); err != nil {
		return
	}
	if err = checkRows(db, nsh, "db"); err != nil {
		return
	}

	msh := b.Msh
	G = la.MatAlloc(ncells, ncells)
	rhs = make([]float64, ncells)

	scratch := make([]int, 4)
	outVec := make([][]float64, ncells)
	for i := range outVec {
		outVec[i] = make([]float64, 3)
	}

	for j := 0; j < ncells; j++ {
		n, errc := msh.GetCellT(j, scratch)
		if errc != nil {
			err = errc
			return
		}
		for i := range outVec {
			outVec[i][0], outVec[i][1], outVec[i][2] = 0, 0, 0
		}
		if err = kernel.UVortexRing(msh.Verts, scratch[:n], 1.0, a.cps, outVec, a.ctl); err != nil {
			return
		}
		for i := 0; i < ncells; i++ {
			G[i][j] += dot3(outVec[i], a.normals[i])
		}
	}

	for i := 0; i < ncells; i++ {
		rhs[i] = -dot3(uinfs[i], a.normals[i])
	}

	if err = a.foldWakes(G, da, db); err != nil {
		return
	}
	if a.Verbose {
		io.Pf(">> Build: assembled %d x %d influence matrix, folded %d wake(s)\n", ncells, ncells, nsh)
	}
	return
}

// foldWakes adds, per shedding record, the horseshoe influence of unit wake
// circulation into the upper (and, when partnered, lower) columns of G, per
// spec.md §4.3's wake-folding rule.
func (a *Assembler) foldWakes(G [][]float64, da, db [][]float64) error {
	b := a.Body
	ncells := b.Ncells()
	outVec := make([][]float64, ncells)
	for i := range outVec {
		outVec[i] = make([]float64, 3)
	}
	for k, s := range b.Shedding {
		teIdx := []int{s.NAUpper, s.NBUpper}

		for i := range outVec {
			outVec[i][0], outVec[i][1], outVec[i][2] = 0, 0, 0
		}
		if err := kernel.USemiInfiniteHorseshoe(b.Msh.Verts, teIdx, da[k], db[k], 1.0, a.cps, outVec, a.ctl); err != nil {
			return err
		}
		for i := 0; i < ncells; i++ {
			G[i][s.PUpper] += dot3(outVec[i], a.normals[i])
		}

		if s.PLower == -1 {
			continue
		}
		for i := range outVec {
			outVec[i][0], outVec[i][1], outVec[i][2] = 0, 0, 0
		}
		if err := kernel.USemiInfiniteHorseshoe(b.Msh.Verts, teIdx, db[k], da[k], 1.0, a.cps, outVec, a.ctl); err != nil {
			return err
		}
		for i := 0; i < ncells; i++ {
			G[i][s.PLower] += dot3(outVec[i], a.normals[i])
		}
	}
	return nil
}

// Reduce moves every prescribed strength's column contribution to the
// right-hand side and strikes that column, returning the reduced matrix,
// the adjusted RHS, and the kept column indices in increasing order (so
// reduced column c corresponds to original panel keep[c]).
func Reduce(G [][]float64, rhs []float64, prescribed []Prescribed) (Gred [][]float64, rhsAdj []float64, keep []int, err error) {
	ncells := len(G)
	sorted := make([]Prescribed, len(prescribed))
	copy(sorted, prescribed)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	struck := make(map[int]bool, len(sorted))
	for _, p := range sorted {
		if p.Index < 0 || p.Index >= ncells {
			err = chk.Err("prescribed index %d out of range [0,%d)", p.Index, ncells)
			return
		}
		struck[p.Index] = true
	}

	rhsAdj = make([]float64, ncells)
	copy(rhsAdj, rhs)
	for _, p := range sorted {
		for i := 0; i < ncells; i++ {
			rhsAdj[i] -= G[i][p.Index] * p.Value
		}
	}

	keep = make([]int, 0, ncells-len(struck))
	for j := 0; j < ncells; j++ {
		if !struck[j] {
			keep = append(keep, j)
		}
	}

	Gred = la.MatAlloc(ncells, len(keep))
	for i := 0; i < ncells; i++ {
		for c, j := range keep {
			Gred[i][c] = G[i][j]
		}
	}
	return
}

// NormalEquations forms Gls = Gred^T Gred and bls = Gred^T rhsAdj (spec.md
// §4.3). gosl/la has no bare two-matrix transpose-multiply (only the fused
// three-matrix tr(B)*D*B form used for stiffness assembly), so Gls is
// accumulated by a direct loop; bls reuses la.MatTrVecMulAdd.
func NormalEquations(Gred [][]float64, rhsAdj []float64) (Gls [][]float64, bls []float64) {
	ncells := len(Gred)
	ncols := 0
	if ncells > 0 {
		ncols = len(Gred[0])
	}
	Gls = la.MatAlloc(ncols, ncols)
	for c1 := 0; c1 < ncols; c1++ {
		for c2 := 0; c2 < ncols; c2++ {
			var sum float64
			for i := 0; i < ncells; i++ {
				sum += Gred[i][c1] * Gred[i][c2]
			}
			Gls[c1][c2] = sum
		}
	}
	bls = make([]float64, ncols)
	la.MatTrVecMulAdd(bls, 1.0, Gred, rhsAdj)
	return
}

// ExportTriplet copies G into a gosl/la.Triplet for diagnostic export (e.g.
// dumping the assembled system to inspect conditioning or sparsity pattern
// outside this package), mirroring the teacher's own Kb *la.Triplet Jacobian
// storage. G is genuinely dense here — every panel influences every control
// point — so this is a debug/interop convenience, not a performance path;
// entries whose magnitude is at or below zeroTol are skipped so the resulting
// triplet at least reports a meaningful sparsity pattern when Controls.Cutoff
// has zeroed out contributions.
func ExportTriplet(G [][]float64, zeroTol float64) *la.Triplet {
	n := len(G)
	nnzMax := n * n
	t := new(la.Triplet)
	t.Init(n, n, nnzMax)
	for i, row := range G {
		for j, v := range row {
			if math.Abs(v) > zeroTol {
				t.Put(i, j, v)
			}
		}
	}
	return t
}

// Reinject scatters a reduced solution vector xred (indexed 0..len(keep)-1)
// back into the original ncells-length strength vector, filling prescribed
// indices with their fixed values.
func Reinject(ncells int, keep []int, xred []float64, prescribed []Prescribed) []float64 {
	strength := make([]float64, ncells)
	for _, p := range prescribed {
		strength[p.Index] = p.Value
	}
	for c, j := range keep {
		strength[j] = xred[c]
	}
	return strength
}

func dot3(a, b []float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func checkRows(m [][]float64, want int, name string) error {
	if len(m) != want {
		return chk.Err("%s must have %d rows; got %d", name, want, len(m))
	}
	for i, row := range m {
		if len(row) != 3 {
			return chk.Err("%s[%d] must have 3 components; got %d", name, i, len(row))
		}
	}
	return nil
}
