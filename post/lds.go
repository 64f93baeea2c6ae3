// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

const machineEps = 2.220446049250313e-16

// CalcLDS decomposes Ftot onto the orthonormal basis (lhat, dhat, shat),
// returning the three projected vectors (Ftot.lhat)lhat, (Ftot.dhat)dhat,
// (Ftot.shat)shat as out[0], out[1], out[2]. shat defaults to
// cross(lhat,dhat) when nil. The norms of lhat, dhat and a supplied shat are
// validated to within 2 ulps of 1; a defaulted shat is not checked.
func CalcLDS(ftot, lhat, dhat, shat []float64) (out [][]float64, err error) {
	if err = checkUnit("lhat", lhat); err != nil {
		return
	}
	if err = checkUnit("dhat", dhat); err != nil {
		return
	}
	if shat == nil {
		shat = []float64{
			lhat[1]*dhat[2] - lhat[2]*dhat[1],
			lhat[2]*dhat[0] - lhat[0]*dhat[2],
			lhat[0]*dhat[1] - lhat[1]*dhat[0],
		}
	} else if err = checkUnit("shat", shat); err != nil {
		return
	}

	project := func(axis []float64) []float64 {
		c := ftot[0]*axis[0] + ftot[1]*axis[1] + ftot[2]*axis[2]
		return []float64{c * axis[0], c * axis[1], c * axis[2]}
	}
	out = [][]float64{project(lhat), project(dhat), project(shat)}
	return
}

func checkUnit(name string, v []float64) error {
	if len(v) != 3 {
		return chk.Err("CalcLDS: %s must have 3 components; got %d", name, len(v))
	}
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if math.Abs(n-1) > 2*machineEps {
		return chk.Err("CalcLDS: %s must be a unit vector (|norm-1| <= 2 ulps); got norm=%v", name, n)
	}
	return nil
}
