// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// GetLinearIndex returns a closure mapping a structured (chordwise, spanwise,
// 1) panel grid index to the linear panel index used by Mesh.Cells, along
// with the grid dimensions gdims=[nchord,nspan,1]. This lets post-processors
// (sectional force integration, in particular) walk a structured panel grid
// without assuming anything about how the mesh stores panels internally; the
// storage order assumed here is chordwise-fastest (panel = is*nchord + ic),
// matching the layout the body's structured wings are built with.
func GetLinearIndex(nchord, nspan int) (lin func(ic, is, it int) int, gdims []int, err error) {
	if nchord <= 0 || nspan <= 0 {
		err = chk.Err("nchord and nspan must be positive; got %d, %d", nchord, nspan)
		return
	}
	gdims = []int{nchord, nspan, 1}
	lin = func(ic, is, it int) int {
		if ic < 0 || ic >= nchord || is < 0 || is >= nspan || it != 0 {
			chk.Panic("structured grid index (%d,%d,%d) out of range for gdims=%v", ic, is, it, gdims)
		}
		return is*nchord + ic
	}
	return
}
