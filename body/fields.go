// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package body

import "github.com/cpmech/gosl/chk"

// FieldType distinguishes a scalar per-entry field from a vector one.
type FieldType int

const (
	Scalar FieldType = iota
	Vector
)

// FieldLoc distinguishes where a field's entries live.
type FieldLoc int

const (
	AtCell FieldLoc = iota
	AtSystem
	AtNode
)

// Field is one named, typed, located entry of a body's field store. Unit is
// a cosmetic tag only (e.g. "m/s", "Pa") carried through for reporting; it
// plays no part in any computation.
type Field struct {
	Name string
	Type FieldType
	Loc  FieldLoc
	Data interface{}
	Unit string
}

// Fields is a small insertion-ordered association list keyed by name,
// mirroring the teacher's out/out.go output-bucket shape but generalised to
// an arbitrary named record instead of a fixed set of output kinds. Readers
// must treat the returned Data as an immutable view.
type Fields struct {
	order []string
	byName map[string]*Field
}

// NewFields returns an empty field store.
func NewFields() *Fields {
	return &Fields{byName: make(map[string]*Field)}
}

// Add inserts a new field. It is an error to add a name that already exists;
// fields are append-only within a solve (spec: "fields entries are
// append-only within a solve"), so a body is never re-populated in place —
// a fresh store is built and committed atomically instead (see
// LiftingBody.Commit).
func (f *Fields) Add(name string, typ FieldType, loc FieldLoc, data interface{}) error {
	if _, exists := f.byName[name]; exists {
		return chk.Err("field %q already exists; fields are append-only within a solve", name)
	}
	fld := &Field{Name: name, Type: typ, Loc: loc, Data: data}
	f.byName[name] = fld
	f.order = append(f.order, name)
	return nil
}

// AddWithUnit is Add plus a cosmetic unit tag.
func (f *Fields) AddWithUnit(name string, typ FieldType, loc FieldLoc, data interface{}, unit string) error {
	if err := f.Add(name, typ, loc, data); err != nil {
		return err
	}
	f.byName[name].Unit = unit
	return nil
}

// Get returns the field named name and whether it was found.
func (f *Fields) Get(name string) (*Field, bool) {
	fld, ok := f.byName[name]
	return fld, ok
}

// Check reports whether a field named name exists.
func (f *Fields) Check(name string) bool {
	_, ok := f.byName[name]
	return ok
}

// Names returns the field names in insertion order.
func (f *Fields) Names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}
