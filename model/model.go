// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package model implements the Model/Surface/Triangle container: it
// aggregates surfaces, remotes and material, and owns the canonical DOF
// numbering that the assembler and solver operate on.
package model

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ddm/material"
	"github.com/cpmech/ddm/remote"
)

// Model owns all Surfaces (which exclusively own Triangles and
// Constraints), the material, the half-space flag and the remote fields.
// Solver and Solution hold non-owning references; they are invalidated
// whenever Model's dirty flag is set.
type Model struct {
	Mat       *material.Elastic
	HalfSpace bool
	Surfaces  []*Surface
	Remotes   remote.Sum

	built     bool
	signature signature
	dirty     bool
}

// signature captures the conditions that force an influence-operator
// rebuild: triangle count, Poisson's ratio, and every triangle's
// per-axis BC type.
type signature struct {
	n     int
	nu    float64
	bcKey string
}

// NewModel builds a Model for the given material and half-space flag.
func NewModel(mat *material.Elastic, halfSpace bool) *Model {
	return &Model{Mat: mat, HalfSpace: halfSpace}
}

// AddSurface appends a surface, in insertion order, to this model.
func (o *Model) AddSurface(s *Surface) {
	o.Surfaces = append(o.Surfaces, s)
	o.MarkDirty()
}

// AddRemote appends a remote stress field; its effect sums linearly with
// any others already present.
func (o *Model) AddRemote(r remote.Remote) {
	o.Remotes = append(o.Remotes, r)
}

// MarkDirty flags the model as requiring a fresh influence-operator build
// on the next solve. Callers must call this after any geometry mutation
// the model cannot detect on its own.
func (o *Model) MarkDirty() { o.dirty = true }

// NumTriangles returns the total number of triangles across all surfaces.
func (o *Model) NumTriangles() int {
	n := 0
	for _, s := range o.Surfaces {
		n += len(s.Triangles)
	}
	return n
}

// NumDOF returns 3 * NumTriangles, the size of the global system.
func (o *Model) NumDOF() int { return 3 * o.NumTriangles() }

// Build assigns the canonical DOF index to every triangle (surface
// insertion order, then intra-surface order) and validates configuration
// invariants. It is idempotent and cheap when the model is not dirty.
func (o *Model) Build() error {
	if len(o.Surfaces) == 0 {
		return chk.Err("model has no surfaces")
	}
	if o.Mat == nil {
		return chk.Err("model has no material")
	}
	idx := 0
	for si, s := range o.Surfaces {
		if len(s.Triangles) == 0 {
			return chk.Err("surface %d has no triangles", si)
		}
		for ti, st := range s.Triangles {
			if st.Tri.Area <= 0 {
				return chk.Err("surface %d triangle %d has non-positive area", si, ti)
			}
			for a := 0; a < 3; a++ {
				if st.BC[a].Value == nil {
					return chk.Err("surface %d triangle %d axis %d has no boundary-condition value", si, ti, a)
				}
			}
			st.Index = idx
			idx++
		}
	}
	o.built = true
	o.signature = o.currentSignature()
	o.dirty = false
	return nil
}

// IsDirty reports whether the influence operator must be rebuilt: either
// the caller explicitly marked the model dirty, the model was never
// built, or one of the auto-detected triggers
// since the last Build (triangle count, BC type, Poisson's ratio).
func (o *Model) IsDirty() bool {
	if !o.built || o.dirty {
		return true
	}
	return o.currentSignature() != o.signature
}

func (o *Model) currentSignature() signature {
	var key []byte
	n := 0
	for _, s := range o.Surfaces {
		for _, st := range s.Triangles {
			n++
			for a := 0; a < 3; a++ {
				key = append(key, byte(st.BC[a].Type))
			}
		}
	}
	return signature{n: n, nu: o.Mat.Nu, bcKey: string(key)}
}

// AllTriangles returns every triangle across every surface, in canonical
// DOF order. Build must have been called first.
func (o *Model) AllTriangles() []*SurfTriangle {
	var all []*SurfTriangle
	for _, s := range o.Surfaces {
		all = append(all, s.Triangles...)
	}
	return all
}

// TriangleConstraints returns the constraints attached to the surface
// owning triangle with the given global index, in registration order.
func (o *Model) TriangleConstraints(index int) []Constraint {
	n := 0
	for _, s := range o.Surfaces {
		if index < n+len(s.Triangles) {
			return s.Constraints
		}
		n += len(s.Triangles)
	}
	return nil
}
