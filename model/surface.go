// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ddm/geom"
)

// SurfTriangle is one triangular element of a Surface: its geometry, its
// per-axis boundary condition, its current Burgers vector (local frame)
// and the DOF index assigned by Model.Build.
type SurfTriangle struct {
	Tri     *geom.Triangle
	BC      [3]AxisBC
	Burgers geom.Vec3 // current Burgers vector, local (n,s,d) frame
	Index   int        // global triangle index, set by Model.Build
}

// Constraint projects a tentative (Burgers, traction) pair onto the
// admissible set for one triangle
// (Coulomb, MinDispl, UserTic, UserDic) live in package constraint and
// implement this interface; Solver never switches on concrete kind
//. blockInv solves the triangle's own 3x3
// diagonal influence block for the Burgers vector producing a given local
// traction vector, letting a constraint convert a corrected traction back
// into the Burgers vector it implies.
type Constraint interface {
	Project(st *SurfTriangle, bCandidate, tCandidate geom.Vec3, blockInv func(t geom.Vec3) geom.Vec3) (b, t geom.Vec3)
}

// Surface is an ordered list of triangles sharing indexing, plus zero or
// more constraints applied in registration order.
type Surface struct {
	Triangles   []*SurfTriangle
	Constraints []Constraint
}

// NewSurface builds a Surface from a flat vertex array (x,y,z triples) and
// a list of triangle vertex-index triples, assigning the default boundary
// conditions
func NewSurface(vertices []geom.Vec3, indices [][3]int) (o *Surface, err error) {
	o = &Surface{}
	for i, idx := range indices {
		for _, vi := range idx {
			if vi < 0 || vi >= len(vertices) {
				return nil, chk.Err("triangle %d references out-of-range vertex index %d", i, vi)
			}
		}
		tri, e := geom.NewTriangle(vertices[idx[0]], vertices[idx[1]], vertices[idx[2]])
		if e != nil {
			return nil, chk.Err("triangle %d: %v", i, e)
		}
		o.Triangles = append(o.Triangles, &SurfTriangle{Tri: tri, BC: DefaultBCs()})
	}
	return o, nil
}

// SetBC sets the boundary condition on one axis of triangle i.
func (o *Surface) SetBC(i int, axis Axis, typ BCType, value ValueFunc) error {
	if i < 0 || i >= len(o.Triangles) {
		return chk.Err("triangle index %d out of range [0,%d)", i, len(o.Triangles))
	}
	o.Triangles[i].BC[axis] = AxisBC{Type: typ, Value: value}
	return nil
}

// AddConstraint attaches a constraint to this surface; it will be invoked
// for every triangle of the surface, in registration order relative to
// other constraints attached to the same surface.
func (o *Surface) AddConstraint(c Constraint) {
	o.Constraints = append(o.Constraints, c)
}

// Replace swaps this surface's geometry/BCs for a freshly built one,
// invalidating any cached assembler operator. The caller must mark the
// owning Model dirty.
func (o *Surface) Replace(vertices []geom.Vec3, indices [][3]int) error {
	fresh, err := NewSurface(vertices, indices)
	if err != nil {
		return err
	}
	o.Triangles = fresh.Triangles
	return nil
}
