// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package constraint implements the per-triangle projection hooks:
// Coulomb friction, a minimum-displacement clamp, and user-supplied
// traction/displacement projections. Each constraint has the uniform
// (b,t)->(b,t) signature of model.Constraint so that Solver never
// switches on concrete kind, the same way an elastoplastic model is
// driven through one Update interface regardless of yield-surface shape.
package constraint

import (
	"math"

	"github.com/cpmech/ddm/geom"
	"github.com/cpmech/ddm/model"
)

// Coulomb implements the nonlinear (or linearized-pyramid) Coulomb
// friction law: stick if the tangential traction is
// within the friction cone, else slide and rescale to the cone's
// boundary, adjusting the Burgers vector via the diagonal block inverse.
type Coulomb struct {
	MuF      float64 // friction coefficient
	Cohesion float64 // cohesion C
	Linear   bool    // true: 4-facet pyramid instead of the circular cone
}

// Project implements model.Constraint.
func (o Coulomb) Project(st *model.SurfTriangle, bCand, tCand geom.Vec3, blockInv func(geom.Vec3) geom.Vec3) (b, t geom.Vec3) {
	sigN := tCand[0] // traction component along ê_n (tension positive)
	tau := geom.Vec3{0, tCand[1], tCand[2]}
	tauNorm := tangentialNorm(tau, o.Linear)
	tauMax := math.Max(0, -sigN*o.MuF+o.Cohesion)
	if tauNorm <= tauMax || tauNorm == 0 {
		// stick: keep the pre-slip tangential Burgers, accept the candidate traction
		b = geom.Vec3{bCand[0], st.Burgers[1], st.Burgers[2]}
		t = tCand
		return
	}
	// slide: scale the tangential traction onto the cone/pyramid boundary
	scale := tauMax / tauNorm
	t = geom.Vec3{sigN, tau[1] * scale, tau[2] * scale}
	b = blockInv(t)
	return
}

func tangentialNorm(tau geom.Vec3, linear bool) float64 {
	if linear {
		return math.Max(math.Abs(tau[1]), math.Abs(tau[2]))
	}
	return math.Hypot(tau[1], tau[2])
}

// MinDispl clamps the Burgers component on Axis to be >= Value.
type MinDispl struct {
	Axis  model.Axis
	Value float64
}

// Project implements model.Constraint.
func (o MinDispl) Project(st *model.SurfTriangle, bCand, tCand geom.Vec3, blockInv func(geom.Vec3) geom.Vec3) (b, t geom.Vec3) {
	b = bCand
	if b[o.Axis] < o.Value {
		b[o.Axis] = o.Value
	}
	t = tCand
	return
}

// UserTic wraps a user-supplied traction projection
type UserTic struct {
	Fn func(id int, t geom.Vec3) geom.Vec3
}

// Project implements model.Constraint.
func (o UserTic) Project(st *model.SurfTriangle, bCand, tCand geom.Vec3, blockInv func(geom.Vec3) geom.Vec3) (b, t geom.Vec3) {
	t = o.Fn(st.Index, tCand)
	b = blockInv(t)
	return
}

// UserDic wraps a user-supplied displacement (Burgers) projection.
type UserDic struct {
	Fn func(id int, b geom.Vec3) geom.Vec3
}

// Project implements model.Constraint.
func (o UserDic) Project(st *model.SurfTriangle, bCand, tCand geom.Vec3, blockInv func(geom.Vec3) geom.Vec3) (b, t geom.Vec3) {
	b = o.Fn(st.Index, bCand)
	t = tCand
	return
}
