// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ddm/geom"
	"github.com/cpmech/ddm/model"
)

func TestCoulombSticksWithinCone(tst *testing.T) {
	chk.PrintTitle("coulomb sticks when tangential traction is within the cone")
	c := Coulomb{MuF: 0.5, Cohesion: 0}
	st := &model.SurfTriangle{Burgers: geom.Vec3{0, 0.1, 0.2}}
	tCand := geom.Vec3{-10, 1, 0} // compressive normal, small tangential
	b, t := c.Project(st, geom.Vec3{0.01, 0, 0}, tCand, nil)
	chk.Scalar(tst, "b.strike", 1e-15, b[1], st.Burgers[1])
	chk.Scalar(tst, "b.dip", 1e-15, b[2], st.Burgers[2])
	chk.Scalar(tst, "t.normal", 1e-15, t[0], tCand[0])
}

func TestCoulombSlidesBeyondCone(tst *testing.T) {
	chk.PrintTitle("coulomb slides and rescales traction onto the cone boundary")
	c := Coulomb{MuF: 0.5, Cohesion: 0}
	st := &model.SurfTriangle{Burgers: geom.Vec3{0, 0, 0}}
	tCand := geom.Vec3{-10, 10, 0} // tau=10 exceeds tauMax=5
	invCalled := false
	blockInv := func(t geom.Vec3) geom.Vec3 {
		invCalled = true
		return geom.Vec3{0, t[1], t[2]}
	}
	b, t := c.Project(st, geom.Vec3{0, 0, 0}, tCand, blockInv)
	if !invCalled {
		tst.Errorf("expected blockInv to be called on slide")
	}
	chk.Scalar(tst, "tau after slide", 1e-10, t[1], 5.0)
	chk.Scalar(tst, "b.strike from blockInv", 1e-15, b[1], 5.0)
}

func TestMinDisplClampsBelowValue(tst *testing.T) {
	chk.PrintTitle("MinDispl clamps the Burgers component to its floor")
	c := MinDispl{Axis: model.AxisNormal, Value: 0.001}
	st := &model.SurfTriangle{}
	b, _ := c.Project(st, geom.Vec3{-0.5, 0, 0}, geom.Vec3{}, nil)
	chk.Scalar(tst, "b.normal", 1e-15, b[0], 0.001)
}
