// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ddm/geom"
	"github.com/cpmech/ddm/material"
)

func unitTriangle(tst *testing.T) *geom.Triangle {
	tri, err := geom.NewTriangle(geom.Vec3{0, 0, 0}, geom.Vec3{1, 0, 0}, geom.Vec3{1, 1, 0})
	if err != nil {
		tst.Fatalf("NewTriangle failed: %v", err)
	}
	return tri
}

func TestZeroBurgersGivesZeroField(tst *testing.T) {
	chk.PrintTitle("zero Burgers vector produces a zero displacement field")
	mat, err := material.NewFromEnu(1, 0.25, 0)
	if err != nil {
		tst.Fatalf("material failed: %v", err)
	}
	k := NewKernel(mat, false)
	tri := unitTriangle(tst)
	p := geom.Vec3{5, 3, -2}
	u := k.Displacement(tri, geom.Vec3{}, p)
	for i := 0; i < 3; i++ {
		chk.Scalar(tst, "u component", 1e-14, u[i], 0)
	}
}

func TestDisplacementIsLinearInBurgers(tst *testing.T) {
	chk.PrintTitle("whole-space displacement is linear in the Burgers vector")
	mat, err := material.NewFromEnu(1, 0.25, 0)
	if err != nil {
		tst.Fatalf("material failed: %v", err)
	}
	k := NewKernel(mat, false)
	tri := unitTriangle(tst)
	p := geom.Vec3{3, -1, 2}
	b := geom.Vec3{0.2, -0.1, 0.05}
	u1 := k.Displacement(tri, b, p)
	u2 := k.Displacement(tri, geom.Scale(b, 2), p)
	for i := 0; i < 3; i++ {
		chk.Scalar(tst, "u scales linearly", 1e-9, u2[i], 2*u1[i])
	}
}

func TestDisplacementDecaysWithDistance(tst *testing.T) {
	chk.PrintTitle("whole-space displacement magnitude decays with distance from the source")
	mat, err := material.NewFromEnu(1, 0.25, 0)
	if err != nil {
		tst.Fatalf("material failed: %v", err)
	}
	k := NewKernel(mat, false)
	tri := unitTriangle(tst)
	b := geom.Vec3{0.1, 0, 0}
	near := k.Displacement(tri, b, geom.Vec3{0.5, 0.3, 1})
	far := k.Displacement(tri, b, geom.Vec3{0.5, 0.3, 50})
	if geom.Norm(far) >= geom.Norm(near) {
		tst.Errorf("expected displacement to decay with distance: near=%g far=%g", geom.Norm(near), geom.Norm(far))
	}
}

func TestHalfSpaceTractionIsSuppressedOnFreeSurface(tst *testing.T) {
	chk.PrintTitle("half-space kernel (image source plus harmonic correction) suppresses traction on the free surface relative to an untreated buried source")
	mat, err := material.NewFromEnu(1, 0.25, 0)
	if err != nil {
		tst.Fatalf("material failed: %v", err)
	}
	tri, err := geom.NewTriangle(geom.Vec3{-0.5, -0.5, -2}, geom.Vec3{0.5, -0.5, -2}, geom.Vec3{0, 0.5, -2})
	if err != nil {
		tst.Fatalf("NewTriangle failed: %v", err)
	}
	b := geom.Vec3{0, 0, 0.1}
	mHat := geom.Vec3{0, 0, 1}

	halfSpace := NewKernel(mat, true)
	wholeSpace := NewKernel(mat, false)

	pts := []geom.Vec3{{1, 0, 0}, {0, 1, 0}, {-1, -1, 0}, {2, 0.5, 0}}
	for _, p := range pts {
		hs := halfSpace.Traction(tri, b, p, mHat)
		fs := wholeSpace.Traction(tri, b, p, mHat)
		if geom.Norm(hs) >= geom.Norm(fs) {
			tst.Errorf("at %v: expected half-space traction to be suppressed relative to an untreated buried source, got %g (half-space) >= %g (whole-space)",
				p, geom.Norm(hs), geom.Norm(fs))
		}
	}
}
