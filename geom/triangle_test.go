// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNewTriangleUnitRightAngle(tst *testing.T) {
	chk.PrintTitle("unit right-angle triangle geometry")
	tri, err := NewTriangle(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{1, 1, 0})
	if err != nil {
		tst.Errorf("NewTriangle failed: %v", err)
		return
	}
	chk.Scalar(tst, "area", 1e-15, tri.Area, 0.5)
	chk.Scalar(tst, "centroid.x", 1e-15, tri.Centroid[0], 2.0/3.0)
	chk.Scalar(tst, "normal.z", 1e-15, tri.Frame.N[2], 1.0)
}

func TestNewTriangleDegenerate(tst *testing.T) {
	chk.PrintTitle("degenerate triangle is rejected")
	_, err := NewTriangle(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{2, 0, 0})
	if err == nil {
		tst.Errorf("expected an error for collinear vertices")
	}
}

func TestFrameRoundTrip(tst *testing.T) {
	chk.PrintTitle("frame ToLocal/ToGlobal is a round trip")
	tri, err := NewTriangle(Vec3{0, 0, 0}, Vec3{1, 0.3, 0.1}, Vec3{0.2, 1, 0.4})
	if err != nil {
		tst.Errorf("NewTriangle failed: %v", err)
		return
	}
	v := Vec3{0.7, -0.4, 1.2}
	loc := tri.Frame.ToLocal(v)
	back := tri.Frame.ToGlobal(loc)
	for i := 0; i < 3; i++ {
		chk.Scalar(tst, "round-trip component", 1e-12, back[i], v[i])
	}
}

func TestOffsetMovesAlongNormal(tst *testing.T) {
	chk.PrintTitle("Offset displaces the centroid along the normal")
	tri, err := NewTriangle(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0})
	if err != nil {
		tst.Errorf("NewTriangle failed: %v", err)
		return
	}
	p := tri.Offset(0.01)
	chk.Scalar(tst, "offset.z", 1e-15, p[2], 0.01)
}
