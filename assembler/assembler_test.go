// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ddm/geom"
	"github.com/cpmech/ddm/kernel"
	"github.com/cpmech/ddm/material"
	"github.com/cpmech/ddm/model"
)

func oneTriangleModel(tst *testing.T) *model.Model {
	mat, err := material.NewFromEnu(1, 0.25, 0)
	if err != nil {
		tst.Fatalf("material failed: %v", err)
	}
	m := model.NewModel(mat, false)
	verts := []geom.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	surf, err := model.NewSurface(verts, [][3]int{{0, 1, 2}})
	if err != nil {
		tst.Fatalf("NewSurface failed: %v", err)
	}
	if err := surf.SetBC(0, model.AxisNormal, model.Traction, model.Const(1)); err != nil {
		tst.Fatalf("SetBC failed: %v", err)
	}
	m.AddSurface(surf)
	return m
}

func TestBuildProducesSquareOperator(tst *testing.T) {
	chk.PrintTitle("assembler.Build produces a 3Nx3N operator")
	m := oneTriangleModel(tst)
	kern := kernel.NewKernel(m.Mat, false)
	asm := New(m, kern)
	ops, err := asm.Build()
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	if ops.A.N != 1 {
		tst.Errorf("expected N=1, got %d", ops.A.N)
	}
	if len(ops.A.Mat) != 3 || len(ops.A.Mat[0]) != 3 {
		tst.Errorf("expected a 3x3 operator, got %dx%d", len(ops.A.Mat), len(ops.A.Mat[0]))
	}
}

func TestRHSReflectsTractionBC(tst *testing.T) {
	chk.PrintTitle("RHS picks up the prescribed traction value")
	m := oneTriangleModel(tst)
	kern := kernel.NewKernel(m.Mat, false)
	asm := New(m, kern)
	if _, err := asm.Build(); err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	rhs, err := asm.RHS()
	if err != nil {
		tst.Errorf("RHS failed: %v", err)
		return
	}
	chk.Scalar(tst, "rhs[normal]", 1e-15, rhs[0], 1)
}
