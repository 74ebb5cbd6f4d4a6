// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ddm/geom"
	"github.com/cpmech/ddm/material"
)

func unitSurface(tst *testing.T) *Surface {
	verts := []geom.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	surf, err := NewSurface(verts, [][3]int{{0, 1, 2}})
	if err != nil {
		tst.Fatalf("NewSurface failed: %v", err)
	}
	return surf
}

func TestBuildAssignsCanonicalDOFOrder(tst *testing.T) {
	chk.PrintTitle("Model.Build assigns canonical DOF order")
	mat, err := material.NewFromEnu(1, 0.25, 0)
	if err != nil {
		tst.Fatalf("material failed: %v", err)
	}
	m := NewModel(mat, false)
	m.AddSurface(unitSurface(tst))
	m.AddSurface(unitSurface(tst))
	if err := m.Build(); err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	if m.Surfaces[0].Triangles[0].Index != 0 {
		tst.Errorf("expected first triangle index 0, got %d", m.Surfaces[0].Triangles[0].Index)
	}
	if m.Surfaces[1].Triangles[0].Index != 1 {
		tst.Errorf("expected second surface's triangle index 1, got %d", m.Surfaces[1].Triangles[0].Index)
	}
	if m.NumDOF() != 6 {
		tst.Errorf("expected 6 DOF for 2 triangles, got %d", m.NumDOF())
	}
}

func TestIsDirtyDetectsBCTypeChange(tst *testing.T) {
	chk.PrintTitle("IsDirty detects a BC-type change after Build")
	mat, err := material.NewFromEnu(1, 0.25, 0)
	if err != nil {
		tst.Fatalf("material failed: %v", err)
	}
	m := NewModel(mat, false)
	surf := unitSurface(tst)
	m.AddSurface(surf)
	if err := m.Build(); err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	if m.IsDirty() {
		tst.Errorf("expected clean model immediately after Build")
	}
	if err := surf.SetBC(0, AxisDip, Displacement, Const(0)); err != nil {
		tst.Errorf("SetBC failed: %v", err)
		return
	}
	if !m.IsDirty() {
		tst.Errorf("expected model to be dirty after changing a BC type")
	}
}

func TestBuildRejectsEmptyModel(tst *testing.T) {
	chk.PrintTitle("Build rejects a model with no surfaces")
	mat, err := material.NewFromEnu(1, 0.25, 0)
	if err != nil {
		tst.Fatalf("material failed: %v", err)
	}
	m := NewModel(mat, false)
	if err := m.Build(); err == nil {
		tst.Errorf("expected an error building an empty model")
	}
}
