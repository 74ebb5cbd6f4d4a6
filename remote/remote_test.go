// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remote

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestSumIsLinear(tst *testing.T) {
	chk.PrintTitle("remote stress superposition is linear")
	a := Uniform{Sig: [6]float64{1, 0, 0, 2, 0, 3}}
	b := Uniform{Sig: [6]float64{-1, 1, 0, 0, 0, 0}}
	sum := Sum{a, b}
	got := sum.Stress(0, 0, 0)
	want := [6]float64{0, 1, 0, 2, 0, 3}
	for i := range want {
		chk.Scalar(tst, "component", 1e-15, got[i], want[i])
	}
}

func TestAndersonianVerticalIsCompressiveWithDepth(tst *testing.T) {
	chk.PrintTitle("andersonian vertical stress grows compressive with depth")
	a := Andersonian{Rho: 2500, G: 9.81, RatioSH: 1.2, RatioSh: 0.8}
	shallow := a.Stress(0, 0, -10)
	deep := a.Stress(0, 0, -100)
	if shallow[5] >= 0 {
		tst.Errorf("expected compressive (negative) vertical stress, got %g", shallow[5])
	}
	if deep[5] >= shallow[5] {
		tst.Errorf("expected more compressive stress at depth: shallow=%g deep=%g", shallow[5], deep[5])
	}
}

func TestAndersonianAboveSurfaceIsZero(tst *testing.T) {
	chk.PrintTitle("andersonian stress vanishes above the free surface")
	a := Andersonian{Rho: 2500, G: 9.81, RatioSH: 1.2, RatioSh: 0.8}
	sig := a.Stress(0, 0, 5)
	chk.Scalar(tst, "sv", 1e-15, sig[5], 0)
}
