// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyt

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPennyCrackCentralOpening(tst *testing.T) {
	chk.PrintTitle("penny-crack central opening matches Sneddon's formula")
	c := PennyCrack{A: 1, Sig: -1, E: 1, Nu: 0.25}
	got := c.CentralOpening()
	want := 8 * (1 - 0.25*0.25) / 3.141592653589793
	chk.Scalar(tst, "central opening", 1e-12, got, want)
}

func TestSeismicMomentFormula(tst *testing.T) {
	chk.PrintTitle("seismic moment formula")
	chk.Scalar(tst, "M0", 1e-15, SeismicMoment(30e9, 1e6, 0.5), 30e9*1e6*0.5)
}

func TestSingleTriangleOpeningSign(tst *testing.T) {
	chk.PrintTitle("single-triangle opening is positive for tensile traction")
	got := SingleTriangleOpening(1, 0.25, 1)
	if got <= 0 {
		tst.Errorf("expected a positive opening, got %g", got)
	}
}
