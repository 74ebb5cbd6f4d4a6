// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestElasticConversionsAgree(tst *testing.T) {
	chk.PrintTitle("elastic parameter conversions agree")

	enu, err := NewFromEnu(10.0, 0.25, 2.0)
	if err != nil {
		tst.Errorf("NewFromEnu failed: %v", err)
		return
	}

	kg, err := NewFromKG(enu.K, enu.Mu, 2.0)
	if err != nil {
		tst.Errorf("NewFromKG failed: %v", err)
		return
	}
	chk.Scalar(tst, "E", 1e-10, kg.E, enu.E)
	chk.Scalar(tst, "Nu", 1e-10, kg.Nu, enu.Nu)

	lg, err := NewFromLameG(enu.Lam, enu.Mu, 2.0)
	if err != nil {
		tst.Errorf("NewFromLameG failed: %v", err)
		return
	}
	chk.Scalar(tst, "E", 1e-10, lg.E, enu.E)
	chk.Scalar(tst, "K", 1e-10, lg.K, enu.K)
}

func TestElasticRejectsInvalidNu(tst *testing.T) {
	chk.PrintTitle("elastic rejects invalid nu")
	if _, err := NewFromEnu(10.0, 0.5, 0); err == nil {
		tst.Errorf("expected error for nu=0.5")
	}
	if _, err := NewFromEnu(10.0, -1.5, 0); err == nil {
		tst.Errorf("expected error for nu=-1.5")
	}
}

func TestHookeStressIsotropic(tst *testing.T) {
	chk.PrintTitle("hooke stress under isotropic strain")
	mat, err := NewFromEnu(10.0, 0.25, 0)
	if err != nil {
		tst.Errorf("NewFromEnu failed: %v", err)
		return
	}
	eps := [6]float64{0.01, 0, 0, 0.01, 0, 0.01}
	sig := mat.Stress(eps)
	expected := (mat.Lam*3 + 2*mat.Mu) * 0.01
	chk.Scalar(tst, "sigma_xx", 1e-10, sig[0], expected)
	chk.Scalar(tst, "sigma_xy", 1e-12, sig[1], 0)
}
