// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestIdentityIsNoOp(tst *testing.T) {
	chk.PrintTitle("identity filter is a no-op")
	f := NewIdentity()
	v := [3]float64{1, 2, 3}
	got := f.Apply(v)
	for i := range v {
		chk.Scalar(tst, "component", 1e-15, got[i], v[i])
	}
}

func TestPoly3DInverseRoundTrips(tst *testing.T) {
	chk.PrintTitle("poly3d filter composed with its inverse is the identity")
	f := NewPoly3D()
	inv := f.Inverse()
	v := [3]float64{0.1, -2.5, 3.7}
	got := inv.Apply(f.Apply(v))
	for i := range v {
		chk.Scalar(tst, "component", 1e-12, got[i], v[i])
	}
}

func TestSetAxisOrderRejectsNonPermutation(tst *testing.T) {
	chk.PrintTitle("SetAxisOrder rejects a repeated axis")
	f := NewIdentity()
	err := f.SetAxisOrder([3]Axis{Normal, Normal, Dip})
	if err == nil {
		tst.Errorf("expected an error for a non-permutation axis order")
	}
}
