// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package filter implements BurgerFilter, the pure boundary convention
// transform: a permutation of the (normal,strike,dip) axes
// composed with a per-axis sign flip.
package filter

import "github.com/cpmech/gosl/chk"

// Axis indexes a local triangle axis: 0=normal, 1=strike, 2=dip.
type Axis int

const (
	Normal Axis = iota
	Strike
	Dip
)

// BurgerFilter permutes and sign-flips a Burgers (or traction) vector
// between two local-axis conventions. Only the method-based contract is
// exposed: mutable axisOrder/axisRevert
// properties are not part of this API).
type BurgerFilter struct {
	order [3]Axis
	flip  [3]bool
}

// NewIdentity returns the default filter: identity permutation, no flips,
// i.e. the Okada convention already used as the storage order.
func NewIdentity() *BurgerFilter {
	return &BurgerFilter{order: [3]Axis{Normal, Strike, Dip}}
}

// NewPoly3D returns the preset Poly3D convention: π=(dip,strike,normal)
// with flip=(true,false,false).
func NewPoly3D() *BurgerFilter {
	return &BurgerFilter{order: [3]Axis{Dip, Strike, Normal}, flip: [3]bool{true, false, false}}
}

// SetAxisOrder sets the input axis for each output slot i: order[i] names
// which axis of the input vector maps to output slot i.
func (o *BurgerFilter) SetAxisOrder(order [3]Axis) (err error) {
	var seen [3]bool
	for _, a := range order {
		if a < Normal || a > Dip {
			return chk.Err("invalid axis %d in axis order", a)
		}
		if seen[a] {
			return chk.Err("axis order must be a permutation; axis %d repeated", a)
		}
		seen[a] = true
	}
	o.order = order
	return nil
}

// SetAxisRevert sets which output slots get their sign flipped.
func (o *BurgerFilter) SetAxisRevert(flip [3]bool) {
	o.flip = flip
}

// Apply returns a permuted and sign-flipped copy of v; v itself is passed
// by value and is not modified.
func (o *BurgerFilter) Apply(v [3]float64) (out [3]float64) {
	for i := 0; i < 3; i++ {
		out[i] = v[o.order[i]]
		if o.flip[i] {
			out[i] = -out[i]
		}
	}
	return
}

// Inverse returns the filter that undoes Apply; applying Inverse after
// Apply (or vice versa for the Poly3D preset applied to Okada and back)
// is the identity
func (o *BurgerFilter) Inverse() *BurgerFilter {
	inv := &BurgerFilter{}
	for i, a := range o.order {
		inv.order[a] = Axis(i)
		inv.flip[a] = o.flip[i]
	}
	return inv
}
