// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package remote implements the spatially varying far-field stress used as
// the right-hand-side driver of the boundary-element system. A Remote is a
// polymorphic evaluator object called through an interface; no per-center
// table is precomputed, so the solver evaluates it at each triangle's
// centroid on every sweep.
package remote

import "math"

// Remote evaluates a symmetric far-field stress tensor [xx,xy,xz,yy,yz,zz]
// (engineer convention, tension positive) at an arbitrary point.
type Remote interface {
	Stress(x, y, z float64) (sig [6]float64)
}

// Func adapts a plain function to the Remote interface, the same way
// gosl/fun.Func adapts a callable to an interface expecting a method.
type Func func(x, y, z float64) [6]float64

// Stress implements Remote.
func (f Func) Stress(x, y, z float64) [6]float64 { return f(x, y, z) }

// Uniform is a constant stress field, independent of position.
type Uniform struct {
	Sig [6]float64
}

// Stress implements Remote.
func (o Uniform) Stress(x, y, z float64) [6]float64 { return o.Sig }

// Sum superposes several remotes linearly: "A model may
// hold several [remotes]; their effect sums linearly."
type Sum []Remote

// Stress implements Remote.
func (o Sum) Stress(x, y, z float64) (sig [6]float64) {
	for _, r := range o {
		s := r.Stress(x, y, z)
		for i := range sig {
			sig[i] += s[i]
		}
	}
	return
}

// Andersonian builds a classical Andersonian stress field: a vertical
// principal stress Sv = −ρ·g·depth and two horizontal principal stresses
// SH (maximum) and Sh (minimum), rotated by azimuth Theta (radians,
// measured from the global x axis towards y) to obtain Sxx, Sxy, Syy.
//
// Sign convention, resolved here): z is
// positive up, so depth = -z for z<0 and Sv = ρ·G·(-z) for points below the
// surface; Sv is reported with engineer sign (compressive, i.e. negative)
// when ρ, G > 0, matching the sign of the horizontal stresses built from
// the SH:Sv:Sh ratio convention used in S4
type Andersonian struct {
	Rho   float64 // density
	G     float64 // gravitational acceleration
	RatioSH float64 // SH / Sv
	RatioSh float64 // Sh / Sv
	Theta float64 // azimuth of SH, radians from +x towards +y
}

// Stress implements Remote.
func (o Andersonian) Stress(x, y, z float64) (sig [6]float64) {
	depth := -z
	if depth < 0 {
		depth = 0
	}
	sv := -o.Rho * o.G * depth
	sh := o.RatioSh * sv
	sH := o.RatioSH * sv
	c, s := math.Cos(o.Theta), math.Sin(o.Theta)
	sig[0] = sH*c*c + sh*s*s  // xx
	sig[1] = (sH - sh) * c * s // xy
	sig[3] = sH*s*s + sh*c*c  // yy
	sig[5] = sv               // zz
	return
}
