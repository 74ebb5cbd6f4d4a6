// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package analyt implements closed-form solutions used to cross-check
// the boundary-element solution: the penny-shaped crack opening under
// uniform remote tension/compression, the seismic-moment identity, and
// the single-triangle self-compliance check, each as a small struct with
// its own constructor-free field literal and a single evaluating method.
package analyt

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// PennyCrack is Sneddon's solution for a circular (penny-shaped) crack of
// radius a in an infinite elastic whole-space, opened by a uniform remote
// normal stress σ acting perpendicular to the crack plane.
//
//           ◁───────── 2a ─────────▷
//        ────────────────────────────   σ (remote, normal to plane)
//                    ⌢⌢⌢⌢⌢⌢
//                   ╱        ╲
//                  │  opening │
//                   ╲        ╱
//                    ⌣⌣⌣⌣⌣⌣
//        ────────────────────────────
type PennyCrack struct {
	A   float64 // crack radius
	Sig float64 // uniform remote normal stress (compression negative)
	E   float64 // Young's modulus
	Nu  float64 // Poisson's ratio
}

// CentralOpening returns the relative normal displacement at the crack's
// centre: 8·(1−ν²)·|σ|·a / (π·E), positive for either sign of σ.
func (o PennyCrack) CentralOpening() float64 {
	if o.E <= 0 {
		chk.Panic("PennyCrack.E must be positive")
	}
	return 8 * (1 - o.Nu*o.Nu) * math.Abs(o.Sig) * o.A / (math.Pi * o.E)
}

// SeismicMoment returns μ·A·Δu, the scalar seismic moment of a surface of
// area A under uniform slip Δu in a material of shear modulus μ.
func SeismicMoment(mu, area, slip float64) float64 {
	return mu * area * math.Abs(slip)
}

// SingleTriangleOpening is the closed-form self-compliance coefficient for
// a single triangular element: under uniform unit normal traction σ in an
// otherwise unconstrained whole-space it opens by 2·(1−ν)·σ/μ at its own
// centroid, independent of the triangle's size or shape (the self-term of
// the Nikkhoo-Walter kernel is scale-invariant).
func SingleTriangleOpening(sigma, nu, mu float64) float64 {
	if mu <= 0 {
		chk.Panic("SingleTriangleOpening: mu must be positive")
	}
	return 2 * (1 - nu) * sigma / mu
}
