// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package material implements the homogeneous isotropic linear-elastic
// material used by the displacement-discontinuity kernel: Young's modulus,
// Poisson's ratio and the derived Lamé constants.
package material

import (
	"github.com/cpmech/gosl/chk"
)

// Elastic holds the constants of a homogeneous isotropic linear-elastic
// material. Only one canonical pair needs to be supplied at construction
// time; the remaining constants are derived the way SmallElasticity.Init
// derives them for the {E,nu}, {K,G} and {l,G} pairs.
type Elastic struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's ratio
	Rho float64 // density (stored; not read by any computation in this module)
	Mu  float64 // shear modulus G == μ
	Lam float64 // Lamé's first parameter λ
	K   float64 // bulk modulus
}

// NewFromEnu builds an Elastic material from Young's modulus and Poisson's ratio.
func NewFromEnu(E, nu, rho float64) (o *Elastic, err error) {
	if nu <= -1.0 || nu >= 0.5 {
		return nil, chk.Err("Poisson's ratio must be in (-1, 1/2); got nu=%g", nu)
	}
	if E <= 0.0 {
		return nil, chk.Err("Young's modulus must be positive; got E=%g", E)
	}
	o = &Elastic{E: E, Nu: nu, Rho: rho}
	o.Mu = calcGFromEnu(E, nu)
	o.Lam = calcLFromEnu(E, nu)
	o.K = calcKFromEnu(E, nu)
	return o, nil
}

// NewFromKG builds an Elastic material from the bulk and shear moduli.
func NewFromKG(K, G, rho float64) (o *Elastic, err error) {
	if G <= 0.0 || K <= 0.0 {
		return nil, chk.Err("K and G must be positive; got K=%g, G=%g", K, G)
	}
	nu := calcNuFromKG(K, G)
	E := calcEFromKG(K, G)
	if nu <= -1.0 || nu >= 0.5 {
		return nil, chk.Err("derived Poisson's ratio out of range (-1, 1/2); got nu=%g", nu)
	}
	o = &Elastic{E: E, Nu: nu, Rho: rho, Mu: G, K: K}
	o.Lam = calcLFromKG(K, G)
	return o, nil
}

// NewFromLameG builds an Elastic material from Lamé's first parameter and the shear modulus.
func NewFromLameG(lam, G, rho float64) (o *Elastic, err error) {
	if G <= 0.0 {
		return nil, chk.Err("G must be positive; got G=%g", G)
	}
	E := calcEFromLG(lam, G)
	nu := calcNuFromLG(lam, G)
	if nu <= -1.0 || nu >= 0.5 {
		return nil, chk.Err("derived Poisson's ratio out of range (-1, 1/2); got nu=%g", nu)
	}
	o = &Elastic{E: E, Nu: nu, Rho: rho, Mu: G, Lam: lam}
	o.K = calcKFromLG(lam, G)
	return o, nil
}

// Stress computes σ = λ·tr(ε)·I + 2μ·ε (engineer convention, tension positive)
// given the symmetric strain tensor in [xx,xy,xz,yy,yz,zz] order.
func (o *Elastic) Stress(eps [6]float64) (sig [6]float64) {
	tr := eps[0] + eps[3] + eps[5]
	sig[0] = o.Lam*tr + 2*o.Mu*eps[0]
	sig[1] = 2 * o.Mu * eps[1]
	sig[2] = 2 * o.Mu * eps[2]
	sig[3] = o.Lam*tr + 2*o.Mu*eps[3]
	sig[4] = 2 * o.Mu * eps[4]
	sig[5] = o.Lam*tr + 2*o.Mu*eps[5]
	return
}

// converters, grounded on mdl/solid.SmallElasticity's {E,nu} <-> {K,G} <-> {l,G} pairs ///////////

func calcLFromEnu(E, nu float64) float64 { return E * nu / ((1.0 + nu) * (1.0 - 2.0*nu)) }
func calcGFromEnu(E, nu float64) float64 { return E / (2.0 * (1.0 + nu)) }
func calcKFromEnu(E, nu float64) float64 { return E / (3.0 * (1.0 - 2.0*nu)) }

func calcEFromKG(K, G float64) float64  { return 9.0 * K * G / (3.0*K + G) }
func calcNuFromKG(K, G float64) float64 { return (3.0*K - 2.0*G) / (6.0*K + 2.0*G) }
func calcLFromKG(K, G float64) float64  { return K - 2.0*G/3.0 }

func calcEFromLG(l, G float64) float64  { return G * (3.0*l + 2.0*G) / (l + G) }
func calcNuFromLG(l, G float64) float64 { return 0.5 * l / (l + G) }
func calcKFromLG(l, G float64) float64  { return l + 2.0*G/3.0 }
