// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the geometric primitives of a flat triangular
// dislocation element: vertices, centroid, unit normal, area and the
// local orthonormal frame (normal, strike, dip) used by the kernel and
// the assembler.
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Vec3 is a plain 3-vector, stored [x,y,z].
type Vec3 [3]float64

// Frame is the local orthonormal basis (ê_n, ê_s, ê_d) of a triangle:
// normal, strike and dip, aligned the way Okada's convention defines them.
type Frame struct {
	N Vec3 // ê_n, unit outward normal
	S Vec3 // ê_s, strike
	D Vec3 // ê_d, dip, chosen with ê_d·ẑ >= 0 for non-horizontal triangles
}

// Triangle holds the three vertices of a flat triangular element and its
// derived invariants. Call NewTriangle to populate the derived fields;
// zero-value Triangles are not valid.
type Triangle struct {
	V        [3]Vec3 // vertex positions
	Centroid Vec3    // c
	Area     float64 // A > 0
	Frame    Frame   // (ê_n, ê_s, ê_d)
}

// NewTriangle builds a Triangle from three vertex positions, computing the
// centroid, unit normal, area and local frame. Returns an error if the
// three vertices are collinear (zero area).
func NewTriangle(v0, v1, v2 Vec3) (o *Triangle, err error) {
	o = &Triangle{V: [3]Vec3{v0, v1, v2}}
	o.Centroid = scale(add(add(v0, v1), v2), 1.0/3.0)
	e1 := sub(v1, v0)
	e2 := sub(v2, v0)
	c := cross(e1, e2)
	cn := norm(c)
	if cn < 1e-15 {
		return nil, chk.Err("triangle has zero area: vertices are collinear or coincident")
	}
	o.Area = 0.5 * cn
	nhat := scale(c, 1.0/cn)
	o.Frame = buildFrame(nhat)
	return o, nil
}

// buildFrame constructs the (ê_n, ê_s, ê_d) orthonormal frame for a given
// unit normal: ê_d lies in the plane containing n̂ and the global vertical
// ẑ with ê_d·ẑ >= 0 for non-horizontal triangles, and ê_s = ê_d × ê_n.
func buildFrame(nhat Vec3) Frame {
	z := Vec3{0, 0, 1}
	// horizontal triangle (n̂ parallel to ẑ): pick an arbitrary in-plane dip axis
	if math.Abs(nhat[0]) < 1e-12 && math.Abs(nhat[1]) < 1e-12 {
		dhat := Vec3{1, 0, 0}
		return Frame{N: nhat, S: cross(dhat, nhat), D: dhat}
	}
	// d̂ = component of ẑ orthogonal to n̂, normalised
	draw := sub(z, scale(nhat, dot(z, nhat)))
	dhat := scale(draw, 1.0/norm(draw))
	if dot(dhat, z) < 0 {
		dhat = scale(dhat, -1)
	}
	shat := cross(dhat, nhat)
	return Frame{N: nhat, S: shat, D: dhat}
}

// ToLocal rotates a global vector into this triangle's local (n,s,d) frame.
func (f Frame) ToLocal(v Vec3) Vec3 {
	return Vec3{dot(v, f.N), dot(v, f.S), dot(v, f.D)}
}

// ToGlobal rotates a local (n,s,d) vector back into the global frame.
func (f Frame) ToGlobal(v Vec3) Vec3 {
	return add(add(scale(f.N, v[0]), scale(f.S, v[1])), scale(f.D, v[2]))
}

// Offset returns the centroid displaced by delta along the outward normal,
// used for the D+/D- self-influence evaluation.
func (o *Triangle) Offset(delta float64) Vec3 {
	return add(o.Centroid, scale(o.Frame.N, delta))
}

// vector helpers, in the plain float64-slice linear
// algebra style (gosl/la.VecDot/VecNorm for the 1-D reductions that already
// have a gosl equivalent; cross product has no gosl counterpart and is
// written out directly, matching gosl/la's own level of abstraction).

func add(a, b Vec3) Vec3           { return Add(a, b) }
func sub(a, b Vec3) Vec3           { return Sub(a, b) }
func scale(a Vec3, s float64) Vec3 { return Scale(a, s) }
func dot(a, b Vec3) float64        { return Dot(a, b) }
func norm(a Vec3) float64          { return Norm(a) }
func cross(a, b Vec3) Vec3         { return Cross(a, b) }

// Add returns a+b.
func Add(a, b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// Scale returns a*s.
func Scale(a Vec3, s float64) Vec3 { return Vec3{a[0] * s, a[1] * s, a[2] * s} }

// Dot returns a.b, via gosl/la.VecDot.
func Dot(a, b Vec3) float64 { return la.VecDot(a[:], b[:]) }

// Norm returns the Euclidean length of a, via gosl/la.VecNorm.
func Norm(a Vec3) float64 { return la.VecNorm(a[:]) }

// Cross returns a×b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
