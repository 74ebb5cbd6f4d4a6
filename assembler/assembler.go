// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package assembler builds the global influence operator:
// a dense block-triangular mapping from per-triangle Burgers DOFs to the
// traction/displacement residual at every triangle's own boundary
// conditions, plus the right-hand side driven by prescribed BC values and
// remote stress.
package assembler

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/ddm/geom"
	"github.com/cpmech/ddm/kernel"
	"github.com/cpmech/ddm/model"
)

// Operator is the dense 3N x 3N influence matrix A such that A·b = r,
// stored as 3N row slices (gosl/la's dense-matrix convention); block A_{ij}
// occupies rows 3i..3i+2 and columns 3j..3j+2.
type Operator struct {
	N   int         // number of triangles
	Mat [][]float64 // 3N x 3N, row = residual DOF, col = Burgers DOF
}

// Block returns the 3x3 sub-block A_{ij}.
func (o *Operator) Block(i, j int) (blk [3][3]float64) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			blk[r][c] = o.Mat[3*i+r][3*j+c]
		}
	}
	return
}

// SetBlock writes the 3x3 sub-block A_{ij}.
func (o *Operator) SetBlock(i, j int, blk [3][3]float64) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			o.Mat[3*i+r][3*j+c] = blk[r][c]
		}
	}
}

// MulVec computes A·b.
func (o *Operator) MulVec(b []float64) []float64 {
	r := make([]float64, len(b))
	la.MatVecMul(r, 1, o.Mat, b)
	return r
}

// Assembler builds Operator and the right-hand side for a Model.
type Assembler struct {
	Model *model.Model
	Kern  *kernel.Kernel
	Delta float64 // D±-offset distance, default 1e-8 of the model's bounding size
}

// New returns an Assembler for m using kern as the elastic influence kernel.
func New(m *model.Model, kern *kernel.Kernel) *Assembler {
	return &Assembler{Model: m, Kern: kern}
}

// Operators bundles the BC-projected operator A used to drive the residual
// to zero with the pure traction operator Tr used by constraints, which
// need the actual local traction vector regardless of which axis carries
// a displacement BC.
type Operators struct {
	A  *Operator
	Tr *Operator
}

// Build constructs the dense influence operators. Model.Build must have
// been called (or is called here if the model was never built).
func (a *Assembler) Build() (*Operators, error) {
	if a.Model.IsDirty() {
		if err := a.Model.Build(); err != nil {
			return nil, err
		}
	}
	tris := a.Model.AllTriangles()
	n := len(tris)
	if n == 0 {
		return nil, chk.Err("cannot assemble an empty model")
	}
	delta := a.Delta
	if delta <= 0 {
		delta = 1e-8 * a.modelSize(tris)
	}

	op := &Operator{N: n, Mat: la.MatAlloc(3*n, 3*n)}
	tr := &Operator{N: n, Mat: la.MatAlloc(3*n, 3*n)}

	basis := [3]geom.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, ti := range tris {
		evalPoint := ti.Tri.Centroid
		for j, tj := range tris {
			var blk, blkTr [3][3]float64
			for k := 0; k < 3; k++ { // unit Burgers along local axis k of triangle j
				var u, t geom.Vec3
				if i == j {
					// self-influence: average the D+/D- offset evaluation to
					// approximate the centroid limit.
					pPlus := ti.Tri.Offset(delta)
					pMinus := ti.Tri.Offset(-delta)
					tPlus := a.Kern.Traction(tj.Tri, basis[k], pPlus, ti.Tri.Frame.N)
					tMinus := a.Kern.Traction(tj.Tri, basis[k], pMinus, ti.Tri.Frame.N)
					t = geom.Scale(geom.Add(tPlus, tMinus), 0.5)
					u = ti.Tri.Frame.ToGlobal(basis[k]) // displacement jump at the element itself is the unit Burgers vector
				} else {
					t = a.Kern.Traction(tj.Tri, basis[k], evalPoint, ti.Tri.Frame.N)
					u = a.Kern.Displacement(tj.Tri, basis[k], evalPoint)
				}
				uLocal := ti.Tri.Frame.ToLocal(u)
				tLocal := ti.Tri.Frame.ToLocal(t)
				for row := 0; row < 3; row++ {
					blkTr[row][k] = tLocal[row]
					if ti.BC[row].Type == model.Traction {
						blk[row][k] = tLocal[row]
					} else {
						blk[row][k] = uLocal[row]
					}
				}
			}
			op.SetBlock(i, j, blk)
			tr.SetBlock(i, j, blkTr)
		}
	}
	return &Operators{A: op, Tr: tr}, nil
}

// RHS builds the right-hand side (target residual) for the current
// boundary-condition values and remote fields
// not require a matrix rebuild: callers solving with new BC values reuse
// the Operator from Build and recompute only this vector.
func (a *Assembler) RHS() ([]float64, error) {
	tris := a.Model.AllTriangles()
	n := len(tris)
	if n == 0 {
		return nil, chk.Err("cannot build right-hand side for an empty model")
	}
	rhs := make([]float64, 3*n)
	for i, ti := range tris {
		c := ti.Tri.Centroid
		var remoteSig [6]float64
		if a.Model.Remotes != nil {
			remoteSig = a.Model.Remotes.Stress(c[0], c[1], c[2])
		}
		remoteTraction := tractionFromTensor(remoteSig, ti.Tri.Frame.N)
		remoteLocal := ti.Tri.Frame.ToLocal(remoteTraction)
		for axis := 0; axis < 3; axis++ {
			bc := ti.BC[axis]
			target := bc.Value(c[0], c[1], c[2])
			if bc.Type == model.Traction {
				target -= remoteLocal[axis]
			}
			rhs[3*ti.Index+axis] = target
		}
	}
	return rhs, nil
}

// RemoteTractionLocal returns the remote-stress-induced traction on
// triangle i's own centroid, expressed in its local frame; solver adds
// this to Tr·b to get the absolute local traction a constraint inspects.
func (a *Assembler) RemoteTractionLocal(ti *model.SurfTriangle) geom.Vec3 {
	c := ti.Tri.Centroid
	var remoteSig [6]float64
	if a.Model.Remotes != nil {
		remoteSig = a.Model.Remotes.Stress(c[0], c[1], c[2])
	}
	return ti.Tri.Frame.ToLocal(tractionFromTensor(remoteSig, ti.Tri.Frame.N))
}

func tractionFromTensor(s [6]float64, m geom.Vec3) geom.Vec3 {
	return geom.Vec3{
		s[0]*m[0] + s[1]*m[1] + s[2]*m[2],
		s[1]*m[0] + s[3]*m[1] + s[4]*m[2],
		s[2]*m[0] + s[4]*m[1] + s[5]*m[2],
	}
}

func (a *Assembler) modelSize(tris []*model.SurfTriangle) float64 {
	var lo, hi geom.Vec3
	first := true
	for _, t := range tris {
		for _, v := range t.Tri.V {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			for k := 0; k < 3; k++ {
				lo[k] = math.Min(lo[k], v[k])
				hi[k] = math.Max(hi[k], v[k])
			}
		}
	}
	size := 0.0
	for k := 0; k < 3; k++ {
		size = math.Max(size, hi[k]-lo[k])
	}
	if size <= 0 {
		return 1
	}
	return size
}
