// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/ddm/geom"
	"github.com/cpmech/ddm/model"
)

// runBlockRelax drives the flat Burgers vector to a fixed point of the
// per-triangle constraint projections via Gauss-Seidel (jacobi=false,
// groups=nil: every triangle in its own group, so each update is written
// immediately and read by the triangles after it), Jacobi (jacobi=true:
// every block reads the previous sweep's values), or colored Seidel
// (groups holds independent-triangle batches; every triangle of a batch
// reads the values from before the batch and the batch's results are
// written together; the updates of a batch run one after another on the
// calling goroutine).
func (o *Solver) runBlockRelax(rhs []float64, jacobi bool, groups [][]int) Result {
	tris := o.Model.AllTriangles()
	n := len(tris)
	order := groups
	if order == nil {
		order = make([][]int, n)
		for i := range order {
			order[i] = []int{i}
		}
	}

	hist := make([]float64, 0, o.Opts.KMax)
	r0 := residualNorm(o.ops.A, o.burgers, rhs)
	if r0 == 0 {
		r0 = 1
	}
	nonDecreasing := 0
	prevResidual := r0

	bestBurgers := append([]float64(nil), o.burgers...)
	bestRes := r0

	iter := 0
	for ; iter < o.Opts.KMax; iter++ {
		if o.Obs.StopRequested() {
			return Result{Status: Stopped, Iterations: iter, ResidualHistory: hist}
		}
		var source []float64
		if jacobi {
			source = append([]float64(nil), o.burgers...)
		} else {
			source = o.burgers
		}

		for _, group := range order {
			next := make(map[int]geom.Vec3, len(group))
			for _, i := range group {
				next[i] = o.updateTriangle(tris[i], rhs, source)
			}
			for i, b := range next {
				o.burgers[3*i+0] = b[0]
				o.burgers[3*i+1] = b[1]
				o.burgers[3*i+2] = b[2]
				tris[i].Burgers = b
			}
		}

		res := residualNorm(o.ops.A, o.burgers, rhs)
		ratio := res / r0
		hist = append(hist, res)
		o.Obs.OnProgress(Progress{Iteration: iter, Residual: ratio, Phase: PhaseSolve})

		if res < bestRes {
			bestRes = res
			bestBurgers = append(bestBurgers[:0], o.burgers...)
		}

		if ratio <= o.Opts.Eps {
			return Result{Status: Converged, Iterations: iter + 1, ResidualNorm: res, ResidualRatio: ratio, ResidualHistory: hist}
		}
		if res >= prevResidual {
			nonDecreasing++
			if nonDecreasing >= o.Opts.KDiv {
				return Result{Status: Diverged, Iterations: iter + 1, ResidualNorm: res, ResidualRatio: ratio, ResidualHistory: hist}
			}
		} else {
			nonDecreasing = 0
		}
		prevResidual = res
	}
	// K_max exhausted without convergence or divergence: restore the
	// best-so-far iterate rather than whatever the last sweep produced.
	copy(o.burgers, bestBurgers)
	for _, ti := range tris {
		i := ti.Index
		ti.Burgers = geom.Vec3{o.burgers[3*i+0], o.burgers[3*i+1], o.burgers[3*i+2]}
	}
	return Result{Status: Exhausted, Iterations: iter, ResidualNorm: bestRes, ResidualRatio: bestRes / r0, ResidualHistory: hist}
}

// updateTriangle computes the constraint-projected Burgers vector for one
// triangle given the current estimate (source) of every other triangle's
// Burgers vector sweep rule: solve the diagonal block
// for the tentative Burgers candidate, evaluate the tentative traction from
// Tr, run it through the triangle's constraints in registration order, and
// keep whichever (b,t) the last constraint returns.
func (o *Solver) updateTriangle(ti *model.SurfTriangle, rhs, source []float64) geom.Vec3 {
	i := ti.Index
	diag := o.ops.A.Block(i, i)

	var residual geom.Vec3
	for a := 0; a < 3; a++ {
		residual[a] = rhs[3*i+a]
	}
	trRow := o.ops.Tr
	var tLocal geom.Vec3 = o.Asm.RemoteTractionLocal(ti)
	n := len(o.Model.AllTriangles())
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		bj := geom.Vec3{source[3*j+0], source[3*j+1], source[3*j+2]}
		ablk := o.ops.A.Block(i, j)
		residual = geom.Sub(residual, matVec3(ablk, bj))
		trblk := trRow.Block(i, j)
		tLocal = geom.Add(tLocal, matVec3(trblk, bj))
	}

	bCand, ok := solve3x3(diag, residual)
	if !ok {
		bCand = ti.Burgers
	}
	trDiag := trRow.Block(i, i)
	tCand := geom.Add(tLocal, matVec3(trDiag, bCand))

	b := bCand
	for _, c := range o.Model.TriangleConstraints(i) {
		blockInv := func(t geom.Vec3) geom.Vec3 {
			x, ok := solve3x3(trDiag, geom.Sub(t, tLocal))
			if !ok {
				return b
			}
			return x
		}
		var t geom.Vec3
		b, t = c.Project(ti, b, tCand, blockInv)
		tCand = t
	}
	return b
}

func matVec3(m [3][3]float64, v geom.Vec3) geom.Vec3 {
	return geom.Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}
