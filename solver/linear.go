// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/linsolve"

	"github.com/cpmech/ddm/assembler"
)

// denseOperator adapts assembler.Operator to gonum/linsolve's MulVecTo
// contract, letting GMRES/CG reuse the same dense block matrix the
// Gauss-Seidel path assembles, with no intermediate gonum-native storage
// for A itself.
type denseOperator struct {
	op *assembler.Operator
}

func (d denseOperator) MulVecTo(dst *mat.VecDense, _ bool, x mat.Vector) {
	n := d.op.N * 3
	xv := make([]float64, n)
	for i := 0; i < n; i++ {
		xv[i] = x.AtVec(i)
	}
	y := d.op.MulVec(xv)
	for i, v := range y {
		dst.SetVec(i, v)
	}
}

// runLinear solves A·b=rhs directly via gonum/linsolve, for models with no
// per-triangle constraints. Run already rejected constrained models before calling this.
// useCG selects the normal-equations conjugate-gradient method (linsolve.CG)
// in place of GMRES; the "cgns" solver option name refers to this path.
func (o *Solver) runLinear(rhs []float64, useCG bool) Result {
	n := o.ops.A.N * 3
	b := mat.NewVecDense(n, rhs)
	x0 := mat.NewVecDense(n, o.burgers)

	var method linsolve.Method
	if useCG {
		method = &linsolve.CG{}
	} else {
		method = &linsolve.GMRES{}
	}

	settings := &linsolve.Settings{
		InitX:         x0,
		Tolerance:     o.Opts.Eps,
		MaxIterations: o.Opts.KMax,
	}

	result, err := linsolve.Iterative(denseOperatorOf(o.ops.A), b, method, settings)
	if err != nil {
		o.Obs.OnWarning(err.Error())
		if result == nil {
			return Result{Status: Diverged}
		}
	}
	for i := 0; i < n; i++ {
		o.burgers[i] = result.X.AtVec(i)
	}
	res := residualNorm(o.ops.A, o.burgers, rhs)
	r0 := residualNorm(o.ops.A, make([]float64, n), rhs)
	if r0 == 0 {
		r0 = 1
	}
	ratio := res / r0
	status := Converged
	if ratio > o.Opts.Eps {
		status = Diverged
	}
	return Result{
		Status:        status,
		Iterations:    result.Stats.Iterations,
		ResidualNorm:  res,
		ResidualRatio: ratio,
	}
}

func denseOperatorOf(op *assembler.Operator) linsolve.MulVecToer {
	return denseOperator{op: op}
}
