// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver implements the block iterative method:
// Gauss-Seidel and Jacobi sweeps over the per-triangle 3x3 diagonal
// blocks, with per-step constraint projection, plus GMRES/CGNS on the
// assembled dense operator for unconstrained models. It mirrors the
// teacher's FEM/Solver split (fem.FEsolver, fem/solver.go's allocator
// map) without the time-stepping: here there is a single quasi-static
// system, not a sequence of stages.
package solver

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/ddm/assembler"
	"github.com/cpmech/ddm/geom"
	"github.com/cpmech/ddm/model"
)

// Status is the terminal (or current) state of a solve
// state machine: idle -> assembling -> iterating -> {converged,stopped,diverged,exhausted}.
type Status int

const (
	Idle Status = iota
	Assembling
	Iterating
	Converged
	Stopped
	Diverged
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Assembling:
		return "assembling"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case Stopped:
		return "stopped"
	case Diverged:
		return "diverged"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Phase distinguishes the two kinds of progress events
type Phase int

const (
	PhaseBuild Phase = 1
	PhaseSolve Phase = 2
)

// Progress is one observer notification.
type Progress struct {
	Iteration int
	Residual  float64
	Phase     Phase
}

// Observer groups the callbacks a solve reports through: onProgress,
// onMessage, onError, onEnd, plus a cooperative stopRequested predicate,
// serialized through a single reporter in multi-threaded use.
type Observer interface {
	OnProgress(p Progress)
	OnMessage(msg string)
	OnWarning(msg string)
	OnError(err error)
	OnEnd(status Status)
	StopRequested() bool
}

// NullObserver is the default, silent Observer.
type NullObserver struct{}

func (NullObserver) OnProgress(Progress)     {}
func (NullObserver) OnMessage(string)        {}
func (NullObserver) OnWarning(string)        {}
func (NullObserver) OnError(error)           {}
func (NullObserver) OnEnd(Status)            {}
func (NullObserver) StopRequested() bool     { return false }

// PrintObserver prints progress to stdout via gosl/io.Pf/PfGreen/PfRed,
// coloring convergence green and divergence/cancellation red.
type PrintObserver struct{}

func (PrintObserver) OnProgress(p Progress) {
	io.Pf("> phase=%d iter=%-4d residual=%23.15e\n", p.Phase, p.Iteration, p.Residual)
}
func (PrintObserver) OnMessage(msg string) { io.Pf("> %s\n", msg) }
func (PrintObserver) OnWarning(msg string) { io.PfRed("! %s\n", msg) }
func (PrintObserver) OnError(err error)    { io.PfRed("error: %v\n", err) }
func (PrintObserver) OnEnd(s Status) {
	switch s {
	case Converged:
		io.PfGreen("> %s\n", s)
	case Diverged, Stopped:
		io.PfRed("> %s\n", s)
	default:
		io.Pf("> %s\n", s)
	}
}
func (PrintObserver) StopRequested() bool { return false }

// Method names solver.Options.Name.
const (
	MethodSeidel   = "seidel"
	MethodJacobi   = "jacobi"
	MethodGMRES    = "gmres"
	MethodCGNS     = "cgns"
	MethodParallel = "parallel"
)

// Options configures a Solver run, with the defaults
type Options struct {
	Name              string
	Eps               float64
	KMax              int
	KDiv              int // consecutive divergent iterations before giving up, default 10
	Cores             int
	AutoReleaseMemory bool
	Delta             float64 // D±-offset override; 0 uses the assembler default
}

// DefaultOptions returns defaults.
func DefaultOptions() Options {
	return Options{
		Name:              MethodSeidel,
		Eps:               1e-9,
		KMax:              200,
		KDiv:              10,
		Cores:             1,
		AutoReleaseMemory: true,
	}
}

// Result holds the outcome of a Run.
type Result struct {
	Status         Status
	Iterations     int
	ResidualNorm   float64
	ResidualRatio  float64
	ResidualHistory []float64
}

// Solver drives the Burgers vector of a Model to satisfy its boundary
// conditions. It holds non-owning references to Model; any model "dirty"
// event invalidates the cached operator.
type Solver struct {
	Model *model.Model
	Asm   *assembler.Assembler
	Opts  Options
	Obs   Observer

	status  Status
	ops     *assembler.Operators
	burgers []float64 // flat 3N vector, canonical DOF order, warm-start across runs
}

// New builds a Solver. If obs is nil, NullObserver is used.
func New(m *model.Model, asm *assembler.Assembler, opts Options, obs Observer) *Solver {
	if obs == nil {
		obs = NullObserver{}
	}
	if opts.Eps <= 0 {
		opts.Eps = 1e-9
	}
	if opts.KMax <= 0 {
		opts.KMax = 200
	}
	if opts.KDiv <= 0 {
		opts.KDiv = 10
	}
	if opts.Cores <= 0 {
		opts.Cores = 1
	}
	if opts.Name == "" {
		opts.Name = MethodSeidel
	}
	return &Solver{Model: m, Asm: asm, Opts: opts, Obs: obs, status: Idle}
}

// Status returns the solver's current state.
func (o *Solver) Status() Status { return o.status }

// Burgers returns a copy of the current flat Burgers vector (canonical DOF order).
func (o *Solver) Burgers() []float64 {
	out := make([]float64, len(o.burgers))
	copy(out, o.burgers)
	return out
}

// Run executes the solve to a terminal state
func (o *Solver) Run() (Result, error) {
	hasConstraints := anyConstraints(o.Model)
	if (o.Opts.Name == MethodGMRES || o.Opts.Name == MethodCGNS) && hasConstraints {
		return Result{Status: Idle}, chk.Err("method %q is incompatible with per-step constraint projection; use seidel, jacobi or parallel", o.Opts.Name)
	}

	if o.Model.IsDirty() || o.ops == nil {
		if o.Opts.Delta > 0 {
			o.Asm.Delta = o.Opts.Delta
		}
		o.status = Assembling
		o.Obs.OnProgress(Progress{Phase: PhaseBuild})
		var err error
		o.ops, err = o.Asm.Build()
		if err != nil {
			o.status = Idle
			o.Obs.OnError(err)
			return Result{Status: Idle}, err
		}
		n := o.ops.A.N
		if len(o.burgers) != 3*n {
			o.burgers = make([]float64, 3*n)
		}
	}

	rhs, err := o.Asm.RHS()
	if err != nil {
		o.Obs.OnError(err)
		return Result{Status: Idle}, err
	}

	o.status = Iterating
	var res Result
	switch o.Opts.Name {
	case MethodSeidel:
		res = o.runBlockRelax(rhs, false, nil)
	case MethodJacobi:
		res = o.runBlockRelax(rhs, true, nil)
	case MethodParallel:
		colors := o.colorTriangles()
		res = o.runBlockRelax(rhs, false, colors)
	case MethodGMRES:
		res = o.runLinear(rhs, false)
	case MethodCGNS:
		res = o.runLinear(rhs, true)
	default:
		err = chk.Err("unknown solver method %q", o.Opts.Name)
		o.Obs.OnError(err)
		return Result{Status: Idle}, err
	}
	o.status = res.Status
	o.Obs.OnEnd(o.status)
	if o.Opts.AutoReleaseMemory && o.status != Iterating {
		o.ops = nil
	}
	return res, nil
}

func anyConstraints(m *model.Model) bool {
	for _, s := range m.Surfaces {
		if len(s.Constraints) > 0 {
			return true
		}
	}
	return false
}

func residualNorm(op *assembler.Operator, b, rhs []float64) float64 {
	ab := op.MulVec(b)
	sum := 0.0
	for i := range rhs {
		d := ab[i] - rhs[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// solve3x3 solves A*x=r for a 3x3 system via Cramer's rule. The blocks in
// this engine are always 3x3 by construction (3 DOF per triangle), small
// enough that a hand-written solve is both simpler and faster than routing
// through a general dense-matrix factorization; this is the one place in
// the solver that intentionally stays on plain arithmetic rather than a
// library routine (see DESIGN.md).
func solve3x3(a [3][3]float64, r geom.Vec3) (geom.Vec3, bool) {
	det := a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
	if math.Abs(det) < 1e-300 {
		return geom.Vec3{}, false
	}
	inv := 1.0 / det
	var x geom.Vec3
	x[0] = inv * (r[0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(r[1]*a[2][2]-a[1][2]*r[2]) +
		a[0][2]*(r[1]*a[2][1]-a[1][1]*r[2]))
	x[1] = inv * (a[0][0]*(r[1]*a[2][2]-a[1][2]*r[2]) -
		r[0]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*r[2]-r[1]*a[2][0]))
	x[2] = inv * (a[0][0]*(a[1][1]*r[2]-r[1]*a[2][1]) -
		a[0][1]*(a[1][0]*r[2]-r[1]*a[2][0]) +
		r[0]*(a[1][0]*a[2][1]-a[1][1]*a[2][0]))
	return x, true
}
