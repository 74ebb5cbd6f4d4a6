// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solution implements the post-processing queries:
// displacement, strain, stress and traction at arbitrary points, computed
// by summing every triangle's contribution with its converged Burgers
// vector, plus the seismic-moment property used by the analytic
// cross-checks. Point evaluation is parallelized over a bounded worker
// pool, spreading independent point evaluations over a fixed number of
// goroutines.
package solution

import (
	"math"
	"runtime"
	"sync"

	"github.com/cpmech/ddm/geom"
	"github.com/cpmech/ddm/kernel"
	"github.com/cpmech/ddm/model"
)

// Solution evaluates the elastic field implied by a Model's current Burgers
// vectors. It holds a non-owning reference to Model; re-evaluate after
// every solver run since the Burgers vectors it reads live on the model's
// triangles.
type Solution struct {
	Model *model.Model
	Kern  *kernel.Kernel
	Cores int     // worker-pool size for batched point evaluation, default runtime.GOMAXPROCS(0)
	Delta float64 // D±-offset distance for BurgersPlus/BurgersMinus, 0 uses 1e-8 of the model's bounding size
}

// New returns a Solution reading the current state of m through kern.
func New(m *model.Model, kern *kernel.Kernel) *Solution {
	return &Solution{Model: m, Kern: kern, Cores: runtime.GOMAXPROCS(0)}
}

// Displacement returns the total displacement at p, summed over every
// triangle's own current Burgers vector.
func (s *Solution) Displacement(p geom.Vec3) geom.Vec3 {
	var u geom.Vec3
	for _, ti := range s.Model.AllTriangles() {
		u = geom.Add(u, s.Kern.Displacement(ti.Tri, ti.Burgers, p))
	}
	return u
}

// Strain returns the total strain tensor [xx,xy,xz,yy,yz,zz] at p.
func (s *Solution) Strain(p geom.Vec3) (eps [6]float64) {
	for _, ti := range s.Model.AllTriangles() {
		e := s.Kern.Strain(ti.Tri, ti.Burgers, p)
		for i := range eps {
			eps[i] += e[i]
		}
	}
	return
}

// Stress returns the total Cauchy stress tensor at p, excluding remote
// stress; add Model.Remotes.Stress(p) separately if the absolute field
// is wanted.
func (s *Solution) Stress(p geom.Vec3) (sig [6]float64) {
	eps := s.Strain(p)
	return s.Model.Mat.Stress(eps)
}

// TotalStress returns the induced stress plus the remote field at p.
func (s *Solution) TotalStress(p geom.Vec3) [6]float64 {
	sig := s.Stress(p)
	if s.Model.Remotes == nil {
		return sig
	}
	rem := s.Model.Remotes.Stress(p[0], p[1], p[2])
	for i := range sig {
		sig[i] += rem[i]
	}
	return sig
}

// Traction returns σ·m̂ at p, induced field only.
func (s *Solution) Traction(p geom.Vec3, m geom.Vec3) geom.Vec3 {
	sig := s.Stress(p)
	return tractionFromTensor(sig, m)
}

func tractionFromTensor(s [6]float64, m geom.Vec3) geom.Vec3 {
	return geom.Vec3{
		s[0]*m[0] + s[1]*m[1] + s[2]*m[2],
		s[1]*m[0] + s[3]*m[1] + s[4]*m[2],
		s[2]*m[0] + s[4]*m[1] + s[5]*m[2],
	}
}

// Field is one triangle's local Burgers vector, exposed in both the local
// (n,s,d) frame stored on the triangle and rotated into the global frame.
type Field struct {
	Index   int
	Local   geom.Vec3
	Global  geom.Vec3
	Centroid geom.Vec3
}

// Burgers reports every triangle's current Burgers vector.
func (s *Solution) Burgers() []Field {
	tris := s.Model.AllTriangles()
	out := make([]Field, len(tris))
	for i, ti := range tris {
		out[i] = Field{
			Index:    ti.Index,
			Local:    ti.Burgers,
			Global:   ti.Tri.Frame.ToGlobal(ti.Burgers),
			Centroid: ti.Tri.Centroid,
		}
	}
	return out
}

// BurgersPlus returns the total displacement, rotated into ti's local
// (n,s,d) frame, evaluated a small distance +δ off ti's centroid along its
// outward normal. BurgersMinus evaluates the same at -δ. The two satisfy
// BurgersPlus(ti) - BurgersMinus(ti) ≈ ti.Burgers, up to O(δ) numerical
// error, since the displacement jump across a triangular element is by
// definition the difference of its two one-sided limits.
func (s *Solution) BurgersPlus(ti *model.SurfTriangle) geom.Vec3 {
	p := ti.Tri.Offset(s.delta())
	return ti.Tri.Frame.ToLocal(s.Displacement(p))
}

// BurgersMinus is the D−-side counterpart of BurgersPlus.
func (s *Solution) BurgersMinus(ti *model.SurfTriangle) geom.Vec3 {
	p := ti.Tri.Offset(-s.delta())
	return ti.Tri.Frame.ToLocal(s.Displacement(p))
}

func (s *Solution) delta() float64 {
	if s.Delta > 0 {
		return s.Delta
	}
	return 1e-8 * s.modelSize()
}

func (s *Solution) modelSize() float64 {
	var lo, hi geom.Vec3
	first := true
	for _, ti := range s.Model.AllTriangles() {
		for _, v := range ti.Tri.V {
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

// AtVertices interpolates the Burgers field at every distinct vertex of a
// surface by area-weighted averaging over the triangles sharing it. A
// shared vertex is identified by exact position match (the geometry
// construction in model.NewSurface never perturbs shared vertices).
func (s *Solution) AtVertices(surf *model.Surface) []geom.Vec3 {
	type accum struct {
		sum    geom.Vec3
		weight float64
	}
	acc := map[geom.Vec3]*accum{}
	order := []geom.Vec3{}
	for _, ti := range surf.Triangles {
		g := ti.Tri.Frame.ToGlobal(ti.Burgers)
		for _, v := range ti.Tri.V {
			a, ok := acc[v]
			if !ok {
				a = &accum{}
				acc[v] = a
				order = append(order, v)
			}
			a.sum = geom.Add(a.sum, geom.Scale(g, ti.Tri.Area))
			a.weight += ti.Tri.Area
		}
	}
	out := make([]geom.Vec3, len(order))
	for i, v := range order {
		a := acc[v]
		out[i] = geom.Scale(a.sum, 1/a.weight)
	}
	return out
}

// SeismicMoment returns the scalar seismic moment M0 = sum_i mu * |Burgers_i| * Area_i
// over every triangle of the model, the discrete form of the closed-form
// identity analyt.SeismicMoment (mu * area * slip).
func (s *Solution) SeismicMoment() float64 {
	mu := s.Model.Mat.Mu
	total := 0.0
	for _, ti := range s.Model.AllTriangles() {
		total += mu * geom.Norm(ti.Burgers) * ti.Tri.Area
	}
	return total
}

// batch evaluates fn at every point in pts using up to Cores goroutines,
// splitting pts into contiguous chunks and dispatching one goroutine per
// chunk.
func (s *Solution) batch(pts []geom.Vec3, fn func(geom.Vec3) interface{}) []interface{} {
	n := len(pts)
	out := make([]interface{}, n)
	cores := s.Cores
	if cores <= 0 {
		cores = 1
	}
	if cores > n {
		cores = n
	}
	if cores <= 1 {
		for i, p := range pts {
			out[i] = fn(p)
		}
		return out
	}
	var wg sync.WaitGroup
	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	for w := 0; w < cores; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = fn(pts[i])
			}
		}()
	}
	wg.Wait()
	return out
}

// DisplacementBatch evaluates Displacement at every point in pts, spread
// over Solution.Cores goroutines.
func (s *Solution) DisplacementBatch(pts []geom.Vec3) []geom.Vec3 {
	raw := s.batch(pts, func(p geom.Vec3) interface{} { return s.Displacement(p) })
	out := make([]geom.Vec3, len(raw))
	for i, v := range raw {
		out[i] = v.(geom.Vec3)
	}
	return out
}

// StressBatch evaluates TotalStress at every point in pts, spread over
// Solution.Cores goroutines.
func (s *Solution) StressBatch(pts []geom.Vec3) [][6]float64 {
	raw := s.batch(pts, func(p geom.Vec3) interface{} { return s.TotalStress(p) })
	out := make([][6]float64, len(raw))
	for i, v := range raw {
		out[i] = v.([6]float64)
	}
	return out
}
