// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ddm/geom"
	"github.com/cpmech/ddm/material"
	"github.com/cpmech/ddm/model"
	"github.com/cpmech/ddm/remote"
	"github.com/cpmech/ddm/solver"
)

// Scenario is the JSON input schema for a single ddmrun invocation: a
// flat, json-tagged configuration struct read straight off disk.
type Scenario struct {
	Desc      string           `json:"desc"`
	Material  MaterialData     `json:"material"`
	HalfSpace bool             `json:"halfSpace"`
	Surfaces  []SurfaceData    `json:"surfaces"`
	Remote    *RemoteData      `json:"remote"`
	Solver    SolverData       `json:"solver"`
}

// MaterialData holds the {E,nu} pair; rho defaults to 0 and is stored on
// the material without being read by any computation.
type MaterialData struct {
	E   float64 `json:"e"`
	Nu  float64 `json:"nu"`
	Rho float64 `json:"rho"`
}

// BCData is one axis's boundary condition on a surface.
type BCData struct {
	Axis  string  `json:"axis"`  // "normal", "strike" or "dip"
	Type  string  `json:"type"`  // "traction" or "displacement" (see model.ParseBCType synonyms)
	Value float64 `json:"value"`
}

// SurfaceData is one triangulated surface: a flat vertex array, a list of
// vertex-index triples, and a per-surface BC default (applied to every
// triangle; per-triangle overrides are out of scope for the CLI schema).
type SurfaceData struct {
	Vertices  [][3]float64 `json:"vertices"`
	Triangles [][3]int     `json:"triangles"`
	BCs       []BCData     `json:"bcs"`
}

// RemoteData is a single uniform remote stress tensor.
type RemoteData struct {
	Uniform [6]float64 `json:"uniform"`
}

// SolverData configures the boundary-element solve. It carries the Name,
// Eps, KMax and Cores fields of solver.Options; the remaining options keep
// their solver.DefaultOptions values.
type SolverData struct {
	Method string  `json:"method"`
	Eps    float64 `json:"eps"`
	KMax   int     `json:"kmax"`
	Cores  int     `json:"cores"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("cannot open scenario file %q: %v", path, err)
	}
	defer f.Close()
	var sc Scenario
	if err := json.NewDecoder(f).Decode(&sc); err != nil {
		return nil, chk.Err("cannot parse scenario file %q: %v", path, err)
	}
	if len(sc.Surfaces) == 0 {
		return nil, chk.Err("scenario %q defines no surfaces", path)
	}
	return &sc, nil
}

// BuildModel translates a Scenario into a live *model.Model.
func (sc *Scenario) BuildModel() (*model.Model, error) {
	mat, err := material.NewFromEnu(sc.Material.E, sc.Material.Nu, sc.Material.Rho)
	if err != nil {
		return nil, err
	}
	m := model.NewModel(mat, sc.HalfSpace)
	for si, sd := range sc.Surfaces {
		verts := make([]geom.Vec3, len(sd.Vertices))
		for i, v := range sd.Vertices {
			verts[i] = geom.Vec3{v[0], v[1], v[2]}
		}
		surf, err := model.NewSurface(verts, sd.Triangles)
		if err != nil {
			return nil, chk.Err("surface %d: %v", si, err)
		}
		for _, bc := range sd.BCs {
			axis, err := model.ParseAxis(bc.Axis)
			if err != nil {
				return nil, chk.Err("surface %d: %v", si, err)
			}
			typ, err := model.ParseBCType(bc.Type)
			if err != nil {
				return nil, chk.Err("surface %d: %v", si, err)
			}
			for i := range surf.Triangles {
				if err := surf.SetBC(i, axis, typ, model.Const(bc.Value)); err != nil {
					return nil, err
				}
			}
		}
		m.AddSurface(surf)
	}
	if sc.Remote != nil {
		m.AddRemote(remote.Uniform{Sig: sc.Remote.Uniform})
	}
	return m, nil
}

// SolverOptions translates the scenario's solver block into solver.Options,
// falling back to solver.DefaultOptions for any zero-valued field.
func (sc *Scenario) SolverOptions() solver.Options {
	opts := solver.DefaultOptions()
	if sc.Solver.Method != "" {
		opts.Name = sc.Solver.Method
	}
	if sc.Solver.Eps > 0 {
		opts.Eps = sc.Solver.Eps
	}
	if sc.Solver.KMax > 0 {
		opts.KMax = sc.Solver.KMax
	}
	if sc.Solver.Cores > 0 {
		opts.Cores = sc.Solver.Cores
	}
	return opts
}
