// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ddmrun is a thin command-line entry point that reads a JSON scenario
// file, assembles and solves the corresponding displacement-discontinuity
// model, and prints a summary of the converged Burgers vectors.
package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/ddm/assembler"
	"github.com/cpmech/ddm/kernel"
	"github.com/cpmech/ddm/solution"
	"github.com/cpmech/ddm/solver"
)

func main() {
	if len(os.Args) < 2 {
		io.PfRed("usage: ddmrun <scenario.json>\n")
		os.Exit(1)
	}

	sc, err := LoadScenario(os.Args[1])
	if err != nil {
		io.PfRed("error: %v\n", err)
		os.Exit(1)
	}
	io.Pf("running scenario: %s\n", sc.Desc)

	m, err := sc.BuildModel()
	if err != nil {
		io.PfRed("error building model: %v\n", err)
		os.Exit(1)
	}

	kern := kernel.NewKernel(m.Mat, m.HalfSpace)
	asm := assembler.New(m, kern)
	s := solver.New(m, asm, sc.SolverOptions(), solver.PrintObserver{})

	res, err := s.Run()
	if err != nil {
		io.PfRed("error solving: %v\n", err)
		os.Exit(1)
	}
	if res.Status != solver.Converged {
		io.PfRed("solve did not converge: status=%v\n", res.Status)
	}

	sol := solution.New(m, kern)
	io.Pf("\nresults:\n")
	for _, f := range sol.Burgers() {
		io.Pf("  triangle %4d: local burgers=%v\n", f.Index, f.Local)
	}
	io.Pf("seismic moment (uniform-slip approximation) = %v\n", sol.SeismicMoment())

	if chk.Verbose {
		io.Pf("done.\n")
	}
}
