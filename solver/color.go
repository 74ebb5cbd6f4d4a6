// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"sort"
	"strconv"

	graph "github.com/katalvlaran/lvlath/graph/core"
)

// colorTriangles partitions the model's triangles into independent batches
// suitable for concurrent Seidel updates: two triangles that could
// influence each other meaningfully never share a color, approximated here
// by physical proximity within a few characteristic lengths (the square
// root of the mean triangle area). The
// coupling graph is built with lvlath's graph/core, then greedily colored
// (lowest available color), the same two-phase build-then-color shape used
// elsewhere in the pack for dependency scheduling.
func (o *Solver) colorTriangles() [][]int {
	tris := o.Model.AllTriangles()
	n := len(tris)
	if n == 0 {
		return nil
	}
	g := graph.NewGraph(false, false)
	for i := 0; i < n; i++ {
		g.AddVertex(&graph.Vertex{ID: vid(i)})
	}
	meanArea := 0.0
	for _, t := range tris {
		meanArea += t.Tri.Area
	}
	meanArea /= float64(n)
	charLen := math.Sqrt(meanArea)
	if charLen <= 0 {
		charLen = 1
	}
	threshold := 6 * charLen
	for i := 0; i < n; i++ {
		ci := tris[i].Tri.Centroid
		for j := i + 1; j < n; j++ {
			cj := tris[j].Tri.Centroid
			d2 := sq(ci[0]-cj[0]) + sq(ci[1]-cj[1]) + sq(ci[2]-cj[2])
			if d2 <= threshold*threshold {
				g.AddEdge(vid(i), vid(j), int64(1))
			}
		}
	}

	colorOf := make([]int, n)
	for i := range colorOf {
		colorOf[i] = -1
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return order[a] < order[b] })

	for _, i := range order {
		used := map[int]bool{}
		for _, nb := range g.Neighbors(vid(i)) {
			if ci, ok := idOf(nb.ID); ok && colorOf[ci] >= 0 {
				used[colorOf[ci]] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		colorOf[i] = c
	}

	maxColor := 0
	for _, c := range colorOf {
		if c > maxColor {
			maxColor = c
		}
	}
	groups := make([][]int, maxColor+1)
	for i, c := range colorOf {
		groups[c] = append(groups[c], i)
	}
	return groups
}

func sq(x float64) float64 { return x * x }

func vid(i int) string { return "t" + strconv.Itoa(i) }

func idOf(v string) (int, bool) {
	if len(v) < 2 || v[0] != 't' {
		return 0, false
	}
	n, err := strconv.Atoi(v[1:])
	return n, err == nil
}
