// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Axis identifies a local triangle axis: 0|"x"|"normal"; 1|"y"|"strike";
// 2|"z"|"dip".
type Axis int

const (
	AxisNormal Axis = iota
	AxisStrike
	AxisDip
)

// ParseAxis resolves an axis name/index synonym to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "x", "normal":
		return AxisNormal, nil
	case "1", "y", "strike":
		return AxisStrike, nil
	case "2", "z", "dip":
		return AxisDip, nil
	}
	return AxisNormal, chk.Err("unknown axis %q; expected one of 0|x|normal, 1|y|strike, 2|z|dip", s)
}

// BCType is the boundary-condition kind on one axis: traction or displacement.
type BCType int

const (
	Traction BCType = iota
	Displacement
)

var tractionSynonyms = map[string]bool{
	"t": true, "0": true, "free": true, "traction": true, "neumann": true, "unknown": true,
}

var displSynonyms = map[string]bool{
	"b": true, "1": true, "displ": true, "displacement": true,
	"fixed": true, "dirichlet": true, "locked": true, "imposed": true,
}

// ParseBCType resolves a BC-type synonym to a BCType.
func ParseBCType(s string) (BCType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if tractionSynonyms[key] {
		return Traction, nil
	}
	if displSynonyms[key] {
		return Displacement, nil
	}
	return Traction, chk.Err("unknown boundary-condition type %q", s)
}

// ValueFunc evaluates a boundary-condition value at a point; a constant
// value is the common case, wrapped by Const.
type ValueFunc func(x, y, z float64) float64

// Const returns a ValueFunc yielding a fixed value everywhere.
func Const(v float64) ValueFunc { return func(x, y, z float64) float64 { return v } }

// AxisBC is one triangle's boundary condition on a single local axis.
type AxisBC struct {
	Type  BCType
	Value ValueFunc
}

// DefaultBCs returns default per-triangle boundary
// conditions: normal locked at 0, strike and dip free (traction) at 0.
func DefaultBCs() [3]AxisBC {
	return [3]AxisBC{
		{Type: Displacement, Value: Const(0)},
		{Type: Traction, Value: Const(0)},
		{Type: Traction, Value: Const(0)},
	}
}
