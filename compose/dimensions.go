// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/diningset/state"
)

// Heights of the furniture above the floor, in meters.
const (
	TableHeight = 0.76
	SeatHeight  = 0.46
)

// Dims are the dimensions of a table, in meters.
type Dims struct {

	// Length is along the X axis.
	Length float32

	// Width is along the Z axis.
	Width float32

	// Thickness is the thickness of the stone top.
	Thickness float32

	// LegInset is how far the legs are set in from the corners of the top.
	LegInset float32
}

// Dimensions returns the table dimensions for the given size.
func Dimensions(s state.Sizes) Dims {
	switch s {
	case state.SizeSmall:
		return Dims{Length: 1.4, Width: 0.9, Thickness: 0.04, LegInset: 0.15}
	case state.SizeLarge:
		return Dims{Length: 2.6, Width: 1.1, Thickness: 0.05, LegInset: 0.35}
	default:
		return Dims{Length: 2.0, Width: 1.0, Thickness: 0.05, LegInset: 0.25}
	}
}

// LegHeight returns the height of the base under the top.
func (d Dims) LegHeight() float32 {
	return TableHeight - d.Thickness
}

// Placement is the position of a chair on the floor and its rotation
// about the vertical axis in degrees. Chairs face +Z before rotation.
type Placement struct {
	Pos math32.Vector3
	Yaw float32
}

// Chair clearance from the edges of the table top.
const chairClearance = 0.35

// sideChairs are the X positions of the chairs along each long side.
var sideChairs = map[state.Sizes][]float32{
	state.SizeSmall:  {0},
	state.SizeMedium: {-0.35, 0.35},
	state.SizeLarge:  {-0.6, 0, 0.6},
}

// Layout returns the chair placements for the given size: one chair at
// each short end, and the rest along the long sides, all facing the table.
func Layout(s state.Sizes) []Placement {
	d := Dimensions(s)
	end := d.Length/2 + chairClearance
	side := d.Width/2 + chairClearance
	xs, ok := sideChairs[s]
	if !ok {
		xs = sideChairs[state.SizeMedium]
	}
	ps := []Placement{
		{Pos: math32.Vec3(-end, 0, 0), Yaw: 90},
		{Pos: math32.Vec3(end, 0, 0), Yaw: -90},
	}
	for _, x := range xs {
		ps = append(ps, Placement{Pos: math32.Vec3(x, 0, side), Yaw: 180})
	}
	for _, x := range xs {
		ps = append(ps, Placement{Pos: math32.Vec3(x, 0, -side), Yaw: 0})
	}
	return ps
}
