// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera steers the 3D view toward the part of the
// dining set that the user is currently configuring.
package camera

//go:generate core generate

import (
	"cogentcore.org/core/math32"
)

// Parts are the parts of the configurator the camera can focus on.
type Parts int32 //enums:enum -trim-prefix Part -transform snake

const (
	// PartNone is no particular part: the default overview.
	PartNone Parts = iota

	// PartTableDesign is the table base design.
	PartTableDesign

	// PartSize is the overall size of the set.
	PartSize

	// PartTabletop is the stone top.
	PartTabletop

	// PartFinish is the wood finish.
	PartFinish

	// PartChairs are the chairs.
	PartChairs

	// PartStructural is the leg structure under the top.
	PartStructural

	// PartScene is the environment around the set.
	PartScene
)

// View is a camera position and the point it looks at.
type View struct {
	Pos    math32.Vector3
	Target math32.Vector3
}

// DefaultView is the overview shown on start and after a reset.
var DefaultView = View{Pos: math32.Vec3(3, 2.5, 3), Target: math32.Vec3(0, 0.5, 0)}

// Views are the views for each part. Parts without an entry use [DefaultView].
var Views = map[Parts]View{
	PartTableDesign: {Pos: math32.Vec3(2.4, 1.6, 2.4), Target: math32.Vec3(0, 0.5, 0)},
	PartSize:        {Pos: math32.Vec3(0, 3.2, 3.6), Target: math32.Vec3(0, 0.4, 0)},
	PartTabletop:    {Pos: math32.Vec3(0, 2.2, 0.1), Target: math32.Vec3(0, 0, 0)},
	PartFinish:      {Pos: math32.Vec3(0.8, 1.2, 0.8), Target: math32.Vec3(0, 0.76, 0)},
	PartChairs:      {Pos: math32.Vec3(1.8, 1.2, 0.8), Target: math32.Vec3(0, 0.6, 0)},
	PartStructural:  {Pos: math32.Vec3(1.6, 0.7, 1.6), Target: math32.Vec3(0, 0.35, 0)},
	PartScene:       {Pos: math32.Vec3(4, 3, 4), Target: math32.Vec3(0, 0.2, 0)},
}

// ViewFor returns the view for the given part.
func ViewFor(p Parts) View {
	if v, ok := Views[p]; ok {
		return v
	}
	return DefaultView
}

// Rate is the fraction of the remaining distance covered per second.
const Rate = 2.5

// Next returns the view after moving the current view toward the target
// for dt seconds. Both the position and the look-at point cover the
// fraction Rate*dt of their remaining distance, so the motion eases out
// and never overshoots.
func Next(cur, target View, dt float32) View {
	f := min(1, max(0, Rate*dt))
	return View{
		Pos:    cur.Pos.Lerp(target.Pos, f),
		Target: cur.Target.Lerp(target.Target, f),
	}
}

// Distance returns the larger of the distances between the positions
// and between the look-at points of the two views.
func Distance(a, b View) float32 {
	return max(a.Pos.DistanceTo(b.Pos), a.Target.DistanceTo(b.Target))
}
