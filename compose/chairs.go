// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/diningset/catalog"
)

// Chair seat dimensions, in meters.
const (
	seatWidth  float32 = 0.48
	seatDepth  float32 = 0.46
	seatThick  float32 = 0.06
	backHeight float32 = 0.45
)

// ChairNode returns the procedural chair of the given style, with its
// origin on the floor under the center of the seat, facing +Z.
func ChairNode(style catalog.ChairStyles, pal *Palette) *Node {
	g := group("chair", math32.Vector3{})
	seatY := float32(SeatHeight) - seatThick/2
	backY := float32(SeatHeight) + backHeight/2
	backZ := -seatDepth/2 + 0.03
	wood, leather := pal.Wood, pal.Leather

	fourLegs := func(h float32) {
		x, z := seatWidth/2-0.03, seatDepth/2-0.03
		i := 0
		for _, sx := range []float32{-1, 1} {
			for _, sz := range []float32{-1, 1} {
				g.Add(box(partName("leg", i), 0.035, h, 0.035, math32.Vec3(sx*x, h/2, sz*z), wood))
				i++
			}
		}
	}
	legH := float32(SeatHeight) - seatThick

	switch style {
	case catalog.ChairRoundBack:
		fourLegs(legH)
		g.Add(cylinder("seat", seatWidth/2, seatThick, math32.Vec3(0, seatY, 0), leather))
		back := torus("back", seatWidth/2-0.04, 0.035, math32.Vec3(0, backY, backZ), leather)
		g.Add(back)
	case catalog.ChairWing:
		fourLegs(legH)
		g.Add(box("seat", seatWidth, seatThick+0.04, seatDepth, math32.Vec3(0, seatY, 0), leather))
		g.Add(box("back", seatWidth+0.08, backHeight+0.15, 0.08, math32.Vec3(0, backY+0.07, backZ), leather))
		for i, s := range []float32{-1, 1} {
			wing := box(partName("wing", i), 0.06, 0.3, 0.2, math32.Vec3(s*(seatWidth/2+0.01), backY+0.12, backZ+0.1), leather)
			g.Add(wing.SetRot(0, s*-20, 0))
		}
	case catalog.ChairTub:
		g.Add(cone("pedestal", 0.05, legH, 0.22, math32.Vec3(0, legH/2, 0), pal.Metal))
		g.Add(cylinder("seat", seatWidth/2+0.02, seatThick+0.04, math32.Vec3(0, seatY, 0), leather))
		for i, a := range []float32{-50, 0, 50} {
			r := seatWidth/2 - 0.02
			rad := math32.DegToRad(a)
			pos := math32.Vec3(r*math32.Sin(rad), float32(SeatHeight)+0.14, -r*math32.Cos(rad))
			g.Add(box(partName("shell", i), 0.3, 0.28, 0.05, pos, leather).SetRot(0, -a, 0))
		}
	case catalog.ChairRibbed:
		fourLegs(legH)
		g.Add(box("seat", seatWidth, seatThick, seatDepth, math32.Vec3(0, seatY, 0), leather))
		const ribs = 9
		for i := range ribs {
			x := -seatWidth/2 + 0.03 + float32(i)*(seatWidth-0.06)/(ribs-1)
			g.Add(box(partName("rib", i), 0.025, backHeight, 0.025, math32.Vec3(x, backY, backZ), wood))
		}
		g.Add(box("crest", seatWidth, 0.05, 0.04, math32.Vec3(0, float32(SeatHeight)+backHeight, backZ), wood))
	case catalog.ChairQuilted:
		fourLegs(legH)
		g.Add(box("seat", seatWidth, seatThick+0.03, seatDepth, math32.Vec3(0, seatY, 0), leather))
		for i := range 3 {
			y := float32(SeatHeight) + 0.08 + float32(i)*0.14
			g.Add(box(partName("quilt", i), seatWidth, 0.13, 0.07, math32.Vec3(0, y, backZ), leather))
		}
	case catalog.ChairOpenFrame:
		fourLegs(legH)
		g.Add(box("seat", seatWidth, seatThick, seatDepth, math32.Vec3(0, seatY, 0), leather))
		for i, s := range []float32{-1, 1} {
			g.Add(box(partName("post", i), 0.035, backHeight, 0.035, math32.Vec3(s*(seatWidth/2-0.03), backY, backZ), wood))
		}
		g.Add(box("rail", seatWidth, 0.08, 0.03, math32.Vec3(0, float32(SeatHeight)+backHeight-0.06, backZ), leather))
	case catalog.ChairArtisticRound:
		for i, a := range []float32{0, 120, 240} {
			rad := math32.DegToRad(a)
			pos := math32.Vec3(0.16*math32.Sin(rad), legH/2, 0.16*math32.Cos(rad))
			g.Add(box(partName("leg", i), 0.03, legH, 0.03, pos, pal.Metal))
		}
		g.Add(cylinder("seat", seatWidth/2, seatThick, math32.Vec3(0, seatY, 0), leather))
		g.Add(torus("back", 0.18, 0.04, math32.Vec3(0, backY+0.05, backZ), wood))
	default: // classic
		fourLegs(legH)
		g.Add(box("seat", seatWidth, seatThick, seatDepth, math32.Vec3(0, seatY, 0), leather))
		g.Add(box("back", seatWidth, backHeight, 0.04, math32.Vec3(0, backY, backZ), leather))
		for i, s := range []float32{-1, 1} {
			g.Add(box(partName("post", i), 0.035, backHeight, 0.035, math32.Vec3(s*(seatWidth/2-0.02), backY, backZ-0.01), wood))
		}
	}
	return g
}
