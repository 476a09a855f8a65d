// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"strconv"

	"cogentcore.org/core/math32"
	"cogentcore.org/diningset/catalog"
)

// legWidth is the thickness of legs and slabs of the procedural bases.
const legWidth = 0.08

// Base returns the procedural base of a table of the given style and
// dimensions, standing on the floor under the top.
func Base(style catalog.BaseStyles, d Dims, pal *Palette) *Node {
	h := d.LegHeight()
	g := group("base", math32.Vector3{})
	wood := pal.Wood
	switch style {
	case catalog.BaseSlab:
		x := d.Length/2 - 0.3
		for i, s := range []float32{-1, 1} {
			g.Add(box(partName("slab", i), legWidth, h, d.Width*0.7, math32.Vec3(s*x, h/2, 0), wood))
		}
		g.Add(box("beam", d.Length-0.6, 0.1, 0.05, math32.Vec3(0, h-0.1, 0), wood))
	case catalog.BaseCylindrical:
		x := d.Length/2 - 0.35
		for i, s := range []float32{-1, 1} {
			g.Add(cylinder(partName("column", i), 0.12, h, math32.Vec3(s*x, h/2, 0), wood))
			g.Add(cylinder(partName("foot", i), 0.2, 0.03, math32.Vec3(s*x, 0.015, 0), pal.Metal))
		}
		g.Add(box("beam", d.Length-0.7, 0.08, 0.05, math32.Vec3(0, h-0.1, 0), wood))
	case catalog.BaseXShaped, catalog.BaseTrestle:
		x := d.Length/2 - 0.35
		for i, s := range []float32{-1, 1} {
			for j, a := range []float32{30, -30} {
				leg := box(partName("leg", 2*i+j), legWidth, h*1.1, legWidth, math32.Vec3(s*x, h/2, 0), wood)
				g.Add(leg.SetRot(a, 0, 0))
			}
			if style == catalog.BaseTrestle {
				g.Add(box(partName("foot", i), legWidth, 0.05, d.Width*0.7, math32.Vec3(s*x, 0.025, 0), wood))
			}
		}
		g.Add(box("stretcher", d.Length*0.7, 0.05, 0.05, math32.Vec3(0, h*0.4, 0), wood))
	case catalog.BaseVShaped:
		x := d.Length/2 - 0.25
		for i, s := range []float32{-1, 1} {
			leg := box(partName("leg", i), legWidth, h, 2*legWidth, math32.Vec3(s*x-s*0.1, h/2, 0), wood)
			g.Add(leg.SetRot(0, 0, s*22.5))
		}
		g.Add(box("beam", d.Length-0.5, 0.06, 0.06, math32.Vec3(0, h-0.05, 0), pal.Metal))
	case catalog.BaseSculptural, catalog.BaseOrganic, catalog.BaseGeometric:
		if style == catalog.BaseSculptural {
			g.Add(cone("column", 0.12, h, 0.2, math32.Vec3(0, h/2, 0), wood))
		} else {
			g.Add(box("column", 0.15, h, d.Width*0.5, math32.Vec3(0, h/2, 0), wood))
		}
		g.Add(box("foot", d.Length*0.6, 0.08, 0.08, math32.Vec3(0, 0.04, 0), wood))
	default: // splayed, curved, minimal
		x := d.Length/2 - d.LegInset
		z := d.Width/2 - d.LegInset
		i := 0
		for _, sx := range []float32{-1, 1} {
			for _, sz := range []float32{-1, 1} {
				g.Add(box(partName("leg", i), legWidth, h, legWidth, math32.Vec3(sx*x, h/2, sz*z), wood))
				i++
			}
		}
		for i, sz := range []float32{-1, 1} {
			g.Add(box(partName("apron", i), d.Length-d.LegInset, 0.08, 0.02, math32.Vec3(0, h-0.06, sz*z), wood))
		}
	}
	return g
}

// partName returns the name of the i'th part of a kind, as in "leg-2".
func partName(kind string, i int) string {
	return kind + "-" + strconv.Itoa(i)
}
