// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"cogentcore.org/core/math32"
)

// Geometry is an indexed triangle mesh.
type Geometry struct {
	Vertex   []math32.Vector3
	Normal   []math32.Vector3
	TexCoord []math32.Vector2
	Index    []uint32
}

// Extrude returns the mesh of the outline extruded upward from y = 0
// to y = height. Outline X maps to world X and outline Y to world -Z,
// so that the outline is seen as drawn when looking down on the table.
// The caps are fans around the centroid, which requires the outline to
// be star-shaped with respect to it, as all stone shapes are.
func Extrude(o *Outline, height float32) *Geometry {
	g := &Geometry{}
	n := len(o.Points)
	if n < 3 {
		return g
	}
	bb := o.Bounds()
	size := bb.Size()
	uv := func(p math32.Vector2) math32.Vector2 {
		return math32.Vec2((p.X-bb.Min.X)/size.X, (p.Y-bb.Min.Y)/size.Y)
	}
	world := func(p math32.Vector2, y float32) math32.Vector3 {
		return math32.Vec3(p.X, y, -p.Y)
	}
	ctr := o.Centroid()

	// caps
	for _, top := range []bool{true, false} {
		y, norm := float32(0), math32.Vec3(0, -1, 0)
		if top {
			y, norm = height, math32.Vec3(0, 1, 0)
		}
		c := g.add(world(ctr, y), norm, uv(ctr))
		for _, p := range o.Points {
			g.add(world(p, y), norm, uv(p))
		}
		for i := range n {
			a, b := c+1+uint32(i), c+1+uint32((i+1)%n)
			if top {
				g.Index = append(g.Index, c, a, b)
			} else {
				g.Index = append(g.Index, c, b, a)
			}
		}
	}

	// sides, with unshared vertices for flat normals
	var u float32
	for i, p := range o.Points {
		q := o.Points[(i+1)%n]
		d := q.Sub(p)
		edge := d.Length()
		if edge == 0 {
			continue
		}
		norm := math32.Vec3(d.Y/edge, 0, d.X/edge)
		b0 := g.add(world(p, 0), norm, math32.Vec2(u, 0))
		g.add(world(q, 0), norm, math32.Vec2(u+edge, 0))
		g.add(world(q, height), norm, math32.Vec2(u+edge, 1))
		g.add(world(p, height), norm, math32.Vec2(u, 1))
		g.Index = append(g.Index, b0, b0+1, b0+2, b0, b0+2, b0+3)
		u += edge
	}
	return g
}

// add adds a vertex and returns its index.
func (g *Geometry) add(v, n math32.Vector3, t math32.Vector2) uint32 {
	g.Vertex = append(g.Vertex, v)
	g.Normal = append(g.Normal, n)
	g.TexCoord = append(g.TexCoord, t)
	return uint32(len(g.Vertex) - 1)
}

// Bounds returns the bounding box of the vertices.
func (g *Geometry) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for _, v := range g.Vertex {
		bb.ExpandByPoint(v)
	}
	return bb
}
