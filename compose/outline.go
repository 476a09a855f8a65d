// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/diningset/state"
)

// Outline is the outline of the stone table top in the plane of the top,
// with X along the length and Y along the width of the table.
type Outline struct {
	Shape  state.StoneShapes
	Length float32
	Width  float32

	// Points is the closed outline, counter-clockwise, without
	// repeating the first point at the end.
	Points []math32.Vector2
}

// CornerRadius is the corner radius of [state.ShapeRoundedRectangle].
const CornerRadius = 0.15

// Number of line segments used for each curve.
const (
	curveSegments   = 12
	ellipseSegments = 64
)

// NewOutline returns the outline of the given shape for a table of the
// given length and width.
func NewOutline(shape state.StoneShapes, length, width float32) *Outline {
	l, w := length/2, width/2
	p := &path{}
	switch shape {
	case state.ShapeOval:
		for i := range ellipseSegments {
			a := 2 * math32.Pi * float32(i) / ellipseSegments
			p.lineTo(l*math32.Cos(a), w*math32.Sin(a))
		}
	case state.ShapeRoundedRectangle:
		r := min(CornerRadius, l, w)
		p.moveTo(-l+r, -w)
		p.lineTo(l-r, -w)
		p.quadTo(l, -w, l, -w+r)
		p.lineTo(l, w-r)
		p.quadTo(l, w, l-r, w)
		p.lineTo(-l+r, w)
		p.quadTo(-l, w, -l, w-r)
		p.lineTo(-l, -w+r)
		p.quadTo(-l, -w, -l+r, -w)
	case state.ShapeBoat:
		p.moveTo(-l, -0.7*w)
		p.quadTo(0, -w, l, -0.7*w)
		p.lineTo(l, 0.7*w)
		p.quadTo(0, w, -l, 0.7*w)
	case state.ShapeOrganic:
		p.moveTo(-l, -0.5*w)
		p.cubicTo(-0.5*l, -1.2*w, 0.5*l, -w, l, -0.6*w)
		p.cubicTo(1.1*l, -0.2*w, l, 0.8*w, 0.4*l, w)
		p.cubicTo(-0.2*l, 0.8*w, -0.8*l, 1.1*w, -l, 0.6*w)
	default: // state.ShapeRectangle
		p.moveTo(-l, -w)
		p.lineTo(l, -w)
		p.lineTo(l, w)
		p.lineTo(-l, w)
	}
	pts := p.closed()
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return &Outline{Shape: shape, Length: length, Width: width, Points: pts}
}

// Bounds returns the bounding box of the outline points.
func (o *Outline) Bounds() math32.Box2 {
	bb := math32.B2Empty()
	for _, p := range o.Points {
		bb.ExpandByPoint(p)
	}
	return bb
}

// Centroid returns the average of the outline points.
func (o *Outline) Centroid() math32.Vector2 {
	var c math32.Vector2
	for _, p := range o.Points {
		c = c.Add(p)
	}
	return c.DivScalar(float32(len(o.Points)))
}

// path samples line and curve segments into a list of points.
type path struct {
	pts []math32.Vector2
}

func (p *path) last() math32.Vector2 {
	return p.pts[len(p.pts)-1]
}

func (p *path) moveTo(x, y float32) {
	p.pts = append(p.pts, math32.Vec2(x, y))
}

func (p *path) lineTo(x, y float32) {
	p.pts = append(p.pts, math32.Vec2(x, y))
}

// quadTo adds a quadratic bezier curve with control point (cx, cy).
func (p *path) quadTo(cx, cy, x, y float32) {
	p0, c, p1 := p.last(), math32.Vec2(cx, cy), math32.Vec2(x, y)
	for i := 1; i <= curveSegments; i++ {
		t := float32(i) / curveSegments
		u := 1 - t
		p.pts = append(p.pts, p0.MulScalar(u*u).Add(c.MulScalar(2*u*t)).Add(p1.MulScalar(t*t)))
	}
}

// cubicTo adds a cubic bezier curve with control points (c1x, c1y) and (c2x, c2y).
func (p *path) cubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	p0, c1, c2, p1 := p.last(), math32.Vec2(c1x, c1y), math32.Vec2(c2x, c2y), math32.Vec2(x, y)
	for i := 1; i <= curveSegments; i++ {
		t := float32(i) / curveSegments
		u := 1 - t
		p.pts = append(p.pts, p0.MulScalar(u*u*u).Add(c1.MulScalar(3*u*u*t)).Add(c2.MulScalar(3*u*t*t)).Add(p1.MulScalar(t*t*t)))
	}
}

// closed returns the points with the closing point removed if it
// duplicates the first one.
func (p *path) closed() []math32.Vector2 {
	pts := p.pts
	if len(pts) > 1 && pts[0].DistanceTo(pts[len(pts)-1]) < 1e-6 {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// signedArea returns the area of the polygon, positive if counter-clockwise.
func signedArea(pts []math32.Vector2) float32 {
	var a float32
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
