// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/diningset/compose"
	"cogentcore.org/diningset/state"
	"github.com/stretchr/testify/assert"
)

func TestPhong(t *testing.T) {
	shiny, refl := Phong(compose.Material{Roughness: 0})
	assert.Equal(t, float32(MaxShiny), shiny)
	assert.InDelta(t, 0.5, refl, 1e-6)

	shiny, refl = Phong(compose.Material{Roughness: 1, Metalness: 1})
	assert.Equal(t, float32(1), shiny)
	assert.InDelta(t, 0.6, refl, 1e-6)

	stone, _ := Phong(compose.Stone(nil))
	wood, _ := Phong(compose.Wood(state.WoodNatural))
	leather, _ := Phong(compose.Leather(state.LeatherTan))
	assert.Greater(t, stone, wood)
	assert.Greater(t, wood, leather)
	_, metal := Phong(compose.Metal)
	_, woodRefl := Phong(compose.Wood(state.WoodNatural))
	assert.Greater(t, metal, woodRefl)

	shiny, _ = Phong(compose.Material{Roughness: 3})
	assert.Equal(t, float32(1), shiny)
}

func TestMeshName(t *testing.T) {
	a := &compose.Node{Kind: compose.KindBox, Size: math32.Vec3(0.08, 0.71, 0.08)}
	b := &compose.Node{Kind: compose.KindBox, Size: math32.Vec3(0.08, 0.71, 0.08), Pos: math32.Vec3(1, 0, 0)}
	c := &compose.Node{Kind: compose.KindCylinder, Size: math32.Vec3(0.08, 0.71, 0.08)}
	p := &compose.Node{Kind: compose.KindPlaceholder, Size: math32.Vec3(0.08, 0.71, 0.08)}
	assert.Equal(t, "box-0.080-0.710-0.080", MeshName(a))
	assert.Equal(t, MeshName(a), MeshName(b))
	assert.Equal(t, MeshName(a), MeshName(p))
	assert.NotEqual(t, MeshName(a), MeshName(c))

	o := compose.NewOutline(state.ShapeOval, 2, 1)
	s := &compose.Node{Kind: compose.KindSlab, Size: math32.Vec3(2, 0.05, 1), Outline: o}
	assert.Equal(t, "slab-oval-2.000-1.000-0.050", MeshName(s))
}

func TestSlabMesh(t *testing.T) {
	g := compose.Extrude(compose.NewOutline(state.ShapeRectangle, 2, 1), 0.05)
	ms := SlabMesh("top", g)
	assert.Equal(t, "top", ms.Name)
	assert.Len(t, ms.Vertex, 3*len(g.Vertex))
	assert.Len(t, ms.Normal, 3*len(g.Vertex))
	assert.Len(t, ms.TexCoord, 2*len(g.Vertex))
	assert.Len(t, ms.Index, len(g.Index))
	nv, ni, hasColor := ms.MeshSize()
	assert.Equal(t, len(g.Vertex), nv)
	assert.Equal(t, len(g.Index), ni)
	assert.False(t, hasColor)

	bb := VertexBounds(ms.Vertex)
	assert.Equal(t, g.Bounds(), bb)
}

func TestVertexBounds(t *testing.T) {
	bb := VertexBounds(math32.ArrayF32{0, 1, 2, -1, 5, 0.5, 3, -2, 1})
	assert.Equal(t, math32.Vec3(-1, -2, 0.5), bb.Min)
	assert.Equal(t, math32.Vec3(3, 5, 2), bb.Max)
	assert.True(t, VertexBounds(nil).IsEmpty())
}
