// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/diningset/assets"
	"cogentcore.org/diningset/catalog"
	"cogentcore.org/diningset/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensions(t *testing.T) {
	d := Dimensions(state.SizeLarge)
	assert.Equal(t, float32(2.6), d.Length)
	assert.Equal(t, float32(1.1), d.Width)
	tolassert.EqualTol(t, 0.71, d.LegHeight(), 1e-6)
	assert.Equal(t, Dimensions(state.SizeMedium), Dimensions(state.SizesN))
}

func TestLayout(t *testing.T) {
	for _, s := range state.SizesValues() {
		ps := Layout(s)
		assert.Len(t, ps, s.Seats(), s.String())
		seen := map[math32.Vector3]bool{}
		d := Dimensions(s)
		for _, p := range ps {
			assert.False(t, seen[p.Pos], "duplicate chair position %v", p.Pos)
			seen[p.Pos] = true
			// outside of the table top
			outside := math32.Abs(p.Pos.X) > d.Length/2 || math32.Abs(p.Pos.Z) > d.Width/2
			assert.True(t, outside, "chair at %v is under the table", p.Pos)
		}
	}
	ps := Layout(state.SizeSmall)
	tolassert.EqualTol(t, -1.05, ps[0].Pos.X, 1e-6)
	assert.Zero(t, ps[0].Pos.Z)
	assert.Equal(t, float32(90), ps[0].Yaw)
	assert.Equal(t, float32(180), ps[2].Yaw)
}

func TestOutline(t *testing.T) {
	for _, sh := range state.StoneShapesValues() {
		o := NewOutline(sh, 2, 1)
		assert.Equal(t, sh, o.Shape)
		assert.Greater(t, signedArea(o.Points), float32(0), sh.String())
		assert.NotEqual(t, o.Points[0], o.Points[len(o.Points)-1], sh.String())
	}

	d := Dimensions(state.SizeMedium)
	o := NewOutline(state.ShapeOval, d.Length, d.Width)
	assert.Equal(t, d.Length, o.Length)
	assert.Equal(t, d.Width, o.Width)
	sz := o.Bounds().Size()
	tolassert.EqualTol(t, d.Length, sz.X, 1e-4)
	tolassert.EqualTol(t, d.Width, sz.Y, 1e-4)
	assert.Len(t, o.Points, ellipseSegments)

	r := NewOutline(state.ShapeRectangle, 2, 1)
	assert.Len(t, r.Points, 4)
	tolassert.EqualTol(t, 2, signedArea(r.Points), 1e-6)

	rr := NewOutline(state.ShapeRoundedRectangle, 2, 1)
	assert.Less(t, signedArea(rr.Points), float32(2))
	sz = rr.Bounds().Size()
	tolassert.EqualTol(t, 2, sz.X, 1e-5)
	tolassert.EqualTol(t, 1, sz.Y, 1e-5)
}

func TestExtrude(t *testing.T) {
	g := Extrude(NewOutline(state.ShapeRectangle, 2, 1), 0.05)
	assert.Len(t, g.Vertex, 26)
	assert.Len(t, g.Normal, 26)
	assert.Len(t, g.TexCoord, 26)
	assert.Len(t, g.Index, 48)
	bb := g.Bounds()
	tolassert.EqualTol(t, 0, bb.Min.Y, 1e-6)
	tolassert.EqualTol(t, 0.05, bb.Max.Y, 1e-6)
	tolassert.EqualTol(t, -1, bb.Min.X, 1e-6)
	tolassert.EqualTol(t, 0.5, bb.Max.Z, 1e-6)

	// top faces point up
	for i := 0; i < 12; i += 3 {
		a, b, c := g.Vertex[g.Index[i]], g.Vertex[g.Index[i+1]], g.Vertex[g.Index[i+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n.Y, float32(0))
	}
	for _, i := range g.Index {
		assert.Less(t, int(i), len(g.Vertex))
	}

	assert.Empty(t, Extrude(&Outline{}, 1).Vertex)
}

func TestRoles(t *testing.T) {
	declared := map[string]catalog.MaterialRoles{"Back_Panel": catalog.RoleWood}
	assert.Equal(t, catalog.RoleWood, ChairRole(declared, "Back_Panel"))
	assert.Equal(t, catalog.RoleLeather, ChairRole(declared, "Back_Cushion"))
	assert.Equal(t, catalog.RoleLeather, ChairRole(nil, "Upholstery_01"))
	assert.Equal(t, catalog.RoleWood, ChairRole(nil, "Leg.003"))
	assert.Equal(t, catalog.RoleNone, ChairRole(nil, "Screws"))
	assert.Equal(t, catalog.RoleStone, TableRole(nil, "MarbleTop"))
	assert.Equal(t, catalog.RoleWood, TableRole(nil, "base_frame"))
	assert.Equal(t, catalog.RoleMetal, TableRole(nil, "Brass_Ring"))

	m := &Model{Chair: true, Materials: (&Palette{Leather: Leather(state.LeatherOlive)}).Roles()}
	mat, ok := m.MaterialOf("Seat")
	assert.True(t, ok)
	assert.Equal(t, "leather/olive", mat.Name)
	_, ok = m.MaterialOf("Screws")
	assert.False(t, ok)
}

func TestDedupe(t *testing.T) {
	centers := []math32.Vector3{
		math32.Vec3(0, 0.4, 0),
		math32.Vec3(0, 0.8, -0.2),
		math32.Vec3(5, 0.4, 0),
		math32.Vec3(0.3, 0.2, 0.3),
		math32.Vec3(5, 0.8, -0.2),
	}
	assert.Equal(t, []int{0, 1, 3}, Dedupe(centers, DedupeThreshold))
	assert.Nil(t, Dedupe(nil, DedupeThreshold))
	assert.Equal(t, []int{0}, Dedupe(centers[:1], DedupeThreshold))
}

func TestMaterials(t *testing.T) {
	assert.Equal(t, "wood/walnut_dark", Wood(state.WoodWalnutDark).Name)
	assert.Equal(t, Wood(state.WoodOakLight).Color, Wood(state.WoodTonesN).Color)
	s := &catalog.Stone{Info: catalog.Info{ID: "X"}, Color: "#5ba3a3"}
	assert.Equal(t, uint8(0x5b), Stone(s).Color.R)
	assert.Equal(t, hex(NeutralStone), Stone(nil).Color)
	tolassert.EqualTol(t, 0.3, Placeholder.Opacity(), 0.01)
}

func TestBase(t *testing.T) {
	pal := &Palette{Wood: Wood(state.WoodNatural), Metal: Metal}
	d := Dimensions(state.SizeMedium)
	for _, st := range catalog.BaseStylesValues() {
		b := Base(st, d, pal)
		assert.NotEmpty(t, b.Children, st.String())
		b.WalkDown(func(n *Node) bool {
			if n.Kind != KindGroup {
				assert.LessOrEqual(t, n.Pos.Y, d.LegHeight(), "%s %s", st, n.Name)
			}
			return true
		})
	}
	assert.Equal(t, 6, Base(catalog.BaseMinimal, d, pal).Count(KindBox))
}

func TestChairNode(t *testing.T) {
	pal := &Palette{Wood: Wood(state.WoodNatural), Leather: Leather(state.LeatherTan), Metal: Metal}
	for _, st := range catalog.ChairStylesValues() {
		c := ChairNode(st, pal)
		seat := c.Find("seat")
		require.NotNil(t, seat, st.String())
		tolassert.EqualTol(t, SeatHeight, seat.Pos.Y+seat.Size.Y/2, 0.03)
	}
	assert.Equal(t, 9, len(ribs(ChairNode(catalog.ChairRibbed, pal))))
}

func ribs(n *Node) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if len(c.Name) > 3 && c.Name[:3] == "rib" {
			res = append(res, c)
		}
	}
	return res
}

func TestEnvironment(t *testing.T) {
	studio := NewEnvironment(state.SceneStudio)
	assert.Equal(t, hex("#f0f0f0"), studio.Background)
	assert.Equal(t, hex("#ffffff"), studio.Ground.Material.Color)
	night := NewEnvironment(state.SceneNight)
	assert.Equal(t, hex("#202020"), night.Background)
	require.Len(t, night.Lights, 2)
	assert.Equal(t, float32(0.2), night.Lights[0].Lumens)
	assert.Equal(t, float32(0.3), night.Lights[1].Lumens)
	assert.Equal(t, math32.Vec3(5, 8, 5), night.Lights[1].Pos)
	city := NewEnvironment(state.SceneCity)
	assert.Equal(t, float32(1.2), city.Lights[1].Lumens)
	assert.Equal(t, hex("#333333"), city.Ground.Material.Color)
}

func TestCompose(t *testing.T) {
	cats := catalog.Default()
	st := state.Default()
	sc := Compose(st, cats, nil)
	assert.Empty(t, sc.Diagnostics)
	top := sc.Root.Find("top")
	require.NotNil(t, top)
	assert.Equal(t, KindSlab, top.Kind)
	assert.Equal(t, state.ShapeRoundedRectangle, top.Outline.Shape)
	tolassert.EqualTol(t, TableHeight, top.Pos.Y+top.Size.Y, 1e-6)
	assert.Equal(t, "stone/VR-001", top.Material.Name)
	require.NotNil(t, sc.Root.Find("base"))
	assert.Len(t, sc.Root.Find("chairs").Children, 6)

	st.Size = state.SizeLarge
	st.Shape = state.ShapeOval
	sc = Compose(st, cats, nil)
	assert.Len(t, sc.Root.Find("chairs").Children, 8)
	assert.Equal(t, state.ShapeOval, sc.Outline.Shape)
	assert.Equal(t, float32(2.6), sc.Outline.Length)
	assert.Equal(t, float32(1.1), sc.Outline.Width)
}

func TestComposeUnknown(t *testing.T) {
	st := state.Default()
	st.Table = "K-DT-99"
	st.Chair = "nope"
	st.TableTop = "VR-999"
	sc := Compose(st, catalog.Default(), nil)
	assert.Len(t, sc.Diagnostics, 3)
	assert.Nil(t, sc.Root.Find("base"))
	assert.Nil(t, sc.Root.Find("chairs"))
	top := sc.Root.Find("top")
	require.NotNil(t, top)
	assert.Equal(t, hex(NeutralStone), top.Material.Color)
}

func TestComposeModels(t *testing.T) {
	def := catalog.Default()
	chairs, err := catalog.New([]catalog.Chair{{Info: catalog.Info{ID: "M-1", Model: "models/m1.obj"}, Style: catalog.ChairTub}})
	require.NoError(t, err)
	cats := &catalog.Catalogs{Tables: def.Tables, Stones: def.Stones, Chairs: chairs}
	st := state.Default()
	st.Chair = "M-1"

	status := assets.StatusPending
	models := func(ref string) assets.Status {
		assert.Equal(t, "models/m1.obj", ref)
		return status
	}
	sc := Compose(st, cats, models)
	assert.Equal(t, 6, sc.Root.Count(KindPlaceholder))
	assert.NotNil(t, sc.Root.Find("top"))
	assert.NotNil(t, sc.Root.Find("base"))

	status = assets.StatusReady
	sc = Compose(st, cats, models)
	assert.Equal(t, 0, sc.Root.Count(KindPlaceholder))
	assert.Equal(t, 6, sc.Root.Count(KindModel))
	m := sc.Root.Find("model").Model
	assert.True(t, m.Chair)
	assert.True(t, m.Dedupe)

	status = assets.StatusFailed
	sc = Compose(st, cats, models)
	assert.Equal(t, 0, sc.Root.Count(KindModel))
	assert.NotNil(t, sc.Root.Find("pedestal"))
}
