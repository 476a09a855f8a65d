// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/diningset/assets"
	"cogentcore.org/diningset/catalog"
	"cogentcore.org/diningset/state"
)

// Scene is a composed dining set scene.
type Scene struct {

	// Root has the "top", "base" and "chairs" children. The base and
	// chairs are missing if their items are not in the catalog.
	Root *Node

	Env *Environment

	// Dims are the dimensions of the table.
	Dims Dims

	// Outline is the outline of the table top.
	Outline *Outline

	// Diagnostics are the problems found while composing, which are
	// also logged.
	Diagnostics []string
}

// ModelStatus returns the load status of the model with the given asset
// path. A nil ModelStatus uses the procedural fallback for all models.
type ModelStatus func(ref string) assets.Status

// Placeholder sizes for tables and chairs whose models are loading.
var (
	tablePlaceholder = math32.Vec3(1.6, 0.8, 0.8)
	chairPlaceholder = math32.Vec3(0.4, 0.8, 0.4)
)

// Compose returns the scene for the given configuration.
// Unknown items are omitted from the scene with a diagnostic, except for
// an unknown stone, which is rendered in a neutral color.
func Compose(st state.State, cats *catalog.Catalogs, models ModelStatus) *Scene {
	sc := &Scene{Dims: Dimensions(st.Size), Env: NewEnvironment(st.Scene)}
	sc.Root = group("dining-set", math32.Vector3{})

	var stone *catalog.Stone
	if s, ok := cats.Stones.Lookup(st.TableTop); ok {
		stone = &s
	} else {
		sc.diagnose("table top", st.TableTop)
	}
	pal := &Palette{Wood: Wood(st.Wood), Leather: Leather(st.Leather), Stone: Stone(stone), Metal: Metal}

	sc.Outline = NewOutline(st.Shape, sc.Dims.Length, sc.Dims.Width)
	sc.Root.Add(&Node{
		Name:     "top",
		Kind:     KindSlab,
		Size:     math32.Vec3(sc.Dims.Length, sc.Dims.Thickness, sc.Dims.Width),
		Pos:      math32.Vec3(0, TableHeight-sc.Dims.Thickness, 0),
		Material: pal.Stone,
		Outline:  sc.Outline,
	})

	if tb, ok := cats.Tables.Lookup(st.Table); ok {
		sc.Root.Add(sc.table(tb, pal, models))
	} else {
		sc.diagnose("table", st.Table)
	}

	if ch, ok := cats.Chairs.Lookup(st.Chair); ok {
		chairs := group("chairs", math32.Vector3{})
		for i, pl := range Layout(st.Size) {
			c := group(partName("chair", i), pl.Pos, sc.chair(ch, pal, models))
			chairs.Add(c.SetRot(0, pl.Yaw, 0))
		}
		sc.Root.Add(chairs)
	} else {
		sc.diagnose("chair", st.Chair)
	}
	return sc
}

// diagnose records and logs an item id that is not in the catalog.
func (sc *Scene) diagnose(slot, id string) {
	slog.Warn("compose: unknown catalog item", "slot", slot, "id", id)
	sc.Diagnostics = append(sc.Diagnostics, fmt.Sprintf("unknown %s %q", slot, id))
}

// table returns the base of the given table.
func (sc *Scene) table(tb catalog.Table, pal *Palette, models ModelStatus) *Node {
	switch modelStatus(tb.Info, models) {
	case assets.StatusReady:
		return &Node{Name: "base", Kind: KindModel, Model: &Model{Ref: tb.Model, Materials: pal.Roles()}}
	case assets.StatusPending:
		return placeholder("base", tablePlaceholder)
	default:
		return Base(tb.Base, sc.Dims, pal)
	}
}

// chair returns one chair of the given kind, at the origin.
func (sc *Scene) chair(ch catalog.Chair, pal *Palette, models ModelStatus) *Node {
	switch modelStatus(ch.Info, models) {
	case assets.StatusReady:
		m := &Model{Ref: ch.Model, Roles: ch.Roles, Materials: pal.Roles(), Chair: true, Dedupe: true}
		return &Node{Name: "model", Kind: KindModel, Model: m}
	case assets.StatusPending:
		return placeholder("model", chairPlaceholder)
	default:
		return ChairNode(ch.Style, pal)
	}
}

// modelStatus returns the status of the model of the item, which is
// [assets.StatusFailed] when there is no model to load.
func modelStatus(it catalog.Info, models ModelStatus) assets.Status {
	if !it.HasModel() || models == nil {
		return assets.StatusFailed
	}
	return models(it.Model)
}

func placeholder(name string, size math32.Vector3) *Node {
	return &Node{Name: name, Kind: KindPlaceholder, Size: size, Pos: math32.Vec3(0, size.Y/2, 0), Material: Placeholder}
}
