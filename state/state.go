// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state holds the current configuration of the dining set
// and notifies observers when it changes.
package state

// Default catalog selections.
const (
	DefaultTable    = "K-DT-01"
	DefaultTableTop = "VR-001"
	DefaultChair    = "K-CH-1"
)

// State is a snapshot of every user selection. The catalog ids are not
// validated here; an id without a catalog entry is handled when the
// scene is composed.
type State struct {

	// Size is the seating capacity tier.
	Size Sizes

	// Table is the id of the selected table design.
	Table string

	// TableTop is the id of the selected stone.
	TableTop string

	// Shape is the outline of the stone top.
	Shape StoneShapes

	// Wood is the tone of all wooden parts.
	Wood WoodTones

	// Chair is the id of the selected chair.
	Chair string

	// Leather is the upholstery color of the chairs.
	Leather LeatherColors

	// Scene is the environment preset.
	Scene ScenePresets

	// Reset is incremented to snap the camera back to its default view.
	Reset int
}

// Default returns the state a new session starts with.
func Default() State {
	return State{
		Size:     SizeMedium,
		Table:    DefaultTable,
		TableTop: DefaultTableTop,
		Shape:    ShapeRoundedRectangle,
		Wood:     WoodOakLight,
		Chair:    DefaultChair,
		Leather:  LeatherTan,
		Scene:    SceneApartment,
	}
}

// Patch is a partial update of a [State]: only non-nil fields are applied.
type Patch struct {
	Size     *Sizes
	Table    *string
	TableTop *string
	Shape    *StoneShapes
	Wood     *WoodTones
	Chair    *string
	Leather  *LeatherColors
	Scene    *ScenePresets
	Reset    *int
}

// Apply returns the given state with the fields of the patch merged in.
func (p *Patch) Apply(st State) State {
	if p == nil {
		return st
	}
	if p.Size != nil {
		st.Size = *p.Size
	}
	if p.Table != nil {
		st.Table = *p.Table
	}
	if p.TableTop != nil {
		st.TableTop = *p.TableTop
	}
	if p.Shape != nil {
		st.Shape = *p.Shape
	}
	if p.Wood != nil {
		st.Wood = *p.Wood
	}
	if p.Chair != nil {
		st.Chair = *p.Chair
	}
	if p.Leather != nil {
		st.Leather = *p.Leather
	}
	if p.Scene != nil {
		st.Scene = *p.Scene
	}
	if p.Reset != nil {
		st.Reset = *p.Reset
	}
	return st
}

// IsEmpty returns whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p == nil || *p == Patch{}
}

// SetSize sets the [Patch.Size].
func (p *Patch) SetSize(v Sizes) *Patch { p.Size = &v; return p }

// SetTable sets the [Patch.Table].
func (p *Patch) SetTable(v string) *Patch { p.Table = &v; return p }

// SetTableTop sets the [Patch.TableTop].
func (p *Patch) SetTableTop(v string) *Patch { p.TableTop = &v; return p }

// SetShape sets the [Patch.Shape].
func (p *Patch) SetShape(v StoneShapes) *Patch { p.Shape = &v; return p }

// SetWood sets the [Patch.Wood].
func (p *Patch) SetWood(v WoodTones) *Patch { p.Wood = &v; return p }

// SetChair sets the [Patch.Chair].
func (p *Patch) SetChair(v string) *Patch { p.Chair = &v; return p }

// SetLeather sets the [Patch.Leather].
func (p *Patch) SetLeather(v LeatherColors) *Patch { p.Leather = &v; return p }

// SetScene sets the [Patch.Scene].
func (p *Patch) SetScene(v ScenePresets) *Patch { p.Scene = &v; return p }
