// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/diningset/catalog"
	"cogentcore.org/diningset/state"
)

// Material is the surface of a part, in physically based terms.
type Material struct {

	// Name identifies the material, such as "wood/oak_light".
	Name string

	Color color.RGBA

	// Roughness is 0 for a mirror finish and 1 for a fully diffuse one.
	Roughness float32

	// Metalness is 0 for dielectrics and 1 for metals.
	Metalness float32
}

// Opacity returns the opacity of the material in the range 0-1.
func (m Material) Opacity() float32 {
	return float32(m.Color.A) / 255
}

// NeutralStone is the stone color used when the selected stone is unknown.
const NeutralStone = "#e8e8e8"

var woodColors = map[state.WoodTones]string{
	state.WoodNatural:    "#dcb27e",
	state.WoodWalnutDark: "#5c4033",
	state.WoodOakLight:   "#e0cda7",
	state.WoodEspresso:   "#2b1d16",
	state.WoodCharcoal:   "#2f2f2f",
}

var leatherColors = map[state.LeatherColors]string{
	state.LeatherBlack: "#111111",
	state.LeatherTan:   "#b07b48",
	state.LeatherBrown: "#5d3a29",
	state.LeatherGrey:  "#5e6369",
	state.LeatherWhite: "#f0f0f0",
	state.LeatherOlive: "#555d40",
}

// hex parses a color known to be valid.
func hex(s string) color.RGBA {
	return errors.Must1(colors.FromHex(s))
}

// Wood returns the material of wooden parts.
func Wood(w state.WoodTones) Material {
	c, ok := woodColors[w]
	if !ok {
		c = woodColors[state.WoodOakLight]
	}
	return Material{Name: "wood/" + w.String(), Color: hex(c), Roughness: 0.3}
}

// Leather returns the material of upholstered parts.
func Leather(l state.LeatherColors) Material {
	c, ok := leatherColors[l]
	if !ok {
		c = leatherColors[state.LeatherTan]
	}
	return Material{Name: "leather/" + l.String(), Color: hex(c), Roughness: 0.45, Metalness: 0.05}
}

// Stone returns the material of the table top for the given stone.
// A nil stone gets the [NeutralStone] color.
func Stone(s *catalog.Stone) Material {
	if s == nil {
		return Material{Name: "stone/neutral", Color: hex(NeutralStone), Roughness: 0.05, Metalness: 0.1}
	}
	c, err := colors.FromHex(s.Color)
	if err != nil {
		c = hex(NeutralStone)
	}
	return Material{Name: "stone/" + s.ID, Color: c, Roughness: 0.05, Metalness: 0.1}
}

// Metal is the brass material of metal accents.
var Metal = Material{Name: "metal/brass", Color: hex("#d4af37"), Roughness: 0.2, Metalness: 0.9}

// Placeholder is the material of placeholders for loading models.
var Placeholder = Material{Name: "placeholder", Color: color.RGBA{0x88, 0x88, 0x88, 77}, Roughness: 1}

// Palette is the set of materials for one configuration.
type Palette struct {
	Wood    Material
	Leather Material
	Stone   Material
	Metal   Material
}

// ForRole returns the material of the given role, and false for [catalog.RoleNone].
func (p *Palette) ForRole(r catalog.MaterialRoles) (Material, bool) {
	switch r {
	case catalog.RoleLeather:
		return p.Leather, true
	case catalog.RoleWood:
		return p.Wood, true
	case catalog.RoleStone:
		return p.Stone, true
	case catalog.RoleMetal:
		return p.Metal, true
	default:
		return Material{}, false
	}
}

// Roles returns the materials of all roles, keyed by role.
func (p *Palette) Roles() map[catalog.MaterialRoles]Material {
	return map[catalog.MaterialRoles]Material{
		catalog.RoleLeather: p.Leather,
		catalog.RoleWood:    p.Wood,
		catalog.RoleStone:   p.Stone,
		catalog.RoleMetal:   p.Metal,
	}
}
