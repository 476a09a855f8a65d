// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/xyz"
	"cogentcore.org/diningset/compose"
)

// MaxShiny is the Phong shininess of a perfectly smooth surface.
const MaxShiny = 128

// Phong returns the Phong shininess and reflectivity that approximate
// the given roughness and metalness. Rough surfaces spread highlights,
// and metals reflect more of the light.
func Phong(m compose.Material) (shiny, reflective float32) {
	smooth := 1 - min(max(m.Roughness, 0), 1)
	shiny = 1 + smooth*smooth*(MaxShiny-1)
	reflective = 0.1 + 0.4*smooth + 0.5*min(max(m.Metalness, 0), 1)
	return
}

// SetMaterial sets the material of the solid.
func SetMaterial(sld *xyz.Solid, m compose.Material) {
	shiny, refl := Phong(m)
	sld.SetColor(m.Color).SetShiny(shiny).SetReflective(refl)
	// translucent placeholders show their back faces
	sld.Material.CullBack = m.Opacity() == 1
}
