// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/diningset/state"
)

// Light is a scene light. A zero Pos is an ambient light.
type Light struct {
	Name   string
	Lumens float32
	Color  color.RGBA
	Pos    math32.Vector3
}

// Environment is the background, lighting and ground of a scene preset.
type Environment struct {
	Background color.RGBA
	Lights     []Light

	// Ground is the ground plane just below the floor.
	Ground *Node
}

// Light colors of the presets, as color temperatures.
var (
	overcast  = color.RGBA{201, 226, 255, 255}
	directSun = color.RGBA{255, 255, 255, 255}
	tungsten  = color.RGBA{255, 214, 170, 255}
	candle    = color.RGBA{255, 147, 41, 255}
	fluorCool = color.RGBA{212, 235, 255, 255}
)

// NewEnvironment returns the environment of the given scene preset.
func NewEnvironment(p state.ScenePresets) *Environment {
	env := &Environment{Background: hex("#202020")}
	ground := Material{Name: "ground", Color: hex("#333333"), Roughness: 0.8}
	ambient, sun := float32(0.6), float32(1.2)
	ambColor, sunColor := directSun, directSun
	switch p {
	case state.SceneStudio:
		env.Background = hex("#f0f0f0")
		ground.Color = hex("#ffffff")
		ambColor, sunColor = overcast, directSun
	case state.SceneSunset:
		ambColor, sunColor = tungsten, candle
	case state.SceneNight:
		ambient, sun = 0.2, 0.3
		ambColor, sunColor = fluorCool, fluorCool
	default: // apartment, city
	}
	env.Lights = []Light{
		{Name: "ambient", Lumens: ambient, Color: ambColor},
		{Name: "sun", Lumens: sun, Color: sunColor, Pos: math32.Vec3(5, 8, 5)},
	}
	env.Ground = &Node{Name: "ground", Kind: KindPlane, Size: math32.Vec3(20, 0, 20), Pos: math32.Vec3(0, -0.01, 0), Material: ground}
	return env
}
