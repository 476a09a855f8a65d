// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

//go:generate core generate

// Sizes are the seating capacity tiers of a dining set.
type Sizes int32 //enums:enum -trim-prefix Size -transform snake

const (
	// SizeSmall seats four.
	SizeSmall Sizes = iota

	// SizeMedium seats six.
	SizeMedium

	// SizeLarge seats eight.
	SizeLarge
)

// Seats returns the number of chairs that come with the size.
func (s Sizes) Seats() int {
	switch s {
	case SizeSmall:
		return 4
	case SizeLarge:
		return 8
	default:
		return 6
	}
}

// WoodTones are the lacquer tones applied to every wooden part.
type WoodTones int32 //enums:enum -trim-prefix Wood -transform snake

const (
	WoodNatural WoodTones = iota
	WoodWalnutDark
	WoodOakLight
	WoodEspresso
	WoodCharcoal
)

// LeatherColors are the upholstery colors applied to every chair.
type LeatherColors int32 //enums:enum -trim-prefix Leather -transform snake

const (
	LeatherBlack LeatherColors = iota
	LeatherTan
	LeatherBrown
	LeatherGrey
	LeatherWhite
	LeatherOlive
)

// StoneShapes are the outlines of the stone table top.
type StoneShapes int32 //enums:enum -trim-prefix Shape -transform snake

const (
	// ShapeRectangle is a plain rectangle.
	ShapeRectangle StoneShapes = iota

	// ShapeOval is an ellipse inscribed in the table rectangle.
	ShapeOval

	// ShapeRoundedRectangle is a rectangle with rounded corners.
	ShapeRoundedRectangle

	// ShapeBoat is a hull with curved long sides and straight ends.
	ShapeBoat

	// ShapeOrganic is a soft asymmetric free-form outline.
	ShapeOrganic
)

// ScenePresets are the environments the dining set is shown in.
type ScenePresets int32 //enums:enum -trim-prefix Scene -transform snake

const (
	// SceneStudio is a bright neutral studio.
	SceneStudio ScenePresets = iota

	// SceneApartment is a home interior.
	SceneApartment

	// SceneCity is an urban loft with daylight.
	SceneCity

	// SceneSunset is warm evening light.
	SceneSunset

	// SceneNight is dim evening light.
	SceneNight
)
