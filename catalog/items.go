// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

// Table is a table design: the base or frame that carries the stone top.
type Table struct {
	Info

	// Base is the base style, used for filtering and
	// for the procedural base when there is no model.
	Base BaseStyles `toml:"base"`

	// Legs is the number or arrangement of legs.
	Legs LegCounts `toml:"legs"`
}

// Stone is a marble or stone finish for the table top.
type Stone struct {
	Info

	// Color is the hex base color used for rendering.
	Color string `toml:"color"`

	// Category is the color family of the stone, which also drives pricing.
	Category StoneCategories `toml:"category"`

	// Veining is how strongly veined the stone is.
	Veining Veinings `toml:"veining"`
}

// Chair is a chair model.
type Chair struct {
	Info

	// Style is the silhouette used for the procedural chair
	// when there is no model.
	Style ChairStyles `toml:"style"`

	// Category is used for filtering.
	Category ChairCategories `toml:"category"`

	// Roles optionally maps mesh names of the authored model
	// to the material role they should receive.
	Roles map[string]MaterialRoles `toml:"roles"`
}

// BaseStyles are the table base styles.
type BaseStyles int32 //enums:enum -trim-prefix Base -transform snake

const (
	// BaseVShaped has V-shaped legs at each end.
	BaseVShaped BaseStyles = iota

	// BaseXShaped has X-cross legs at each end.
	BaseXShaped

	// BaseSlab has solid slab legs.
	BaseSlab

	// BaseSculptural has an artistic sculptural pedestal.
	BaseSculptural

	// BaseCylindrical has column legs.
	BaseCylindrical

	// BaseSplayed has angled legs.
	BaseSplayed

	// BaseTrestle has a trestle frame.
	BaseTrestle

	// BaseCurved has curved or cabriole legs.
	BaseCurved

	// BaseGeometric has a geometric frame.
	BaseGeometric

	// BaseMinimal has a simple minimal frame.
	BaseMinimal

	// BaseOrganic has an organic, flowing base.
	BaseOrganic
)

// LegCounts are the leg arrangements of a table base.
type LegCounts int32 //enums:enum -trim-prefix Legs -transform snake

const (
	// LegsTwo has two leg assemblies, one at each end.
	LegsTwo LegCounts = iota

	// LegsFour has a leg at each corner.
	LegsFour

	// LegsCentral has a single central pedestal.
	LegsCentral
)

// StoneCategories are the color families of table top stones.
type StoneCategories int32 //enums:enum -trim-prefix Stone -transform snake

const (
	// StoneWhite is white marble with subtle veining.
	StoneWhite StoneCategories = iota

	// StoneGrey is grey toned stone.
	StoneGrey

	// StoneDark is dark or black stone.
	StoneDark

	// StoneExotic is stone with unusual colors.
	StoneExotic

	// StoneCream is beige or cream toned stone.
	StoneCream
)

// Veinings are the veining intensities of a stone.
type Veinings int32 //enums:enum -trim-prefix Veining -transform snake

const (
	VeiningLight Veinings = iota
	VeiningMedium
	VeiningHeavy
)

// ChairStyles are the chair silhouettes.
type ChairStyles int32 //enums:enum -trim-prefix Chair -transform snake

const (
	// ChairRoundBack has a rounded upholstered back.
	ChairRoundBack ChairStyles = iota

	// ChairWing is a wing chair with an exposed wood frame.
	ChairWing

	// ChairArtisticRound has a circular back on a tripod base.
	ChairArtisticRound

	// ChairQuilted has a diamond quilted back.
	ChairQuilted

	// ChairOpenFrame has an open wooden frame with a fabric seat.
	ChairOpenFrame

	// ChairRibbed has a vertically ribbed back.
	ChairRibbed

	// ChairClassic is a classic straight upholstered chair.
	ChairClassic

	// ChairTub is a curved wrap-around tub chair.
	ChairTub
)

// ChairCategories are the chair families used for filtering.
type ChairCategories int32 //enums:enum -transform snake

const (
	Upholstered ChairCategories = iota
	Wooden
	Artistic
)

// MaterialRoles are the semantic roles of the parts of a
// piece of furniture, each of which receives its own material.
type MaterialRoles int32 //enums:enum -trim-prefix Role -transform snake

const (
	// RoleNone keeps the material of the part as authored.
	RoleNone MaterialRoles = iota

	// RoleLeather is upholstery: seats, backs and cushions.
	RoleLeather

	// RoleWood is the wooden frame: legs, rails and armrests.
	RoleWood

	// RoleStone is the table top.
	RoleStone

	// RoleMetal is metal hardware and accents.
	RoleMetal
)
