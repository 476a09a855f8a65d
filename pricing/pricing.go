// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pricing computes the price estimate of a dining set configuration.
package pricing

import (
	"cogentcore.org/diningset/catalog"
	"cogentcore.org/diningset/state"
)

// Price components, in whole currency units. All of them are flat
// amounts that are added together.
const (
	// Base is the price of a small set with standard finishes.
	Base = 2400

	// MediumSurcharge is added for a medium set.
	MediumSurcharge = 600

	// LargeSurcharge is added for a large set.
	LargeSurcharge = 1400

	// PremiumStoneSurcharge is added for dark and exotic stones.
	PremiumStoneSurcharge = 450

	// LightStoneSurcharge is added for white and cream stones.
	LightStoneSurcharge = 150

	// PremiumWoodSurcharge is added for the dark walnut tone.
	PremiumWoodSurcharge = 300

	// PremiumLeatherSurcharge is added per chair for premium leathers.
	PremiumLeatherSurcharge = 85
)

// Price returns the price of a set with the given options and number of chairs.
func Price(size state.Sizes, stone catalog.StoneCategories, wood state.WoodTones, leather state.LeatherColors, chairs int) int {
	return SizePrice(size) + StoneSurcharge(stone) + WoodSurcharge(wood) + chairs*LeatherSurcharge(leather)
}

// Estimate returns the price of the given configuration, resolving the
// stone in the given catalogs and using the number of seats of its size.
// A stone that is not in the catalog adds no stone surcharge.
func Estimate(st state.State, cats *catalog.Catalogs) int {
	total := SizePrice(st.Size) + WoodSurcharge(st.Wood) + st.Size.Seats()*LeatherSurcharge(st.Leather)
	if stone, ok := cats.Stones.Lookup(st.TableTop); ok {
		total += StoneSurcharge(stone.Category)
	}
	return total
}

// SizePrice returns the base price including the size surcharge.
func SizePrice(size state.Sizes) int {
	switch size {
	case state.SizeMedium:
		return Base + MediumSurcharge
	case state.SizeLarge:
		return Base + LargeSurcharge
	default:
		return Base
	}
}

// StoneSurcharge returns the surcharge for a stone category.
func StoneSurcharge(c catalog.StoneCategories) int {
	switch c {
	case catalog.StoneDark, catalog.StoneExotic:
		return PremiumStoneSurcharge
	case catalog.StoneWhite, catalog.StoneCream:
		return LightStoneSurcharge
	default:
		return 0
	}
}

// WoodSurcharge returns the surcharge for a wood tone.
func WoodSurcharge(w state.WoodTones) int {
	switch w {
	case state.WoodWalnutDark:
		return PremiumWoodSurcharge
	default:
		return 0
	}
}

// LeatherSurcharge returns the per chair surcharge for a leather color.
func LeatherSurcharge(l state.LeatherColors) int {
	switch l {
	case state.LeatherTan, state.LeatherBrown, state.LeatherWhite:
		return PremiumLeatherSurcharge
	default:
		return 0
	}
}
