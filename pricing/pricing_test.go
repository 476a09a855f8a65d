// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pricing

import (
	"testing"

	"cogentcore.org/diningset/catalog"
	"cogentcore.org/diningset/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestPriceScenario(t *testing.T) {
	// small, exotic stone, dark walnut and tan leather on four chairs
	assert.Equal(t, 3490, Price(state.SizeSmall, catalog.StoneExotic, state.WoodWalnutDark, state.LeatherTan, 4))
	assert.Equal(t, Base+PremiumStoneSurcharge+PremiumWoodSurcharge+4*PremiumLeatherSurcharge,
		Price(state.SizeSmall, catalog.StoneExotic, state.WoodWalnutDark, state.LeatherTan, 4))
}

func TestPriceDeterministic(t *testing.T) {
	a := Price(state.SizeLarge, catalog.StoneExotic, state.WoodWalnutDark, state.LeatherTan, 8)
	b := Price(state.SizeLarge, catalog.StoneExotic, state.WoodWalnutDark, state.LeatherTan, 8)
	assert.Equal(t, 5230, a)
	assert.Equal(t, a, b)
}

func TestPriceMonotonicSize(t *testing.T) {
	for _, stone := range catalog.StoneCategoriesValues() {
		for _, wood := range state.WoodTonesValues() {
			for _, leather := range state.LeatherColorsValues() {
				for _, chairs := range []int{0, 4, 6, 8} {
					s := Price(state.SizeSmall, stone, wood, leather, chairs)
					m := Price(state.SizeMedium, stone, wood, leather, chairs)
					l := Price(state.SizeLarge, stone, wood, leather, chairs)
					assert.Greater(t, m, s)
					assert.Greater(t, l, m)
				}
			}
		}
	}
}

func TestSurcharges(t *testing.T) {
	tests := []struct {
		stone catalog.StoneCategories
		want  int
	}{
		{catalog.StoneWhite, LightStoneSurcharge},
		{catalog.StoneCream, LightStoneSurcharge},
		{catalog.StoneGrey, 0},
		{catalog.StoneDark, PremiumStoneSurcharge},
		{catalog.StoneExotic, PremiumStoneSurcharge},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StoneSurcharge(tt.stone), tt.stone.String())
	}
	assert.Equal(t, 0, WoodSurcharge(state.WoodCharcoal))
	assert.Equal(t, 0, LeatherSurcharge(state.LeatherBlack))
	assert.Equal(t, PremiumLeatherSurcharge, LeatherSurcharge(state.LeatherWhite))
	assert.Equal(t, 2400, Price(state.SizeSmall, catalog.StoneGrey, state.WoodNatural, state.LeatherTan, 0))
}

func TestEstimate(t *testing.T) {
	cats := catalog.Default()
	st := state.Default()
	st.Size = state.SizeSmall
	st.TableTop = "VR-003"
	st.Wood = state.WoodWalnutDark
	st.Leather = state.LeatherTan
	assert.Equal(t, 3490, Estimate(st, cats))

	st.TableTop = "VR-999"
	assert.Equal(t, 3490-PremiumStoneSurcharge, Estimate(st, cats))

	st = state.Default()
	assert.Equal(t, Price(state.SizeMedium, catalog.StoneWhite, state.WoodOakLight, state.LeatherTan, 6), Estimate(st, cats))
}

func TestFormat(t *testing.T) {
	f, err := NewFormatter("en", "EUR")
	require.NoError(t, err)
	out := f.Format(3490)
	assert.Contains(t, out, "3,490")
	assert.NotEqual(t, "3,490", out)

	f, err = NewFormatter("de", "EUR")
	require.NoError(t, err)
	assert.Contains(t, f.Format(3490), "3.490")

	_, err = NewFormatter("en", "notacurrency")
	assert.Error(t, err)
	_, err = NewFormatter("!!", "EUR")
	assert.Error(t, err)

	assert.NotEmpty(t, DetectLocale())
}

func TestDetectLocaleC(t *testing.T) {
	for _, k := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES"} {
		t.Setenv(k, "")
	}
	t.Setenv("LANG", "C.UTF-8")
	assert.Equal(t, "en", DetectLocale())

	f, err := NewFormatter("", "EUR")
	require.NoError(t, err)
	assert.Equal(t, language.English, f.Language)
}
