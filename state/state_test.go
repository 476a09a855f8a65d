// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	st := Default()
	assert.Equal(t, SizeMedium, st.Size)
	assert.Equal(t, "K-DT-01", st.Table)
	assert.Equal(t, "VR-001", st.TableTop)
	assert.Equal(t, "K-CH-1", st.Chair)
	assert.Equal(t, WoodOakLight, st.Wood)
	assert.Equal(t, LeatherTan, st.Leather)
	assert.Equal(t, ShapeRoundedRectangle, st.Shape)
	assert.Equal(t, SceneApartment, st.Scene)
	assert.Equal(t, 0, st.Reset)
}

func TestSeats(t *testing.T) {
	assert.Equal(t, 4, SizeSmall.Seats())
	assert.Equal(t, 6, SizeMedium.Seats())
	assert.Equal(t, 8, SizeLarge.Seats())
	assert.Equal(t, 6, SizesN.Seats())
}

func TestUpdateMerge(t *testing.T) {
	s := NewStore(Default())
	before := s.Get()
	s.Update(new(Patch).SetWood(WoodWalnutDark))
	after := s.Get()

	assert.Equal(t, WoodWalnutDark, after.Wood)
	after.Wood = before.Wood
	assert.Equal(t, before, after)
}

func TestUpdateMultiple(t *testing.T) {
	s := NewStore(Default())
	s.Update(new(Patch).SetSize(SizeLarge).SetLeather(LeatherOlive).SetScene(SceneNight).SetShape(ShapeBoat))
	st := s.Get()
	assert.Equal(t, SizeLarge, st.Size)
	assert.Equal(t, LeatherOlive, st.Leather)
	assert.Equal(t, SceneNight, st.Scene)
	assert.Equal(t, ShapeBoat, st.Shape)
	assert.Equal(t, WoodOakLight, st.Wood)
}

func TestSetters(t *testing.T) {
	s := NewStore(Default())
	s.SetTable("K-DT-07")
	s.SetTableTop("VR-021")
	s.SetChair("K-CH-99")
	st := s.Get()
	assert.Equal(t, "K-DT-07", st.Table)
	assert.Equal(t, "VR-021", st.TableTop)
	assert.Equal(t, "K-CH-99", st.Chair)
}

func TestObservers(t *testing.T) {
	s := NewStore(Default())
	var calls []string
	s.OnChange(func(old, new State) {
		calls = append(calls, "first:"+old.Chair+">"+new.Chair)
	})
	s.OnChange(func(old, new State) {
		calls = append(calls, "second:"+new.Chair)
	})

	s.SetChair("K-CH-5")
	require.Equal(t, []string{"first:K-CH-1>K-CH-5", "second:K-CH-5"}, calls)

	s.SetChair("K-CH-5")
	s.Update(nil)
	s.Update(&Patch{})
	assert.Len(t, calls, 2)
}

func TestTriggerReset(t *testing.T) {
	s := NewStore(Default())
	n := 0
	s.OnChange(func(old, new State) {
		assert.Equal(t, old.Reset+1, new.Reset)
		n++
	})
	for range 7 {
		s.TriggerReset()
	}
	assert.Equal(t, 7, s.Get().Reset)
	assert.Equal(t, 7, n)
}

func TestPatch(t *testing.T) {
	var p *Patch
	assert.True(t, p.IsEmpty())
	assert.Equal(t, Default(), p.Apply(Default()))
	assert.True(t, (&Patch{}).IsEmpty())
	assert.False(t, new(Patch).SetTable("x").IsEmpty())
}

func TestEnumText(t *testing.T) {
	var w WoodTones
	require.NoError(t, w.SetString("walnut_dark"))
	assert.Equal(t, WoodWalnutDark, w)
	assert.Error(t, w.SetString("mahogany"))
	assert.Equal(t, "rounded_rectangle", ShapeRoundedRectangle.String())
	assert.Len(t, ScenePresetsValues(), 5)
}
