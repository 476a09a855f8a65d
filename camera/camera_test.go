// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestViewFor(t *testing.T) {
	assert.Equal(t, DefaultView, ViewFor(PartNone))
	assert.Equal(t, DefaultView, ViewFor(PartsN))
	assert.Equal(t, math32.Vec3(0, 2.2, 0.1), ViewFor(PartTabletop).Pos)
	assert.Equal(t, math32.Vec3(0, 0.76, 0), ViewFor(PartFinish).Target)
	for _, p := range PartsValues()[1:] {
		assert.NotEqual(t, DefaultView, ViewFor(p), p.String())
	}
}

func TestNext(t *testing.T) {
	cur := View{Pos: math32.Vec3(0, 0, 0), Target: math32.Vec3(0, 0, 0)}
	target := View{Pos: math32.Vec3(4, 0, 0), Target: math32.Vec3(0, 8, 0)}

	assert.Equal(t, cur, Next(cur, target, 0))
	assert.Equal(t, target, Next(cur, target, 1))

	n := Next(cur, target, 0.1)
	tolassert.EqualTol(t, 1, n.Pos.X, 1e-5)
	tolassert.EqualTol(t, 2, n.Target.Y, 1e-5)
}

func TestNextConverges(t *testing.T) {
	cur := DefaultView
	target := ViewFor(PartScene)
	prev := Distance(cur, target)
	for range 600 {
		cur = Next(cur, target, 1.0/60)
		d := Distance(cur, target)
		assert.LessOrEqual(t, d, prev+1e-6)
		prev = d
	}
	assert.Less(t, prev, float32(Epsilon))
}

func TestControllerTransition(t *testing.T) {
	c := NewController(0)
	assert.False(t, c.Active())
	v, changed := c.Tick(DefaultView, 1.0/60)
	assert.False(t, changed)
	assert.Equal(t, DefaultView, v)

	c.SetFocus(PartChairs)
	assert.True(t, c.Active())
	cur := DefaultView
	frames := 0
	for c.Active() && frames < 10000 {
		cur, changed = c.Tick(cur, 1.0/60)
		assert.True(t, changed)
		frames++
	}
	assert.Equal(t, ViewFor(PartChairs), cur)
	assert.Less(t, frames, 1000)
}

func TestControllerRedirect(t *testing.T) {
	c := NewController(0)
	c.SetFocus(PartTabletop)
	cur, _ := c.Tick(DefaultView, 0.1)
	c.SetFocus(PartScene)
	assert.Equal(t, ViewFor(PartScene), c.Target())
	next, _ := c.Tick(cur, 0.1)
	assert.Less(t, Distance(next, ViewFor(PartScene)), Distance(cur, ViewFor(PartScene)))

	c.SetFocus(PartNone)
	assert.Equal(t, DefaultView, c.Target())
	assert.True(t, c.Active())
}

func TestControllerReset(t *testing.T) {
	c := NewController(3)
	assert.False(t, c.Reset(3))
	for _, p := range PartsValues() {
		c.SetFocus(p)
		counter := 4 + int(p)
		assert.True(t, c.Reset(counter), p.String())
		assert.False(t, c.Reset(counter))
		assert.False(t, c.Active())
		assert.Equal(t, DefaultView, c.Target())
	}
}
