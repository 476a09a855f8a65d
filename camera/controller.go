// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

// Epsilon is the distance below which a transition is complete.
const Epsilon = 1e-3

// Controller tracks the focused part and moves the camera toward its view
// every frame until it arrives. Once arrived it leaves the camera alone,
// so the user can orbit freely until the focus changes again.
type Controller struct {

	// Focus is the currently focused part.
	Focus Parts

	target View
	active bool
	reset  int
}

// NewController returns a controller that is idle at [PartNone], with the
// given value of the reset counter as the last one seen.
func NewController(reset int) *Controller {
	return &Controller{target: DefaultView, reset: reset}
}

// SetFocus focuses the given part. The transition toward its view starts
// from wherever the camera is on the next frame, replacing any transition
// in progress.
func (c *Controller) SetFocus(p Parts) {
	c.Focus = p
	c.target = ViewFor(p)
	c.active = true
}

// Target returns the view the controller is moving toward.
func (c *Controller) Target() View {
	return c.target
}

// Active returns whether a transition is in progress.
func (c *Controller) Active() bool {
	return c.active
}

// Reset reports whether the given reset counter differs from the last
// one seen. If so, the camera must snap to [DefaultView] without a
// transition, and the controller stays idle until the next focus change.
func (c *Controller) Reset(counter int) bool {
	if counter == c.reset {
		return false
	}
	c.reset = counter
	c.target = DefaultView
	c.active = false
	return true
}

// Tick advances the transition by dt seconds from the current view.
// It returns the new view and whether the camera must be updated.
func (c *Controller) Tick(cur View, dt float32) (View, bool) {
	if !c.active {
		return cur, false
	}
	next := Next(cur, c.target, dt)
	if Distance(next, c.target) < Epsilon {
		next = c.target
		c.active = false
	}
	return next, true
}
