// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "log/slog"

// Store holds the current [State] of a session. It is created once by the
// app and passed to everything that reads or changes the configuration.
// A Store must only be used from the UI goroutine.
type Store struct {
	current   State
	observers []func(old, new State)
}

// NewStore returns a new store starting with the given state.
func NewStore(initial State) *Store {
	return &Store{current: initial}
}

// Get returns the current state.
func (s *Store) Get() State {
	return s.current
}

// OnChange adds a function that is called after every change of the state,
// with the state before and after the change. Observers are called
// synchronously, in the order they were added.
func (s *Store) OnChange(fun func(old, new State)) {
	s.observers = append(s.observers, fun)
}

// Update merges the given patch into the current state and notifies
// the observers. Nothing happens if the patch does not change the state.
func (s *Store) Update(p *Patch) {
	next := p.Apply(s.current)
	if next == s.current {
		return
	}
	old := s.current
	s.current = next
	slog.Debug("configuration changed", "old", old, "new", next)
	for _, fun := range s.observers {
		fun(old, next)
	}
}

// SetTable selects the table design with the given id.
func (s *Store) SetTable(id string) {
	s.Update(new(Patch).SetTable(id))
}

// SetTableTop selects the stone with the given id.
func (s *Store) SetTableTop(id string) {
	s.Update(new(Patch).SetTableTop(id))
}

// SetChair selects the chair with the given id.
func (s *Store) SetChair(id string) {
	s.Update(new(Patch).SetChair(id))
}

// TriggerReset increments [State.Reset], which snaps the camera
// back to its default view.
func (s *Store) TriggerReset() {
	n := s.current.Reset + 1
	s.Update(&Patch{Reset: &n})
}
