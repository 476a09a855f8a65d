// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog provides the static product catalogs of the
// dining set configurator: table designs, stone table tops and chairs.
package catalog

//go:generate core generate

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
)

// All is the pseudo-tag that matches every item in [FilterBy].
const All = "all"

// Info is the display metadata shared by every catalog item.
type Info struct {

	// ID is the stable product code of the item, unique within its catalog.
	ID string `toml:"id"`

	// Name is the display name.
	Name string `toml:"name"`

	// Description is a short markdown description.
	Description string `toml:"description"`

	// Thumbnail is the asset path of the catalog page showing the item.
	Thumbnail string `toml:"thumbnail"`

	// ThumbnailIndex is the cell of the item on its catalog page,
	// counted from the top.
	ThumbnailIndex int `toml:"thumbnail_index"`

	// ThumbnailCells is the number of items stacked vertically on the
	// catalog page. Zero or one means the page shows only this item.
	ThumbnailCells int `toml:"thumbnail_cells"`

	// Model is the optional asset path of an authored 3D model.
	// When empty, the item is rendered procedurally.
	Model string `toml:"model"`
}

// ItemInfo returns the info itself, making every type
// that embeds [Info] an [Item].
func (in Info) ItemInfo() Info {
	return in
}

// HasModel returns whether the item has an authored 3D model.
func (in Info) HasModel() bool {
	return in.Model != ""
}

// Item is implemented by all catalog entries.
type Item interface {
	ItemInfo() Info
}

// Catalog is an ordered, immutable list of items with an index by id.
type Catalog[T Item] struct {
	items []T
	index map[string]int
}

// New returns a new catalog of the given items in the given order.
// It returns an error if any id is empty or duplicated.
func New[T Item](items []T) (*Catalog[T], error) {
	c := &Catalog[T]{items: slices.Clone(items), index: make(map[string]int, len(items))}
	var errs []error
	for i, it := range c.items {
		id := it.ItemInfo().ID
		if id == "" {
			errs = append(errs, fmt.Errorf("item %d has no id", i))
			continue
		}
		if prev, has := c.index[id]; has {
			errs = append(errs, fmt.Errorf("duplicate id %q at items %d and %d", id, prev, i))
			continue
		}
		c.index[id] = i
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// All returns all of the items in catalog order.
func (c *Catalog[T]) All() []T {
	return slices.Clone(c.items)
}

// Len returns the number of items.
func (c *Catalog[T]) Len() int {
	return len(c.items)
}

// Lookup returns the item with the given id, and false if there is none.
func (c *Catalog[T]) Lookup(id string) (T, bool) {
	if i, ok := c.index[id]; ok {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Filter returns the items for which keep returns true, in catalog order.
func (c *Catalog[T]) Filter(keep func(it T) bool) []T {
	var res []T
	for _, it := range c.items {
		if keep(it) {
			res = append(res, it)
		}
	}
	return res
}

// FilterBy returns the items whose classification, as returned by
// classify, has the given string form. The [All] tag returns all items.
func FilterBy[T Item, E fmt.Stringer](c *Catalog[T], tag string, classify func(it T) E) []T {
	if tag == All || tag == "" {
		return c.All()
	}
	return c.Filter(func(it T) bool {
		return classify(it).String() == tag
	})
}
