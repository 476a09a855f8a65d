// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panels

import (
	"fmt"
	"strings"

	"cogentcore.org/diningset/catalog"
)

// Filter is the filter of an item grid. It belongs to the panel,
// not to the configuration, and is cleared whenever the panel opens.
type Filter struct {

	// Tag is the classification to show, or [catalog.All].
	Tag string

	// Query is the search text.
	Query string
}

// Reset clears the filter.
func (f *Filter) Reset() {
	*f = Filter{Tag: catalog.All}
}

// Tags returns the filter tags for the given classification values,
// starting with [catalog.All].
func Tags[E fmt.Stringer](values []E) []string {
	tags := make([]string, 0, len(values)+1)
	tags = append(tags, catalog.All)
	for _, v := range values {
		tags = append(tags, v.String())
	}
	return tags
}

// Visible returns the items of c that pass the filter. Without a query
// the items are in catalog order; with one they are best matches first.
func Visible[T catalog.Item, E fmt.Stringer](c *catalog.Catalog[T], f Filter, classify func(it T) E) []T {
	tagged := catalog.FilterBy(c, f.Tag, classify)
	if strings.TrimSpace(f.Query) == "" {
		return tagged
	}
	keep := make(map[string]bool, len(tagged))
	for _, it := range tagged {
		keep[it.ItemInfo().ID] = true
	}
	var res []T
	for _, it := range c.Search(f.Query, catalog.DefaultSearchThreshold) {
		if keep[it.ItemInfo().ID] {
			res = append(res, it)
		}
	}
	return res
}
