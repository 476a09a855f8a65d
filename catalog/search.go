// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// DefaultSearchThreshold is the minimum similarity for a fuzzy match in [Catalog.Search].
const DefaultSearchThreshold = 0.85

// Search returns the items whose name or id matches the given query,
// best matches first. A query that is a substring of the name or id
// always matches; otherwise each word of the name is compared to the
// query using Jaro-Winkler similarity, and must reach the threshold.
// An empty query returns all items in catalog order.
func (c *Catalog[T]) Search(query string, threshold float64) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.All()
	}
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	type scored struct {
		item  T
		score float64
	}
	var res []scored
	for _, it := range c.items {
		in := it.ItemInfo()
		name := strings.ToLower(in.Name)
		if strings.Contains(name, query) || strings.Contains(strings.ToLower(in.ID), query) {
			res = append(res, scored{it, 1})
			continue
		}
		best := 0.0
		for _, w := range strings.Fields(name) {
			best = max(best, strutil.Similarity(query, w, jw))
		}
		if best >= threshold {
			res = append(res, scored{it, best})
		}
	}
	slices.SortStableFunc(res, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})
	items := make([]T, len(res))
	for i, r := range res {
		items[i] = r.item
	}
	return items
}
