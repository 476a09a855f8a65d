// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"html"
	"strings"

	"github.com/gomarkdown/markdown"
	strip "github.com/grokify/html-strip-tags-go"
)

// DescriptionHTML returns the markdown description of the item rendered as HTML.
func DescriptionHTML(it Item) string {
	return string(markdown.ToHTML([]byte(it.ItemInfo().Description), nil, nil))
}

// Tooltip returns the description of the item as plain text,
// with all markdown formatting removed.
func Tooltip(it Item) string {
	txt := html.UnescapeString(strip.StripTags(DescriptionHTML(it)))
	return strings.Join(strings.Fields(txt), " ")
}
