// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panels

import (
	"cogentcore.org/core/base/strcase"
	"cogentcore.org/core/icons"
	"cogentcore.org/diningset/camera"
)

// Section is one button of the bottom bar and the panel it opens.
type Section struct {

	// Part is the part of the set that the camera focuses on
	// while the section is open or hovered.
	Part camera.Parts

	// Label is the text of the button.
	Label string

	// Icon is the icon of the button.
	Icon icons.Icon
}

// Sections are the sections of the bottom bar, in order.
var Sections = []Section{
	{Part: camera.PartTableDesign, Label: "Style", Icon: icons.Style},
	{Part: camera.PartSize, Label: "Size", Icon: icons.Straighten},
	{Part: camera.PartTabletop, Label: "Tabletop", Icon: icons.GridView},
	{Part: camera.PartFinish, Label: "Finish", Icon: icons.Palette},
	{Part: camera.PartChairs, Label: "Chairs", Icon: icons.Chair},
	{Part: camera.PartScene, Label: "Scene", Icon: icons.Landscape},
}

// SectionFor returns the section that focuses the given part,
// and false if there is none.
func SectionFor(p camera.Parts) (Section, bool) {
	for _, s := range Sections {
		if s.Part == p {
			return s, true
		}
	}
	return Section{}, false
}

// Bar is the open and hover state of the bottom bar. At most one
// section is open at a time. The focused part is the hovered part
// while something is hovered, and otherwise the open section.
type Bar struct {
	open  camera.Parts
	hover camera.Parts
}

// Open returns the part of the open section, or [camera.PartNone].
func (b *Bar) Open() camera.Parts {
	return b.open
}

// Toggle opens the section of the given part, closing any other one,
// or closes it if it is already open.
func (b *Bar) Toggle(p camera.Parts) {
	if b.open == p {
		b.open = camera.PartNone
		return
	}
	b.open = p
}

// Close closes the open section.
func (b *Bar) Close() {
	b.open = camera.PartNone
}

// Hover sets the part under the pointer; [camera.PartNone] clears it.
func (b *Bar) Hover(p camera.Parts) {
	b.hover = p
}

// Focus returns the part that the camera should focus on.
func (b *Bar) Focus() camera.Parts {
	if b.hover != camera.PartNone {
		return b.hover
	}
	return b.open
}

// Label returns the display label of a snake case value such as
// "walnut_dark".
func Label(s string) string {
	return strcase.ToSentence(s)
}
