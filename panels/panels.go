// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panels provides the selector panels of the configurator:
// a bottom bar with one button per section, and the panel of the
// open section with the catalog items or options to choose from.
package panels

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/enums"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"cogentcore.org/diningset/assets"
	"cogentcore.org/diningset/camera"
	"cogentcore.org/diningset/catalog"
	"cogentcore.org/diningset/compose"
	"cogentcore.org/diningset/state"
)

// Panels is the bottom bar and the panel of its open section.
// It changes the configuration only through the [state.Store],
// and reports the part to focus through [Panels.OnFocus].
type Panels struct {
	Store    *state.Store
	Catalogs *catalog.Catalogs
	Thumbs   *assets.Loader

	// OnFocus is called with the part to focus whenever it changes.
	OnFocus func(p camera.Parts)

	// OnSelect is called after a catalog item is chosen,
	// with the section it was chosen in.
	OnSelect func(s Section, id string)

	// Bar is the open and hover state of the bar.
	Bar Bar

	filter Filter
	frame  *core.Frame
	grid   *core.Frame
}

// New adds the panels to the given parent. They update themselves
// whenever the configuration changes.
func New(parent tree.Node, store *state.Store, cats *catalog.Catalogs, thumbs *assets.Loader) *Panels {
	p := &Panels{Store: store, Catalogs: cats, Thumbs: thumbs}
	p.filter.Reset()
	p.frame = core.NewFrame(parent)
	p.frame.SetName("panels")
	p.frame.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
		s.Gap.Set(units.Dp(8))
		s.Padding.Set(units.Dp(8))
	})
	p.frame.Maker(p.make)
	store.OnChange(func(old, new state.State) {
		p.frame.Update()
	})
	return p
}

// Frame returns the frame containing the panels.
func (p *Panels) Frame() *core.Frame {
	return p.frame
}

// Toggle opens or closes the section of the given part, as if its
// button was clicked. The filter is cleared either way.
func (p *Panels) Toggle(part camera.Parts) {
	p.focus(func() { p.Bar.Toggle(part) })
	p.filter.Reset()
	p.update()
}

// Close closes the open section.
func (p *Panels) Close() {
	p.focus(p.Bar.Close)
	p.update()
}

// update updates the frame, if the panels have been added to one.
func (p *Panels) update() {
	if p.frame != nil {
		p.frame.Update()
	}
}

// focus applies the given change to the bar, and calls OnFocus
// if the focused part changed.
func (p *Panels) focus(change func()) {
	prev := p.Bar.Focus()
	change()
	if f := p.Bar.Focus(); f != prev && p.OnFocus != nil {
		p.OnFocus(f)
	}
}

// hover makes w focus the given part while the pointer is over it.
func (p *Panels) hover(w core.Widget, part camera.Parts) {
	wb := w.AsWidget()
	wb.On(events.MouseEnter, func(e events.Event) {
		p.focus(func() { p.Bar.Hover(part) })
	})
	wb.On(events.MouseLeave, func(e events.Event) {
		p.focus(func() { p.Bar.Hover(camera.PartNone) })
	})
}

func (p *Panels) make(pl *tree.Plan) {
	if open := p.Bar.Open(); open != camera.PartNone {
		sec, _ := SectionFor(open)
		tree.AddAt(pl, "panel-"+open.String(), func(w *core.Frame) {
			w.Styler(func(s *styles.Style) {
				s.Direction = styles.Column
				s.Grow.Set(1, 0)
				s.Gap.Set(units.Dp(8))
				s.Padding.Set(units.Dp(12))
				s.Border.Radius = styles.BorderRadiusLarge
				s.Background = colors.Scheme.SurfaceContainerLow
				s.Max.Y.Em(24)
				s.Overflow.Y = styles.OverflowAuto
			})
			w.Maker(func(pl *tree.Plan) {
				p.makeHeader(pl, sec)
				p.makeSection(pl, open)
			})
		})
	}
	tree.AddAt(pl, "bar", func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Justify.Content = styles.Center
			s.Grow.Set(1, 0)
			s.Gap.Set(units.Dp(4))
		})
		w.Maker(p.makeBar)
	})
}

func (p *Panels) makeBar(pl *tree.Plan) {
	for _, sec := range Sections {
		tree.AddAt(pl, sec.Part.String(), func(w *core.Button) {
			w.SetText(sec.Label).SetIcon(sec.Icon)
			w.Updater(func() {
				if p.Bar.Open() == sec.Part {
					w.SetType(core.ButtonFilled)
				} else {
					w.SetType(core.ButtonTonal)
				}
			})
			w.OnClick(func(e events.Event) {
				p.Toggle(sec.Part)
			})
			p.hover(w, sec.Part)
		})
	}
}

func (p *Panels) makeHeader(pl *tree.Plan, sec Section) {
	tree.AddAt(pl, "header", func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Align.Items = styles.Center
			s.Grow.Set(1, 0)
		})
		tree.AddChildAt(w, "title", func(w *core.Text) {
			w.SetText(sec.Label).SetType(core.TextTitleMedium)
		})
		tree.AddChildAt(w, "stretch", func(w *core.Stretch) {})
		tree.AddChildAt(w, "close", func(w *core.Button) {
			w.SetIcon(icons.Close).SetType(core.ButtonAction).SetTooltip("Close")
			w.OnClick(func(e events.Event) {
				p.Close()
			})
		})
	})
}

func (p *Panels) makeSection(pl *tree.Plan, open camera.Parts) {
	cats := p.Catalogs
	switch open {
	case camera.PartTableDesign:
		p.makeFilter(pl, Tags(catalog.BaseStylesValues()), camera.PartStructural)
		p.makeGrid(pl, func() []card {
			return cards(Visible(cats.Tables, p.filter, func(it catalog.Table) catalog.BaseStyles { return it.Base }))
		}, func() string { return p.Store.Get().Table }, func(id string) {
			p.Store.SetTable(id)
		})
	case camera.PartSize:
		switches(pl, "size", state.SizesValues(), func(v state.Sizes) string {
			return fmt.Sprintf("%s (%d seats)", Label(v.String()), v.Seats())
		}, func() state.Sizes { return p.Store.Get().Size }, func(v state.Sizes) {
			p.Store.Update(new(state.Patch).SetSize(v))
		})
	case camera.PartTabletop:
		switches(pl, "shape", state.StoneShapesValues(), nil, func() state.StoneShapes { return p.Store.Get().Shape }, func(v state.StoneShapes) {
			p.Store.Update(new(state.Patch).SetShape(v))
		})
		p.makeFilter(pl, Tags(catalog.StoneCategoriesValues()), camera.PartNone)
		p.makeGrid(pl, func() []card {
			return cards(Visible(cats.Stones, p.filter, func(it catalog.Stone) catalog.StoneCategories { return it.Category }))
		}, func() string { return p.Store.Get().TableTop }, func(id string) {
			p.Store.SetTableTop(id)
		})
	case camera.PartFinish:
		swatches(pl, "wood", state.WoodTonesValues(), func(v state.WoodTones) color.RGBA {
			return compose.Wood(v).Color
		}, func() state.WoodTones { return p.Store.Get().Wood }, func(v state.WoodTones) {
			p.Store.Update(new(state.Patch).SetWood(v))
		})
	case camera.PartChairs:
		p.makeFilter(pl, Tags(catalog.ChairCategoriesValues()), camera.PartNone)
		p.makeGrid(pl, func() []card {
			return cards(Visible(cats.Chairs, p.filter, func(it catalog.Chair) catalog.ChairCategories { return it.Category }))
		}, func() string { return p.Store.Get().Chair }, func(id string) {
			p.Store.SetChair(id)
		})
		swatches(pl, "leather", state.LeatherColorsValues(), func(v state.LeatherColors) color.RGBA {
			return compose.Leather(v).Color
		}, func() state.LeatherColors { return p.Store.Get().Leather }, func(v state.LeatherColors) {
			p.Store.Update(new(state.Patch).SetLeather(v))
		})
	case camera.PartScene:
		switches(pl, "scene", state.ScenePresetsValues(), nil, func() state.ScenePresets { return p.Store.Get().Scene }, func(v state.ScenePresets) {
			p.Store.Update(new(state.Patch).SetScene(v))
		})
	}
}

// makeFilter adds the tag chooser and search field of an item grid.
// While the pointer is over them, the given part is focused unless
// it is [camera.PartNone].
func (p *Panels) makeFilter(pl *tree.Plan, tags []string, part camera.Parts) {
	tree.AddAt(pl, "filter", func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.SetAbilities(true, abilities.Hoverable)
			s.Align.Items = styles.Center
			s.Gap.Set(units.Dp(8))
		})
		if part != camera.PartNone {
			p.hover(w, part)
		}
		tree.AddChildAt(w, "tag", func(w *core.Chooser) {
			items := make([]core.ChooserItem, len(tags))
			for i, t := range tags {
				items[i] = core.ChooserItem{Value: t, Text: Label(t)}
			}
			w.SetItems(items...)
			w.Updater(func() {
				w.SetCurrentValue(p.filter.Tag)
			})
			w.OnChange(func(e events.Event) {
				p.filter.Tag = w.CurrentItem.Value.(string)
				p.updateGrid()
			})
		})
		tree.AddChildAt(w, "search", func(w *core.TextField) {
			w.SetPlaceholder("Search").SetLeadingIcon(icons.Search)
			w.Styler(func(s *styles.Style) {
				s.Grow.Set(1, 0)
			})
			w.OnInput(func(e events.Event) {
				p.filter.Query = w.Text()
				p.updateGrid()
			})
		})
	})
}

func (p *Panels) updateGrid() {
	if p.grid != nil {
		p.grid.Update()
	}
}

// card is the display data of one item in a grid.
type card struct {
	info    catalog.Info
	tooltip string
}

func cards[T catalog.Item](items []T) []card {
	cs := make([]card, len(items))
	for i, it := range items {
		cs[i] = card{info: it.ItemInfo(), tooltip: catalog.Tooltip(it)}
	}
	return cs
}

// makeGrid adds a grid of item cards, highlighting the selected one.
func (p *Panels) makeGrid(pl *tree.Plan, items func() []card, selected func() string, choose func(id string)) {
	sec, _ := SectionFor(p.Bar.Open())
	tree.AddAt(pl, "grid", func(w *core.Frame) {
		p.grid = w
		w.Styler(func(s *styles.Style) {
			s.Wrap = true
			s.Grow.Set(1, 0)
			s.Gap.Set(units.Dp(8))
		})
		w.Maker(func(pl *tree.Plan) {
			for _, c := range items() {
				tree.AddAt(pl, c.info.ID, func(w *core.Frame) {
					p.makeCard(w, c, selected)
					w.OnClick(func(e events.Event) {
						choose(c.info.ID)
						if p.OnSelect != nil {
							p.OnSelect(sec, c.info.ID)
						}
					})
				})
			}
		})
	})
}

func (p *Panels) makeCard(w *core.Frame, c card, selected func() string) {
	w.SetTooltip(c.tooltip)
	w.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Clickable, abilities.Hoverable)
		s.Direction = styles.Column
		s.Align.Items = styles.Center
		s.Padding.Set(units.Dp(4))
		s.Border.Radius = styles.BorderRadiusMedium
		s.Border.Width.Set(units.Dp(2))
		s.Cursor = cursors.Pointer
		if selected() == c.info.ID {
			s.Border.Color.Set(colors.Scheme.Primary.Base)
			s.Background = colors.Scheme.Primary.Container
		} else {
			s.Border.Color.Set(colors.Scheme.OutlineVariant)
		}
	})
	tree.AddChildAt(w, "thumbnail", func(w *core.Image) {
		w.Styler(func(s *styles.Style) {
			s.Min.Set(units.Dp(112), units.Dp(84))
		})
		w.Updater(func() {
			w.SetImage(p.thumbnail(c.info))
		})
	})
	tree.AddChildAt(w, "name", func(w *core.Text) {
		w.SetText(c.info.Name).SetType(core.TextLabelMedium)
	})
}

func (p *Panels) thumbnail(in catalog.Info) image.Image {
	if p.Thumbs == nil {
		return nil
	}
	return p.Thumbs.Thumbnail(in.Thumbnail, in.ThumbnailIndex, in.ThumbnailCells)
}

// switches adds segmented buttons for the given values, labeled by
// label, or by the sentence case of the value if label is nil.
func switches[E enums.Enum](pl *tree.Plan, name string, values []E, label func(v E) string, current func() E, set func(v E)) {
	tree.AddAt(pl, name, func(w *core.Switches) {
		w.SetType(core.SwitchSegmentedButton).SetMutex(true)
		items := make([]core.SwitchItem, len(values))
		for i, v := range values {
			txt := Label(v.String())
			if label != nil {
				txt = label(v)
			}
			items[i] = core.SwitchItem{Value: v, Text: txt, Tooltip: v.Desc()}
		}
		w.SetItems(items...)
		w.Updater(func() {
			if err := w.SelectValue(current()); err != nil {
				slog.Error("selecting switch", "name", name, "err", err)
			}
		})
		w.OnChange(func(e events.Event) {
			item := w.SelectedItem()
			if item == nil {
				w.Update()
				return
			}
			set(item.Value.(E))
		})
	})
}

// swatches adds a row of color swatches for the given values.
func swatches[E enums.Enum](pl *tree.Plan, name string, values []E, clr func(v E) color.RGBA, current func() E, set func(v E)) {
	tree.AddAt(pl, name, func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Wrap = true
			s.Gap.Set(units.Dp(8))
		})
		for _, v := range values {
			tree.AddChildAt(w, v.String(), func(w *core.Frame) {
				w.SetTooltip(Label(v.String()))
				w.Styler(func(s *styles.Style) {
					s.SetAbilities(true, abilities.Clickable, abilities.Hoverable)
					s.Min.Set(units.Dp(36))
					s.Border.Radius = styles.BorderRadiusFull
					s.Border.Width.Set(units.Dp(3))
					s.Background = colors.Uniform(clr(v))
					s.Cursor = cursors.Pointer
					if current().Int64() == v.Int64() {
						s.Border.Color.Set(colors.Scheme.Primary.Base)
					} else {
						s.Border.Color.Set(colors.Scheme.OutlineVariant)
					}
				})
				w.OnClick(func(e events.Event) {
					set(v)
				})
			})
		}
	})
}
