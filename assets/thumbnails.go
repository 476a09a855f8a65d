// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets loads the product images and 3D models referenced by
// the catalog from an asset file system.
package assets

//go:generate core generate

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"log/slog"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
)

// ThumbnailWidth is the default width of thumbnails in pixels.
const ThumbnailWidth = 256

// PlaceholderColor is the color of placeholder thumbnails.
var PlaceholderColor = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}

// Loader loads thumbnails from catalog pages. A catalog page is an image
// with a number of product photos, or cells, stacked vertically. It is
// safe for concurrent use.
type Loader struct {

	// FS is the asset file system. A nil FS only gives placeholders.
	FS fs.FS

	// Width is the width of the thumbnails.
	Width int

	mu     sync.Mutex
	cache  map[thumbKey]image.Image
	failed map[string]bool
}

type thumbKey struct {
	ref          string
	index, cells int
}

// NewLoader returns a new [Loader] for the given file system.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys, Width: ThumbnailWidth}
}

// Thumbnail returns cell index of the given number of cells on the
// catalog page ref, scaled to the loader width. A cells value of one
// or less uses the whole page. Any failure gives a placeholder image,
// and is logged once per page.
func (l *Loader) Thumbnail(ref string, index, cells int) image.Image {
	key := thumbKey{ref, index, cells}
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.cache[key]; ok {
		return img
	}
	img, err := l.thumbnail(ref, index, cells)
	if err != nil {
		if !l.failed[ref] {
			if l.failed == nil {
				l.failed = map[string]bool{}
			}
			l.failed[ref] = true
			if ref != "" && l.FS != nil {
				slog.Warn("assets: thumbnail unavailable", "ref", ref, "err", err)
			}
		}
		img = l.Placeholder()
	}
	if l.cache == nil {
		l.cache = map[thumbKey]image.Image{}
	}
	l.cache[key] = img
	return img
}

func (l *Loader) thumbnail(ref string, index, cells int) (image.Image, error) {
	if ref == "" || l.FS == nil {
		return nil, errors.New("no image")
	}
	b, err := fs.ReadFile(l.FS, ref)
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(b) {
		return nil, fmt.Errorf("%s is not an image", ref)
	}
	page, _, err := imagex.Read(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ref, err)
	}
	cell, err := Cell(page.Bounds(), index, cells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	img := transform.Crop(page, cell)
	w := l.width()
	h := cell.Dy() * w / max(cell.Dx(), 1)
	return transform.Resize(img, w, max(h, 1), transform.Linear), nil
}

// Cell returns the bounds of cell index of the given number of cells
// stacked vertically in a page with the given bounds.
func Cell(page image.Rectangle, index, cells int) (image.Rectangle, error) {
	if cells <= 1 {
		if index > 0 {
			return image.Rectangle{}, fmt.Errorf("cell %d of a single cell page", index)
		}
		return page, nil
	}
	if index < 0 || index >= cells {
		return image.Rectangle{}, fmt.Errorf("cell %d out of range [0, %d)", index, cells)
	}
	h := page.Dy() / cells
	y := page.Min.Y + index*h
	return image.Rect(page.Min.X, y, page.Max.X, y+h), nil
}

// Placeholder returns a neutral image of the thumbnail size.
func (l *Loader) Placeholder() image.Image {
	w := l.width()
	img := image.NewRGBA(image.Rect(0, 0, w, w*3/4))
	draw.Draw(img, img.Bounds(), &image.Uniform{PlaceholderColor}, image.Point{}, draw.Src)
	return img
}

func (l *Loader) width() int {
	if l.Width <= 0 {
		return ThumbnailWidth
	}
	return l.Width
}

// Invalidate clears the cached thumbnails, so that they are read again.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.cache = nil
	l.failed = nil
	l.mu.Unlock()
}
