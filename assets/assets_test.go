// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bands = []color.RGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{0, 255, 255, 255},
}

// page returns a png catalog page with one uniform cell per band color.
func page(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 100, 500))
	for y := range 500 {
		for x := range 100 {
			img.SetRGBA(x, y, bands[y/100])
		}
	}
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, img))
	return b.Bytes()
}

func TestCell(t *testing.T) {
	pg := image.Rect(0, 0, 100, 500)
	c, err := Cell(pg, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 200, 100, 300), c)
	c, err = Cell(pg, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, pg, c)
	_, err = Cell(pg, 5, 5)
	assert.Error(t, err)
	_, err = Cell(pg, -1, 5)
	assert.Error(t, err)
	_, err = Cell(pg, 1, 1)
	assert.Error(t, err)
}

func TestThumbnail(t *testing.T) {
	fsys := fstest.MapFS{
		"tables/page-1.png": {Data: page(t)},
		"tables/bad.png":    {Data: []byte("not an image")},
	}
	l := NewLoader(fsys)
	l.Width = 50

	for i, want := range bands {
		img := l.Thumbnail("tables/page-1.png", i, 5)
		bb := img.Bounds()
		assert.Equal(t, 50, bb.Dx())
		assert.Equal(t, 50, bb.Dy())
		got := color.RGBAModel.Convert(img.At(bb.Min.X+25, bb.Min.Y+25)).(color.RGBA)
		assert.True(t, imagex.CompareColors(want, got, 2), "cell %d: want %v got %v", i, want, got)
	}
	assert.Same(t, l.Thumbnail("tables/page-1.png", 1, 5), l.Thumbnail("tables/page-1.png", 1, 5))

	whole := l.Thumbnail("tables/page-1.png", 0, 1)
	assert.Equal(t, 250, whole.Bounds().Dy())

	for _, ref := range []string{"tables/bad.png", "tables/missing.png", ""} {
		img := l.Thumbnail(ref, 0, 5)
		assert.Equal(t, image.Rect(0, 0, 50, 37), img.Bounds(), ref)
		assert.Equal(t, PlaceholderColor, color.RGBAModel.Convert(img.At(10, 10)), ref)
	}
	img := l.Thumbnail("tables/page-1.png", 7, 5)
	assert.Equal(t, 37, img.Bounds().Dy())

	none := NewLoader(nil)
	assert.Equal(t, ThumbnailWidth, none.Thumbnail("tables/page-1.png", 0, 5).Bounds().Dx())
}

func TestInvalidate(t *testing.T) {
	fsys := fstest.MapFS{}
	l := NewLoader(fsys)
	assert.Equal(t, 192, l.Thumbnail("tops/page-1.png", 0, 0).Bounds().Dy())
	fsys["tops/page-1.png"] = &fstest.MapFile{Data: page(t)}
	assert.Equal(t, 192, l.Thumbnail("tops/page-1.png", 0, 0).Bounds().Dy())
	l.Invalidate()
	assert.Equal(t, 1280, l.Thumbnail("tops/page-1.png", 0, 0).Bounds().Dy())
}

func TestModels(t *testing.T) {
	fsys := fstest.MapFS{
		"models/chair.obj": {Data: []byte("o Seat\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")},
		"models/image.obj": {Data: page(t)},
		"models/empty.obj": {Data: nil},
		"models/chair.glb": {Data: []byte("glTF")},
	}
	var mu sync.Mutex
	done := map[string]Status{}
	m := NewModels(fsys, func(ref string, st Status) {
		mu.Lock()
		defer mu.Unlock()
		_, dup := done[ref]
		assert.False(t, dup, ref)
		done[ref] = st
	})

	refs := map[string]Status{
		"models/chair.obj":   StatusReady,
		"models/image.obj":   StatusFailed,
		"models/empty.obj":   StatusFailed,
		"models/chair.glb":   StatusFailed,
		"models/missing.obj": StatusFailed,
	}
	for ref := range refs {
		m.Status(ref)
	}
	m.Wait()
	for ref, want := range refs {
		assert.Equal(t, want, m.Status(ref), ref)
	}
	m.Wait()
	assert.Equal(t, refs, done)

	mu.Lock()
	done = map[string]Status{}
	mu.Unlock()
	m.Reset()
	assert.Equal(t, StatusPending, m.Status("models/chair.obj"))
	m.Wait()

	none := NewModels(nil, nil)
	none.Status("models/chair.obj")
	none.Wait()
	assert.Equal(t, StatusFailed, none.Status("models/chair.obj"))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan string, 10)
	require.NoError(t, Watch(ctx, dir, func(name string) {
		changed <- name
	}))
	fn := filepath.Join(dir, "page-1.png")
	require.NoError(t, os.WriteFile(fn, []byte("x"), 0666))
	select {
	case name := <-changed:
		assert.Equal(t, fn, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}
	assert.Error(t, Watch(ctx, filepath.Join(dir, "missing"), func(string) {}))
}

func TestWatchNewDir(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan string, 10)
	require.NoError(t, Watch(ctx, dir, func(name string) {
		changed <- name
	}))
	wait := func(want string) {
		t.Helper()
		for {
			select {
			case name := <-changed:
				if name == want {
					return
				}
			case <-time.After(5 * time.Second):
				t.Fatalf("no change event for %s", want)
			}
		}
	}
	sub := filepath.Join(dir, "chairs")
	require.NoError(t, os.Mkdir(sub, 0777))
	wait(sub)
	fn := filepath.Join(sub, "K-CH-7.png")
	require.NoError(t, os.WriteFile(fn, []byte("x"), 0666))
	wait(fn)
}
