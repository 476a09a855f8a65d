// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app assembles the dining set configurator: it owns the
// configuration store, and wires the selector panels, the 3D scene
// and the camera controller together.
package app

import (
	"context"
	"log/slog"

	"cogentcore.org/core/base/fileinfo/mimedata"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/diningset/assets"
	"cogentcore.org/diningset/camera"
	"cogentcore.org/diningset/catalog"
	"cogentcore.org/diningset/compose"
	"cogentcore.org/diningset/config"
	"cogentcore.org/diningset/panels"
	"cogentcore.org/diningset/pricing"
	"cogentcore.org/diningset/quote"
	"cogentcore.org/diningset/render"
	"cogentcore.org/diningset/state"
)

// App is one configurator session.
type App struct {
	Config   *config.Config
	Store    *state.Store
	Catalogs *catalog.Catalogs
	Thumbs   *assets.Loader
	Models   *assets.Models
	Price    *pricing.Formatter
	Camera   *camera.Controller
	Panels   *panels.Panels

	scene    *xyzcore.Scene
	renderer *render.Renderer
	price    *core.Text
}

// Run runs the configurator with the given configuration
// until its window is closed.
func Run(c *config.Config) error {
	slog.SetLogLoggerLevel(c.LogLevel())
	a, err := New(c)
	if err != nil {
		return err
	}
	b := core.NewBody("Dining set")
	if err := a.Build(b); err != nil {
		return err
	}
	b.RunMainWindow()
	return nil
}

// New returns a new session for the given configuration,
// using the built-in catalogs.
func New(c *config.Config) (*App, error) {
	f, err := pricing.NewFormatter(c.Locale, c.Currency)
	if err != nil {
		return nil, err
	}
	fsys := c.AssetFS()
	st := state.NewStore(c.State())
	a := &App{
		Config:   c,
		Store:    st,
		Catalogs: catalog.Default(),
		Thumbs:   assets.NewLoader(fsys),
		Price:    f,
		Camera:   camera.NewController(st.Get().Reset),
	}
	a.Models = assets.NewModels(fsys, a.modelDone)
	return a, nil
}

// Build adds the widgets of the session to the given body.
func (a *App) Build(b *core.Body) error {
	b.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(a.makeToolbar)
	})

	a.scene = xyzcore.NewScene(b)
	a.renderer = render.New(a.scene.XYZ, a.Config.AssetFS())
	render.SetCameraView(a.scene.XYZ, camera.DefaultView)

	a.Panels = panels.New(b, a.Store, a.Catalogs, a.Thumbs)
	a.Panels.OnFocus = a.Camera.SetFocus
	a.Panels.OnSelect = func(s panels.Section, id string) {
		slog.Debug("item selected", "section", s.Label, "id", id)
	}

	a.Store.OnChange(a.changed)
	a.recompose()
	a.scene.Animate(a.animate)

	if a.Config.Watch && a.Config.AssetDir != "" {
		ctx, cancel := context.WithCancel(context.Background())
		b.OnClose(func(e events.Event) {
			cancel()
		})
		if err := assets.Watch(ctx, a.Config.AssetDir, a.assetChanged); err != nil {
			cancel()
			return err
		}
	}
	return nil
}

func (a *App) makeToolbar(p *tree.Plan) {
	tree.AddAt(p, "title", func(w *core.Text) {
		w.SetText("Dining set").SetType(core.TextTitleMedium)
	})
	tree.AddAt(p, "price", func(w *core.Text) {
		a.price = w
		w.SetType(core.TextTitleLarge)
		w.Updater(func() {
			w.SetText(a.Price.Format(pricing.Estimate(a.Store.Get(), a.Catalogs)))
		})
	})
	tree.AddAt(p, "reset-view", func(w *core.Button) {
		w.SetText("Reset view").SetIcon(icons.Restart)
		w.OnClick(func(e events.Event) {
			a.Store.TriggerReset()
		})
	})
	tree.AddAt(p, "copy-quote", func(w *core.Button) {
		w.SetText("Copy quote").SetIcon(icons.ContentCopy).
			SetTooltip("Copy the configuration and its price to the clipboard")
		w.OnClick(func(e events.Event) {
			b, err := quote.Export(a.Store.Get(), a.Catalogs)
			if err != nil {
				core.ErrorSnackbar(w, err, "Error copying quote")
				return
			}
			w.Clipboard().Write(mimedata.NewText(string(b)))
			core.MessageSnackbar(w, "Quote copied")
		})
	})
	tree.AddAt(p, "paste-quote", func(w *core.Button) {
		w.SetText("Paste quote").SetIcon(icons.ContentPaste).
			SetTooltip("Load a configuration from a quote in the clipboard")
		w.OnClick(func(e events.Event) {
			md := w.Clipboard().Read([]string{mimedata.TextPlain})
			if md == nil {
				return
			}
			patch, err := quote.Import([]byte(md.Text(mimedata.TextPlain)))
			if err != nil {
				core.ErrorSnackbar(w, err, "Error pasting quote")
				return
			}
			a.Store.Update(patch)
		})
	})
}

// changed is called by the store after every change of the configuration.
func (a *App) changed(old, new state.State) {
	if a.price != nil {
		a.price.Update()
	}
	if NeedsCompose(old, new) {
		a.recompose()
	}
}

// NeedsCompose returns whether a change of the configuration changes
// the scene. Only the reset counter does not.
func NeedsCompose(old, new state.State) bool {
	old.Reset = new.Reset
	return old != new
}

// recompose rebuilds the scene from the current configuration.
func (a *App) recompose() {
	cs := compose.Compose(a.Store.Get(), a.Catalogs, a.Models.Status)
	a.renderer.Apply(cs)
	a.scene.NeedsRender()
}

// animate moves the camera on every frame, snapping it back to the
// default view when the reset counter changes.
func (a *App) animate(an *core.Animation) {
	sc := a.scene.XYZ
	if a.Camera.Reset(a.Store.Get().Reset) {
		render.SetCameraView(sc, camera.DefaultView)
	} else if v, ok := a.Camera.Tick(render.CameraView(sc), FrameSeconds(an)); ok {
		render.SetCameraView(sc, v)
	} else {
		return
	}
	sc.SetNeedsRender()
	a.scene.NeedsRender()
}

// FrameSeconds returns the time since the previous frame of the
// animation in seconds; [core.Animation.Dt] is in milliseconds.
func FrameSeconds(an *core.Animation) float32 {
	return an.Dt / 1000
}

// modelDone is called from the loading goroutine when a model is done.
func (a *App) modelDone(ref string, st assets.Status) {
	slog.Debug("model done", "ref", ref, "status", st)
	a.scene.AsyncLock()
	defer a.scene.AsyncUnlock()
	a.recompose()
}

// assetChanged is called from the watcher when an asset file changes.
func (a *App) assetChanged(name string) {
	slog.Info("asset changed, reloading", "name", name)
	a.scene.AsyncLock()
	defer a.scene.AsyncUnlock()
	a.Thumbs.Invalidate()
	a.Models.Reset()
	a.renderer = render.New(a.scene.XYZ, a.renderer.Assets)
	a.Panels.Frame().Update()
	a.recompose()
}
