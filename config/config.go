// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the dining set
// configurator, which is set from flags and a diningset.toml
// file through package cli.
package config

import (
	"io/fs"
	"log/slog"
	"os"

	"cogentcore.org/diningset/state"
)

// Config is the configuration of the dining set configurator.
type Config struct {

	// AssetDir is the directory with the catalog pages and models
	// referenced by the catalog. Without it, placeholder images and
	// procedural furniture are shown.
	AssetDir string `flag:"assets"`

	// Watch reloads the catalog pages when they change in AssetDir.
	Watch bool

	// Locale is the locale of prices, such as "de-CH".
	// If it is empty, the system locale is used.
	Locale string

	// Currency is the ISO 4217 code of the currency of prices.
	Currency string `default:"EUR"`

	// Size is the initial table size.
	Size state.Sizes `default:"medium"`

	// Scene is the initial scene preset.
	Scene state.ScenePresets `default:"apartment"`

	// Debug turns on debug logging.
	Debug bool
}

// State returns the initial configuration state.
func (c *Config) State() state.State {
	st := state.Default()
	st.Size = c.Size
	st.Scene = c.Scene
	return st
}

// AssetFS returns the asset file system, or nil if there is no AssetDir.
func (c *Config) AssetFS() fs.FS {
	if c.AssetDir == "" {
		return nil
	}
	return os.DirFS(c.AssetDir)
}

// LogLevel returns the log level to use.
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
