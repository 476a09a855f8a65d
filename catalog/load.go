// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"github.com/pelletier/go-toml/v2"
)

// data contains the catalog files built into the app.
//
//go:embed data/*.toml
var data embed.FS

// Catalog file names, relative to the root of the catalog filesystem.
const (
	TablesFile = "tables.toml"
	StonesFile = "stones.toml"
	ChairsFile = "chairs.toml"
)

// Catalogs holds the three product catalogs.
type Catalogs struct {
	Tables *Catalog[Table]
	Stones *Catalog[Stone]
	Chairs *Catalog[Chair]
}

// Default returns the catalogs built into the app.
// They are parsed once, on first use.
var Default = sync.OnceValue(func() *Catalogs {
	return errors.Must1(Load(errors.Must1(fs.Sub(data, "data"))))
})

// Load reads [TablesFile], [StonesFile] and [ChairsFile] from the given
// filesystem and builds the catalogs. Unknown keys, mistyped values and
// missing or duplicate ids are errors.
func Load(fsys fs.FS) (*Catalogs, error) {
	var tf struct {
		Table []Table `toml:"table"`
	}
	var sf struct {
		Stone []Stone `toml:"stone"`
	}
	var cf struct {
		Chair []Chair `toml:"chair"`
	}
	errs := []error{
		decode(fsys, TablesFile, &tf),
		decode(fsys, StonesFile, &sf),
		decode(fsys, ChairsFile, &cf),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	for _, s := range sf.Stone {
		if _, err := colors.FromHex(s.Color); err != nil {
			errs = append(errs, fmt.Errorf("stone %q: invalid color %q: %w", s.ID, s.Color, err))
		}
	}
	cs := &Catalogs{}
	var err error
	cs.Tables, err = New(tf.Table)
	errs = append(errs, wrap(TablesFile, err))
	cs.Stones, err = New(sf.Stone)
	errs = append(errs, wrap(StonesFile, err))
	cs.Chairs, err = New(cf.Chair)
	errs = append(errs, wrap(ChairsFile, err))
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cs, nil
}

func decode(fsys fs.FS, file string, v any) error {
	f, err := fsys.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return wrap(file, toml.NewDecoder(f).DisallowUnknownFields().Decode(v))
}

func wrap(file string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("catalog %s: %w", file, err)
}
