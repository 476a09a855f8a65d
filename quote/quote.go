// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quote exports and imports dining set configurations as YAML
// quote documents, which can be shared through the clipboard.
package quote

import (
	"bytes"
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/diningset/catalog"
	"cogentcore.org/diningset/pricing"
	"cogentcore.org/diningset/state"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// Quote is a configuration with the names of its items and its price.
type Quote struct {
	Size      state.Sizes         `yaml:"size"`
	Table     string              `yaml:"table"`
	TableName string              `yaml:"table_name,omitempty" copier:"-"`
	TableTop  string              `yaml:"table_top"`
	StoneName string              `yaml:"stone_name,omitempty" copier:"-"`
	Shape     state.StoneShapes   `yaml:"shape"`
	Wood      state.WoodTones     `yaml:"wood"`
	Chair     string              `yaml:"chair"`
	ChairName string              `yaml:"chair_name,omitempty" copier:"-"`
	Leather   state.LeatherColors `yaml:"leather"`
	Scene     state.ScenePresets  `yaml:"scene"`
	Seats     int                 `yaml:"seats"`
	Price     int                 `yaml:"price"`
}

// New returns the quote for the given configuration.
func New(st state.State, cats *catalog.Catalogs) (*Quote, error) {
	q := &Quote{}
	if err := copier.Copy(q, &st); err != nil {
		return nil, err
	}
	if it, ok := cats.Tables.Lookup(st.Table); ok {
		q.TableName = it.Name
	}
	if it, ok := cats.Stones.Lookup(st.TableTop); ok {
		q.StoneName = it.Name
	}
	if it, ok := cats.Chairs.Lookup(st.Chair); ok {
		q.ChairName = it.Name
	}
	q.Seats = st.Size.Seats()
	q.Price = pricing.Estimate(st, cats)
	return q, nil
}

// Export returns the YAML quote document for the given configuration.
func Export(st state.State, cats *catalog.Catalogs) ([]byte, error) {
	q, err := New(st, cats)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(q)
}

// document is a quote as read back, with the enum fields kept as text
// so that unknown values are reported.
type document struct {
	Size      *string `yaml:"size"`
	Table     *string `yaml:"table"`
	TableName string  `yaml:"table_name"`
	TableTop  *string `yaml:"table_top"`
	StoneName string  `yaml:"stone_name"`
	Shape     *string `yaml:"shape"`
	Wood      *string `yaml:"wood"`
	Chair     *string `yaml:"chair"`
	ChairName string  `yaml:"chair_name"`
	Leather   *string `yaml:"leather"`
	Scene     *string `yaml:"scene"`
	Seats     int     `yaml:"seats"`
	Price     int     `yaml:"price"`
}

// Import returns the patch that applies the given quote document.
// Fields missing from the document are not changed by the patch, and
// the names, seats and price are ignored, as they follow from the rest.
func Import(b []byte) (*state.Patch, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("reading quote: %w", err)
	}
	p := &state.Patch{}
	var errs []error
	if doc.Size != nil {
		var v state.Sizes
		errs = append(errs, v.SetString(*doc.Size))
		p.SetSize(v)
	}
	if doc.Shape != nil {
		var v state.StoneShapes
		errs = append(errs, v.SetString(*doc.Shape))
		p.SetShape(v)
	}
	if doc.Wood != nil {
		var v state.WoodTones
		errs = append(errs, v.SetString(*doc.Wood))
		p.SetWood(v)
	}
	if doc.Leather != nil {
		var v state.LeatherColors
		errs = append(errs, v.SetString(*doc.Leather))
		p.SetLeather(v)
	}
	if doc.Scene != nil {
		var v state.ScenePresets
		errs = append(errs, v.SetString(*doc.Scene))
		p.SetScene(v)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("reading quote: %w", err)
	}
	p.Table, p.TableTop, p.Chair = doc.Table, doc.TableTop, doc.Chair
	return p, nil
}
