// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids[T Item](items []T) []string {
	res := make([]string, len(items))
	for i, it := range items {
		res[i] = it.ItemInfo().ID
	}
	return res
}

func TestDefault(t *testing.T) {
	cs := Default()
	assert.Equal(t, 55, cs.Tables.Len())
	assert.Equal(t, 25, cs.Stones.Len())
	assert.Equal(t, 16, cs.Chairs.Len())
	assert.Same(t, cs, Default())

	tb, ok := cs.Tables.Lookup("K-DT-01")
	require.True(t, ok)
	assert.Equal(t, "Vienna V-Frame", tb.Name)
	assert.Equal(t, BaseVShaped, tb.Base)
	assert.Equal(t, LegsTwo, tb.Legs)
	assert.False(t, tb.HasModel())

	st, ok := cs.Stones.Lookup("VR-003")
	require.True(t, ok)
	assert.Equal(t, StoneExotic, st.Category)
	assert.Equal(t, "#5ba3a3", st.Color)

	ch, ok := cs.Chairs.Lookup("K-CH-15")
	require.True(t, ok)
	assert.Equal(t, ChairTub, ch.Style)
	assert.Equal(t, 2, ch.ThumbnailIndex)
}

func TestLookup(t *testing.T) {
	cs := Default()
	for _, tb := range cs.Tables.All() {
		got, ok := cs.Tables.Lookup(tb.ID)
		assert.True(t, ok, tb.ID)
		assert.Equal(t, tb, got)
	}
	for _, st := range cs.Stones.All() {
		got, ok := cs.Stones.Lookup(st.ID)
		assert.True(t, ok, st.ID)
		assert.Equal(t, st, got)
	}
	for _, ch := range cs.Chairs.All() {
		got, ok := cs.Chairs.Lookup(ch.ID)
		assert.True(t, ok, ch.ID)
		assert.Equal(t, ch.ID, got.ID)
	}
	for _, id := range []string{"", "K-DT-99", "k-dt-01", "VR-001 "} {
		_, ok := cs.Tables.Lookup(id)
		assert.False(t, ok, id)
	}
}

func TestAllIsCopy(t *testing.T) {
	cs := Default()
	all := cs.Chairs.All()
	all[0].Name = "changed"
	ch, _ := cs.Chairs.Lookup(all[0].ID)
	assert.NotEqual(t, "changed", ch.Name)
}

func TestNew(t *testing.T) {
	_, err := New([]Table{{Info: Info{ID: "a"}}, {Info: Info{ID: "b"}}, {Info: Info{ID: "a"}}, {}})
	require.Error(t, err)
	assert.ErrorContains(t, err, `duplicate id "a"`)
	assert.ErrorContains(t, err, "item 3 has no id")

	c, err := New([]Table{{Info: Info{ID: "a"}}})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestFilterBy(t *testing.T) {
	cs := Default()
	byCategory := func(s Stone) StoneCategories { return s.Category }
	assert.Len(t, FilterBy(cs.Stones, All, byCategory), 25)
	assert.Len(t, FilterBy(cs.Stones, "", byCategory), 25)
	assert.Equal(t, []string{"VR-003", "VR-021", "VR-023"}, ids(FilterBy(cs.Stones, "exotic", byCategory)))

	byBase := func(tb Table) BaseStyles { return tb.Base }
	assert.Equal(t, []string{"K-DT-21", "K-DT-22", "K-DT-46"}, ids(FilterBy(cs.Tables, "trestle", byBase)))
	assert.Empty(t, FilterBy(cs.Tables, "unknown", byBase))

	byCat := func(c Chair) ChairCategories { return c.Category }
	assert.Equal(t, []string{"K-CH-7", "K-CH-14"}, ids(FilterBy(cs.Chairs, "wooden", byCat)))
}

func TestSearch(t *testing.T) {
	cs := Default()
	assert.Len(t, cs.Chairs.Search("  ", DefaultSearchThreshold), 16)
	assert.Equal(t, []string{"K-DT-02"}, ids(cs.Tables.Search("milano", DefaultSearchThreshold)))
	assert.Equal(t, []string{"K-CH-9"}, ids(cs.Chairs.Search("k-ch-9", DefaultSearchThreshold)))

	res := cs.Chairs.Search("nordc", DefaultSearchThreshold)
	require.NotEmpty(t, res)
	assert.Equal(t, "K-CH-7", res[0].ID)

	assert.Empty(t, cs.Stones.Search("zzzzzz", DefaultSearchThreshold))
}

func TestDescriptions(t *testing.T) {
	tb, _ := Default().Tables.Lookup("K-DT-04")
	assert.Contains(t, DescriptionHTML(tb), "<em>brass</em>")
	assert.Equal(t, "Wide V-frame with brass connector", Tooltip(tb))
}

func TestLoadErrors(t *testing.T) {
	good := fstest.MapFS{
		TablesFile: {Data: []byte("[[table]]\nid = \"T1\"\nbase = \"slab\"\nlegs = \"two\"\n")},
		StonesFile: {Data: []byte("[[stone]]\nid = \"S1\"\ncolor = \"#ffffff\"\ncategory = \"white\"\nveining = \"light\"\n")},
		ChairsFile: {Data: []byte("[[chair]]\nid = \"C1\"\nstyle = \"ribbed\"\ncategory = \"wooden\"\nroles = { Cushion = \"leather\" }\n")},
	}
	cs, err := Load(good)
	require.NoError(t, err)
	ch, ok := cs.Chairs.Lookup("C1")
	require.True(t, ok)
	assert.Equal(t, RoleLeather, ch.Roles["Cushion"])

	unknown := fstest.MapFS{}
	for k, v := range good {
		unknown[k] = v
	}
	unknown[TablesFile] = &fstest.MapFile{Data: []byte("[[table]]\nid = \"T1\"\nheight = 3\n")}
	_, err = Load(unknown)
	assert.ErrorContains(t, err, TablesFile)

	badType := fstest.MapFS{}
	for k, v := range good {
		badType[k] = v
	}
	badType[StonesFile] = &fstest.MapFile{Data: []byte("[[stone]]\nid = \"S1\"\ncolor = \"#ffffff\"\nthumbnail_index = \"first\"\n")}
	_, err = Load(badType)
	assert.ErrorContains(t, err, StonesFile)

	badColor := fstest.MapFS{}
	for k, v := range good {
		badColor[k] = v
	}
	badColor[StonesFile] = &fstest.MapFile{Data: []byte("[[stone]]\nid = \"S1\"\ncolor = \"nope\"\n")}
	_, err = Load(badColor)
	assert.ErrorContains(t, err, `invalid color "nope"`)

	_, err = Load(fstest.MapFS{})
	assert.Error(t, err)
}
