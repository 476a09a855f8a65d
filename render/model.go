// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/diningset/compose"
)

// loadModel loads the given model file into the scene library, once.
func (r *Renderer) loadModel(ref string) error {
	if err, ok := r.library[ref]; ok {
		return err
	}
	if r.library == nil {
		r.library = map[string]error{}
	}
	var err error
	if r.Assets == nil {
		err = errors.New("no asset file system")
	} else {
		_, err = r.Scene.OpenToLibraryFS(r.Assets, ref, ref)
	}
	if err != nil {
		slog.Error("render: cannot load model", "ref", ref, "err", err)
	}
	r.library[ref] = err
	return err
}

// model adds a copy of the model of the node to the parent, centered
// over the origin and standing on the floor, with the materials of
// the configuration applied to its meshes.
func (r *Renderer) model(parent tree.Node, n *compose.Node) {
	m := n.Model
	if r.loadModel(m.Ref) != nil {
		return
	}
	g, err := r.Scene.AddFromLibrary(m.Ref, parent)
	if errors.Log(err) != nil {
		return
	}
	g.SetName(n.Name)
	var solids []*xyz.Solid
	g.WalkDown(func(k tree.Node) bool {
		if sld, ok := k.(*xyz.Solid); ok {
			solids = append(solids, sld)
		}
		return tree.Continue
	})
	if m.Dedupe {
		centers := make([]math32.Vector3, len(solids))
		for i, sld := range solids {
			centers[i] = solidBounds(sld).Center()
		}
		kept := compose.Dedupe(centers, compose.DedupeThreshold)
		keep := make([]*xyz.Solid, len(kept))
		for i, k := range kept {
			keep[i] = solids[k]
		}
		for _, sld := range solids {
			if !containsSolid(keep, sld) {
				slog.Debug("render: removing duplicate mesh", "model", m.Ref, "mesh", sld.Name)
				sld.Delete()
			}
		}
		solids = keep
	}
	bb := math32.B3Empty()
	for _, sld := range solids {
		if mat, ok := m.MaterialOf(sld.Name); ok {
			SetMaterial(sld, mat)
		}
		sb := solidBounds(sld)
		bb.ExpandByBox(sb)
	}
	if len(solids) == 0 {
		return
	}
	c := bb.Center()
	g.SetPos(n.Pos.X-c.X, n.Pos.Y-bb.Min.Y, n.Pos.Z-c.Z)
}

func containsSolid(solids []*xyz.Solid, sld *xyz.Solid) bool {
	for _, s := range solids {
		if s == sld {
			return true
		}
	}
	return false
}

// solidBounds returns the bounding box of the solid in the coordinates
// of its model, from the vertices of its mesh.
func solidBounds(sld *xyz.Solid) math32.Box3 {
	bb := math32.B3Empty()
	switch ms := sld.Mesh.(type) {
	case *xyz.GenMesh:
		bb = VertexBounds(ms.Vertex)
	case nil:
		return bb
	default:
		bb = ms.AsMeshBase().BBox.BBox
	}
	p := sld.Pose.Pos
	bb.Min = bb.Min.Add(p)
	bb.Max = bb.Max.Add(p)
	return bb
}

// VertexBounds returns the bounding box of the given x, y, z vertex array.
func VertexBounds(vertex math32.ArrayF32) math32.Box3 {
	bb := math32.B3Empty()
	for i := 0; i+2 < len(vertex); i += 3 {
		bb.ExpandByPoint(math32.Vec3(vertex[i], vertex[i+1], vertex[i+2]))
	}
	return bb
}
