// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render turns composed dining set scenes into xyz scene graphs.
package render

import (
	"fmt"
	"io/fs"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	_ "cogentcore.org/core/xyz/io/obj"
	"cogentcore.org/diningset/compose"
)

// Renderer builds the contents of an [xyz.Scene] from composed scenes.
// Meshes are shared by all solids with the same shape and dimensions,
// and model files are loaded into the scene library once.
type Renderer struct {

	// Scene is the scene that is rendered into.
	Scene *xyz.Scene

	// Assets is the asset file system models are loaded from.
	Assets fs.FS

	// library has the load error of each model file, nil if loaded.
	library map[string]error
}

// New returns a new [Renderer] for the given scene and asset file system.
func New(sc *xyz.Scene, assets fs.FS) *Renderer {
	return &Renderer{Scene: sc, Assets: assets}
}

// Apply replaces the contents of the scene with the given composed scene.
func (r *Renderer) Apply(cs *compose.Scene) {
	sc := r.Scene
	sc.DeleteChildren()
	sc.Lights.Reset()
	sc.Background = colors.Uniform(cs.Env.Background)
	for _, l := range cs.Env.Lights {
		if l.Pos == (math32.Vector3{}) {
			lt := xyz.NewAmbient(sc, l.Name, l.Lumens, xyz.DirectSun)
			lt.Color = l.Color
			continue
		}
		lt := xyz.NewDirectional(sc, l.Name, l.Lumens, xyz.DirectSun)
		lt.Color = l.Color
		lt.Pos = l.Pos
	}
	r.node(sc, cs.Env.Ground)
	r.node(sc, cs.Root)
	sc.Rebuild()
	sc.SetNeedsUpdate()
}

// node adds the xyz node for the given node to the parent.
func (r *Renderer) node(parent tree.Node, n *compose.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case compose.KindGroup:
		g := xyz.NewGroup(parent)
		g.SetName(n.Name)
		g.SetPos(n.Pos.X, n.Pos.Y, n.Pos.Z).SetEulerRotation(n.Rot.X, n.Rot.Y, n.Rot.Z)
		for _, c := range n.Children {
			r.node(g, c)
		}
	case compose.KindModel:
		r.model(parent, n)
	default:
		ms := r.mesh(n)
		if ms == nil {
			slog.Error("render: no mesh for node", "node", n.Name, "kind", n.Kind)
			return
		}
		sld := xyz.NewSolid(parent).SetMesh(ms)
		sld.SetName(n.Name)
		SetMaterial(sld, n.Material)
		sld.SetPos(n.Pos.X, n.Pos.Y, n.Pos.Z).SetEulerRotation(n.Rot.X, n.Rot.Y, n.Rot.Z)
	}
}

// Segments of round meshes.
const segments = 32

// mesh returns the shared mesh for the given shape node.
func (r *Renderer) mesh(n *compose.Node) xyz.Mesh {
	sc := r.Scene
	name := MeshName(n)
	if ms, err := sc.MeshByName(name); err == nil {
		return ms
	}
	sz := n.Size
	switch n.Kind {
	case compose.KindBox, compose.KindPlaceholder:
		return xyz.NewBox(sc, name, sz.X, sz.Y, sz.Z)
	case compose.KindCylinder:
		return xyz.NewCylinder(sc, name, sz.Y, sz.X, segments, 1, true, true)
	case compose.KindCone:
		return xyz.NewCylinderSector(sc, name, sz.Y, sz.X, sz.Z, segments, 1, 0, 360, true, true)
	case compose.KindSphere:
		return xyz.NewSphere(sc, name, sz.X, segments)
	case compose.KindTorus:
		return xyz.NewTorus(sc, name, sz.X, sz.Y, segments)
	case compose.KindPlane:
		return xyz.NewPlane(sc, name, sz.X, sz.Z)
	case compose.KindSlab:
		if n.Outline == nil {
			return nil
		}
		ms := SlabMesh(name, compose.Extrude(n.Outline, sz.Y))
		sc.SetMesh(ms)
		return ms
	}
	return nil
}

// MeshName returns the name of the mesh of the given shape node, which
// is the same for all nodes of the same shape and dimensions.
func MeshName(n *compose.Node) string {
	sz := n.Size
	if n.Kind == compose.KindSlab && n.Outline != nil {
		o := n.Outline
		return fmt.Sprintf("slab-%s-%.3f-%.3f-%.3f", o.Shape, o.Length, o.Width, sz.Y)
	}
	kind := n.Kind
	if kind == compose.KindPlaceholder {
		kind = compose.KindBox
	}
	return fmt.Sprintf("%s-%.3f-%.3f-%.3f", kind, sz.X, sz.Y, sz.Z)
}

// SlabMesh returns a mesh with the given geometry.
func SlabMesh(name string, g *compose.Geometry) *xyz.GenMesh {
	ms := &xyz.GenMesh{}
	ms.Name = name
	for i, v := range g.Vertex {
		nm, tc := g.Normal[i], g.TexCoord[i]
		ms.Vertex.Append(v.X, v.Y, v.Z)
		ms.Normal.Append(nm.X, nm.Y, nm.Z)
		ms.TexCoord.Append(tc.X, tc.Y)
	}
	ms.Index.Append(g.Index...)
	ms.MeshSize()
	return ms
}
