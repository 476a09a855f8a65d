// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compose derives the 3D scene of a dining set configuration:
// the table top, the table base, the chairs around the table and the
// environment. The result is a declarative tree of [Node]s that does
// not depend on any GPU state, and is turned into a live scene by
// package render.
package compose

//go:generate core generate

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/diningset/catalog"
)

// Kinds are the kinds of [Node].
type Kinds int32 //enums:enum -trim-prefix Kind -transform snake

const (
	// KindGroup only holds children.
	KindGroup Kinds = iota

	// KindBox is a box of Size width, height and depth.
	KindBox

	// KindCylinder is a vertical cylinder of radius Size.X and height Size.Y.
	KindCylinder

	// KindCone is a tapered vertical cylinder with top radius Size.X,
	// height Size.Y and bottom radius Size.Z.
	KindCone

	// KindSphere is a sphere of radius Size.X.
	KindSphere

	// KindTorus is a torus in the XY plane with radius Size.X
	// and tube radius Size.Y.
	KindTorus

	// KindSlab is the Outline extruded upward from Pos by Size.Y.
	KindSlab

	// KindPlane is a horizontal plane of width Size.X and depth Size.Z.
	KindPlane

	// KindModel is an authored 3D model.
	KindModel

	// KindPlaceholder is a translucent box of Size standing in
	// for a model that is still loading.
	KindPlaceholder
)

// Node is an element of the composed scene. Shapes are centered at Pos,
// except for [KindSlab]. Rot holds Euler angles in degrees.
type Node struct {
	Name     string
	Kind     Kinds
	Size     math32.Vector3
	Pos      math32.Vector3
	Rot      math32.Vector3
	Material Material

	// Outline is the outline of a [KindSlab].
	Outline *Outline

	// Model is the model of a [KindModel].
	Model *Model

	Children []*Node
}

// Model describes an authored model and how to fit it into the scene.
type Model struct {

	// Ref is the asset path of the model file.
	Ref string

	// Roles is the declared mapping of mesh names to material roles.
	Roles map[string]catalog.MaterialRoles

	// Materials are the materials of each role.
	Materials map[catalog.MaterialRoles]Material

	// Chair is whether this is a chair model, which determines the
	// fallback mesh naming convention, see [ChairRole] and [TableRole].
	Chair bool

	// Dedupe hides meshes that are far from the first one,
	// see [Dedupe].
	Dedupe bool
}

// RoleOf returns the material role of the mesh with the given name.
func (m *Model) RoleOf(mesh string) catalog.MaterialRoles {
	if m.Chair {
		return ChairRole(m.Roles, mesh)
	}
	return TableRole(m.Roles, mesh)
}

// MaterialOf returns the material of the mesh with the given name,
// and false if the mesh keeps its authored material.
func (m *Model) MaterialOf(mesh string) (Material, bool) {
	mat, ok := m.Materials[m.RoleOf(mesh)]
	return mat, ok
}

// Add adds the given children to the node and returns the node.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// SetRot sets the Euler rotation in degrees and returns the node.
func (n *Node) SetRot(x, y, z float32) *Node {
	n.Rot = math32.Vec3(x, y, z)
	return n
}

// WalkDown calls fun on the node and all of its descendants, depth first.
// Children of a node are skipped if fun returns false for it.
func (n *Node) WalkDown(fun func(n *Node) bool) {
	if !fun(n) {
		return
	}
	for _, c := range n.Children {
		c.WalkDown(fun)
	}
}

// Find returns the first node with the given name, or nil.
func (n *Node) Find(name string) *Node {
	var res *Node
	n.WalkDown(func(c *Node) bool {
		if res != nil {
			return false
		}
		if c.Name == name {
			res = c
			return false
		}
		return true
	})
	return res
}

// Count returns the number of nodes of the given kind in the tree.
func (n *Node) Count(kind Kinds) int {
	cnt := 0
	n.WalkDown(func(c *Node) bool {
		if c.Kind == kind {
			cnt++
		}
		return true
	})
	return cnt
}

func group(name string, pos math32.Vector3, children ...*Node) *Node {
	return &Node{Name: name, Kind: KindGroup, Pos: pos, Children: children}
}

func box(name string, w, h, d float32, pos math32.Vector3, mat Material) *Node {
	return &Node{Name: name, Kind: KindBox, Size: math32.Vec3(w, h, d), Pos: pos, Material: mat}
}

func cylinder(name string, radius, height float32, pos math32.Vector3, mat Material) *Node {
	return &Node{Name: name, Kind: KindCylinder, Size: math32.Vec3(radius, height, radius), Pos: pos, Material: mat}
}

func cone(name string, top, height, bottom float32, pos math32.Vector3, mat Material) *Node {
	return &Node{Name: name, Kind: KindCone, Size: math32.Vec3(top, height, bottom), Pos: pos, Material: mat}
}

func sphere(name string, radius float32, pos math32.Vector3, mat Material) *Node {
	return &Node{Name: name, Kind: KindSphere, Size: math32.Vec3(radius, radius, radius), Pos: pos, Material: mat}
}

func torus(name string, radius, tube float32, pos math32.Vector3, mat Material) *Node {
	return &Node{Name: name, Kind: KindTorus, Size: math32.Vec3(radius, tube, 0), Pos: pos, Material: mat}
}
