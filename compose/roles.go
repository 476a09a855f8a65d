// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"strings"

	"cogentcore.org/diningset/catalog"
)

// Substrings of mesh names for each role, checked in order. These are a
// best-effort convention for externally authored models; a declared
// role mapping always takes precedence.
var (
	chairRoleNames = []roleNames{
		{catalog.RoleLeather, []string{"upholstery", "seat", "back", "cushion", "leather"}},
		{catalog.RoleWood, []string{"frame", "leg", "wood", "armrest"}},
	}
	tableRoleNames = []roleNames{
		{catalog.RoleStone, []string{"marble", "stone", "top"}},
		{catalog.RoleWood, []string{"wood", "leg", "frame", "base"}},
		{catalog.RoleMetal, []string{"metal", "chrome", "brass", "gold"}},
	}
)

type roleNames struct {
	role  catalog.MaterialRoles
	names []string
}

// ChairRole returns the material role of the mesh with the given name in
// a chair model.
func ChairRole(declared map[string]catalog.MaterialRoles, name string) catalog.MaterialRoles {
	return roleForMesh(declared, chairRoleNames, name)
}

// TableRole returns the material role of the mesh with the given name in
// a table model.
func TableRole(declared map[string]catalog.MaterialRoles, name string) catalog.MaterialRoles {
	return roleForMesh(declared, tableRoleNames, name)
}

// roleForMesh returns the declared role of the mesh, or else the first
// role with a name that is a substring of the lower case mesh name.
// Meshes matching nothing keep their authored material ([catalog.RoleNone]).
func roleForMesh(declared map[string]catalog.MaterialRoles, fallback []roleNames, name string) catalog.MaterialRoles {
	if r, ok := declared[name]; ok {
		return r
	}
	lc := strings.ToLower(name)
	for _, rn := range fallback {
		for _, s := range rn.names {
			if strings.Contains(lc, s) {
				return rn.role
			}
		}
	}
	return catalog.RoleNone
}
