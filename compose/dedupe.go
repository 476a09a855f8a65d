// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"cogentcore.org/core/math32"
)

// DedupeThreshold is the distance in model units within which mesh
// centers are clustered by [Dedupe].
const DedupeThreshold = 0.6

// Dedupe returns the indexes of the meshes, given by their bounding box
// centers, that are within threshold of the first mesh or of another kept
// mesh, transitively. The remaining meshes are presumed to be duplicated
// copies from a faulty export and are hidden. This is only meant to clean
// up chair models known to have that defect.
func Dedupe(centers []math32.Vector3, threshold float32) []int {
	if len(centers) == 0 {
		return nil
	}
	kept := make([]bool, len(centers))
	kept[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for j, c := range centers {
			if kept[j] || centers[i].DistanceTo(c) > threshold {
				continue
			}
			kept[j] = true
			queue = append(queue, j)
		}
	}
	var res []int
	for i, k := range kept {
		if k {
			res = append(res, i)
		}
	}
	return res
}
