// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/diningset/camera"
)

// CameraView returns the current view of the scene camera.
func CameraView(sc *xyz.Scene) camera.View {
	return camera.View{Pos: sc.Camera.Pose.Pos, Target: sc.Camera.Target}
}

// SetCameraView points the scene camera from the view position at the
// view target, keeping it upright.
func SetCameraView(sc *xyz.Scene, v camera.View) {
	sc.Camera.Pose.Pos = v.Pos
	sc.Camera.LookAt(v.Target, math32.Vec3(0, 1, 0))
}
