// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

// Status is the load status of a model.
type Status int32 //enums:enum -trim-prefix Status -transform snake

const (
	// StatusPending is a model that is not loaded yet.
	StatusPending Status = iota

	// StatusReady is a model that is loaded and valid.
	StatusReady

	// StatusFailed is a model that could not be loaded.
	StatusFailed
)
