// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/h2non/filetype"
)

// ModelExtensions are the supported model file extensions.
var ModelExtensions = []string{".obj"}

// Models tracks the load status of the model files referenced by the
// catalog. Models are validated in the background on first request, and
// OnDone is called from that goroutine when a model is ready or failed.
// A failed model stays failed until [Models.Reset], and is logged once.
type Models struct {

	// FS is the asset file system. All models fail with a nil FS.
	FS fs.FS

	// OnDone is called when a requested model is done loading.
	OnDone func(ref string, st Status)

	mu     sync.Mutex
	status map[string]Status
	wg     sync.WaitGroup
}

// NewModels returns new [Models] for the given file system.
func NewModels(fsys fs.FS, onDone func(ref string, st Status)) *Models {
	return &Models{FS: fsys, OnDone: onDone}
}

// Status returns the status of the given model, starting to load it if
// it has not been requested yet.
func (m *Models) Status(ref string) Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.status[ref]; ok {
		return st
	}
	if m.status == nil {
		m.status = map[string]Status{}
	}
	m.status[ref] = StatusPending
	m.wg.Add(1)
	go m.load(ref)
	return StatusPending
}

func (m *Models) load(ref string) {
	defer m.wg.Done()
	st := StatusReady
	if err := ValidateModel(m.FS, ref); err != nil {
		slog.Error("assets: model unavailable, using procedural fallback", "ref", ref, "err", err)
		st = StatusFailed
	}
	m.mu.Lock()
	if _, ok := m.status[ref]; !ok { // reset while loading
		m.mu.Unlock()
		return
	}
	m.status[ref] = st
	m.mu.Unlock()
	if m.OnDone != nil {
		m.OnDone(ref, st)
	}
}

// Wait waits for all pending loads to finish.
func (m *Models) Wait() {
	m.wg.Wait()
}

// Reset forgets all statuses, so that models are loaded again.
func (m *Models) Reset() {
	m.mu.Lock()
	m.status = nil
	m.mu.Unlock()
}

// ValidateModel returns an error if ref is not a readable model file
// of one of the [ModelExtensions].
func ValidateModel(fsys fs.FS, ref string) error {
	if fsys == nil {
		return errors.New("no asset file system")
	}
	ext := strings.ToLower(path.Ext(ref))
	supported := false
	for _, e := range ModelExtensions {
		if e == ext {
			supported = true
		}
	}
	if !supported {
		return fmt.Errorf("unsupported model format %q", ext)
	}
	b, err := fs.ReadFile(fsys, ref)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return fmt.Errorf("%s is empty", ref)
	}
	// obj files are text, which filetype does not match
	if kind, _ := filetype.Match(b); kind != filetype.Unknown {
		return fmt.Errorf("%s is a %s file", ref, kind.Extension)
	}
	return nil
}
