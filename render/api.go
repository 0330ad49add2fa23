// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/internal/raster"
	"github.com/gogpu/ggview/scene"
	"github.com/gogpu/ggview/text"
)

// API is the submission side of the backend. It is safe for concurrent use.
type API struct {
	namespace uint32
	fonts     *fontRegistry
	msgs      chan<- message
	done      <-chan struct{}
}

type msgKind uint8

const (
	msgSetRootPipeline msgKind = iota
	msgSubmitScene
	msgGenerateFrame
)

type message struct {
	kind       msgKind
	pipeline   scene.PipelineID
	background *scene.ColorF
	epoch      scene.Epoch
	viewport   scene.Size
	scene      *scene.Scene
}

// RegisterRawFont parses a TrueType or OpenType font and makes it available
// to text items under the returned key.
func (a *API) RegisterRawFont(data []byte) (scene.FontKey, error) {
	f, err := text.ParseFont(data)
	if err != nil {
		return scene.FontKey{}, fmt.Errorf("render: register font: %w", err)
	}
	key := a.fonts.add(a.namespace, f)
	ggview.Logger().Debug("render: font registered", "key", key, "name", f.Name())
	return key, nil
}

// SetRootPipeline selects the pipeline whose scene is composited.
func (a *API) SetRootPipeline(p scene.PipelineID) {
	a.send(message{kind: msgSetRootPipeline, pipeline: p})
}

// SubmitScene hands s to the backend as the current display list of its
// pipeline. A nil background leaves the frame transparent. The backend
// takes ownership of s.
func (a *API) SubmitScene(background *scene.ColorF, epoch scene.Epoch, viewport scene.Size, s *scene.Scene) {
	if s == nil {
		ggview.Logger().Warn("render: nil scene submitted")
		return
	}
	if background != nil {
		bg := *background
		background = &bg
	}
	a.send(message{
		kind:       msgSubmitScene,
		pipeline:   s.Pipeline,
		background: background,
		epoch:      epoch,
		viewport:   viewport,
		scene:      s,
	})
}

// GenerateFrame asks the backend to composite the current scene of the
// root pipeline.
func (a *API) GenerateFrame() {
	a.send(message{kind: msgGenerateFrame})
}

func (a *API) send(m message) {
	select {
	case a.msgs <- m:
	case <-a.done:
		ggview.Logger().Debug("render: backend closed, message dropped", "kind", m.kind)
	}
}

// fontRegistry maps font keys to parsed fonts. It is written by API callers
// and read by the backend goroutine.
type fontRegistry struct {
	mu    sync.RWMutex
	next  uint32
	fonts map[scene.FontKey]*text.SFNTFont
}

func newFontRegistry() *fontRegistry {
	return &fontRegistry{fonts: make(map[scene.FontKey]*text.SFNTFont)}
}

func (r *fontRegistry) add(ns uint32, f *text.SFNTFont) scene.FontKey {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	key := scene.FontKey{Namespace: ns, Index: r.next}
	r.fonts[key] = f
	return key
}

// LookupFont implements raster.FontSource.
func (r *fontRegistry) LookupFont(key scene.FontKey) (raster.GlyphSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fonts[key]
	if !ok {
		return nil, false
	}
	return f, true
}
