// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/scene"
	"github.com/gogpu/ggview/text"
)

// Coordinator builds and submits scenes and presents composited frames.
// It is not safe for concurrent use; all methods belong to the event loop
// goroutine.
type Coordinator struct {
	api      API
	renderer Renderer
	font     text.Font
	opts     options

	initialized bool
	fontKey     scene.FontKey
	epoch       scene.Epoch
	submissions int
}

// NewCoordinator creates a coordinator that shapes text with font.
func NewCoordinator(api API, renderer Renderer, font text.Font, opts ...Option) *Coordinator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Coordinator{
		api:      api,
		renderer: renderer,
		font:     font,
		opts:     o,
	}
}

func (c *Coordinator) log() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return ggview.Logger()
}

// Init registers fontBytes with the backend, selects the root pipeline and
// submits the first scene for a width x height viewport. The backend
// composites that scene without a GenerateFrame request.
func (c *Coordinator) Init(fontBytes []byte, width, height int) error {
	if c.initialized {
		return ErrAlreadyInitialized
	}
	key, err := c.api.RegisterRawFont(fontBytes)
	if err != nil {
		return fmt.Errorf("frame: register font: %w", err)
	}
	c.fontKey = key
	c.initialized = true
	c.api.SetRootPipeline(c.opts.pipeline)
	c.log().Info("frame: initialized",
		"pipeline", c.opts.pipeline, "font", key, "width", width, "height", height)
	return c.rebuild(width, height)
}

// OnResize rebuilds the scene for the new logical size and submits it.
func (c *Coordinator) OnResize(width, height int) error {
	c.log().Debug("frame: resize", "width", width, "height", height)
	return c.rebuild(width, height)
}

func (c *Coordinator) rebuild(width, height int) error {
	if !c.initialized {
		return ErrNotInitialized
	}
	w, h := float32(width), float32(height)
	s, err := scene.BuildSample(c.opts.pipeline, c.fontKey, c.font, w, h, c.opts.sample)
	if err != nil {
		return fmt.Errorf("frame: build scene: %w", err)
	}
	c.Submit(s, scene.Size{Width: w, Height: h})
	return nil
}

// Submit hands s to the backend with the configured background and the
// current epoch. Every submission after the first is followed by exactly
// one GenerateFrame.
func (c *Coordinator) Submit(s *scene.Scene, viewport scene.Size) {
	first := c.submissions == 0
	if !first && c.opts.epochPolicy == EpochIncrement {
		c.epoch = c.epoch.Next()
	}
	bg := c.opts.background
	c.api.SubmitScene(&bg, c.epoch, viewport, s)
	if !first {
		c.api.GenerateFrame()
	}
	c.submissions++

	st := s.Stats()
	c.log().Debug("frame: scene submitted",
		"epoch", c.epoch, "viewport", viewport, "items", len(s.Items),
		"text_runs", st.TextRuns, "glyphs", st.Glyphs, "generate", !first)
}

// Tick installs the newest frame and presents it at the window's device
// size. It runs once per loop iteration whether or not a frame arrived.
func (c *Coordinator) Tick(win Window) {
	w, h := win.InnerSize()
	dpr := win.HiDPIFactor()
	c.renderer.Update()
	if err := c.renderer.Render(devicePixels(w, dpr), devicePixels(h, dpr)); err != nil {
		c.log().Warn("frame: render", "err", err)
	}
	win.SwapBuffers()
}

func devicePixels(v int, dpr float32) int {
	return int(float32(v)*dpr + 0.5)
}

// PipelineID returns the pipeline scenes are built for.
func (c *Coordinator) PipelineID() scene.PipelineID { return c.opts.pipeline }

// FontKey returns the key of the registered font.
func (c *Coordinator) FontKey() scene.FontKey { return c.fontKey }

// Epoch returns the epoch of the last submission.
func (c *Coordinator) Epoch() scene.Epoch { return c.epoch }

// Submissions returns how many scenes were submitted.
func (c *Coordinator) Submissions() int { return c.submissions }
