// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/internal/raster"
	"github.com/gogpu/ggview/scene"
)

var (
	// ErrNoPixels is returned by Render when the target exposes no usable
	// pixel memory.
	ErrNoPixels = errors.New("render: target has no pixel memory")

	// ErrUnsupportedFormat is returned by Render for targets whose pixel
	// format is neither RGBA8Unorm nor BGRA8Unorm.
	ErrUnsupportedFormat = errors.New("render: unsupported target format")
)

// RenderNotifier receives backend events. Its methods are called from the
// backend goroutine and must not block or touch presentation state.
type RenderNotifier interface {
	// NewFrameReady is called after a frame was composited.
	NewFrameReady()

	// NewScrollFrameReady is called after a scroll-only update.
	NewScrollFrameReady(compositeNeeded bool)

	// PipelineSizeChanged is called when a pipeline is resubmitted with a
	// different viewport.
	PipelineSizeChanged(pipeline scene.PipelineID, size *scene.Size)
}

// Frame is a composited frame waiting to be presented.
type Frame struct {
	Pipeline   scene.PipelineID
	Epoch      scene.Epoch
	Background *scene.ColorF

	// Image holds the frame in device pixels.
	Image *image.RGBA
}

// Renderer is the presentation side of the backend. Update and Render must
// be called from a single goroutine.
type Renderer struct {
	opts      options
	msgs      chan message
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once

	mu       sync.Mutex
	notifier RenderNotifier
	pending  *Frame
	frames   uint64

	current *Frame
	target  RenderTarget
}

// New starts a backend goroutine and returns its two halves. Call
// Renderer.Close to stop it.
func New(opts ...Option) (*Renderer, *API) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	target := o.target
	if target == nil {
		target = NewPixmapTarget(0, 0)
	}

	r := &Renderer{
		opts:   o,
		msgs:   make(chan message, o.queueSize),
		done:   make(chan struct{}),
		target: target,
	}
	fonts := newFontRegistry()
	api := &API{
		namespace: o.namespace,
		fonts:     fonts,
		msgs:      r.msgs,
		done:      r.done,
	}

	b := &backend{
		raster:    raster.New(fonts),
		dpr:       o.dpr,
		pipelines: make(map[scene.PipelineID]pipelineState),
		r:         r,
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		b.run(r.msgs, r.done)
	}()
	return r, api
}

// SetRenderNotifier installs the notifier that is told about new frames.
func (r *Renderer) SetRenderNotifier(n RenderNotifier) {
	r.mu.Lock()
	r.notifier = n
	r.mu.Unlock()
}

// Update installs the most recently composited frame, if any.
func (r *Renderer) Update() {
	r.mu.Lock()
	f := r.pending
	r.pending = nil
	r.mu.Unlock()
	if f != nil {
		r.current = f
	}
}

// Render clears the target with the frame background and copies the
// current frame into it, then presents the target. width and height are
// in device pixels. Before the first frame only the clear happens.
func (r *Renderer) Render(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	t := r.target
	if rs, ok := t.(Resizer); ok && (t.Width() != width || t.Height() != height) {
		rs.Resize(width, height)
	}

	format := t.Format()
	if format != gputypes.TextureFormatRGBA8Unorm && format != gputypes.TextureFormatBGRA8Unorm {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	dst, ok := targetImage(t)
	if !ok {
		return ErrNoPixels
	}

	var bg color.Color = color.Transparent
	if r.current != nil && r.current.Background != nil {
		bg = r.current.Background.NRGBA()
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if r.current != nil {
		draw.Draw(dst, dst.Bounds(), r.current.Image, image.Point{}, draw.Src)
	}
	if format == gputypes.TextureFormatBGRA8Unorm {
		swapRB(dst)
	}

	if p, ok := t.(Presenter); ok {
		if err := p.Present(); err != nil {
			return fmt.Errorf("render: present: %w", err)
		}
	}
	return nil
}

// CurrentFrame returns the frame installed by the last Update, or nil.
func (r *Renderer) CurrentFrame() *Frame {
	return r.current
}

// Target returns the render target.
func (r *Renderer) Target() RenderTarget {
	return r.target
}

// FramesComposited returns how many frames the backend has produced.
func (r *Renderer) FramesComposited() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close stops the backend goroutine and waits for it to exit. API calls
// made afterwards are dropped.
func (r *Renderer) Close() {
	r.closeOnce.Do(func() {
		close(r.done)
		r.wg.Wait()
	})
}

// publish hands a composited frame to the presentation side and returns
// the notifier to tell about it.
func (r *Renderer) publish(f *Frame) RenderNotifier {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = f
	r.frames++
	return r.notifier
}

func (r *Renderer) currentNotifier() RenderNotifier {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notifier
}

// pipelineState is the last scene submitted for a pipeline.
type pipelineState struct {
	background *scene.ColorF
	epoch      scene.Epoch
	viewport   scene.Size
	scene      *scene.Scene
}

// backend owns all scene state; it only runs on the backend goroutine.
type backend struct {
	raster     *raster.Rasterizer
	dpr        float32
	root       scene.PipelineID
	hasRoot    bool
	pipelines  map[scene.PipelineID]pipelineState
	composited bool
	r          *Renderer
}

func (b *backend) run(msgs <-chan message, done <-chan struct{}) {
	for {
		select {
		case m := <-msgs:
			b.handle(m)
		case <-done:
			return
		}
	}
}

func (b *backend) handle(m message) {
	log := ggview.Logger()
	switch m.kind {
	case msgSetRootPipeline:
		b.root = m.pipeline
		b.hasRoot = true

	case msgSubmitScene:
		if err := m.scene.Validate(); err != nil {
			log.Warn("render: invalid scene dropped", "pipeline", m.pipeline, "err", err)
			return
		}
		if !m.scene.Covers(m.viewport) {
			log.Warn("render: root stacking context does not cover the viewport",
				"pipeline", m.pipeline, "viewport", m.viewport)
		}
		prev, seen := b.pipelines[m.pipeline]
		b.pipelines[m.pipeline] = pipelineState{
			background: m.background,
			epoch:      m.epoch,
			viewport:   m.viewport,
			scene:      m.scene,
		}
		if seen && prev.viewport != m.viewport {
			if n := b.r.currentNotifier(); n != nil {
				size := m.viewport
				n.PipelineSizeChanged(m.pipeline, &size)
			}
		}
		if !b.composited && b.hasRoot && m.pipeline == b.root {
			b.composite()
		}

	case msgGenerateFrame:
		b.composite()
	}
}

// composite rasterizes the root pipeline's scene and publishes the frame.
func (b *backend) composite() {
	log := ggview.Logger()
	if !b.hasRoot {
		log.Debug("render: generate frame without root pipeline")
		return
	}
	st, ok := b.pipelines[b.root]
	if !ok {
		log.Debug("render: generate frame before any scene", "pipeline", b.root)
		return
	}

	w := deviceExtent(st.viewport.Width, b.dpr)
	h := deviceExtent(st.viewport.Height, b.dpr)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if st.background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(st.background.NRGBA()), image.Point{}, draw.Src)
	}
	if err := b.raster.Draw(img, st.scene, b.dpr); err != nil {
		log.Warn("render: rasterize", "pipeline", b.root, "err", err)
	}
	b.composited = true

	n := b.r.publish(&Frame{
		Pipeline:   b.root,
		Epoch:      st.epoch,
		Background: st.background,
		Image:      img,
	})
	log.Debug("render: frame composited", "pipeline", b.root, "epoch", st.epoch, "size", img.Bounds().Size())
	if n != nil {
		n.NewFrameReady()
	}
}

func deviceExtent(v, dpr float32) int {
	d := v * dpr
	if d <= 0 {
		return 0
	}
	return int(d + 0.5)
}
