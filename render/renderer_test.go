// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggview/scene"
)

var (
	yellow = color.RGBA{255, 255, 0, 255}
	green  = color.RGBA{0, 255, 0, 255}
)

type chanNotifier struct {
	frames chan struct{}
	sizes  chan scene.Size
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{
		frames: make(chan struct{}, 8),
		sizes:  make(chan scene.Size, 8),
	}
}

func (n *chanNotifier) NewFrameReady() {
	select {
	case n.frames <- struct{}{}:
	default:
	}
}

func (n *chanNotifier) NewScrollFrameReady(bool) {}

func (n *chanNotifier) PipelineSizeChanged(_ scene.PipelineID, size *scene.Size) {
	n.sizes <- *size
}

func (n *chanNotifier) wait(t *testing.T) {
	t.Helper()
	select {
	case <-n.frames:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a frame")
	}
}

func fullRect(t *testing.T, pipeline scene.PipelineID, w, h float32, c scene.ColorF) *scene.Scene {
	t.Helper()
	bounds := scene.NewRect(0, 0, w, h)
	b := scene.NewDisplayListBuilder(pipeline)
	clip := b.NewClipRegion(bounds)
	b.PushStackingContext(scene.DefaultStackingContext(bounds, clip))
	b.PushRect(bounds, clip, c)
	b.PopStackingContext()
	s, err := b.Finalize()
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return s
}

func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, *API, *chanNotifier) {
	t.Helper()
	r, api := New(opts...)
	t.Cleanup(r.Close)
	n := newChanNotifier()
	r.SetRenderNotifier(n)
	return r, api, n
}

func TestFirstSubmitComposites(t *testing.T) {
	r, api, n := newTestRenderer(t)
	pipeline := scene.PipelineID{Namespace: 0, Index: 0}

	api.SetRootPipeline(pipeline)
	api.SubmitScene(&scene.Black, 0, scene.Size{Width: 10, Height: 10}, fullRect(t, pipeline, 10, 10, scene.Yellow))
	n.wait(t)

	r.Update()
	f := r.CurrentFrame()
	if f == nil {
		t.Fatal("CurrentFrame() = nil after Update")
	}
	if f.Epoch != 0 {
		t.Errorf("Epoch = %d, want 0", f.Epoch)
	}
	if err := r.Render(10, 10); err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := r.Target().(*PixmapTarget).Image()
	if got := img.RGBAAt(5, 5); got != yellow {
		t.Errorf("pixel (5,5) = %v, want %v", got, yellow)
	}
}

func TestLaterSubmitNeedsGenerateFrame(t *testing.T) {
	r, api, n := newTestRenderer(t)
	pipeline := scene.PipelineID{}
	size := scene.Size{Width: 8, Height: 8}

	api.SetRootPipeline(pipeline)
	api.SubmitScene(nil, 0, size, fullRect(t, pipeline, 8, 8, scene.Yellow))
	n.wait(t)

	api.SubmitScene(nil, 0, size, fullRect(t, pipeline, 8, 8, scene.Green))
	time.Sleep(50 * time.Millisecond)
	if got := r.FramesComposited(); got != 1 {
		t.Fatalf("FramesComposited() = %d before GenerateFrame, want 1", got)
	}

	api.GenerateFrame()
	n.wait(t)
	if got := r.FramesComposited(); got != 2 {
		t.Errorf("FramesComposited() = %d, want 2", got)
	}

	r.Update()
	if got := r.CurrentFrame().Image.RGBAAt(4, 4); got != green {
		t.Errorf("pixel (4,4) = %v, want %v", got, green)
	}
}

func TestDevicePixelRatio(t *testing.T) {
	r, api, n := newTestRenderer(t, WithDevicePixelRatio(2))
	pipeline := scene.PipelineID{}

	api.SetRootPipeline(pipeline)
	api.SubmitScene(nil, 0, scene.Size{Width: 10, Height: 5}, fullRect(t, pipeline, 10, 5, scene.Yellow))
	n.wait(t)
	r.Update()

	got := r.CurrentFrame().Image.Bounds().Size()
	if got.X != 20 || got.Y != 10 {
		t.Errorf("frame size = %v, want (20,10)", got)
	}
}

func TestPipelineSizeChanged(t *testing.T) {
	_, api, n := newTestRenderer(t)
	pipeline := scene.PipelineID{}

	api.SetRootPipeline(pipeline)
	api.SubmitScene(nil, 0, scene.Size{Width: 8, Height: 8}, fullRect(t, pipeline, 8, 8, scene.Yellow))
	api.SubmitScene(nil, 0, scene.Size{Width: 4, Height: 4}, fullRect(t, pipeline, 4, 4, scene.Yellow))

	select {
	case got := <-n.sizes:
		if got != (scene.Size{Width: 4, Height: 4}) {
			t.Errorf("PipelineSizeChanged size = %v, want 4x4", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for PipelineSizeChanged")
	}
}

func TestInvalidSceneDropped(t *testing.T) {
	r, api, n := newTestRenderer(t)
	pipeline := scene.PipelineID{}
	size := scene.Size{Width: 4, Height: 4}

	api.SetRootPipeline(pipeline)
	api.SubmitScene(nil, 0, size, &scene.Scene{Pipeline: pipeline})
	api.SubmitScene(nil, 3, size, fullRect(t, pipeline, 4, 4, scene.Green))
	n.wait(t)

	r.Update()
	if f := r.CurrentFrame(); f.Epoch != 3 {
		t.Errorf("first frame epoch = %d, want 3 (invalid scene composited)", f.Epoch)
	}
}

func TestRegisterRawFont(t *testing.T) {
	_, api, _ := newTestRenderer(t, WithNamespace(7))

	k1, err := api.RegisterRawFont(goregular.TTF)
	if err != nil {
		t.Fatalf("RegisterRawFont: %v", err)
	}
	k2, err := api.RegisterRawFont(goregular.TTF)
	if err != nil {
		t.Fatalf("RegisterRawFont: %v", err)
	}
	if k1.Namespace != 7 || k2.Namespace != 7 {
		t.Errorf("namespaces = %d, %d, want 7", k1.Namespace, k2.Namespace)
	}
	if k1 == k2 {
		t.Errorf("keys are equal: %v", k1)
	}
	if _, ok := api.fonts.LookupFont(k1); !ok {
		t.Errorf("LookupFont(%v) not found", k1)
	}

	if _, err := api.RegisterRawFont([]byte("not a font")); err == nil {
		t.Error("RegisterRawFont(garbage) succeeded, want error")
	}
}

func TestRenderBeforeFirstFrame(t *testing.T) {
	r, _, _ := newTestRenderer(t)
	if err := r.Render(6, 4); err != nil {
		t.Fatalf("Render: %v", err)
	}
	target := r.Target()
	if target.Width() != 6 || target.Height() != 4 {
		t.Errorf("target size = %dx%d, want 6x4", target.Width(), target.Height())
	}
	if got := target.(*PixmapTarget).Image().RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("pixel (1,1) = %v, want transparent", got)
	}
}

type bgraTarget struct {
	*PixmapTarget
	presents int
}

func (b *bgraTarget) Format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

func (b *bgraTarget) Present() error {
	b.presents++
	return nil
}

func TestRenderBGRAPresents(t *testing.T) {
	target := &bgraTarget{PixmapTarget: NewPixmapTarget(4, 4)}
	r, api, n := newTestRenderer(t, WithTarget(target))
	pipeline := scene.PipelineID{}

	api.SetRootPipeline(pipeline)
	api.SubmitScene(nil, 0, scene.Size{Width: 4, Height: 4}, fullRect(t, pipeline, 4, 4, scene.Red))
	n.wait(t)
	r.Update()
	if err := r.Render(4, 4); err != nil {
		t.Fatalf("Render: %v", err)
	}

	pix := target.Pixels()
	if pix[0] != 0 || pix[2] != 255 || pix[3] != 255 {
		t.Errorf("first pixel = %v, want BGRA red", pix[:4])
	}
	if target.presents != 1 {
		t.Errorf("presents = %d, want 1", target.presents)
	}
}

type failingTarget struct{ *PixmapTarget }

func (failingTarget) Format() gputypes.TextureFormat { return gputypes.TextureFormatR8Unorm }

func TestRenderUnsupportedFormat(t *testing.T) {
	r, _, _ := newTestRenderer(t, WithTarget(failingTarget{NewPixmapTarget(2, 2)}))
	if err := r.Render(2, 2); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Render error = %v, want %v", err, ErrUnsupportedFormat)
	}
}

func TestCloseDropsMessages(t *testing.T) {
	r, api := New(WithQueueSize(1))
	r.Close()
	r.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 4 {
			api.GenerateFrame()
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("API call blocked after Close")
	}
}
