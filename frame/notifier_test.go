// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"sync"
	"testing"

	"github.com/gogpu/ggview/render"
	"github.com/gogpu/ggview/scene"
)

var (
	_ render.RenderNotifier = (*Notifier)(nil)
	_ API                   = (*render.API)(nil)
	_ Renderer              = (*render.Renderer)(nil)
)

func TestNotifierCoalesces(t *testing.T) {
	win := &stubWindow{}
	n := NewNotifier(win)

	for range 100 {
		n.NewFrameReady()
	}
	n.NewScrollFrameReady(true)
	if got := win.wakeups.Load(); got != 1 {
		t.Errorf("wakeups = %d, want 1", got)
	}
	if !n.Drain() {
		t.Error("Drain() = false, want true")
	}
	if n.Drain() {
		t.Error("second Drain() = true, want false")
	}

	n.NewFrameReady()
	if got := win.wakeups.Load(); got != 2 {
		t.Errorf("wakeups after drain = %d, want 2", got)
	}
	select {
	case <-n.C():
	default:
		t.Error("C() has no pending value")
	}
}

func TestNotifierConcurrent(t *testing.T) {
	win := &stubWindow{}
	n := NewNotifier(win)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				n.NewFrameReady()
			}
		}()
	}
	wg.Wait()

	if got := win.wakeups.Load(); got != 1 {
		t.Errorf("wakeups = %d, want 1", got)
	}
}

func TestNotifierIgnoresSizeChanges(t *testing.T) {
	win := &stubWindow{}
	n := NewNotifier(win)
	n.PipelineSizeChanged(scene.PipelineID{}, &scene.Size{Width: 1, Height: 1})
	if got := win.wakeups.Load(); got != 0 {
		t.Errorf("wakeups = %d, want 0", got)
	}
}
