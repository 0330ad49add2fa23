// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"sync/atomic"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggview/scene"
	"github.com/gogpu/ggview/text"
)

type submission struct {
	background scene.ColorF
	epoch      scene.Epoch
	viewport   scene.Size
	scene      *scene.Scene
}

type stubAPI struct {
	calls       []string
	root        scene.PipelineID
	submissions []submission
	registerErr error
}

func (a *stubAPI) RegisterRawFont([]byte) (scene.FontKey, error) {
	a.calls = append(a.calls, "register")
	if a.registerErr != nil {
		return scene.FontKey{}, a.registerErr
	}
	return scene.FontKey{Namespace: 1, Index: 42}, nil
}

func (a *stubAPI) SetRootPipeline(p scene.PipelineID) {
	a.calls = append(a.calls, "root")
	a.root = p
}

func (a *stubAPI) SubmitScene(bg *scene.ColorF, epoch scene.Epoch, viewport scene.Size, s *scene.Scene) {
	a.calls = append(a.calls, "submit")
	a.submissions = append(a.submissions, submission{*bg, epoch, viewport, s})
}

func (a *stubAPI) GenerateFrame() {
	a.calls = append(a.calls, "generate")
}

type renderCall struct{ width, height int }

type stubRenderer struct {
	calls   []string
	renders []renderCall
}

func (r *stubRenderer) Update() {
	r.calls = append(r.calls, "update")
}

func (r *stubRenderer) Render(width, height int) error {
	r.calls = append(r.calls, "render")
	r.renders = append(r.renders, renderCall{width, height})
	return nil
}

type stubWindow struct {
	width, height int
	dpr           float32
	events        []Event
	swaps         int
	wakeups       atomic.Int32
}

func (w *stubWindow) InnerSize() (int, int) { return w.width, w.height }
func (w *stubWindow) HiDPIFactor() float32  { return w.dpr }
func (w *stubWindow) SwapBuffers()          { w.swaps++ }
func (w *stubWindow) Wakeup()               { w.wakeups.Add(1) }

// WaitEvent pops the next queued event and reports Closed once the queue
// is empty.
func (w *stubWindow) WaitEvent() Event {
	if len(w.events) == 0 {
		return Closed{}
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev
}

func testFont(t *testing.T) text.Font {
	t.Helper()
	f, err := text.ParseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont: %v", err)
	}
	return f
}

func equalCalls(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
