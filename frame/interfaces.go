// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "github.com/gogpu/ggview/scene"

// API is the submission side of a rendering backend.
type API interface {
	RegisterRawFont(data []byte) (scene.FontKey, error)
	SetRootPipeline(p scene.PipelineID)
	SubmitScene(background *scene.ColorF, epoch scene.Epoch, viewport scene.Size, s *scene.Scene)
	GenerateFrame()
}

// Renderer is the presentation side of a rendering backend. It is only
// used from the goroutine running the event loop.
type Renderer interface {
	// Update installs the newest composited frame.
	Update()

	// Render draws the installed frame at the given device size.
	Render(width, height int) error
}

// Window is the host window and its GL context.
type Window interface {
	// InnerSize returns the drawable size in logical pixels.
	InnerSize() (width, height int)

	// HiDPIFactor returns the number of device pixels per logical pixel.
	HiDPIFactor() float32

	SwapBuffers()

	// WaitEvent blocks until the next event is available.
	WaitEvent() Event
}

// Waker wakes a window blocked in WaitEvent. It is safe to call from any
// goroutine.
type Waker interface {
	Wakeup()
}
