// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render is the rendering backend that scenes are submitted to.
//
// New returns two halves that share one backend goroutine:
//
//   - API is the submission side: font registration, root pipeline
//     selection, scene submission and frame generation requests. Its methods
//     post messages and never wait for the backend to rasterize.
//   - Renderer is the presentation side: Update installs the most recently
//     composited frame and Render copies it into a RenderTarget. Both must be
//     called from the goroutine that owns the target (the GL thread for a
//     window target).
//
// The backend composites the first scene submitted for the root pipeline
// on its own. Later submissions are only composited after GenerateFrame.
// Each composited frame is announced through the RenderNotifier, which is
// called from the backend goroutine.
//
// # Usage
//
//	renderer, api := render.New(render.WithDevicePixelRatio(2))
//	defer renderer.Close()
//	renderer.SetRenderNotifier(notifier)
//
//	key, err := api.RegisterRawFont(fontBytes)
//	api.SetRootPipeline(pipeline)
//	api.SubmitScene(&bg, 0, scene.Size{Width: 800, Height: 600}, s)
//
//	// on the render thread, after the notifier fired:
//	renderer.Update()
//	renderer.Render(1600, 1200)
package render
