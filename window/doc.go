// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window provides a GLFW window with an OpenGL 3.3 core context.
//
// Window implements frame.Window and frame.Waker. GLTarget is a
// render.RenderTarget whose CPU pixels are uploaded to a texture and
// blitted to the default framebuffer on Present.
//
// GLFW requires that New and every Window method except Wakeup are called
// from the main OS thread.
package window
