// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/frame"
)

// Config describes the window to create.
type Config struct {
	Title         string
	Width, Height int
}

// Window is a GLFW window whose GL context is current on the calling
// thread.
type Window struct {
	win     *glfw.Window
	pending []frame.Event
	woken   atomic.Bool
}

// New initializes GLFW, creates the window, makes its context current and
// loads the GL function pointers. It locks the calling goroutine to its OS
// thread.
func New(cfg Config) (*Window, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("window: init gl: %w", err)
	}
	ggview.Logger().Info("window: created",
		"width", cfg.Width, "height", cfg.Height, "gl", gl.GoStr(gl.GetString(gl.VERSION)))

	w := &Window{win: win}
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		w.push(keyboardInput(key, scancode, action))
	})
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(frame.Resized{Width: width, Height: height})
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		w.push(frame.Closed{})
	})
	win.SetRefreshCallback(func(_ *glfw.Window) {
		w.push(frame.Refresh{})
	})
	return w, nil
}

func keyboardInput(key glfw.Key, scancode int, action glfw.Action) frame.KeyboardInput {
	state := frame.Pressed
	if action == glfw.Release {
		state = frame.Released
	}
	code := int(key)
	if key == glfw.KeyUnknown {
		code = -1
	}
	return frame.KeyboardInput{State: state, ScanCode: uint32(scancode), KeyCode: code}
}

func (w *Window) push(ev frame.Event) {
	w.pending = append(w.pending, ev)
}

// InnerSize returns the size of the client area in screen coordinates.
func (w *Window) InnerSize() (int, int) {
	return w.win.GetSize()
}

// HiDPIFactor returns the ratio of framebuffer pixels to screen
// coordinates.
func (w *Window) HiDPIFactor() float32 {
	ww, _ := w.win.GetSize()
	fw, _ := w.win.GetFramebufferSize()
	if ww <= 0 || fw <= 0 {
		return 1
	}
	return float32(fw) / float32(ww)
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// WaitEvent blocks in glfw.WaitEvents until a callback queued an event or
// Wakeup was called.
func (w *Window) WaitEvent() frame.Event {
	for len(w.pending) == 0 {
		glfw.WaitEvents()
		if w.woken.Swap(false) {
			w.push(frame.Wakeup{})
		}
	}
	ev := w.pending[0]
	w.pending = w.pending[1:]
	return ev
}

// Wakeup unblocks WaitEvent. It may be called from any goroutine.
func (w *Window) Wakeup() {
	w.woken.Store(true)
	glfw.PostEmptyEvent()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

var (
	_ frame.Window = (*Window)(nil)
	_ frame.Waker  = (*Window)(nil)
)
