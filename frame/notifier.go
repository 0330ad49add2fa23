// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "github.com/gogpu/ggview/scene"

// Notifier receives backend callbacks and wakes the event loop. Bursts of
// frame-ready callbacks collapse into one pending wakeup until the loop
// drains it.
//
// Its methods never block and never touch window or GL state, so they are
// safe to call from the backend goroutine.
type Notifier struct {
	waker Waker
	ch    chan struct{}
}

// NewNotifier creates a notifier that wakes w.
func NewNotifier(w Waker) *Notifier {
	return &Notifier{
		waker: w,
		ch:    make(chan struct{}, 1),
	}
}

// NewFrameReady signals that a composited frame is waiting.
func (n *Notifier) NewFrameReady() {
	n.notify()
}

// NewScrollFrameReady signals a scroll-only update.
func (n *Notifier) NewScrollFrameReady(bool) {
	n.notify()
}

// PipelineSizeChanged is ignored.
func (n *Notifier) PipelineSizeChanged(scene.PipelineID, *scene.Size) {}

func (n *Notifier) notify() {
	select {
	case n.ch <- struct{}{}:
		if n.waker != nil {
			n.waker.Wakeup()
		}
	default:
	}
}

// C returns a channel that holds a value while a wakeup is pending.
func (n *Notifier) C() <-chan struct{} {
	return n.ch
}

// Drain clears a pending wakeup and reports whether there was one.
func (n *Notifier) Drain() bool {
	select {
	case <-n.ch:
		return true
	default:
		return false
	}
}
