// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame drives the per-frame lifecycle of a window rendering
// through a retained-mode backend.
//
// A Coordinator owns the submission side: it registers the font, selects
// the root pipeline, builds the scene for the current viewport and submits
// it. The first submission is composited by the backend on its own; every
// later one is followed by a GenerateFrame request.
//
// Run is the event loop. It blocks on the window, rebuilds the scene on
// resize, and ticks (update, render, swap) on every iteration whatever
// event woke it. A Notifier turns backend frame-ready callbacks, which
// arrive on the backend goroutine, into at most one pending window wakeup.
package frame
