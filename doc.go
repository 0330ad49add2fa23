// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggview renders a window of styled shapes and shaped text through a
// retained-mode display list, and can drive an external text-editing engine
// over a line-delimited JSON channel.
//
// # Overview
//
// Each frame the application builds a scene (package scene): one stacking
// context, a full-viewport clip region and a list of draw primitives
// (filled rects, borders, text runs). Glyph positions come from the font
// shaping adapter (package text). The scene is handed to a rendering backend
// (package render) that composites it on its own goroutine and reports
// completed frames through a notifier. The frame coordinator (package frame)
// owns pipeline identity, epoch and background color, reacts to resizes and
// drives update/render/present once per event-loop iteration.
//
// Package bridge spawns the editing engine, frames requests as single JSON
// lines and reads responses line by line during the startup handshake.
//
// # Quick Start
//
//	f, err := text.ParseFont(fontBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b := scene.NewDisplayListBuilder(scene.PipelineID{})
//	clip := b.NewClipRegion(scene.NewRect(0, 0, 800, 600))
//	b.PushStackingContext(scene.DefaultStackingContext(scene.NewRect(0, 0, 800, 600), clip))
//	b.PushRect(scene.NewRect(0, 0, 800, 600), clip, scene.ColorF{R: 1, G: 1, A: 1})
//	b.PopStackingContext()
//	s, err := b.Finalize()
//
// # Coordinate System
//
// Layout space is in logical pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Glyph positions are pen positions on the baseline
//
// Device pixels are layout pixels multiplied by the display's pixel density.
//
// # Logging
//
// Logging is silent by default. Call SetLogger to route diagnostics from all
// sub-packages to a *slog.Logger.
package ggview

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
