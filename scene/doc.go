// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene describes a frame as a retained-mode display list.
//
// A Scene is an ordered list of items rooted at one stacking context:
//
//	PushStackingContext
//	    Rect, Border, Text ...   (each drawn within a registered clip)
//	PopStackingContext
//
// Clip regions live in a side table and are referenced by ClipID. A clip
// must be registered with NewClipRegion before a primitive refers to it.
//
// DisplayListBuilder records items and validates nesting; Finalize hands
// the finished Scene to the caller, who passes ownership on to the
// rendering backend. Building performs no I/O.
//
// BuildSample assembles the demo scene: background and decorative rects,
// a dashed border, and one text run per configured line, optionally with
// per-glyph debug boxes.
package scene
