// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"
)

// Builder errors reported by Finalize and Validate.
var (
	// ErrUnbalanced is returned when pushes and pops of stacking contexts
	// do not match.
	ErrUnbalanced = errors.New("scene: unbalanced stacking contexts")

	// ErrNestedContext is returned when a stacking context is pushed while
	// another one is still open.
	ErrNestedContext = errors.New("scene: nested stacking context")

	// ErrNoStackingContext is returned when a primitive is pushed outside
	// any stacking context, or the scene has no root context.
	ErrNoStackingContext = errors.New("scene: no open stacking context")

	// ErrUnknownClip is returned when an item references a clip that was
	// not registered with the scene.
	ErrUnknownClip = errors.New("scene: unknown clip region")

	// ErrFinalized is returned when the builder is used after Finalize.
	ErrFinalized = errors.New("scene: builder already finalized")
)

// DisplayListBuilder records a display list for one pipeline.
//
// Push methods never panic. The first misuse (unknown clip, nested or
// missing stacking context, unmatched pop) is recorded and returned by
// Finalize; later calls are still recorded so the item list stays
// inspectable.
//
// DisplayListBuilder is NOT safe for concurrent use.
type DisplayListBuilder struct {
	pipeline  PipelineID
	items     []Item
	clips     []ClipRegion
	depth     int
	err       error
	finalized bool
}

// NewDisplayListBuilder creates an empty builder for pipeline.
func NewDisplayListBuilder(pipeline PipelineID) *DisplayListBuilder {
	return &DisplayListBuilder{
		pipeline: pipeline,
		items:    make([]Item, 0, 16),
		clips:    make([]ClipRegion, 0, 2),
	}
}

// NewClipRegion registers a clip region and returns its id.
func (b *DisplayListBuilder) NewClipRegion(main Rect, complex ...ComplexClipRegion) ClipID {
	b.clips = append(b.clips, ClipRegion{Main: main, Complex: complex})
	return ClipID(len(b.clips) - 1) //nolint:gosec // clip count is bounded by memory
}

// PushStackingContext opens a stacking context.
// Only one context may be open at a time.
func (b *DisplayListBuilder) PushStackingContext(sc StackingContext) {
	if b.check() {
		return
	}
	if b.depth > 0 {
		b.fail(fmt.Errorf("%w: push at item %d", ErrNestedContext, len(b.items)))
	}
	b.checkClip(sc.Clip)
	b.depth++
	b.items = append(b.items, sc)
}

// PopStackingContext closes the open stacking context.
func (b *DisplayListBuilder) PopStackingContext() {
	if b.check() {
		return
	}
	if b.depth == 0 {
		b.fail(fmt.Errorf("%w: pop at item %d without push", ErrUnbalanced, len(b.items)))
		return
	}
	b.depth--
	b.items = append(b.items, PopStackingContext{})
}

// PushRect adds a filled rectangle.
func (b *DisplayListBuilder) PushRect(bounds Rect, clip ClipID, color ColorF) {
	b.pushPrimitive(RectItem{Bounds: bounds, Clip: clip, Color: color})
}

// PushBorder adds a border with per-side styles.
func (b *DisplayListBuilder) PushBorder(bounds Rect, clip ClipID, left, top, right, bottom BorderSide, radius BorderRadius) {
	b.pushPrimitive(BorderItem{
		Bounds: bounds,
		Clip:   clip,
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Radius: radius,
	})
}

// PushUniformBorder adds a border with the same side on every edge.
func (b *DisplayListBuilder) PushUniformBorder(bounds Rect, clip ClipID, side BorderSide, radius BorderRadius) {
	b.PushBorder(bounds, clip, side, side, side, side, radius)
}

// PushText adds a text run. The glyph slice is retained.
func (b *DisplayListBuilder) PushText(bounds Rect, clip ClipID, glyphs []GlyphInstance, font FontKey, color ColorF, size, blurRadius Au) {
	b.pushPrimitive(TextItem{
		Bounds:     bounds,
		Clip:       clip,
		Glyphs:     glyphs,
		Font:       font,
		Color:      color,
		Size:       size,
		BlurRadius: blurRadius,
	})
}

// Depth returns the number of currently open stacking contexts.
func (b *DisplayListBuilder) Depth() int {
	return b.depth
}

// Err returns the first recorded error, if any.
func (b *DisplayListBuilder) Err() error {
	return b.err
}

// Finalize returns the finished scene. Ownership of the scene passes to the
// caller; the builder cannot be used afterwards.
func (b *DisplayListBuilder) Finalize() (*Scene, error) {
	if b.finalized {
		return nil, ErrFinalized
	}
	b.finalized = true

	if b.err == nil && b.depth != 0 {
		b.err = fmt.Errorf("%w: %d context(s) left open", ErrUnbalanced, b.depth)
	}
	s := &Scene{
		Pipeline: b.pipeline,
		Items:    b.items,
		Clips:    b.clips,
	}
	b.items, b.clips = nil, nil
	if b.err != nil {
		return nil, b.err
	}
	return s, nil
}

func (b *DisplayListBuilder) pushPrimitive(p Primitive) {
	if b.check() {
		return
	}
	if b.depth == 0 {
		b.fail(fmt.Errorf("%w: %s at item %d", ErrNoStackingContext, p.Kind(), len(b.items)))
	}
	b.checkClip(p.ItemClip())
	b.items = append(b.items, p)
}

func (b *DisplayListBuilder) checkClip(id ClipID) {
	if int(id) >= len(b.clips) {
		b.fail(fmt.Errorf("%w: clip %d at item %d", ErrUnknownClip, id, len(b.items)))
	}
}

// check records ErrFinalized and reports true when the builder is closed.
func (b *DisplayListBuilder) check() bool {
	if b.finalized {
		b.fail(ErrFinalized)
		return true
	}
	return false
}

func (b *DisplayListBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
