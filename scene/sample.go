// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/gogpu/ggview/text"
)

// SampleText is the sentence shown by the demo scene.
const SampleText = "Mammon slept. And the beast reborn spread over the earth and its numbers grew legion."

// SampleOptions configures BuildSample.
type SampleOptions struct {
	// Lines are laid out top to bottom, one text run each.
	Lines []string

	// Scale is the layout size in pixels per em.
	Scale float32

	// PixelToPoint converts Scale into the font size of the text runs.
	PixelToPoint float32

	// Origin is the pen origin before the first line advance.
	Origin text.Point

	// DebugGlyphBoxes draws an em-box border and a pixel bounding-box
	// border around every glyph.
	DebugGlyphBoxes bool

	// TextColor is the color of every text run.
	TextColor ColorF
}

// DefaultSampleOptions returns the options of the demo scene.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		Lines:           []string{SampleText},
		Scale:           128,
		PixelToPoint:    0.71,
		Origin:          text.Point{X: 10, Y: 64},
		DebugGlyphBoxes: true,
		TextColor:       Blue,
	}
}

var (
	dashedBorder = BorderSide{Width: 3, Color: Blue, Style: BorderStyleDashed}
	emBorder     = BorderSide{Width: 1, Color: Magenta, Style: BorderStyleSolid}
	glyphBorder  = BorderSide{Width: 1, Color: Red, Style: BorderStyleSolid}
)

// BuildSample builds the demo scene for a width x height viewport.
//
// It opens one scrollable stacking context over the viewport clipped to a
// single full-viewport clip, draws the decorative rects and dashed border,
// then shapes each line of opts.Lines with f and emits one text run per
// line. Degenerate viewports are not special-cased.
//
// BuildSample is a pure function of its arguments and the font's shaping
// behavior. It performs no I/O.
func BuildSample(pipeline PipelineID, fontKey FontKey, f text.Font, width, height float32, opts SampleOptions) (*Scene, error) {
	b := NewDisplayListBuilder(pipeline)

	bounds := NewRect(0, 0, width, height)
	clip := b.NewClipRegion(bounds, ComplexClipRegion{Rect: bounds, Radii: UniformRadius(0)})
	b.PushStackingContext(DefaultStackingContext(bounds, clip))

	b.PushRect(bounds, clip, Yellow)
	b.PushRect(NewRect(250, 250, 100, 100), clip, Green)
	b.PushUniformBorder(NewRect(250, 250, 100, 100), clip, dashedBorder, UniformRadius(0))

	vm := f.VMetrics(opts.Scale)
	size := AuFromPx(opts.Scale * opts.PixelToPoint)
	for _, line := range text.LayoutLines(f, opts.Lines, opts.Scale, opts.Origin) {
		var glyphs []GlyphInstance
		for g := range line.Glyphs {
			if opts.DebugGlyphBoxes {
				pushGlyphBoxes(b, clip, g, vm)
			}
			glyphs = append(glyphs, GlyphInstance{
				Index: uint32(g.ID),
				X:     g.Position.X,
				Y:     g.Position.Y,
			})
		}
		b.PushText(bounds, clip, glyphs, fontKey, opts.TextColor, size, 0)
	}

	b.PopStackingContext()
	return b.Finalize()
}

// pushGlyphBoxes draws the em box from shaping metrics and the pixel
// bounding box from the glyph outline. The two are expected to disagree.
func pushGlyphBoxes(b *DisplayListBuilder, clip ClipID, g text.PositionedGlyph, vm text.VMetrics) {
	em := text.EmBox(g, vm)
	b.PushUniformBorder(Rect{MinX: em.MinX, MinY: em.MinY, MaxX: em.MaxX, MaxY: em.MaxY}, clip, emBorder, UniformRadius(0))

	if g.HasPixelBox {
		pb := g.PixelBox
		r := NewRect(float32(pb.Min.X), float32(pb.Min.Y), float32(pb.Dx()), float32(pb.Dy()))
		b.PushUniformBorder(r, clip, glyphBorder, UniformRadius(0))
	}
}
