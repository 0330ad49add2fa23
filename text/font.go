// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"image"
	"iter"
	"math"

	"golang.org/x/image/math/fixed"
)

// Font is the shaping capability consumed by the scene builder.
//
// Layout returns a finite sequence with one element per shaped glyph.
// The sequence is meant to be consumed once per scene build; implementations
// may compute it lazily.
type Font interface {
	// VMetrics returns the vertical metrics at the given pixels-per-em scale.
	VMetrics(scale float32) VMetrics

	// Layout shapes text at scale with the first pen position at origin.
	Layout(text string, scale float32, origin Point) iter.Seq[PositionedGlyph]
}

// GlyphID is a font-specific glyph index. It is not a Unicode code point.
type GlyphID uint16

// Point is a position in layout space.
type Point struct {
	X, Y float32
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned rectangle in layout space.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Width returns the rectangle width.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the rectangle height.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// VMetrics holds vertical font metrics at a specific scale.
type VMetrics struct {
	// Ascent is the distance from the baseline to the top of the em box (positive).
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the em box.
	// It is negative for glyphs extending below the baseline.
	Descent float32

	// LineGap is the recommended extra space between lines.
	LineGap float32
}

// LinePitch returns the distance between consecutive baselines.
func (m VMetrics) LinePitch() float32 {
	return m.Ascent - m.Descent + m.LineGap
}

// HMetrics holds the horizontal metrics of a single scaled glyph.
type HMetrics struct {
	AdvanceWidth    float32
	LeftSideBearing float32
}

// PositionedGlyph is one shaped glyph with its resolved pen position.
type PositionedGlyph struct {
	ID       GlyphID
	Position Point
	HMetrics HMetrics

	// PixelBox is the glyph's pixel-space bounding box, rounded outward.
	// Only meaningful when HasPixelBox is true; glyphs without an outline
	// (spaces, control characters) have no box.
	PixelBox    image.Rectangle
	HasPixelBox bool
}

// EmBox returns the glyph's em box in layout space:
//
//	[pos.x, pos.y - ascent] .. [pos.x + advance + lsb, pos.y - descent]
//
// It is derived from unscaled shaping metrics and intentionally differs from
// PixelBox, which comes from the glyph outline.
func EmBox(g PositionedGlyph, vm VMetrics) Rect {
	return Rect{
		MinX: g.Position.X,
		MinY: g.Position.Y - vm.Ascent,
		MaxX: g.Position.X + g.HMetrics.AdvanceWidth + g.HMetrics.LeftSideBearing,
		MaxY: g.Position.Y - vm.Descent,
	}
}

// toFixed converts a float32 pixel value to 26.6 fixed point.
func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

// fromFixed converts a 26.6 fixed point value to float32 pixels.
func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// pixelBox offsets glyph bounds (relative to the pen, Y down) by pos and
// rounds outward to whole pixels. ok is false for empty bounds.
func pixelBox(bounds fixed.Rectangle26_6, pos Point) (box image.Rectangle, ok bool) {
	if bounds.Min.X >= bounds.Max.X || bounds.Min.Y >= bounds.Max.Y {
		return image.Rectangle{}, false
	}
	minX := math.Floor(float64(pos.X + fromFixed(bounds.Min.X)))
	minY := math.Floor(float64(pos.Y + fromFixed(bounds.Min.Y)))
	maxX := math.Ceil(float64(pos.X + fromFixed(bounds.Max.X)))
	maxY := math.Ceil(float64(pos.Y + fromFixed(bounds.Max.Y)))
	return image.Rect(int(minX), int(minY), int(maxX), int(maxY)), true
}
