// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"image/color"
	"math"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Rect is an axis-aligned rectangle in layout space.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// NewRect returns the rectangle with origin (x, y) and size (w, h).
func NewRect(x, y, w, h float32) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// Size returns the rectangle's size.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.MinX >= r.MinX && o.MinY >= r.MinY && o.MaxX <= r.MaxX && o.MaxY <= r.MaxY
}

// Intersect returns the largest rectangle contained by both r and o.
// The result may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
}

// Scale multiplies every coordinate by s.
func (r Rect) Scale(s float32) Rect {
	return Rect{MinX: r.MinX * s, MinY: r.MinY * s, MaxX: r.MaxX * s, MaxY: r.MaxY * s}
}

// String returns a human-readable representation.
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.MinX, r.MinY, r.Width(), r.Height())
}

// Size is a width and height in layout pixels.
type Size struct {
	Width, Height float32
}

// ColorF is a non-premultiplied RGBA color with components in [0, 1].
type ColorF struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black   = ColorF{0, 0, 0, 1}
	White   = ColorF{1, 1, 1, 1}
	Red     = ColorF{1, 0, 0, 1}
	Green   = ColorF{0, 1, 0, 1}
	Blue    = ColorF{0, 0, 1, 1}
	Yellow  = ColorF{1, 1, 0, 1}
	Magenta = ColorF{1, 0, 1, 1}
)

// NRGBA converts the color to 8-bit non-premultiplied components.
func (c ColorF) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}

// Au is a length in app units, 60 per layout pixel.
type Au int32

// AuPerPx is the number of app units in one pixel.
const AuPerPx = 60

// AuFromPx converts pixels to app units, rounding to the nearest unit.
func AuFromPx(px float32) Au {
	return Au(math.Round(float64(px) * AuPerPx))
}

// Px converts app units to pixels.
func (a Au) Px() float32 {
	return float32(a) / AuPerPx
}

// PipelineID identifies an independent scene tree owned by a backend.
type PipelineID struct {
	Namespace uint32
	Index     uint32
}

// String returns a human-readable representation.
func (p PipelineID) String() string {
	return fmt.Sprintf("pipeline(%d,%d)", p.Namespace, p.Index)
}

// Epoch tags successive scene submissions for one pipeline.
type Epoch uint32

// Next returns the following epoch.
func (e Epoch) Next() Epoch { return e + 1 }

// FontKey is the backend handle of a registered font.
type FontKey struct {
	Namespace uint32
	Index     uint32
}

// String returns a human-readable representation.
func (k FontKey) String() string {
	return fmt.Sprintf("font(%d,%d)", k.Namespace, k.Index)
}

// ScrollPolicy controls whether a stacking context scrolls with its parent.
type ScrollPolicy uint8

const (
	// ScrollPolicyScrollable contexts move with scrolling.
	ScrollPolicyScrollable ScrollPolicy = iota
	// ScrollPolicyFixed contexts stay fixed relative to the viewport.
	ScrollPolicyFixed
)

// String returns the string representation of the scroll policy.
func (p ScrollPolicy) String() string {
	switch p {
	case ScrollPolicyScrollable:
		return "Scrollable"
	case ScrollPolicyFixed:
		return "Fixed"
	default:
		return unknownStr
	}
}

// MixBlendMode is the blend mode used to composite a stacking context.
type MixBlendMode uint8

const (
	MixBlendNormal MixBlendMode = iota
	MixBlendMultiply
	MixBlendScreen
	MixBlendOverlay
	MixBlendDarken
	MixBlendLighten
)

// String returns the string representation of the blend mode.
func (m MixBlendMode) String() string {
	switch m {
	case MixBlendNormal:
		return "Normal"
	case MixBlendMultiply:
		return "Multiply"
	case MixBlendScreen:
		return "Screen"
	case MixBlendOverlay:
		return "Overlay"
	case MixBlendDarken:
		return "Darken"
	case MixBlendLighten:
		return "Lighten"
	default:
		return unknownStr
	}
}

// Transform is a 4x4 row-major matrix.
type Transform [16]float32

// IdentityTransform returns the identity matrix.
func IdentityTransform() Transform {
	return Transform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// IsIdentity reports whether t is the identity matrix.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}

// FilterOp is a filter applied to a stacking context.
type FilterOp struct {
	Kind   FilterKind
	Amount float32
}

// FilterKind selects a filter operation.
type FilterKind uint8

const (
	FilterBlur FilterKind = iota
	FilterBrightness
	FilterContrast
	FilterGrayscale
	FilterOpacity
)

// BorderStyle is the line style of one border side.
type BorderStyle uint8

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleHidden
)

// String returns the string representation of the border style.
func (s BorderStyle) String() string {
	switch s {
	case BorderStyleNone:
		return "None"
	case BorderStyleSolid:
		return "Solid"
	case BorderStyleDouble:
		return "Double"
	case BorderStyleDotted:
		return "Dotted"
	case BorderStyleDashed:
		return "Dashed"
	case BorderStyleHidden:
		return "Hidden"
	default:
		return unknownStr
	}
}

// IsVisible reports whether a side with this style paints anything.
func (s BorderStyle) IsVisible() bool {
	return s != BorderStyleNone && s != BorderStyleHidden
}

// BorderSide describes one edge of a border.
type BorderSide struct {
	Width float32
	Color ColorF
	Style BorderStyle
}

// BorderRadius holds per-corner radii.
type BorderRadius struct {
	TopLeft     Size
	TopRight    Size
	BottomLeft  Size
	BottomRight Size
}

// UniformRadius returns a radius of r on every corner.
func UniformRadius(r float32) BorderRadius {
	s := Size{Width: r, Height: r}
	return BorderRadius{TopLeft: s, TopRight: s, BottomLeft: s, BottomRight: s}
}

// IsZero reports whether every corner is square.
func (r BorderRadius) IsZero() bool {
	return r == BorderRadius{}
}

// GlyphInstance is one glyph of a text run: its font glyph index and pen
// position in layout space.
type GlyphInstance struct {
	Index uint32
	X, Y  float32
}
