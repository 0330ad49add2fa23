// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gputypes"
)

// RenderTarget defines where rendered frames go.
//
// Targets expose CPU-accessible pixel memory. The Renderer writes into
// Pixels and then, when the target also implements Presenter, asks it to
// present the result (upload to a texture, blit to a window).
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target. RGBA8Unorm and
	// BGRA8Unorm are supported.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data, 4 bytes per pixel.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// Resizer is implemented by targets that can change size. Render resizes
// such targets to the requested device size before drawing.
type Resizer interface {
	Resize(width, height int)
}

// Presenter is implemented by targets that must be flushed to a display
// after their pixels were written.
type Presenter interface {
	Present() error
}

// PixmapTarget is a CPU-backed render target using *image.RGBA.
//
// It is the default target of a Renderer and is what tests read back.
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a render target.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	draw.Draw(t.img, t.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Resize replaces the backing image with one of the given dimensions.
// The contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

var (
	_ RenderTarget = (*PixmapTarget)(nil)
	_ Resizer      = (*PixmapTarget)(nil)
)

// targetImage views the pixel memory of t as an *image.RGBA.
func targetImage(t RenderTarget) (*image.RGBA, bool) {
	pix := t.Pixels()
	w, h := t.Width(), t.Height()
	if pix == nil || w <= 0 || h <= 0 || len(pix) < t.Stride()*(h-1)+w*4 {
		return nil, false
	}
	return &image.RGBA{Pix: pix, Stride: t.Stride(), Rect: image.Rect(0, 0, w, h)}, true
}

// swapRB converts RGBA pixels to BGRA in place (and back).
func swapRB(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y) : img.PixOffset(b.Max.X-1, y)+4]
		for i := 0; i+3 < len(row); i += 4 {
			row[i], row[i+2] = row[i+2], row[i]
		}
	}
}
