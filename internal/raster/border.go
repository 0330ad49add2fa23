// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"image"

	"github.com/gogpu/ggview/scene"
)

// DashRatio is the length of a dash relative to the border width.
const DashRatio = 3

type edge uint8

const (
	edgeTop edge = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// drawBorder paints the four sides of b. Corner radii are ignored; the
// sides are drawn as square strips overlapping at the corners.
func drawBorder(dst *image.RGBA, clip image.Rectangle, b scene.BorderItem, dpr float32) {
	bounds := b.Bounds.Scale(dpr)
	sides := [...]struct {
		e    edge
		side scene.BorderSide
	}{
		{edgeTop, b.Top},
		{edgeRight, b.Right},
		{edgeBottom, b.Bottom},
		{edgeLeft, b.Left},
	}
	for _, s := range sides {
		drawSide(dst, clip, bounds, s.e, s.side, dpr)
	}
}

func drawSide(dst *image.RGBA, clip image.Rectangle, bounds scene.Rect, e edge, side scene.BorderSide, dpr float32) {
	w := side.Width * dpr
	if w <= 0 || !side.Style.IsVisible() || side.Color.A <= 0 {
		return
	}
	strip := sideStrip(bounds, e, w)
	horizontal := e == edgeTop || e == edgeBottom

	switch side.Style {
	case scene.BorderStyleDashed:
		dashStrip(dst, clip, strip, horizontal, DashRatio*w, side.Color)
	case scene.BorderStyleDotted:
		dashStrip(dst, clip, strip, horizontal, w, side.Color)
	case scene.BorderStyleDouble:
		if w < 3 {
			fillRect(dst, clip, strip, side.Color)
			return
		}
		third := w / 3
		fillRect(dst, clip, sideStrip(strip, e, third), side.Color)
		fillRect(dst, clip, sideStrip(strip, opposite(e), third), side.Color)
	default:
		fillRect(dst, clip, strip, side.Color)
	}
}

// sideStrip returns the strip of width w along edge e of r.
func sideStrip(r scene.Rect, e edge, w float32) scene.Rect {
	switch e {
	case edgeTop:
		r.MaxY = min(r.MaxY, r.MinY+w)
	case edgeBottom:
		r.MinY = max(r.MinY, r.MaxY-w)
	case edgeLeft:
		r.MaxX = min(r.MaxX, r.MinX+w)
	case edgeRight:
		r.MinX = max(r.MinX, r.MaxX-w)
	}
	return r
}

func opposite(e edge) edge {
	return (e + 2) % 4
}

// dashStrip fills alternating segments of length dash along the strip,
// starting with a filled one.
func dashStrip(dst *image.RGBA, clip image.Rectangle, strip scene.Rect, horizontal bool, dash float32, c scene.ColorF) {
	if dash <= 0 {
		return
	}
	if horizontal {
		for x := strip.MinX; x < strip.MaxX; x += 2 * dash {
			seg := strip
			seg.MinX = x
			seg.MaxX = min(x+dash, strip.MaxX)
			fillRect(dst, clip, seg, c)
		}
		return
	}
	for y := strip.MinY; y < strip.MaxY; y += 2 * dash {
		seg := strip
		seg.MinY = y
		seg.MaxY = min(y+dash, strip.MaxY)
		fillRect(dst, clip, seg, c)
	}
}
