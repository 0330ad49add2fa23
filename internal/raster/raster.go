// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster draws finished display lists into RGBA images on the CPU.
//
// Rectangles and border strips are pixel-snapped fills. Glyph runs are
// rasterized from their outlines with golang.org/x/image/vector, which
// gives them anti-aliased edges. Every primitive is clipped to the bounds of
// its clip region.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggview/scene"
	"github.com/gogpu/ggview/text"
)

// ErrUnknownFont is returned when a text run references a font key that the
// font source cannot resolve.
var ErrUnknownFont = errors.New("raster: unknown font key")

// GlyphSource supplies scaled glyph outlines.
type GlyphSource interface {
	GlyphOutline(id text.GlyphID, ppem float32) (sfnt.Segments, error)
}

// FontSource resolves the font keys referenced by text items.
type FontSource interface {
	LookupFont(key scene.FontKey) (GlyphSource, bool)
}

// OutlineCacheSize is the soft limit of the glyph outline cache.
const OutlineCacheSize = 4096

type outlineKey struct {
	font scene.FontKey
	id   text.GlyphID
	ppem float32
}

type outline struct {
	segs sfnt.Segments
	err  error
}

// Rasterizer draws scenes. It keeps its coverage buffer between draws, so a
// Rasterizer must not be used from several goroutines at once.
type Rasterizer struct {
	fonts    FontSource
	outlines *text.Cache[outlineKey, outline]
	z        vector.Rasterizer
}

// New creates a rasterizer that resolves fonts through fonts.
func New(fonts FontSource) *Rasterizer {
	return &Rasterizer{
		fonts:    fonts,
		outlines: text.NewCache[outlineKey, outline](OutlineCacheSize),
	}
}

// CachedOutlines returns the number of glyph outlines currently cached.
func (r *Rasterizer) CachedOutlines() int {
	return r.outlines.Len()
}

func (r *Rasterizer) outline(key scene.FontKey, src GlyphSource, id text.GlyphID, ppem float32) (sfnt.Segments, error) {
	o := r.outlines.GetOrCreate(outlineKey{font: key, id: id, ppem: ppem}, func() outline {
		segs, err := src.GlyphOutline(id, ppem)
		return outline{segs: segs, err: err}
	})
	return o.segs, o.err
}

// Draw paints the items of s into dst in display-list order. Scene
// coordinates are multiplied by dpr to obtain device pixels.
//
// Drawing continues past text runs that fail; the first such error is
// returned once the whole scene has been drawn.
func (r *Rasterizer) Draw(dst *image.RGBA, s *scene.Scene, dpr float32) error {
	if dpr <= 0 {
		dpr = 1
	}
	var firstErr error
	for _, it := range s.Items {
		p, ok := it.(scene.Primitive)
		if !ok {
			continue
		}
		clip := r.deviceClip(dst, s, p, dpr)
		if clip.Empty() {
			continue
		}
		var err error
		switch p := p.(type) {
		case scene.RectItem:
			fillRect(dst, clip, p.Bounds.Scale(dpr), p.Color)
		case scene.BorderItem:
			drawBorder(dst, clip, p, dpr)
		case scene.TextItem:
			err = r.drawText(dst, clip, p, dpr)
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// deviceClip returns the device-space pixel rectangle that primitive p may
// touch: its clip bounds intersected with the destination.
func (r *Rasterizer) deviceClip(dst *image.RGBA, s *scene.Scene, p scene.Primitive, dpr float32) image.Rectangle {
	cr, ok := s.Clip(p.ItemClip())
	if !ok {
		return image.Rectangle{}
	}
	return snap(cr.Bounds().Scale(dpr)).Intersect(dst.Bounds())
}

func (r *Rasterizer) drawText(dst *image.RGBA, clip image.Rectangle, t scene.TextItem, dpr float32) error {
	if len(t.Glyphs) == 0 || t.Color.A <= 0 {
		return nil
	}
	if r.fonts == nil {
		return fmt.Errorf("%w: %v", ErrUnknownFont, t.Font)
	}
	src, ok := r.fonts.LookupFont(t.Font)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownFont, t.Font)
	}
	ppem := t.Size.Px() * dpr
	if ppem <= 0 {
		return nil
	}

	w, h := clip.Dx(), clip.Dy()
	r.z.Reset(w, h)
	r.z.DrawOp = draw.Over
	ox := -float32(clip.Min.X)
	oy := -float32(clip.Min.Y)

	var firstErr error
	for _, g := range t.Glyphs {
		segs, err := r.outline(t.Font, src, text.GlyphID(g.Index), ppem)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		addSegments(&r.z, segs, g.X*dpr+ox, g.Y*dpr+oy)
	}
	r.z.Draw(dst, clip, image.NewUniform(t.Color.NRGBA()), image.Point{})
	return firstErr
}

// addSegments appends an outline to z translated by (dx, dy).
func addSegments(z *vector.Rasterizer, segs sfnt.Segments, dx, dy float32) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + dx, float32(p.Y)/64 + dy
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			ex, ey := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if open {
		z.ClosePath()
	}
}

// fillRect fills the device rectangle rect, clipped to clip, with c.
func fillRect(dst *image.RGBA, clip image.Rectangle, rect scene.Rect, c scene.ColorF) {
	if c.A <= 0 {
		return
	}
	px := snap(rect).Intersect(clip)
	if px.Empty() {
		return
	}
	op := draw.Over
	if c.A >= 1 {
		op = draw.Src
	}
	draw.Draw(dst, px, image.NewUniform(c.NRGBA()), image.Point{}, op)
}

// snap rounds a device rectangle to whole pixels. Edges round to nearest so
// abutting rectangles neither overlap nor leave gaps.
func snap(r scene.Rect) image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(round(r.MinX), round(r.MinY), round(r.MaxX), round(r.MaxY))
}

func round(v float32) int {
	f := math.Round(float64(v))
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
