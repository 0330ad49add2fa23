// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"fmt"
	"iter"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggview"
)

// SFNTFont is a Font backed by golang.org/x/image/font/sfnt.
//
// Layout is simple left-to-right positioning: one glyph per rune from the
// cmap table, advanced by its horizontal advance plus the kern-table
// adjustment between consecutive glyphs. No ligatures or contextual forms;
// use ShapedFont for those.
//
// SFNTFont is safe for concurrent use. Every call allocates its own
// sfnt.Buffer.
type SFNTFont struct {
	font *opentype.Font
	data []byte
}

// ParseFont parses TrueType or OpenType font data.
// The data slice is retained and must not be modified afterwards.
func ParseFont(data []byte) (*SFNTFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	if f.NumGlyphs() == 0 {
		return nil, ErrNoGlyphs
	}
	return &SFNTFont{font: f, data: data}, nil
}

// Data returns the raw font bytes the font was parsed from.
func (f *SFNTFont) Data() []byte {
	return f.data
}

// Name returns the font family name, or "" if the name table lacks one.
func (f *SFNTFont) Name() string {
	name, err := f.font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *SFNTFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// GlyphIndex maps a rune to its glyph index, 0 (.notdef) when missing.
func (f *SFNTFont) GlyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	gid, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(gid)
}

// VMetrics implements Font.
func (f *SFNTFont) VMetrics(scale float32) VMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, toFixed(scale), font.HintingNone)
	if err != nil {
		ggview.Logger().Warn("text: vertical metrics", "font", f.Name(), "scale", scale, "err", err)
		return VMetrics{}
	}
	ascent := fromFixed(m.Ascent)
	descent := fromFixed(m.Descent)
	gap := fromFixed(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return VMetrics{
		Ascent:  ascent,
		Descent: -descent,
		LineGap: gap,
	}
}

// GlyphHMetrics returns the horizontal metrics of a glyph at scale.
func (f *SFNTFont) GlyphHMetrics(id GlyphID, scale float32) HMetrics {
	var buf sfnt.Buffer
	hm, _, _ := f.glyphMetrics(&buf, sfnt.GlyphIndex(id), scale)
	return hm
}

// GlyphOutline returns the outline of a glyph scaled to ppem pixels per em.
// Coordinates are relative to the pen position with Y pointing down.
func (f *SFNTFont) GlyphOutline(id GlyphID, ppem float32) (sfnt.Segments, error) {
	var buf sfnt.Buffer
	segs, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(id), toFixed(ppem), nil)
	if err != nil {
		return nil, fmt.Errorf("text: load glyph %d: %w", id, err)
	}
	return segs, nil
}

// Layout implements Font.
func (f *SFNTFont) Layout(s string, scale float32, origin Point) iter.Seq[PositionedGlyph] {
	return func(yield func(PositionedGlyph) bool) {
		var buf sfnt.Buffer
		ppem := toFixed(scale)
		caret := origin.X

		var prev sfnt.GlyphIndex
		hasPrev := false
		for _, r := range s {
			gid, err := f.font.GlyphIndex(&buf, r)
			if err != nil {
				gid = 0
			}
			if hasPrev {
				// ErrNotFound when the pair has no kerning entry.
				if k, err := f.font.Kern(&buf, prev, gid, ppem, font.HintingNone); err == nil {
					caret += fromFixed(k)
				}
			}
			g := f.position(&buf, gid, scale, Point{X: caret, Y: origin.Y})
			if !yield(g) {
				return
			}
			caret += g.HMetrics.AdvanceWidth
			prev, hasPrev = gid, true
		}
	}
}

// position builds a PositionedGlyph for gid with its pen at pos.
func (f *SFNTFont) position(buf *sfnt.Buffer, gid sfnt.GlyphIndex, scale float32, pos Point) PositionedGlyph {
	hm, bounds, err := f.glyphMetrics(buf, gid, scale)
	g := PositionedGlyph{
		ID:       GlyphID(gid),
		Position: pos,
		HMetrics: hm,
	}
	if err == nil {
		g.PixelBox, g.HasPixelBox = pixelBox(bounds, pos)
	}
	return g
}

// glyphMetrics returns scaled horizontal metrics and the outline bounds of
// gid. The left side bearing is the outline's minimum X.
func (f *SFNTFont) glyphMetrics(buf *sfnt.Buffer, gid sfnt.GlyphIndex, scale float32) (HMetrics, fixed.Rectangle26_6, error) {
	bounds, advance, err := f.font.GlyphBounds(buf, gid, toFixed(scale), font.HintingNone)
	if err != nil {
		return HMetrics{}, fixed.Rectangle26_6{}, err
	}
	return HMetrics{
		AdvanceWidth:    fromFixed(advance),
		LeftSideBearing: fromFixed(bounds.Min.X),
	}, bounds, nil
}
