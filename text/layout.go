// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"iter"

	"github.com/gogpu/ggview"
)

// Line is one logical line of text with the origin it was shaped at.
type Line struct {
	Text   string
	Origin Point
	Glyphs iter.Seq[PositionedGlyph]
}

// LayoutLines lays out lines top to bottom starting from origin.
//
// The origin advances by the font's line pitch at scale before each line is
// shaped, so line k (0-indexed) has its baseline at origin.Y + (k+1)*pitch.
// The returned glyph sequences are lazy; each must be consumed at most once
// per scene build.
func LayoutLines(f Font, lines []string, scale float32, origin Point) []Line {
	if len(lines) == 0 {
		return nil
	}
	pitch := f.VMetrics(scale).LinePitch()
	if pitch <= 0 {
		ggview.Logger().Warn("text: non-positive line pitch, lines will overlap", "scale", scale, "pitch", pitch)
	}
	out := make([]Line, 0, len(lines))
	for _, s := range lines {
		origin.Y += pitch
		out = append(out, Line{
			Text:   s,
			Origin: origin,
			Glyphs: f.Layout(s, scale, origin),
		})
	}
	return out
}

// Advance returns the total horizontal advance of a laid-out sequence,
// measured from the first glyph's pen position to the last glyph's advance.
func Advance(glyphs iter.Seq[PositionedGlyph]) float32 {
	var first, end float32
	started := false
	for g := range glyphs {
		if !started {
			first = g.Position.X
			started = true
		}
		end = g.Position.X + g.HMetrics.AdvanceWidth
	}
	if !started {
		return 0
	}
	return end - first
}
