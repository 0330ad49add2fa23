// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"bytes"
	"fmt"
	"iter"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/bidi"
)

// ShapedFont is a Font whose glyph selection and positioning come from
// go-text/typesetting's HarfBuzz shaper. Vertical metrics, glyph bounds and
// outlines are shared with the embedded SFNTFont, so the two agree on every
// glyph index.
//
// ShapedFont is safe for concurrent use. The parsed go-text Font is
// read-only; a lightweight Face is created per Layout call and
// HarfbuzzShaper instances are pooled since they are not concurrent-safe.
type ShapedFont struct {
	*SFNTFont

	font    *gtfont.Font
	shapers sync.Pool
	lang    language.Language
}

// ParseShapedFont parses font data for HarfBuzz shaping.
func ParseShapedFont(data []byte) (*ShapedFont, error) {
	sf, err := ParseFont(data)
	if err != nil {
		return nil, err
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	return &ShapedFont{
		SFNTFont: sf,
		font:     face.Font,
		shapers: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		lang: language.NewLanguage("en"),
	}, nil
}

// SetLanguage sets the BCP 47 language tag used to select
// language-specific OpenType features. Not safe to call concurrently with
// Layout.
func (f *ShapedFont) SetLanguage(tag string) {
	f.lang = language.NewLanguage(tag)
}

// Layout implements Font.
//
// The whole string is shaped as a single run in its paragraph direction.
// Glyphs are yielded in visual order, left to right.
func (f *ShapedFont) Layout(s string, scale float32, origin Point) iter.Seq[PositionedGlyph] {
	return func(yield func(PositionedGlyph) bool) {
		if s == "" {
			return
		}
		runes := []rune(s)
		input := shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: paragraphDirection(s),
			Face:      gtfont.NewFace(f.font),
			Size:      toFixed(scale),
			Script:    detectScript(runes),
			Language:  f.lang,
		}

		hb := f.shapers.Get().(*shaping.HarfbuzzShaper)
		output := hb.Shape(input)
		glyphs := output.Glyphs
		f.shapers.Put(hb)

		var buf sfnt.Buffer
		pen := origin.X
		for _, sg := range glyphs {
			gid := sfnt.GlyphIndex(uint16(sg.GlyphID)) //nolint:gosec // glyph ids fit in uint16 for sfnt fonts
			// Shaper offsets are Y-up.
			pos := Point{
				X: pen + fromFixed(sg.XOffset),
				Y: origin.Y - fromFixed(sg.YOffset),
			}
			g := f.position(&buf, gid, scale, pos)
			g.HMetrics.AdvanceWidth = fromFixed(sg.Advance)
			if !yield(g) {
				return
			}
			pen += g.HMetrics.AdvanceWidth
		}
	}
}

// paragraphDirection resolves the direction of s with the Unicode bidi
// algorithm. Only paragraphs made entirely of right-to-left runs are shaped
// right to left; mixed and neutral paragraphs are shaped left to right.
func paragraphDirection(s string) di.Direction {
	if s == "" {
		return di.DirectionLTR
	}
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() != bidi.RightToLeft {
			return di.DirectionLTR
		}
	}
	return di.DirectionRTL
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text should be split by the caller before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
