// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package text turns strings into positioned glyphs.
//
// The Font interface is the narrow capability the scene builder depends on:
// vertical metrics at a scale, and a lazy layout producing one
// PositionedGlyph per shaped glyph. Two implementations are provided:
//
//   - SFNTFont: golang.org/x/image/font/sfnt, simple left-to-right layout
//     with pair kerning
//   - ShapedFont: HarfBuzz-level shaping through go-text/typesetting
//     (ligatures, GPOS kerning, marks, right-to-left paragraphs)
//
// CachedFont memoizes layout results for callers that re-shape the same
// strings every frame.
//
// # Layout Space
//
// Positions are pen positions on the baseline, Y grows downward. Descent is
// reported as a negative number, so the distance between two baselines is
//
//	pitch := vm.Ascent - vm.Descent + vm.LineGap
//
// LayoutLines advances the origin by one pitch before shaping each line.
package text
