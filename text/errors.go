// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoGlyphs is returned when a font contains no glyphs at all.
	ErrNoGlyphs = errors.New("text: font has no glyphs")
)
