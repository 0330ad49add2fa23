// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

// ClipID references a clip region registered with a scene.
type ClipID uint32

// ComplexClipRegion is a rounded rectangle intersected with its parent clip.
type ComplexClipRegion struct {
	Rect  Rect
	Radii BorderRadius
}

// ClipRegion bounds the visible drawing of a primitive: the main rectangle
// intersected with every complex region.
type ClipRegion struct {
	Main    Rect
	Complex []ComplexClipRegion
}

// Bounds returns the axis-aligned bounds of the clip: the main rectangle
// intersected with the bounds of each complex region. Corner radii are not
// taken into account.
func (c ClipRegion) Bounds() Rect {
	r := c.Main
	for _, cc := range c.Complex {
		r = r.Intersect(cc.Rect)
	}
	return r
}

// IsSimple reports whether the clip has no complex regions with rounded
// corners.
func (c ClipRegion) IsSimple() bool {
	for _, cc := range c.Complex {
		if !cc.Radii.IsZero() {
			return false
		}
	}
	return true
}
