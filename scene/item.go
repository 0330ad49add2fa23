// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

// ItemKind identifies the kind of a display list item.
type ItemKind uint8

const (
	ItemPushStackingContext ItemKind = iota
	ItemPopStackingContext
	ItemRect
	ItemBorder
	ItemText
)

// String returns the string representation of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemPushStackingContext:
		return "PushStackingContext"
	case ItemPopStackingContext:
		return "PopStackingContext"
	case ItemRect:
		return "Rect"
	case ItemBorder:
		return "Border"
	case ItemText:
		return "Text"
	default:
		return unknownStr
	}
}

// Item is one entry of a display list.
type Item interface {
	Kind() ItemKind
}

// Primitive is a drawable item. Every primitive is drawn within a clip.
type Primitive interface {
	Item
	ItemBounds() Rect
	ItemClip() ClipID
}

// StackingContext groups primitives that share scroll policy, clip,
// transform and blend mode.
type StackingContext struct {
	ScrollPolicy ScrollPolicy
	Bounds       Rect
	Clip         ClipID
	ZIndex       int32
	Transform    Transform
	Perspective  Transform
	BlendMode    MixBlendMode
	Filters      []FilterOp
}

// DefaultStackingContext returns a scrollable context over bounds with
// identity transform and perspective, normal blending and no filters.
func DefaultStackingContext(bounds Rect, clip ClipID) StackingContext {
	return StackingContext{
		ScrollPolicy: ScrollPolicyScrollable,
		Bounds:       bounds,
		Clip:         clip,
		Transform:    IdentityTransform(),
		Perspective:  IdentityTransform(),
		BlendMode:    MixBlendNormal,
	}
}

// Kind implements Item.
func (StackingContext) Kind() ItemKind { return ItemPushStackingContext }

// PopStackingContext closes the innermost open stacking context.
type PopStackingContext struct{}

// Kind implements Item.
func (PopStackingContext) Kind() ItemKind { return ItemPopStackingContext }

// RectItem is a solid-color filled rectangle.
type RectItem struct {
	Bounds Rect
	Clip   ClipID
	Color  ColorF
}

func (RectItem) Kind() ItemKind     { return ItemRect }
func (r RectItem) ItemBounds() Rect { return r.Bounds }
func (r RectItem) ItemClip() ClipID { return r.Clip }

// BorderItem strokes the inside edges of Bounds, one side at a time.
type BorderItem struct {
	Bounds Rect
	Clip   ClipID
	Left   BorderSide
	Top    BorderSide
	Right  BorderSide
	Bottom BorderSide
	Radius BorderRadius
}

func (BorderItem) Kind() ItemKind     { return ItemBorder }
func (b BorderItem) ItemBounds() Rect { return b.Bounds }
func (b BorderItem) ItemClip() ClipID { return b.Clip }

// TextItem is a run of glyphs sharing one font, size and color.
type TextItem struct {
	Bounds     Rect
	Clip       ClipID
	Glyphs     []GlyphInstance
	Font       FontKey
	Color      ColorF
	Size       Au
	BlurRadius Au
}

func (TextItem) Kind() ItemKind     { return ItemText }
func (t TextItem) ItemBounds() Rect { return t.Bounds }
func (t TextItem) ItemClip() ClipID { return t.Clip }
