// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "fmt"

// Scene is a finished display list for one pipeline.
//
// Once submitted to a backend the scene belongs to it; callers must not
// retain or mutate it afterwards.
type Scene struct {
	Pipeline PipelineID
	Items    []Item
	Clips    []ClipRegion
}

// Root returns the first stacking context of the scene.
func (s *Scene) Root() (StackingContext, bool) {
	if len(s.Items) == 0 {
		return StackingContext{}, false
	}
	sc, ok := s.Items[0].(StackingContext)
	return sc, ok
}

// Clip returns the clip region registered under id.
func (s *Scene) Clip(id ClipID) (ClipRegion, bool) {
	if int(id) >= len(s.Clips) {
		return ClipRegion{}, false
	}
	return s.Clips[id], true
}

// Validate checks the structure of the scene: it starts with a
// stacking context, at most one context is open at a time, every push is
// matched by a pop, primitives only appear inside a context, and every
// referenced clip is registered.
func (s *Scene) Validate() error {
	if _, ok := s.Root(); !ok {
		return ErrNoStackingContext
	}
	depth := 0
	for i, it := range s.Items {
		switch it := it.(type) {
		case StackingContext:
			if depth > 0 {
				return fmt.Errorf("%w: push at item %d", ErrNestedContext, i)
			}
			if _, ok := s.Clip(it.Clip); !ok {
				return fmt.Errorf("%w: clip %d at item %d", ErrUnknownClip, it.Clip, i)
			}
			depth++
		case PopStackingContext:
			if depth == 0 {
				return fmt.Errorf("%w: pop at item %d without push", ErrUnbalanced, i)
			}
			depth--
		case Primitive:
			if depth == 0 {
				return fmt.Errorf("%w: %s at item %d", ErrNoStackingContext, it.Kind(), i)
			}
			if _, ok := s.Clip(it.ItemClip()); !ok {
				return fmt.Errorf("%w: clip %d at item %d", ErrUnknownClip, it.ItemClip(), i)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d context(s) left open", ErrUnbalanced, depth)
	}
	return nil
}

// Covers reports whether the root stacking context spans the whole
// viewport (0, 0, size.Width, size.Height).
func (s *Scene) Covers(size Size) bool {
	root, ok := s.Root()
	if !ok {
		return false
	}
	return root.Bounds.ContainsRect(NewRect(0, 0, size.Width, size.Height))
}

// Stats counts the items of a scene by kind.
type Stats struct {
	StackingContexts int
	Rects            int
	Borders          int
	TextRuns         int
	Glyphs           int
}

// Stats returns item counts for the scene.
func (s *Scene) Stats() Stats {
	var st Stats
	for _, it := range s.Items {
		switch it := it.(type) {
		case StackingContext:
			st.StackingContexts++
		case RectItem:
			st.Rects++
		case BorderItem:
			st.Borders++
		case TextItem:
			st.TextRuns++
			st.Glyphs += len(it.Glyphs)
		}
	}
	return st
}
