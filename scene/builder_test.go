// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"testing"
)

func TestNewDisplayListBuilder(t *testing.T) {
	b := NewDisplayListBuilder(PipelineID{Index: 3})
	if b == nil {
		t.Fatal("NewDisplayListBuilder() returned nil")
	}
	if b.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", b.Depth())
	}
	if b.Err() != nil {
		t.Errorf("Err() = %v, want nil", b.Err())
	}
}

func TestBuilderBalanced(t *testing.T) {
	b := NewDisplayListBuilder(PipelineID{Index: 1})
	bounds := NewRect(0, 0, 100, 50)
	clip := b.NewClipRegion(bounds)

	b.PushStackingContext(DefaultStackingContext(bounds, clip))
	if b.Depth() != 1 {
		t.Errorf("Depth() after push = %d, want 1", b.Depth())
	}
	b.PushRect(bounds, clip, Red)
	b.PushUniformBorder(bounds, clip, BorderSide{Width: 2, Color: Blue, Style: BorderStyleSolid}, UniformRadius(0))
	b.PushText(bounds, clip, []GlyphInstance{{Index: 7, X: 1, Y: 2}}, FontKey{}, Black, AuFromPx(12), 0)
	b.PopStackingContext()

	s, err := b.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if s.Pipeline != (PipelineID{Index: 1}) {
		t.Errorf("Pipeline = %v, want pipeline(0,1)", s.Pipeline)
	}

	wantKinds := []ItemKind{ItemPushStackingContext, ItemRect, ItemBorder, ItemText, ItemPopStackingContext}
	if len(s.Items) != len(wantKinds) {
		t.Fatalf("len(Items) = %d, want %d", len(s.Items), len(wantKinds))
	}
	for i, k := range wantKinds {
		if s.Items[i].Kind() != k {
			t.Errorf("Items[%d].Kind() = %v, want %v", i, s.Items[i].Kind(), k)
		}
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestBuilderErrors(t *testing.T) {
	bounds := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		build func(b *DisplayListBuilder)
		want  error
	}{
		{
			name: "unclosed context",
			build: func(b *DisplayListBuilder) {
				clip := b.NewClipRegion(bounds)
				b.PushStackingContext(DefaultStackingContext(bounds, clip))
			},
			want: ErrUnbalanced,
		},
		{
			name: "pop without push",
			build: func(b *DisplayListBuilder) {
				b.PopStackingContext()
			},
			want: ErrUnbalanced,
		},
		{
			name: "nested context",
			build: func(b *DisplayListBuilder) {
				clip := b.NewClipRegion(bounds)
				b.PushStackingContext(DefaultStackingContext(bounds, clip))
				b.PushStackingContext(DefaultStackingContext(bounds, clip))
				b.PopStackingContext()
				b.PopStackingContext()
			},
			want: ErrNestedContext,
		},
		{
			name: "primitive outside context",
			build: func(b *DisplayListBuilder) {
				clip := b.NewClipRegion(bounds)
				b.PushRect(bounds, clip, Red)
			},
			want: ErrNoStackingContext,
		},
		{
			name: "unregistered clip",
			build: func(b *DisplayListBuilder) {
				clip := b.NewClipRegion(bounds)
				b.PushStackingContext(DefaultStackingContext(bounds, clip))
				b.PushRect(bounds, clip+1, Red)
				b.PopStackingContext()
			},
			want: ErrUnknownClip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewDisplayListBuilder(PipelineID{})
			tt.build(b)
			s, err := b.Finalize()
			if !errors.Is(err, tt.want) {
				t.Errorf("Finalize() error = %v, want %v", err, tt.want)
			}
			if s != nil {
				t.Error("Finalize() should not return a scene on error")
			}
		})
	}
}

func TestBuilderFinalizeTwice(t *testing.T) {
	b := NewDisplayListBuilder(PipelineID{})
	bounds := NewRect(0, 0, 1, 1)
	clip := b.NewClipRegion(bounds)
	b.PushStackingContext(DefaultStackingContext(bounds, clip))
	b.PopStackingContext()

	if _, err := b.Finalize(); err != nil {
		t.Fatalf("first Finalize() error = %v", err)
	}
	if _, err := b.Finalize(); !errors.Is(err, ErrFinalized) {
		t.Errorf("second Finalize() error = %v, want %v", err, ErrFinalized)
	}
}

func TestBuilderClipIDs(t *testing.T) {
	b := NewDisplayListBuilder(PipelineID{})
	first := b.NewClipRegion(NewRect(0, 0, 10, 10))
	second := b.NewClipRegion(NewRect(0, 0, 5, 5), ComplexClipRegion{Rect: NewRect(1, 1, 2, 2), Radii: UniformRadius(1)})
	if first != 0 || second != 1 {
		t.Errorf("clip ids = %d, %d, want 0, 1", first, second)
	}
}
