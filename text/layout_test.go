// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"bytes"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/ggview"
)

// stubFont is a synthetic Font with fixed metrics. Each rune becomes one
// glyph with a 5px advance; Layout records every origin it is called with.
type stubFont struct {
	vm      VMetrics
	origins []Point
	calls   int
}

func (f *stubFont) VMetrics(float32) VMetrics { return f.vm }

func (f *stubFont) Layout(s string, _ float32, origin Point) iter.Seq[PositionedGlyph] {
	f.origins = append(f.origins, origin)
	f.calls++
	return func(yield func(PositionedGlyph) bool) {
		x := origin.X
		for _, r := range s {
			g := PositionedGlyph{
				ID:       GlyphID(r),
				Position: Point{X: x, Y: origin.Y},
				HMetrics: HMetrics{AdvanceWidth: 5},
			}
			if !yield(g) {
				return
			}
			x += 5
		}
	}
}

func TestLayoutLinesAdvancesBeforeShaping(t *testing.T) {
	f := &stubFont{vm: VMetrics{Ascent: 10, Descent: -2, LineGap: 1}}

	lines := LayoutLines(f, []string{"ab", "cd", "ef"}, 16, Point{X: 0, Y: 0})
	if len(lines) != 3 {
		t.Fatalf("LayoutLines() returned %d lines, want 3", len(lines))
	}

	wantY := []float32{13, 26, 39}
	for i, line := range lines {
		if line.Origin.Y != wantY[i] {
			t.Errorf("line %d origin y = %v, want %v", i, line.Origin.Y, wantY[i])
		}
		if f.origins[i].Y != wantY[i] {
			t.Errorf("line %d shaped at y = %v, want %v", i, f.origins[i].Y, wantY[i])
		}
		for g := range line.Glyphs {
			if g.Position.Y != wantY[i] {
				t.Errorf("line %d glyph baseline = %v, want %v", i, g.Position.Y, wantY[i])
			}
		}
	}
}

func TestLayoutLinesKeepsX(t *testing.T) {
	f := &stubFont{vm: VMetrics{Ascent: 10, Descent: -2, LineGap: 1}}

	lines := LayoutLines(f, []string{"x", "y"}, 16, Point{X: 10, Y: 200})
	for i, line := range lines {
		if line.Origin.X != 10 {
			t.Errorf("line %d origin x = %v, want 10", i, line.Origin.X)
		}
	}
	if lines[0].Origin.Y != 213 {
		t.Errorf("first line y = %v, want 213", lines[0].Origin.Y)
	}
}

func TestLayoutLinesEmpty(t *testing.T) {
	f := &stubFont{vm: VMetrics{Ascent: 10}}
	if got := LayoutLines(f, nil, 16, Point{}); got != nil {
		t.Errorf("LayoutLines(nil) = %v, want nil", got)
	}
	if f.calls != 0 {
		t.Errorf("Layout called %d times, want 0", f.calls)
	}
}

func TestAdvance(t *testing.T) {
	f := &stubFont{}
	if got := Advance(f.Layout("abcd", 16, Point{X: 7})); got != 20 {
		t.Errorf("Advance() = %v, want 20", got)
	}
	if got := Advance(f.Layout("", 16, Point{})); got != 0 {
		t.Errorf("Advance(empty) = %v, want 0", got)
	}
}

func TestLayoutLinesRealFont(t *testing.T) {
	f := loadTestFont(t)
	const scale = 24
	pitch := f.VMetrics(scale).LinePitch()

	lines := LayoutLines(f, []string{"one", "two"}, scale, Point{X: 5, Y: 0})
	second := slices.Collect(lines[1].Glyphs)
	if len(second) != 3 {
		t.Fatalf("second line has %d glyphs, want 3", len(second))
	}
	if second[0].Position.Y != 2*pitch {
		t.Errorf("second baseline = %v, want %v", second[0].Position.Y, 2*pitch)
	}
}

func TestLayoutLinesWarnsOnZeroPitch(t *testing.T) {
	var buf bytes.Buffer
	ggview.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { ggview.SetLogger(nil) })

	f := &stubFont{}
	lines := LayoutLines(f, []string{"a", "b"}, 16, Point{})
	if len(lines) != 2 {
		t.Fatalf("LayoutLines() returned %d lines, want 2", len(lines))
	}
	if lines[0].Origin.Y != lines[1].Origin.Y {
		t.Errorf("baselines = %v, %v, want equal with zero metrics", lines[0].Origin.Y, lines[1].Origin.Y)
	}
	if !strings.Contains(buf.String(), "non-positive line pitch") {
		t.Errorf("log = %q, want a line pitch warning", buf.String())
	}

	buf.Reset()
	LayoutLines(&stubFont{vm: VMetrics{Ascent: 10, Descent: -3}}, []string{"a"}, 16, Point{})
	if buf.Len() != 0 {
		t.Errorf("log = %q, want no warning for positive pitch", buf.String())
	}
}
