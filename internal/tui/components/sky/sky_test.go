package sky

import (
	"strings"
	"testing"

	"github.com/garrettladley/constellation/internal/render"
	"github.com/garrettladley/constellation/internal/star"
	"github.com/garrettladley/constellation/internal/tui/components/braille"
	"github.com/garrettladley/constellation/internal/tui/theme"
)

func TestSurface_RenderShape(t *testing.T) {
	t.Parallel()

	s := New(50, 15, theme.ColorBgDark)
	render.Frame(s, render.Input{
		Stars: []star.Star{{X: 250, Y: 150, Size: 6, Brightness: 1}},
	})

	lines := strings.Split(braille.StripAnsi(s.Render()), "\n")
	if len(lines) != 15 {
		t.Fatalf("rendered %d lines, want 15", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 50 {
			t.Errorf("line %d has %d runes, want 50", i, n)
		}
	}

	// logical centre maps to cell (25, 7)
	if r := []rune(lines[7])[25]; !braille.HasDots(r) {
		t.Errorf("centre cell %q has no dots", r)
	}
}

func TestSurface_Clear(t *testing.T) {
	t.Parallel()

	s := New(20, 10, theme.ColorBgDark)
	s.Disc(100, 100, 10, render.White)
	if s.Lit() == 0 {
		t.Fatal("Disc() lit no cells")
	}

	s.Clear()
	if got := s.Lit(); got != 0 {
		t.Errorf("Lit() after Clear = %d, want 0", got)
	}
}

func TestSurface_OutOfBounds(t *testing.T) {
	t.Parallel()

	s := New(10, 5, theme.ColorBgDark)
	s.Disc(-100, -100, 4, render.White)
	s.DashedLine(-50, -50, -10, -10, render.White, 1, []float64{2, 4})
	if got := s.Lit(); got != 0 {
		t.Errorf("Lit() = %d, want 0 for off-surface drawing", got)
	}
}

func TestSurface_DashedLineIsBroken(t *testing.T) {
	t.Parallel()

	solid := New(60, 4, theme.ColorBgDark)
	solid.DashedLine(0, 150, 500, 150, render.White, 1, nil)

	dashed := New(60, 4, theme.ColorBgDark)
	dashed.DashedLine(0, 150, 500, 150, render.White, 1, render.ConnectionDash)

	if dashed.Lit() >= solid.Lit() {
		t.Errorf("dashed line lit %d cells, solid lit %d", dashed.Lit(), solid.Lit())
	}
	if dashed.Lit() == 0 {
		t.Error("dashed line lit nothing")
	}
}

func TestDashOn(t *testing.T) {
	t.Parallel()

	dash := []float64{2, 4}
	tests := []struct {
		pos  float64
		want bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{5, false},
	}

	for _, tt := range tests {
		if got := dashOn(tt.pos, dash); got != tt.want {
			t.Errorf("dashOn(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestSurface_BlendFadesTowardBackground(t *testing.T) {
	t.Parallel()

	s := New(1, 1, theme.ColorBlack)
	if got := s.blend(render.White.WithAlpha(1)); got != "#FFFFFF" {
		t.Errorf("blend(opaque white) = %s", got)
	}
	if got := s.blend(render.White.WithAlpha(0)); got != "#000000" {
		t.Errorf("blend(transparent white) = %s", got)
	}
	if got := s.blend(render.White.WithAlpha(0.5)); got != "#808080" {
		t.Errorf("blend(half white) = %s", got)
	}
}
