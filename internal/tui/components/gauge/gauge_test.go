package gauge

import (
	"image/color"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/constellation/internal/tui/components/braille"
)

func TestGauge_Value(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		collected int
		total     int
		want      string
		fraction  float64
	}{
		{"first day", 1, 16, "1/16", 1.0 / 16},
		{"complete", 16, 16, "16/16", 1},
		{"over", 20, 16, "16/16", 1},
		{"negative", -1, 16, "0/16", 0},
		{"no total", 3, 0, "--", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := New(tt.collected, tt.total, "DAYS", color.White)
			if got := g.Value(); got != tt.want {
				t.Errorf("Value() = %q, want %q", got, tt.want)
			}
			if got := g.Fraction(); got != tt.fraction {
				t.Errorf("Fraction() = %v, want %v", got, tt.fraction)
			}
		})
	}
}

func TestGauge_Render(t *testing.T) {
	t.Parallel()

	out := New(8, 16, "DAYS", color.White).Render()
	plain := braille.StripAnsi(out)

	if !strings.Contains(plain, "8/16") {
		t.Errorf("rendered gauge is missing its value:\n%s", plain)
	}
	if !strings.Contains(plain, "DAYS") {
		t.Errorf("rendered gauge is missing its label:\n%s", plain)
	}
	// ring rows plus the label row
	if got, want := lipgloss.Height(out), ringDotsHeight/braille.DotsPerRow+1; got != want {
		t.Errorf("Height = %d, want %d", got, want)
	}
}

func TestOverlayArcs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bgStr   string
		fillStr string
		want    string
	}{
		{"full fill", "⣿⣿⣿", "⣿⣿⣿", "⣿⣿⣿"},
		{"no fill", "⣿⣿⣿", "   ", "⣿⣿⣿"},
		{"partial fill", "⣿⣿⣿", "⣿  ", "⣿⣿⣿"},
		{"empty braille fill", "⠁⠀⠁", "⠀⠀⠈", "⠁ ⠉"},
	}

	var (
		bgColor   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
		fillColor = color.RGBA{R: 255, A: 255}
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := braille.StripAnsi(overlayArcs(tt.bgStr, tt.fillStr, bgColor, fillColor))
			if got != tt.want {
				t.Errorf("overlayArcs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsInArcRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		px, py int
		start  float64
		end    float64
		want   bool
	}{
		{"top inside full sweep", 10, 0, arcStartAngle, arcStartAngle + arcSweep, true},
		{"upper right inside quarter", 17, 3, arcStartAngle, arcStartAngle + 90, true},
		{"bottom outside quarter", 10, 20, arcStartAngle, arcStartAngle + 90, false},
		{"left inside three quarters", 0, 10, arcStartAngle, arcStartAngle + 270, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isInArcRange(10, 10, tt.px, tt.py, tt.start, tt.end); got != tt.want {
				t.Errorf("isInArcRange() = %v, want %v", got, tt.want)
			}
		})
	}
}
