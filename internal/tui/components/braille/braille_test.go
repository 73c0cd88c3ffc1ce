package braille

import (
	"strings"
	"testing"

	drawille "github.com/exrook/drawille-go"
	"github.com/google/go-cmp/cmp"
)

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		start    int
		end      int
		expected string
	}{
		{
			name:     "leading segment keeps escapes",
			input:    "\x1b[31mA\x1b[0m\x1b[31mB\x1b[0m\x1b[31mC\x1b[0m",
			start:    0,
			end:      2,
			expected: "\x1b[31mA\x1b[0m\x1b[31mB",
		},
		{
			name:     "single char",
			input:    "\x1b[31mA\x1b[0m\x1b[31mB\x1b[0m\x1b[31mC\x1b[0m",
			start:    1,
			end:      2,
			expected: "\x1b[0m\x1b[31mB",
		},
		{
			name:     "plain text",
			input:    "ABC",
			start:    0,
			end:      2,
			expected: "AB",
		},
		{
			name:     "empty range",
			input:    "\x1b[31mABC\x1b[0m",
			start:    1,
			end:      1,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Segment(tt.input, tt.start, tt.end); got != tt.expected {
				t.Errorf("Segment() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStripAnsi(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single code", "\x1b[31mHello\x1b[0m", "Hello"},
		{"per char codes", "\x1b[31mH\x1b[0m\x1b[32me\x1b[0m\x1b[33ml\x1b[0m", "Hel"},
		{"plain", "Hello", "Hello"},
		{"empty", "", ""},
		{"only codes", "\x1b[31m\x1b[0m", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripAnsi(tt.input); got != tt.expected {
				t.Errorf("StripAnsi() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOverlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		background string
		foreground string
		want       string
	}{
		{
			name:       "centered",
			background: "AAAAA\nBBBBB\nCCCCC",
			foreground: "     \n  X  \n     ",
			want:       "AAAAA\nBBXBB\nCCCCC",
		},
		{
			name:       "shorter foreground",
			background: "AAAAA\nBBBBB",
			foreground: " YY",
			want:       "AYYAA\nBBBBB",
		},
		{
			name:       "blank foreground",
			background: "AAAAA",
			foreground: "     ",
			want:       "AAAAA",
		},
		{
			name:       "foreground past background",
			background: "AA",
			foreground: "    Z",
			want:       "AA  Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Overlay(tt.background, tt.foreground)); diff != "" {
				t.Errorf("Overlay() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	t.Parallel()

	// dot 1 (U+2801) with dot 4 (U+2808)
	if got := Combine('⠁', '⠈'); got != '⠉' {
		t.Errorf("Combine() = %U, want U+2809", got)
	}
	if got := Combine(Empty, '⣿'); got != '⣿' {
		t.Errorf("Combine() = %U, want full cell", got)
	}
}

func TestHasDots(t *testing.T) {
	t.Parallel()

	for r, want := range map[rune]bool{' ': false, Empty: false, '⣿': true, 'A': false} {
		if got := HasDots(r); got != want {
			t.Errorf("HasDots(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestLines_FixedSize(t *testing.T) {
	t.Parallel()

	canvas := drawille.NewCanvas()
	canvas.Set(0, 0)
	canvas.Set(9, 11)

	lines := Lines(&canvas, 10, 12)
	if len(lines) != 3 {
		t.Fatalf("len(Lines()) = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 5 {
			t.Errorf("line %d has %d runes, want 5", i, n)
		}
	}
	if !HasDots([]rune(lines[0])[0]) {
		t.Errorf("top-left cell %q has no dots", lines[0])
	}
	if strings.TrimSpace(strings.ReplaceAll(lines[1], string(Empty), "")) != "" {
		t.Errorf("middle row %q should be blank", lines[1])
	}
}
