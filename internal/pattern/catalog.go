package pattern

import "github.com/garrettladley/constellation/internal/star"

// DefaultName is the name spelled by the built-in catalog.
const DefaultName = "SAMRIDDHI"

// Catalog returns a copy of the built-in name pattern. Stars are ordered by
// glyph, left to right, and within a glyph in stroke order; adjacency in this
// order is what the connection overlay and the progressive reveal follow.
func Catalog() []star.Star {
	out := make([]star.Star, len(catalog))
	copy(out, catalog)
	return out
}

// Len is the number of stars in the built-in catalog.
func Len() int {
	return len(catalog)
}

var catalog = []star.Star{
	// S
	{X: 50, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 0},
	{X: 50, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 0.1},
	{X: 60, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 0.2},
	{X: 70, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 0.3},
	{X: 70, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 0.4},
	{X: 60, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 0.5},
	{X: 50, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 0.6},
	{X: 50, Y: 160, Size: 6, Brightness: 0.9, TwinkleDelay: 0.7},
	{X: 60, Y: 160, Size: 6, Brightness: 0.9, TwinkleDelay: 0.8},
	{X: 70, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 0.9},

	// A
	{X: 90, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 1.0},
	{X: 90, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 1.1},
	{X: 90, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 1.2},
	{X: 100, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 1.3},
	{X: 110, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 1.4},
	{X: 110, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 1.5},
	{X: 110, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 1.6},
	{X: 100, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 1.7},

	// M
	{X: 130, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 1.8},
	{X: 130, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 1.9},
	{X: 130, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 2.0},
	{X: 130, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 2.1},
	{X: 140, Y: 110, Size: 6, Brightness: 0.9, TwinkleDelay: 2.2},
	{X: 150, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 2.3},
	{X: 160, Y: 110, Size: 6, Brightness: 0.9, TwinkleDelay: 2.4},
	{X: 170, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 2.5},
	{X: 170, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 2.6},
	{X: 170, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 2.7},
	{X: 170, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 2.8},

	// R
	{X: 190, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 2.9},
	{X: 190, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 3.0},
	{X: 190, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 3.1},
	{X: 190, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 3.2},
	{X: 200, Y: 100, Size: 6, Brightness: 0.9, TwinkleDelay: 3.3},
	{X: 210, Y: 100, Size: 6, Brightness: 0.9, TwinkleDelay: 3.4},
	{X: 210, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 3.5},
	{X: 200, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 3.6},
	{X: 200, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 3.7},
	{X: 210, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 3.8},

	// I
	{X: 230, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 3.9},
	{X: 240, Y: 100, Size: 6, Brightness: 0.9, TwinkleDelay: 4.0},
	{X: 250, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 4.1},
	{X: 240, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 4.2},
	{X: 240, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 4.3},
	{X: 230, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 4.4},
	{X: 240, Y: 160, Size: 6, Brightness: 0.9, TwinkleDelay: 4.5},
	{X: 250, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 4.6},

	// D
	{X: 270, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 4.7},
	{X: 270, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 4.8},
	{X: 270, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 4.9},
	{X: 270, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 5.0},
	{X: 280, Y: 100, Size: 6, Brightness: 0.9, TwinkleDelay: 5.1},
	{X: 290, Y: 110, Size: 6, Brightness: 0.9, TwinkleDelay: 5.2},
	{X: 290, Y: 130, Size: 6, Brightness: 0.9, TwinkleDelay: 5.3},
	{X: 290, Y: 150, Size: 6, Brightness: 0.9, TwinkleDelay: 5.4},
	{X: 280, Y: 160, Size: 6, Brightness: 0.9, TwinkleDelay: 5.5},

	// D
	{X: 310, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 5.6},
	{X: 310, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 5.7},
	{X: 310, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 5.8},
	{X: 310, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 5.9},
	{X: 320, Y: 100, Size: 6, Brightness: 0.9, TwinkleDelay: 6.0},
	{X: 330, Y: 110, Size: 6, Brightness: 0.9, TwinkleDelay: 6.1},
	{X: 330, Y: 130, Size: 6, Brightness: 0.9, TwinkleDelay: 6.2},
	{X: 330, Y: 150, Size: 6, Brightness: 0.9, TwinkleDelay: 6.3},
	{X: 320, Y: 160, Size: 6, Brightness: 0.9, TwinkleDelay: 6.4},

	// H
	{X: 350, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 6.5},
	{X: 350, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 6.6},
	{X: 350, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 6.7},
	{X: 350, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 6.8},
	{X: 360, Y: 130, Size: 6, Brightness: 0.9, TwinkleDelay: 6.9},
	{X: 370, Y: 130, Size: 6, Brightness: 0.9, TwinkleDelay: 7.0},
	{X: 380, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 7.1},
	{X: 380, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 7.2},
	{X: 380, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 7.3},
	{X: 380, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 7.4},

	// I
	{X: 400, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 7.5},
	{X: 410, Y: 100, Size: 6, Brightness: 0.9, TwinkleDelay: 7.6},
	{X: 420, Y: 100, Size: 8, Brightness: 1, TwinkleDelay: 7.7},
	{X: 410, Y: 120, Size: 6, Brightness: 0.9, TwinkleDelay: 7.8},
	{X: 410, Y: 140, Size: 6, Brightness: 0.9, TwinkleDelay: 7.9},
	{X: 400, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 8.0},
	{X: 410, Y: 160, Size: 6, Brightness: 0.9, TwinkleDelay: 8.1},
	{X: 420, Y: 160, Size: 8, Brightness: 1, TwinkleDelay: 8.2},
}
