// Package render draws star field frames onto an abstract surface.
package render

import (
	"math"

	"github.com/garrettladley/constellation/internal/star"
)

// Logical surface size. Star coordinates live in this space.
const (
	Width  = 500
	Height = 300
)

const (
	// ConnectionDistance is the exclusive upper bound on the distance
	// between two adjacent stars for a line to be drawn between them.
	ConnectionDistance = 80

	twinkleRate  = 0.003
	sparkleAbove = 0.8
)

var (
	ConnectionColor = LightBlue.WithAlpha(0.3)
	ConnectionDash  = []float64{2, 4}
)

type Surface interface {
	Clear()
	DashedLine(x0, y0, x1, y1 float64, c RGBA, width float64, dash []float64)
	Glow(x, y, radius float64, g Gradient)
	Disc(x, y, radius float64, c RGBA)
	Cross(x, y, arm float64, c RGBA)
}

// Input is everything one frame depends on.
type Input struct {
	// Time in milliseconds since the render loop started.
	Time            float64
	Stars           []star.Star
	ShowConnections bool
	Completion      bool
	Revealing       bool
	Revealed        int
}

type Segment struct {
	From, To star.Star
}

// Connections returns the segments between consecutive stars that are closer
// than ConnectionDistance.
func Connections(stars []star.Star) []Segment {
	var segs []Segment
	for i := 0; i+1 < len(stars); i++ {
		a, b := stars[i], stars[i+1]
		if star.Distance(a, b) < ConnectionDistance {
			segs = append(segs, Segment{From: a, To: b})
		}
	}
	return segs
}

// Twinkle returns the brightness multiplier of a star at time t (ms), in
// [0.4, 1.0].
func Twinkle(t, delay float64) float64 {
	return math.Sin(t*twinkleRate+delay)*0.3 + 0.7
}

// Frame clears s and draws one frame of in.
func Frame(s Surface, in Input) {
	s.Clear()

	if in.ShowConnections && in.Completion {
		for _, seg := range Connections(in.Stars) {
			s.DashedLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y, ConnectionColor, 1, ConnectionDash)
		}
	}

	for i, st := range in.Stars {
		if in.Revealing && i >= in.Revealed {
			continue
		}
		drawStar(s, st, Twinkle(in.Time, st.TwinkleDelay))
	}
}

func drawStar(s Surface, st star.Star, twinkle float64) {
	alpha := st.Brightness * twinkle

	s.Glow(st.X, st.Y, st.Size*2, StarGlow(alpha))
	s.Disc(st.X, st.Y, st.Size/2, White.WithAlpha(alpha))
	if twinkle > sparkleAbove {
		s.Cross(st.X, st.Y, st.Size, White.WithAlpha(alpha))
	}
}
