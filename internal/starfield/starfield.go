package starfield

import (
	"math/rand/v2"
	"time"

	"github.com/garrettladley/constellation/internal/star"
)

// TotalDays is the default length of the collection period.
const TotalDays = 16

// bounds for randomly placed stars, in logical surface units
const (
	minX, spanX                   = 50, 400
	minY, spanY                   = 50, 200
	minSize, spanSize             = 4, 4
	minBrightness, spanBrightness = 0.5, 0.5
	spanTwinkleDelay              = 2
)

// Generator produces the star list for the current mode.
type Generator struct {
	rng     *rand.Rand
	pattern []star.Star
}

type Option func(*Generator)

// WithPattern replaces the completion-mode pattern. The slice is copied.
func WithPattern(stars []star.Star) Option {
	return func(g *Generator) {
		g.pattern = append([]star.Star(nil), stars...)
	}
}

// New returns a generator drawing from rng. A nil rng is seeded from the
// runtime's entropy source.
func New(rng *rand.Rand, pattern []star.Star, opts ...Option) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := &Generator{rng: rng}
	WithPattern(pattern)(g)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewSeeded returns a deterministic generator.
func NewSeeded(seed uint64, pattern []star.Star) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed)), pattern)
}

// SetPattern swaps the completion-mode pattern.
func (g *Generator) SetPattern(stars []star.Star) {
	WithPattern(stars)(g)
}

// Generate returns the completion pattern when completion is set, otherwise a
// freshly randomized list of exactly starsToShow stars. Every call builds a new
// list; nothing from earlier calls is reused.
func (g *Generator) Generate(starsToShow int, completion bool) []star.Star {
	if completion {
		return append([]star.Star(nil), g.pattern...)
	}

	n := max(starsToShow, 0)
	stars := make([]star.Star, 0, n)
	for range n {
		stars = append(stars, star.Star{
			X:            g.rng.Float64()*spanX + minX,
			Y:            g.rng.Float64()*spanY + minY,
			Size:         g.rng.Float64()*spanSize + minSize,
			Brightness:   g.rng.Float64()*spanBrightness + minBrightness,
			TwinkleDelay: g.rng.Float64() * spanTwinkleDelay,
		})
	}
	return stars
}

// DaysSince returns the number of whole days elapsed from start to now,
// floored at zero.
func DaysSince(start, now time.Time) int {
	if !now.After(start) {
		return 0
	}
	return int(now.Sub(start) / (24 * time.Hour))
}

// StarsToShow is one star per elapsed day, including the first, capped at
// totalDays.
func StarsToShow(daysSinceStart, totalDays int) int {
	return min(max(daysSinceStart, 0)+1, totalDays)
}
