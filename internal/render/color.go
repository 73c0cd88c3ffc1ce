package render

// RGBA is a straight-alpha colour; A is in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

var (
	White     = RGBA{R: 255, G: 255, B: 255, A: 1}
	LightBlue = RGBA{R: 147, G: 197, B: 253, A: 1}
)

func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp01(a)
	return c
}

// Stop is a colour stop of a radial gradient at Offset in [0,1].
type Stop struct {
	Offset float64
	Color  RGBA
}

type Gradient []Stop

// At interpolates the gradient linearly at frac. Positions outside the first
// and last stop take the colour of that stop.
func (g Gradient) At(frac float64) RGBA {
	if len(g) == 0 {
		return RGBA{}
	}
	if frac <= g[0].Offset {
		return g[0].Color
	}
	for i := 1; i < len(g); i++ {
		lo, hi := g[i-1], g[i]
		if frac > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		k := (frac - lo.Offset) / span
		return RGBA{
			R: lerp8(lo.Color.R, hi.Color.R, k),
			G: lerp8(lo.Color.G, hi.Color.G, k),
			B: lerp8(lo.Color.B, hi.Color.B, k),
			A: lo.Color.A + (hi.Color.A-lo.Color.A)*k,
		}
	}
	return g[len(g)-1].Color
}

// StarGlow is the halo drawn around every star at the given alpha.
func StarGlow(alpha float64) Gradient {
	return Gradient{
		{Offset: 0, Color: White.WithAlpha(alpha)},
		{Offset: 0.5, Color: LightBlue.WithAlpha(alpha * 0.6)},
		{Offset: 1, Color: LightBlue.WithAlpha(0)},
	}
}

func lerp8(a, b uint8, k float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*k + 0.5)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
