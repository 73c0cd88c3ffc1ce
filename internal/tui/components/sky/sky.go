// Package sky rasterizes star field frames into coloured braille text.
package sky

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/constellation/internal/render"
	"github.com/garrettladley/constellation/internal/tui/components/braille"
)

var _ render.Surface = (*Surface)(nil)

// glow dots are only raised where the halo is at least this opaque; fainter
// parts of the halo only tint the cell
const glowDotAlpha = 0.45

// Surface is a render.Surface backed by a drawille canvas. Logical
// coordinates are scaled to the canvas, and each character cell remembers
// the most opaque colour painted into it.
type Surface struct {
	canvas     drawille.Canvas
	cols, rows int
	dotsW      int
	dotsH      int
	scaleX     float64
	scaleY     float64
	cells      []render.RGBA
	background render.RGBA
}

// New returns a surface covering cols x rows terminal cells.
func New(cols, rows int, background color.Color) *Surface {
	cols, rows = max(cols, 1), max(rows, 1)
	s := &Surface{
		canvas:     drawille.NewCanvas(),
		cols:       cols,
		rows:       rows,
		dotsW:      cols * braille.DotsPerCol,
		dotsH:      rows * braille.DotsPerRow,
		cells:      make([]render.RGBA, cols*rows),
		background: toRGBA(background),
	}
	s.scaleX = float64(s.dotsW) / render.Width
	s.scaleY = float64(s.dotsH) / render.Height
	return s
}

func (s *Surface) Size() (cols, rows int) { return s.cols, s.rows }

func (s *Surface) Clear() {
	s.canvas.Clear()
	clear(s.cells)
}

func (s *Surface) DashedLine(x0, y0, x1, y1 float64, c render.RGBA, _ float64, dash []float64) {
	var (
		ax, ay = s.toDots(x0, y0)
		bx, by = s.toDots(x1, y1)
		dx, dy = bx - ax, by - ay
		steps  = int(math.Max(math.Abs(dx), math.Abs(dy)))
	)
	if steps == 0 {
		s.dot(ax, ay, c)
		return
	}

	var period float64
	for _, d := range dash {
		period += d
	}

	for i := 0; i <= steps; i++ {
		if period > 0 && !dashOn(math.Mod(float64(i), period), dash) {
			continue
		}
		k := float64(i) / float64(steps)
		s.dot(ax+dx*k, ay+dy*k, c)
	}
}

// dashOn reports whether pos falls in an "on" span of the pattern; spans
// alternate on, off, on, ...
func dashOn(pos float64, dash []float64) bool {
	for i, d := range dash {
		if pos < d {
			return i%2 == 0
		}
		pos -= d
	}
	return false
}

func (s *Surface) Glow(x, y, radius float64, g render.Gradient) {
	s.fill(x, y, radius, func(frac float64) (render.RGBA, bool) {
		c := g.At(frac)
		return c, c.A >= glowDotAlpha
	})
}

func (s *Surface) Disc(x, y, radius float64, c render.RGBA) {
	cx, cy := s.toDots(x, y)
	s.dot(cx, cy, c)
	s.fill(x, y, radius, func(float64) (render.RGBA, bool) {
		return c, true
	})
}

func (s *Surface) Cross(x, y, arm float64, c render.RGBA) {
	s.DashedLine(x-arm, y, x+arm, y, c, 1, nil)
	s.DashedLine(x, y-arm, x, y+arm, c, 1, nil)
}

// fill walks the dots inside the ellipse the logical circle maps to.
func (s *Surface) fill(x, y, radius float64, shade func(frac float64) (render.RGBA, bool)) {
	if radius <= 0 {
		return
	}
	var (
		cx, cy = s.toDots(x, y)
		rx     = radius * s.scaleX
		ry     = radius * s.scaleY
	)

	for py := int(math.Floor(cy - ry)); py <= int(math.Ceil(cy+ry)); py++ {
		for px := int(math.Floor(cx - rx)); px <= int(math.Ceil(cx+rx)); px++ {
			nx := (float64(px) - cx) / math.Max(rx, 0.5)
			ny := (float64(py) - cy) / math.Max(ry, 0.5)
			frac := math.Hypot(nx, ny)
			if frac > 1 {
				continue
			}
			c, raise := shade(frac)
			if raise {
				s.dot(float64(px), float64(py), c)
			} else {
				s.tint(px, py, c)
			}
		}
	}
}

func (s *Surface) toDots(x, y float64) (float64, float64) {
	return x * s.scaleX, y * s.scaleY
}

func (s *Surface) dot(x, y float64, c render.RGBA) {
	px, py := int(math.Round(x)), int(math.Round(y))
	if px < 0 || py < 0 || px >= s.dotsW || py >= s.dotsH {
		return
	}
	s.canvas.Set(px, py)
	s.tint(px, py, c)
}

func (s *Surface) tint(px, py int, c render.RGBA) {
	if px < 0 || py < 0 || px >= s.dotsW || py >= s.dotsH {
		return
	}
	i := (py/braille.DotsPerRow)*s.cols + px/braille.DotsPerCol
	if c.A > s.cells[i].A {
		s.cells[i] = c
	}
}

// Render returns the canvas as rows x cols styled characters. Runs of cells
// sharing a colour are styled together.
func (s *Surface) Render() string {
	lines := braille.Lines(&s.canvas, s.dotsW, s.dotsH)
	out := make([]string, len(lines))

	for row, line := range lines {
		var (
			b       strings.Builder
			run     strings.Builder
			runHex  string
			runes   = []rune(line)
			flush = func() {
				if run.Len() == 0 {
					return
				}
				if runHex == "" {
					b.WriteString(run.String())
				} else {
					b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runHex)).Render(run.String()))
				}
				run.Reset()
			}
		)

		for col, r := range runes {
			hex := ""
			if braille.HasDots(r) {
				hex = s.blend(s.cells[row*s.cols+col])
			} else {
				r = ' '
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run.WriteRune(r)
		}
		flush()
		out[row] = b.String()
	}

	return strings.Join(out, "\n")
}

// Lit counts the cells with at least one raised dot.
func (s *Surface) Lit() int {
	n := 0
	for _, line := range braille.Lines(&s.canvas, s.dotsW, s.dotsH) {
		for _, r := range line {
			if braille.HasDots(r) {
				n++
			}
		}
	}
	return n
}

// blend composites c over the background and returns it as a hex colour.
func (s *Surface) blend(c render.RGBA) string {
	a := c.A
	mix := func(fg, bg uint8) uint8 {
		return uint8(float64(fg)*a + float64(bg)*(1-a) + 0.5)
	}
	return fmt.Sprintf("#%02X%02X%02X",
		mix(c.R, s.background.R),
		mix(c.G, s.background.G),
		mix(c.B, s.background.B))
}

func toRGBA(c color.Color) render.RGBA {
	if c == nil {
		return render.RGBA{A: 1}
	}
	r, g, b, _ := c.RGBA()
	return render.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 1}
}
