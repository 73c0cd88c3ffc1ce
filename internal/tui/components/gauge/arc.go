package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

// angles are in screen degrees: 0 is 3 o'clock and they grow clockwise, so
// 270 is 12 o'clock
const (
	arcStartAngle = 270.0
	arcSweep      = 360.0
	ringThickness = 3
)

// drawRing draws a ring ringThickness dots thick, limited to the arc from
// startAngle through startAngle+sweep, with the midpoint circle algorithm.
// see: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func drawRing(canvas *drawille.Canvas, centerX, centerY, radius, startAngle, sweep float64) {
	var (
		cx  = int(centerX)
		cy  = int(centerY)
		end = startAngle + sweep
	)

	for t := range ringThickness {
		r := int(radius) - t
		if r <= 0 {
			continue
		}

		x, y, d := r, 0, 1-r
		for x >= y {
			for _, p := range [8][2]int{
				{cx + x, cy - y}, {cx + y, cy - x},
				{cx - y, cy - x}, {cx - x, cy - y},
				{cx - x, cy + y}, {cx - y, cy + x},
				{cx + y, cy + x}, {cx + x, cy + y},
			} {
				if isInArcRange(cx, cy, p[0], p[1], startAngle, end) {
					canvas.Set(p[0], p[1])
				}
			}

			y++
			if d < 0 {
				d += 2*y + 1
			} else {
				x--
				d += 2*(y-x) + 1
			}
		}
	}
}

// isInArcRange reports whether the point's angle around the centre lies in
// [startAngle, endAngle]. endAngle may exceed 360 when the arc wraps.
func isInArcRange(cx, cy, px, py int, startAngle, endAngle float64) bool {
	angle := math.Atan2(float64(py-cy), float64(px-cx)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	if endAngle > 360 {
		return angle >= startAngle || angle <= endAngle-360
	}
	return angle >= startAngle && angle <= endAngle
}

func drawFullArc(canvas *drawille.Canvas, centerX, centerY, radius float64) {
	drawRing(canvas, centerX, centerY, radius, arcStartAngle, arcSweep)
}

func drawFilledArc(canvas *drawille.Canvas, centerX, centerY, radius, fraction float64) {
	if fraction <= 0 {
		return
	}
	drawRing(canvas, centerX, centerY, radius, arcStartAngle, min(fraction, 1)*arcSweep)
}
