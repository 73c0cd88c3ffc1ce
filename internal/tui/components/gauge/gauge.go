package gauge

import (
	"fmt"
	"image/color"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/constellation/internal/tui/components/braille"
	"github.com/garrettladley/constellation/internal/tui/theme"
)

const (
	// ring size in braille dots; 16 chars wide, 8 chars tall
	ringDotsWidth  = 32
	ringDotsHeight = 32
)

// Gauge is a ring showing how many of the collection days have passed, with
// the count in its centre.
type Gauge struct {
	Collected int
	Total     int
	Label     string
	Color     color.Color // filled part of the ring
	BgColor   color.Color // unfilled part of the ring
	TextColor color.Color
}

type Option func(*Gauge)

func WithBgColor(c color.Color) Option {
	return func(g *Gauge) {
		g.BgColor = c
	}
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) {
		g.TextColor = c
	}
}

func New(collected, total int, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Collected: collected,
		Total:     total,
		Label:     label,
		Color:     c,
		BgColor:   theme.ColorBgLight,
		TextColor: theme.ColorWhite,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Fraction is the filled share of the ring in [0,1].
func (g Gauge) Fraction() float64 {
	if g.Total <= 0 {
		return 0
	}
	return min(max(float64(g.Collected)/float64(g.Total), 0), 1)
}

func (g Gauge) Value() string {
	if g.Total <= 0 {
		return "--"
	}
	return fmt.Sprintf("%d/%d", min(max(g.Collected, 0), g.Total), g.Total)
}

func (g Gauge) Render() string {
	var (
		canvas  = drawille.NewCanvas()
		centerX = float64(ringDotsWidth) / 2
		centerY = float64(ringDotsHeight) / 2
		radius  = float64(ringDotsWidth)/2 - 1
	)

	drawFullArc(&canvas, centerX, centerY, radius)
	bg := braille.String(&canvas, ringDotsWidth, ringDotsHeight)

	canvas.Clear()
	drawFilledArc(&canvas, centerX, centerY, radius, g.Fraction())
	fill := braille.String(&canvas, ringDotsWidth, ringDotsHeight)

	ring := overlayArcs(bg, fill, g.BgColor, g.Color)

	var (
		ringWidth  = lipgloss.Width(ring)
		ringHeight = lipgloss.Height(ring)
	)

	value := lipgloss.Place(
		ringWidth,
		ringHeight,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(g.TextColor).Bold(true).Render(g.Value()),
	)

	label := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Width(ringWidth).
		Align(lipgloss.Center).
		Render(g.Label)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		braille.Overlay(ring, value),
		label,
	)
}

// overlayArcs colours the background and filled rings and ORs their dots
// where both are present, the fill colour winning.
func overlayArcs(bgStr, fillStr string, bgColor, fillColor color.Color) string {
	var (
		bgLines   = strings.Split(bgStr, "\n")
		fillLines = strings.Split(fillStr, "\n")
		result    = make([]string, 0, len(bgLines))
		bgStyle   = lipgloss.NewStyle().Foreground(bgColor)
		fillStyle = lipgloss.NewStyle().Foreground(fillColor)
	)

	for i, bgLine := range bgLines {
		var fillRunes []rune
		if i < len(fillLines) {
			fillRunes = []rune(fillLines[i])
		}

		var b strings.Builder
		for j, bgChar := range []rune(bgLine) {
			fillChar := ' '
			if j < len(fillRunes) {
				fillChar = fillRunes[j]
			}

			switch fillHasDots, bgHasDots := braille.HasDots(fillChar), braille.IsBraille(bgChar); {
			case fillHasDots && bgHasDots:
				b.WriteString(fillStyle.Render(string(braille.Combine(bgChar, fillChar))))
			case fillHasDots:
				b.WriteString(fillStyle.Render(string(fillChar)))
			case bgHasDots && bgChar != braille.Empty:
				b.WriteString(bgStyle.Render(string(bgChar)))
			default:
				b.WriteRune(' ')
			}
		}
		result = append(result, b.String())
	}

	return strings.Join(result, "\n")
}
