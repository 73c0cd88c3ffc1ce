// Package launcher renders the closed panel: the days ring, the open prompt
// and a one-line progress hint.
package launcher

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/constellation/internal/tui/components/gauge"
	"github.com/garrettladley/constellation/internal/tui/page/splash"
	"github.com/garrettladley/constellation/internal/tui/theme"
)

type State struct {
	Completion  bool
	StarsToShow int
	TotalDays   int
}

func View(t theme.Theme, state State, width, height int) string {
	buttonStyle := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Background(theme.ColorIndigo).
		Padding(0, 3).
		Bold(true)

	ring := gauge.New(
		state.StarsToShow,
		state.TotalDays,
		"DAYS",
		ringColor(state.Completion),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		ring.Render(),
		"",
		buttonStyle.Render("★ View Your Constellation ✦"),
		"",
		t.Muted().Render(Hint(state.Completion, state.StarsToShow, state.TotalDays)),
		t.Muted().Faint(true).Render("press enter to open"),
	)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// Hint summarizes progress under the open prompt.
func Hint(completion bool, starsToShow, totalDays int) string {
	if completion {
		return "Your constellation is complete - see the magic!"
	}
	return fmt.Sprintf("%d %s collected • %d days remaining",
		starsToShow, Plural(starsToShow, "star"), totalDays-starsToShow)
}

func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func ringColor(completion bool) color.Color {
	if completion {
		return theme.ColorGold
	}
	return theme.ColorSkyBlue
}
