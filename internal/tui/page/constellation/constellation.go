// Package constellation renders the open panel around the star field.
package constellation

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/constellation/internal/tui/components/status"
	"github.com/garrettladley/constellation/internal/tui/page/launcher"
	"github.com/garrettladley/constellation/internal/tui/theme"
)

const maxStarIcons = 5

type State struct {
	Completion      bool
	ShowConnections bool
	Revealing       bool
	Name            string
	Day             int // 1-based day of the collection period
	StarsToShow     int
	TotalDays       int
	Store           status.Indicator
}

// View lays out the header, the pre-rendered sky, the info row and either the
// progress section or the completion message.
func View(t theme.Theme, state State, sky string, width, height int) string {
	skyBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorIndigo).
		Render(sky)
	inner := lipgloss.Width(skyBox)

	sections := []string{
		header(t, state, inner),
		skyBox,
		info(t, state, inner),
	}
	if state.Completion {
		sections = append(sections, completion(t, state, inner))
	} else {
		sections = append(sections, progress(t, state, inner))
	}

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func Title(completion bool) string {
	if completion {
		return "Your Personal Constellation"
	}
	return "Constellation Builder"
}

// Headline is the first line of the info row.
func Headline(state State) string {
	if state.Completion {
		return "✨ " + state.Name + " ✨"
	}
	return fmt.Sprintf("Day %d of %d", state.Day, state.TotalDays)
}

func Detail(state State) string {
	if state.Completion {
		return "Your name written in the stars - Happy Birthday!"
	}
	return fmt.Sprintf("%d %s in your constellation",
		state.StarsToShow, launcher.Plural(state.StarsToShow, "star"))
}

// StarIcons draws one icon per star up to five, then a "+N" overflow.
func StarIcons(n int) string {
	if n <= 0 {
		return ""
	}
	icons := strings.Repeat("★", min(n, maxStarIcons))
	if n > maxStarIcons {
		icons += fmt.Sprintf(" +%d", n-maxStarIcons)
	}
	return icons
}

// ProgressBar is a width-cell bar filled in proportion to collected/total.
func ProgressBar(collected, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = min(max(collected, 0)*width/total, width)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func CompletionMessage(name string, totalDays int) string {
	return fmt.Sprintf("Your %d-day journey has culminated in this beautiful constellation "+
		"that spells out %q - your name written in the stars! Each star represents "+
		"a day of anticipation leading to this special moment.", totalDays, name)
}

func header(t theme.Theme, state State, width int) string {
	title := lipgloss.NewStyle().Foreground(theme.ColorGold).Render("★ ") +
		t.Base().Bold(true).Render(Title(state.Completion))

	right := state.Store.Render()
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(right), 1)

	return title + strings.Repeat(" ", gap) + right
}

func info(t theme.Theme, state State, width int) string {
	left := lipgloss.JoinVertical(
		lipgloss.Left,
		t.Base().Bold(true).Render(Headline(state)),
		lipgloss.NewStyle().Foreground(theme.ColorSkyBlue).Render(Detail(state)),
	)
	right := lipgloss.NewStyle().Foreground(theme.ColorGold).Render(StarIcons(state.StarsToShow))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}

func progress(t theme.Theme, state State, width int) string {
	label := t.Base().Render("Constellation Progress")
	count := lipgloss.NewStyle().
		Foreground(theme.ColorSkyBlue).
		Render(fmt.Sprintf("%d/%d stars", state.StarsToShow, state.TotalDays))
	gap := max(width-lipgloss.Width(label)-lipgloss.Width(count), 1)

	bar := lipgloss.NewStyle().
		Foreground(theme.ColorPurple).
		Render(ProgressBar(state.StarsToShow, state.TotalDays, width))

	note := t.Muted().Width(width).Render(
		"Each day adds a new star to your personal constellation. " +
			"When the countdown ends, something magical will be revealed!")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		label+strings.Repeat(" ", gap)+count,
		bar,
		note,
	)
}

func completion(t theme.Theme, state State, width int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.ColorGold).
		Bold(true).
		Render("★ Constellation Complete!")

	body := t.Base().Width(width).Render(CompletionMessage(state.Name, state.TotalDays))

	return lipgloss.JoinVertical(lipgloss.Left, "", title, body)
}

// KeyHints lists the bindings that do something in the current mode.
func KeyHints(state State) string {
	hints := []string{}
	if state.Completion {
		if state.ShowConnections {
			hints = append(hints, "c hide lines")
		} else {
			hints = append(hints, "c show lines")
		}
		if !state.Revealing {
			hints = append(hints, "r reveal")
		}
	}
	hints = append(hints, "R reset", "esc close", "q quit")
	return strings.Join(hints, " • ")
}
