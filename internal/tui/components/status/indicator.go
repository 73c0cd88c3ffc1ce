package status

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/constellation/internal/tui/theme"
)

const statusDot = "●"

// Indicator shows whether the state store answered its last ping.
type Indicator struct {
	Checked bool
	Healthy bool
	Backend string
}

func (i Indicator) Render() string {
	if !i.Checked {
		return lipgloss.NewStyle().
			Foreground(theme.ColorBgLight).
			Render(statusDot + " checking...")
	}

	if i.Healthy {
		return lipgloss.NewStyle().
			Foreground(theme.ColorSaved).
			Render(statusDot + " " + i.Backend)
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColorUnsaved).
		Render(statusDot + " " + i.Backend + " unreachable")
}
