//go:build release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/constellation/internal/tui/theme"
	"github.com/garrettladley/constellation/internal/version"
)

var versionStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)

func (f Footer) leftContent() string {
	v := version.Get()
	if version.IsDevelopment(v) {
		return versionStyle.Render(v)
	}
	return versionStyle.Render("v" + version.Short(v))
}
