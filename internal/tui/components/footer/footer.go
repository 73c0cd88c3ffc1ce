package footer

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type Footer struct {
	rightContent string
	width        int
	padding      int
}

func New(rightContent string, width int) Footer {
	return Footer{
		rightContent: rightContent,
		width:        width,
		padding:      2,
	}
}

func (f Footer) Render() string {
	var (
		leftContent = f.leftContent()
		leftWidth   = lipgloss.Width(leftContent)
		rightWidth  = lipgloss.Width(f.rightContent)
		spacer      = strings.Repeat(" ", max(f.width-leftWidth-rightWidth-(f.padding*2), 0))
	)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(leftContent + spacer + f.rightContent)
}
