package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorStar      = lipgloss.Color("#FFFFFF") // star cores
	ColorSkyBlue   = lipgloss.Color("#93C5FD") // halos, connections, progress
	ColorIndigo    = lipgloss.Color("#818CF8") // progress bar start
	ColorPurple    = lipgloss.Color("#C084FC") // progress bar end, completion accents
	ColorGold      = lipgloss.Color("#FDE68A") // completion title
	ColorSaved     = lipgloss.Color("#16EC06") // store reachable
	ColorUnsaved   = lipgloss.Color("#FF0026") // store unreachable
	ColorHintMuted = lipgloss.Color("#94A3B8") // closed-panel hint
)

var (
	ColorBgDark  = lipgloss.Color("#0B1026") // night sky
	ColorBgLight = lipgloss.Color("#283339") // unfilled gauge ring
)
