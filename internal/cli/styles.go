package cli

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorRed    = lipgloss.Color("167") // soft red - hearts and diamonds
	colorWhite  = lipgloss.Color("255") // bright white - black suits, borders
	colorBack   = lipgloss.Color("25")  // deep blue - card backs
	colorFelt   = lipgloss.Color("22")  // dark green - empty slots
	colorYellow = lipgloss.Color("220") // amber - selection highlight
	colorCyan   = lipgloss.Color("36")  // teal - headings
	colorDim    = lipgloss.Color("240") // dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleTitle for the game header.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for key hints and secondary text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleStatus for the move feedback line.
	styleStatus = lipgloss.NewStyle().Foreground(colorYellow)

	// styleWin for the victory banner.
	styleWin = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	styleCardRed   = lipgloss.NewStyle().Foreground(colorRed)
	styleCardBlack = lipgloss.NewStyle().Foreground(colorWhite)
	styleCardBack  = lipgloss.NewStyle().Foreground(colorBack)
	styleSlot      = lipgloss.NewStyle().Foreground(colorFelt)
	styleSelected  = lipgloss.NewStyle().Foreground(colorYellow)
)
