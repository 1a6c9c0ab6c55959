package components

import "github.com/charmbracelet/lipgloss"

// MaxElevation is the highest elevation level a theme draws.
const MaxElevation = 3

// Theme controls how resolved pixel styles are approximated in the terminal.
type Theme struct {
	// PixelsPerColumn and PixelsPerRow convert pixel spacing to cells. A
	// terminal cell is roughly twice as tall as it is wide.
	PixelsPerColumn int
	PixelsPerRow    int

	// Elevations holds the border drawn for each elevation level; index 0 is
	// unused because level 0 draws no border.
	Elevations [MaxElevation + 1]lipgloss.Border
	// Rounded replaces the level 1 border when borderRadius is set.
	Rounded     lipgloss.Border
	BorderColor lipgloss.TerminalColor

	// HeadingFontSize is the smallest font size rendered underlined.
	HeadingFontSize int
}

// DefaultTheme returns the standard preview theme.
func DefaultTheme() Theme {
	return Theme{
		PixelsPerColumn: 4,
		PixelsPerRow:    8,
		Elevations: [MaxElevation + 1]lipgloss.Border{
			{},
			lipgloss.NormalBorder(),
			lipgloss.ThickBorder(),
			lipgloss.DoubleBorder(),
		},
		Rounded:         lipgloss.RoundedBorder(),
		BorderColor:     lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#4B5563"},
		HeadingFontSize: 24,
	}
}

// Normalize fills zero scales with defaults.
func (t Theme) Normalize() Theme {
	defaults := DefaultTheme()
	if t.PixelsPerColumn <= 0 {
		t.PixelsPerColumn = defaults.PixelsPerColumn
	}
	if t.PixelsPerRow <= 0 {
		t.PixelsPerRow = defaults.PixelsPerRow
	}
	if t.HeadingFontSize <= 0 {
		t.HeadingFontSize = defaults.HeadingFontSize
	}
	return t
}

// Columns converts horizontal pixels to cells. Any non-zero spacing takes at
// least one cell.
func (t Theme) Columns(px int) int {
	return toCells(px, t.Normalize().PixelsPerColumn)
}

// Rows converts vertical pixels to cells.
func (t Theme) Rows(px int) int {
	return toCells(px, t.Normalize().PixelsPerRow)
}

func toCells(px, per int) int {
	if px <= 0 {
		return 0
	}
	cells := px / per
	if cells == 0 {
		return 1
	}
	return cells
}

// BorderForElevation returns the border for level and whether one is drawn.
func (t Theme) BorderForElevation(level int, rounded bool) (lipgloss.Border, bool) {
	if level <= 0 {
		return lipgloss.Border{}, false
	}
	if level > MaxElevation {
		level = MaxElevation
	}
	if level == 1 && rounded {
		return t.Rounded, true
	}
	return t.Elevations[level], true
}

// Background sets the background color from a hex value.
func Background(hex string) StyleFunc {
	return func(style lipgloss.Style, _ Theme) lipgloss.Style {
		return style.Background(lipgloss.Color(hex))
	}
}

// Foreground sets the text color from a hex value.
func Foreground(hex string) StyleFunc {
	return func(style lipgloss.Style, _ Theme) lipgloss.Style {
		return style.Foreground(lipgloss.Color(hex))
	}
}

// Padding applies pixel padding converted to cells.
func Padding(px Spacing) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		c := px.Cells(theme)
		return style.Padding(c.Top, c.Right, c.Bottom, c.Left)
	}
}

// Margin applies pixel margin converted to cells.
func Margin(px Spacing) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		c := px.Cells(theme)
		return style.Margin(c.Top, c.Right, c.Bottom, c.Left)
	}
}

// Elevation draws the border for an elevation level.
func Elevation(level int, rounded bool) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		border, ok := theme.BorderForElevation(level, rounded)
		if !ok {
			return style
		}
		style = style.Border(border)
		if theme.BorderColor != nil {
			style = style.BorderForeground(theme.BorderColor)
		}
		return style
	}
}

// Typography applies weight and heading emphasis for a font size.
func Typography(fontSize int, bold bool) StyleFunc {
	return func(style lipgloss.Style, theme Theme) lipgloss.Style {
		if bold {
			style = style.Bold(true)
		}
		if fontSize >= theme.Normalize().HeadingFontSize {
			style = style.Underline(true)
		}
		return style
	}
}
