package formatter

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette follows the terminal background: the light variant on light
// terminals, the dark variant on dark ones.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#4f46e5", Dark: "#818cf8"}
	ColorFg      = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	ColorBody    = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#d1d5db"}
	ColorDim     = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}
	ColorPanel   = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#4b5563"}
)

// Predefined lipgloss styles.
var (
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleBody    = lipgloss.NewStyle().Foreground(ColorBody)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBorder  = lipgloss.NewStyle().Foreground(ColorBorder)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleClock   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	StyleTabActive   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)
	StyleTabInactive = lipgloss.NewStyle().Foreground(ColorDim)
)

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Body renders paragraph text.
func Body(text string) string {
	return StyleBody.Render(text)
}
