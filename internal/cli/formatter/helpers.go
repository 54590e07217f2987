package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rule renders a horizontal separator of the given width (minimum 20).
func Rule(width int) string {
	return StyleBorder.Render(strings.Repeat("─", max(width, 20)))
}

// Button renders a bracketed label that looks like a push button.
func Button(label string) string {
	return StyleDim.Render("[ ") + StyleBold.Render(label) + StyleDim.Render(" ]")
}

// Spread places left and right on one line, right-aligned to width.
// If both do not fit they are separated by two spaces.
func Spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

// Center horizontally centers every line of block within width.
func Center(block string, width int) string {
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// RenderBox wraps content in a rounded-border panel of fixed inner size,
// with the content centered both ways.
func RenderBox(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPanel).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(StyleDim.Render(content))
}
