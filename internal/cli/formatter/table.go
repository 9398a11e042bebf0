// Package formatter renders CLI tables and labels.
package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorHeader = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorRed    = lipgloss.Color("#fb4934")

	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBold   = lipgloss.NewStyle().Bold(true)
)

// RenderTable renders an aligned table with a header separator line.
// Widths are measured in terminal cells, so Hangul columns line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	var b strings.Builder

	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+colGap))
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Bar renders a proportional bar of at most width cells.
func Bar(value, max, width int) string {
	if max <= 0 || value <= 0 || width <= 0 {
		return ""
	}
	n := value * width / max
	if n == 0 {
		n = 1
	}
	return StyleGreen.Render(strings.Repeat("█", n))
}

// Signed renders a percentage change, green when positive and red when negative.
func Signed(pct float64) string {
	s := formatFloat(pct)
	switch {
	case pct > 0:
		return StyleGreen.Render("+" + s + "%")
	case pct < 0:
		return StyleRed.Render(s + "%")
	default:
		return "0.0%"
	}
}
