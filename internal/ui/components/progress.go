package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capisco/internal/ui/theme"
)

// ProgressBar draws a ratio as a block bar coloured by how good it is.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
	// Detail replaces the trailing percentage when set, e.g. "6/8".
	Detail string
}

// NewProgressBar creates a bar for percent in [0, 1].
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: min(max(percent, 0), 1), Width: width}
}

// BarColor maps a ratio to the palette: green from 80%, amber from 50%.
func BarColor(percent float64) color.Color {
	switch {
	case percent >= 0.8:
		return theme.Success
	case percent >= 0.5:
		return theme.Accent
	default:
		return theme.Error
	}
}

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	detail := p.Detail
	if detail == "" {
		detail = fmt.Sprintf("%d%%", int(p.Percent*100+0.5))
	}
	detail = "  " + detail

	barWidth := max(p.Width-lipgloss.Width(b.String())-lipgloss.Width(detail), 4)
	filled := int(float64(barWidth)*p.Percent + 0.5)

	b.WriteString(lipgloss.NewStyle().Foreground(BarColor(p.Percent)).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
	return b.String()
}
