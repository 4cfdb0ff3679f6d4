package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capisco/internal/ui/theme"
)

// ButtonRow is a horizontal set of buttons with one focused.
type ButtonRow struct {
	Labels  []string
	Focused int
}

// NewButtonRow creates a row focused on the first button.
func NewButtonRow(labels ...string) ButtonRow {
	return ButtonRow{Labels: labels}
}

// Left moves focus left.
func (r *ButtonRow) Left() {
	if r.Focused > 0 {
		r.Focused--
	}
}

// Right moves focus right.
func (r *ButtonRow) Right() {
	if r.Focused < len(r.Labels)-1 {
		r.Focused++
	}
}

// View renders the row.
func (r ButtonRow) View() string {
	active := lipgloss.NewStyle().
		Background(theme.Primary).
		Foreground(theme.Text).
		Bold(true).
		Padding(0, 2)
	inactive := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 2)

	parts := make([]string, len(r.Labels))
	for i, l := range r.Labels {
		if i == r.Focused {
			parts[i] = active.Render(l)
		} else {
			parts[i] = inactive.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
