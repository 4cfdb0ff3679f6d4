package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/capisco/internal/ui/theme"
)

// PairMatcher assigns one target to each source row. Up and down pick the
// row; a digit assigns the numbered target to it.
type PairMatcher struct {
	Sources  []string
	Targets  []string
	Row      int
	assigned []int
}

// NewPairMatcher creates a matcher with nothing assigned.
func NewPairMatcher(sources, targets []string) PairMatcher {
	assigned := make([]int, len(sources))
	for i := range assigned {
		assigned[i] = -1
	}
	return PairMatcher{Sources: sources, Targets: targets, assigned: assigned}
}

// Update handles row movement and assignment.
func (m PairMatcher) Update(msg tea.Msg) PairMatcher {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m
	}
	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Row > 0 {
			m.Row--
		}
	case "down", "j":
		if m.Row < len(m.Sources)-1 {
			m.Row++
		}
	case "backspace":
		m.assigned = append([]int(nil), m.assigned...)
		m.assigned[m.Row] = -1
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if t := int(key[0] - '1'); t < len(m.Targets) {
				m.assigned = append([]int(nil), m.assigned...)
				m.assigned[m.Row] = t
				if m.Row < len(m.Sources)-1 {
					m.Row++
				}
			}
		}
	}
	return m
}

// Pairs returns the source to target assignments made so far.
func (m PairMatcher) Pairs() map[string]string {
	out := make(map[string]string, len(m.Sources))
	for i, t := range m.assigned {
		if t >= 0 {
			out[m.Sources[i]] = m.Targets[t]
		}
	}
	return out
}

// Complete reports whether every row has a target.
func (m PairMatcher) Complete() bool {
	for _, t := range m.assigned {
		if t < 0 {
			return false
		}
	}
	return true
}

// View renders the two columns.
func (m PairMatcher) View() string {
	var b strings.Builder
	for i, src := range m.Sources {
		choice := "?"
		if t := m.assigned[i]; t >= 0 {
			choice = m.Targets[t]
		}
		line := fmt.Sprintf("%-14s → %s", src, choice)
		if i == m.Row {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for i, t := range m.Targets {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d) %s", i+1, t)))
		b.WriteString("\n")
	}
	return b.String()
}
