package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capisco/internal/ui/theme"
)

// ChoiceList is a lettered option selector. Once revealed it colours the
// correct option green and a wrong pick red.
type ChoiceList struct {
	Options  []string
	Selected int
	Chosen   int
	correct  int
	revealed bool
}

// NewChoiceList creates a list with nothing chosen.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options, Chosen: -1, correct: -1}
}

// Update moves the cursor. Enter or a digit key picks an option; the
// returned bool reports whether a pick happened.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	if c.revealed {
		return c, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
		return c, true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(c.Options) {
				c.Selected = i
				c.Chosen = i
				return c, true
			}
		}
	}
	return c, false
}

// Reveal marks correct as the right option and freezes the list.
func (c *ChoiceList) Reveal(correct int) {
	c.correct = correct
	c.revealed = true
}

// View renders the options.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := theme.Unselected
		switch {
		case c.revealed && i == c.correct:
			style = theme.Correct
		case c.revealed && i == c.Chosen:
			style = theme.Incorrect
		case c.revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
