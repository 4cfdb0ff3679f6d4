package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capisco/internal/progress"
	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/ui/theme"
)

const titleFull = `                 _
  ___ __ _ _ __ (_)___  ___ ___
 / __/ _' | '_ \| / __|/ __/ _ \
| (_| (_| | |_) | \__ \ (_| (_) |
 \___\__,_| .__/|_|___/\___\___/
          |_|`

const titleCompact = "C · A · P · I · S · C · O"

const tagline = "Impara l'italiano, una parola alla volta."

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	if compact {
		return center.Render(style.Render(titleCompact))
	}
	return center.Render(style.Render(titleFull)) + "\n" +
		center.Render(theme.Hint.Render(tagline))
}

// renderStatsBar renders the learner's progress in a bordered box.
func renderStatsBar(words, reviewsDue int, difficulty progress.Difficulty, cw int, compact bool) string {
	wordStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	reviewStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			wordStyle.Render(fmt.Sprintf("✎%d", words)),
			levelStyle.Render(strings.ToUpper(string(difficulty))),
			reviewText(reviewsDue, true, reviewStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			wordStyle.Render(fmt.Sprintf("✎ %d WORDS", words)),
			levelStyle.Render("LEVEL "+strings.ToUpper(string(difficulty))),
			reviewText(reviewsDue, false, reviewStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func reviewText(due int, compact bool, active, dim lipgloss.Style) string {
	if due == 0 {
		if compact {
			return dim.Render("⟳0")
		}
		return dim.Render("⟳ NONE DUE")
	}
	if compact {
		return active.Render(fmt.Sprintf("⟳%d", due))
	}
	return active.Render(fmt.Sprintf("⟳ %d DUE", due))
}

// renderTypePicker shows the selected quiz type between arrows.
func renderTypePicker(t quiz.Type, cw int) string {
	arrow := lipgloss.NewStyle().Foreground(theme.TextDim)
	label := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render(t.Label())
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render("Quiz type: " + arrow.Render("◂ ") + label + arrow.Render(" ▸"))
}
