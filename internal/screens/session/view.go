package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/ui/layout"
	"github.com/abhisek/capisco/internal/ui/theme"
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(theme.TextDim)
	promptStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Error),
			fmt.Sprintf("\n\n\nError: %s\n\nPress any key to go back.", s.errMsg))
	case s.empty:
		return layout.Centered(width, dimStyle,
			fmt.Sprintf("\n\n\nThis topic does not have enough material for %s.\n\nPress any key to go back.", s.qtype.Label()))
	case s.showingQuit:
		return renderQuitConfirm(width)
	case s.state == nil:
		return layout.Centered(width, dimStyle, "\n\n\nPreparing your quiz...")
	}
	return s.renderItem(width)
}

func (s *SessionScreen) renderItem(width int) string {
	item := s.state.Item
	var b strings.Builder

	b.WriteString(labelStyle.Render("  " + item.Type().Label()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, promptStyle, item.Prompt()))
	b.WriteString("\n\n")

	var body string
	switch q := item.(type) {
	case *quiz.MultipleChoice:
		body = s.choices.View()
	case *quiz.Matching:
		body = s.matcher.View()
	case *quiz.LetterPicker, *quiz.WordOrder:
		body = s.tiles.View()
	case *quiz.Flashcard:
		body = s.renderFlashcard(q)
	case *quiz.FillBlank, *quiz.AudioQuiz:
		body = "Answer: " + s.input.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n\n")

	b.WriteString(s.renderFeedback(width))
	return b.String()
}

func (s *SessionScreen) renderFlashcard(q *quiz.Flashcard) string {
	card := theme.Card.Width(30).Align(lipgloss.Center)
	if !s.flipped {
		return card.Render(q.Front + "\n\n" + dimStyle.Render("(space to flip)"))
	}
	back := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render(q.Back)
	out := card.Render(q.Front + "\n\n" + back)
	if s.verdict == nil {
		out += "\n\n" + s.buttons.View()
	}
	return out
}

func (s *SessionScreen) renderFeedback(width int) string {
	if s.skipped {
		return layout.Centered(width, dimStyle, "Skipped.\n\nPress Enter for the next question.")
	}
	if s.verdict == nil {
		return ""
	}

	var b strings.Builder
	if s.verdict.Correct {
		b.WriteString(layout.Centered(width, theme.Correct, "Esatto!"))
	} else {
		b.WriteString(layout.Centered(width, theme.Incorrect, "Not quite"))
	}
	b.WriteString("\n")

	exp := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(s.verdict.Explanation)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, dimStyle, "Press Enter for the next question."))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(width, promptStyle, "End this session?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, dimStyle, "Your progress will be saved."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}
