package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capisco/internal/router"
	"github.com/abhisek/capisco/internal/screen"
	"github.com/abhisek/capisco/internal/session"
	"github.com/abhisek/capisco/internal/ui/components"
	"github.com/abhisek/capisco/internal/ui/layout"
	"github.com/abhisek/capisco/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary session.Summary
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. saveErr, when set, is shown as a warning
// that progress was not fully persisted.
func New(summary session.Summary, saveErr error) *SummaryScreen {
	return &SummaryScreen{summary: summary, saveErr: saveErr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	text := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder

	b.WriteString(layout.Centered(width, theme.Title, "Sessione finita!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(layout.Centered(width, dim, fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Questions: %d        Correct: %d        Best streak: %d",
		sum.Score.Total, sum.Score.Correct, sum.Stats.MaxStreak)
	b.WriteString(layout.Centered(width, text, stats))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", sum.Accuracy(), min(width-8, 50))
	bar.Detail = fmt.Sprintf("%d/%d", sum.Score.Correct, sum.Score.Total)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, dim, fmt.Sprintf("Difficulty now: %s", sum.Difficulty)))
	b.WriteString("\n\n")

	if len(sum.Review) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 50)))
		b.WriteString(layout.Centered(width, dim, "Words to review"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, w := range sum.Review {
			b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Accent), w))
			b.WriteString("\n")
		}
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Error),
			"Progress could not be saved: "+s.saveErr.Error()))
	}

	return b.String()
}
