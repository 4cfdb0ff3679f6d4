package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capisco/internal/router"
	"github.com/abhisek/capisco/internal/screen"
	"github.com/abhisek/capisco/internal/store"
	"github.com/abhisek/capisco/internal/ui/components"
	"github.com/abhisek/capisco/internal/ui/layout"
	"github.com/abhisek/capisco/internal/ui/theme"
)

const (
	sessionLimit = 50
	answerLimit  = 500
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Answers  map[string][]store.AnswerRecord // sessionID → answers
	Err      error
}

// HistoryScreen displays past sessions and the answers given in them.
// Tab narrows the list to one topic at a time.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	answers   map[string][]store.AnswerRecord
	topics    []string
	filter    int // index into topics, -1 for all
	selected  int
	expanded  map[string]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		filter:    -1,
		expanded:  make(map[string]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		bySession := make(map[string][]store.AnswerRecord)
		answers, err := repo.RecentAnswers(ctx, answerLimit)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions, Answers: bySession}
		}
		// RecentAnswers is newest first; list each session's answers in the
		// order they were given.
		for i := len(answers) - 1; i >= 0; i-- {
			a := answers[i]
			bySession[a.SessionID] = append(bySession[a.SessionID], a)
		}
		return historyLoadedMsg{Sessions: sessions, Answers: bySession}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Topic"},
		{Key: "Esc", Description: "Back"},
	}
}

// Filter returns the topic the list is narrowed to, or "" for all.
func (s *HistoryScreen) Filter() string {
	if s.filter < 0 {
		return ""
	}
	return s.topics[s.filter]
}

// visible returns the sessions passing the topic filter.
func (s *HistoryScreen) visible() []store.SessionSummaryRecord {
	topic := s.Filter()
	if topic == "" {
		return s.sessions
	}
	var out []store.SessionSummaryRecord
	for _, sess := range s.sessions {
		if sess.Topic == topic {
			out = append(out, sess)
		}
	}
	return out
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.answers = msg.Answers
			s.topics = sessionTopics(msg.Sessions)
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		visible := s.visible()
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(visible)-1 {
				s.selected++
			}
		case "tab":
			if len(s.topics) > 0 {
				s.filter++
				if s.filter == len(s.topics) {
					s.filter = -1
				}
				s.selected = 0
			}
		case "enter":
			if s.selected < len(visible) {
				id := visible[s.selected].SessionID
				s.expanded[id] = !s.expanded[id]
			}
		}
	}
	return s, nil
}

// sessionTopics lists the distinct topics in the order first seen.
func sessionTopics(sessions []store.SessionSummaryRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sess := range sessions {
		if sess.Topic == "" || seen[sess.Topic] {
			continue
		}
		seen[sess.Topic] = true
		out = append(out, sess.Topic)
	}
	return out
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Error),
			fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim),
			"\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return layout.Centered(width, theme.Hint, "\n\n  No sessions yet. Start practising!")
	}

	var b strings.Builder
	filter := "all topics"
	if t := s.Filter(); t != "" {
		filter = t
	}
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Hint, "Showing "+filter))
	b.WriteString("\n\n")

	for i, sess := range s.visible() {
		b.WriteString(s.renderSession(sess, i == s.selected, width))
		b.WriteString("\n")
		if s.expanded[sess.SessionID] {
			b.WriteString(s.renderAnswers(sess.SessionID, width))
		}
	}
	return b.String()
}

func (s *HistoryScreen) renderSession(sess store.SessionSummaryRecord, selected bool, width int) string {
	var accuracy float64
	if sess.QuestionsServed > 0 {
		accuracy = float64(sess.CorrectAnswers) / float64(sess.QuestionsServed)
	}

	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = "▸ "
		style = style.Foreground(theme.Primary).Bold(true)
	}

	topic := sess.Topic
	if topic == "" {
		topic = "-"
	}
	line := style.Render(fmt.Sprintf("%s%s  %-13s %d:%02d  %2d questions  ",
		prefix, sess.Timestamp.Local().Format("Jan 02, 2006 15:04"), topic,
		sess.DurationSecs/60, sess.DurationSecs%60, sess.QuestionsServed))
	pct := lipgloss.NewStyle().Foreground(components.BarColor(accuracy)).
		Render(fmt.Sprintf("%.0f%% correct", accuracy*100))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line+pct)
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	answers := s.answers[sessionID]
	if len(answers) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("    No answers recorded")) + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		mark, style := "✗", lipgloss.NewStyle().Foreground(theme.Error)
		switch {
		case a.Skipped:
			mark, style = "–", lipgloss.NewStyle().Foreground(theme.TextDim)
		case a.Correct:
			mark, style = "✓", lipgloss.NewStyle().Foreground(theme.Success)
		}
		line := fmt.Sprintf("    %s %-16s %-14s %s", mark, a.QuizType, a.Word, a.LearnerAnswer)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
