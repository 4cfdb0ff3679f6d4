// Package words shows every practised word grouped by topic, with its
// success rate and review schedule.
package words

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capisco/internal/progress"
	"github.com/abhisek/capisco/internal/router"
	"github.com/abhisek/capisco/internal/screen"
	"github.com/abhisek/capisco/internal/ui/layout"
	"github.com/abhisek/capisco/internal/ui/theme"
)

// State is the display state of one word.
type State int

const (
	StateLearning State = iota
	StateDue
	StateLearned
)

// Icon returns the row marker for s.
func (s State) Icon() string {
	switch s {
	case StateDue:
		return "●"
	case StateLearned:
		return "✓"
	default:
		return "○"
	}
}

// Label returns the row label for s.
func (s State) Label() string {
	switch s {
	case StateDue:
		return "review"
	case StateLearned:
		return "learned"
	default:
		return "learning"
	}
}

// StateOf classifies ws at now.
func StateOf(ws *progress.WordStats, now time.Time) State {
	switch {
	case ws.IsDue(now):
		return StateDue
	case ws.SuccessRate() >= 0.9:
		return StateLearned
	default:
		return StateLearning
	}
}

type rowKind int

const (
	rowTopicHeader rowKind = iota
	rowWord
)

type row struct {
	kind  rowKind
	topic string
	word  progress.WordStats
}

// WordsScreen lists tracked words by topic.
type WordsScreen struct {
	rows         []row
	cursor       int
	scrollOffset int
	now          time.Time
	titles       map[string]string
}

var _ screen.Screen = (*WordsScreen)(nil)
var _ screen.KeyHintProvider = (*WordsScreen)(nil)

// New creates a WordsScreen over words. titles maps topic keys to display
// names; words without a topic are listed under "Other".
func New(words []progress.WordStats, titles map[string]string, now time.Time) *WordsScreen {
	byTopic := make(map[string][]progress.WordStats)
	for _, ws := range words {
		byTopic[ws.Topic] = append(byTopic[ws.Topic], ws)
	}
	topics := make([]string, 0, len(byTopic))
	for t := range byTopic {
		topics = append(topics, t)
	}
	sort.Strings(topics)

	var rows []row
	for _, t := range topics {
		rows = append(rows, row{kind: rowTopicHeader, topic: t})
		for _, ws := range byTopic[t] {
			rows = append(rows, row{kind: rowWord, topic: t, word: ws})
		}
	}

	s := &WordsScreen{rows: rows, now: now, titles: titles}
	for i, r := range s.rows {
		if r.kind == rowWord {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *WordsScreen) Init() tea.Cmd {
	return nil
}

func (s *WordsScreen) Title() string {
	return "Word Map"
}

func (s *WordsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Next topic"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextTopic()
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *WordsScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return layout.Centered(width, theme.Hint, "\n\nNo words practised yet. Start a quiz!")
	}

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowTopicHeader:
			lines = append(lines, s.renderTopicHeader(r.topic, width))
		case rowWord:
			lines = append(lines, s.renderWordRow(r, i == s.cursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

// moveCursor moves the cursor by delta, skipping topic headers.
func (s *WordsScreen) moveCursor(delta int) {
	for next := s.cursor + delta; next >= 0 && next < len(s.rows); next += delta {
		if s.rows[next].kind == rowWord {
			s.cursor = next
			return
		}
	}
}

// nextTopic jumps to the first word of the next topic, wrapping around.
func (s *WordsScreen) nextTopic() {
	if len(s.rows) == 0 {
		return
	}
	current := s.rows[s.cursor].topic
	for i := 1; i <= len(s.rows); i++ {
		j := (s.cursor + i) % len(s.rows)
		if s.rows[j].kind == rowWord && s.rows[j].topic != current {
			s.cursor = j
			return
		}
	}
}

// adjustScroll keeps the cursor, and its topic header when possible, in view.
func (s *WordsScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowTopicHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *WordsScreen) renderTopicHeader(topic string, width int) string {
	name := s.titles[topic]
	if name == "" {
		name = topic
	}
	if name == "" {
		name = "Other"
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(name))
}

func (s *WordsScreen) renderWordRow(r row, selected bool, width int) string {
	ws := r.word
	state := StateOf(&ws, s.now)

	score := fmt.Sprintf("%d/%d", ws.Correct, ws.Attempts())
	next := "now"
	if state != StateDue {
		next = untilLabel(ws.NextReview().Sub(s.now))
	}

	nameWidth := max(width-36, 10)
	name := ws.Word
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch {
	case selected:
		nameStyle = theme.Selected
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case state == StateDue:
		labelStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	case state == StateLearned:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s %s  %6s  %8s  %s",
		cursor,
		state.Icon(),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		score,
		labelStyle.Render(state.Label()),
		labelStyle.Render(next),
	)
}

// untilLabel formats a positive duration as a short "in 3d" label.
func untilLabel(d time.Duration) string {
	switch {
	case d <= 0:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("in %dm", int(d.Minutes())+1)
	case d < 24*time.Hour:
		return fmt.Sprintf("in %dh", int(d.Hours()))
	default:
		return fmt.Sprintf("in %dd", int(d.Hours()/24))
	}
}
