package session

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/router"
	"github.com/abhisek/capisco/internal/screen"
	"github.com/abhisek/capisco/internal/screens/summary"
	sess "github.com/abhisek/capisco/internal/session"
	"github.com/abhisek/capisco/internal/ui/components"
	"github.com/abhisek/capisco/internal/ui/layout"
)

// SessionScreen plays quiz items for one topic until the learner quits.
type SessionScreen struct {
	session *sess.Session
	topic   string
	qtype   quiz.Type

	state   *quiz.ItemState
	verdict *quiz.Verdict
	skipped bool
	empty   bool
	busy    bool
	errMsg  string

	showingQuit bool

	// Widgets; only the one matching the current item type is live.
	choices  components.ChoiceList
	input    components.AnswerInput
	tiles    components.TileTray
	matcher  components.PairMatcher
	buttons  components.ButtonRow
	flipped  bool
	textMode bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen serving topic items of type qtype.
func New(s *sess.Session, topic string, qtype quiz.Type) *SessionScreen {
	return &SessionScreen{session: s, topic: topic, qtype: qtype}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.nextItem()
}

func (s *SessionScreen) Title() string {
	if ds, err := s.session.Catalog().Topic(s.topic); err == nil {
		return ds.Title
	}
	return "Quiz"
}

func (s *SessionScreen) Status() string {
	sum := s.session.Summary()
	return layout.ScoreStatus(sum.Score.Correct, sum.Score.Total, sum.Stats.Streak)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.errMsg != "" || s.empty:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.verdict != nil || s.skipped:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "End"},
		}
	case s.state == nil:
		return nil
	}

	hints := s.itemHints()
	return append(hints, layout.KeyHint{Key: "Esc", Description: "End"})
}

func (s *SessionScreen) itemHints() []layout.KeyHint {
	switch s.state.Item.(type) {
	case *quiz.MultipleChoice:
		return []layout.KeyHint{{Key: "1-4", Description: "Choose"}, {Key: "↑↓ Enter", Description: "Select"}}
	case *quiz.Matching:
		return []layout.KeyHint{{Key: "↑↓", Description: "Row"}, {Key: "1-9", Description: "Assign"}, {Key: "Enter", Description: "Check"}}
	case *quiz.LetterPicker, *quiz.WordOrder:
		return []layout.KeyHint{{Key: "←→", Description: "Move"}, {Key: "Space", Description: "Pick"}, {Key: "Bksp", Description: "Undo"}, {Key: "Enter", Description: "Check"}}
	case *quiz.Flashcard:
		if !s.flipped {
			return []layout.KeyHint{{Key: "Space", Description: "Flip"}}
		}
		return []layout.KeyHint{{Key: "←→", Description: "Choose"}, {Key: "Enter", Description: "Confirm"}}
	case *quiz.AudioQuiz:
		return []layout.KeyHint{{Key: "Enter", Description: "Check"}, {Key: "Tab", Description: "Skip"}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Check"}}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case itemReadyMsg:
		return s.handleItemReady(msg)

	case answerGradedMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.handleVerdict(msg.Verdict)
		return s, nil

	case skippedMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.skipped = true
		return s, nil

	case sessionEndedMsg:
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.Summary, msg.Err)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.textMode && s.verdict == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleItemReady(msg itemReadyMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.State == nil {
		s.empty = true
		return s, nil
	}

	s.state = msg.State
	s.verdict = nil
	s.skipped = false
	s.flipped = false
	s.textMode = false

	switch q := msg.State.Item.(type) {
	case *quiz.MultipleChoice:
		opts := make([]string, len(q.Options))
		for i, o := range q.Options {
			opts[i] = o.Source
		}
		s.choices = components.NewChoiceList(opts)
	case *quiz.Matching:
		sources := make([]string, len(q.Pairs))
		for i, p := range q.Pairs {
			sources[i] = p.Source
		}
		s.matcher = components.NewPairMatcher(sources, q.Targets)
	case *quiz.LetterPicker:
		s.tiles = components.NewTileTray(q.Letters, "")
	case *quiz.WordOrder:
		s.tiles = components.NewTileTray(q.Scrambled, " ")
	case *quiz.Flashcard:
		s.buttons = components.NewButtonRow("I knew it", "Not yet")
	case *quiz.FillBlank, *quiz.AudioQuiz:
		s.textMode = true
		s.input = components.NewAnswerInput("Type your answer...", 60)
		return s, s.input.Init()
	}
	return s, nil
}

func (s *SessionScreen) handleVerdict(v quiz.Verdict) {
	s.verdict = &v
	switch q := s.state.Item.(type) {
	case *quiz.MultipleChoice:
		s.choices.Reveal(q.CorrectIndex())
	case *quiz.FillBlank, *quiz.AudioQuiz:
		s.input.Submit(v.Correct)
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" || s.empty {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuit {
		switch key {
		case "y", "Y":
			s.showingQuit = false
			return s, s.endSession()
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.showingQuit = true
		return s, nil
	}

	if s.busy || s.state == nil {
		return s, nil
	}

	if s.verdict != nil || s.skipped {
		if key == "enter" || key == "space" {
			return s, s.nextItem()
		}
		return s, nil
	}

	return s.handleItemKey(msg, key)
}

func (s *SessionScreen) handleItemKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	switch q := s.state.Item.(type) {
	case *quiz.MultipleChoice:
		var picked bool
		s.choices, picked = s.choices.Update(msg)
		if picked {
			return s, s.submit(quiz.TextAnswer(q.Options[s.choices.Chosen].Source))
		}

	case *quiz.Matching:
		if key == "enter" {
			return s, s.submit(quiz.Answer{Pairs: s.matcher.Pairs()})
		}
		s.matcher = s.matcher.Update(msg)

	case *quiz.LetterPicker:
		if key == "enter" {
			return s, s.submit(quiz.Answer{Letters: s.tiles.Picked()})
		}
		s.tiles = s.tiles.Update(msg)

	case *quiz.WordOrder:
		if key == "enter" {
			return s, s.submit(quiz.Answer{Words: s.tiles.Picked()})
		}
		s.tiles = s.tiles.Update(msg)

	case *quiz.Flashcard:
		if !s.flipped {
			if key == "space" || key == "enter" {
				s.flipped = true
			}
			return s, nil
		}
		switch key {
		case "left", "h":
			s.buttons.Left()
		case "right", "l":
			s.buttons.Right()
		case "enter":
			return s, s.submit(quiz.Answer{Knew: s.buttons.Focused == 0})
		}

	case *quiz.AudioQuiz:
		if key == "tab" {
			return s, s.skip()
		}
		return s.handleTextKey(msg, key)

	case *quiz.FillBlank:
		return s.handleTextKey(msg, key)
	}
	return s, nil
}

func (s *SessionScreen) handleTextKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if key == "enter" {
		if s.input.Value() == "" {
			return s, nil
		}
		return s, s.submit(quiz.TextAnswer(s.input.Value()))
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) nextItem() tea.Cmd {
	s.busy = true
	session, topic, qtype := s.session, s.topic, s.qtype
	return func() tea.Msg {
		st, err := session.Next(context.Background(), topic, qtype)
		return itemReadyMsg{State: st, Err: err}
	}
}

func (s *SessionScreen) submit(answer quiz.Answer) tea.Cmd {
	s.busy = true
	session := s.session
	return func() tea.Msg {
		v, err := session.Submit(context.Background(), answer)
		return answerGradedMsg{Verdict: v, Err: err}
	}
}

func (s *SessionScreen) skip() tea.Cmd {
	s.busy = true
	session := s.session
	return func() tea.Msg {
		return skippedMsg{Err: session.Skip(context.Background())}
	}
}

func (s *SessionScreen) endSession() tea.Cmd {
	session := s.session
	return func() tea.Msg {
		sum, err := session.End(context.Background())
		return sessionEndedMsg{Summary: sum, Err: err}
	}
}
