package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/capisco/internal/progress"
	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/router"
	"github.com/abhisek/capisco/internal/screen"
	"github.com/abhisek/capisco/internal/screens/history"
	sessionscreen "github.com/abhisek/capisco/internal/screens/session"
	"github.com/abhisek/capisco/internal/screens/words"
	sess "github.com/abhisek/capisco/internal/session"
	"github.com/abhisek/capisco/internal/store"
	"github.com/abhisek/capisco/internal/ui/components"
	"github.com/abhisek/capisco/internal/ui/layout"
)

// typeChoices is the cycle of quiz types offered on the home screen.
var typeChoices = append([]quiz.Type{quiz.TypeMixed}, quiz.AllTypes...)

// HomeScreen lists the quiz topics and the learner's progress.
type HomeScreen struct {
	session   *sess.Session
	eventRepo store.EventRepo
	now       func() time.Time

	menu       components.Menu
	typeIndex  int
	words      int
	reviewsDue int
	difficulty progress.Difficulty
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. eventRepo may be nil, which disables history.
func New(s *sess.Session, eventRepo store.EventRepo) *HomeScreen {
	h := &HomeScreen{session: s, eventRepo: eventRepo, now: time.Now}
	h.refresh()
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topic"},
		{Key: "←→", Description: "Quiz type"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// SelectedType returns the quiz type new sessions will use.
func (h *HomeScreen) SelectedType() quiz.Type {
	return typeChoices[h.typeIndex]
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.RootFocusMsg:
		h.refresh()
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			h.cycleType(-1)
			return h, nil
		case "right", "l":
			h.cycleType(1)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)
	cw := layout.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.words, h.reviewsDue, h.difficulty, cw, compact),
		renderTypePicker(h.SelectedType(), cw),
		components.Card(h.menu.View(), cw),
	}
	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) cycleType(delta int) {
	n := len(typeChoices)
	h.typeIndex = (h.typeIndex + delta + n) % n

	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
		h.menu.Selected = selected
	}
}

// refresh reloads the progress figures shown in the stats bar.
func (h *HomeScreen) refresh() {
	h.words = len(h.session.Words())
	h.reviewsDue = len(h.session.ReviewQueue(h.now()))
	h.difficulty = h.session.Summary().Difficulty
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	t := h.SelectedType()
	var items []components.MenuItem

	for _, ds := range h.session.Catalog().Datasets() {
		topic := ds.Topic
		supported := len(quiz.SupportedTypes(ds)) > 0
		if t != quiz.TypeMixed {
			supported = quiz.Supports(ds, t)
		}
		items = append(items, components.MenuItem{
			Label:    ds.Title,
			Hint:     fmt.Sprintf("%d words, %d phrases", len(ds.Vocabulary), len(ds.Phrases)+len(ds.Expressions)),
			Disabled: !supported,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: sessionscreen.New(h.session, topic, t)}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "Word Map",
		Action: func() tea.Cmd {
			titles := make(map[string]string)
			for _, ds := range h.session.Catalog().Datasets() {
				titles[ds.Topic] = ds.Title
			}
			scr := words.New(h.session.Words(), titles, h.now())
			return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
		},
	})
	items = append(items, components.MenuItem{
		Label:    "History",
		Disabled: h.eventRepo == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: history.New(h.eventRepo)} }
		},
	})
	items = append(items, components.MenuItem{
		Label:  "Exit",
		Action: func() tea.Cmd { return tea.Quit },
	})
	return items
}
