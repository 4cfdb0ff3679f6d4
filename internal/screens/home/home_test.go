package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/router"
	sessionscreen "github.com/abhisek/capisco/internal/screens/session"
	"github.com/abhisek/capisco/internal/screens/words"
	sess "github.com/abhisek/capisco/internal/session"
)

func testSession() *sess.Session {
	c := quiz.NewCatalog()
	c.Add(&quiz.Dataset{
		Topic: "weather",
		Title: "Weather",
		Order: 1,
		Vocabulary: []quiz.VocabEntry{
			{Source: "sole", Target: "sun"},
			{Source: "pioggia", Target: "rain"},
			{Source: "neve", Target: "snow"},
			{Source: "vento", Target: "wind"},
		},
	})
	c.Add(&quiz.Dataset{
		Topic:      "tiny",
		Title:      "Tiny",
		Order:      2,
		Vocabulary: []quiz.VocabEntry{{Source: "ciao", Target: "hello"}},
	})
	return sess.New(c, sess.Options{Rand: quiz.NewRand(7)})
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestHomeScreen_Title(t *testing.T) {
	h := New(testSession(), nil)
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want Home", h.Title())
	}
}

func TestHomeScreen_MenuItems(t *testing.T) {
	h := New(testSession(), nil)

	var labels []string
	for _, it := range h.menu.Items {
		labels = append(labels, it.Label)
	}
	want := []string{"Weather", "Tiny", "Word Map", "History", "Exit"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Fatalf("menu labels = %v, want %v", labels, want)
	}
	if !h.menu.Items[3].Disabled {
		t.Error("History should be disabled without an event repo")
	}
	if h.menu.Items[1].Disabled {
		t.Error("Tiny supports flashcards and should be enabled for mixed quizzes")
	}
}

func TestHomeScreen_TypeCycling(t *testing.T) {
	h := New(testSession(), nil)
	if h.SelectedType() != quiz.TypeMixed {
		t.Fatalf("default type = %q, want mixed", h.SelectedType())
	}

	h.Update(key(tea.KeyRight))
	if h.SelectedType() != quiz.TypeMultipleChoice {
		t.Fatalf("after right: type = %q, want multipleChoice", h.SelectedType())
	}
	if !h.menu.Items[1].Disabled {
		t.Error("Tiny has one word and cannot serve multiple choice")
	}
	if h.menu.Items[0].Disabled {
		t.Error("Weather should serve multiple choice")
	}

	h.Update(key(tea.KeyLeft))
	h.Update(key(tea.KeyLeft))
	if h.SelectedType() != quiz.TypeAudioQuiz {
		t.Errorf("left from mixed should wrap to the last type, got %q", h.SelectedType())
	}
}

func TestHomeScreen_StartPushesSession(t *testing.T) {
	h := New(testSession(), nil)

	_, cmd := h.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter on a topic should return a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("pushed %T, want *session.SessionScreen", push.Screen)
	}
}

func TestHomeScreen_WordMap(t *testing.T) {
	h := New(testSession(), nil)
	h.Update(key(tea.KeyDown))
	h.Update(key(tea.KeyDown))

	_, cmd := h.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter on Word Map should return a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*words.WordsScreen); !ok {
		t.Errorf("pushed %T, want *words.WordsScreen", push.Screen)
	}
}

func TestHomeScreen_RefreshOnRootFocus(t *testing.T) {
	s := testSession()
	h := New(s, nil)
	if h.words != 0 {
		t.Fatalf("fresh learner has %d words", h.words)
	}

	ctx := context.Background()
	if _, err := s.Next(ctx, "weather", quiz.TypeFlashcard); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Submit(ctx, quiz.Answer{Knew: false}); err != nil {
		t.Fatal(err)
	}

	h.Update(router.RootFocusMsg{})
	if h.words != 1 {
		t.Errorf("words = %d, want 1", h.words)
	}
	if h.reviewsDue != 1 {
		t.Errorf("reviewsDue = %d, want 1", h.reviewsDue)
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := New(testSession(), nil)
	view := h.View(120, 40)
	for _, want := range []string{"Weather", "Tiny", "Word Map", "Mixed", "NONE DUE"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	compact := h.View(80, 18)
	if !strings.Contains(compact, titleCompact) {
		t.Error("compact view should use the compact title")
	}
}
