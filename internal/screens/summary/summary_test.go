package summary

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/capisco/internal/progress"
	"github.com/abhisek/capisco/internal/quiz"
	"github.com/abhisek/capisco/internal/router"
	"github.com/abhisek/capisco/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		SessionID:  "s-1",
		Topic:      "weather",
		Type:       quiz.TypeMixed,
		Duration:   4*time.Minute + 5*time.Second,
		Served:     8,
		Score:      quiz.Score{Correct: 6, Total: 8},
		Stats:      progress.SessionStats{Correct: 6, Incorrect: 2, MaxStreak: 4},
		Difficulty: progress.DifficultyMedium,
		Review:     []string{"pioggia", "neve"},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary(), nil).View(80, 24)
	for _, want := range []string{"4:05", "Questions: 8", "Best streak: 4", "pioggia", "neve", "medium"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "could not be saved") {
		t.Error("no warning expected without a save error")
	}
}

func TestSummaryScreen_SaveWarning(t *testing.T) {
	view := New(testSummary(), errors.New("disk full")).View(100, 30)
	if !strings.Contains(view, "disk full") {
		t.Error("expected the save error in the view")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, k := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		_, cmd := New(testSummary(), nil).Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected a command", k.String())
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Errorf("%s: expected PopToRootMsg", k.String())
		}
	}
}
