package words

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/capisco/internal/progress"
	"github.com/abhisek/capisco/internal/router"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testWords() []progress.WordStats {
	return []progress.WordStats{
		{Word: "neve", Topic: "weather", Correct: 1, Incorrect: 2, LastReviewed: now.Add(-time.Hour), NeedsReview: true},
		{Word: "sole", Topic: "weather", Correct: 9, Incorrect: 0, LastReviewed: now.Add(-time.Hour)},
		{Word: "pizza", Topic: "food", Correct: 3, Incorrect: 1, LastReviewed: now.Add(-time.Hour)},
	}
}

func TestStateOf(t *testing.T) {
	words := testWords()
	tests := []struct {
		word string
		want State
	}{
		{"neve", StateDue},
		{"sole", StateLearned},
		{"pizza", StateLearning},
	}
	for i, tt := range tests {
		if got := StateOf(&words[i], now); got != tt.want {
			t.Errorf("StateOf(%s) = %v, want %v", tt.word, got.Label(), tt.want.Label())
		}
	}
}

func TestRowsGroupedByTopic(t *testing.T) {
	s := New(testWords(), map[string]string{"weather": "Weather", "food": "Food"}, now)

	if len(s.rows) != 5 {
		t.Fatalf("expected 2 headers and 3 words, got %d rows", len(s.rows))
	}
	if s.rows[0].kind != rowTopicHeader || s.rows[0].topic != "food" {
		t.Errorf("first row = %+v, want the food header", s.rows[0])
	}
	if s.rows[s.cursor].word.Word != "pizza" {
		t.Errorf("cursor starts on %q, want pizza", s.rows[s.cursor].word.Word)
	}
}

func TestNavigation(t *testing.T) {
	s := New(testWords(), nil, now)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := s.rows[s.cursor].word.Word; got != "neve" {
		t.Errorf("after down cursor on %q, want neve (headers skipped)", got)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if got := s.rows[s.cursor].word.Word; got != "pizza" {
		t.Errorf("tab should wrap to the first topic, got %q", got)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}

func TestView(t *testing.T) {
	view := New(testWords(), map[string]string{"weather": "Weather"}, now).View(80, 20)
	for _, want := range []string{"WEATHER", "FOOD", "neve", "review", "learned", "1/3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	empty := New(nil, nil, now).View(80, 20)
	if !strings.Contains(empty, "No words practised yet") {
		t.Error("expected the empty message")
	}
}

func TestUntilLabel(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "now"},
		{30 * time.Minute, "in 31m"},
		{5 * time.Hour, "in 5h"},
		{72 * time.Hour, "in 3d"},
	}
	for _, tt := range tests {
		if got := untilLabel(tt.d); got != tt.want {
			t.Errorf("untilLabel(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
