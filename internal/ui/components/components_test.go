package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "space":
		return tea.KeyPressMsg{Code: ' '}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestChoiceList(t *testing.T) {
	c := NewChoiceList([]string{"sole", "neve", "vento"})

	c, picked := c.Update(key("down"))
	if picked || c.Selected != 1 {
		t.Fatalf("after down: picked=%v selected=%d", picked, c.Selected)
	}
	c, picked = c.Update(key("enter"))
	if !picked || c.Chosen != 1 {
		t.Fatalf("enter should pick the cursor, got picked=%v chosen=%d", picked, c.Chosen)
	}

	c = NewChoiceList([]string{"sole", "neve", "vento"})
	c, picked = c.Update(key("3"))
	if !picked || c.Chosen != 2 {
		t.Errorf("digit 3: picked=%v chosen=%d, want true 2", picked, c.Chosen)
	}
	if _, picked = c.Update(key("9")); picked {
		t.Error("out of range digit must not pick")
	}

	c.Reveal(0)
	if _, picked = c.Update(key("1")); picked {
		t.Error("a revealed list accepts no picks")
	}
	if !strings.Contains(c.View(), "vento") {
		t.Error("view should list every option")
	}
}

func TestTileTray(t *testing.T) {
	tray := NewTileTray([]string{"o", "s", "l", "e"}, "")

	tray = tray.Update(key("right"))
	tray = tray.Update(key("space"))
	tray = tray.Update(key("left"))
	tray = tray.Update(key("space"))
	tray = tray.Update(key("space")) // already used
	if got := strings.Join(tray.Picked(), ""); got != "so" {
		t.Fatalf("Picked = %q, want %q", got, "so")
	}

	tray = tray.Update(key("backspace"))
	if got := strings.Join(tray.Picked(), ""); got != "s" {
		t.Errorf("after undo Picked = %q, want %q", got, "s")
	}
	if tray.Complete() {
		t.Error("tray should not be complete")
	}
}

func TestTileTrayPicksAreIndependent(t *testing.T) {
	a := NewTileTray([]string{"fa", "caldo"}, " ")
	b := a.Update(key("space"))
	if len(a.Picked()) != 0 {
		t.Error("updating a copy must not change the original")
	}
	if len(b.Picked()) != 1 {
		t.Errorf("len(Picked) = %d, want 1", len(b.Picked()))
	}
}

func TestPairMatcher(t *testing.T) {
	m := NewPairMatcher([]string{"sole", "neve"}, []string{"snow", "sun"})

	m = m.Update(key("2")) // sole → sun, moves to next row
	if m.Row != 1 {
		t.Errorf("Row = %d, want 1", m.Row)
	}
	if m.Complete() {
		t.Error("one row is still open")
	}
	m = m.Update(key("1"))

	got := m.Pairs()
	if got["sole"] != "sun" || got["neve"] != "snow" {
		t.Errorf("Pairs = %v", got)
	}
	if !m.Complete() {
		t.Error("every row is assigned")
	}

	m = m.Update(key("backspace"))
	if _, ok := m.Pairs()["neve"]; ok {
		t.Error("backspace should clear the current row")
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "Weather", Disabled: true},
		{Label: "Food", Action: func() tea.Cmd { ran = "food"; return nil }},
		{Label: "Places", Disabled: true},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 1 {
		t.Errorf("down onto a disabled item moved to %d", m.Selected)
	}
	m.Update(key("enter"))
	if ran != "food" {
		t.Error("enter should run the selected action")
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{0.5, 10},
		{1, 20},
		{1.7, 20},
	}
	for _, tt := range tests {
		bar := NewProgressBar("", tt.percent, 25)
		bar.Detail = "x/y"
		view := bar.View()
		if got := strings.Count(view, "█"); got != tt.filled {
			t.Errorf("percent %.1f: filled = %d, want %d", tt.percent, got, tt.filled)
		}
		if got := strings.Count(view, "█") + strings.Count(view, "░"); got != 20 {
			t.Errorf("percent %.1f: bar width = %d, want 20", tt.percent, got)
		}
	}
}
