package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capisco/internal/ui/theme"
)

// TileTray lets the learner build an answer by picking tiles in order.
// Each tile can be used once; backspace returns the last pick.
type TileTray struct {
	Tiles  []string
	Cursor int
	picked []int
	used   []bool
	// Joiner separates picked tiles in the assembled preview.
	Joiner string
}

// NewTileTray creates a tray over tiles.
func NewTileTray(tiles []string, joiner string) TileTray {
	return TileTray{Tiles: tiles, used: make([]bool, len(tiles)), Joiner: joiner}
}

// Update handles cursor movement, picking and undo.
func (t TileTray) Update(msg tea.Msg) TileTray {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t
	}
	switch kmsg.String() {
	case "left", "h":
		if t.Cursor > 0 {
			t.Cursor--
		}
	case "right", "l":
		if t.Cursor < len(t.Tiles)-1 {
			t.Cursor++
		}
	case "space", " ":
		if t.Cursor < len(t.Tiles) && !t.used[t.Cursor] {
			t.used = append([]bool(nil), t.used...)
			t.used[t.Cursor] = true
			t.picked = append(append([]int(nil), t.picked...), t.Cursor)
		}
	case "backspace":
		if n := len(t.picked); n > 0 {
			last := t.picked[n-1]
			t.picked = append([]int(nil), t.picked[:n-1]...)
			t.used = append([]bool(nil), t.used...)
			t.used[last] = false
		}
	}
	return t
}

// Picked returns the picked tiles in order.
func (t TileTray) Picked() []string {
	out := make([]string, len(t.picked))
	for i, idx := range t.picked {
		out[i] = t.Tiles[idx]
	}
	return out
}

// Complete reports whether every tile has been picked.
func (t TileTray) Complete() bool {
	return len(t.picked) == len(t.Tiles)
}

// View renders the assembled preview above the tile row.
func (t TileTray) View() string {
	preview := strings.Join(t.Picked(), t.Joiner)
	if preview == "" {
		preview = "…"
	}

	tiles := make([]string, len(t.Tiles))
	for i, tile := range t.Tiles {
		switch {
		case t.used[i]:
			tiles[i] = theme.TileUsed.Render(tile)
		case i == t.Cursor:
			tiles[i] = theme.TileSelected.Render(tile)
		default:
			tiles[i] = theme.Tile.Render(tile)
		}
	}

	return lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render(preview) +
		"\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
