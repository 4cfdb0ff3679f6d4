package progress

import (
	"sort"
	"time"

	"github.com/abhisek/capisco/internal/store"
)

// SessionStats are the running counters for the current quiz session.
type SessionStats struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
	Streak    int `json:"streak"`
	MaxStreak int `json:"maxStreak"`
}

// Tracker keeps per-word statistics across sessions and derives the review
// queue and adaptive difficulty from them.
type Tracker struct {
	words      map[string]*WordStats
	difficulty Difficulty
	recent     []bool
	session    SessionStats
	bestStreak int
}

// NewTracker creates a tracker, loading word history from the snapshot.
// Entries with unparseable times are skipped.
func NewTracker(snap *store.ProgressSnapshotData) *Tracker {
	t := &Tracker{
		words:      make(map[string]*WordStats),
		difficulty: DifficultyEasy,
	}
	if snap == nil {
		return t
	}

	t.difficulty = ParseDifficulty(snap.Difficulty)
	t.bestStreak = snap.MaxStreak
	if len(snap.Recent) > 0 {
		t.recent = append([]bool(nil), snap.Recent...)
	}
	for key, wd := range snap.Words {
		if wd == nil {
			continue
		}
		firstSeen, err := time.Parse(time.RFC3339, wd.FirstSeen)
		if err != nil {
			continue
		}
		lastReviewed, err := time.Parse(time.RFC3339, wd.LastReviewed)
		if err != nil {
			continue
		}
		word := wd.Word
		if word == "" {
			word = key
		}
		t.words[word] = &WordStats{
			Word:         word,
			Topic:        wd.Topic,
			Correct:      wd.Correct,
			Incorrect:    wd.Incorrect,
			FirstSeen:    firstSeen,
			LastReviewed: lastReviewed,
			NeedsReview:  wd.NeedsReview,
		}
	}
	return t
}

// Record counts one graded answer for word and returns its updated stats.
// A miss flags the word for review; a hit clears the flag.
func (t *Tracker) Record(word, topic string, correct bool, now time.Time) *WordStats {
	ws := t.words[word]
	if ws == nil {
		ws = &WordStats{Word: word, Topic: topic, FirstSeen: now}
		t.words[word] = ws
	}
	if topic != "" {
		ws.Topic = topic
	}
	if correct {
		ws.Correct++
		ws.NeedsReview = false
	} else {
		ws.Incorrect++
		ws.NeedsReview = true
	}
	ws.LastReviewed = now
	return ws
}

// Answer updates the session counters and the difficulty window with one
// graded outcome. Words are recorded separately with Record because a
// single item may cover several words.
func (t *Tracker) Answer(correct bool) {
	if correct {
		t.session.Correct++
		t.session.Streak++
		if t.session.Streak > t.session.MaxStreak {
			t.session.MaxStreak = t.session.Streak
		}
		if t.session.MaxStreak > t.bestStreak {
			t.bestStreak = t.session.MaxStreak
		}
	} else {
		t.session.Incorrect++
		t.session.Streak = 0
	}

	t.recent = append(t.recent, correct)
	if len(t.recent) > RecentWindow {
		t.recent = t.recent[len(t.recent)-RecentWindow:]
	}
	t.difficulty = Adjust(t.difficulty, t.recent)
}

// ReviewQueue returns the words due at now, highest priority first.
func (t *Tracker) ReviewQueue(now time.Time) []*WordStats {
	type entry struct {
		ws       *WordStats
		priority float64
	}
	var due []entry
	for _, ws := range t.words {
		if ws.IsDue(now) {
			due = append(due, entry{ws: ws, priority: ws.Priority(now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].priority != due[j].priority {
			return due[i].priority > due[j].priority
		}
		return due[i].ws.Word < due[j].ws.Word
	})

	out := make([]*WordStats, len(due))
	for i, d := range due {
		out[i] = d.ws
	}
	return out
}

// Difficulty returns the current adaptive level.
func (t *Tracker) Difficulty() Difficulty {
	return t.difficulty
}

// Session returns the counters for the current session.
func (t *Tracker) Session() SessionStats {
	return t.session
}

// BestStreak returns the longest streak seen across all sessions.
func (t *Tracker) BestStreak() int {
	return t.bestStreak
}

// ResetSession zeroes the session counters. Word history, difficulty and
// the best streak are kept.
func (t *Tracker) ResetSession() {
	t.session = SessionStats{}
}

// Word returns the stats for word, or nil if it was never answered.
func (t *Tracker) Word(word string) *WordStats {
	return t.words[word]
}

// Words returns all tracked words sorted alphabetically.
func (t *Tracker) Words() []*WordStats {
	out := make([]*WordStats, 0, len(t.words))
	for _, ws := range t.words {
		out = append(out, ws)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// SnapshotData exports the tracker state for persistence.
func (t *Tracker) SnapshotData() *store.ProgressSnapshotData {
	data := &store.ProgressSnapshotData{
		Words:      make(map[string]*store.WordStatsData, len(t.words)),
		Difficulty: string(t.difficulty),
		Recent:     append([]bool(nil), t.recent...),
		MaxStreak:  t.bestStreak,
	}
	for word, ws := range t.words {
		data.Words[word] = &store.WordStatsData{
			Word:         ws.Word,
			Topic:        ws.Topic,
			Correct:      ws.Correct,
			Incorrect:    ws.Incorrect,
			FirstSeen:    ws.FirstSeen.Format(time.RFC3339),
			LastReviewed: ws.LastReviewed.Format(time.RFC3339),
			NeedsReview:  ws.NeedsReview,
		}
	}
	return data
}
