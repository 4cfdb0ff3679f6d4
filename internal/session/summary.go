package session

import (
	"time"

	"github.com/abhisek/capisco/internal/progress"
	"github.com/abhisek/capisco/internal/quiz"
)

// ReviewPreview is how many due words a summary lists.
const ReviewPreview = 5

// Summary holds the data displayed when a session ends.
type Summary struct {
	SessionID  string                `json:"sessionId"`
	Topic      string                `json:"topic"`
	Type       quiz.Type             `json:"type"`
	Duration   time.Duration         `json:"duration"`
	Served     int                   `json:"served"`
	Score      quiz.Score            `json:"score"`
	Stats      progress.SessionStats `json:"stats"`
	Difficulty progress.Difficulty   `json:"difficulty"`
	Review     []string              `json:"review,omitempty"`
}

// Accuracy returns the fraction of graded items answered correctly.
func (s Summary) Accuracy() float64 {
	if s.Score.Total == 0 {
		return 0
	}
	return float64(s.Score.Correct) / float64(s.Score.Total)
}

// Summary returns the summary of the running (or last ended) session.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

func (s *Session) summary() Summary {
	now := s.now()
	var dur time.Duration
	switch {
	case s.active:
		dur = now.Sub(s.startedAt)
	case !s.endedAt.IsZero():
		dur = s.endedAt.Sub(s.startedAt)
	}

	var review []string
	for _, ws := range s.tracker.ReviewQueue(now) {
		if len(review) == ReviewPreview {
			break
		}
		review = append(review, ws.Word)
	}

	return Summary{
		SessionID:  s.id,
		Topic:      s.topic,
		Type:       s.requested,
		Duration:   dur,
		Served:     s.served,
		Score:      s.score,
		Stats:      s.tracker.Session(),
		Difficulty: s.tracker.Difficulty(),
		Review:     review,
	}
}

// ReviewQueue returns copies of the words due at now, highest priority
// first.
func (s *Session) ReviewQueue(now time.Time) []progress.WordStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	queue := s.tracker.ReviewQueue(now)
	out := make([]progress.WordStats, len(queue))
	for i, ws := range queue {
		out[i] = *ws
	}
	return out
}

// Words returns copies of every tracked word, sorted by word.
func (s *Session) Words() []progress.WordStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	words := s.tracker.Words()
	out := make([]progress.WordStats, len(words))
	for i, ws := range words {
		out[i] = *ws
	}
	return out
}
