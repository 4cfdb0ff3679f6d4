package progress

import (
	"math"
	"time"
)

// ReviewThreshold is the success rate below which a word always needs review.
const ReviewThreshold = 0.7

// WordStats holds the answer history for a single source-language word.
type WordStats struct {
	Word         string    `json:"word"`
	Topic        string    `json:"topic,omitempty"`
	Correct      int       `json:"correct"`
	Incorrect    int       `json:"incorrect"`
	FirstSeen    time.Time `json:"first_seen"`
	LastReviewed time.Time `json:"last_reviewed"`
	NeedsReview  bool      `json:"needs_review"`
}

// Attempts returns the number of graded answers for the word.
func (w *WordStats) Attempts() int {
	return w.Correct + w.Incorrect
}

// SuccessRate returns correct / attempts, or 0 for a word never answered.
func (w *WordStats) SuccessRate() float64 {
	n := w.Attempts()
	if n == 0 {
		return 0
	}
	return float64(w.Correct) / float64(n)
}

// Interval returns the review interval for the word's current success rate.
func (w *WordStats) Interval() time.Duration {
	return ReviewInterval(w.SuccessRate())
}

// NextReview returns when the word's review interval runs out.
func (w *WordStats) NextReview() time.Time {
	return w.LastReviewed.Add(w.Interval())
}

// IsDue returns true if the word belongs in the review queue at now.
func (w *WordStats) IsDue(now time.Time) bool {
	if w.NeedsReview || w.SuccessRate() < ReviewThreshold {
		return true
	}
	return now.Sub(w.LastReviewed) > w.Interval()
}

// Priority ranks a due word: low success, long absence and many mistakes
// all push it up the queue.
func (w *WordStats) Priority(now time.Time) float64 {
	base := 1 - w.SuccessRate()
	days := now.Sub(w.LastReviewed).Hours() / 24
	if days < 0 {
		days = 0
	}
	timeFactor := math.Min(days, 7)
	repetition := math.Min(float64(w.Incorrect)/10, 1)
	return base*100 + timeFactor*10 + repetition*20
}

// ReviewInterval maps a success rate onto the time a word may rest before
// it is reviewed again.
func ReviewInterval(successRate float64) time.Duration {
	const day = 24 * time.Hour
	switch {
	case successRate >= 0.9:
		return 7 * day
	case successRate >= 0.8:
		return 3 * day
	case successRate >= 0.7:
		return day
	case successRate >= 0.5:
		return 4 * time.Hour
	default:
		return time.Hour
	}
}
