package quiz

// Score is the running tally for one quiz session. Counts only grow until
// Reset is called on a full session restart.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Record counts one graded answer.
func (s *Score) Record(v Verdict) {
	s.Total++
	if v.Correct {
		s.Correct++
	}
}

// Percent returns the rounded-down percentage of correct answers.
func (s Score) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Correct * 100 / s.Total
}

// Reset zeroes the tally.
func (s *Score) Reset() {
	*s = Score{}
}
