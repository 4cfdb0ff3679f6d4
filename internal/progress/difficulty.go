package progress

// Difficulty is the adaptive level derived from recent answers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Levels lists the difficulty ladder from easiest to hardest.
var Levels = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}

const (
	// RecentWindow is how many answers the difficulty adjustment looks at.
	RecentWindow = 10
	// MinRecent is the fewest answers needed before the level can move.
	MinRecent = 5

	levelUpRate   = 0.8
	levelDownRate = 0.4
)

// ParseDifficulty returns the level named s, defaulting to easy.
func ParseDifficulty(s string) Difficulty {
	for _, d := range Levels {
		if string(d) == s {
			return d
		}
	}
	return DifficultyEasy
}

func (d Difficulty) index() int {
	for i, l := range Levels {
		if l == d {
			return i
		}
	}
	return 0
}

// Adjust returns the level after looking at recent answers, newest last.
// At most the last RecentWindow answers count, and fewer than MinRecent
// leave the level unchanged.
func Adjust(current Difficulty, recent []bool) Difficulty {
	if len(recent) > RecentWindow {
		recent = recent[len(recent)-RecentWindow:]
	}
	if len(recent) < MinRecent {
		return current
	}

	correct := 0
	for _, ok := range recent {
		if ok {
			correct++
		}
	}
	rate := float64(correct) / float64(len(recent))

	i := current.index()
	switch {
	case rate >= levelUpRate && i < len(Levels)-1:
		return Levels[i+1]
	case rate <= levelDownRate && i > 0:
		return Levels[i-1]
	}
	return Levels[i]
}
