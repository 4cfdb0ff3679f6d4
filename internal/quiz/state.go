package quiz

import "errors"

// Phase is the lifecycle stage of a single quiz item.
type Phase int

const (
	PhaseUnanswered Phase = iota // waiting for input
	PhaseAnswered                // verdict known, feedback showing
	PhaseGraded                  // verdict counted, item is done
)

func (p Phase) String() string {
	switch p {
	case PhaseUnanswered:
		return "unanswered"
	case PhaseAnswered:
		return "answered"
	case PhaseGraded:
		return "graded"
	default:
		return "unknown"
	}
}

var (
	ErrAlreadyAnswered = errors.New("item already answered")
	ErrNotAnswered     = errors.New("item not answered yet")
)

// ItemState tracks one item through Unanswered, Answered and Graded.
// Renderers project it onto widgets; it is the only source of truth for
// whether an item can still accept input.
type ItemState struct {
	Item    Item
	Phase   Phase
	Answer  Answer
	Verdict Verdict
}

// NewItemState wraps item in the Unanswered phase.
func NewItemState(item Item) *ItemState {
	return &ItemState{Item: item, Phase: PhaseUnanswered}
}

// Submit grades answer and moves to Answered. A second call fails.
func (s *ItemState) Submit(answer Answer) (Verdict, error) {
	if s.Phase != PhaseUnanswered {
		return s.Verdict, ErrAlreadyAnswered
	}
	s.Answer = answer
	s.Verdict = Grade(s.Item, answer)
	s.Phase = PhaseAnswered
	return s.Verdict, nil
}

// Complete moves an answered item to Graded and records it on score.
func (s *ItemState) Complete(score *Score) error {
	switch s.Phase {
	case PhaseUnanswered:
		return ErrNotAnswered
	case PhaseGraded:
		return ErrAlreadyAnswered
	}
	if score != nil {
		score.Record(s.Verdict)
	}
	s.Phase = PhaseGraded
	return nil
}

// Skip moves an unanswered item straight to Graded without a verdict.
// The score is left alone.
func (s *ItemState) Skip() error {
	if s.Phase != PhaseUnanswered {
		return ErrAlreadyAnswered
	}
	s.Verdict = Verdict{Explanation: "Skipped."}
	s.Phase = PhaseGraded
	return nil
}

// Correct reports whether the item was answered correctly.
func (s *ItemState) Correct() bool {
	return s.Phase != PhaseUnanswered && s.Verdict.Correct
}
