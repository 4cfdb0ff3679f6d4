package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies one of the quiz item variants.
type Type string

const (
	TypeMultipleChoice Type = "multipleChoice"
	TypeMatching       Type = "matching"
	TypeFillBlank      Type = "fillBlank"
	TypeFlashcard      Type = "flashcard"
	TypeLetterPicker   Type = "letterPicker"
	TypeWordOrder      Type = "wordOrder"
	TypeAudioQuiz      Type = "audioQuiz"

	// TypeMixed asks the rotation policy to pick a concrete type.
	TypeMixed Type = "mixed"
)

// AllTypes lists every concrete quiz type in canonical order.
var AllTypes = []Type{
	TypeMultipleChoice,
	TypeMatching,
	TypeFillBlank,
	TypeFlashcard,
	TypeLetterPicker,
	TypeWordOrder,
	TypeAudioQuiz,
}

var (
	ErrUnknownType  = errors.New("unknown quiz type")
	ErrUnknownTopic = errors.New("unknown quiz topic")
)

// ParseType converts a user-supplied tag into a Type. Matching is
// case-insensitive and accepts "mixed".
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(TypeMixed)) {
		return TypeMixed, nil
	}
	for _, t := range AllTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Label returns a human-readable name for the type.
func (t Type) Label() string {
	switch t {
	case TypeMultipleChoice:
		return "Multiple Choice"
	case TypeMatching:
		return "Matching"
	case TypeFillBlank:
		return "Fill in the Blank"
	case TypeFlashcard:
		return "Flashcard"
	case TypeLetterPicker:
		return "Letter Picker"
	case TypeWordOrder:
		return "Word Order"
	case TypeAudioQuiz:
		return "Listening"
	case TypeMixed:
		return "Mixed"
	default:
		return string(t)
	}
}

// VocabEntry is a single source/target word pair from a topic dataset.
type VocabEntry struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Category string `json:"category,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
	Note     string `json:"note,omitempty"`
	Audio    string `json:"audio,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Plural   string `json:"plural,omitempty"`
}

// PhraseEntry is a multi-word phrase or expression with its gloss.
type PhraseEntry struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Note     string `json:"note,omitempty"`
	Category string `json:"category,omitempty"`
}

// Dataset is the hand-authored bundle of words and phrases for one topic.
type Dataset struct {
	Topic       string        `json:"topic"`
	Title       string        `json:"title"`
	Order       int           `json:"order"`
	Vocabulary  []VocabEntry  `json:"vocabulary,omitempty"`
	Phrases     []PhraseEntry `json:"phrases,omitempty"`
	Expressions []PhraseEntry `json:"expressions,omitempty"`
}

// sentences returns phrases followed by expressions.
func (d *Dataset) sentences() []PhraseEntry {
	out := make([]PhraseEntry, 0, len(d.Phrases)+len(d.Expressions))
	out = append(out, d.Phrases...)
	out = append(out, d.Expressions...)
	return out
}

// Item is one generated quiz question. The set of implementations is closed;
// callers switch over the concrete types.
type Item interface {
	Type() Type
	Prompt() string
	isItem()
}

// MultipleChoice asks for the source word given its target gloss.
type MultipleChoice struct {
	Question string       `json:"question"`
	Correct  VocabEntry   `json:"correct"`
	Options  []VocabEntry `json:"options"`
}

// CorrectIndex returns the position of the correct option, or -1.
func (q *MultipleChoice) CorrectIndex() int {
	for i, o := range q.Options {
		if o.Source == q.Correct.Source {
			return i
		}
	}
	return -1
}

// Matching pairs each shuffled target back to its source.
type Matching struct {
	// Pairs holds the original source to target mapping used for grading.
	Pairs []VocabEntry `json:"pairs"`
	// Targets is the shuffled target column shown to the learner.
	Targets []string `json:"targets"`
}

// FillBlank hides one word of a phrase.
type FillBlank struct {
	Phrase     PhraseEntry `json:"phrase"`
	Words      []string    `json:"words"`
	BlankIndex int         `json:"blankIndex"`
	Correct    string      `json:"correct"`
}

// Display returns the phrase with the blanked word replaced by underscores.
func (q *FillBlank) Display() string {
	out := make([]string, len(q.Words))
	copy(out, q.Words)
	if q.BlankIndex >= 0 && q.BlankIndex < len(out) {
		w := out[q.BlankIndex]
		lead, _, trail := splitPunct(w)
		out[q.BlankIndex] = lead + "_____" + trail
	}
	return strings.Join(out, " ")
}

// Flashcard is a two-sided card graded by self-report.
type Flashcard struct {
	Entry VocabEntry `json:"entry"`
	Front string     `json:"front"`
	Back  string     `json:"back"`
}

// LetterPicker asks the learner to assemble a word from shuffled letters.
type LetterPicker struct {
	Entry   VocabEntry `json:"entry"`
	Letters []string   `json:"letters"`
	Correct string     `json:"correct"`
}

// WordOrder asks the learner to restore the order of a phrase.
type WordOrder struct {
	Phrase    PhraseEntry `json:"phrase"`
	Scrambled []string    `json:"scrambled"`
	Correct   string      `json:"correct"`
}

// AudioQuiz asks the learner to type what they hear.
type AudioQuiz struct {
	Entry         VocabEntry `json:"entry"`
	Pronunciation string     `json:"pronunciation"`
	Correct       string     `json:"correct"`
	// AudioSource is the text actually read aloud. It may differ from Correct.
	AudioSource string `json:"audioSource"`
}

func (*MultipleChoice) Type() Type { return TypeMultipleChoice }
func (*Matching) Type() Type       { return TypeMatching }
func (*FillBlank) Type() Type      { return TypeFillBlank }
func (*Flashcard) Type() Type      { return TypeFlashcard }
func (*LetterPicker) Type() Type   { return TypeLetterPicker }
func (*WordOrder) Type() Type      { return TypeWordOrder }
func (*AudioQuiz) Type() Type      { return TypeAudioQuiz }

func (q *MultipleChoice) Prompt() string { return q.Question }
func (q *Matching) Prompt() string       { return "Match each Italian word with its meaning." }
func (q *FillBlank) Prompt() string {
	return fmt.Sprintf("Complete the sentence: %s (%s)", q.Display(), q.Phrase.Target)
}
func (q *Flashcard) Prompt() string    { return q.Front }
func (q *LetterPicker) Prompt() string { return fmt.Sprintf("Spell the Italian for %q.", q.Entry.Target) }
func (q *WordOrder) Prompt() string {
	return fmt.Sprintf("Put the words in order: %q", q.Phrase.Target)
}
func (q *AudioQuiz) Prompt() string {
	return fmt.Sprintf("Listen and type what you hear: /%s/", q.Pronunciation)
}

func (*MultipleChoice) isItem() {}
func (*Matching) isItem()       {}
func (*FillBlank) isItem()      {}
func (*Flashcard) isItem()      {}
func (*LetterPicker) isItem()   {}
func (*WordOrder) isItem()      {}
func (*AudioQuiz) isItem()      {}

// Answer carries a learner response. Which fields are read depends on the
// item type.
type Answer struct {
	// Text is the typed answer, or the chosen option for multiple choice.
	Text string `json:"text,omitempty"`
	// Pairs maps each source term to the target the learner chose.
	Pairs map[string]string `json:"pairs,omitempty"`
	// Letters are the tiles clicked in order for a letter picker.
	Letters []string `json:"letters,omitempty"`
	// Words are the arranged words for a word order item.
	Words []string `json:"words,omitempty"`
	// Knew is the flashcard self-report.
	Knew bool `json:"knew,omitempty"`
}

// TextAnswer is shorthand for a free-text answer.
func TextAnswer(s string) Answer {
	return Answer{Text: s}
}

// Verdict is the grading result for one answer.
type Verdict struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
	// Matched and Total report partial progress for matching items.
	Matched int `json:"matched,omitempty"`
	Total   int `json:"total,omitempty"`
}
