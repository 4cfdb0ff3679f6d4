package server

import "github.com/abhisek/capisco/internal/quiz"

// ItemView is what a client needs to render a quiz item. Answers stay on the
// server; only the flashcard back is sent because that card is self-graded.
type ItemView struct {
	// Options are the multiple choice answers, in display order.
	Options []string `json:"options,omitempty"`
	// Sources and Targets are the two matching columns. Targets is shuffled.
	Sources []string `json:"sources,omitempty"`
	Targets []string `json:"targets,omitempty"`
	// Display is the fill-in sentence with its blank.
	Display string `json:"display,omitempty"`
	// Gloss is the meaning of the word or phrase being asked for.
	Gloss string `json:"gloss,omitempty"`
	Front string `json:"front,omitempty"`
	Back  string `json:"back,omitempty"`
	// Letters are the letter picker tiles, distractors included.
	Letters []string `json:"letters,omitempty"`
	// Words are the scrambled words of a word order item.
	Words         []string `json:"words,omitempty"`
	Pronunciation string   `json:"pronunciation,omitempty"`
}

func itemView(item quiz.Item) ItemView {
	switch q := item.(type) {
	case *quiz.MultipleChoice:
		v := ItemView{Gloss: q.Correct.Target}
		for _, o := range q.Options {
			v.Options = append(v.Options, o.Source)
		}
		return v
	case *quiz.Matching:
		v := ItemView{Targets: q.Targets}
		for _, p := range q.Pairs {
			v.Sources = append(v.Sources, p.Source)
		}
		return v
	case *quiz.FillBlank:
		return ItemView{Display: q.Display(), Gloss: q.Phrase.Target}
	case *quiz.Flashcard:
		return ItemView{Front: q.Front, Back: q.Back}
	case *quiz.LetterPicker:
		return ItemView{Letters: q.Letters, Gloss: q.Entry.Target}
	case *quiz.WordOrder:
		return ItemView{Words: q.Scrambled, Gloss: q.Phrase.Target}
	case *quiz.AudioQuiz:
		return ItemView{Pronunciation: q.Pronunciation}
	default:
		return ItemView{}
	}
}
