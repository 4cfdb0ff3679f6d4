package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/capisco/internal/quiz"
)

// itemWords returns the source-language words an item exercises. Progress
// is tracked per word, so a matching round counts for every pair.
func itemWords(item quiz.Item) []string {
	switch q := item.(type) {
	case *quiz.MultipleChoice:
		return []string{q.Correct.Source}
	case *quiz.Matching:
		out := make([]string, len(q.Pairs))
		for i, p := range q.Pairs {
			out[i] = p.Source
		}
		return out
	case *quiz.FillBlank:
		return []string{q.Correct}
	case *quiz.Flashcard:
		return []string{q.Entry.Source}
	case *quiz.LetterPicker:
		return []string{q.Entry.Source}
	case *quiz.WordOrder:
		return []string{q.Phrase.Source}
	case *quiz.AudioQuiz:
		return []string{q.Entry.Source}
	}
	return nil
}

func primaryWord(item quiz.Item) string {
	return strings.Join(itemWords(item), ", ")
}

func correctAnswer(item quiz.Item) string {
	switch q := item.(type) {
	case *quiz.MultipleChoice:
		return q.Correct.Source
	case *quiz.Matching:
		pairs := make([]string, len(q.Pairs))
		for i, p := range q.Pairs {
			pairs[i] = p.Source + "=" + p.Target
		}
		return strings.Join(pairs, ", ")
	case *quiz.FillBlank:
		return q.Correct
	case *quiz.Flashcard:
		return q.Back
	case *quiz.LetterPicker:
		return q.Correct
	case *quiz.WordOrder:
		return q.Correct
	case *quiz.AudioQuiz:
		return q.Correct
	}
	return ""
}

// describeAnswer flattens an answer into the text stored with its event.
func describeAnswer(a quiz.Answer) string {
	switch {
	case a.Text != "":
		return a.Text
	case len(a.Pairs) > 0:
		keys := make([]string, 0, len(a.Pairs))
		for k := range a.Pairs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + a.Pairs[k]
		}
		return strings.Join(parts, ", ")
	case len(a.Letters) > 0:
		return strings.Join(a.Letters, "")
	case len(a.Words) > 0:
		return strings.Join(a.Words, " ")
	}
	return fmt.Sprintf("knew=%t", a.Knew)
}
