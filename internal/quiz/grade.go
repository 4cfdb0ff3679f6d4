package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// Grade checks answer against item. It is pure: the same pair always yields
// the same verdict. The score moves once per item, in ItemState.Complete.
//
// Normalization rules:
//   - free-text types compare lowercased, trimmed text, then an accent-folded
//     form with leading articles dropped
//   - listening accepts either the nominal answer or the audio source text
//   - matching passes only when every pair is right; Matched reports progress
//   - word order requires the exact single-space join of the words
//   - flashcards are self-reported
func Grade(item Item, answer Answer) Verdict {
	switch q := item.(type) {
	case *MultipleChoice:
		return gradeMultipleChoice(q, answer)
	case *Matching:
		return gradeMatching(q, answer)
	case *FillBlank:
		return gradeText(answer.Text, q.Correct, q.Phrase.Note)
	case *Flashcard:
		return gradeFlashcard(q, answer)
	case *LetterPicker:
		return gradeLetterPicker(q, answer)
	case *WordOrder:
		return gradeWordOrder(q, answer)
	case *AudioQuiz:
		return gradeAudio(q, answer)
	default:
		return Verdict{Explanation: "This question type cannot be graded."}
	}
}

func gradeMultipleChoice(q *MultipleChoice, answer Answer) Verdict {
	chosen := strings.TrimSpace(answer.Text)
	if idx, err := strconv.Atoi(chosen); err == nil && idx >= 1 && idx <= len(q.Options) {
		chosen = q.Options[idx-1].Source
	}

	correct := textMatches(chosen, q.Correct.Source)
	var b strings.Builder
	if correct {
		fmt.Fprintf(&b, "Correct! %q means %q.", q.Correct.Source, q.Correct.Target)
	} else {
		fmt.Fprintf(&b, "The correct answer is %q (%s).", q.Correct.Source, q.Correct.Target)
	}
	appendNote(&b, q.Correct.Note)
	return Verdict{Correct: correct, Explanation: b.String()}
}

func gradeMatching(q *Matching, answer Answer) Verdict {
	total := len(q.Pairs)
	matched := 0
	var misses []string
	for _, p := range q.Pairs {
		got, ok := answer.Pairs[p.Source]
		if ok && normalize(got) == normalize(p.Target) {
			matched++
			continue
		}
		misses = append(misses, fmt.Sprintf("%q = %q", p.Source, p.Target))
	}

	correct := total > 0 && matched == total
	var b strings.Builder
	if correct {
		fmt.Fprintf(&b, "Perfect matching! All %d pairs are correct.", total)
	} else {
		fmt.Fprintf(&b, "You matched %d out of %d correctly.", matched, total)
		if len(misses) > 0 {
			b.WriteString(" Correct pairs: ")
			b.WriteString(strings.Join(misses, ", "))
			b.WriteString(".")
		}
	}
	return Verdict{Correct: correct, Explanation: b.String(), Matched: matched, Total: total}
}

func gradeFlashcard(q *Flashcard, answer Answer) Verdict {
	var b strings.Builder
	if answer.Knew {
		fmt.Fprintf(&b, "Great! %q means %q.", q.Front, q.Back)
	} else {
		fmt.Fprintf(&b, "Keep practicing: %q means %q.", q.Front, q.Back)
	}
	appendNote(&b, q.Entry.Note)
	return Verdict{Correct: answer.Knew, Explanation: b.String()}
}

// gradeLetterPicker prefers typed input; clicked tiles are used only when
// nothing was typed.
func gradeLetterPicker(q *LetterPicker, answer Answer) Verdict {
	if strings.TrimSpace(answer.Text) != "" {
		return gradeText(answer.Text, q.Correct, q.Entry.Note)
	}

	assembled := strings.Join(answer.Letters, "")
	want := tileSpelling(q.Correct)
	correct := assembled != "" && FoldAccents(normalize(assembled)) == FoldAccents(normalize(want))
	return textVerdict(correct, q.Correct, q.Entry.Note)
}

func gradeWordOrder(q *WordOrder, answer Answer) Verdict {
	got := answer.Text
	if len(answer.Words) > 0 {
		got = strings.Join(answer.Words, " ")
	}
	correct := got == q.Correct

	var b strings.Builder
	if correct {
		fmt.Fprintf(&b, "Correct! The sentence is %q.", q.Correct)
	} else {
		fmt.Fprintf(&b, "The correct order is %q.", q.Correct)
	}
	appendNote(&b, q.Phrase.Note)
	return Verdict{Correct: correct, Explanation: b.String()}
}

func gradeAudio(q *AudioQuiz, answer Answer) Verdict {
	correct := textMatches(answer.Text, q.Correct, q.AudioSource)
	return textVerdict(correct, q.Correct, q.Entry.Note)
}

func gradeText(got, want, note string) Verdict {
	return textVerdict(textMatches(got, want), want, note)
}

func textVerdict(correct bool, want, note string) Verdict {
	var b strings.Builder
	if correct {
		fmt.Fprintf(&b, "Correct! The answer is %q.", want)
	} else {
		fmt.Fprintf(&b, "The correct answer is %q.", want)
	}
	appendNote(&b, note)
	return Verdict{Correct: correct, Explanation: b.String()}
}

func appendNote(b *strings.Builder, note string) {
	if note = strings.TrimSpace(note); note != "" {
		b.WriteString(" ")
		b.WriteString(note)
	}
}
