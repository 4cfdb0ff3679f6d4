package quiz

import (
	"fmt"
	"strings"
	"unicode"
)

// Minimum dataset sizes per type.
const (
	minMultipleChoiceVocab = 4
	minMatchingVocab       = 3
	matchingPairs          = 4
	maxDistractorLetters   = 6
)

// distractorAlphabet is the pool letter-picker distractors are drawn from.
const distractorAlphabet = "abcdefghilmnopqrstuvz"

// Generate builds one item of type t from ds. It returns a nil item and a
// nil error when ds lacks the entries the type needs; callers skip rendering
// in that case. TypeMixed must be resolved with SelectType first.
func Generate(ds *Dataset, t Type, rng Rand) (Item, error) {
	if ds == nil {
		return nil, nil
	}
	switch t {
	case TypeMultipleChoice:
		return generateMultipleChoice(ds, rng), nil
	case TypeMatching:
		return generateMatching(ds, rng), nil
	case TypeFillBlank:
		return generateFillBlank(ds, rng), nil
	case TypeFlashcard:
		return generateFlashcard(ds, rng), nil
	case TypeLetterPicker:
		return generateLetterPicker(ds, rng), nil
	case TypeWordOrder:
		return generateWordOrder(ds, rng), nil
	case TypeAudioQuiz:
		return generateAudioQuiz(ds, rng), nil
	default:
		return nil, fmt.Errorf("generate %q: %w", t, ErrUnknownType)
	}
}

// Supports reports whether ds has enough entries to build an item of type t.
func Supports(ds *Dataset, t Type) bool {
	if ds == nil {
		return false
	}
	switch t {
	case TypeMultipleChoice:
		return uniqueSources(ds.Vocabulary) >= minMultipleChoiceVocab
	case TypeMatching:
		return len(ds.Vocabulary) >= minMatchingVocab
	case TypeFillBlank:
		return len(usablePhrases(ds, 1)) > 0
	case TypeWordOrder:
		return len(usablePhrases(ds, 2)) > 0
	case TypeFlashcard, TypeLetterPicker, TypeAudioQuiz:
		return len(ds.Vocabulary) > 0
	default:
		return false
	}
}

// SupportedTypes lists the concrete types ds can serve, in canonical order.
func SupportedTypes(ds *Dataset) []Type {
	var out []Type
	for _, t := range AllTypes {
		if Supports(ds, t) {
			out = append(out, t)
		}
	}
	return out
}

// generateMultipleChoice produces nil when the dataset holds fewer than four
// distinct source words.
func generateMultipleChoice(ds *Dataset, rng Rand) Item {
	if !Supports(ds, TypeMultipleChoice) {
		return nil
	}
	vocab := ds.Vocabulary
	correct := vocab[rng.IntN(len(vocab))]

	options := []VocabEntry{correct}
	seen := map[string]bool{correct.Source: true}
	for len(options) < minMultipleChoiceVocab {
		cand := vocab[rng.IntN(len(vocab))]
		if seen[cand.Source] {
			continue
		}
		seen[cand.Source] = true
		options = append(options, cand)
	}
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return &MultipleChoice{
		Question: fmt.Sprintf("What is the Italian word for %q?", correct.Target),
		Correct:  correct,
		Options:  options,
	}
}

func generateMatching(ds *Dataset, rng Rand) Item {
	if !Supports(ds, TypeMatching) {
		return nil
	}
	n := min(matchingPairs, len(ds.Vocabulary))
	pairs := make([]VocabEntry, n)
	copy(pairs, ds.Vocabulary[:n])

	targets := make([]string, n)
	for i, p := range pairs {
		targets[i] = p.Target
	}
	rng.Shuffle(n, func(i, j int) { targets[i], targets[j] = targets[j], targets[i] })

	return &Matching{Pairs: pairs, Targets: targets}
}

func generateFillBlank(ds *Dataset, rng Rand) Item {
	phrases := usablePhrases(ds, 1)
	if len(phrases) == 0 {
		return nil
	}
	p := phrases[rng.IntN(len(phrases))]
	words := strings.Fields(p.Source)

	// Only words with at least one letter can be blanked.
	var candidates []int
	for i, w := range words {
		if _, core, _ := splitPunct(w); core != "" {
			candidates = append(candidates, i)
		}
	}
	idx := candidates[rng.IntN(len(candidates))]
	_, core, _ := splitPunct(words[idx])

	return &FillBlank{
		Phrase:     p,
		Words:      words,
		BlankIndex: idx,
		Correct:    strings.ToLower(core),
	}
}

func generateFlashcard(ds *Dataset, rng Rand) Item {
	if len(ds.Vocabulary) == 0 {
		return nil
	}
	e := ds.Vocabulary[rng.IntN(len(ds.Vocabulary))]
	return &Flashcard{Entry: e, Front: e.Source, Back: e.Target}
}

func generateLetterPicker(ds *Dataset, rng Rand) Item {
	if len(ds.Vocabulary) == 0 {
		return nil
	}
	e := ds.Vocabulary[rng.IntN(len(ds.Vocabulary))]
	word := strings.ToLower(e.Source)

	var letters []string
	present := make(map[rune]bool)
	for _, r := range word {
		if !isTile(r) {
			continue
		}
		letters = append(letters, string(r))
		present[r] = true
		present[[]rune(FoldAccents(string(r)))[0]] = true
	}

	var pool []string
	for _, r := range distractorAlphabet {
		if !present[r] {
			pool = append(pool, string(r))
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	letters = append(letters, pool[:min(maxDistractorLetters, len(pool))]...)
	rng.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })

	return &LetterPicker{Entry: e, Letters: letters, Correct: word}
}

// generateWordOrder may return the phrase in its original order; the
// identity permutation is a legal draw.
func generateWordOrder(ds *Dataset, rng Rand) Item {
	phrases := usablePhrases(ds, 2)
	if len(phrases) == 0 {
		return nil
	}
	p := phrases[rng.IntN(len(phrases))]
	words := strings.Fields(p.Source)
	scrambled := make([]string, len(words))
	copy(scrambled, words)
	rng.Shuffle(len(scrambled), func(i, j int) { scrambled[i], scrambled[j] = scrambled[j], scrambled[i] })

	return &WordOrder{
		Phrase:    p,
		Scrambled: scrambled,
		Correct:   strings.Join(words, " "),
	}
}

func generateAudioQuiz(ds *Dataset, rng Rand) Item {
	if len(ds.Vocabulary) == 0 {
		return nil
	}
	e := ds.Vocabulary[rng.IntN(len(ds.Vocabulary))]
	audio := e.Audio
	if audio == "" {
		audio = e.Source
	}
	return &AudioQuiz{
		Entry:         e,
		Pronunciation: Pronunciation(e.Source),
		Correct:       e.Source,
		AudioSource:   audio,
	}
}

// usablePhrases returns phrases and expressions with at least minWords words,
// one of which contains a letter.
func usablePhrases(ds *Dataset, minWords int) []PhraseEntry {
	var out []PhraseEntry
	for _, p := range ds.sentences() {
		words := strings.Fields(p.Source)
		if len(words) < minWords {
			continue
		}
		if strings.IndexFunc(p.Source, unicode.IsLetter) < 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

func uniqueSources(vocab []VocabEntry) int {
	seen := make(map[string]bool, len(vocab))
	for _, v := range vocab {
		seen[v.Source] = true
	}
	return len(seen)
}
