package quiz

import (
	"slices"
	"strings"
	"testing"
)

func seasonsDataset() *Dataset {
	return &Dataset{
		Topic: "seasons",
		Vocabulary: []VocabEntry{
			{Source: "primavera", Target: "spring"},
			{Source: "estate", Target: "summer"},
			{Source: "autunno", Target: "autumn"},
			{Source: "inverno", Target: "winter"},
			{Source: "sole", Target: "sun"},
		},
		Phrases: []PhraseEntry{
			{Source: "Il sole mi rende felice", Target: "The sun makes me happy"},
		},
	}
}

func TestGenerateEveryType(t *testing.T) {
	ds := seasonsDataset()
	rng := NewRand(42)
	for _, typ := range AllTypes {
		item, err := Generate(ds, typ, rng)
		if err != nil {
			t.Fatalf("Generate(%s): %v", typ, err)
		}
		if item == nil {
			t.Fatalf("Generate(%s) returned nil for a full dataset", typ)
		}
		if item.Type() != typ {
			t.Errorf("item.Type() = %s, want %s", item.Type(), typ)
		}
		if item.Prompt() == "" {
			t.Errorf("%s: empty prompt", typ)
		}
	}
}

func TestGenerateInsufficientDataset(t *testing.T) {
	small := &Dataset{Vocabulary: []VocabEntry{
		{Source: "pane", Target: "bread"},
		{Source: "latte", Target: "milk"},
	}}
	rng := NewRand(3)

	tests := []struct {
		typ Type
		ds  *Dataset
	}{
		{TypeMultipleChoice, small},
		{TypeMatching, small},
		{TypeFillBlank, small},
		{TypeWordOrder, small},
		{TypeFlashcard, &Dataset{}},
		{TypeLetterPicker, &Dataset{}},
		{TypeAudioQuiz, &Dataset{}},
		{TypeWordOrder, &Dataset{Expressions: []PhraseEntry{{Source: "Vorrei", Target: "I would like"}}}},
	}
	for _, tt := range tests {
		item, err := Generate(tt.ds, tt.typ, rng)
		if err != nil {
			t.Errorf("Generate(%s) error: %v", tt.typ, err)
		}
		if item != nil {
			t.Errorf("Generate(%s) = %#v, want nil", tt.typ, item)
		}
	}
}

func TestGenerateUnknownType(t *testing.T) {
	if _, err := Generate(seasonsDataset(), TypeMixed, NewRand(1)); err == nil {
		t.Error("expected error for unresolved mixed type")
	}
}

func TestGenerateMultipleChoiceOptions(t *testing.T) {
	ds := seasonsDataset()
	for seed := uint64(0); seed < 30; seed++ {
		item, _ := Generate(ds, TypeMultipleChoice, NewRand(seed))
		q := item.(*MultipleChoice)
		if len(q.Options) != 4 {
			t.Fatalf("options = %d, want 4", len(q.Options))
		}
		seen := map[string]bool{}
		for _, o := range q.Options {
			if seen[o.Source] {
				t.Fatalf("duplicate option %q", o.Source)
			}
			seen[o.Source] = true
		}
		if q.CorrectIndex() < 0 {
			t.Fatalf("correct entry %q missing from options", q.Correct.Source)
		}
		if !strings.Contains(q.Question, q.Correct.Target) {
			t.Errorf("question %q should mention the gloss %q", q.Question, q.Correct.Target)
		}
	}
}

func TestGenerateMatchingKeepsMapping(t *testing.T) {
	ds := seasonsDataset()
	for seed := uint64(0); seed < 30; seed++ {
		item, _ := Generate(ds, TypeMatching, NewRand(seed))
		q := item.(*Matching)
		if len(q.Pairs) != 4 {
			t.Fatalf("pairs = %d, want 4", len(q.Pairs))
		}
		for i, p := range q.Pairs {
			if p != ds.Vocabulary[i] {
				t.Fatalf("pair %d = %+v, want original order %+v", i, p, ds.Vocabulary[i])
			}
		}
		targets := slices.Clone(q.Targets)
		slices.Sort(targets)
		want := []string{"autumn", "spring", "summer", "winter"}
		if !slices.Equal(targets, want) {
			t.Fatalf("targets %v are not a permutation of %v", q.Targets, want)
		}

		pairs := map[string]string{}
		for _, p := range q.Pairs {
			pairs[p.Source] = p.Target
		}
		if v := Grade(q, Answer{Pairs: pairs}); !v.Correct {
			t.Fatalf("grading against original mapping failed: %s", v.Explanation)
		}
	}
}

func TestGenerateFillBlank(t *testing.T) {
	ds := &Dataset{Phrases: []PhraseEntry{{Source: "Mi chiamo Alessia. Sono allegra.", Target: "My name is Alessia."}}}
	for seed := uint64(0); seed < 20; seed++ {
		item, _ := Generate(ds, TypeFillBlank, NewRand(seed))
		q := item.(*FillBlank)
		if q.Correct != strings.ToLower(q.Correct) {
			t.Errorf("correct %q should be lowercase", q.Correct)
		}
		if strings.ContainsAny(q.Correct, ".?!") {
			t.Errorf("correct %q should not carry punctuation", q.Correct)
		}
		if strings.Count(q.Display(), "_____") != 1 {
			t.Errorf("display %q should contain one blank", q.Display())
		}
		if v := Grade(q, TextAnswer(q.Correct)); !v.Correct {
			t.Errorf("own answer %q graded wrong", q.Correct)
		}
	}
}

func TestGenerateLetterPicker(t *testing.T) {
	ds := &Dataset{Vocabulary: []VocabEntry{{Source: "Gioiosa", Target: "Joyful"}}}
	item, _ := Generate(ds, TypeLetterPicker, NewRand(9))
	q := item.(*LetterPicker)
	if q.Correct != "gioiosa" {
		t.Errorf("correct = %q, want lowercase word", q.Correct)
	}
	if len(q.Letters) != len("gioiosa")+maxDistractorLetters {
		t.Errorf("letters = %d, want %d", len(q.Letters), len("gioiosa")+maxDistractorLetters)
	}
	counts := map[string]int{}
	for _, l := range q.Letters {
		counts[l]++
	}
	for _, r := range "gioiosa" {
		if counts[string(r)] == 0 {
			t.Errorf("letter %q missing from tiles", r)
		}
		counts[string(r)]--
	}
	for l, n := range counts {
		if n > 0 && strings.Contains("gioiosa", l) {
			t.Errorf("distractor %q duplicates a word letter", l)
		}
	}
}

func TestGenerateWordOrderPermutation(t *testing.T) {
	ds := seasonsDataset()
	item, _ := Generate(ds, TypeWordOrder, NewRand(5))
	q := item.(*WordOrder)
	got := slices.Clone(q.Scrambled)
	want := strings.Fields(ds.Phrases[0].Source)
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("scrambled %v is not a permutation of the phrase", q.Scrambled)
	}
	if q.Correct != ds.Phrases[0].Source {
		t.Errorf("correct = %q, want %q", q.Correct, ds.Phrases[0].Source)
	}
}

func TestGenerateAudioQuizPronunciation(t *testing.T) {
	ds := &Dataset{Vocabulary: []VocabEntry{{Source: "Primavera", Target: "Spring", Audio: "primavera"}}}
	q := mustGenerate(t, ds, TypeAudioQuiz).(*AudioQuiz)
	if q.Pronunciation != "pree-mah-VEH-rah" {
		t.Errorf("pronunciation = %q", q.Pronunciation)
	}

	ds = &Dataset{Vocabulary: []VocabEntry{{Source: "Brighton", Target: "Brighton"}}}
	q = mustGenerate(t, ds, TypeAudioQuiz).(*AudioQuiz)
	if q.Pronunciation != "Brighton" || q.AudioSource != "Brighton" {
		t.Errorf("fallback pronunciation = %q, audio = %q", q.Pronunciation, q.AudioSource)
	}
}

func TestGenerateReproducibleWithSeed(t *testing.T) {
	ds := seasonsDataset()
	a, _ := Generate(ds, TypeMultipleChoice, NewRand(11))
	b, _ := Generate(ds, TypeMultipleChoice, NewRand(11))
	qa, qb := a.(*MultipleChoice), b.(*MultipleChoice)
	if qa.Correct != qb.Correct || !slices.Equal(qa.Options, qb.Options) {
		t.Error("same seed should produce the same item")
	}
}

func mustGenerate(t *testing.T, ds *Dataset, typ Type) Item {
	t.Helper()
	item, err := Generate(ds, typ, NewRand(1))
	if err != nil || item == nil {
		t.Fatalf("Generate(%s) = %v, %v", typ, item, err)
	}
	return item
}
