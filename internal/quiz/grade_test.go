package quiz

import (
	"strings"
	"testing"
)

func TestGradeTextAnswers(t *testing.T) {
	tests := []struct {
		name   string
		item   Item
		answer string
		want   bool
	}{
		{"fill blank exact", &FillBlank{Correct: "città"}, "città", true},
		{"fill blank accent folded", &FillBlank{Correct: "città"}, "citta", true},
		{"fill blank upper and spaces", &FillBlank{Correct: "perché"}, "PERCHE ", true},
		{"fill blank wrong", &FillBlank{Correct: "perché"}, "perche no", false},
		{"fill blank empty", &FillBlank{Correct: "sole"}, "   ", false},
		{"letter picker typed case", &LetterPicker{Correct: "Gioiosa"}, "  GIOIOSA  ", true},
		{"letter picker typed wrong", &LetterPicker{Correct: "gioiosa"}, "gioioso", false},
		{"audio nominal", &AudioQuiz{Correct: "Abito a Milano", AudioSource: "Vengo da Londra"}, "abito a milano", true},
		{"audio matches spoken text", &AudioQuiz{Correct: "Abito a Milano", AudioSource: "Vengo da Londra"}, "vengo da londra", true},
		{"audio neither", &AudioQuiz{Correct: "Abito a Milano", AudioSource: "Vengo da Londra"}, "vengo da milano", false},
		{"audio accent", &AudioQuiz{Correct: "È nuvoloso", AudioSource: "è nuvoloso"}, "e nuvoloso", true},
		{"article dropped", &AudioQuiz{Correct: "la primavera", AudioSource: "la primavera"}, "primavera", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(tt.item, TextAnswer(tt.answer))
			if got.Correct != tt.want {
				t.Errorf("Grade(%q).Correct = %v, want %v (%s)", tt.answer, got.Correct, tt.want, got.Explanation)
			}
		})
	}
}

func TestGradeMultipleChoice(t *testing.T) {
	q := &MultipleChoice{
		Correct: VocabEntry{Source: "pane", Target: "bread"},
		Options: []VocabEntry{
			{Source: "latte", Target: "milk"},
			{Source: "pane", Target: "bread"},
			{Source: "burro", Target: "butter"},
			{Source: "mele", Target: "apples"},
		},
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{"pane", true},
		{"PANE", true},
		{"2", true},
		{"1", false},
		{"latte", false},
		{"9", false},
	}
	for _, tt := range tests {
		got := Grade(q, TextAnswer(tt.answer))
		if got.Correct != tt.want {
			t.Errorf("Grade(%q).Correct = %v, want %v", tt.answer, got.Correct, tt.want)
		}
		if !strings.Contains(got.Explanation, "pane") {
			t.Errorf("explanation %q should name the correct answer", got.Explanation)
		}
	}
}

func TestGradeMatching(t *testing.T) {
	q := &Matching{
		Pairs: []VocabEntry{
			{Source: "primavera", Target: "spring"},
			{Source: "estate", Target: "summer"},
			{Source: "autunno", Target: "autumn"},
			{Source: "inverno", Target: "winter"},
		},
		Targets: []string{"winter", "spring", "autumn", "summer"},
	}

	all := Answer{Pairs: map[string]string{
		"primavera": "spring", "estate": "summer", "autunno": "autumn", "inverno": "winter",
	}}
	v := Grade(q, all)
	if !v.Correct || v.Matched != 4 || v.Total != 4 {
		t.Errorf("all pairs: got %+v, want correct 4/4", v)
	}
	if !strings.HasPrefix(v.Explanation, "Perfect matching!") {
		t.Errorf("explanation = %q", v.Explanation)
	}

	partial := Answer{Pairs: map[string]string{
		"primavera": "spring", "estate": "winter", "autunno": "autumn", "inverno": "summer",
	}}
	v = Grade(q, partial)
	if v.Correct {
		t.Error("partial matching should not pass")
	}
	if v.Matched != 2 || v.Total != 4 {
		t.Errorf("matched = %d/%d, want 2/4", v.Matched, v.Total)
	}
	if !strings.Contains(v.Explanation, "2 out of 4") {
		t.Errorf("explanation = %q, want k out of n", v.Explanation)
	}

	if v := Grade(q, Answer{}); v.Correct || v.Matched != 0 {
		t.Errorf("empty answer: got %+v", v)
	}
}

func TestGradeWordOrderExact(t *testing.T) {
	q := &WordOrder{Correct: "Il sole mi rende felice"}

	tests := []struct {
		name   string
		answer Answer
		want   bool
	}{
		{"words joined", Answer{Words: []string{"Il", "sole", "mi", "rende", "felice"}}, true},
		{"text exact", TextAnswer("Il sole mi rende felice"), true},
		{"lowercase", TextAnswer("il sole mi rende felice"), false},
		{"double space", TextAnswer("Il sole  mi rende felice"), false},
		{"trailing space", TextAnswer("Il sole mi rende felice "), false},
		{"wrong order", Answer{Words: []string{"sole", "Il", "mi", "rende", "felice"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(q, tt.answer).Correct; got != tt.want {
				t.Errorf("Correct = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradeLetterPickerPaths(t *testing.T) {
	q := &LetterPicker{Correct: "sole", Letters: []string{"e", "s", "o", "l", "z"}}

	if v := Grade(q, Answer{Letters: []string{"s", "o", "l", "e"}}); !v.Correct {
		t.Errorf("clicked letters should pass: %s", v.Explanation)
	}
	if v := Grade(q, Answer{Letters: []string{"s", "o", "l", "z"}}); v.Correct {
		t.Error("wrong clicked letters should fail")
	}
	// Typed input wins over clicked tiles.
	if v := Grade(q, Answer{Text: "mare", Letters: []string{"s", "o", "l", "e"}}); v.Correct {
		t.Error("typed answer should take precedence over letters")
	}
	if v := Grade(q, Answer{Text: "SOLE", Letters: []string{"z"}}); !v.Correct {
		t.Error("typed correct answer should pass")
	}
}

func TestGradeLetterPickerPunctuatedWord(t *testing.T) {
	tests := []struct {
		word    string
		clicked []string
	}{
		{"c'è", []string{"c", "è"}},
		{"dell'anno", []string{"d", "e", "l", "l", "a", "n", "n", "o"}},
		{"dopo-sci", []string{"d", "o", "p", "o", "s", "c", "i"}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			ds := &Dataset{Vocabulary: []VocabEntry{{Source: tt.word, Target: "x"}}}
			item, err := Generate(ds, TypeLetterPicker, NewRand(4))
			if err != nil {
				t.Fatal(err)
			}
			q := item.(*LetterPicker)
			for _, l := range q.Letters {
				if l == "'" || l == "-" {
					t.Fatalf("punctuation %q offered as a tile", l)
				}
			}
			if v := Grade(q, Answer{Letters: tt.clicked}); !v.Correct {
				t.Errorf("clicking %v for %q should pass: %s", tt.clicked, tt.word, v.Explanation)
			}
			if v := Grade(q, TextAnswer(tt.word)); !v.Correct {
				t.Errorf("typing %q should pass: %s", tt.word, v.Explanation)
			}
		})
	}
}

func TestGradeFlashcardSelfReport(t *testing.T) {
	q := &Flashcard{Front: "sole", Back: "sun", Entry: VocabEntry{Source: "sole", Target: "sun", Note: "From Latin 'sol'."}}
	knew := Grade(q, Answer{Knew: true})
	if !knew.Correct {
		t.Error("knew it should be correct")
	}
	if !strings.Contains(knew.Explanation, "From Latin") {
		t.Errorf("explanation %q should include the note", knew.Explanation)
	}
	if Grade(q, Answer{Knew: false}).Correct {
		t.Error("needs practice should be incorrect")
	}
}

func TestGradeIdempotent(t *testing.T) {
	items := []Item{
		&FillBlank{Correct: "città"},
		&AudioQuiz{Correct: "Abito a Milano", AudioSource: "Vengo da Londra"},
		&WordOrder{Correct: "Mi piace"},
	}
	for _, item := range items {
		a := TextAnswer("Citta")
		first := Grade(item, a)
		for range 3 {
			if got := Grade(item, a); got != first {
				t.Errorf("%s: Grade changed from %+v to %+v", item.Type(), first, got)
			}
		}
	}
}

func TestGradeIncludesNotes(t *testing.T) {
	q := &FillBlank{Correct: "vorrei", Phrase: PhraseEntry{Note: "Conditional of 'volere'."}}
	v := Grade(q, TextAnswer("voglio"))
	if v.Correct {
		t.Fatal("expected incorrect")
	}
	if !strings.Contains(v.Explanation, `"vorrei"`) || !strings.Contains(v.Explanation, "volere") {
		t.Errorf("explanation = %q", v.Explanation)
	}
}

func TestFoldAccents(t *testing.T) {
	tests := []struct{ in, want string }{
		{"città", "citta"},
		{"perché", "perche"},
		{"È", "E"},
		{"però", "pero"},
		{"sole", "sole"},
	}
	for _, tt := range tests {
		if got := FoldAccents(tt.in); got != tt.want {
			t.Errorf("FoldAccents(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreRecord(t *testing.T) {
	var s Score
	s.Record(Verdict{Correct: true})
	s.Record(Verdict{Correct: false})
	s.Record(Verdict{Correct: true})
	if s.Correct != 2 || s.Total != 3 {
		t.Errorf("score = %+v, want 2/3", s)
	}
	if s.Percent() != 66 {
		t.Errorf("Percent() = %d, want 66", s.Percent())
	}
	s.Reset()
	if s != (Score{}) {
		t.Errorf("after Reset score = %+v", s)
	}
}
