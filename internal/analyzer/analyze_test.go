package analyzer

import (
	"slices"
	"strings"
	"testing"
)

const seasonsMonologue = `Ciao a tutti! Mi chiamo Marco e oggi parleremo del tempo.
In Italia, abbiamo quattro stagioni: primavera, estate, autunno e inverno.
Mi piace molto l'estate perché fa caldo e posso andare al mare.
E voi, quale stagione preferite? La primavera è bella perché i fiori sbocciano.
L'autunno ha colori meravigliosi, e l'inverno... beh, fa freddo ma è romantico.
Oggi il tempo è nuvoloso, ma domani dovrebbe fare bel tempo.
Preferisco quando c'è il sole. Il sole mi rende felice!`

func TestAnalyze_SeasonsMonologue(t *testing.T) {
	a := Analyze(seasonsMonologue, "")

	if a.DetectedLanguage != "it" {
		t.Errorf("DetectedLanguage = %q, want it", a.DetectedLanguage)
	}
	if a.DifficultyLevel != DifficultyBeginner {
		t.Errorf("DifficultyLevel = %q, want beginner", a.DifficultyLevel)
	}
	if !slices.Contains(a.Topics, "weather") {
		t.Errorf("Topics = %v, want weather", a.Topics)
	}
	if !slices.Contains(a.Topics, "travel") {
		t.Errorf("Topics = %v, want travel (mare)", a.Topics)
	}
	want := []string{"Weather & Climate", "Seasons", "Personal Preferences"}
	if !slices.Equal(a.KeyThemes, want) {
		t.Errorf("KeyThemes = %v, want %v", a.KeyThemes, want)
	}
	if a.WordCount != len(strings.Fields(seasonsMonologue)) {
		t.Errorf("WordCount = %d", a.WordCount)
	}
	if a.EstimatedStudyTimeMinutes != 5 {
		t.Errorf("EstimatedStudyTimeMinutes = %d, want 5", a.EstimatedStudyTimeMinutes)
	}
}

func TestAnalyze_LanguageHint(t *testing.T) {
	a := Analyze("Buongiorno.", " es ")
	if a.DetectedLanguage != "es" {
		t.Errorf("DetectedLanguage = %q, want es", a.DetectedLanguage)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	a := Analyze("", "")
	if a.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", a.WordCount)
	}
	if a.DifficultyLevel != DifficultyBeginner {
		t.Errorf("DifficultyLevel = %q, want beginner", a.DifficultyLevel)
	}
	if !slices.Equal(a.Topics, []string{"general conversation"}) {
		t.Errorf("Topics = %v", a.Topics)
	}
	if !slices.Equal(a.KeyThemes, []string{"Daily Conversation"}) {
		t.Errorf("KeyThemes = %v", a.KeyThemes)
	}
	if a.EstimatedStudyTimeMinutes != 0 {
		t.Errorf("EstimatedStudyTimeMinutes = %d, want 0", a.EstimatedStudyTimeMinutes)
	}
}

func TestDifficultyFor(t *testing.T) {
	tests := []struct {
		words int
		avg   float64
		want  Difficulty
	}{
		{10, 5, DifficultyBeginner},
		{500, 15, DifficultyBeginner},
		{501, 5, DifficultyIntermediate},
		{100, 15.5, DifficultyIntermediate},
		{1000, 20, DifficultyIntermediate},
		{1001, 5, DifficultyAdvanced},
		{100, 21, DifficultyAdvanced},
	}
	for _, tt := range tests {
		if got := difficultyFor(tt.words, tt.avg); got != tt.want {
			t.Errorf("difficultyFor(%d, %.1f) = %q, want %q", tt.words, tt.avg, got, tt.want)
		}
	}
}

func TestAnalyze_Topics(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Vorrei mangiare una pizza.", []string{"food"}},
		{"La mia famiglia lavora in ufficio.", []string{"family", "work"}},
		{"Prendo il treno per la stazione.", []string{"travel"}},
		{"Al mercato il prezzo è basso.", []string{"shopping"}},
		{"Gioco a calcio.", []string{"hobbies"}},
	}
	for _, tt := range tests {
		got := Analyze(tt.text, "").Topics
		if !slices.Equal(got, tt.want) {
			t.Errorf("Analyze(%q).Topics = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestAnalyze_ThemeNeedsEveryGroup(t *testing.T) {
	// "tempo" alone does not make a weather theme.
	a := Analyze("Non ho tempo.", "")
	if slices.Contains(a.KeyThemes, "Weather & Climate") {
		t.Errorf("KeyThemes = %v, did not expect Weather & Climate", a.KeyThemes)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := Analyze(seasonsMonologue, "it")
	b := Analyze(seasonsMonologue, "it")
	if !slices.Equal(a.Topics, b.Topics) || !slices.Equal(a.KeyThemes, b.KeyThemes) ||
		a.WordCount != b.WordCount || a.DifficultyLevel != b.DifficultyLevel {
		t.Errorf("Analyze not deterministic: %+v vs %+v", a, b)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("Uno. Due!  Tre?... ")
	want := []string{"Uno", "Due", "Tre"}
	if !slices.Equal(got, want) {
		t.Errorf("splitSentences = %q, want %q", got, want)
	}
}
