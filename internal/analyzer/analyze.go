package analyzer

import (
	"strings"
)

// DefaultLanguage is used when no source language hint is given.
const DefaultLanguage = "it"

const (
	fallbackTopic = "general conversation"
	fallbackTheme = "Daily Conversation"
)

// Difficulty thresholds.
const (
	intermediateWordsPerSentence = 15
	intermediateWordCount        = 500
	advancedWordsPerSentence     = 20
	advancedWordCount            = 1000
)

type topicRule struct {
	name     string
	keywords []string
}

// topicRules is checked in order; every matching topic is reported.
var topicRules = []topicRule{
	{"food", []string{"mangiare", "cibo", "ristorante", "pizza", "pasta", "pane", "formaggio", "cucina", "gelato", "caffè"}},
	{"travel", []string{"viaggio", "viaggiare", "treno", "aereo", "albergo", "vacanza", "mare", "città", "stazione"}},
	{"family", []string{"famiglia", "madre", "padre", "fratello", "sorella", "figlio", "figlia", "nonna", "nonno"}},
	{"work", []string{"lavoro", "lavorare", "ufficio", "collega", "riunione", "progetto", "azienda"}},
	{"hobbies", []string{"sport", "musica", "leggere", "calcio", "giocare", "hobby", "cinema", "giardinaggio"}},
	{"weather", []string{"tempo", "pioggia", "sole", "caldo", "freddo", "neve", "nuvoloso", "vento"}},
	{"shopping", []string{"comprare", "negozio", "mercato", "prezzo", "costa", "euro", "saldi"}},
}

// themeRule matches when every group has at least one keyword present.
type themeRule struct {
	theme  string
	groups [][]string
}

var themeRules = []themeRule{
	{"Weather & Climate", [][]string{{"tempo"}, {"pioggia", "sole", "caldo", "freddo", "nuvoloso"}}},
	{"Seasons", [][]string{{"primavera", "estate", "autunno", "inverno"}, {"stagion"}}},
	{"Food & Dining", [][]string{{"mangiare", "cibo", "ristorante", "pizza", "pasta"}, {"piace", "buono", "delizioso", "vorrei"}}},
	{"Travel & Places", [][]string{{"viaggio", "viaggiare", "treno", "aereo"}, {"città", "paese", "vacanza", "andare"}}},
	{"Family & Relationships", [][]string{{"famiglia", "madre", "padre"}, {"casa", "figli", "fratello", "sorella"}}},
	{"Personal Preferences", [][]string{{"piace", "preferisco", "preferite", "amo"}, {"perché", "molto"}}},
}

// Analyze derives an Analysis from transcript text. It is deterministic;
// only DetectedLanguage depends on the hint.
func Analyze(transcript, sourceLanguageHint string) Analysis {
	lang := strings.TrimSpace(sourceLanguageHint)
	if lang == "" {
		lang = DefaultLanguage
	}

	wordCount := len(strings.Fields(transcript))
	sentenceCount := max(len(splitSentences(transcript)), 1)
	avg := float64(wordCount) / float64(sentenceCount)

	lower := strings.ToLower(transcript)

	return Analysis{
		DetectedLanguage:          lang,
		Topics:                    detectTopics(lower),
		DifficultyLevel:           difficultyFor(wordCount, avg),
		KeyThemes:                 detectThemes(lower),
		WordCount:                 wordCount,
		EstimatedStudyTimeMinutes: (wordCount + 99) / 100 * 5,
	}
}

func difficultyFor(wordCount int, avgWordsPerSentence float64) Difficulty {
	switch {
	case avgWordsPerSentence > advancedWordsPerSentence || wordCount > advancedWordCount:
		return DifficultyAdvanced
	case avgWordsPerSentence > intermediateWordsPerSentence || wordCount > intermediateWordCount:
		return DifficultyIntermediate
	default:
		return DifficultyBeginner
	}
}

func detectTopics(lower string) []string {
	var topics []string
	for _, r := range topicRules {
		if containsAny(lower, r.keywords) {
			topics = append(topics, r.name)
		}
	}
	if len(topics) == 0 {
		return []string{fallbackTopic}
	}
	return topics
}

func detectThemes(lower string) []string {
	var themes []string
	for _, r := range themeRules {
		matched := true
		for _, g := range r.groups {
			if !containsAny(lower, g) {
				matched = false
				break
			}
		}
		if matched {
			themes = append(themes, r.theme)
		}
	}
	if len(themes) == 0 {
		return []string{fallbackTheme}
	}
	return themes
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// splitSentences returns the trimmed, non-empty segments between
// sentence terminators.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
