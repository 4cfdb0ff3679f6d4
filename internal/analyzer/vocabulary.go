package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// MaxVocabulary caps the number of extracted entries.
const MaxVocabulary = 15

// NoContext is used when no sentence contains the word.
const NoContext = "Context not available"

// tokenPattern matches runs of letters, allowing apostrophes between letters.
var tokenPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)

var stopWords = map[string]bool{
	"che": true, "non": true, "per": true, "con": true, "del": true,
	"della": true, "dei": true, "delle": true, "gli": true, "una": true,
	"uno": true, "sono": true, "questo": true, "questa": true, "anche": true,
	"come": true, "molto": true, "perché": true, "quando": true, "quale": true,
	"tutti": true, "nel": true,
}

// IsStopWord reports whether w is excluded from vocabulary.
func IsStopWord(w string) bool {
	return stopWords[strings.ToLower(w)]
}

var categoryRules = []topicRule{
	{"food", []string{"pane", "pasta", "pizza", "formaggio", "gelato", "frutta", "carne", "pesce", "verdur", "mangi", "cibo", "caffè", "vino"}},
	{"family", []string{"famiglia", "madre", "padre", "fratell", "sorell", "figli", "nonn", "zia", "zio", "cugin"}},
	{"travel", []string{"viaggi", "treno", "aereo", "albergo", "vacanz", "mare", "città", "stazion", "italia", "spiaggia"}},
}

// ExtractVocabulary returns up to MaxVocabulary entries ranked by frequency.
// Ties keep first-encounter order.
func ExtractVocabulary(transcript string, analysis Analysis) []VocabularyEntry {
	tokens := tokenPattern.FindAllString(strings.ToLower(transcript), -1)

	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		tok = strings.ReplaceAll(tok, "’", "'")
		if utf8.RuneCountInString(tok) <= 2 || stopWords[tok] {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > MaxVocabulary {
		order = order[:MaxVocabulary]
	}

	sentences := splitSentences(transcript)
	fallbackCategory := "general"
	if len(analysis.Topics) > 0 {
		fallbackCategory = analysis.Topics[0]
	}

	entries := make([]VocabularyEntry, 0, len(order))
	for _, w := range order {
		entries = append(entries, VocabularyEntry{
			Word:           w,
			BaseForm:       BaseForm(w),
			PartOfSpeech:   PartOfSpeechOf(w),
			Gender:         GenderOf(w),
			Context:        findContext(w, sentences),
			Frequency:      counts[w],
			DifficultyTier: TierOf(w),
			Category:       categoryOf(w, fallbackCategory),
		})
	}
	return entries
}

func isInfinitive(w string) bool {
	return strings.HasSuffix(w, "are") || strings.HasSuffix(w, "ere") || strings.HasSuffix(w, "ire")
}

// BaseForm guesses the dictionary form of w. Infinitives are kept; a plural
// -i becomes -o and a trailing -e becomes -a when the stem is long enough.
func BaseForm(w string) string {
	if isInfinitive(w) {
		return w
	}
	stem := w[:len(w)-lastRuneLen(w)]
	if utf8.RuneCountInString(stem) > 3 {
		switch {
		case strings.HasSuffix(w, "i"):
			return stem + "o"
		case strings.HasSuffix(w, "e"):
			return stem + "a"
		}
	}
	return w
}

// PartOfSpeechOf classifies w by its ending. Unknown endings are nouns.
func PartOfSpeechOf(w string) PartOfSpeech {
	switch {
	case isInfinitive(w):
		return PartVerb
	case strings.HasSuffix(w, "mente"):
		return PartAdverb
	default:
		// -zione and -sione are nouns, as is everything else.
		return PartNoun
	}
}

// GenderOf guesses grammatical gender from the ending. The feminine check
// runs first, so -ore words (which end in -e) resolve feminine.
func GenderOf(w string) Gender {
	switch {
	case strings.HasSuffix(w, "a"), strings.HasSuffix(w, "e"), strings.HasSuffix(w, "zione"):
		return GenderFeminine
	case strings.HasSuffix(w, "o"), strings.HasSuffix(w, "ore"):
		return GenderMasculine
	default:
		return GenderUnknown
	}
}

// TierOf grades w by rune length.
func TierOf(w string) Tier {
	switch n := utf8.RuneCountInString(w); {
	case n <= 4:
		return TierBasic
	case n <= 7:
		return TierIntermediate
	default:
		return TierAdvanced
	}
}

func categoryOf(w, fallback string) string {
	for _, r := range categoryRules {
		if containsAny(w, r.keywords) {
			return r.name
		}
	}
	return fallback
}

func findContext(w string, sentences []string) string {
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s), w) {
			return s
		}
	}
	return NoContext
}

func lastRuneLen(s string) int {
	_, size := utf8.DecodeLastRuneInString(s)
	return size
}
