package analyzer

import (
	"fmt"
	"slices"
	"strings"
)

// Section titles with fixed meaning.
const (
	SectionCore     = "Core Vocabulary"
	SectionGrammar  = "Grammar & Advanced Terms"
	SectionCultural = "Cultural Context"
	SectionAll      = "All Vocabulary"
)

const (
	coreMinFrequency   = 2
	coreMaxWords       = 8
	categoryMinWords   = 2
	keyPointsSentences = 3
)

// culturalTerms are words that earn a place in the cultural section.
var culturalTerms = map[string]bool{
	"mare": true, "piazza": true, "caffè": true, "espresso": true, "aperitivo": true,
	"passeggiata": true, "pizza": true, "pasta": true, "gelato": true, "famiglia": true,
	"nonna": true, "ferragosto": true, "natale": true, "pasqua": true, "italia": true,
	"mercato": true, "vino": true, "estate": true, "l'estate": true,
}

var themeIcons = map[string]string{
	"Seasons": "fa-calendar-alt",
	"Weather": "fa-cloud-sun",
	"Food":    "fa-apple-alt",
	"Travel":  "fa-plane",
	"Family":  "fa-home",
}

// IconFor returns the icon class for a section or theme title.
func IconFor(title string) string {
	if icon, ok := themeIcons[title]; ok {
		return icon
	}
	return "fa-book"
}

// LessonOption sets optional lesson fields.
type LessonOption func(*Lesson)

// WithID sets the lesson identifier.
func WithID(id string) LessonOption {
	return func(l *Lesson) { l.ID = id }
}

// WithVideoData records the transcript origin.
func WithVideoData(v VideoData) LessonOption {
	return func(l *Lesson) { l.VideoData = v }
}

// BuildQuizData slices vocabulary into the per-widget practice buckets.
func BuildQuizData(vocab []VocabularyEntry) QuizData {
	head := func(n int) []VocabularyEntry {
		return slices.Clone(vocab[:min(n, len(vocab))])
	}
	return QuizData{
		MultipleChoice: head(4),
		Matching:       head(5),
		Listening:      head(3),
		Typing:         head(4),
		DragDrop:       head(3),
	}
}

// BuildLesson assembles a lesson. It does not fail for valid inputs.
func BuildLesson(transcript string, vocab []VocabularyEntry, translations map[string]TranslationEntry, quizData QuizData, analysis Analysis, opts ...LessonOption) *Lesson {
	if translations == nil {
		translations = map[string]TranslationEntry{}
	}
	sections := buildSections(vocab)

	flashcards := 0
	for _, v := range vocab {
		if _, ok := translations[v.BaseForm]; ok {
			flashcards++
		}
	}

	l := &Lesson{
		Title:          fmt.Sprintf("Learn from: %q", strings.Join(analysis.KeyThemes, ", ")),
		SourceLanguage: analysis.DetectedLanguage,
		Difficulty:     analysis.DifficultyLevel,
		Transcript:     transcript,
		Analysis:       analysis,
		Vocabulary:     vocab,
		Translations:   translations,
		QuizData:       quizData,
		Sections:       sections,
		LearningPath:   buildLearningPath(analysis.KeyThemes),
		StudyGuide:     buildStudyGuide(transcript, vocab, analysis),
		VideoData:      VideoData{Source: "file"},
		InteractiveElements: InteractiveElements{
			Flashcards: flashcards,
			Sections:   len(sections),
			QuizItems: len(quizData.MultipleChoice) + len(quizData.Matching) + len(quizData.Listening) +
				len(quizData.Typing) + len(quizData.DragDrop),
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func buildSections(vocab []VocabularyEntry) []Section {
	var sections []Section

	var core []VocabularyEntry
	for _, v := range vocab {
		if v.Frequency >= coreMinFrequency && len(core) < coreMaxWords {
			core = append(core, v)
		}
	}
	if len(core) > 0 {
		sections = append(sections, Section{
			Title:       SectionCore,
			Vocabulary:  core,
			Icon:        "fa-star",
			Description: "Words that appear more than once in the content.",
		})
	}

	var categories []string
	byCategory := make(map[string][]VocabularyEntry)
	for _, v := range vocab {
		if _, seen := byCategory[v.Category]; !seen {
			categories = append(categories, v.Category)
		}
		byCategory[v.Category] = append(byCategory[v.Category], v)
	}
	for _, c := range categories {
		words := byCategory[c]
		if len(words) < categoryMinWords {
			continue
		}
		title := titleCase(c)
		sections = append(sections, Section{
			Title:       title,
			Vocabulary:  words,
			Icon:        IconFor(title),
			Description: fmt.Sprintf("Vocabulary related to %s.", c),
		})
	}

	var grammar []VocabularyEntry
	for _, v := range vocab {
		if v.PartOfSpeech == PartVerb || v.DifficultyTier == TierAdvanced {
			grammar = append(grammar, v)
		}
	}
	if len(grammar) > 0 {
		sections = append(sections, Section{
			Title:       SectionGrammar,
			Vocabulary:  grammar,
			Icon:        "fa-language",
			Description: "Verbs and longer words worth a closer look.",
		})
	}

	var cultural []VocabularyEntry
	for _, v := range vocab {
		if culturalTerms[v.Word] || culturalTerms[v.BaseForm] {
			cultural = append(cultural, v)
		}
	}
	if len(cultural) > 0 {
		sections = append(sections, Section{
			Title:       SectionCultural,
			Vocabulary:  cultural,
			Icon:        "fa-landmark",
			Description: "Words tied to Italian life and customs.",
		})
	}

	if len(sections) == 0 {
		sections = append(sections, Section{
			Title:       SectionAll,
			Vocabulary:  vocab,
			Icon:        IconFor(SectionAll),
			Description: "Every word extracted from the content.",
		})
	}
	return sections
}

func buildLearningPath(themes []string) []Step {
	themeList := strings.Join(themes, ", ")
	if themeList == "" {
		themeList = fallbackTheme
	}
	return []Step{
		{1, "Context & Overview", fmt.Sprintf("Read the transcript and get a feel for %s.", themeList)},
		{2, "Essential Words", fmt.Sprintf("Learn the core vocabulary for %s.", themeList)},
		{3, "Language Patterns", "Notice verb forms, genders and recurring structures."},
		{4, "Interactive Practice", fmt.Sprintf("Test yourself with quizzes on %s.", themeList)},
		{5, "Full Comprehension", "Read or listen to the full content again without help."},
	}
}

func buildStudyGuide(transcript string, vocab []VocabularyEntry, analysis Analysis) StudyGuide {
	guide := StudyGuide{
		Overview: fmt.Sprintf("This %s lesson covers %s through %d key words.",
			analysis.DifficultyLevel, strings.Join(analysis.KeyThemes, ", "), len(vocab)),
	}

	sentences := splitSentences(transcript)
	guide.KeyPoints = sentences[:min(keyPointsSentences, len(sentences))]

	var verbs, feminine, masculine []string
	for _, v := range vocab {
		switch {
		case v.PartOfSpeech == PartVerb:
			verbs = append(verbs, v.BaseForm)
		case v.Gender == GenderFeminine:
			feminine = append(feminine, v.BaseForm)
		case v.Gender == GenderMasculine:
			masculine = append(masculine, v.BaseForm)
		}
	}
	if len(verbs) > 0 {
		guide.GrammarNotes = append(guide.GrammarNotes,
			fmt.Sprintf("Verbs in their infinitive form: %s.", strings.Join(verbs, ", ")))
	}
	if len(feminine) > 0 {
		guide.GrammarNotes = append(guide.GrammarNotes,
			fmt.Sprintf("Feminine words usually take \"la\" or \"una\": %s.", strings.Join(feminine[:min(4, len(feminine))], ", ")))
	}
	if len(masculine) > 0 {
		guide.GrammarNotes = append(guide.GrammarNotes,
			fmt.Sprintf("Masculine words usually take \"il\" or \"un\": %s.", strings.Join(masculine[:min(4, len(masculine))], ", ")))
	}

	if slices.Contains(analysis.Topics, "food") {
		guide.CulturalNotes = append(guide.CulturalNotes,
			"Meals are social events in Italy. Lunch is often the main meal of the day.")
	}
	if slices.Contains(analysis.Topics, "family") {
		guide.CulturalNotes = append(guide.CulturalNotes,
			"Family ties are strong, and Sunday lunch with relatives is a common tradition.")
	}
	if slices.Contains(analysis.Topics, "work") {
		guide.CulturalNotes = append(guide.CulturalNotes,
			"Use the formal \"Lei\" with colleagues until invited to switch to \"tu\".")
	}

	tiers := make(map[Tier]bool)
	for _, v := range vocab {
		tiers[v.DifficultyTier] = true
	}
	if tiers[TierBasic] {
		guide.PracticeActivities = append(guide.PracticeActivities, "Review the short words with flashcards until you recall them instantly.")
	}
	if tiers[TierIntermediate] {
		guide.PracticeActivities = append(guide.PracticeActivities, "Write one sentence of your own for each intermediate word.")
	}
	if tiers[TierAdvanced] {
		guide.PracticeActivities = append(guide.PracticeActivities, "Explain the meaning of the longer words aloud using only Italian.")
	}
	if len(guide.PracticeActivities) == 0 {
		guide.PracticeActivities = append(guide.PracticeActivities, "Listen to the original content again and shadow the speaker.")
	}
	return guide
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
