package analyzer

// Difficulty is the overall level of a transcript.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// PartOfSpeech is the heuristic word class of a vocabulary entry.
type PartOfSpeech string

const (
	PartVerb   PartOfSpeech = "verb"
	PartNoun   PartOfSpeech = "noun"
	PartAdverb PartOfSpeech = "adverb"
)

// Gender is the heuristic grammatical gender of a vocabulary entry.
type Gender string

const (
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
	GenderUnknown   Gender = ""
)

// Tier grades a word by its length.
type Tier string

const (
	TierBasic        Tier = "basic"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// Analysis summarizes a transcript.
type Analysis struct {
	DetectedLanguage          string     `json:"detectedLanguage"`
	Topics                    []string   `json:"topics"`
	DifficultyLevel           Difficulty `json:"difficultyLevel"`
	KeyThemes                 []string   `json:"keyThemes"`
	WordCount                 int        `json:"wordCount"`
	EstimatedStudyTimeMinutes int        `json:"estimatedStudyTimeMinutes"`
}

// VocabularyEntry is one extracted headword with derived metadata.
type VocabularyEntry struct {
	Word           string       `json:"word"`
	BaseForm       string       `json:"baseForm"`
	PartOfSpeech   PartOfSpeech `json:"partOfSpeech"`
	Gender         Gender       `json:"gender"`
	Context        string       `json:"context"`
	Frequency      int          `json:"frequency"`
	DifficultyTier Tier         `json:"difficultyTier"`
	Category       string       `json:"category"`
}

// TranslationEntry is the card content for one base form.
type TranslationEntry struct {
	Target        string `json:"targetText"`
	Pronunciation string `json:"pronunciation"`
	Etymology     string `json:"etymology"`
	UsageNote     string `json:"usageNote"`
}

// Section groups vocabulary for display. A word may appear in several.
type Section struct {
	Title       string            `json:"title"`
	Vocabulary  []VocabularyEntry `json:"vocabulary"`
	Icon        string            `json:"icon"`
	Description string            `json:"description"`
}

// Step is one stage of the learning path.
type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StudyGuide is the prose companion to a lesson.
type StudyGuide struct {
	Overview           string   `json:"overview"`
	KeyPoints          []string `json:"keyPoints"`
	GrammarNotes       []string `json:"grammarNotes"`
	CulturalNotes      []string `json:"culturalNotes"`
	PracticeActivities []string `json:"practiceActivities"`
}

// QuizData holds the vocabulary buckets each practice widget draws from.
type QuizData struct {
	MultipleChoice []VocabularyEntry `json:"multipleChoice"`
	Matching       []VocabularyEntry `json:"matching"`
	Listening      []VocabularyEntry `json:"listening"`
	Typing         []VocabularyEntry `json:"typing"`
	DragDrop       []VocabularyEntry `json:"dragDrop"`
}

// VideoData records where the transcript came from.
type VideoData struct {
	URL     string `json:"url,omitempty"`
	VideoID string `json:"videoId,omitempty"`
	Source  string `json:"source"`
}

// InteractiveElements counts the interactive parts of a lesson.
type InteractiveElements struct {
	Flashcards int `json:"flashcards"`
	Sections   int `json:"sections"`
	QuizItems  int `json:"quizItems"`
}

// Lesson is the full bundle generated from one transcript.
type Lesson struct {
	ID                  string                      `json:"id"`
	Title               string                      `json:"title"`
	SourceLanguage      string                      `json:"sourceLanguage"`
	Difficulty          Difficulty                  `json:"difficulty"`
	Transcript          string                      `json:"transcript"`
	Analysis            Analysis                    `json:"analysis"`
	Vocabulary          []VocabularyEntry           `json:"vocabulary"`
	Translations        map[string]TranslationEntry `json:"translations"`
	QuizData            QuizData                    `json:"quizData"`
	Sections            []Section                   `json:"sections"`
	LearningPath        []Step                      `json:"learningPath"`
	StudyGuide          StudyGuide                  `json:"studyGuide"`
	VideoData           VideoData                   `json:"videoData"`
	InteractiveElements InteractiveElements         `json:"interactiveElements"`
}

// Translation returns the card for entry, if the table had one.
func (l *Lesson) Translation(entry VocabularyEntry) (TranslationEntry, bool) {
	t, ok := l.Translations[entry.BaseForm]
	return t, ok
}
