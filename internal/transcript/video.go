package transcript

import (
	"context"
	"regexp"
	"sort"

	"github.com/abhisek/capisco/internal/quiz"
)

var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`)

// ExtractVideoID returns the id in a youtube.com/watch?v= or youtu.be/ URL,
// or "" when the URL has neither shape.
func ExtractVideoID(url string) string {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// mockTranscripts stand in for a real transcript service, keyed by language.
var mockTranscripts = map[string]string{
	"italian": `Ciao a tutti! Mi chiamo Marco e oggi parleremo del tempo.
In Italia, abbiamo quattro stagioni: primavera, estate, autunno e inverno.
Mi piace molto l'estate perché fa caldo e posso andare al mare.
E voi, quale stagione preferite? La primavera è bella perché i fiori sbocciano.
L'autunno ha colori meravigliosi, e l'inverno... beh, fa freddo ma è romantico.
Oggi il tempo è nuvoloso, ma domani dovrebbe fare bel tempo.
Preferisco quando c'è il sole. Il sole mi rende felice!`,
	"spanish": `¡Hola a todos! Me llamo Lucía y hoy vamos a hablar de la comida.
En España comemos tarde. La paella es mi plato favorito.
Por la mañana tomo un café con leche y una tostada.`,
	"french": `Bonjour à tous! Je m'appelle Claire et aujourd'hui nous parlons du voyage.
J'aime prendre le train pour aller à la mer.
Paris est une ville magnifique au printemps.`,
}

// VideoLookup returns canned transcripts for video URLs. The video id is
// not consulted.
type VideoLookup struct {
	rng       quiz.Rand
	languages []string
}

// NewVideoLookup returns a lookup choosing transcripts with rng. A nil rng
// is seeded from the clock.
func NewVideoLookup(rng quiz.Rand) *VideoLookup {
	if rng == nil {
		rng = quiz.NewTimeRand()
	}
	langs := make([]string, 0, len(mockTranscripts))
	for l := range mockTranscripts {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return &VideoLookup{rng: rng, languages: langs}
}

// Languages lists the languages a lookup can return.
func (v *VideoLookup) Languages() []string {
	return append([]string(nil), v.languages...)
}

// Lookup returns a transcript for url.
func (v *VideoLookup) Lookup(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	lang := v.languages[v.rng.IntN(len(v.languages))]
	return mockTranscripts[lang], nil
}

// LookupLanguage returns the canned transcript for a language name.
func (v *VideoLookup) LookupLanguage(lang string) (string, bool) {
	t, ok := mockTranscripts[lang]
	return t, ok
}
