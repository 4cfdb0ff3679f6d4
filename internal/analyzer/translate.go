package analyzer

import (
	"context"
	"strings"
)

// Translator resolves translation cards for extracted vocabulary.
type Translator interface {
	Translate(ctx context.Context, vocab []VocabularyEntry, sourceLang, targetLang string) (map[string]TranslationEntry, error)
}

// TableTranslator serves translations from a fixed table. Vocabulary with
// no table entry gets no card.
type TableTranslator struct {
	table   map[string]TranslationEntry
	aliases map[string]string
}

// NewTableTranslator returns a translator backed by the built-in table.
func NewTableTranslator() *TableTranslator {
	return &TableTranslator{table: builtinTranslations, aliases: builtinAliases}
}

// Translate looks each entry up by base form, then by surface word. The
// result is keyed by base form and holds only entries the table knows.
func (t *TableTranslator) Translate(_ context.Context, vocab []VocabularyEntry, _, _ string) (map[string]TranslationEntry, error) {
	out := make(map[string]TranslationEntry)
	for _, v := range vocab {
		if tr, ok := t.lookup(v); ok {
			out[v.BaseForm] = tr
		}
	}
	return out, nil
}

func (t *TableTranslator) lookup(v VocabularyEntry) (TranslationEntry, bool) {
	for _, key := range []string{v.BaseForm, v.Word, t.aliases[v.Word]} {
		if key == "" {
			continue
		}
		if tr, ok := t.table[strings.ToLower(key)]; ok {
			return tr, true
		}
	}
	return TranslationEntry{}, false
}

// builtinAliases maps inflected surface forms to table keys.
var builtinAliases = map[string]string{
	"stagioni":     "stagione",
	"preferite":    "preferire",
	"preferisco":   "preferire",
	"l'estate":     "estate",
	"l'autunno":    "autunno",
	"l'inverno":    "inverno",
	"fiori":        "fiore",
	"colori":       "colore",
	"meravigliosi": "meraviglioso",
}

var builtinTranslations = map[string]TranslationEntry{
	"stagione": {
		Target:        "season",
		Pronunciation: "sta-JO-ne",
		Etymology:     `From Latin "statio" (standing, position)`,
		UsageNote:     "Feminine noun, plural: stagioni",
	},
	"primavera": {
		Target:        "spring",
		Pronunciation: "pri-ma-VE-ra",
		Etymology:     `From Latin "prima" (first) + "vera" (spring)`,
		UsageNote:     "Feminine noun, plural: primavere",
	},
	"estate": {
		Target:        "summer",
		Pronunciation: "e-STA-te",
		Etymology:     `From Latin "aestas"`,
		UsageNote:     "Feminine noun, plural: estati",
	},
	"autunno": {
		Target:        "autumn/fall",
		Pronunciation: "au-TUN-no",
		Etymology:     `From Latin "autumnus"`,
		UsageNote:     "Masculine noun, plural: autunni",
	},
	"inverno": {
		Target:        "winter",
		Pronunciation: "in-VER-no",
		Etymology:     `From Latin "hibernus"`,
		UsageNote:     "Masculine noun, plural: inverni",
	},
	"preferire": {
		Target:        "to prefer",
		Pronunciation: "pre-fe-RI-re",
		Etymology:     `From Latin "praeferre"`,
		UsageNote:     "Regular -ire verb with -isc- forms: preferisco",
	},
	"sole": {
		Target:        "sun",
		Pronunciation: "SO-le",
		Etymology:     `From Latin "sol"`,
		UsageNote:     "Masculine noun, no plural (uncountable)",
	},
	"tempo": {
		Target:        "weather; time",
		Pronunciation: "TEM-po",
		Etymology:     `From Latin "tempus"`,
		UsageNote:     `Masculine noun. "Che tempo fa?" asks about the weather`,
	},
	"caldo": {
		Target:        "hot; heat",
		Pronunciation: "KAL-do",
		Etymology:     `From Latin "calidus"`,
		UsageNote:     `"Fa caldo" for weather, "ho caldo" for how you feel`,
	},
	"freddo": {
		Target:        "cold",
		Pronunciation: "FRED-do",
		Etymology:     `From Latin "frigidus"`,
		UsageNote:     `"Fa freddo" for weather, "ho freddo" for how you feel`,
	},
	"mare": {
		Target:        "sea",
		Pronunciation: "MA-re",
		Etymology:     `From Latin "mare"`,
		UsageNote:     `Masculine despite the -e ending: "il mare"`,
	},
	"fiore": {
		Target:        "flower",
		Pronunciation: "FYO-re",
		Etymology:     `From Latin "flos, floris"`,
		UsageNote:     "Masculine noun, plural: fiori",
	},
	"colore": {
		Target:        "colour",
		Pronunciation: "ko-LO-re",
		Etymology:     `From Latin "color"`,
		UsageNote:     "Masculine noun, plural: colori",
	},
	"meraviglioso": {
		Target:        "wonderful",
		Pronunciation: "me-ra-vi-LYO-zo",
		Etymology:     `From Latin "mirabilia" (wonders)`,
		UsageNote:     "Adjective; agrees in gender and number",
	},
	"nuvoloso": {
		Target:        "cloudy",
		Pronunciation: "nu-vo-LO-zo",
		Etymology:     `From "nuvola" (cloud)`,
		UsageNote:     `Used with "essere": "è nuvoloso"`,
	},
	"oggi": {
		Target:        "today",
		Pronunciation: "OD-ji",
		Etymology:     `From Latin "hodie"`,
		UsageNote:     "Adverb of time",
	},
	"domani": {
		Target:        "tomorrow",
		Pronunciation: "do-MA-ni",
		Etymology:     `From Latin "de mane" (in the morning)`,
		UsageNote:     "Adverb of time",
	},
	"felice": {
		Target:        "happy",
		Pronunciation: "fe-LI-che",
		Etymology:     `From Latin "felix"`,
		UsageNote:     "Adjective, same form for both genders",
	},
}
